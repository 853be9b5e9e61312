package inference_test

import (
	"encoding/json"
	"testing"

	"github.com/cottand/variance/inference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const cell = `class Cell<T> { T get(); void set(T x); }`

func TestViewRules(t *testing.T) {
	res := testRun(t, `class Box<T> { T get(); }`)

	assert.Equal(t, []string{
		"[rule return-position] var(T, Box<T>) < + ⊗ var(T, T)",
		"[rule self-occurrence] var(T, T) < +",
	}, res.View(true).Generated)
	assert.Equal(t, []string{
		"var(T, Box<T>) < + ⊗ var(T, T)",
		"var(T, T) < +",
	}, res.View(false).Generated)
	assert.Equal(t, []string{"var(T, Box<T>) < +"}, res.View(true).Simplified)
}

func TestRenderText(t *testing.T) {
	out, err := testRun(t, `class Box<T> { T get(); }`).View(false).Render(inference.FormatText, false)
	require.NoError(t, err)

	assert.Equal(t, `# generated constraints
var(T, Box<T>) < + ⊗ var(T, T)
var(T, T) < +

# simplified constraints
var(T, Box<T>) < +

# solution
var(T, Box<T>) = + (covariant)
`, out)
}

func TestRenderStructured(t *testing.T) {
	view := testRun(t, cell).View(true)

	t.Run("json", func(t *testing.T) {
		out, err := view.Render(inference.FormatJSON, false)
		require.NoError(t, err)
		var decoded inference.View
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, view, decoded)
		assert.NotContains(t, out, "undeclared")
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := view.Render(inference.FormatYAML, false)
		require.NoError(t, err)
		var decoded inference.View
		require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, view, decoded)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := view.Render("xml", false)
		assert.Error(t, err)
	})
}

func TestEmptyViewRendersEmptyLists(t *testing.T) {
	out, err := inference.EmptyView.Render(inference.FormatJSON, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"generated": [], "simplified": [], "solution": []}`, out)
}

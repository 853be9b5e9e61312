package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cottand/variance/inference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeInfer runs InferCmd; every flag is passed explicitly as flag values
// persist between executions of the same command
func executeInfer(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	return executeInferContext(t, t.Context(), stdin, args...)
}

func executeInferContext(t *testing.T, ctx context.Context, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Chdir(t.TempDir())
	outBuf, errBuf := &bytes.Buffer{}, &bytes.Buffer{}
	InferCmd.SetIn(strings.NewReader(stdin))
	InferCmd.SetOut(outBuf)
	InferCmd.SetErr(errBuf)
	InferCmd.SetArgs(append([]string{"--color", "never", "--unresolved", "error", "--substitution", "first"}, args...))
	err = InferCmd.ExecuteContext(ctx)
	return outBuf.String(), errBuf.String(), err
}

func TestInferStdin(t *testing.T) {
	out, _, err := executeInfer(t, `class Box<T> { T get(); }`, "--format", "text", "--no-rules=false")
	require.NoError(t, err)

	assert.Contains(t, out, "[rule return-position] var(T, Box<T>) < + ⊗ var(T, T)")
	assert.Contains(t, out, "var(T, Box<T>) = + (covariant)")
}

func TestInferJSON(t *testing.T) {
	out, _, err := executeInfer(t, `class Sink<T> { void accept(T x); }`, "--format", "json", "--no-rules")
	require.NoError(t, err)

	var view inference.View
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, []string{"var(T, Sink<T>) = - (contravariant)"}, view.Solution)
	assert.NotContains(t, strings.Join(view.Generated, "\n"), "[rule")
}

func TestInferFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.var")
	bad := filepath.Join(dir, "bad.var")
	require.NoError(t, os.WriteFile(good, []byte(`class Cell<T> { T get(); void set(T x); }`), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte(`class Foo<T> { T }`), 0o644))

	out, stderr, err := executeInfer(t, "", "--format", "text", good, bad)

	assert.ErrorContains(t, err, "inference failed for "+bad)
	assert.Contains(t, out, "==> "+good+" <==")
	assert.Contains(t, out, "==> "+bad+" <==")
	assert.Contains(t, out, "var(T, Cell<T>) = o (invariant)")
	assert.Contains(t, stderr, "bad.var:1:18: (E001) malformed declaration")
}

func TestInferMissingFile(t *testing.T) {
	_, _, err := executeInfer(t, "", "--format", "text", filepath.Join(t.TempDir(), "missing.var"))
	assert.ErrorContains(t, err, "could not read")
}

func TestInferInvalidFlag(t *testing.T) {
	_, _, err := executeInfer(t, "", "--format", "xml")
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestInferSubstitutionFlag(t *testing.T) {
	src := `class Fn<A, R> { R apply(A a); } class Src<T> { Fn<String, T> fn(); }`

	out, _, err := executeInfer(t, src, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "var(T, Src<T>) = * (bivariant)")

	out, _, err = executeInfer(t, src, "--format", "text", "--substitution", "all")
	require.NoError(t, err)
	assert.Contains(t, out, "var(T, Src<T>) = + (covariant)")
}

func TestInferCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	out, _, err := executeInferContext(t, ctx, `class Box<T> { T get(); }`, "--format", "text")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorContains(t, err, "inference interrupted")
	assert.Empty(t, out)
}

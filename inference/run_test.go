package inference_test

import (
	"testing"

	"github.com/cottand/variance/frontend/types"
	"github.com/cottand/variance/frontend/varerr"
	"github.com/cottand/variance/inference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRun(t *testing.T, src string) *inference.Result {
	t.Helper()
	res, err := inference.Run(src, inference.DefaultOptions())
	require.NoError(t, err)
	return res
}

func TestEndToEnd(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		solution []string
	}{
		{
			name:     "box",
			src:      `class Box<T> { T get(); }`,
			solution: []string{"var(T, Box<T>) = + (covariant)"},
		},
		{
			name:     "sink",
			src:      `class Sink<T> { void accept(T x); }`,
			solution: []string{"var(T, Sink<T>) = - (contravariant)"},
		},
		{
			name:     "cell",
			src:      `class Cell<T> { T get(); void set(T x); }`,
			solution: []string{"var(T, Cell<T>) = o (invariant)"},
		},
		{
			name: "wrapper",
			src: `
class Box<T> { T get(); }
class Wrapper<T> { Box<T> getBox(); }`,
			solution: []string{
				"var(T, Box<T>) = + (covariant)",
				"var(T, Wrapper<T>) = + (covariant)",
			},
		},
		{
			name:     "unused",
			src:      `class Tag<T> { String name(); }`,
			solution: []string{"var(T, Tag<T>) = * (bivariant)"},
		},
		{
			name:     "no classes",
			src:      "\n",
			solution: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := testRun(t, tc.src)
			assert.Equal(t, tc.solution, res.View(true).Solution)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestMalformedInputStopsPipeline(t *testing.T) {
	res, err := inference.Run(`class Foo<T> { T }`, inference.DefaultOptions())

	assert.Nil(t, res)
	require.Error(t, err)
	var errs *varerr.Errors
	require.ErrorAs(t, err, &errs)
	assert.True(t, varerr.IsMalformed(errs))
}

func TestUnresolvedPolicies(t *testing.T) {
	src := `class Foo<T> { List<T> list(); }`

	_, err := inference.Run(src, inference.DefaultOptions())
	assert.ErrorContains(t, err, "unknown class reference 'List'")

	opts := inference.DefaultOptions()
	opts.Unresolved = types.UnresolvedBivariant
	res, err := inference.Run(src, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"List"}, res.Undeclared)
	assert.Equal(t, []string{"var(T, Foo<T>) = * (bivariant)"}, res.View(false).Solution)

	opts.Unresolved = types.UnresolvedInvariant
	res, err = inference.Run(src, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"var(T, Foo<T>) = o (invariant)"}, res.View(false).Solution)
}

func TestRunsAreIndependent(t *testing.T) {
	first := testRun(t, `class Box<T> { T get(); }`)
	second := testRun(t, `class Box<T> { void put(T x); }`)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, []string{"var(T, Box<T>) = + (covariant)"}, first.View(false).Solution)
	assert.Equal(t, []string{"var(T, Box<T>) = - (contravariant)"}, second.View(false).Solution)
}

func TestSubstitutionOption(t *testing.T) {
	src := `
class Fn<A, R> { R apply(A a); }
class Src<T> { Fn<String, T> fn(); }`

	res := testRun(t, src)
	v, _ := res.Solution.Lookup("Src", "T")
	assert.Equal(t, types.Bivariant, v)

	opts := inference.DefaultOptions()
	opts.Substitution = types.SubstituteAll
	res, err := inference.Run(src, opts)
	require.NoError(t, err)
	v, _ = res.Solution.Lookup("Src", "T")
	assert.Equal(t, types.Covariant, v)
	assert.Contains(t, res.View(false).Simplified, "var(T, Src<T>) < var(R, Fn<A, R>)")
}

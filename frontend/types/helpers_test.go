package types_test

import (
	"testing"

	"github.com/cottand/variance/frontend/types"
	"github.com/cottand/variance/parser"
	"github.com/stretchr/testify/require"
)

func testClasses(t *testing.T, src string) types.ClassIndex {
	t.Helper()
	decls, errs := parser.ParseToAST(src)
	require.False(t, errs.HasError(), "unexpected parse errors: %v", errs)
	return types.NewClassIndex(decls)
}

func testGenerate(t *testing.T, src string) (types.ClassIndex, []types.Constraint) {
	t.Helper()
	classes := testClasses(t, src)
	constraints, errs := types.Generate(classes, types.UnresolvedError)
	require.False(t, errs.HasError(), "unexpected generation errors: %v", errs)
	return classes, constraints
}

func rendered(constraints []types.Constraint, withRules bool) []string {
	out := make([]string, 0, len(constraints))
	for _, c := range constraints {
		if withRules {
			out = append(out, c.StringWithRule())
		} else {
			out = append(out, c.String())
		}
	}
	return out
}

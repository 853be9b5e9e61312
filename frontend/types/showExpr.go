package types

import (
	"strings"

	"github.com/cottand/variance/frontend/ast"
)

// ExprString renders e with ⊗ for transform and ⊔ for join,
// parenthesising combinators nested inside other combinators
func ExprString(e Expr) string {
	sb := &strings.Builder{}
	showExprWalker(sb, e, false)
	return sb.String()
}

func showExprWalker(sb *strings.Builder, e Expr, nested bool) {
	binary := func(l, r Expr, op string) {
		if nested {
			sb.WriteByte('(')
		}
		showExprWalker(sb, l, true)
		sb.WriteString(op)
		showExprWalker(sb, r, true)
		if nested {
			sb.WriteByte(')')
		}
	}

	switch e := e.(type) {
	case nil:
		sb.WriteString("nil")
	case Variance:
		sb.WriteString(e.Symbol())
	case ClassParamRef:
		sb.WriteString("var(")
		sb.WriteString(e.Param)
		sb.WriteString(", ")
		sb.WriteString(e.Signature)
		sb.WriteByte(')')
	case TypeOccurrenceRef:
		sb.WriteString("var(")
		sb.WriteString(e.Param)
		sb.WriteString(", ")
		sb.WriteString(ast.TypeString(e.Type))
		sb.WriteByte(')')
	case TransformExpr:
		binary(e.Left, e.Right, " ⊗ ")
	case JoinExpr:
		binary(e.Left, e.Right, " ⊔ ")
	}
}

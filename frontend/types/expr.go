package types

import (
	"github.com/cottand/variance/frontend/ast"
)

// Expr is a possibly unresolved variance: a concrete Variance,
// a reference to a class parameter or to a type occurrence,
// or a combination of two expressions
type Expr interface {
	isExpr()
}

var (
	_ Expr = Variance{}
	_ Expr = ClassParamRef{}
	_ Expr = TypeOccurrenceRef{}
	_ Expr = TransformExpr{}
	_ Expr = JoinExpr{}
)

// ParamKey identifies a class type parameter
type ParamKey struct {
	Class string
	Param string
}

// ClassParamRef stands for the variance eventually assigned to a class parameter.
//
// It is a plain value: two references are equal when they name
// the same class and parameter
type ClassParamRef struct {
	Param string
	Class string
	// Signature is the class applied to its parameters, only used for display
	Signature string
}

func (ClassParamRef) isExpr() {}

func (r ClassParamRef) Key() ParamKey {
	return ParamKey{Class: r.Class, Param: r.Param}
}

// RefTo builds the reference to param of decl
func RefTo(param string, decl *ast.ClassDecl) ClassParamRef {
	return ClassParamRef{Param: param, Class: decl.Name, Signature: decl.Signature()}
}

// OccurrenceKey identifies a single occurrence of a type in the source,
// as seen from one parameter
type OccurrenceKey struct {
	Param string
	Type  ast.Range
}

// TypeOccurrenceRef stands for the variance with which Param occurs inside Type
type TypeOccurrenceRef struct {
	Param string
	Type  ast.Type
}

func (TypeOccurrenceRef) isExpr() {}

func (r TypeOccurrenceRef) Key() OccurrenceKey {
	return OccurrenceKey{Param: r.Param, Type: r.Type.Range}
}

// TransformExpr is Left ⊗ Right
type TransformExpr struct {
	Left, Right Expr
}

func (TransformExpr) isExpr() {}

// JoinExpr is Left ⊔ Right
type JoinExpr struct {
	Left, Right Expr
}

func (JoinExpr) isExpr() {}

func transform(l, r Expr) Expr { return TransformExpr{Left: l, Right: r} }
func join(l, r Expr) Expr      { return JoinExpr{Left: l, Right: r} }

// HasOccurrences reports whether any TypeOccurrenceRef is left in e
func HasOccurrences(e Expr) bool {
	switch e := e.(type) {
	case TypeOccurrenceRef:
		return true
	case TransformExpr:
		return HasOccurrences(e.Left) || HasOccurrences(e.Right)
	case JoinExpr:
		return HasOccurrences(e.Left) || HasOccurrences(e.Right)
	default:
		return false
	}
}

// Equal compares expressions structurally, using keys for references
func Equal(a, b Expr) bool {
	switch a := a.(type) {
	case Variance:
		bv, ok := b.(Variance)
		return ok && a == bv
	case ClassParamRef:
		bRef, ok := b.(ClassParamRef)
		return ok && a.Key() == bRef.Key()
	case TypeOccurrenceRef:
		bOcc, ok := b.(TypeOccurrenceRef)
		return ok && a.Key() == bOcc.Key()
	case TransformExpr:
		bt, ok := b.(TransformExpr)
		return ok && Equal(a.Left, bt.Left) && Equal(a.Right, bt.Right)
	case JoinExpr:
		bj, ok := b.(JoinExpr)
		return ok && Equal(a.Left, bj.Left) && Equal(a.Right, bj.Right)
	default:
		return false
	}
}

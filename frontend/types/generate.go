package types

import (
	"fmt"
	"log/slog"

	"github.com/cottand/variance/frontend/ast"
	"github.com/cottand/variance/frontend/varerr"
	"github.com/cottand/variance/internal/log"
)

// UnresolvedPolicy decides what a type argument of an undeclared class
// (or one past the class' parameter count) contributes to the constraints
type UnresolvedPolicy string

const (
	// UnresolvedError reports a varerr.NewUnknownClass or varerr.NewArityMismatch
	UnresolvedError UnresolvedPolicy = "error"
	// UnresolvedBivariant treats the missing parameter as unconstrained, *
	UnresolvedBivariant UnresolvedPolicy = "bivariant"
	// UnresolvedInvariant treats the missing parameter as fully constrained, o
	UnresolvedInvariant UnresolvedPolicy = "invariant"
)

func (p UnresolvedPolicy) String() string {
	return string(p)
}

type generator struct {
	classes ClassIndex
	policy  UnresolvedPolicy
	logger  *slog.Logger

	constraints []Constraint
	errs        *varerr.Errors
	// reported avoids reporting the same unresolved occurrence once per parameter
	reported map[ast.Range]struct{}
}

// Generate emits, for every parameter of every class in classes, the constraints
// bounding its variance by each of its occurrences in method signatures.
//
// Constraints are ordered by class, parameter and method, and each
// constraint on a TypeOccurrenceRef follows the constraint that introduced it
func Generate(classes ClassIndex, policy UnresolvedPolicy) ([]Constraint, *varerr.Errors) {
	g := &generator{
		classes:  classes,
		policy:   policy,
		logger:   log.Section("generate"),
		reported: map[ast.Range]struct{}{},
	}
	decls := classes.Decls()
	for i := range decls {
		decl := &decls[i]
		for _, param := range decl.Params {
			for _, method := range decl.Methods {
				g.position(decl, param, method.Return, Covariant, RuleReturnPosition)
				for _, arg := range method.Params {
					g.position(decl, param, arg, Contravariant, RuleArgumentPosition)
				}
			}
		}
	}
	g.logger.Debug("generated constraints", "count", len(g.constraints), "errors", g.errs)
	return g.constraints, g.errs
}

func (g *generator) emit(left, right Expr, rule Rule) {
	c := Constraint{Left: left, Right: right, Rule: rule}
	g.logger.Debug("constraint", "rule", rule, "constraint", c)
	g.constraints = append(g.constraints, c)
}

// position bounds param of decl by its occurrence in t, seen through a
// covariant (return) or contravariant (argument) position
func (g *generator) position(decl *ast.ClassDecl, param string, t ast.Type, pos Variance, rule Rule) {
	occ := TypeOccurrenceRef{Param: param, Type: t}
	g.emit(RefTo(param, decl), transform(pos, occ), rule)
	g.expand(occ)
}

func (g *generator) expand(occ TypeOccurrenceRef) {
	t := occ.Type
	if t.IsTerminal() {
		if t.Name == occ.Param {
			g.emit(occ, Covariant, RuleSelfOccurrence)
		} else {
			g.emit(occ, Bivariant, RuleUnrelatedTerminal)
		}
		return
	}

	for i, arg := range t.Args {
		inner := TypeOccurrenceRef{Param: occ.Param, Type: arg.Type}
		classParam := g.classParam(t, i)
		g.emit(occ, transform(join(wildcardVariance(arg.Wildcard), classParam), inner), RuleNestedArgument)
		g.expand(inner)
	}
}

// classParam refers to the i-th declared parameter of the class t applies
func (g *generator) classParam(t ast.Type, i int) Expr {
	decl, ok := g.classes.Lookup(t.Name)
	if ok && i < len(decl.Params) {
		return RefTo(decl.Params[i], decl)
	}

	var err varerr.VarError
	if !ok {
		err = varerr.New(varerr.NewUnknownClass{Positioner: t.Range, Name: t.Name})
	} else {
		err = varerr.New(varerr.NewArityMismatch{Positioner: t.Range, Class: t.Name, Declared: len(decl.Params), Given: len(t.Args)})
	}

	switch g.policy {
	case UnresolvedBivariant, UnresolvedInvariant:
		if g.report(t.Range) {
			g.logger.Warn("unresolved class reference", "policy", g.policy, "error", varerr.FormatWithCode(err))
		}
		if g.policy == UnresolvedBivariant {
			return Bivariant
		}
		return Invariant
	case UnresolvedError, "":
		if g.report(t.Range) {
			g.errs = g.errs.With(err)
		}
		// keeps generation going so that every unresolved reference is reported
		return Bivariant
	default:
		panic(fmt.Sprintf("unknown unresolved reference policy %q", g.policy))
	}
}

func (g *generator) report(r ast.Range) bool {
	if _, done := g.reported[r]; done {
		return false
	}
	g.reported[r] = struct{}{}
	return true
}

func wildcardVariance(w ast.Wildcard) Variance {
	switch w {
	case ast.Extends:
		return Covariant
	case ast.Super:
		return Contravariant
	default:
		return Invariant
	}
}

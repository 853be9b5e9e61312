// Package inference runs the whole variance inference pipeline on a source text:
// parse, generate constraints, simplify them and solve them.
//
// Each call to Run is independent and holds no state once it returns.
package inference

import (
	"github.com/cottand/variance/frontend/ast"
	"github.com/cottand/variance/frontend/types"
	"github.com/cottand/variance/internal/config"
	"github.com/cottand/variance/internal/log"
	"github.com/cottand/variance/parser"
	"github.com/cottand/variance/util"
	"github.com/google/uuid"
)

var logger = log.Section("inference")

type Options struct {
	Substitution types.Substitution
	Solver       types.SolverOptions
	Unresolved   types.UnresolvedPolicy
}

func DefaultOptions() Options {
	return OptionsFrom(config.Default())
}

// OptionsFrom picks the inference settings out of a validated config.Config
func OptionsFrom(cfg config.Config) Options {
	return Options{
		Substitution: types.Substitution(cfg.Simplifier.Substitution),
		Solver: types.SolverOptions{
			Strategy: types.Strategy(cfg.Solver.Strategy),
			Passes:   cfg.Solver.Passes,
		},
		Unresolved: types.UnresolvedPolicy(cfg.Unresolved),
	}
}

// Result holds the output of every stage of one run
type Result struct {
	// ID identifies the run in logs
	ID         string
	Classes    []ast.ClassDecl
	Generated  []types.Constraint
	Simplified []types.Constraint
	Solution   types.Solution
	// Undeclared lists class names applied to type arguments but never declared.
	// It can only be non-empty when Options.Unresolved is not UnresolvedError
	Undeclared []string
}

// Run infers the variance of every class parameter declared in source.
//
// If source is malformed (or references undeclared classes under
// types.UnresolvedError) the returned error is a *varerr.Errors
// and nothing past the failing stage runs
func Run(source string, opts Options) (*Result, error) {
	id := uuid.NewString()
	runLogger := logger.With("run", id)

	decls, errs := parser.ParseToAST(source)
	if errs.HasError() {
		runLogger.Debug("parse failed", "errors", errs)
		return nil, errs
	}
	classes := types.NewClassIndex(decls)

	generated, errs := types.Generate(classes, opts.Unresolved)
	if errs.HasError() {
		runLogger.Debug("generation failed", "errors", errs)
		return nil, errs
	}
	simplified := types.SimplifyWith(generated, opts.Substitution)
	solution := types.Solve(classes, simplified, opts.Solver)

	declared := make([]string, 0, len(decls))
	for _, decl := range decls {
		declared = append(declared, decl.Name)
	}

	runLogger.Debug("inference done",
		"classes", len(decls),
		"generated", len(generated),
		"simplified", len(simplified),
		"sweeps", solution.Sweeps,
	)
	return &Result{
		ID:         id,
		Classes:    decls,
		Generated:  generated,
		Simplified: simplified,
		Solution:   solution,
		Undeclared: util.StringsDiff(ast.ReferencedClasses(decls), declared),
	}, nil
}

package types

import (
	"fmt"
	"log/slog"

	"github.com/cottand/variance/internal/log"
)

type Strategy string

const (
	// StrategyFixpoint sweeps the constraints until a sweep changes nothing
	StrategyFixpoint Strategy = "fixpoint"
	// StrategyBounded runs a fixed number of passes, each made of one sweep
	// per constraint
	StrategyBounded Strategy = "bounded"
)

// DefaultPasses is the number of passes of StrategyBounded
const DefaultPasses = 2

type SolverOptions struct {
	Strategy Strategy
	// Passes is only used by StrategyBounded
	Passes int
}

// SolutionEntry is the variance inferred for one class parameter
type SolutionEntry struct {
	Param    ClassParamRef
	Variance Variance
}

func (e SolutionEntry) String() string {
	return fmt.Sprintf("%s = %s (%s)", ExprString(e.Param), e.Variance.Symbol(), e.Variance.Name())
}

type Solution struct {
	// Entries holds one entry per declared parameter, in declaration order
	Entries []SolutionEntry
	// Sweeps is how many times the whole constraint list was evaluated
	Sweeps int
	// Converged is false when StrategyBounded stopped while values were still changing
	Converged bool
}

// Lookup returns the variance inferred for param of class
func (s Solution) Lookup(class, param string) (Variance, bool) {
	for _, e := range s.Entries {
		if e.Param.Class == class && e.Param.Param == param {
			return e.Variance, true
		}
	}
	return Variance{}, false
}

type solver struct {
	current map[ParamKey]Variance
	logger  *slog.Logger
}

// Solve narrows every parameter of classes, starting from *, by the upper
// bounds in constraints until they are all satisfied (or, for StrategyBounded,
// until the passes run out)
func Solve(classes ClassIndex, constraints []Constraint, opts SolverOptions) Solution {
	params := classes.Params()
	s := &solver{
		current: make(map[ParamKey]Variance, len(params)),
		logger:  log.Section("solve"),
	}
	for _, p := range params {
		s.current[p.Key()] = Bivariant
	}

	var sweeps int
	converged := false
	switch opts.Strategy {
	case StrategyBounded:
		passes := opts.Passes
		if passes <= 0 {
			passes = DefaultPasses
		}
		for pass := 0; pass < passes; pass++ {
			for range constraints {
				changed := s.sweep(constraints)
				sweeps++
				converged = !changed
			}
		}
		converged = converged || len(constraints) == 0
	case StrategyFixpoint, "":
		// every change narrows one of the parameters, each of which can narrow at most twice
		limit := 2*len(params) + 1
		for sweeps < limit {
			sweeps++
			if !s.sweep(constraints) {
				converged = true
				break
			}
		}
	default:
		panic(fmt.Sprintf("unknown solver strategy %q", opts.Strategy))
	}

	solution := Solution{Sweeps: sweeps, Converged: converged}
	for _, p := range params {
		solution.Entries = append(solution.Entries, SolutionEntry{Param: p, Variance: s.current[p.Key()]})
	}
	s.logger.Debug("solved", "strategy", opts.Strategy, "sweeps", sweeps, "converged", converged)
	return solution
}

// sweep evaluates every constraint once, reporting whether any value changed
func (s *solver) sweep(constraints []Constraint) (changed bool) {
	for _, c := range constraints {
		left, ok := c.Left.(ClassParamRef)
		if !ok {
			continue
		}
		bound, resolved := s.eval(c.Right)
		if !resolved {
			s.logger.Warn("could not resolve constraint", "constraint", c)
			continue
		}
		before, known := s.current[left.Key()]
		if !known {
			s.logger.Warn("constraint on undeclared parameter", "param", Slog(left))
			continue
		}
		after := Meet(before, bound)
		if after != before {
			s.logger.Debug("narrowed", "param", Slog(left), "from", before, "to", after)
			s.current[left.Key()] = after
			changed = true
		}
	}
	return changed
}

// eval resolves e with the current values of class parameters
func (s *solver) eval(e Expr) (Variance, bool) {
	switch e := e.(type) {
	case Variance:
		return e, true
	case ClassParamRef:
		v, ok := s.current[e.Key()]
		return v, ok
	case TransformExpr:
		l, lok := s.eval(e.Left)
		r, rok := s.eval(e.Right)
		return Transform(l, r), lok && rok
	case JoinExpr:
		l, lok := s.eval(e.Left)
		r, rok := s.eval(e.Right)
		return Join(l, r), lok && rok
	default:
		return Variance{}, false
	}
}

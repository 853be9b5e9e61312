package types

import "github.com/cottand/variance/internal/log"

// Substitution decides which upper bounds replace a TypeOccurrenceRef
type Substitution string

const (
	// SubstituteFirst replaces an occurrence by the first constraint bounding it,
	// in generation order
	SubstituteFirst Substitution = "first"
	// SubstituteAll replaces an occurrence by each of its upper bounds (one per
	// argument of a type with many type arguments), so a constraint mentioning
	// it becomes one constraint per bound. This is exact because ⊗ and ⊔ both
	// preserve meets in the operand that holds occurrences.
	SubstituteAll Substitution = "all"
)

// Simplify is SimplifyWith using SubstituteFirst
func Simplify(constraints []Constraint) []Constraint {
	return SimplifyWith(constraints, SubstituteFirst)
}

// SimplifyWith substitutes every TypeOccurrenceRef by its upper bounds and evaluates
// the variance algebra wherever the result no longer depends on a class parameter.
//
// The result only holds constraints of the form
//
//	ClassParamRef ≤ expr
//
// where expr is built from ClassParamRef and Variance, and is not *.
// Simplifying an already simplified set returns it unchanged.
func SimplifyWith(constraints []Constraint, mode Substitution) []Constraint {
	logger := log.Section("simplify")

	bounds := make(map[OccurrenceKey][]Expr, len(constraints))
	for _, c := range constraints {
		occ, ok := c.Left.(TypeOccurrenceRef)
		if !ok {
			continue
		}
		if _, seen := bounds[occ.Key()]; seen && mode != SubstituteAll {
			continue
		}
		bounds[occ.Key()] = append(bounds[occ.Key()], c.Right)
	}

	s := simplifier{bounds: bounds, resolved: make(map[OccurrenceKey][]Expr, len(bounds))}
	var simplified []Constraint
	for _, c := range constraints {
		if _, isRef := c.Left.(ClassParamRef); !isRef {
			continue
		}
		for _, right := range s.reduce(c.Right) {
			if right == Bivariant {
				logger.Debug("dropped uninformative constraint", "constraint", c)
				continue
			}
			simplified = append(simplified, Constraint{Left: c.Left, Right: right})
		}
	}
	logger.Debug("simplified constraints", "mode", mode, "before", len(constraints), "after", len(simplified))
	return simplified
}

type simplifier struct {
	bounds   map[OccurrenceKey][]Expr
	resolved map[OccurrenceKey][]Expr
}

// reduce returns the upper bounds e stands for once its occurrences are
// substituted. Expressions without occurrences have exactly one.
func (s *simplifier) reduce(e Expr) []Expr {
	switch e := e.(type) {
	case TransformExpr:
		return combine(s.reduce(e.Left), s.reduce(e.Right), reduceTransform)
	case JoinExpr:
		return combine(s.reduce(e.Left), s.reduce(e.Right), reduceJoin)
	case TypeOccurrenceRef:
		key := e.Key()
		if done, ok := s.resolved[key]; ok {
			return done
		}
		bounds, ok := s.bounds[key]
		if !ok {
			return []Expr{e}
		}
		var reduced []Expr
		for _, bound := range bounds {
			for _, r := range s.reduce(bound) {
				if !containsExpr(reduced, r) {
					reduced = append(reduced, r)
				}
			}
		}
		// * ≤ x only when x is *, so a * bound says nothing next to another one
		if len(reduced) > 1 {
			reduced = withoutBivariant(reduced)
		}
		s.resolved[key] = reduced
		return reduced
	default:
		return []Expr{e}
	}
}

func combine(ls, rs []Expr, op func(l, r Expr) Expr) []Expr {
	out := make([]Expr, 0, len(ls)*len(rs))
	for _, l := range ls {
		for _, r := range rs {
			if combined := op(l, r); !containsExpr(out, combined) {
				out = append(out, combined)
			}
		}
	}
	return out
}

// reduceTransform evaluates l ⊗ r when the result is the same for every
// value a symbolic operand may take: + is the identity and * absorbs
func reduceTransform(l, r Expr) Expr {
	lv, lok := l.(Variance)
	rv, rok := r.(Variance)
	switch {
	case lok && rok:
		return Transform(lv, rv)
	case lok && lv == Covariant:
		return r
	case rok && rv == Covariant:
		return l
	case lok && lv == Bivariant, rok && rv == Bivariant:
		return Bivariant
	default:
		return transform(l, r)
	}
}

// reduceJoin is the counterpart of reduceTransform for ⊔: o is the identity and * absorbs
func reduceJoin(l, r Expr) Expr {
	lv, lok := l.(Variance)
	rv, rok := r.(Variance)
	switch {
	case lok && rok:
		return Join(lv, rv)
	case lok && lv == Bivariant, rok && rv == Bivariant:
		return Bivariant
	case lok && lv == Invariant:
		return r
	case rok && rv == Invariant:
		return l
	default:
		return join(l, r)
	}
}

func withoutBivariant(exprs []Expr) []Expr {
	out := exprs[:0:0]
	for _, e := range exprs {
		if e != Bivariant {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return []Expr{Bivariant}
	}
	return out
}

func containsExpr(exprs []Expr, e Expr) bool {
	for _, other := range exprs {
		if Equal(other, e) {
			return true
		}
	}
	return false
}

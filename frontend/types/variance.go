package types

import "fmt"

// Variance is a point of the variance lattice, stored as the pair of
// subtyping directions a parameter may safely vary in:
//
//	*        bivariant     (covariant and contravariant)
//	+   -    covariant     contravariant
//	  o      invariant     (neither)
type Variance struct {
	covariant, contravariant bool
}

var (
	Bivariant     = Variance{covariant: true, contravariant: true}
	Covariant     = Variance{covariant: true}
	Contravariant = Variance{contravariant: true}
	Invariant     = Variance{}
)

func (v Variance) isExpr() {}

// Symbol is the one-character notation of v: +, -, * or o
func (v Variance) Symbol() string {
	switch v {
	case Bivariant:
		return "*"
	case Covariant:
		return "+"
	case Contravariant:
		return "-"
	default:
		return "o"
	}
}

func (v Variance) String() string {
	return v.Symbol()
}

// Name is the long name of v, e.g. "covariant"
func (v Variance) Name() string {
	switch v {
	case Bivariant:
		return "bivariant"
	case Covariant:
		return "covariant"
	case Contravariant:
		return "contravariant"
	default:
		return "invariant"
	}
}

// Leq is the lattice order, o ≤ +, o ≤ -, + ≤ *, - ≤ *
func (v Variance) Leq(other Variance) bool {
	return (!v.covariant || other.covariant) && (!v.contravariant || other.contravariant)
}

// ParseVariance reads either a symbol (+, -, *, o) or a long name
func ParseVariance(s string) (Variance, error) {
	for _, v := range []Variance{Covariant, Contravariant, Bivariant, Invariant} {
		if s == v.Symbol() || s == v.Name() {
			return v, nil
		}
	}
	return Variance{}, fmt.Errorf("invalid variance %q", s)
}

func (v Variance) MarshalText() ([]byte, error) {
	return []byte(v.Symbol()), nil
}

func (v *Variance) UnmarshalText(text []byte) error {
	parsed, err := ParseVariance(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Transform composes variances along a chain of nested positions.
// Covariance is the identity, bivariance absorbs, invariance absorbs
// what is left, and the remaining signs multiply.
func Transform(a, b Variance) Variance {
	switch {
	case a == Covariant:
		return b
	case b == Covariant:
		return a
	case a == Bivariant || b == Bivariant:
		return Bivariant
	case a == Invariant || b == Invariant:
		return Invariant
	default:
		// both contravariant
		return Covariant
	}
}

// Join combines two independent occurrences of the same parameter
func Join(a, b Variance) Variance {
	return Variance{
		covariant:     a.covariant || b.covariant,
		contravariant: a.contravariant || b.contravariant,
	}
}

// Meet narrows a by the additional upper bound b
func Meet(a, b Variance) Variance {
	return Variance{
		covariant:     a.covariant && b.covariant,
		contravariant: a.contravariant && b.contravariant,
	}
}

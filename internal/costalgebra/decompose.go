package costalgebra

import (
	"sort"
	"strings"
)

// Basis is a set of monomials, keyed by their canonical String form
// so membership and union are simple map operations (spec §4.1).
type Basis map[string]Term

// NewBasis builds a Basis from a list of terms, deduplicating by
// canonical form.
func NewBasis(terms ...Term) Basis {
	b := make(Basis, len(terms))
	for _, t := range terms {
		b[t.String()] = t
	}
	return b
}

// Union returns a new Basis containing every monomial of both b and
// other.
func (b Basis) Union(other Basis) Basis {
	out := make(Basis, len(b)+len(other))
	for k, v := range b {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Contains reports whether t (by canonical form) is already present.
func (b Basis) Contains(t Term) bool {
	_, ok := b[t.String()]
	return ok
}

// Sorted returns the basis's terms ordered longest-string-first, the
// same display order the tcaml prototype's DecomposedCost.__str__ uses.
func (b Basis) Sorted() []Term {
	out := make([]Term, 0, len(b))
	for _, t := range b {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return len(out[i].String()) > len(out[j].String()) })
	return out
}

func (b Basis) String() string {
	parts := make([]string, 0, len(b))
	for _, t := range b.Sorted() {
		parts = append(parts, t.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ExpandBasis returns the set of monomials needed to upper-bound
// linear combinations of expr under O(·) (spec §4.1).
func ExpandBasis(expr Term) Basis {
	switch e := expr.(type) {
	case *Int:
		return NewBasis(One())
	case *Var:
		return NewBasis(e, One())
	case *Log:
		return NewBasis(e, One())
	case *Poly:
		terms := make([]Term, 0, e.Degree+1)
		for i := 0; i <= e.Degree; i++ {
			terms = append(terms, MakePoly(e.Base, i))
		}
		return NewBasis(terms...)
	case *Exp:
		return NewBasis(e, One())
	case *Binary:
		switch e.Op {
		case OpMul:
			left := ExpandBasis(e.Left)
			right := ExpandBasis(e.Right)
			out := make(Basis, len(left)*len(right))
			for _, l := range left {
				for _, r := range right {
					m := MakeMul(l, r)
					out[m.String()] = m
				}
			}
			return out
		case OpAdd, OpSub:
			return ExpandBasis(e.Left).Union(ExpandBasis(e.Right))
		}
	}
	return NewBasis(expr, One())
}

// DecomposedCost is (fixed, basis): the deterministic part and the
// set of monomials whose coefficients are left free for the solver.
type DecomposedCost struct {
	Fixed Term
	Basis Basis
}

func (d DecomposedCost) String() string {
	return "[Fixed: " + d.Fixed.String() + " | Basis: " + d.Basis.String() + "]"
}

// Decompose implements spec §4.1's decomposition rules.
func Decompose(expr Term) DecomposedCost {
	switch e := expr.(type) {
	case *BigO:
		return DecomposedCost{Fixed: Val(0), Basis: ExpandBasis(e.Body)}

	case *Binary:
		left := Decompose(e.Left)
		right := Decompose(e.Right)

		switch e.Op {
		case OpAdd:
			return DecomposedCost{Fixed: MakeAdd(left.Fixed, right.Fixed), Basis: left.Basis.Union(right.Basis)}
		case OpSub:
			return DecomposedCost{Fixed: MakeSub(left.Fixed, right.Fixed), Basis: left.Basis.Union(right.Basis)}
		case OpMul:
			fixed := MakeMul(left.Fixed, right.Fixed)
			basis := make(Basis)

			if !isZero(left.Fixed) {
				for _, b := range right.Basis {
					m := MakeMul(left.Fixed, b)
					basis[m.String()] = m
				}
			}
			if !isZero(right.Fixed) {
				for _, b := range left.Basis {
					m := MakeMul(b, right.Fixed)
					basis[m.String()] = m
				}
			}
			for _, b1 := range left.Basis {
				for _, b2 := range right.Basis {
					m := MakeMul(b1, b2)
					basis[m.String()] = m
				}
			}
			return DecomposedCost{Fixed: fixed, Basis: basis}
		}
	}

	return DecomposedCost{Fixed: expr, Basis: make(Basis)}
}

func isZero(t Term) bool {
	i, ok := t.(*Int)
	return ok && i.Value == 0
}

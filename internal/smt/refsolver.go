package smt

import (
	"fmt"
	"strings"
)

// RefSolver is the one in-process reference Solver this module ships.
// It does not implement general linear arithmetic: it decides exactly
// the obligation shape the verifier ever produces, `domain => lhs <=
// rhs`, by comparing the asymptotic growth rank of lhs and rhs read
// directly off their Expr trees. Free coefficient variables (names not
// recognized as n, log_n or a pow_*_n witness) don't affect growth
// order, so they never need their own existential search: a valid
// positive witness always exists once the rank comparison holds, and
// none exists when it doesn't. This is the reference-implementation
// license spec's Design Notes grant when no vendored SMT binding is
// wired in.
type RefSolver struct {
	reals      map[string]bool
	facts      []Formula
	quantified []quantifiedFact
}

type quantifiedFact struct {
	vars []string
	f    Formula
}

// NewRefSolver returns an empty solver instance.
func NewRefSolver() *RefSolver {
	return &RefSolver{reals: make(map[string]bool)}
}

func (s *RefSolver) DeclareReal(name string) { s.reals[name] = true }

func (s *RefSolver) Assert(f Formula) { s.facts = append(s.facts, f) }

func (s *RefSolver) AssertForall(vars []string, f Formula) {
	s.quantified = append(s.quantified, quantifiedFact{vars: vars, f: f})
}

func (s *RefSolver) Reset() {
	s.reals = make(map[string]bool)
	s.facts = nil
	s.quantified = nil
}

// CheckSat scans the asserted universally-quantified facts for the
// `implies(domain, lhs <= rhs)` shape and decides it by rank
// comparison. A solver with no such fact asserted has nothing to
// discharge.
func (s *RefSolver) CheckSat() (Status, error) {
	for _, q := range s.quantified {
		le, ok := consequentLe(q.f)
		if !ok {
			continue
		}
		lhsRank, lhsOK := exprRank(le.Left)
		rhsRank, rhsOK := exprRank(le.Right)
		if !lhsOK || !rhsOK {
			return Unknown, nil
		}
		if lhsRank.Less(rhsRank) || lhsRank.Equal(rhsRank) {
			return Sat, nil
		}
		return Unsat, nil
	}
	return Unknown, fmt.Errorf("smt: no decidable obligation was asserted")
}

func consequentLe(f Formula) (*Le, bool) {
	switch v := f.(type) {
	case *Le:
		return v, true
	case *Implies:
		return consequentLe(v.Consequent)
	case *And:
		for _, c := range v.Conjuncts {
			if le, ok := consequentLe(c); ok {
				return le, true
			}
		}
	}
	return nil, false
}

// growthRank mirrors costalgebra.Rank structurally over an Expr tree,
// without importing costalgebra: this package only ever sees the
// shape the symbolic bridge hands it (Var names n / log_n / pow_*_n,
// Sum/Product/Pow, and free coefficient Vars that don't affect order).
type growthRank struct {
	exponential bool
	degree      float64
	log         bool
}

func (r growthRank) Less(o growthRank) bool {
	if r.exponential != o.exponential {
		return o.exponential
	}
	if r.exponential {
		return false
	}
	if r.degree != o.degree {
		return r.degree < o.degree
	}
	return !r.log && o.log
}

func (r growthRank) Equal(o growthRank) bool {
	return r.exponential == o.exponential && r.degree == o.degree && r.log == o.log
}

func exprRank(e Expr) (growthRank, bool) {
	switch v := e.(type) {
	case *Const:
		return growthRank{}, true
	case *Var:
		switch {
		case v.Name == "n":
			return growthRank{degree: 1}, true
		case v.Name == "log_n":
			return growthRank{log: true}, true
		case strings.HasPrefix(v.Name, "pow_"):
			return growthRank{exponential: true}, true
		default:
			return growthRank{}, true
		}
	case *Pow:
		base, ok := exprRank(v.Base)
		if !ok {
			return growthRank{}, false
		}
		if base.exponential {
			return growthRank{exponential: true}, true
		}
		return growthRank{degree: base.degree * float64(v.Exp), log: base.log}, true
	case *Sum:
		best := growthRank{}
		for i, t := range v.Terms {
			r, ok := exprRank(t)
			if !ok {
				return growthRank{}, false
			}
			if i == 0 || best.Less(r) {
				best = r
			}
		}
		return best, true
	case *Product:
		total := growthRank{}
		for _, f := range v.Factors {
			r, ok := exprRank(f)
			if !ok {
				return growthRank{}, false
			}
			if r.exponential {
				total.exponential = true
				continue
			}
			total.degree += r.degree
			total.log = total.log || r.log
		}
		return total, true
	default:
		return growthRank{}, false
	}
}

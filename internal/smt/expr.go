// Package smt models the restricted arithmetic fragment the verifier
// discharges obligations against: declared reals, sums/products/powers
// over them, and the linear-arithmetic comparisons built on top (spec
// §4.2, §4.5, §6). It is grounded on the tcaml prototype's verifier/smt.py
// Z3Translator, adapted from a genuine Z3 binding to a small in-process
// expression tree plus a single reference Solver (spec's Design Notes
// sanction exactly this when no vendored solver binding is available).
package smt

import (
	"fmt"
	"strings"
)

// Expr is a term in the solver's arithmetic universe.
type Expr interface {
	exprNode()
	fmt.Stringer
}

// Const is a literal real.
type Const struct{ Value float64 }

// Var is a declared real: the size scalar n, its log, a pow_b_n
// witness, or a free per-function coefficient c_{func,i}.
type Var struct{ Name string }

// Sum is the addition of one or more terms.
type Sum struct{ Terms []Expr }

// Product is the multiplication of one or more terms.
type Product struct{ Factors []Expr }

// Pow is Base raised to a fixed non-negative integer exponent.
type Pow struct {
	Base Expr
	Exp  int
}

func (*Const) exprNode()   {}
func (*Var) exprNode()     {}
func (*Sum) exprNode()     {}
func (*Product) exprNode() {}
func (*Pow) exprNode()     {}

func (e *Const) String() string { return fmt.Sprintf("%g", e.Value) }
func (e *Var) String() string   { return e.Name }

func (e *Sum) String() string {
	parts := make([]string, len(e.Terms))
	for i, t := range e.Terms {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, " + ") + ")"
}

func (e *Product) String() string {
	parts := make([]string, len(e.Factors))
	for i, f := range e.Factors {
		parts[i] = f.String()
	}
	return "(" + strings.Join(parts, " * ") + ")"
}

func (e *Pow) String() string { return fmt.Sprintf("(%s^%d)", e.Base, e.Exp) }

// NewConst wraps a literal real.
func NewConst(v float64) Expr { return &Const{Value: v} }

// NewVar wraps a declared real by name.
func NewVar(name string) Expr { return &Var{Name: name} }

// Add flattens nested sums and drops literal-zero addends.
func Add(terms ...Expr) Expr {
	flat := make([]Expr, 0, len(terms))
	for _, t := range terms {
		if c, ok := t.(*Const); ok && c.Value == 0 {
			continue
		}
		if s, ok := t.(*Sum); ok {
			flat = append(flat, s.Terms...)
			continue
		}
		flat = append(flat, t)
	}
	switch len(flat) {
	case 0:
		return NewConst(0)
	case 1:
		return flat[0]
	default:
		return &Sum{Terms: flat}
	}
}

// Mul flattens nested products and drops literal-one factors.
func Mul(factors ...Expr) Expr {
	flat := make([]Expr, 0, len(factors))
	for _, f := range factors {
		if c, ok := f.(*Const); ok {
			if c.Value == 0 {
				return NewConst(0)
			}
			if c.Value == 1 {
				continue
			}
		}
		if p, ok := f.(*Product); ok {
			flat = append(flat, p.Factors...)
			continue
		}
		flat = append(flat, f)
	}
	switch len(flat) {
	case 0:
		return NewConst(1)
	case 1:
		return flat[0]
	default:
		return &Product{Factors: flat}
	}
}

// Raise builds base^exp, folding exp 0 and 1.
func Raise(base Expr, exp int) Expr {
	if exp == 0 {
		return NewConst(1)
	}
	if exp == 1 {
		return base
	}
	return &Pow{Base: base, Exp: exp}
}

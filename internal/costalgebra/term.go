// Package costalgebra implements the normalized cost-term sum type
// and basis decomposition of spec §4.1, grounded directly on the
// tcaml prototype's verification/cost.py.
package costalgebra

import "fmt"

// Op is a cost-term binary operator.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	// OpDiv exists only to express a call site's derived size
	// substitution (spec §4.2, `n_call = n/k`); it never appears in a
	// cost template and the basis-expansion/decompose rules don't need
	// to know about it.
	OpDiv
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// Term is a normalized cost term. Every value of this interface must
// come from the smart constructors in ctors.go: no variant is built
// directly once its arguments are known, so the simplification
// invariants documented there always hold.
type Term interface {
	termNode()
	fmt.Stringer
}

// Int is an integer literal.
type Int struct{ Value int }

// Var is a free cost-algebra variable (typically the size scalar n,
// or a term introduced while expanding a product).
type Var struct{ Name string }

// Binary is a sum, difference or product of two terms.
type Binary struct {
	Op          Op
	Left, Right Term
}

// Log is the logarithm of a term (base 2, per SPEC_FULL.md).
type Log struct{ Body Term }

// Poly is base^degree for a non-negative integer degree ≥ 2 (degrees
// 0 and 1 are folded away by MakePoly).
type Poly struct {
	Base   Term
	Degree int
}

// Exp is base^exponent where base is a literal integer ≥ 2 and
// exponent is a term that typically contains the size variable.
type Exp struct {
	Base     int
	Exponent Term
}

// BigO is a declared asymptotic bound over body.
type BigO struct{ Body Term }

// Call is an uninterpreted measure application, `measure(arg)`
// (spec §4.4: "len(v) is rendered as an uninterpreted function
// application ... over the symbolic algebra").
type Call struct {
	Func string
	Arg  Term
}

func (*Int) termNode()    {}
func (*Var) termNode()    {}
func (*Binary) termNode() {}
func (*Log) termNode()    {}
func (*Poly) termNode()   {}
func (*Exp) termNode()    {}
func (*BigO) termNode()   {}
func (*Call) termNode()   {}

func (t *Int) String() string    { return fmt.Sprintf("%d", t.Value) }
func (t *Var) String() string    { return t.Name }
func (t *Binary) String() string { return fmt.Sprintf("(%s %s %s)", t.Left, t.Op, t.Right) }
func (t *Log) String() string    { return fmt.Sprintf("log(%s)", t.Body) }
func (t *Poly) String() string   { return fmt.Sprintf("(%s^%d)", t.Base, t.Degree) }
func (t *Exp) String() string    { return fmt.Sprintf("(%d^%s)", t.Base, t.Exponent) }
func (t *BigO) String() string   { return fmt.Sprintf("O(%s)", t.Body) }
func (t *Call) String() string   { return fmt.Sprintf("%s(%s)", t.Func, t.Arg) }

// Equal compares two terms structurally via their canonical String
// form; every constructor normalizes deterministically, so structural
// equality coincides with string equality.
func Equal(a, b Term) bool { return a.String() == b.String() }

package smt

import "fmt"

// Formula is a boolean combination over Expr comparisons.
type Formula interface {
	formulaNode()
	fmt.Stringer
}

// Le is Left <= Right.
type Le struct{ Left, Right Expr }

// Lt is Left < Right.
type Lt struct{ Left, Right Expr }

// Ge is Left >= Right.
type Ge struct{ Left, Right Expr }

// Gt is Left > Right.
type Gt struct{ Left, Right Expr }

// And is the conjunction of zero or more formulas.
type And struct{ Conjuncts []Formula }

// Implies is Antecedent => Consequent.
type Implies struct{ Antecedent, Consequent Formula }

// Not negates a formula.
type Not struct{ Inner Formula }

func (*Le) formulaNode()      {}
func (*Lt) formulaNode()      {}
func (*Ge) formulaNode()      {}
func (*Gt) formulaNode()      {}
func (*And) formulaNode()     {}
func (*Implies) formulaNode() {}
func (*Not) formulaNode()     {}

func (f *Le) String() string { return fmt.Sprintf("%s <= %s", f.Left, f.Right) }
func (f *Lt) String() string { return fmt.Sprintf("%s < %s", f.Left, f.Right) }
func (f *Ge) String() string { return fmt.Sprintf("%s >= %s", f.Left, f.Right) }
func (f *Gt) String() string { return fmt.Sprintf("%s > %s", f.Left, f.Right) }

func (f *And) String() string {
	s := ""
	for i, c := range f.Conjuncts {
		if i > 0 {
			s += " and "
		}
		s += c.String()
	}
	return s
}

func (f *Implies) String() string { return fmt.Sprintf("(%s => %s)", f.Antecedent, f.Consequent) }
func (f *Not) String() string     { return fmt.Sprintf("not(%s)", f.Inner) }

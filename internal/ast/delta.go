package ast

import "fmt"

// Delta is a ground data shape (δ in spec §3): the types that a value
// in the source language can carry, stripped of refinement predicates.
type Delta interface {
	Node
	deltaNode()
}

type DUnit struct{ Pos Position }
type DInt struct{ Pos Position }
type DBool struct{ Pos Position }

type DProd struct {
	Pos         Position
	Left, Right Delta
}

type DList struct {
	Pos Position
	Elem Delta
}

type DArray struct {
	Pos  Position
	Elem Delta
}

type DTuple struct {
	Pos   Position
	Elems []Delta
}

// DParam is an opaque type parameter (a generic element type the
// pipeline never needs to look inside, e.g. the `'a` of `'a list`).
type DParam struct {
	Pos  Position
	Name string
}

func (d *DUnit) deltaNode()  {}
func (d *DInt) deltaNode()   {}
func (d *DBool) deltaNode()  {}
func (d *DProd) deltaNode()  {}
func (d *DList) deltaNode()  {}
func (d *DArray) deltaNode() {}
func (d *DTuple) deltaNode() {}
func (d *DParam) deltaNode() {}

func (d *DUnit) NodePos() Position  { return d.Pos }
func (d *DInt) NodePos() Position   { return d.Pos }
func (d *DBool) NodePos() Position  { return d.Pos }
func (d *DProd) NodePos() Position  { return d.Pos }
func (d *DList) NodePos() Position  { return d.Pos }
func (d *DArray) NodePos() Position { return d.Pos }
func (d *DTuple) NodePos() Position { return d.Pos }
func (d *DParam) NodePos() Position { return d.Pos }

func (d *DUnit) String() string { return "unit" }
func (d *DInt) String() string  { return "int" }
func (d *DBool) String() string { return "bool" }
func (d *DProd) String() string { return fmt.Sprintf("(%s * %s)", d.Left, d.Right) }
func (d *DList) String() string { return fmt.Sprintf("%s list", d.Elem) }
func (d *DArray) String() string { return fmt.Sprintf("%s array", d.Elem) }
func (d *DTuple) String() string {
	s := "("
	for i, e := range d.Elems {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + ")"
}
func (d *DParam) String() string { return d.Name }

// IsInt reports whether a ground shape is the int primitive; used by
// the VC generator to reject non-int refinements (spec §4.4 step 1).
func IsInt(d Delta) bool {
	_, ok := d.(*DInt)
	return ok
}

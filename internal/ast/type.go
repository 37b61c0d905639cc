package ast

import "fmt"

// Type is the sum type over base types, refinement types and function
// arrows (spec §3). Arrows carry the cost template and size measure
// that the VC generator extracts.
type Type interface {
	Node
	typeNode()
}

// TBase is a plain ground shape with no attached predicate: τ = δ.
type TBase struct {
	Pos   Position
	Shape Delta
}

// TRefinement is `{ x : δ | φ }`.
type TRefinement struct {
	Pos   Position
	Ident string
	Shape Delta
	Pred  Spec
}

// TArrow is `(x : τ) -> τ' @ c measure s`.
type TArrow struct {
	Pos      Position
	Param    string
	ParamTy  Type
	Result   Type
	Cost     Spec
	Measure  Spec
}

func (t *TBase) typeNode()       {}
func (t *TRefinement) typeNode() {}
func (t *TArrow) typeNode()      {}

func (t *TBase) NodePos() Position       { return t.Pos }
func (t *TRefinement) NodePos() Position { return t.Pos }
func (t *TArrow) NodePos() Position      { return t.Pos }

func (t *TBase) String() string { return t.Shape.String() }
func (t *TRefinement) String() string {
	return fmt.Sprintf("{%s : %s | %s}", t.Ident, t.Shape, t.Pred)
}
func (t *TArrow) String() string {
	return fmt.Sprintf("(%s : %s) -> %s @ O(%s) measure %s", t.Param, t.ParamTy, t.Result, t.Cost, t.Measure)
}

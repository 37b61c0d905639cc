package ast

import "fmt"

// SpecBinOpKind enumerates the arithmetic, relational and boolean
// operators available inside a Spec (logical predicate / size
// expression / cost template).
type SpecBinOpKind int

const (
	SPAdd SpecBinOpKind = iota
	SPSub
	SPMul
	SPDiv
	SPMod
	SPPow
	SPEq
	SPNeq
	SPLt
	SPGt
	SPLeq
	SPGeq
	SPAnd
	SPOr
)

func (k SpecBinOpKind) String() string {
	switch k {
	case SPAdd:
		return "+"
	case SPSub:
		return "-"
	case SPMul:
		return "*"
	case SPDiv:
		return "/"
	case SPMod:
		return "mod"
	case SPPow:
		return "^"
	case SPEq:
		return "="
	case SPNeq:
		return "<>"
	case SPLt:
		return "<"
	case SPGt:
		return ">"
	case SPLeq:
		return "<="
	case SPGeq:
		return ">="
	case SPAnd:
		return "&&"
	case SPOr:
		return "||"
	}
	return "?"
}

// Spec is the sum type mirroring arithmetic expressions plus
// forall/exists, if-then-else and measure application (spec §3). It
// is used uniformly for refinement predicates φ, cost templates c and
// size expressions s.
type Spec interface {
	Node
	specNode()
}

type SPVar struct {
	Pos   Position
	Ident string
}

type SPInt struct {
	Pos   Position
	Value int
}

type SPBool struct {
	Pos   Position
	Value bool
}

type SPNot struct {
	Pos  Position
	Body Spec
}

type SPBinOp struct {
	Pos         Position
	Op          SpecBinOpKind
	Left, Right Spec
}

// SPLog is the logarithmic cost-template constructor `log(body)`
// (base 2, per the tcaml prototype's `sp.log(x, 2)` — see SPEC_FULL.md).
type SPLog struct {
	Pos  Position
	Body Spec
}

// SPForAll / SPExists are the quantified predicates `forall x. φ` and
// `exists x. φ`; the VC generator rejects them inside a cost or size
// template.
type SPForAll struct {
	Pos   Position
	Ident string
	Body  Spec
}

type SPExists struct {
	Pos   Position
	Ident string
	Body  Spec
}

type SPIte struct {
	Pos               Position
	Cond, Then, Else  Spec
}

// SPMeasureCall applies a named measure (critically `len`) to an
// argument expression: `len xs`.
type SPMeasureCall struct {
	Pos     Position
	Measure string
	Arg     Spec
}

func (s *SPVar) specNode()         {}
func (s *SPInt) specNode()         {}
func (s *SPBool) specNode()        {}
func (s *SPNot) specNode()         {}
func (s *SPBinOp) specNode()       {}
func (s *SPLog) specNode()         {}
func (s *SPForAll) specNode()      {}
func (s *SPExists) specNode()      {}
func (s *SPIte) specNode()         {}
func (s *SPMeasureCall) specNode() {}

func (s *SPVar) NodePos() Position         { return s.Pos }
func (s *SPInt) NodePos() Position         { return s.Pos }
func (s *SPBool) NodePos() Position        { return s.Pos }
func (s *SPNot) NodePos() Position         { return s.Pos }
func (s *SPBinOp) NodePos() Position       { return s.Pos }
func (s *SPLog) NodePos() Position         { return s.Pos }
func (s *SPForAll) NodePos() Position      { return s.Pos }
func (s *SPExists) NodePos() Position      { return s.Pos }
func (s *SPIte) NodePos() Position         { return s.Pos }
func (s *SPMeasureCall) NodePos() Position { return s.Pos }

func (s *SPVar) String() string  { return s.Ident }
func (s *SPInt) String() string  { return fmt.Sprintf("%d", s.Value) }
func (s *SPBool) String() string { return fmt.Sprintf("%t", s.Value) }
func (s *SPNot) String() string  { return fmt.Sprintf("not %s", s.Body) }
func (s *SPBinOp) String() string {
	return fmt.Sprintf("(%s %s %s)", s.Left, s.Op, s.Right)
}
func (s *SPLog) String() string    { return fmt.Sprintf("log(%s)", s.Body) }
func (s *SPForAll) String() string { return fmt.Sprintf("forall %s. %s", s.Ident, s.Body) }
func (s *SPExists) String() string { return fmt.Sprintf("exists %s. %s", s.Ident, s.Body) }
func (s *SPIte) String() string {
	return fmt.Sprintf("if %s then %s else %s", s.Cond, s.Then, s.Else)
}
func (s *SPMeasureCall) String() string { return fmt.Sprintf("%s %s", s.Measure, s.Arg) }

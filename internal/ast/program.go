package ast

import "fmt"

// Def is a top-level program definition: a function or a measure.
type Def interface {
	Node
	defNode()
	DefName() string
}

// EFuncDef is `let [rec] f : τ = e` or its curried-argument sugar
// `let f (x1:τ1)...(xk:τk) : τ @ c measure s = e`. The curried
// arguments have no fields of their own: Typ is
// the full curried arrow type `(x1:τ1) -> ... -> τ @ c measure s`
// that the VC generator walks to recover per-argument fresh symbols
// (spec §4.4 step 1). Body is the expression after the lambda prefix
// has already been introduced as nested EFun nodes — downstream code
// strips that prefix via StripLambdas before enumerating paths.
type EFuncDef struct {
	Pos  Position
	Name string
	Rec  bool
	Typ  Type
	Body Expr
}

// EMeasureDef is `measure m (x : τ) : τret = e`. Only `len` is
// supported; any other measure definition is rejected by the VC
// generator (spec §4.4).
type EMeasureDef struct {
	Pos     Position
	Name    string
	Param   string
	ParamTy Type
	RetTy   Type
	Body    Expr
}

func (d *EFuncDef) defNode()    {}
func (d *EMeasureDef) defNode() {}

func (d *EFuncDef) NodePos() Position    { return d.Pos }
func (d *EMeasureDef) NodePos() Position { return d.Pos }

func (d *EFuncDef) DefName() string    { return d.Name }
func (d *EMeasureDef) DefName() string { return d.Name }

func (d *EFuncDef) String() string {
	rec := ""
	if d.Rec {
		rec = "rec "
	}
	return fmt.Sprintf("let %s%s : %s = %s", rec, d.Name, d.Typ, d.Body)
}

func (d *EMeasureDef) String() string {
	return fmt.Sprintf("measure %s (%s : %s) : %s = %s", d.Name, d.Param, d.ParamTy, d.RetTy, d.Body)
}

// Program is the ordered list of top-level definitions the parser
// produces; it is never mutated once parsing completes.
type Program struct {
	Defs []Def
}

// StripLambdas walks `fun (x:τ) -> fun (y:τ') -> ... -> body` and
// returns the innermost body, discarding the argument-binding prefix
// that the VC generator has already consumed to build the argument
// environment (spec §4.4 step 4).
func StripLambdas(e Expr) Expr {
	for {
		fn, ok := e.(*EFun)
		if !ok {
			return e
		}
		e = fn.Body
	}
}

package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Program is a semicolon-separated list of top-level definitions
// (spec §6).
type Program struct {
	Pos  lexer.Position
	Defs []*Def `@@*`
}

type Def struct {
	Pos     lexer.Position
	Func    *FuncDef    `  @@`
	Measure *MeasureDef `| @@`
}

// Param is one `(x : τ)` of a curried argument list.
type Param struct {
	Pos  lexer.Position
	Name string `"(" @Ident ":"`
	Typ  *Type  `@@ ")"`
}

// FuncDef covers both declaration forms spec §6 lists:
//
//	let [rec] f : τ = e
//	let f (x1:τ1) ... (xk:τk) : τ @ O(c) measure s = e
//
// When Params is non-empty the curried-sugar form applies and Sig is
// only the return type τ, followed by the `@ O(c) measure s` template;
// when Params is empty the direct form applies and the full arrow type
// is parsed as Sig.
type FuncDef struct {
	Pos     lexer.Position
	Rec     bool     `"let" ( @"rec" )?`
	Name    string   `@Ident`
	Params  []*Param `( @@ )*`
	Sig     *Type    `( ":" @@ )?`
	Cost    *Spec    `( "@" "O" "(" @@ ")" )?`
	Measure *Spec    `( "measure" @@ )?`
	Body    *Expr    `"=" @@ ";"`
}

type MeasureDef struct {
	Pos   lexer.Position
	Name  string `"measure" @Ident`
	Param *Param `@@`
	RetTy *Type  `":" @@`
	Body  *Expr  `"=" @@ ";"`
}

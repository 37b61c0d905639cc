package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Spec is the logical-predicate / size-expression / cost-template
// grammar (spec §3): arithmetic plus forall/exists, if-then-else and
// measure application. Precedence, low to high:
// || < && < (= <> < > <= >=) < (+ -) < (* / mod) < unary < pow < atom.
type Spec struct {
	Pos lexer.Position
	Or  *SpecOr `@@`
}

type SpecOr struct {
	Pos   lexer.Position
	Left  *SpecAnd   `@@`
	Rest  []*SpecOrTail `( @@ )*`
}

type SpecOrTail struct {
	Pos  lexer.Position
	Op   string   `@"||"`
	Expr *SpecAnd `@@`
}

type SpecAnd struct {
	Pos  lexer.Position
	Left *SpecCmp       `@@`
	Rest []*SpecAndTail `( @@ )*`
}

type SpecAndTail struct {
	Pos  lexer.Position
	Op   string   `@"&&"`
	Expr *SpecCmp `@@`
}

type SpecCmp struct {
	Pos   lexer.Position
	Left  *SpecAdd     `@@`
	Right *SpecCmpTail `( @@ )?`
}

type SpecCmpTail struct {
	Pos  lexer.Position
	Op   string   `@( "=" | "<>" | "<=" | ">=" | "<" | ">" )`
	Expr *SpecAdd `@@`
}

type SpecAdd struct {
	Pos  lexer.Position
	Left *SpecMul       `@@`
	Rest []*SpecAddTail `( @@ )*`
}

type SpecAddTail struct {
	Pos  lexer.Position
	Op   string   `@( "+" | "-" )`
	Expr *SpecMul `@@`
}

type SpecMul struct {
	Pos  lexer.Position
	Left *SpecUnary     `@@`
	Rest []*SpecMulTail `( @@ )*`
}

type SpecMulTail struct {
	Pos  lexer.Position
	Op   string     `@( "*" | "/" | "mod" )`
	Expr *SpecUnary `@@`
}

type SpecUnary struct {
	Pos  lexer.Position
	Not  bool     `@"not"?`
	Neg  bool     `@"-"?`
	Expr *SpecPow `@@`
}

type SpecPow struct {
	Pos   lexer.Position
	Base  *SpecAtom `@@`
	Exp   *SpecPow  `( "^" @@ )?`
}

// SpecAtom is the leaf of the spec grammar: forall/exists,
// if-then-else, a measure application (`len e`), `log(...)`, a
// literal, an identifier or a parenthesized spec.
type SpecAtom struct {
	Pos     lexer.Position
	Quant   *SpecQuant   `  @@`
	Ite     *SpecIte     `| @@`
	Log     *Spec        `| "log" "(" @@ ")"`
	Measure *SpecMeasure `| @@`
	Int     *int         `| @Int`
	Bool    *string      `| @( "true" | "false" )`
	Ident   string       `| @Ident`
	Paren   *Spec        `| "(" @@ ")"`
}

type SpecQuant struct {
	Pos   lexer.Position
	Kind  string `@( "forall" | "exists" )`
	Ident string `@Ident "." `
	Body  *Spec  `@@`
}

type SpecIte struct {
	Pos  lexer.Position
	Cond *Spec `"if" @@`
	Then *Spec `"then" @@`
	Else *Spec `"else" @@`
}

type SpecMeasure struct {
	Pos     lexer.Position
	Measure string `@Ident`
	Arg     *SpecAtom `@@`
}

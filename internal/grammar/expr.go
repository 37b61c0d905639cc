package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Expr is the top-level expression grammar (spec §3, §6). The
// control-flow forms (if/let/fun/match) extend as far right as
// possible, so they are tried before the arithmetic/boolean cascade.
type Expr struct {
	Pos   lexer.Position
	If    *IfExpr    `  @@`
	Let   *LetExpr   `| @@`
	Fun   *FunExpr   `| @@`
	Match *MatchExpr `| @@`
	Or    *OrExpr    `| @@`
}

type IfExpr struct {
	Pos  lexer.Position
	Cond *Expr `"if" @@`
	Then *Expr `"then" @@`
	Else *Expr `"else" @@`
}

type LetExpr struct {
	Pos   lexer.Position
	Rec   bool   `"let" ( @"rec" )?`
	Ident string `@Ident`
	Typ   *Type  `( ":" @@ )?`
	Value *Expr  `"=" @@`
	Body  *Expr  `"in" @@`
}

type FunExpr struct {
	Pos     lexer.Position
	Param   string `"fun" "(" @Ident ":"`
	ParamTy *Type  `@@ ")" "->"`
	Body    *Expr  `@@`
}

type MatchExpr struct {
	Pos       lexer.Position
	Scrutinee *Expr          `"match" @@ "with"`
	Clauses   []*MatchClause `( @@ )*`
}

type MatchClause struct {
	Pos     lexer.Position
	Pattern *Pattern `"|" @@ "->"`
	Body    *Expr    `@@`
}

// Arithmetic / boolean precedence cascade, low to high:
// || < && < (= <> < > <= >=) < :: < (+ -) < (* / mod) < unary < app.
type OrExpr struct {
	Pos  lexer.Position
	Left *AndExpr     `@@`
	Rest []*OrTail    `( @@ )*`
}

type OrTail struct {
	Pos  lexer.Position
	Op   string   `@"||"`
	Expr *AndExpr `@@`
}

type AndExpr struct {
	Pos  lexer.Position
	Left *CmpExpr  `@@`
	Rest []*AndTail `( @@ )*`
}

type AndTail struct {
	Pos  lexer.Position
	Op   string   `@"&&"`
	Expr *CmpExpr `@@`
}

type CmpExpr struct {
	Pos   lexer.Position
	Left  *ConsExpr `@@`
	Right *CmpTail  `( @@ )?`
}

type CmpTail struct {
	Pos  lexer.Position
	Op   string    `@( "=" | "<>" | "<=" | ">=" | "<" | ">" )`
	Expr *ConsExpr `@@`
}

// ConsExpr is right-associative: `1 :: 2 :: xs`.
type ConsExpr struct {
	Pos  lexer.Position
	Head *AddExpr  `@@`
	Tail *ConsExpr `( "::" @@ )?`
}

type AddExpr struct {
	Pos  lexer.Position
	Left *MulExpr  `@@`
	Rest []*AddTail `( @@ )*`
}

type AddTail struct {
	Pos  lexer.Position
	Op   string   `@( "+" | "-" )`
	Expr *MulExpr `@@`
}

type MulExpr struct {
	Pos  lexer.Position
	Left *UnaryExpr `@@`
	Rest []*MulTail `( @@ )*`
}

type MulTail struct {
	Pos  lexer.Position
	Op   string     `@( "*" | "/" | "mod" )`
	Expr *UnaryExpr `@@`
}

type UnaryExpr struct {
	Pos  lexer.Position
	Not  bool     `@"not"?`
	Neg  bool     `@"-"?`
	Expr *AppExpr `@@`
}

// AppExpr is left-associative juxtaposition application:
// `f a1 a2 ... ak`. A bare primary with no trailing arguments is
// just that primary.
type AppExpr struct {
	Pos  lexer.Position
	Fn   *PrimaryExpr   `@@`
	Args []*PrimaryExpr `( @@ )*`
}

type PrimaryExpr struct {
	Pos   lexer.Position
	Len   *LenExpr     `  @@`
	Nil   bool         `| @( "[" "]" )`
	Int   *int         `| @Int`
	Bool  *string      `| @( "true" | "false" )`
	Ident string       `| @Ident`
	Paren *Expr        `| "(" @@ ")"`
}

type LenExpr struct {
	Pos  lexer.Position
	Body *PrimaryExpr `"len" @@`
}

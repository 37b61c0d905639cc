package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Pattern is a match-clause pattern (spec §3): ordered pair, nil,
// int/bool literal, or a chain of variable-or-wildcard atoms joined
// by `::` (length 1 is a plain variable bind, length 2 is `x :: xs`,
// length 3 is `x1 :: x2 :: xs` — spec §4.3's only supported shapes).
type Pattern struct {
	Pos   lexer.Position
	Pair  *PairPattern `  @@`
	Nil   bool         `| @( "[" "]" )`
	Int   *int         `| @Int`
	Bool  *string      `| @( "true" | "false" )`
	Chain []*VarOrWild `| @@ ( "::" @@ )*`
}

type VarOrWild struct {
	Pos  lexer.Position
	Wild bool   `  @"_"`
	Name string `| @Ident`
}

type PairPattern struct {
	Pos   lexer.Position
	Left  *VarOrWild `"(" @@ ","`
	Right *VarOrWild `@@ ")"`
}

package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Type is `δ`, `{ x : δ | φ }`, or `(x : τ) -> τ' @ O(c) measure s`
// (spec §3). Arrow is tried first since it is the only alternative
// starting with "(" followed by an identifier and ":" at the same
// nesting depth as a tuple delta; the parser's lookahead budget
// (participle.UseLookahead) disambiguates it from a parenthesized
// tuple/product delta.
type Type struct {
	Pos     lexer.Position
	Arrow   *ArrowType  `  @@`
	Refine  *RefineType `| @@`
	Shape   *Delta      `| @@`
}

type ArrowType struct {
	Pos     lexer.Position
	Param   string `"(" @Ident ":"`
	ParamTy *Type  `@@ ")" "->"`
	Result  *Type  `@@`
	Cost    *Spec  `"@" "O" "(" @@ ")"`
	Measure *Spec  `"measure" @@`
}

type RefineType struct {
	Pos   lexer.Position
	Ident string `"{" @Ident ":"`
	Shape *Delta `@@ "|"`
	Pred  *Spec  `@@ "}"`
}

// Delta is a ground data shape: a product/tuple/list/array postfix
// chain over an atomic base (spec §3: unit, int, bool, product,
// list(δ), array(δ), tuple(δ1...δk), opaque type parameter).
type Delta struct {
	Pos      lexer.Position
	Atom     *DeltaAtom `@@`
	Suffixes []string   `( @( "list" | "array" ) )*`
	Prod     *Delta     `( "*" @@ )?`
}

type DeltaAtom struct {
	Pos   lexer.Position
	Tuple []*Delta `  "(" @@ ( "," @@ )* ")"`
	Name  string   `| @Ident`
}

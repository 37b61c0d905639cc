// Package grammar declares the participle-tagged grammar for the
// ML-style source language (spec §6): the raw parse tree that
// internal/parser walks into internal/ast. Grammar rules are spelled
// out as explicit precedence levels (OrExpr, AndExpr, ... PrimaryExpr)
// in the style of kanso's grammar/grammar.go rather than a hand-rolled
// Pratt parser, so operator precedence is legible straight from the
// struct tags.
package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes source text. Multi-character operators are ordered
// before their single-character prefixes so the regex engine prefers
// the longest match.
var Lexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Whitespace", `[ \t\r\n]+`, nil},
		{"Comment", `//[^\n]*`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Int", `[0-9]+`, nil},
		{"Sym", `->|::|<=|>=|<>|&&|\|\||[(){}\[\]:;,.@+\-*/%<>=|^]`, nil},
	},
})

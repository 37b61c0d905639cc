package parser

import (
	"asymptote/internal/ast"
	"asymptote/internal/errors"
	"asymptote/internal/grammar"
)

func convertPattern(p *grammar.Pattern) (ast.Pattern, error) {
	pos := convertPos(p.Pos)
	switch {
	case p.Pair != nil:
		return convertPairPattern(p.Pair)
	case p.Nil:
		return &ast.PNil{Pos: pos}, nil
	case p.Int != nil:
		return &ast.PInt{Pos: pos, Value: *p.Int}, nil
	case p.Bool != nil:
		return &ast.PBool{Pos: pos, Value: *p.Bool == "true"}, nil
	case len(p.Chain) > 0:
		return convertChainPattern(pos, p.Chain)
	default:
		return nil, errors.Domain(pos, "empty pattern")
	}
}

// convertChainPattern handles the three chain shapes spec §4.3
// matches against: a bare variable/wildcard bind, `x :: xs`, and
// `x1 :: x2 :: xs`.
func convertChainPattern(pos ast.Position, chain []*grammar.VarOrWild) (ast.Pattern, error) {
	names := make([]string, len(chain))
	for i, v := range chain {
		names[i] = convertVarOrWild(v)
	}
	switch len(names) {
	case 1:
		if names[0] == "_" {
			return &ast.PWildcard{Pos: pos}, nil
		}
		return &ast.PVar{Pos: pos, Ident: names[0]}, nil
	case 2:
		return &ast.PCons{Pos: pos, Head: names[0], Tail: names[1]}, nil
	case 3:
		return &ast.PCons{Pos: pos, Head: names[0], Head2: names[1], Tail: names[2]}, nil
	default:
		return nil, errors.Unsupported(pos, "cons pattern with more than two heads")
	}
}

func convertPairPattern(p *grammar.PairPattern) (ast.Pattern, error) {
	return &ast.PPair{
		Pos:   convertPos(p.Pos),
		Left:  convertVarOrWild(p.Left),
		Right: convertVarOrWild(p.Right),
	}, nil
}

// convertVarOrWild renders a wildcard as the literal identifier "_":
// the lexer's Ident rule does match "_", but VarOrWild's own Wild
// alternative is tried first and consumes it, so it is safe as a
// sentinel that no real source binding can collide with.
func convertVarOrWild(v *grammar.VarOrWild) string {
	if v.Wild {
		return "_"
	}
	return v.Name
}

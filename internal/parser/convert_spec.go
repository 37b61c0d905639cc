package parser

import (
	"asymptote/internal/ast"
	"asymptote/internal/errors"
	"asymptote/internal/grammar"
)

// convertSpec folds the grammar's explicit precedence-level structs
// into the flat ast.Spec sum type, left-associating every binary
// level except SpecPow (right-associative, spec §3/§6).
func convertSpec(s *grammar.Spec) (ast.Spec, error) {
	if s == nil {
		return nil, nil
	}
	return convertSpecOr(s.Or)
}

func convertSpecOr(o *grammar.SpecOr) (ast.Spec, error) {
	left, err := convertSpecAnd(o.Left)
	if err != nil {
		return nil, err
	}
	for _, t := range o.Rest {
		right, err := convertSpecAnd(t.Expr)
		if err != nil {
			return nil, err
		}
		left = &ast.SPBinOp{Pos: convertPos(t.Pos), Op: ast.SPOr, Left: left, Right: right}
	}
	return left, nil
}

func convertSpecAnd(a *grammar.SpecAnd) (ast.Spec, error) {
	left, err := convertSpecCmp(a.Left)
	if err != nil {
		return nil, err
	}
	for _, t := range a.Rest {
		right, err := convertSpecCmp(t.Expr)
		if err != nil {
			return nil, err
		}
		left = &ast.SPBinOp{Pos: convertPos(t.Pos), Op: ast.SPAnd, Left: left, Right: right}
	}
	return left, nil
}

func convertSpecCmp(c *grammar.SpecCmp) (ast.Spec, error) {
	left, err := convertSpecAdd(c.Left)
	if err != nil {
		return nil, err
	}
	if c.Right == nil {
		return left, nil
	}
	right, err := convertSpecAdd(c.Right.Expr)
	if err != nil {
		return nil, err
	}
	pos := convertPos(c.Right.Pos)
	op, err := comparisonOp(pos, c.Right.Op)
	if err != nil {
		return nil, err
	}
	return &ast.SPBinOp{Pos: pos, Op: op, Left: left, Right: right}, nil
}

func convertSpecAdd(a *grammar.SpecAdd) (ast.Spec, error) {
	left, err := convertSpecMul(a.Left)
	if err != nil {
		return nil, err
	}
	for _, t := range a.Rest {
		right, err := convertSpecMul(t.Expr)
		if err != nil {
			return nil, err
		}
		pos := convertPos(t.Pos)
		var op ast.SpecBinOpKind
		switch t.Op {
		case "+":
			op = ast.SPAdd
		case "-":
			op = ast.SPSub
		default:
			return nil, errors.Domain(pos, "unknown additive operator %q", t.Op)
		}
		left = &ast.SPBinOp{Pos: pos, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func convertSpecMul(m *grammar.SpecMul) (ast.Spec, error) {
	left, err := convertSpecUnary(m.Left)
	if err != nil {
		return nil, err
	}
	for _, t := range m.Rest {
		right, err := convertSpecUnary(t.Expr)
		if err != nil {
			return nil, err
		}
		pos := convertPos(t.Pos)
		var op ast.SpecBinOpKind
		switch t.Op {
		case "*":
			op = ast.SPMul
		case "/":
			op = ast.SPDiv
		case "mod":
			op = ast.SPMod
		default:
			return nil, errors.Domain(pos, "unknown multiplicative operator %q", t.Op)
		}
		left = &ast.SPBinOp{Pos: pos, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func convertSpecUnary(u *grammar.SpecUnary) (ast.Spec, error) {
	inner, err := convertSpecPow(u.Expr)
	if err != nil {
		return nil, err
	}
	pos := convertPos(u.Pos)
	if u.Not {
		inner = &ast.SPNot{Pos: pos, Body: inner}
	}
	if u.Neg {
		inner = &ast.SPBinOp{Pos: pos, Op: ast.SPSub, Left: &ast.SPInt{Pos: pos, Value: 0}, Right: inner}
	}
	return inner, nil
}

func convertSpecPow(p *grammar.SpecPow) (ast.Spec, error) {
	base, err := convertSpecAtom(p.Base)
	if err != nil {
		return nil, err
	}
	if p.Exp == nil {
		return base, nil
	}
	exp, err := convertSpecPow(p.Exp)
	if err != nil {
		return nil, err
	}
	return &ast.SPBinOp{Pos: convertPos(p.Pos), Op: ast.SPPow, Left: base, Right: exp}, nil
}

func convertSpecAtom(a *grammar.SpecAtom) (ast.Spec, error) {
	pos := convertPos(a.Pos)
	switch {
	case a.Quant != nil:
		return convertSpecQuant(a.Quant)
	case a.Ite != nil:
		return convertSpecIte(a.Ite)
	case a.Log != nil:
		body, err := convertSpec(a.Log)
		if err != nil {
			return nil, err
		}
		return &ast.SPLog{Pos: pos, Body: body}, nil
	case a.Measure != nil:
		return convertSpecMeasure(a.Measure)
	case a.Int != nil:
		return &ast.SPInt{Pos: pos, Value: *a.Int}, nil
	case a.Bool != nil:
		return &ast.SPBool{Pos: pos, Value: *a.Bool == "true"}, nil
	case a.Ident != "":
		return &ast.SPVar{Pos: pos, Ident: a.Ident}, nil
	case a.Paren != nil:
		return convertSpec(a.Paren)
	default:
		return nil, errors.Domain(pos, "empty spec atom")
	}
}

func convertSpecQuant(q *grammar.SpecQuant) (ast.Spec, error) {
	body, err := convertSpec(q.Body)
	if err != nil {
		return nil, err
	}
	pos := convertPos(q.Pos)
	if q.Kind == "exists" {
		return &ast.SPExists{Pos: pos, Ident: q.Ident, Body: body}, nil
	}
	return &ast.SPForAll{Pos: pos, Ident: q.Ident, Body: body}, nil
}

func convertSpecIte(i *grammar.SpecIte) (ast.Spec, error) {
	cond, err := convertSpec(i.Cond)
	if err != nil {
		return nil, err
	}
	then, err := convertSpec(i.Then)
	if err != nil {
		return nil, err
	}
	els, err := convertSpec(i.Else)
	if err != nil {
		return nil, err
	}
	return &ast.SPIte{Pos: convertPos(i.Pos), Cond: cond, Then: then, Else: els}, nil
}

func convertSpecMeasure(m *grammar.SpecMeasure) (ast.Spec, error) {
	arg, err := convertSpecAtom(m.Arg)
	if err != nil {
		return nil, err
	}
	return &ast.SPMeasureCall{Pos: convertPos(m.Pos), Measure: m.Measure, Arg: arg}, nil
}

// comparisonOp maps the shared spec/expr comparison token set to its
// SpecBinOpKind.
func comparisonOp(pos ast.Position, op string) (ast.SpecBinOpKind, error) {
	switch op {
	case "=":
		return ast.SPEq, nil
	case "<>":
		return ast.SPNeq, nil
	case "<":
		return ast.SPLt, nil
	case ">":
		return ast.SPGt, nil
	case "<=":
		return ast.SPLeq, nil
	case ">=":
		return ast.SPGeq, nil
	default:
		return 0, errors.Domain(pos, "unknown comparison operator %q", op)
	}
}

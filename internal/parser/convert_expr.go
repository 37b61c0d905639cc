package parser

import (
	"asymptote/internal/ast"
	"asymptote/internal/errors"
	"asymptote/internal/grammar"
)

func convertExpr(e *grammar.Expr) (ast.Expr, error) {
	switch {
	case e.If != nil:
		return convertIfExpr(e.If)
	case e.Let != nil:
		return convertLetExpr(e.Let)
	case e.Fun != nil:
		return convertFunExpr(e.Fun)
	case e.Match != nil:
		return convertMatchExpr(e.Match)
	case e.Or != nil:
		return convertOrExpr(e.Or)
	default:
		return nil, errors.Domain(convertPos(e.Pos), "empty expression")
	}
}

func convertIfExpr(i *grammar.IfExpr) (ast.Expr, error) {
	cond, err := convertExpr(i.Cond)
	if err != nil {
		return nil, err
	}
	then, err := convertExpr(i.Then)
	if err != nil {
		return nil, err
	}
	els, err := convertExpr(i.Else)
	if err != nil {
		return nil, err
	}
	return &ast.EIf{Pos: convertPos(i.Pos), Cond: cond, Then: then, Else: els}, nil
}

// convertLetExpr rejects `let rec` nested inside an expression body:
// the parser only ever introduces Rec at the top-level FuncDef, and a
// nested self-reference has no recurrence-model counterpart (spec §7
// UnsupportedConstruct).
func convertLetExpr(l *grammar.LetExpr) (ast.Expr, error) {
	if l.Rec {
		return nil, errors.Unsupported(convertPos(l.Pos), "'let rec' nested inside an expression")
	}
	var typ ast.Type
	if l.Typ != nil {
		t, err := convertType(l.Typ)
		if err != nil {
			return nil, err
		}
		typ = t
	}
	value, err := convertExpr(l.Value)
	if err != nil {
		return nil, err
	}
	body, err := convertExpr(l.Body)
	if err != nil {
		return nil, err
	}
	return &ast.ELet{Pos: convertPos(l.Pos), Ident: l.Ident, Typ: typ, Value: value, Body: body}, nil
}

func convertFunExpr(f *grammar.FunExpr) (ast.Expr, error) {
	paramTy, err := convertType(f.ParamTy)
	if err != nil {
		return nil, err
	}
	body, err := convertExpr(f.Body)
	if err != nil {
		return nil, err
	}
	return &ast.EFun{Pos: convertPos(f.Pos), Param: f.Param, ParamTy: paramTy, Body: body}, nil
}

func convertMatchExpr(m *grammar.MatchExpr) (ast.Expr, error) {
	scrutinee, err := convertExpr(m.Scrutinee)
	if err != nil {
		return nil, err
	}
	clauses := make([]ast.MatchClause, 0, len(m.Clauses))
	for _, c := range m.Clauses {
		pat, err := convertPattern(c.Pattern)
		if err != nil {
			return nil, err
		}
		body, err := convertExpr(c.Body)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, ast.MatchClause{Pattern: pat, Body: body})
	}
	return &ast.EMatch{Pos: convertPos(m.Pos), Scrutinee: scrutinee, Clauses: clauses}, nil
}

func convertOrExpr(o *grammar.OrExpr) (ast.Expr, error) {
	left, err := convertAndExpr(o.Left)
	if err != nil {
		return nil, err
	}
	for _, t := range o.Rest {
		right, err := convertAndExpr(t.Expr)
		if err != nil {
			return nil, err
		}
		left = &ast.EBinOp{Pos: convertPos(t.Pos), Op: ast.EOr, Left: left, Right: right}
	}
	return left, nil
}

func convertAndExpr(a *grammar.AndExpr) (ast.Expr, error) {
	left, err := convertCmpExpr(a.Left)
	if err != nil {
		return nil, err
	}
	for _, t := range a.Rest {
		right, err := convertCmpExpr(t.Expr)
		if err != nil {
			return nil, err
		}
		left = &ast.EBinOp{Pos: convertPos(t.Pos), Op: ast.EAnd, Left: left, Right: right}
	}
	return left, nil
}

func convertCmpExpr(c *grammar.CmpExpr) (ast.Expr, error) {
	left, err := convertConsExpr(c.Left)
	if err != nil {
		return nil, err
	}
	if c.Right == nil {
		return left, nil
	}
	right, err := convertConsExpr(c.Right.Expr)
	if err != nil {
		return nil, err
	}
	pos := convertPos(c.Right.Pos)
	op, err := exprComparisonOp(pos, c.Right.Op)
	if err != nil {
		return nil, err
	}
	return &ast.EBinOp{Pos: pos, Op: op, Left: left, Right: right}, nil
}

// convertConsExpr is right-associative: `1 :: 2 :: xs`.
func convertConsExpr(c *grammar.ConsExpr) (ast.Expr, error) {
	head, err := convertAddExpr(c.Head)
	if err != nil {
		return nil, err
	}
	if c.Tail == nil {
		return head, nil
	}
	tail, err := convertConsExpr(c.Tail)
	if err != nil {
		return nil, err
	}
	return &ast.ECons{Pos: convertPos(c.Pos), Head: head, Tail: tail}, nil
}

func convertAddExpr(a *grammar.AddExpr) (ast.Expr, error) {
	left, err := convertMulExpr(a.Left)
	if err != nil {
		return nil, err
	}
	for _, t := range a.Rest {
		right, err := convertMulExpr(t.Expr)
		if err != nil {
			return nil, err
		}
		pos := convertPos(t.Pos)
		var op ast.ExprBinOpKind
		switch t.Op {
		case "+":
			op = ast.EAdd
		case "-":
			op = ast.ESub
		default:
			return nil, errors.Domain(pos, "unknown additive operator %q", t.Op)
		}
		left = &ast.EBinOp{Pos: pos, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func convertMulExpr(m *grammar.MulExpr) (ast.Expr, error) {
	left, err := convertUnaryExpr(m.Left)
	if err != nil {
		return nil, err
	}
	for _, t := range m.Rest {
		right, err := convertUnaryExpr(t.Expr)
		if err != nil {
			return nil, err
		}
		pos := convertPos(t.Pos)
		var op ast.ExprBinOpKind
		switch t.Op {
		case "*":
			op = ast.EMul
		case "/":
			op = ast.EDiv
		case "mod":
			op = ast.EMod
		default:
			return nil, errors.Domain(pos, "unknown multiplicative operator %q", t.Op)
		}
		left = &ast.EBinOp{Pos: pos, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func convertUnaryExpr(u *grammar.UnaryExpr) (ast.Expr, error) {
	inner, err := convertAppExpr(u.Expr)
	if err != nil {
		return nil, err
	}
	pos := convertPos(u.Pos)
	if u.Not {
		inner = &ast.ENot{Pos: pos, Body: inner}
	}
	if u.Neg {
		inner = &ast.EBinOp{Pos: pos, Op: ast.ESub, Left: &ast.EInt{Pos: pos, Value: 0}, Right: inner}
	}
	return inner, nil
}

// convertAppExpr builds the left-associated application spine that
// ast.AppSpine later flattens back into a callee and argument list.
func convertAppExpr(a *grammar.AppExpr) (ast.Expr, error) {
	result, err := convertPrimaryExpr(a.Fn)
	if err != nil {
		return nil, err
	}
	for _, arg := range a.Args {
		argExpr, err := convertPrimaryExpr(arg)
		if err != nil {
			return nil, err
		}
		result = &ast.EApp{Pos: convertPos(arg.Pos), Fn: result, Arg: argExpr}
	}
	return result, nil
}

func convertPrimaryExpr(p *grammar.PrimaryExpr) (ast.Expr, error) {
	pos := convertPos(p.Pos)
	switch {
	case p.Len != nil:
		return convertLenExpr(p.Len)
	case p.Nil:
		return &ast.ENil{Pos: pos}, nil
	case p.Int != nil:
		return &ast.EInt{Pos: pos, Value: *p.Int}, nil
	case p.Bool != nil:
		return &ast.EBool{Pos: pos, Value: *p.Bool == "true"}, nil
	case p.Ident != "":
		return &ast.EVar{Pos: pos, Ident: p.Ident}, nil
	case p.Paren != nil:
		return convertExpr(p.Paren)
	default:
		return nil, errors.Domain(pos, "empty primary expression")
	}
}

func convertLenExpr(l *grammar.LenExpr) (ast.Expr, error) {
	body, err := convertPrimaryExpr(l.Body)
	if err != nil {
		return nil, err
	}
	return &ast.ELen{Pos: convertPos(l.Pos), Body: body}, nil
}

func exprComparisonOp(pos ast.Position, op string) (ast.ExprBinOpKind, error) {
	switch op {
	case "=":
		return ast.EEq, nil
	case "<>":
		return ast.ENeq, nil
	case "<":
		return ast.ELt, nil
	case ">":
		return ast.EGt, nil
	case "<=":
		return ast.ELeq, nil
	case ">=":
		return ast.EGeq, nil
	default:
		return 0, errors.Domain(pos, "unknown comparison operator %q", op)
	}
}

package parser

import (
	"github.com/alecthomas/participle/v2/lexer"

	"asymptote/internal/ast"
	"asymptote/internal/errors"
	"asymptote/internal/grammar"
)

func convertPos(p lexer.Position) ast.Position {
	return ast.Position{Filename: p.Filename, Line: p.Line, Column: p.Column}
}

func convertProgram(p *grammar.Program) (*ast.Program, error) {
	defs := make([]ast.Def, 0, len(p.Defs))
	for _, d := range p.Defs {
		def, err := convertDef(d)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return &ast.Program{Defs: defs}, nil
}

func convertDef(d *grammar.Def) (ast.Def, error) {
	switch {
	case d.Func != nil:
		return convertFuncDef(d.Func)
	case d.Measure != nil:
		return convertMeasureDef(d.Measure)
	default:
		return nil, errors.Domain(convertPos(d.Pos), "empty top-level definition")
	}
}

// convertFuncDef handles both declaration forms spec §6 lists. The
// curried-argument sugar desugars into a fully nested TArrow/EFun
// pair so every downstream consumer only ever sees the direct form:
// a name bound to a (possibly arrow) type and a body with any lambda
// prefix already present as nested EFun nodes.
func convertFuncDef(f *grammar.FuncDef) (*ast.EFuncDef, error) {
	pos := convertPos(f.Pos)
	body, err := convertExpr(f.Body)
	if err != nil {
		return nil, err
	}

	if len(f.Params) == 0 {
		if f.Sig == nil {
			return nil, errors.ParseError(pos, "function %q is missing a type annotation", f.Name)
		}
		typ, err := convertType(f.Sig)
		if err != nil {
			return nil, err
		}
		return &ast.EFuncDef{Pos: pos, Name: f.Name, Rec: f.Rec, Typ: typ, Body: body}, nil
	}

	if f.Sig == nil {
		return nil, errors.ParseError(pos, "curried function %q is missing a return type", f.Name)
	}
	retTy, err := convertType(f.Sig)
	if err != nil {
		return nil, err
	}
	cost, err := convertSpec(f.Cost)
	if err != nil {
		return nil, err
	}
	measure, err := convertSpec(f.Measure)
	if err != nil {
		return nil, err
	}

	typ, err := desugarCurriedType(f.Params, retTy, cost, measure, pos)
	if err != nil {
		return nil, err
	}
	lambda, err := desugarCurriedBody(f.Params, body, pos)
	if err != nil {
		return nil, err
	}
	return &ast.EFuncDef{Pos: pos, Name: f.Name, Rec: f.Rec, Typ: typ, Body: lambda}, nil
}

func convertMeasureDef(m *grammar.MeasureDef) (*ast.EMeasureDef, error) {
	paramTy, err := convertType(m.Param.Typ)
	if err != nil {
		return nil, err
	}
	retTy, err := convertType(m.RetTy)
	if err != nil {
		return nil, err
	}
	body, err := convertExpr(m.Body)
	if err != nil {
		return nil, err
	}
	return &ast.EMeasureDef{
		Pos:     convertPos(m.Pos),
		Name:    m.Name,
		Param:   m.Param.Name,
		ParamTy: paramTy,
		RetTy:   retTy,
		Body:    body,
	}, nil
}

// desugarCurriedType nests `(x1:τ1) -> (x2:τ2) -> ... -> (xk:τk) -> τ`.
// Per spec §6's grammar sketch, the innermost arrow (the one directly
// wrapping the return type) takes the declared `@ c measure s`; every
// other arrow gets the placeholder `@ O(1) measure 1`.
func desugarCurriedType(params []*grammar.Param, retTy ast.Type, cost, measure ast.Spec, pos ast.Position) (ast.Type, error) {
	result := retTy
	for i := len(params) - 1; i >= 0; i-- {
		paramTy, err := convertType(params[i].Typ)
		if err != nil {
			return nil, err
		}
		argPos := convertPos(params[i].Pos)
		c, m := cost, measure
		if i != len(params)-1 {
			c, m = placeholderCost(argPos), placeholderMeasure(argPos)
		}
		result = &ast.TArrow{
			Pos:     argPos,
			Param:   params[i].Name,
			ParamTy: paramTy,
			Result:  result,
			Cost:    c,
			Measure: m,
		}
	}
	return result, nil
}

// placeholderCost/placeholderMeasure build the `O(1) measure 1`
// templates spec §6 assigns to every curried arrow but the innermost.
func placeholderCost(pos ast.Position) ast.Spec {
	return &ast.SPInt{Pos: pos, Value: 1}
}

func placeholderMeasure(pos ast.Position) ast.Spec {
	return &ast.SPInt{Pos: pos, Value: 1}
}

func desugarCurriedBody(params []*grammar.Param, body ast.Expr, pos ast.Position) (ast.Expr, error) {
	result := body
	for i := len(params) - 1; i >= 0; i-- {
		paramTy, err := convertType(params[i].Typ)
		if err != nil {
			return nil, err
		}
		result = &ast.EFun{
			Pos:     convertPos(params[i].Pos),
			Param:   params[i].Name,
			ParamTy: paramTy,
			Body:    result,
		}
	}
	return result, nil
}

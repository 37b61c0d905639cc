package parser

import (
	"asymptote/internal/ast"
	"asymptote/internal/errors"
	"asymptote/internal/grammar"
)

func convertType(t *grammar.Type) (ast.Type, error) {
	pos := convertPos(t.Pos)
	switch {
	case t.Arrow != nil:
		return convertArrowType(t.Arrow)
	case t.Refine != nil:
		return convertRefineType(t.Refine)
	case t.Shape != nil:
		shape, err := convertDelta(t.Shape)
		if err != nil {
			return nil, err
		}
		return &ast.TBase{Pos: pos, Shape: shape}, nil
	default:
		return nil, errors.Domain(pos, "empty type")
	}
}

func convertArrowType(a *grammar.ArrowType) (ast.Type, error) {
	paramTy, err := convertType(a.ParamTy)
	if err != nil {
		return nil, err
	}
	result, err := convertType(a.Result)
	if err != nil {
		return nil, err
	}
	cost, err := convertSpec(a.Cost)
	if err != nil {
		return nil, err
	}
	measure, err := convertSpec(a.Measure)
	if err != nil {
		return nil, err
	}
	return &ast.TArrow{
		Pos:     convertPos(a.Pos),
		Param:   a.Param,
		ParamTy: paramTy,
		Result:  result,
		Cost:    cost,
		Measure: measure,
	}, nil
}

func convertRefineType(r *grammar.RefineType) (ast.Type, error) {
	shape, err := convertDelta(r.Shape)
	if err != nil {
		return nil, err
	}
	pred, err := convertSpec(r.Pred)
	if err != nil {
		return nil, err
	}
	return &ast.TRefinement{Pos: convertPos(r.Pos), Ident: r.Ident, Shape: shape, Pred: pred}, nil
}

func convertDelta(d *grammar.Delta) (ast.Delta, error) {
	pos := convertPos(d.Pos)
	base, err := convertDeltaAtom(d.Atom)
	if err != nil {
		return nil, err
	}
	for _, suffix := range d.Suffixes {
		switch suffix {
		case "list":
			base = &ast.DList{Pos: pos, Elem: base}
		case "array":
			base = &ast.DArray{Pos: pos, Elem: base}
		default:
			return nil, errors.Domain(pos, "unknown delta suffix %q", suffix)
		}
	}
	if d.Prod != nil {
		right, err := convertDelta(d.Prod)
		if err != nil {
			return nil, err
		}
		return &ast.DProd{Pos: pos, Left: base, Right: right}, nil
	}
	return base, nil
}

func convertDeltaAtom(a *grammar.DeltaAtom) (ast.Delta, error) {
	pos := convertPos(a.Pos)
	if len(a.Tuple) > 0 {
		elems := make([]ast.Delta, 0, len(a.Tuple))
		for _, t := range a.Tuple {
			e, err := convertDelta(t)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
		if len(elems) == 1 {
			// A single parenthesized delta is grouping, not a tuple.
			return elems[0], nil
		}
		return &ast.DTuple{Pos: pos, Elems: elems}, nil
	}

	switch a.Name {
	case "unit":
		return &ast.DUnit{Pos: pos}, nil
	case "int":
		return &ast.DInt{Pos: pos}, nil
	case "bool":
		return &ast.DBool{Pos: pos}, nil
	default:
		return &ast.DParam{Pos: pos, Name: a.Name}, nil
	}
}

package vcgen

import (
	"asymptote/internal/ast"
	"asymptote/internal/costalgebra"
	"asymptote/internal/errors"
)

// SpecToExpr is the homomorphism spec §4.4 calls spec_to_expr: it
// translates a cost template or size expression (never a refinement
// predicate — the VC generator only ever calls this on the `c` and
// `s` of a function's arrow type) into a costalgebra.Term. env maps
// each spec-level identifier to the fresh symbol already bound for it.
func SpecToExpr(s ast.Spec, env map[string]costalgebra.Term) (costalgebra.Term, error) {
	switch node := s.(type) {
	case *ast.SPVar:
		v, ok := env[node.Ident]
		if !ok {
			return nil, errors.Domain(node.Pos, "unbound identifier %q in cost/size template", node.Ident)
		}
		return v, nil

	case *ast.SPInt:
		return costalgebra.Val(node.Value), nil

	case *ast.SPBool:
		return nil, errors.Domain(node.Pos, "a boolean literal has no meaning in a cost or size template")

	case *ast.SPNot:
		return nil, errors.Unsupported(node.Pos, "boolean negation in a cost or size template")

	case *ast.SPBinOp:
		return specBinOp(node, env)

	case *ast.SPLog:
		body, err := SpecToExpr(node.Body, env)
		if err != nil {
			return nil, err
		}
		return costalgebra.MakeLog(body), nil

	case *ast.SPForAll, *ast.SPExists:
		return nil, errors.Unsupported(s.NodePos(), "forall/exists inside a cost or size template")

	case *ast.SPIte:
		return specIte(node, env)

	case *ast.SPMeasureCall:
		arg, err := SpecToExpr(node.Arg, env)
		if err != nil {
			return nil, err
		}
		return &costalgebra.Call{Func: node.Measure, Arg: arg}, nil

	default:
		return nil, errors.Domain(s.NodePos(), "unrecognized spec node %T", s)
	}
}

func specBinOp(node *ast.SPBinOp, env map[string]costalgebra.Term) (costalgebra.Term, error) {
	switch node.Op {
	case ast.SPAdd, ast.SPSub, ast.SPMul, ast.SPPow:
		// handled below; fall through to the arithmetic path
	default:
		return nil, errors.Domain(node.Pos, "operator %q has no meaning in a cost or size template", node.Op)
	}

	if node.Op == ast.SPPow {
		return specPow(node, env)
	}

	left, err := SpecToExpr(node.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := SpecToExpr(node.Right, env)
	if err != nil {
		return nil, err
	}
	switch node.Op {
	case ast.SPAdd:
		return costalgebra.MakeAdd(left, right), nil
	case ast.SPSub:
		return costalgebra.MakeSub(left, right), nil
	default:
		return costalgebra.MakeMul(left, right), nil
	}
}

// specPow dispatches `base ^ exponent` into the cost algebra's two
// power shapes: Poly needs a constant integer degree over an
// arbitrary base, Exp needs a constant integer base over an arbitrary
// exponent (spec §4.1's variant set has no generic `pow`).
func specPow(node *ast.SPBinOp, env map[string]costalgebra.Term) (costalgebra.Term, error) {
	if degree, ok := node.Right.(*ast.SPInt); ok {
		base, err := SpecToExpr(node.Left, env)
		if err != nil {
			return nil, err
		}
		return costalgebra.MakePoly(base, degree.Value), nil
	}
	if base, ok := node.Left.(*ast.SPInt); ok {
		exponent, err := SpecToExpr(node.Right, env)
		if err != nil {
			return nil, err
		}
		return costalgebra.MakeExp(base.Value, exponent), nil
	}
	return nil, errors.Unsupported(node.Pos, "`^` needs a constant exponent or a constant base")
}

// specIte requires a statically decidable condition: templates are
// written once by the function's author, not evaluated per call, so
// a genuinely data-dependent conditional cost has no single expansion
// this algebra can represent.
func specIte(node *ast.SPIte, env map[string]costalgebra.Term) (costalgebra.Term, error) {
	b, ok := staticBool(node.Cond)
	if !ok {
		return nil, errors.Unsupported(node.Pos, "if-then-else in a cost or size template needs a statically decidable condition")
	}
	if b {
		return SpecToExpr(node.Then, env)
	}
	return SpecToExpr(node.Else, env)
}

func staticBool(s ast.Spec) (bool, bool) {
	switch node := s.(type) {
	case *ast.SPBool:
		return node.Value, true
	case *ast.SPBinOp:
		left, lok := node.Left.(*ast.SPInt)
		right, rok := node.Right.(*ast.SPInt)
		if !lok || !rok {
			return false, false
		}
		switch node.Op {
		case ast.SPEq:
			return left.Value == right.Value, true
		case ast.SPNeq:
			return left.Value != right.Value, true
		case ast.SPLt:
			return left.Value < right.Value, true
		case ast.SPGt:
			return left.Value > right.Value, true
		case ast.SPLeq:
			return left.Value <= right.Value, true
		case ast.SPGeq:
			return left.Value >= right.Value, true
		}
	}
	return false, false
}

// Package pathenum implements the path enumerator of spec §4.3: given
// a function body (lambda prefix already stripped, arguments already
// bound to fresh symbols), it walks the AST structurally and returns
// the statically known return value together with every control-flow
// path as a sequence of call records.
package pathenum

import (
	"fmt"

	"asymptote/internal/ast"
	"asymptote/internal/costalgebra"
	"asymptote/internal/errors"
	"asymptote/internal/recurrence"
)

// Env binds identifiers visible to the enumerator to their statically
// known symbolic value; a missing or nil entry is ⊥.
type Env map[string]costalgebra.Term

func (e Env) with(name string, v costalgebra.Term) Env {
	out := make(Env, len(e)+1)
	for k, val := range e {
		out[k] = val
	}
	out[name] = v
	return out
}

// single is the one-path, no-calls result every leaf expression and
// most structural rules of spec's table start from.
var single = []recurrence.Path{{}}

// Enumerate returns (value, paths) for expr under env, per the rule
// table of spec §4.3. defs supplies arity/FuncDefs lookups for calls
// (invariants I3/I4).
func Enumerate(expr ast.Expr, env Env, defs *recurrence.Defs) (costalgebra.Term, []recurrence.Path, error) {
	switch e := expr.(type) {
	case *ast.EInt:
		return costalgebra.Val(e.Value), single, nil

	case *ast.EBool:
		return boolTerm(e.Value), single, nil

	case *ast.EVar:
		return env[e.Ident], single, nil

	case *ast.ENil:
		return costalgebra.Val(0), single, nil

	case *ast.ECons:
		// spec's table folds nil/cons into one row, "1 + inner": a
		// cons cell's statically known value is its list length,
		// tracked only through the tail (the only measure this
		// system supports is len, and only the tail recursion
		// contributes to it).
		tailVal, tailPaths, err := Enumerate(e.Tail, env, defs)
		if err != nil {
			return nil, nil, err
		}
		if tailVal == nil {
			return nil, tailPaths, nil
		}
		return costalgebra.MakeAdd(costalgebra.Val(1), tailVal), tailPaths, nil

	case *ast.ENot:
		v, paths, err := Enumerate(e.Body, env, defs)
		if err != nil {
			return nil, nil, err
		}
		return notTerm(v), paths, nil

	case *ast.EBinOp:
		return enumerateBinOp(e, env, defs)

	case *ast.EIf:
		condPaths, err := enumeratePathsOnly(e.Cond, env, defs)
		if err != nil {
			return nil, nil, err
		}
		thenPaths, err := enumeratePathsOnly(e.Then, env, defs)
		if err != nil {
			return nil, nil, err
		}
		elsePaths, err := enumeratePathsOnly(e.Else, env, defs)
		if err != nil {
			return nil, nil, err
		}
		paths := append(cartesian(condPaths, thenPaths), cartesian(condPaths, elsePaths)...)
		return nil, paths, nil

	case *ast.ELet:
		if e.Rec {
			return nil, nil, errors.Unsupported(e.Pos, "'let rec' nested inside an expression")
		}
		vVal, vPaths, err := Enumerate(e.Value, env, defs)
		if err != nil {
			return nil, nil, err
		}
		bVal, bPaths, err := Enumerate(e.Body, env.with(e.Ident, vVal), defs)
		if err != nil {
			return nil, nil, err
		}
		return bVal, cartesian(vPaths, bPaths), nil

	case *ast.ELen:
		v, paths, err := Enumerate(e.Body, env, defs)
		if err != nil {
			return nil, nil, err
		}
		return v, paths, nil

	case *ast.EApp:
		return enumerateCall(e, env, defs)

	case *ast.EMatch:
		return enumerateMatch(e, env, defs)

	case *ast.EFun:
		return nil, nil, errors.Unsupported(e.Pos, "function value used where a first-order expression was expected")

	default:
		return nil, nil, errors.Domain(expr.NodePos(), "unrecognized expression node %T", expr)
	}
}

func enumeratePathsOnly(e ast.Expr, env Env, defs *recurrence.Defs) ([]recurrence.Path, error) {
	_, paths, err := Enumerate(e, env, defs)
	return paths, err
}

func boolTerm(b bool) costalgebra.Term {
	if b {
		return costalgebra.Val(1)
	}
	return costalgebra.Val(0)
}

func notTerm(v costalgebra.Term) costalgebra.Term {
	i, ok := v.(*costalgebra.Int)
	if !ok {
		return nil
	}
	if i.Value == 0 {
		return costalgebra.Val(1)
	}
	return costalgebra.Val(0)
}

func enumerateBinOp(e *ast.EBinOp, env Env, defs *recurrence.Defs) (costalgebra.Term, []recurrence.Path, error) {
	aVal, aPaths, err := Enumerate(e.Left, env, defs)
	if err != nil {
		return nil, nil, err
	}
	bVal, bPaths, err := Enumerate(e.Right, env, defs)
	if err != nil {
		return nil, nil, err
	}
	paths := cartesian(aPaths, bPaths)

	if !e.Op.IsArithmetic() || aVal == nil || bVal == nil {
		return nil, paths, nil
	}
	switch e.Op {
	case ast.EAdd:
		return costalgebra.MakeAdd(aVal, bVal), paths, nil
	case ast.ESub:
		return costalgebra.MakeSub(aVal, bVal), paths, nil
	case ast.EMul:
		return costalgebra.MakeMul(aVal, bVal), paths, nil
	default:
		// Division and modulo aren't tracked by the cost algebra; the
		// value is conservatively unknown.
		return nil, paths, nil
	}
}

// cartesian implements the ⊗ operator: `[a] ⊗ [b] = [a ++ b : a ∈
// paths1, b ∈ paths2]`.
func cartesian(left, right []recurrence.Path) []recurrence.Path {
	out := make([]recurrence.Path, 0, len(left)*len(right))
	for _, l := range left {
		for _, r := range right {
			combined := make(recurrence.Path, 0, len(l)+len(r))
			combined = append(combined, l...)
			combined = append(combined, r...)
			out = append(out, combined)
		}
	}
	return out
}

func enumerateCall(e *ast.EApp, env Env, defs *recurrence.Defs) (costalgebra.Term, []recurrence.Path, error) {
	calleeExpr, args := ast.AppSpine(e)
	callee, ok := calleeExpr.(*ast.EVar)
	if !ok {
		return nil, nil, errors.Unsupported(e.Pos, "call to a non-identifier (higher-order) expression")
	}

	arity, known := defs.Arity(callee.Ident)
	if !known {
		return nil, nil, errors.Domain(e.Pos, "call to undefined function %q", callee.Ident)
	}
	if len(args) != arity {
		return nil, nil, errors.Unsupported(e.Pos, fmt.Sprintf("partial application of %q (expected %d argument(s), got %d)", callee.Ident, arity, len(args)))
	}

	info, _ := defs.Lookup(callee.Ident)
	argVals := make([]costalgebra.Term, len(args))
	paths := single
	for i, arg := range args {
		v, p, err := Enumerate(arg, env, defs)
		if err != nil {
			return nil, nil, err
		}
		argVals[i] = v
		paths = cartesian(paths, p)
	}

	argMap := make(map[string]costalgebra.Term, arity)
	for i, sym := range info.Args {
		argMap[sym] = argVals[i]
	}
	call := recurrence.FunctionCall{Callee: callee.Ident, ArgMap: argMap}

	out := make([]recurrence.Path, len(paths))
	for i, p := range paths {
		prefixed := make(recurrence.Path, 0, len(p)+1)
		prefixed = append(prefixed, call)
		prefixed = append(prefixed, p...)
		out[i] = prefixed
	}
	return nil, out, nil
}

func enumerateMatch(e *ast.EMatch, env Env, defs *recurrence.Defs) (costalgebra.Term, []recurrence.Path, error) {
	scrutVal, scrutPaths, err := Enumerate(e.Scrutinee, env, defs)
	if err != nil {
		return nil, nil, err
	}

	var allPaths []recurrence.Path
	for _, clause := range e.Clauses {
		clauseEnv := bindPattern(clause.Pattern, scrutVal, env)
		_, bodyPaths, err := Enumerate(clause.Body, clauseEnv, defs)
		if err != nil {
			return nil, nil, err
		}
		allPaths = append(allPaths, cartesian(scrutPaths, bodyPaths)...)
	}
	return nil, allPaths, nil
}

// bindPattern implements spec §4.3's pattern-binding rules: only a
// bare identifier and the two cons shapes propagate a known value
// (the tail-length encoding, `value(v) - 1` / `value(v) - 2`); every
// other pattern binds its identifiers to ⊥.
func bindPattern(p ast.Pattern, scrutVal costalgebra.Term, env Env) Env {
	switch pat := p.(type) {
	case *ast.PVar:
		return env.with(pat.Ident, scrutVal)
	case *ast.PCons:
		out := env
		out = out.with(pat.Head, nil)
		if pat.Head2 != "" {
			out = out.with(pat.Head2, nil)
			out = out.with(pat.Tail, tailMinus(scrutVal, 2))
			return out
		}
		return out.with(pat.Tail, tailMinus(scrutVal, 1))
	default:
		out := env
		for _, ident := range p.Binds() {
			out = out.with(ident, nil)
		}
		return out
	}
}

func tailMinus(v costalgebra.Term, n int) costalgebra.Term {
	if v == nil {
		return nil
	}
	return costalgebra.MakeSub(v, costalgebra.Val(n))
}

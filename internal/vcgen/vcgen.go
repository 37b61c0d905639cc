// Package vcgen implements the VC generator of spec §4.4: it walks
// each function's arrow type to bind fresh argument symbols, resolves
// its cost template and size expression into the cost algebra, runs
// the path enumerator over its body, and assembles the FunctionTest
// the verifier discharges.
package vcgen

import (
	"asymptote/internal/ast"
	"asymptote/internal/costalgebra"
	"asymptote/internal/errors"
	"asymptote/internal/pathenum"
	"asymptote/internal/recurrence"
	"asymptote/internal/symbols"
)

// boundArgs is the result of walking a function's arrow type: the
// ordered fresh symbols, the per-source-name environment used to
// resolve spec_to_expr references, and the lone (cost, measure) pair
// the declaration carries.
type boundArgs struct {
	args    []string
	env     map[string]costalgebra.Term
	cost    ast.Spec
	measure ast.Spec
}

// bindArrow walks τ = (x1:τ1) -> ... (xk:τk) -> τret, introducing a
// fresh symbol `funcname_xi` per argument (spec §4.4 step 1). The
// grammar requires every arrow level to carry a `@ O(c) measure s`
// clause, but only the innermost one (the arrow directly wrapping the
// non-arrow return type) is the declaration's real cost/size template
// — every other level holds the `@ O(1) measure 1` placeholder the
// curried-argument sugar inserts (spec §6) — so the walk simply keeps
// the last annotation it saw.
func bindArrow(funcName string, t ast.Type, counter *symbols.Counter) (boundArgs, error) {
	out := boundArgs{env: make(map[string]costalgebra.Term)}

	for {
		arrow, ok := t.(*ast.TArrow)
		if !ok {
			// A plain (non-arrow) top-level binding: `let x : τ = e`
			// names a value, not a function, so it has no cost/size
			// template to extract (spec §6 allows τ to be a bare δ here).
			return out, nil
		}
		sym := counter.ArgSymbol(funcName, arrow.Param)
		out.args = append(out.args, sym)
		out.env[arrow.Param] = &costalgebra.Var{Name: sym}

		out.cost = arrow.Cost
		out.measure = arrow.Measure
		t = arrow.Result
	}
}

// Generate builds FuncInfo + FunctionTest for every user definition in
// prog, in order, inserting recursive functions into defs before their
// own body is enumerated so self-calls resolve (spec §3 LIFECYCLE).
// defs must already contain the stdlib prelude's entries; the caller
// is expected to have run Generate over the stdlib program first and
// discarded its FunctionTests.
func Generate(prog *ast.Program, defs *recurrence.Defs, counter *symbols.Counter) ([]recurrence.FunctionTest, error) {
	var tests []recurrence.FunctionTest

	for _, def := range prog.Defs {
		fn, ok := def.(*ast.EFuncDef)
		if !ok {
			// Non-`len` measure definitions are rejected; `len` itself
			// is already in FuncDefs via the stdlib prelude.
			if m, ok := def.(*ast.EMeasureDef); ok && m.Name != "len" {
				return nil, errors.Unsupported(m.Pos, "measure definitions other than the built-in `len`")
			}
			continue
		}

		bound, err := bindArrow(fn.Name, fn.Typ, counter)
		if err != nil {
			return nil, err
		}
		timespec, size := costalgebra.Term(costalgebra.Val(0)), costalgebra.Term(costalgebra.Val(0))
		if bound.cost != nil {
			cost, err := SpecToExpr(bound.cost, bound.env)
			if err != nil {
				return nil, err
			}
			// The grammar strips the template's `O(...)`; restore it so the
			// verifier's Decompose sees a big-O template.
			timespec = costalgebra.MakeBigO(cost)
			if size, err = SpecToExpr(bound.measure, bound.env); err != nil {
				return nil, err
			}
		}
		info := recurrence.FuncInfo{Name: fn.Name, Args: bound.args, Timespec: timespec, Size: size}

		if fn.Rec {
			defs.Insert(info)
		}

		body := ast.StripLambdas(fn.Body)
		env := make(pathenum.Env, len(bound.args))
		for name, v := range bound.env {
			// pathenum's environment is keyed by the same source
			// parameter names spec_to_expr resolved against, since the
			// path enumerator walks the same (lambda-stripped) body.
			env[name] = v
		}
		_, paths, err := pathenum.Enumerate(body, env, defs)
		if err != nil {
			return nil, err
		}

		if !fn.Rec {
			defs.Insert(info)
		}
		tests = append(tests, recurrence.FunctionTest{Name: fn.Name, Info: info, Paths: paths})
	}

	return tests, nil
}

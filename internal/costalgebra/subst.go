package costalgebra

// Substitute replaces every free Var named in env by its bound term,
// leaving any variable absent from env untouched. The verifier uses
// this to re-express a callee's size template in terms of the
// caller's argument values at a call site (spec §4.5's
// `n_call = size_callee(args)`).
func Substitute(t Term, env map[string]Term) Term {
	if t == nil {
		return nil
	}
	switch v := t.(type) {
	case *Int:
		return v
	case *Var:
		if repl, ok := env[v.Name]; ok {
			return repl
		}
		return v
	case *Call:
		return &Call{Func: v.Func, Arg: Substitute(v.Arg, env)}
	case *Binary:
		left, right := Substitute(v.Left, env), Substitute(v.Right, env)
		switch v.Op {
		case OpAdd:
			return MakeAdd(left, right)
		case OpSub:
			return MakeSub(left, right)
		case OpMul:
			return MakeMul(left, right)
		case OpDiv:
			return MakeDiv(left, right)
		default:
			return &Binary{Op: v.Op, Left: left, Right: right}
		}
	case *Log:
		return MakeLog(Substitute(v.Body, env))
	case *Poly:
		return MakePoly(Substitute(v.Base, env), v.Degree)
	case *Exp:
		return MakeExp(v.Base, Substitute(v.Exponent, env))
	case *BigO:
		return MakeBigO(Substitute(v.Body, env))
	default:
		return t
	}
}

// SubstituteChecked is Substitute, but reports ok=false if t transitively
// references a variable bound to Unbound (nil) in env: the verifier
// uses this to detect when a call's size cannot be statically
// determined (spec §3's ⊥) rather than silently propagating a nil
// Term into the algebra.
func SubstituteChecked(t Term, env map[string]Term) (Term, bool) {
	for _, name := range FreeVars(t) {
		if repl, ok := env[name]; ok && repl == nil {
			return nil, false
		}
	}
	return Substitute(t, env), true
}

// SubstituteTerm replaces every subterm structurally equal to target
// with replacement. Unlike Substitute (keyed by variable name), this
// also matches a driver that is itself a measure Call (e.g. `len(l)`),
// which the verifier needs when re-expressing a callee's cost
// template in terms of its own installed size driver.
func SubstituteTerm(t, target, replacement Term) Term {
	if t == nil {
		return nil
	}
	if Equal(t, target) {
		return replacement
	}
	switch v := t.(type) {
	case *Int, *Var:
		return t
	case *Call:
		return &Call{Func: v.Func, Arg: SubstituteTerm(v.Arg, target, replacement)}
	case *Binary:
		left, right := SubstituteTerm(v.Left, target, replacement), SubstituteTerm(v.Right, target, replacement)
		switch v.Op {
		case OpAdd:
			return MakeAdd(left, right)
		case OpSub:
			return MakeSub(left, right)
		case OpMul:
			return MakeMul(left, right)
		case OpDiv:
			return MakeDiv(left, right)
		default:
			return &Binary{Op: v.Op, Left: left, Right: right}
		}
	case *Log:
		return MakeLog(SubstituteTerm(v.Body, target, replacement))
	case *Poly:
		return MakePoly(SubstituteTerm(v.Base, target, replacement), v.Degree)
	case *Exp:
		return MakeExp(v.Base, SubstituteTerm(v.Exponent, target, replacement))
	case *BigO:
		return MakeBigO(SubstituteTerm(v.Body, target, replacement))
	default:
		return t
	}
}

// FreeVars collects the distinct free variable names in t.
func FreeVars(t Term) []string {
	seen := make(map[string]bool)
	var out []string
	var walk func(Term)
	walk = func(t Term) {
		switch v := t.(type) {
		case *Var:
			if !seen[v.Name] {
				seen[v.Name] = true
				out = append(out, v.Name)
			}
		case *Call:
			walk(v.Arg)
		case *Binary:
			walk(v.Left)
			walk(v.Right)
		case *Log:
			walk(v.Body)
		case *Poly:
			walk(v.Base)
		case *Exp:
			walk(v.Exponent)
		case *BigO:
			walk(v.Body)
		}
	}
	walk(t)
	return out
}

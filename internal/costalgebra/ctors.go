package costalgebra

// One, Val are the two literal helpers the tcaml prototype exposes as
// `one()` and `val(x)`.
func Val(x int) *Int { return &Int{Value: x} }
func One() *Int       { return Val(1) }

// MakeAdd folds integer literals and absorbs additive zero.
func MakeAdd(a, b Term) Term {
	if ai, ok := a.(*Int); ok && ai.Value == 0 {
		return b
	}
	if bi, ok := b.(*Int); ok && bi.Value == 0 {
		return a
	}
	if ai, ok := a.(*Int); ok {
		if bi, ok := b.(*Int); ok {
			return Val(ai.Value + bi.Value)
		}
	}
	return &Binary{Op: OpAdd, Left: a, Right: b}
}

// MakeSub folds integer literals and absorbs subtraction of zero.
func MakeSub(a, b Term) Term {
	if bi, ok := b.(*Int); ok && bi.Value == 0 {
		return a
	}
	if ai, ok := a.(*Int); ok {
		if bi, ok := b.(*Int); ok {
			return Val(ai.Value - bi.Value)
		}
	}
	return &Binary{Op: OpSub, Left: a, Right: b}
}

// MakeMul folds integer literals, absorbs 0/1, and recognizes
// `x * x^k -> x^(k+1)` when both operands share a monomial base.
func MakeMul(a, b Term) Term {
	if ai, ok := a.(*Int); ok {
		if ai.Value == 0 {
			return Val(0)
		}
		if ai.Value == 1 {
			return b
		}
	}
	if bi, ok := b.(*Int); ok {
		if bi.Value == 0 {
			return Val(0)
		}
		if bi.Value == 1 {
			return a
		}
	}
	if ai, ok := a.(*Int); ok {
		if bi, ok := b.(*Int); ok {
			return Val(ai.Value * bi.Value)
		}
	}

	baseA, degA, okA := monomialBaseDegree(a)
	baseB, degB, okB := monomialBaseDegree(b)
	if okA && okB && Equal(baseA, baseB) {
		return MakePoly(baseA, degA+degB)
	}
	return &Binary{Op: OpMul, Left: a, Right: b}
}

// monomialBaseDegree reports (base, degree) for a term that already
// looks like base^degree: a bare Var has degree 1, a Poly carries its
// own base/degree explicitly.
func monomialBaseDegree(t Term) (Term, int, bool) {
	switch v := t.(type) {
	case *Var:
		return v, 1, true
	case *Poly:
		return v.Base, v.Degree, true
	default:
		return nil, 0, false
	}
}

// MakePoly folds degree 0/1 and a literal base, otherwise builds Poly.
func MakePoly(base Term, degree int) Term {
	if degree == 0 {
		return One()
	}
	if degree == 1 {
		return base
	}
	if bi, ok := base.(*Int); ok {
		return Val(intPow(bi.Value, degree))
	}
	return &Poly{Base: base, Degree: degree}
}

// MakeDiv builds a/b, folding exact integer division. It backs only
// the symbolic bridge's call-site size substitution (spec §4.2);
// general cost templates never contain it.
func MakeDiv(a, b Term) Term {
	if bi, ok := b.(*Int); ok {
		if bi.Value == 0 {
			return Val(0)
		}
		if ai, ok := a.(*Int); ok && ai.Value%bi.Value == 0 {
			return Val(ai.Value / bi.Value)
		}
	}
	return &Binary{Op: OpDiv, Left: a, Right: b}
}

// MakeLog folds log(1) = 0 and log(x^k) = k*log(x).
func MakeLog(body Term) Term {
	if bi, ok := body.(*Int); ok && bi.Value == 1 {
		return Val(0)
	}
	if p, ok := body.(*Poly); ok {
		return MakeMul(Val(p.Degree), MakeLog(p.Base))
	}
	return &Log{Body: body}
}

// MakeExp builds base^exponent; base < 2 is a DomainError the caller
// must reject before calling this (spec §7).
func MakeExp(base int, exponent Term) Term {
	return &Exp{Base: base, Exponent: exponent}
}

// MakeBigO wraps a cost term as a declared asymptotic bound.
func MakeBigO(body Term) Term {
	return &BigO{Body: body}
}

func intPow(base, exp int) int {
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

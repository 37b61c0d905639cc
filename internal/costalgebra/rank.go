package costalgebra

// Rank totally preorders cost terms by asymptotic growth as n goes to
// infinity: any exponential outranks every polynomial degree, and
// among non-exponentials Degree compares directly (Log sits fractionally
// above a bare constant and below every positive polynomial degree).
// Both the symbolic bridge's dominant-term selection (spec §4.2) and
// the reference solver's discharge step (spec §4.5) share this order.
type Rank struct {
	Exponential bool
	Degree      float64
	Log         bool
}

// Less reports whether r grows strictly slower than o.
func (r Rank) Less(o Rank) bool {
	if r.Exponential != o.Exponential {
		return o.Exponential
	}
	if r.Exponential {
		return false
	}
	if r.Degree != o.Degree {
		return r.Degree < o.Degree
	}
	return !r.Log && o.Log
}

// Equal reports whether r and o denote the same growth order.
func (r Rank) Equal(o Rank) bool {
	return r.Exponential == o.Exponential && r.Degree == o.Degree && r.Log == o.Log
}

// RankOf computes the asymptotic growth rank of a cost term. Calls are
// treated as opaque degree-1 quantities: an uninterpreted measure like
// len(v) is assumed to grow linearly in its own right, since nothing in
// the algebra can say more about it.
func RankOf(t Term) Rank {
	switch v := t.(type) {
	case *Int:
		return Rank{}
	case *Var:
		return Rank{Degree: 1}
	case *Call:
		return Rank{Degree: 1}
	case *Log:
		return Rank{Log: true}
	case *Poly:
		return Rank{Degree: float64(v.Degree)}
	case *Exp:
		return Rank{Exponential: true}
	case *BigO:
		return RankOf(v.Body)
	case *Binary:
		if v.Op == OpDiv {
			// The divisor is always a compile-time constant (call-site
			// size substitution only), so division doesn't change order.
			return RankOf(v.Left)
		}
		left, right := RankOf(v.Left), RankOf(v.Right)
		if v.Op == OpMul {
			return combineMul(left, right)
		}
		if left.Less(right) {
			return right
		}
		return left
	default:
		return Rank{}
	}
}

func combineMul(a, b Rank) Rank {
	if a.Exponential || b.Exponential {
		return Rank{Exponential: true}
	}
	return Rank{Degree: a.Degree + b.Degree, Log: a.Log || b.Log}
}

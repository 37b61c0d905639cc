package symbolic

import (
	"math"

	"asymptote/internal/ast"
	"asymptote/internal/costalgebra"
	"asymptote/internal/errors"
	"asymptote/internal/smt"
)

// handlePolynomial translates base^degree as a Pow over the
// translated base (spec §4.2: "polynomial terms translate straight
// through to Pow").
func (t *Translator) handlePolynomial(base costalgebra.Term, degree int) (smt.Expr, error) {
	b, err := t.Translate(base)
	if err != nil {
		return nil, err
	}
	return smt.Raise(b, degree), nil
}

// handleExponential translates base^exponent. When the exponent is
// exactly the size variable (or a positive multiple/power of it) the
// result is expressed via the base's pow_b_n witness; any other shape
// is a DomainError, since the solver's exponential domain facts are
// only stated for that witness.
func (t *Translator) handleExponential(base int, exponent costalgebra.Term) (smt.Expr, error) {
	k, _, err := t.splitExponent(exponent)
	if err != nil {
		return nil, err
	}
	pow := t.PowVar(base)
	if k == 1 {
		return pow, nil
	}
	return smt.Raise(pow, k), nil
}

// splitExponent decomposes an exponent into (k, rest) where rest must
// reduce to the bare n variable for this translator's pow_b_n witness
// to apply; k is the constant multiplier accumulated so far.
func (t *Translator) splitExponent(exponent costalgebra.Term) (int, costalgebra.Term, error) {
	switch v := t.ToNDomain(exponent).(type) {
	case *costalgebra.Var:
		if v.Name == NName {
			return 1, v, nil
		}
		return 0, nil, errors.Domain(ast.Position{}, "exponential exponent references %q, not the installed size variable", v.Name)
	case *costalgebra.Binary:
		if v.Op == costalgebra.OpMul {
			if lit, ok := v.Left.(*costalgebra.Int); ok {
				_, _, err := t.splitExponent(v.Right)
				if err != nil {
					return 0, nil, err
				}
				return lit.Value, v.Right, nil
			}
			if lit, ok := v.Right.(*costalgebra.Int); ok {
				_, _, err := t.splitExponent(v.Left)
				if err != nil {
					return 0, nil, err
				}
				return lit.Value, v.Left, nil
			}
		}
		if v.Op == costalgebra.OpAdd || v.Op == costalgebra.OpSub {
			// A constant additive shift around n (as a recursive call's
			// decremented argument produces, e.g. 2^(n-1)) has the same
			// growth order as 2^n: the shift is a constant factor that
			// the basis coefficient already absorbs.
			if _, ok := v.Right.(*costalgebra.Int); ok {
				return t.splitExponent(v.Left)
			}
			if _, ok := v.Left.(*costalgebra.Int); ok {
				return t.splitExponent(v.Right)
			}
		}
		return 0, nil, errors.Domain(ast.Position{}, "exponential exponent %s is not of the form k*n", v.String())
	case *costalgebra.Poly:
		// An exponent n^k is encoded as the k-th power of pow_b_n.
		if b, ok := v.Base.(*costalgebra.Var); ok && b.Name == NName {
			return v.Degree, v, nil
		}
		return 0, nil, errors.Domain(ast.Position{}, "exponential exponent %s is not of the form k*n", v.String())
	default:
		return 0, nil, errors.Domain(ast.Position{}, "exponential exponent %s is not of the form k*n", v.String())
	}
}

// handleLog implements spec §4.2's "approximate log of a sum by the
// log of its dominant summand, scaled by the number of summands":
// flatten the additive structure, pick the term with highest
// costalgebra.Rank (ties broken toward the larger literal
// coefficient), and translate log(count * dominant).
func (t *Translator) handleLog(body costalgebra.Term) (smt.Expr, error) {
	terms := flattenAdditive(t.ToNDomain(body))
	if len(terms) == 0 {
		return smt.NewConst(0), nil
	}
	dominant := terms[0]
	for _, candidate := range terms[1:] {
		if dominates(candidate, dominant) {
			dominant = candidate
		}
	}
	return t.expandLogOfMonomial(dominant, len(terms))
}

// flattenAdditive splits a term into its additive summands, dropping
// subtraction's sign (a log-of-sum overapproximation never needs to
// track which summands were negated: the dominant positive magnitude
// still bounds the whole).
func flattenAdditive(term costalgebra.Term) []costalgebra.Term {
	if b, ok := term.(*costalgebra.Binary); ok && (b.Op == costalgebra.OpAdd || b.Op == costalgebra.OpSub) {
		return append(flattenAdditive(b.Left), flattenAdditive(b.Right)...)
	}
	return []costalgebra.Term{term}
}

// dominates reports whether a grows asymptotically faster than b, or
// (on a tie) carries the larger literal coefficient.
func dominates(a, b costalgebra.Term) bool {
	ra, rb := costalgebra.RankOf(a), costalgebra.RankOf(b)
	if !ra.Equal(rb) {
		return rb.Less(ra)
	}
	ca, _ := splitCoeff(a)
	cb, _ := splitCoeff(b)
	return ca > cb
}

// splitCoeff peels a leading integer-literal factor off a product,
// defaulting to coefficient 1 when there is none.
func splitCoeff(term costalgebra.Term) (int, costalgebra.Term) {
	b, ok := term.(*costalgebra.Binary)
	if !ok || b.Op != costalgebra.OpMul {
		return 1, term
	}
	if lit, ok := b.Left.(*costalgebra.Int); ok {
		return lit.Value, b.Right
	}
	if lit, ok := b.Right.(*costalgebra.Int); ok {
		return lit.Value, b.Left
	}
	return 1, term
}

// expandLogOfMonomial implements log(count * dominant), expanded as
// log(count * coeff) + log(core) where coeff is dominant's leading
// integer literal, over the core monomial shapes a decomposed basis
// entry can take: a bare size variable, a polynomial, an exponential,
// or a derived call-site quotient n/k (spec §4.2's
// `log(n/k) = log(n) - log(k)`).
func (t *Translator) expandLogOfMonomial(dominant costalgebra.Term, count int) (smt.Expr, error) {
	coeff, core := splitCoeff(dominant)
	offset := smt.NewConst(logConstant(count * coeff))

	switch v := t.ToNDomain(core).(type) {
	case *costalgebra.Int:
		return smt.NewConst(logConstant(count*coeff) + logConstant(v.Value)), nil

	case *costalgebra.Var:
		if v.Name != NName {
			return nil, errors.Domain(ast.Position{}, "log() operand references %q, which has no installed size definition", v.Name)
		}
		return smt.Add(offset, t.logN), nil

	case *costalgebra.Poly:
		base, err := t.expandLogOfMonomial(v.Base, 1)
		if err != nil {
			return nil, err
		}
		return smt.Add(offset, smt.Mul(smt.NewConst(float64(v.Degree)), base)), nil

	case *costalgebra.Exp:
		k, _, err := t.splitExponent(v.Exponent)
		if err != nil {
			return nil, err
		}
		return smt.Add(offset, smt.Mul(smt.NewConst(float64(k)), t.logN)), nil

	case *costalgebra.Binary:
		if v.Op == costalgebra.OpDiv {
			num, err := t.expandLogOfMonomial(v.Left, 1)
			if err != nil {
				return nil, err
			}
			denomLit, ok := v.Right.(*costalgebra.Int)
			if !ok {
				return nil, errors.Domain(ast.Position{}, "log(n/k) requires a literal divisor")
			}
			return smt.Add(offset, num, smt.NewConst(-logConstant(denomLit.Value))), nil
		}
		return nil, errors.Domain(ast.Position{}, "log() operand %s is not a recognized monomial shape", v.String())

	default:
		return nil, errors.Domain(ast.Position{}, "log() operand %s is not a recognized monomial shape", v.String())
	}
}

func logConstant(v int) float64 {
	if v <= 0 {
		return 0
	}
	return math.Log2(float64(v))
}

// Coefficient names one free basis coefficient a LinearCombination
// introduced, flagging whether it multiplies the dominant basis
// monomial (the one that must stay strictly positive).
type Coefficient struct {
	Name     string
	Monomial string
	Dominant bool
}

// LinearCombination translates an already-decomposed cost (the
// verifier calls costalgebra.Decompose separately on each callee's
// cost and on the function's own template) into `fixed + Σ c_i * basis_i`,
// spec §4.2's linear-combination construction. It deliberately
// consumes a DecomposedCost rather than re-deriving a basis from the
// dominant-term-and-factor procedure described for the symbolic
// bridge in isolation: costalgebra.Decompose already performs that
// construction (spec §4.1), and re-deriving it here would risk a
// second, possibly divergent, basis.
func (t *Translator) LinearCombination(decomposed costalgebra.DecomposedCost) (smt.Expr, []Coefficient, error) {
	fixed, err := t.Translate(decomposed.Fixed)
	if err != nil {
		return nil, nil, err
	}

	basis := decomposed.Basis.Sorted()
	terms := make([]smt.Expr, 0, len(basis)+1)
	terms = append(terms, fixed)
	coeffs := make([]Coefficient, 0, len(basis))

	var dominantIdx = -1
	var dominantRank = costalgebra.Rank{}
	for i, m := range basis {
		r := costalgebra.RankOf(m)
		if i == 0 || dominantRank.Less(r) {
			dominantRank = r
			dominantIdx = i
		}
	}

	for i, m := range basis {
		translated, err := t.Translate(m)
		if err != nil {
			return nil, nil, err
		}
		name := t.coeffName()
		coeffs = append(coeffs, Coefficient{Name: name, Monomial: m.String(), Dominant: i == dominantIdx})
		terms = append(terms, smt.Mul(smt.NewVar(name), translated))
	}

	return smt.Add(terms...), coeffs, nil
}

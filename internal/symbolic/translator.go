// Package symbolic is the bridge of spec §4.2: it owns the
// distinguished size symbol n, the shared log_n real, and a lazy
// pow_b_n witness per exponential base, and translates costalgebra
// terms into the smt package's arithmetic fragment. It is grounded on
// the tcaml prototype's verifier/smt.py Z3Translator, adapted from a
// live Z3 binding to the smt.Expr tree this module ships instead.
package symbolic

import (
	"fmt"
	"math"

	"github.com/iancoleman/strcase"

	"asymptote/internal/costalgebra"
	"asymptote/internal/ast"
	"asymptote/internal/errors"
	"asymptote/internal/smt"
)

// NName is the distinguished positive size scalar every translator
// eventually expresses its cost/size templates in terms of.
const NName = "n"

// Translator owns one function's size→n substitution and the
// per-base pow_b_n / coefficient state spec §4.2 and §4.5 describe.
// The verifier keeps one Translator per function name (caching).
type Translator struct {
	Func       string
	n          smt.Expr
	logN       smt.Expr
	expVars    map[int]string
	sizeSource costalgebra.Term
	coeffSeq   int
}

// NewTranslator returns a translator for fn with no size substitution
// installed yet.
func NewTranslator(fn string) *Translator {
	return &Translator{
		Func:    fn,
		n:       smt.NewVar(NName),
		logN:    smt.NewVar("log_n"),
		expVars: make(map[int]string),
	}
}

// NVar is the SMT-level n this translator installs everywhere.
func (t *Translator) NVar() smt.Expr { return t.n }

// LogNVar is the shared log_n real.
func (t *Translator) LogNVar() smt.Expr { return t.logN }

// PowVar returns (creating if needed) the pow_b_n witness for base.
func (t *Translator) PowVar(base int) smt.Expr {
	name, ok := t.expVars[base]
	if !ok {
		name = fmt.Sprintf("pow_%d_n", base)
		t.expVars[base] = name
	}
	return smt.NewVar(name)
}

// ExpVarNames returns every pow_b_n witness this translator has
// allocated so far, for domain-constraint declaration.
func (t *Translator) ExpVarNames() []string {
	names := make([]string, 0, len(t.expVars))
	for _, name := range t.expVars {
		names = append(names, name)
	}
	return names
}

// SetSizeDefinition installs the size→n domain substitution: spec
// §4.2's "solve n = φ(...) for any free variable". This translator
// only ever needs the driver subterm (the first leaf variable or
// measure call found inside size), since every example this pipeline
// verifies drives its size template off a single parameter.
func (t *Translator) SetSizeDefinition(size costalgebra.Term) {
	t.sizeSource = findDriver(size)
}

func findDriver(t costalgebra.Term) costalgebra.Term {
	switch v := t.(type) {
	case *costalgebra.Var:
		if v.Name == NName {
			return nil
		}
		return v
	case *costalgebra.Call:
		return v
	case *costalgebra.Binary:
		if d := findDriver(v.Left); d != nil {
			return d
		}
		return findDriver(v.Right)
	case *costalgebra.Log:
		return findDriver(v.Body)
	case *costalgebra.Poly:
		return findDriver(v.Base)
	case *costalgebra.Exp:
		return findDriver(v.Exponent)
	case *costalgebra.BigO:
		return findDriver(v.Body)
	default:
		return nil
	}
}

// SizeDriver returns the installed size driver subterm (the value
// SetSizeDefinition extracted), or nil if none is installed.
func (t *Translator) SizeDriver() costalgebra.Term { return t.sizeSource }

// ToNDomain rewrites every occurrence of the installed size driver to
// the bare n variable.
func (t *Translator) ToNDomain(e costalgebra.Term) costalgebra.Term {
	return toNDomain(e, t.sizeSource)
}

// toNDomain is ToNDomain generalized over an explicit driver, so a
// *costalgebra.Call can recurse against its own argument's driver
// rather than the translator's top-level one (needed when the driver
// is itself a measure call, e.g. `len l`: a recursive call's shrunk
// list argument arrives as `len(l - 1)`, which only matches the
// installed driver `len(l)` one level down, at the argument).
func toNDomain(e, driver costalgebra.Term) costalgebra.Term {
	if driver == nil || e == nil {
		return e
	}
	if costalgebra.Equal(e, driver) {
		return &costalgebra.Var{Name: NName}
	}
	switch v := e.(type) {
	case *costalgebra.Binary:
		return &costalgebra.Binary{Op: v.Op, Left: toNDomain(v.Left, driver), Right: toNDomain(v.Right, driver)}
	case *costalgebra.Log:
		return &costalgebra.Log{Body: toNDomain(v.Body, driver)}
	case *costalgebra.Poly:
		return &costalgebra.Poly{Base: toNDomain(v.Base, driver), Degree: v.Degree}
	case *costalgebra.Exp:
		return &costalgebra.Exp{Base: v.Base, Exponent: toNDomain(v.Exponent, driver)}
	case *costalgebra.BigO:
		return &costalgebra.BigO{Body: toNDomain(v.Body, driver)}
	case *costalgebra.Call:
		if dc, ok := driver.(*costalgebra.Call); ok && dc.Func == v.Func {
			// The same measure applied to a shrunk argument: the
			// argument already carries the tracked size quantity
			// (spec §4.3's tail-length tracking), so once it is
			// rewritten into n-domain the call collapses to that
			// arithmetic directly rather than re-wrapping it in the
			// measure a second time.
			return toNDomain(v.Arg, dc.Arg)
		}
		return &costalgebra.Call{Func: v.Func, Arg: toNDomain(v.Arg, driver)}
	default:
		return e
	}
}

// Translate recursively converts a cost-algebra term into the smt
// package's arithmetic fragment (spec §4.2's `translate`). The caller
// is expected to have already run ToNDomain over anything derived
// from a size template; Translate itself applies it once more so a
// raw, un-substituted term is never silently mistranslated.
func (t *Translator) Translate(term costalgebra.Term) (smt.Expr, error) {
	term = t.ToNDomain(term)

	if v, ok := constantEval(term); ok {
		return smt.NewConst(v), nil
	}

	switch v := term.(type) {
	case *costalgebra.Int:
		return smt.NewConst(float64(v.Value)), nil

	case *costalgebra.Var:
		if v.Name == NName {
			return t.n, nil
		}
		return nil, errors.Domain(ast.Position{}, "cost/size template references %q, which has no installed size definition", v.Name)

	case *costalgebra.Binary:
		left, err := t.Translate(v.Left)
		if err != nil {
			return nil, err
		}
		right, err := t.Translate(v.Right)
		if err != nil {
			return nil, err
		}
		switch v.Op {
		case costalgebra.OpAdd:
			return smt.Add(left, right), nil
		case costalgebra.OpSub:
			return smt.Add(left, smt.Mul(smt.NewConst(-1), right)), nil
		case costalgebra.OpMul:
			return smt.Mul(left, right), nil
		case costalgebra.OpDiv:
			c, ok := right.(*smt.Const)
			if !ok || c.Value == 0 {
				return nil, errors.Domain(ast.Position{}, "division by a non-constant size expression is not supported")
			}
			return smt.Mul(left, smt.NewConst(1/c.Value)), nil
		default:
			return nil, errors.Domain(ast.Position{}, "unsupported arithmetic operator %q in a cost/size template", v.Op)
		}

	case *costalgebra.Log:
		return t.handleLog(v.Body)

	case *costalgebra.Poly:
		return t.handlePolynomial(v.Base, v.Degree)

	case *costalgebra.Exp:
		return t.handleExponential(v.Base, v.Exponent)

	case *costalgebra.Call:
		return nil, errors.Domain(ast.Position{}, "measure %q has no installed size definition at this call site", v.Func)

	case *costalgebra.BigO:
		return nil, errors.Domain(ast.Position{}, "a bare O(...) term reached the symbolic bridge untranslated")

	default:
		return nil, errors.Domain(ast.Position{}, "unrecognized cost term %T", term)
	}
}

// constantEval evaluates term in floating point if it contains no
// free variable (other than one this translator has already resolved
// to a literal, which never happens prior to substitution).
func constantEval(term costalgebra.Term) (float64, bool) {
	switch v := term.(type) {
	case *costalgebra.Int:
		return float64(v.Value), true
	case *costalgebra.Binary:
		l, ok := constantEval(v.Left)
		if !ok {
			return 0, false
		}
		r, ok := constantEval(v.Right)
		if !ok {
			return 0, false
		}
		switch v.Op {
		case costalgebra.OpAdd:
			return l + r, true
		case costalgebra.OpSub:
			return l - r, true
		case costalgebra.OpMul:
			return l * r, true
		case costalgebra.OpDiv:
			if r == 0 {
				return 0, false
			}
			return l / r, true
		}
		return 0, false
	case *costalgebra.Log:
		body, ok := constantEval(v.Body)
		if !ok || body <= 0 {
			return 0, false
		}
		return math.Log2(body), true
	case *costalgebra.Poly:
		base, ok := constantEval(v.Base)
		if !ok {
			return 0, false
		}
		return math.Pow(base, float64(v.Degree)), true
	case *costalgebra.Exp:
		exp, ok := constantEval(v.Exponent)
		if !ok {
			return 0, false
		}
		return math.Pow(float64(v.Base), exp), true
	default:
		return 0, false
	}
}

// coeffName mints the fresh per-function basis coefficient spec §4.2
// names `c_{func,i}`.
func (t *Translator) coeffName() string {
	name := fmt.Sprintf("c_%s_%d", strcase.ToSnake(t.Func), t.coeffSeq)
	t.coeffSeq++
	return name
}

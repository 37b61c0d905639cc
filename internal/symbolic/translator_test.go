package symbolic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asymptote/internal/costalgebra"
)

func TestTranslateLinearSize(t *testing.T) {
	tr := NewTranslator("scan")
	tr.SetSizeDefinition(&costalgebra.Var{Name: "v"})

	e, err := tr.Translate(&costalgebra.Var{Name: "v"})
	require.NoError(t, err)
	assert.Equal(t, "n", e.String())
}

func TestTranslatePolynomial(t *testing.T) {
	tr := NewTranslator("nested")
	tr.SetSizeDefinition(&costalgebra.Var{Name: "v"})

	e, err := tr.Translate(costalgebra.MakePoly(&costalgebra.Var{Name: "v"}, 2))
	require.NoError(t, err)
	assert.Equal(t, "(n^2)", e.String())
}

func TestHandleLogOfSum(t *testing.T) {
	tr := NewTranslator("merge")
	tr.SetSizeDefinition(&costalgebra.Var{Name: "v"})

	body := costalgebra.MakeAdd(&costalgebra.Var{Name: "v"}, costalgebra.Val(1))
	e, err := tr.Translate(costalgebra.MakeLog(body))
	require.NoError(t, err)
	assert.Contains(t, e.String(), "log_n")
}

func TestHandleLogOfQuotient(t *testing.T) {
	tr := NewTranslator("binsearch")
	tr.SetSizeDefinition(&costalgebra.Var{Name: "v"})

	quotient := costalgebra.MakeDiv(&costalgebra.Var{Name: "v"}, costalgebra.Val(2))
	e, err := tr.Translate(costalgebra.MakeLog(quotient))
	require.NoError(t, err)
	assert.Contains(t, e.String(), "log_n")
}

func TestHandleExponential(t *testing.T) {
	tr := NewTranslator("fib")
	tr.SetSizeDefinition(&costalgebra.Var{Name: "v"})

	e, err := tr.Translate(costalgebra.MakeExp(2, &costalgebra.Var{Name: "v"}))
	require.NoError(t, err)
	assert.Equal(t, "pow_2_n", e.String())
}

func TestLinearCombinationMarksDominantMonomial(t *testing.T) {
	tr := NewTranslator("scan")
	tr.SetSizeDefinition(&costalgebra.Var{Name: "v"})

	decomposed := costalgebra.Decompose(costalgebra.MakeBigO(costalgebra.MakePoly(&costalgebra.Var{Name: "v"}, 2)))
	_, coeffs, err := tr.LinearCombination(decomposed)
	require.NoError(t, err)
	require.NotEmpty(t, coeffs)

	var sawDominant bool
	for _, c := range coeffs {
		if c.Dominant {
			sawDominant = true
			assert.Equal(t, "(v^2)", c.Monomial)
		}
	}
	assert.True(t, sawDominant)
}

func TestTranslateRejectsUnboundMeasure(t *testing.T) {
	tr := NewTranslator("scan")
	_, err := tr.Translate(&costalgebra.Var{Name: "unbound"})
	assert.Error(t, err)
}

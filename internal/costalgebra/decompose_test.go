package costalgebra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmartConstructorNormalization(t *testing.T) {
	n := &Var{Name: "n"}

	assert.Equal(t, "n", MakeAdd(n, Val(0)).String())
	assert.Equal(t, "n", MakeMul(n, Val(1)).String())
	assert.Equal(t, "0", MakeMul(n, Val(0)).String())
	assert.Equal(t, "0", MakeLog(Val(1)).String())
	assert.Equal(t, "(3 * log(n))", MakeLog(MakePoly(n, 3)).String())
}

func TestMakeMulMonomialFusion(t *testing.T) {
	n := &Var{Name: "n"}
	square := MakePoly(n, 2)

	cube := MakeMul(n, square)
	assert.Equal(t, "(n^3)", cube.String())
}

func TestDecomposeLogN(t *testing.T) {
	n := &Var{Name: "n"}
	d := Decompose(MakeBigO(MakeLog(n)))

	assert.Equal(t, "0", d.Fixed.String())
	assert.True(t, d.Basis.Contains(MakeLog(n)))
	assert.True(t, d.Basis.Contains(One()))
	assert.Len(t, d.Basis, 2)
}

func TestDecomposeNLogN(t *testing.T) {
	n := &Var{Name: "n"}
	d := Decompose(MakeBigO(MakeMul(n, MakeLog(n))))

	assert.True(t, d.Basis.Contains(MakeMul(n, MakeLog(n))))
	assert.True(t, d.Basis.Contains(n))
	assert.True(t, d.Basis.Contains(MakeLog(n)))
	assert.True(t, d.Basis.Contains(One()))
	assert.Len(t, d.Basis, 4)
}

func TestDecomposeExp(t *testing.T) {
	n := &Var{Name: "n"}
	d := Decompose(MakeBigO(MakeExp(2, n)))

	assert.Equal(t, "0", d.Fixed.String())
	assert.True(t, d.Basis.Contains(MakeExp(2, n)))
	assert.True(t, d.Basis.Contains(One()))
}

func TestDecomposeFixedPlusBigO(t *testing.T) {
	n := &Var{Name: "n"}
	d := Decompose(MakeAdd(Val(100), MakeBigO(n)))

	assert.Equal(t, "100", d.Fixed.String())
	assert.True(t, d.Basis.Contains(n))
	assert.True(t, d.Basis.Contains(One()))
}

func TestDecomposeNTimesBigON(t *testing.T) {
	n := &Var{Name: "n"}
	d := Decompose(MakeMul(n, MakeBigO(n)))

	assert.Equal(t, "0", d.Fixed.String())
	assert.True(t, d.Basis.Contains(MakePoly(n, 2)))
	assert.True(t, d.Basis.Contains(n))
}

func TestDecomposeLogOfCubeMatchesScaledLogN(t *testing.T) {
	n := &Var{Name: "n"}

	cube := Decompose(MakeBigO(MakeLog(MakePoly(n, 3))))
	scaled := Decompose(MakeBigO(MakeMul(Val(3), MakeLog(n))))

	assert.Equal(t, scaled.Fixed.String(), cube.Fixed.String())
	assert.ElementsMatch(t, scaled.Basis.Sorted(), cube.Basis.Sorted())
}

func TestDecomposeNSquared(t *testing.T) {
	n := &Var{Name: "n"}
	d := Decompose(MakeBigO(MakePoly(n, 2)))

	assert.True(t, d.Basis.Contains(MakePoly(n, 2)))
	assert.True(t, d.Basis.Contains(n))
	assert.True(t, d.Basis.Contains(One()))
	assert.Len(t, d.Basis, 3)
}

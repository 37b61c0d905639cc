package costalgebra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteReplacesNamedVar(t *testing.T) {
	v := &Var{Name: "scan_v"}
	got := Substitute(MakeBigO(v), map[string]Term{"scan_v": Val(10)})
	assert.Equal(t, "O(10)", got.String())
}

func TestSubstituteLeavesUnmappedVarUntouched(t *testing.T) {
	v := &Var{Name: "n"}
	got := Substitute(v, map[string]Term{"m": Val(1)})
	assert.Equal(t, "n", got.String())
}

func TestSubstituteCheckedFailsOnUnbound(t *testing.T) {
	v := &Var{Name: "helper_v"}
	_, ok := SubstituteChecked(v, map[string]Term{"helper_v": nil})
	assert.False(t, ok)
}

func TestSubstituteCheckedSucceedsWhenBound(t *testing.T) {
	v := &Var{Name: "helper_v"}
	got, ok := SubstituteChecked(v, map[string]Term{"helper_v": Val(3)})
	assert.True(t, ok)
	assert.Equal(t, "3", got.String())
}

func TestSubstituteTermMatchesMeasureCall(t *testing.T) {
	driver := &Call{Func: "len", Arg: &Var{Name: "l"}}
	timespec := MakeBigO(driver)

	got := SubstituteTerm(timespec, driver, Val(5))
	assert.Equal(t, "O(5)", got.String())
}

func TestSubstituteTermDoesNotTouchUnrelatedSubterms(t *testing.T) {
	driver := &Var{Name: "v"}
	other := &Var{Name: "w"}
	term := MakeAdd(driver, other)

	got := SubstituteTerm(term, driver, Val(7))
	assert.Equal(t, "(7 + w)", got.String())
}

func TestFreeVarsCollectsDistinctNames(t *testing.T) {
	term := MakeAdd(&Var{Name: "n"}, MakeMul(&Var{Name: "n"}, &Var{Name: "m"}))
	assert.ElementsMatch(t, []string{"n", "m"}, FreeVars(term))
}

package verifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asymptote/internal/costalgebra"
	"asymptote/internal/recurrence"
	"asymptote/internal/smt"
)

// TestVerifyNaiveFibonacciAccepted mirrors the canonical doubly-recursive
// fib(v) = fib(v-1) + fib(v-2) declared O(2^v): both recursive calls shift
// the exponent by a constant (2^(n-1), 2^(n-2)), which must still resolve
// to the same pow_2_n witness as the bare 2^n case.
func TestVerifyNaiveFibonacciAccepted(t *testing.T) {
	defs := recurrence.NewDefs()
	info := recurrence.FuncInfo{
		Name:     "fib",
		Args:     []string{"fib_v"},
		Timespec: costalgebra.MakeBigO(costalgebra.MakeExp(2, &costalgebra.Var{Name: "fib_v"})),
		Size:     &costalgebra.Var{Name: "fib_v"},
	}
	defs.Insert(info)

	recursivePath := recurrence.Path{
		{Callee: "fib", ArgMap: map[string]costalgebra.Term{"fib_v": costalgebra.MakeSub(&costalgebra.Var{Name: "fib_v"}, costalgebra.Val(1))}},
		{Callee: "fib", ArgMap: map[string]costalgebra.Term{"fib_v": costalgebra.MakeSub(&costalgebra.Var{Name: "fib_v"}, costalgebra.Val(2))}},
	}
	test := recurrence.FunctionTest{Name: "fib", Info: info, Paths: []recurrence.Path{{}, recursivePath}}

	v := New(defs, smt.NewRefSolver())
	verdict := v.Verify(test)

	require.True(t, verdict.Accepted, "%+v", verdict)
	require.Len(t, verdict.Paths, 2)
	for _, p := range verdict.Paths {
		assert.Equal(t, smt.Sat, p.Status)
	}
}

// TestVerifyAccumulatedLinearCallsQuadraticAccepted mirrors the classic
// T(n) = T(n-1) + O(n) recurrence (a single linear pass plus a recursive
// call on the shrunk size): the declared O(v^2) bound must accept.
func TestVerifyAccumulatedLinearCallsQuadraticAccepted(t *testing.T) {
	defs := recurrence.NewDefs()
	pass := recurrence.FuncInfo{
		Name:     "pass",
		Args:     []string{"pass_v"},
		Timespec: costalgebra.MakeBigO(&costalgebra.Var{Name: "pass_v"}),
		Size:     &costalgebra.Var{Name: "pass_v"},
	}
	defs.Insert(pass)

	info := recurrence.FuncInfo{
		Name:     "bubble",
		Args:     []string{"bubble_v"},
		Timespec: costalgebra.MakeBigO(costalgebra.MakePoly(&costalgebra.Var{Name: "bubble_v"}, 2)),
		Size:     &costalgebra.Var{Name: "bubble_v"},
	}
	defs.Insert(info)

	recursivePath := recurrence.Path{
		{Callee: "pass", ArgMap: map[string]costalgebra.Term{"pass_v": &costalgebra.Var{Name: "bubble_v"}}},
		{Callee: "bubble", ArgMap: map[string]costalgebra.Term{"bubble_v": costalgebra.MakeSub(&costalgebra.Var{Name: "bubble_v"}, costalgebra.Val(1))}},
	}
	test := recurrence.FunctionTest{Name: "bubble", Info: info, Paths: []recurrence.Path{{}, recursivePath}}

	v := New(defs, smt.NewRefSolver())
	verdict := v.Verify(test)

	require.True(t, verdict.Accepted, "%+v", verdict)
	require.Len(t, verdict.Paths, 2)
	for _, p := range verdict.Paths {
		assert.Equal(t, smt.Sat, p.Status)
	}
}

// TestVerifyLinearListScanAccepted mirrors a single linear pass over a
// list (measure `len xs`, not a bare integer): the recursive call's
// argument is the shrunk list, so its tracked size arrives as
// `len(xs - 1)` rather than `xs - 1` directly. ToNDomain must descend
// into that call to resolve it, or the path never translates at all.
func TestVerifyLinearListScanAccepted(t *testing.T) {
	defs := recurrence.NewDefs()
	info := recurrence.FuncInfo{
		Name:     "scan",
		Args:     []string{"scan_xs"},
		Timespec: costalgebra.MakeBigO(&costalgebra.Call{Func: "len", Arg: &costalgebra.Var{Name: "scan_xs"}}),
		Size:     &costalgebra.Call{Func: "len", Arg: &costalgebra.Var{Name: "scan_xs"}},
	}
	defs.Insert(info)

	recursivePath := recurrence.Path{
		{Callee: "scan", ArgMap: map[string]costalgebra.Term{"scan_xs": costalgebra.MakeSub(&costalgebra.Var{Name: "scan_xs"}, costalgebra.Val(1))}},
	}
	test := recurrence.FunctionTest{Name: "scan", Info: info, Paths: []recurrence.Path{{}, recursivePath}}

	v := New(defs, smt.NewRefSolver())
	verdict := v.Verify(test)

	require.True(t, verdict.Accepted, "%+v", verdict)
	require.Len(t, verdict.Paths, 2)
	for _, p := range verdict.Paths {
		assert.Equal(t, smt.Sat, p.Status)
	}
}

// TestVerifyMergeSortAccepted mirrors the classic T(n) = 2T(n/2) + O(n)
// divide-and-conquer recurrence over a list measure: two recursive
// calls on a halved `len l`, plus a linear combine step, declared
// O(n log n). This exercises both a list-measure call site (like
// TestVerifyLinearListScanAccepted) and a call-site size derived via
// division (`len l / 2`), together the two canonical scenarios a
// measure-call-blind ToNDomain rejected outright.
func TestVerifyMergeSortAccepted(t *testing.T) {
	defs := recurrence.NewDefs()
	combine := recurrence.FuncInfo{
		Name:     "combine",
		Args:     []string{"combine_l"},
		Timespec: costalgebra.MakeBigO(&costalgebra.Call{Func: "len", Arg: &costalgebra.Var{Name: "combine_l"}}),
		Size:     &costalgebra.Call{Func: "len", Arg: &costalgebra.Var{Name: "combine_l"}},
	}
	defs.Insert(combine)

	info := recurrence.FuncInfo{
		Name: "ms",
		Args: []string{"ms_l"},
		Timespec: costalgebra.MakeBigO(costalgebra.MakeMul(
			&costalgebra.Call{Func: "len", Arg: &costalgebra.Var{Name: "ms_l"}},
			costalgebra.MakeLog(&costalgebra.Call{Func: "len", Arg: &costalgebra.Var{Name: "ms_l"}}),
		)),
		Size: &costalgebra.Call{Func: "len", Arg: &costalgebra.Var{Name: "ms_l"}},
	}
	defs.Insert(info)

	half := costalgebra.MakeDiv(&costalgebra.Var{Name: "ms_l"}, costalgebra.Val(2))
	recursivePath := recurrence.Path{
		{Callee: "combine", ArgMap: map[string]costalgebra.Term{"combine_l": &costalgebra.Var{Name: "ms_l"}}},
		{Callee: "ms", ArgMap: map[string]costalgebra.Term{"ms_l": half}},
		{Callee: "ms", ArgMap: map[string]costalgebra.Term{"ms_l": half}},
	}
	test := recurrence.FunctionTest{Name: "ms", Info: info, Paths: []recurrence.Path{{}, recursivePath}}

	v := New(defs, smt.NewRefSolver())
	verdict := v.Verify(test)

	require.True(t, verdict.Accepted, "%+v", verdict)
	require.Len(t, verdict.Paths, 2)
	for _, p := range verdict.Paths {
		assert.Equal(t, smt.Sat, p.Status)
	}
}

// TestVerifyLinearClaimAgainstExponentialHelperRejected declares a linear
// bound for a function whose single call is to a genuinely exponential
// helper: the two sides' ranks differ outright (exponential vs degree 1),
// which the reference solver must reject regardless of coefficients.
func TestVerifyLinearClaimAgainstExponentialHelperRejected(t *testing.T) {
	defs := recurrence.NewDefs()
	helper := recurrence.FuncInfo{
		Name:     "expHelper",
		Args:     []string{"expHelper_v"},
		Timespec: costalgebra.MakeBigO(costalgebra.MakeExp(2, &costalgebra.Var{Name: "expHelper_v"})),
		Size:     &costalgebra.Var{Name: "expHelper_v"},
	}
	defs.Insert(helper)

	info := recurrence.FuncInfo{
		Name:     "f",
		Args:     []string{"f_v"},
		Timespec: costalgebra.MakeBigO(&costalgebra.Var{Name: "f_v"}),
		Size:     &costalgebra.Var{Name: "f_v"},
	}
	defs.Insert(info)

	path := recurrence.Path{
		{Callee: "expHelper", ArgMap: map[string]costalgebra.Term{"expHelper_v": &costalgebra.Var{Name: "f_v"}}},
	}
	test := recurrence.FunctionTest{Name: "f", Info: info, Paths: []recurrence.Path{path}}

	v := New(defs, smt.NewRefSolver())
	verdict := v.Verify(test)

	assert.False(t, verdict.Accepted)
	require.Len(t, verdict.Paths, 1)
	assert.Equal(t, smt.Unsat, verdict.Paths[0].Status)
	assert.Error(t, verdict.Paths[0].Err)
}

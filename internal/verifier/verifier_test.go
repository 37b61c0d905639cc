package verifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asymptote/internal/costalgebra"
	"asymptote/internal/recurrence"
	"asymptote/internal/smt"
)

func TestVerifyLinearScanAccepted(t *testing.T) {
	defs := recurrence.NewDefs()
	info := recurrence.FuncInfo{
		Name:     "scan",
		Args:     []string{"scan_v"},
		Timespec: costalgebra.MakeBigO(&costalgebra.Var{Name: "scan_v"}),
		Size:     &costalgebra.Var{Name: "scan_v"},
	}
	defs.Insert(info)

	test := recurrence.FunctionTest{Name: "scan", Info: info, Paths: []recurrence.Path{{}}}

	v := New(defs, smt.NewRefSolver())
	verdict := v.Verify(test)

	require.True(t, verdict.Accepted, "%+v", verdict)
	require.Len(t, verdict.Paths, 1)
	assert.Equal(t, smt.Sat, verdict.Paths[0].Status)
}

func TestVerifyOverclaimedConstantRejected(t *testing.T) {
	defs := recurrence.NewDefs()
	info := recurrence.FuncInfo{
		Name:     "scan",
		Args:     []string{"scan_v"},
		Timespec: costalgebra.MakeBigO(costalgebra.Val(1)),
		Size:     &costalgebra.Var{Name: "scan_v"},
	}
	defs.Insert(info)

	helper := recurrence.FuncInfo{
		Name:     "helper",
		Args:     []string{"helper_v"},
		Timespec: costalgebra.MakeBigO(&costalgebra.Var{Name: "helper_v"}),
		Size:     &costalgebra.Var{Name: "helper_v"},
	}
	defs.Insert(helper)

	path := recurrence.Path{{
		Callee: "helper",
		ArgMap: map[string]costalgebra.Term{"helper_v": &costalgebra.Var{Name: "scan_v"}},
	}}
	test := recurrence.FunctionTest{Name: "scan", Info: info, Paths: []recurrence.Path{path}}

	v := New(defs, smt.NewRefSolver())
	verdict := v.Verify(test)

	assert.False(t, verdict.Accepted)
	require.Len(t, verdict.Paths, 1)
	assert.Equal(t, smt.Unsat, verdict.Paths[0].Status)
	assert.Error(t, verdict.Paths[0].Err)
}

func TestVerifyUnboundCallSizeFails(t *testing.T) {
	defs := recurrence.NewDefs()
	info := recurrence.FuncInfo{
		Name:     "outer",
		Args:     []string{"outer_v"},
		Timespec: costalgebra.MakeBigO(&costalgebra.Var{Name: "outer_v"}),
		Size:     &costalgebra.Var{Name: "outer_v"},
	}
	defs.Insert(info)
	helper := recurrence.FuncInfo{
		Name:     "helper",
		Args:     []string{"helper_v"},
		Timespec: costalgebra.MakeBigO(&costalgebra.Var{Name: "helper_v"}),
		Size:     &costalgebra.Var{Name: "helper_v"},
	}
	defs.Insert(helper)

	path := recurrence.Path{{
		Callee: "helper",
		ArgMap: map[string]costalgebra.Term{"helper_v": recurrence.Unbound},
	}}
	test := recurrence.FunctionTest{Name: "outer", Info: info, Paths: []recurrence.Path{path}}

	v := New(defs, smt.NewRefSolver())
	verdict := v.Verify(test)

	assert.False(t, verdict.Accepted)
	require.Len(t, verdict.Paths, 1)
	assert.Error(t, verdict.Paths[0].Err)
}

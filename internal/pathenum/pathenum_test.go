package pathenum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asymptote/internal/ast"
	"asymptote/internal/costalgebra"
	"asymptote/internal/parser"
	"asymptote/internal/recurrence"
)

func bodyOf(t *testing.T, source string) ast.Expr {
	t.Helper()
	prog, err := parser.ParseSource("<test>", source)
	require.NoError(t, err)
	require.Len(t, prog.Defs, 1)
	fn, ok := prog.Defs[0].(*ast.EFuncDef)
	require.True(t, ok)
	return ast.StripLambdas(fn.Body)
}

func TestEnumerateLiteralIsSinglePath(t *testing.T) {
	body := bodyOf(t, "let f (v : int) : int @ O(1) measure v = 42;")
	val, paths, err := Enumerate(body, Env{}, recurrence.NewDefs())
	require.NoError(t, err)
	assert.Equal(t, "42", val.String())
	assert.Len(t, paths, 1)
	assert.Empty(t, paths[0])
}

func TestEnumerateIfBranchesCartesianProduct(t *testing.T) {
	defs := recurrence.NewDefs()
	defs.Insert(recurrence.FuncInfo{Name: "g", Args: []string{"g_x"}})
	body := bodyOf(t, "let f (v : int) : int @ O(1) measure v = if v = 0 then 1 else g v;")

	_, paths, err := Enumerate(body, Env{"v": &costalgebra.Var{Name: "v"}}, defs)
	require.NoError(t, err)
	// one branch calls g, the other doesn't: two paths total.
	assert.Len(t, paths, 2)
}

func TestEnumerateCallRecordsArgMap(t *testing.T) {
	defs := recurrence.NewDefs()
	defs.Insert(recurrence.FuncInfo{Name: "helper", Args: []string{"helper_v"}})
	body := bodyOf(t, "let f (v : int) : int @ O(1) measure v = helper v;")

	env := Env{"v": &costalgebra.Var{Name: "scan_v"}}
	_, paths, err := Enumerate(body, env, defs)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Len(t, paths[0], 1)
	call := paths[0][0]
	assert.Equal(t, "helper", call.Callee)
	assert.Equal(t, "scan_v", call.ArgMap["helper_v"].String())
}

func TestEnumerateUndefinedCalleeIsDomainError(t *testing.T) {
	defs := recurrence.NewDefs()
	body := bodyOf(t, "let f (v : int) : int @ O(1) measure v = missing v;")
	_, _, err := Enumerate(body, Env{"v": &costalgebra.Var{Name: "v"}}, defs)
	assert.Error(t, err)
}

func TestEnumerateConsTracksLength(t *testing.T) {
	body := bodyOf(t, "let f (v : int) : int @ O(1) measure v = 1 :: [];")
	val, _, err := Enumerate(body, Env{}, recurrence.NewDefs())
	require.NoError(t, err)
	assert.Equal(t, "1", val.String())
}

package recurrence

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"asymptote/internal/costalgebra"
)

func TestDefsInsertLookup(t *testing.T) {
	defs := NewDefs()
	_, ok := defs.Lookup("scan")
	assert.False(t, ok)

	info := FuncInfo{Name: "scan", Args: []string{"scan_v"}, Timespec: costalgebra.MakeBigO(&costalgebra.Var{Name: "scan_v"})}
	defs.Insert(info)

	got, ok := defs.Lookup("scan")
	assert.True(t, ok)
	assert.Equal(t, info, got)
}

func TestDefsArity(t *testing.T) {
	defs := NewDefs()
	defs.Insert(FuncInfo{Name: "f", Args: []string{"f_a", "f_b"}})

	arity, ok := defs.Arity("f")
	assert.True(t, ok)
	assert.Equal(t, 2, arity)

	_, ok = defs.Arity("missing")
	assert.False(t, ok)
}

func TestUnboundIsNilTerm(t *testing.T) {
	assert.Nil(t, Unbound)

	call := FunctionCall{Callee: "helper", ArgMap: map[string]costalgebra.Term{"helper_v": Unbound}}
	assert.Nil(t, call.ArgMap["helper_v"])
}

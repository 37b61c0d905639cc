package vcgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asymptote/internal/parser"
	"asymptote/internal/recurrence"
	"asymptote/internal/stdlib"
	"asymptote/internal/symbols"
)

func newDefs(t *testing.T) (*recurrence.Defs, *symbols.Counter) {
	t.Helper()
	defs := recurrence.NewDefs()
	counter := symbols.NewCounter()
	require.NoError(t, stdlib.Populate(defs, counter))
	return defs, counter
}

func TestGenerateBindsFreshArgSymbols(t *testing.T) {
	defs, counter := newDefs(t)
	prog, err := parser.ParseSource("<test>", "let scan (v : int list) : int @ O(v) measure v = v;")
	require.NoError(t, err)

	tests, err := Generate(prog, defs, counter)
	require.NoError(t, err)
	require.Len(t, tests, 1)

	info := tests[0].Info
	require.Len(t, info.Args, 1)
	assert.Regexp(t, `^scan_v_\d+$`, info.Args[0])
	assert.Equal(t, info.Args[0], info.Size.String())
	assert.Equal(t, "O("+info.Args[0]+")", info.Timespec.String())
}

func TestGenerateInsertsRecursiveFunctionBeforeEnumeratingBody(t *testing.T) {
	defs, counter := newDefs(t)
	prog, err := parser.ParseSource("<test>", "let rec countdown (v : int) : int @ O(v) measure v = if v = 0 then 0 else countdown (v - 1);")
	require.NoError(t, err)

	tests, err := Generate(prog, defs, counter)
	require.NoError(t, err)
	require.Len(t, tests, 1)

	_, ok := defs.Lookup("countdown")
	assert.True(t, ok, "a recursive function's own entry must resolve self-calls")

	require.Len(t, tests[0].Paths, 2)
}

func TestGenerateRejectsNonLenMeasureDefinitions(t *testing.T) {
	defs, counter := newDefs(t)
	prog, err := parser.ParseSource("<test>", "measure depth (v : int) : int = 0;")
	require.NoError(t, err)

	_, err = Generate(prog, defs, counter)
	assert.Error(t, err)
}

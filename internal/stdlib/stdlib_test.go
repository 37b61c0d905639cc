package stdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asymptote/internal/recurrence"
	"asymptote/internal/symbols"
)

func TestProgramParses(t *testing.T) {
	prog, err := Program()
	require.NoError(t, err)
	assert.NotEmpty(t, prog.Defs)
}

func TestPopulateInsertsEveryEntry(t *testing.T) {
	defs := recurrence.NewDefs()
	counter := symbols.NewCounter()
	require.NoError(t, Populate(defs, counter))

	for _, name := range []string{"readArray", "writeArray", "newArray", "readList", "len"} {
		_, ok := defs.Lookup(name)
		assert.True(t, ok, "stdlib entry %q must be populated", name)
	}
}

func TestPopulateNewArrayIsLinear(t *testing.T) {
	defs := recurrence.NewDefs()
	counter := symbols.NewCounter()
	require.NoError(t, Populate(defs, counter))

	info, ok := defs.Lookup("newArray")
	require.True(t, ok)
	assert.Equal(t, info.Args[0], info.Size.String())
	assert.Equal(t, "O("+info.Args[0]+")", info.Timespec.String())
}

func TestPopulateReadListCostsMeasureCall(t *testing.T) {
	defs := recurrence.NewDefs()
	counter := symbols.NewCounter()
	require.NoError(t, Populate(defs, counter))

	info, ok := defs.Lookup("readList")
	require.True(t, ok)
	assert.Contains(t, info.Size.String(), "len(")
}

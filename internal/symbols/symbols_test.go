package symbols

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreshIsMonotonic(t *testing.T) {
	c := NewCounter()
	assert.Equal(t, 0, c.Fresh())
	assert.Equal(t, 1, c.Fresh())
	assert.Equal(t, 2, c.Fresh())
}

func TestArgSymbolNaming(t *testing.T) {
	c := NewCounter()
	assert.Equal(t, "scan_v_0", c.ArgSymbol("scan", "v"))
	assert.Equal(t, "scan_v_1", c.ArgSymbol("scan", "v"))
}

func TestFreshSerializedUnderConcurrency(t *testing.T) {
	c := NewCounter()
	const n = 200
	seen := make(chan int, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- c.Fresh()
		}()
	}
	wg.Wait()
	close(seen)

	ids := make(map[int]bool, n)
	for id := range seen {
		ids[id] = true
	}
	assert.Len(t, ids, n, "every concurrent Fresh() call must observe a distinct id")
}

// Package symbols hands out the fresh identifiers the pipeline relies
// on to avoid alpha-capture during substitution (spec §3 invariant I1,
// §5): a monotonic counter that one pipeline run creates with
// NewCounter and never resets, so identifiers are unique within that
// run. internal/bench analyses files concurrently and gives each file
// its own Counter. The counter is still guarded with go-deadlock's
// Mutex rather than a plain sync.Mutex, so sharing one across
// goroutines is serialised and a lock-ordering mistake here surfaces
// immediately in tests instead of as an occasional production hang.
package symbols

import (
	"fmt"

	"github.com/sasha-s/go-deadlock"
)

// Counter is the fresh-symbol source of one pipeline run.
type Counter struct {
	mu   deadlock.Mutex
	next int
}

// NewCounter returns a counter starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Fresh returns the next monotonic id.
func (c *Counter) Fresh() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.next
	c.next++
	return id
}

// ArgSymbol returns the fresh argument symbol `funcname_xi` spec §4.4
// step 1 prescribes: owning function name, original parameter name,
// and a disambiguating fresh id so two functions (or two recursive
// invocations of the binder) never collide.
func (c *Counter) ArgSymbol(funcName, paramName string) string {
	return fmt.Sprintf("%s_%s_%d", funcName, paramName, c.Fresh())
}

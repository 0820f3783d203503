package cqlbridge

import (
	"sync"

	"github.com/cqlbridge/cqlbridge/types"
)

// bindings is the bound-value store of one prepared statement: an
// ordered-by-position mapping from placeholder index (1-based) to a coerced
// value.
//
// It is a pure associative store; index validation and coercion happen
// before put is called. Values persist across executions until clear is
// called, so a statement can be re-executed with partially updated values
// without re-preparing.
//
// The mutex exists only to guarantee that snapshot never observes a torn
// map when a caller misuses one statement from multiple goroutines; it does
// not make interleaved bind/execute sequences meaningful.
type bindings struct {
	mu     sync.Mutex
	count  int
	values map[int]types.Value
}

// newBindings creates an empty store for the given placeholder count.
func newBindings(count int) *bindings {
	return &bindings{
		count:  count,
		values: make(map[int]types.Value, count),
	}
}

// put inserts or overwrites the value at pos. The caller has already
// validated 1 <= pos <= count.
func (b *bindings) put(pos int, v types.Value) {
	b.mu.Lock()
	b.values[pos] = v
	b.mu.Unlock()
}

// clear empties the mapping. The placeholder count is unaffected.
func (b *bindings) clear() {
	b.mu.Lock()
	clear(b.values)
	b.mu.Unlock()
}

// snapshot copies the current mapping into a positional slice for the
// dispatcher: element i holds the value bound at position i+1, and
// positions that were never bound hold the zero (unset) Value.
func (b *bindings) snapshot() []types.Value {
	snap := make([]types.Value, b.count)

	b.mu.Lock()
	for pos, v := range b.values {
		snap[pos-1] = v
	}
	b.mu.Unlock()

	return snap
}

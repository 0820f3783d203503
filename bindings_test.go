package cqlbridge

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cqlbridge/cqlbridge/types"
)

func TestBindingsSnapshotEmpty(t *testing.T) {
	b := newBindings(3)

	snap := b.snapshot()
	require.Len(t, snap, 3)
	for _, v := range snap {
		assert.True(t, v.IsUnset())
	}
}

func TestBindingsPutAndOverwrite(t *testing.T) {
	b := newBindings(2)

	first, err := types.Coerce("one", types.TargetNone)
	require.NoError(t, err)
	second, err := types.Coerce("two", types.TargetNone)
	require.NoError(t, err)

	b.put(1, first)
	b.put(1, second)

	snap := b.snapshot()
	s, ok := snap[0].Text()
	require.True(t, ok)
	assert.Equal(t, "two", s)
	assert.True(t, snap[1].IsUnset())
}

func TestBindingsClear(t *testing.T) {
	b := newBindings(2)

	v, err := types.Coerce(int64(1), types.TargetNone)
	require.NoError(t, err)
	b.put(1, v)
	b.put(2, v)

	b.clear()

	for _, got := range b.snapshot() {
		assert.True(t, got.IsUnset())
	}
}

func TestBindingsSnapshotIsCopy(t *testing.T) {
	b := newBindings(1)

	v, err := types.Coerce("before", types.TargetNone)
	require.NoError(t, err)
	b.put(1, v)

	snap := b.snapshot()

	later, err := types.Coerce("after", types.TargetNone)
	require.NoError(t, err)
	b.put(1, later)

	s, ok := snap[0].Text()
	require.True(t, ok)
	assert.Equal(t, "before", s)
}

func TestBindingsConcurrentSnapshot(t *testing.T) {
	b := newBindings(4)

	v, err := types.Coerce(int64(42), types.TargetNone)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b.put(j%4+1, v)
				snap := b.snapshot()
				assert.Len(t, snap, 4)
			}
		}()
	}
	wg.Wait()
}

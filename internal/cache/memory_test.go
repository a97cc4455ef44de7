package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(Options{})

	_, ok, err := m.Get(ctx, Key("cars", ""))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "cars", Key("cars", ""), 0, []byte(`[]`)))

	value, ok, err := m.Get(ctx, Key("cars", ""))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(value))
}

func TestMemoryInvalidateScope(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(Options{})

	require.NoError(t, m.Set(ctx, "cars", Key("cars", ""), 0, []byte(`all`)))
	require.NoError(t, m.Set(ctx, "cars", Key("cars", "years=2019"), 0, []byte(`some`)))
	require.NoError(t, m.Set(ctx, "users", Key("users", ""), 0, []byte(`users`)))
	assert.Equal(t, 3, m.Len())

	require.NoError(t, m.InvalidateScope(ctx, "cars"))

	_, ok, _ := m.Get(ctx, Key("cars", ""))
	assert.False(t, ok)
	_, ok, _ = m.Get(ctx, Key("cars", "years=2019"))
	assert.False(t, ok)
	_, ok, _ = m.Get(ctx, Key("users", ""))
	assert.True(t, ok)
	assert.Equal(t, 1, m.Len())
}

func TestMemoryTTL(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(Options{TTL: time.Minute})
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "cars", "cars?", 0, []byte(`x`)))

	now = now.Add(30 * time.Second)
	_, ok, _ := m.Get(ctx, "cars?")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok, _ = m.Get(ctx, "cars?")
	assert.False(t, ok)
}

func TestMemoryClosed(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(Options{})
	require.NoError(t, m.Close())

	_, _, err := m.Get(ctx, "cars?")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, m.Set(ctx, "cars", "cars?", 0, nil), ErrClosed)
	_, err = m.Generation(ctx, "cars")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, m.Ping(ctx), ErrClosed)
}

func TestMemoryConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(Options{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			gen, err := m.Generation(ctx, "cars")
			if err == nil {
				_ = m.Set(ctx, "cars", "cars?", gen, []byte(`x`))
			}
		}()
		go func() {
			defer wg.Done()
			_, _, _ = m.Get(ctx, "cars?")
		}()
		go func() {
			defer wg.Done()
			_ = m.InvalidateScope(ctx, "cars")
		}()
	}
	wg.Wait()

	gen, err := m.Generation(ctx, "cars")
	require.NoError(t, err)
	assert.Equal(t, uint64(50), gen)
}

func TestMemoryStaleGenerationDropped(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(Options{})

	gen, err := m.Generation(ctx, "cars")
	require.NoError(t, err)

	// a writer invalidates while the list is being loaded
	require.NoError(t, m.InvalidateScope(ctx, "cars"))

	require.NoError(t, m.Set(ctx, "cars", Key("cars", ""), gen, []byte(`stale`)))
	_, ok, _ := m.Get(ctx, Key("cars", ""))
	assert.False(t, ok)

	// other scopes keep their own generation
	require.NoError(t, m.Set(ctx, "users", Key("users", ""), 0, []byte(`fresh`)))
	_, ok, _ = m.Get(ctx, Key("users", ""))
	assert.True(t, ok)

	current, err := m.Generation(ctx, "cars")
	require.NoError(t, err)
	assert.Equal(t, gen+1, current)
	require.NoError(t, m.Set(ctx, "cars", Key("cars", ""), current, []byte(`fresh`)))
	value, ok, _ := m.Get(ctx, Key("cars", ""))
	assert.True(t, ok)
	assert.Equal(t, `fresh`, string(value))
}

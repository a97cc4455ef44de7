package cache

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestRedisWithContainer exercises the Redis backend against a real server
func TestRedisWithContainer(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	image := os.Getenv("REDIS_IMAGE")
	if image == "" {
		image = "redis:7-alpine"
	}

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	defer func() {
		if err := redisContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate Redis container: %v", err)
		}
	}()

	endpoint, err := redisContainer.Endpoint(ctx, "")
	require.NoError(t, err)

	r, err := DialRedis(ctx, endpoint, "", 0, Options{})
	require.NoError(t, err)
	defer r.Close()

	t.Run("GetSet", func(t *testing.T) {
		_, ok, err := r.Get(ctx, Key("cars", "missing"))
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, r.Set(ctx, "cars", Key("cars", ""), 0, []byte(`[1]`)))
		value, ok, err := r.Get(ctx, Key("cars", ""))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[1]`, string(value))
	})

	t.Run("InvalidateScope", func(t *testing.T) {
		require.NoError(t, r.Set(ctx, "cars", Key("cars", "years=2019"), 0, []byte(`[2]`)))
		require.NoError(t, r.Set(ctx, "users", Key("users", ""), 0, []byte(`[3]`)))

		require.NoError(t, r.InvalidateScope(ctx, "cars"))

		_, ok, err := r.Get(ctx, Key("cars", "years=2019"))
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = r.Get(ctx, Key("users", ""))
		require.NoError(t, err)
		assert.True(t, ok)

		gen, err := r.Generation(ctx, "cars")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), gen)
	})

	t.Run("StaleGenerationDropped", func(t *testing.T) {
		gen, err := r.Generation(ctx, "cars")
		require.NoError(t, err)
		require.NoError(t, r.InvalidateScope(ctx, "cars"))

		key := Key("cars", "makes=BMW")
		require.NoError(t, r.Set(ctx, "cars", key, gen, []byte(`stale`)))

		_, ok, err := r.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, r.client.SIsMember(ctx, scopeKey("cars"), key).Val())

		require.NoError(t, r.Set(ctx, "cars", key, gen+1, []byte(`fresh`)))
		value, ok, err := r.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `fresh`, string(value))
	})

	t.Run("ConcurrentSetAndInvalidate", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(2)
			go func(i int) {
				defer wg.Done()
				gen, err := r.Generation(ctx, "songs")
				if err != nil {
					return
				}
				_ = r.Set(ctx, "songs", Key("songs", fmt.Sprintf("ids=%d", i)), gen, []byte(`[]`))
			}(i)
			go func() {
				defer wg.Done()
				_ = r.InvalidateScope(ctx, "songs")
			}()
		}
		wg.Wait()

		require.NoError(t, r.InvalidateScope(ctx, "songs"))

		keys, err := r.client.Keys(ctx, dataKey(Key("songs", "*"))).Result()
		require.NoError(t, err)
		assert.Empty(t, keys)
		assert.Zero(t, r.client.Exists(ctx, scopeKey("songs")).Val())

		gen, err := r.Generation(ctx, "songs")
		require.NoError(t, err)
		assert.Equal(t, uint64(21), gen)
	})

	t.Run("TTL", func(t *testing.T) {
		expiring := NewRedis(r.client, Options{TTL: time.Minute})
		key := Key("tickets", "")
		require.NoError(t, expiring.Set(ctx, "tickets", key, 0, []byte(`[]`)))

		ttl, err := r.client.PTTL(ctx, dataKey(key)).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, time.Minute)
	})

	t.Run("InvalidateEmptyScope", func(t *testing.T) {
		assert.NoError(t, r.InvalidateScope(ctx, "never-written"))
	})
}

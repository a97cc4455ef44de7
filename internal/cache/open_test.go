package cache

import (
	"context"
	"testing"

	"github.com/localnerve/catalogdb/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	c, err := Open(ctx, &config.Config{CacheType: "memory", CacheTTLSeconds: 5})
	require.NoError(t, err)
	m, ok := c.(*Memory)
	require.True(t, ok)
	assert.Equal(t, "5s", m.ttl.String())

	_, err = Open(ctx, &config.Config{CacheType: "memcached"})
	assert.Error(t, err)

	_, err = Open(ctx, &config.Config{CacheType: "redis", RedisAddr: "127.0.0.1:1"})
	assert.Error(t, err)
}

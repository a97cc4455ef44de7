package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/localnerve/catalogdb/internal/config"
	"github.com/localnerve/catalogdb/internal/logging"
)

// Open returns the backend selected by CACHE_TYPE
func Open(ctx context.Context, cfg *config.Config) (Cache, error) {
	opts := Options{TTL: time.Duration(cfg.CacheTTLSeconds) * time.Second}

	switch cfg.CacheType {
	case "", "memory":
		logging.Info().Dur("ttl", opts.TTL).Msg("Using in-memory response cache")
		return NewMemory(opts), nil
	case "redis":
		r, err := DialRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		logging.Info().Str("addr", cfg.RedisAddr).Dur("ttl", opts.TTL).Msg("Using redis response cache")
		return r, nil
	}
	return nil, fmt.Errorf("unsupported cache type: %s", cfg.CacheType)
}

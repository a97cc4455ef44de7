package handlers

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/catalogdb/internal/cache"
	"github.com/localnerve/catalogdb/internal/logging"
	"github.com/localnerve/catalogdb/internal/metrics"
)

// Cache scopes, one per cached list resource
const (
	ScopeCars     = "cars"
	ScopeNewsFeed = "newsfeed"
	ScopeSongs    = "songs"
	ScopeUsers    = "users"
)

// ListCache serves list responses from the response cache.
// A nil ListCache or nil Store always computes the response.
type ListCache struct {
	Store   cache.Cache
	Metrics *metrics.Metrics
}

func NewListCache(store cache.Cache, m *metrics.Metrics) *ListCache {
	return &ListCache{Store: store, Metrics: m}
}

func (l *ListCache) enabled() bool {
	return l != nil && l.Store != nil
}

// serve returns the cached body for scope and canonical filter, or computes,
// stores and returns it. Cache failures degrade to an uncached response.
// The scope generation is read before loading; a write that invalidates the
// scope meanwhile makes the store a no-op.
func serve[T any](l *ListCache, c *fiber.Ctx, op, scope, canonical string, load func(context.Context) ([]T, error)) error {
	ctx := c.UserContext()
	key := cache.Key(scope, canonical)

	var gen uint64
	store := l.enabled()
	if store {
		var err error
		if gen, err = l.Store.Generation(ctx, scope); err != nil {
			l.Metrics.CacheError(scope)
			logging.Warn().Err(err).Str("scope", scope).Msg("Cache generation read failed")
			store = false
		}
	}

	if store {
		body, ok, err := l.Store.Get(ctx, key)
		switch {
		case err != nil:
			l.Metrics.CacheError(scope)
			logging.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		case ok:
			l.Metrics.CacheHit(scope)
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Status(fiber.StatusOK).Send(body)
		default:
			l.Metrics.CacheMiss(scope)
		}
	}

	items, err := load(ctx)
	if err != nil {
		return handleError(c, err, op)
	}

	body, err := json.Marshal(items)
	if err != nil {
		return handleError(c, err, op)
	}

	if store {
		if err := l.Store.Set(ctx, scope, key, gen, body); err != nil {
			logging.Warn().Err(err).Str("key", key).Msg("Cache write failed")
		}
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(body)
}

// Invalidate returns a write hook that evicts every entry of scope
func (l *ListCache) Invalidate(scope string) invalidator {
	return func(ctx context.Context) {
		if !l.enabled() {
			return
		}
		if err := l.Store.InvalidateScope(ctx, scope); err != nil {
			logging.Warn().Err(err).Str("scope", scope).Msg("Cache invalidation failed")
			return
		}
		l.Metrics.CacheInvalidated(scope)
	}
}

package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
)

const redisPrefix = "catalogdb:cache:"

// Redis is a Cache backed by a Redis server. The keys of each scope are
// tracked in a Redis set so a scope can be invalidated without SCAN.
type Redis struct {
	client *redis.Client
	opts   Options
}

// NewRedis wraps an existing client
func NewRedis(client *redis.Client, opts Options) *Redis {
	return &Redis{client: client, opts: opts}
}

// DialRedis creates a client for addr and verifies the connection
func DialRedis(ctx context.Context, addr, password string, db int, opts Options) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	r := NewRedis(client, opts)
	if err := r.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	return r, nil
}

func dataKey(key string) string {
	return redisPrefix + "data:" + key
}

func scopeKey(scope string) string {
	return redisPrefix + "scope:" + scope
}

func genKey(scope string) string {
	return redisPrefix + "gen:" + scope
}

// KEYS: generation, data, scope set. ARGV: expected generation, value, ttl ms, member.
var setScript = redis.NewScript(`
local gen = redis.call('GET', KEYS[1]) or '0'
if gen ~= ARGV[1] then
  return 0
end
if tonumber(ARGV[3]) > 0 then
  redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
else
  redis.call('SET', KEYS[2], ARGV[2])
end
redis.call('SADD', KEYS[3], ARGV[4])
return 1
`)

// KEYS: generation, scope set. ARGV: data key prefix.
var invalidateScript = redis.NewScript(`
local members = redis.call('SMEMBERS', KEYS[2])
for _, member in ipairs(members) do
  redis.call('DEL', ARGV[1] .. member)
end
redis.call('DEL', KEYS[2])
return redis.call('INCR', KEYS[1])
`)

// Get returns the value stored under key
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, dataKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key and records key as a member of scope, unless the
// scope generation has moved past gen
func (r *Redis) Set(ctx context.Context, scope, key string, gen uint64, value []byte) error {
	keys := []string{genKey(scope), dataKey(key), scopeKey(scope)}
	err := setScript.Run(ctx, r.client, keys,
		strconv.FormatUint(gen, 10), value, r.opts.TTL.Milliseconds(), key).Err()
	if err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Generation returns the current generation of scope
func (r *Redis) Generation(ctx context.Context, scope string) (uint64, error) {
	gen, err := r.client.Get(ctx, genKey(scope)).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis generation %s: %w", scope, err)
	}
	return gen, nil
}

// InvalidateScope deletes every key recorded for scope and the scope set, then
// advances the scope generation, all in one script
func (r *Redis) InvalidateScope(ctx context.Context, scope string) error {
	keys := []string{genKey(scope), scopeKey(scope)}
	if err := invalidateScript.Run(ctx, r.client, keys, redisPrefix+"data:").Err(); err != nil {
		return fmt.Errorf("redis invalidate %s: %w", scope, err)
	}
	return nil
}

// Ping checks the server connection
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// takeScript runs the fixed-window rule inside redis so that concurrent
// instances cannot lose updates. Times are unix milliseconds.
var takeScript = redis.NewScript(`
local count = tonumber(redis.call('HGET', KEYS[1], 'count') or '0')
local start = tonumber(redis.call('HGET', KEYS[1], 'start') or '0')
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local max = tonumber(ARGV[3])

if start == 0 or now - start > window then
  count = 0
  start = now
end

if count >= max then
  return {0, count, start}
end

count = count + 1
redis.call('HSET', KEYS[1], 'count', count, 'start', start)
redis.call('PEXPIRE', KEYS[1], window * 2)
return {1, count, start}
`)

// RedisStore keeps counters in redis hashes under prefix+key.
type RedisStore struct {
	client redis.Scripter
	prefix string
}

// NewRedisStore creates a RedisStore. prefix namespaces the keys.
func NewRedisStore(client redis.Scripter, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// Take implements Store.
func (s *RedisStore) Take(ctx context.Context, key string, now time.Time, window time.Duration, max int) (Record, bool, error) {
	res, err := takeScript.Run(ctx, s.client,
		[]string{s.prefix + key},
		now.UnixMilli(), window.Milliseconds(), max,
	).Int64Slice()
	if err != nil {
		return Record{}, false, fmt.Errorf("run take script: %w", err)
	}
	if len(res) != 3 {
		return Record{}, false, fmt.Errorf("take script returned %d values, want 3", len(res))
	}

	rec := Record{
		Count:       int(res[1]),
		WindowStart: time.UnixMilli(res[2]),
	}
	return rec, res[0] == 1, nil
}

// NewRedisClient creates a redis client and verifies the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}

package ratelimiter

import (
	"context"
	"strconv"
	"time"

	"github.com/itchan-dev/agora/shared/logger"
	"github.com/redis/go-redis/v9"
)

// tokenBucket refills and takes one token atomically.
// KEYS[1] bucket key; ARGV: rate per second, capacity, now in ms, ttl in ms.
var tokenBucket = redis.NewScript(`
local rate = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local ttl = tonumber(ARGV[4])

local state = redis.call('HMGET', KEYS[1], 'tokens', 'ts')
local tokens = tonumber(state[1])
local ts = tonumber(state[2])
if tokens == nil or ts == nil then
  tokens = capacity
  ts = now
end

tokens = math.min(capacity, tokens + math.max(0, now - ts) / 1000 * rate)
local allowed = 0
if tokens >= 1 then
  tokens = tokens - 1
  allowed = 1
end

redis.call('HSET', KEYS[1], 'tokens', tostring(tokens), 'ts', tostring(now))
redis.call('PEXPIRE', KEYS[1], ttl)
return allowed
`)

// RedisLimiter shares token buckets between API replicas through redis.
// It fails open: when redis cannot be reached the request is allowed.
type RedisLimiter struct {
	client         redis.Scripter
	prefix         string
	rate           float64
	capacity       float64
	expirationTime time.Duration
	now            func() time.Time
}

func NewRedis(client redis.Scripter, prefix string, rate, capacity float64, expirationTime time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:         client,
		prefix:         prefix,
		rate:           rate,
		capacity:       capacity,
		expirationTime: expirationTime,
		now:            time.Now,
	}
}

func (rl *RedisLimiter) Allow(ctx context.Context, key string) bool {
	args := []any{
		strconv.FormatFloat(rl.rate, 'f', -1, 64),
		strconv.FormatFloat(rl.capacity, 'f', -1, 64),
		rl.now().UnixMilli(),
		rl.expirationTime.Milliseconds(),
	}
	allowed, err := tokenBucket.Run(ctx, rl.client, []string{rl.prefix + key}, args...).Int()
	if err != nil {
		logger.FromContext(ctx).Warn("rate limiter unavailable, allowing request", "error", err)
		return true
	}
	return allowed == 1
}

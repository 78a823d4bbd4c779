package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// throttleAuthPrefix is the Redis key prefix for credential endpoint throttles.
	throttleAuthPrefix = "throttle:auth:"
	// throttleAuthTTL is the TTL for throttle keys.
	throttleAuthTTL = 120 * time.Second
)

// ThrottleResult contains the result of a throttle check.
type ThrottleResult struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

// tokenBucketScript implements a token bucket atomically in Redis.
// Refill and consumption happen in a single round trip.
var tokenBucketScript = redis.NewScript(`
	local key = KEYS[1]
	local rate = tonumber(ARGV[1])      -- tokens per second
	local burst = tonumber(ARGV[2])     -- max tokens (bucket capacity)
	local now = tonumber(ARGV[3])       -- current time in seconds
	local ttl = tonumber(ARGV[4])       -- TTL in seconds

	local data = redis.call('HMGET', key, 'tokens', 'last_update')
	local tokens = tonumber(data[1]) or burst
	local last_update = tonumber(data[2]) or now

	local elapsed = now - last_update
	tokens = math.min(burst, tokens + (elapsed * rate))

	local allowed = 0
	local retry_after = 0

	if tokens >= 1 then
		tokens = tokens - 1
		allowed = 1
	else
		retry_after = math.ceil((1 - tokens) / rate)
	end

	redis.call('HMSET', key, 'tokens', tokens, 'last_update', now)
	redis.call('EXPIRE', key, ttl)

	return {allowed, retry_after, math.floor(tokens)}
`)

// CheckAuthThrottle checks and updates the credential endpoint throttle
// for a client IP. The IP is hashed so raw addresses never land in Redis.
// Redis errors fail open: login must not break when the throttle backend
// is down.
func (c *Cache) CheckAuthThrottle(ctx context.Context, ip string, ratePerMinute, burst int) (*ThrottleResult, error) {
	key := throttleAuthPrefix + hashIP(ip)
	ratePerSecond := float64(ratePerMinute) / 60.0
	now := time.Now().Unix()

	result, err := tokenBucketScript.Run(ctx, c.client,
		[]string{key},
		ratePerSecond, burst, now, int(throttleAuthTTL.Seconds()),
	).Int64Slice()

	if err != nil {
		return &ThrottleResult{
			Allowed:   true,
			Remaining: int64(burst),
		}, err
	}

	return &ThrottleResult{
		Allowed:    result[0] == 1,
		RetryAfter: time.Duration(result[1]) * time.Second,
		Remaining:  result[2],
	}, nil
}

// hashIP returns a short hex digest of the IP for use as a Redis key.
func hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:16])
}

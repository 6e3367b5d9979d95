package ratelimit

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-TheatreBooking/internal/infra/cache"
)

// Lua script for a sliding window on a sorted set.
// KEYS[1] = key
// ARGV[1] = now_ms
// ARGV[2] = window_ms
// ARGV[3] = limit
// ARGV[4] = member (unique)
const luaSlidingWindow = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
local member = ARGV[4]

redis.call('ZREMRANGEBYSCORE', key, 0, now - window)
redis.call('ZADD', key, 'NX', now, member)
local count = redis.call('ZCARD', key)
redis.call('PEXPIRE', key, window)

if count > limit then
  local earliest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
  local earliestScore = tonumber(earliest[2]) or (now - window)
  local retry_ms = window - (now - earliestScore)
  if retry_ms < 0 then retry_ms = 0 end
  return {0, count, retry_ms}
end
return {1, count, 0}
`

// Decision результат проверки лимита
type Decision struct {
	Allowed    bool
	Current    int64
	RetryAfter time.Duration
}

// SlidingWindowLimiter ограничивает число запросов за окно по ключу клиента
type SlidingWindowLimiter struct {
	rdb    redis.Scripter
	scope  string
	limit  int
	window time.Duration
	script *redis.Script
	now    func() time.Time
}

// NewSlidingWindowLimiter создает лимитер. scope разделяет счётчики разных эндпоинтов
func NewSlidingWindowLimiter(rdb redis.Scripter, scope string, limit int, window time.Duration) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		rdb:    rdb,
		scope:  scope,
		limit:  limit,
		window: window,
		script: redis.NewScript(luaSlidingWindow),
		now:    time.Now,
	}
}

// Allow учитывает запрос клиента и сообщает, укладывается ли он в лимит
func (l *SlidingWindowLimiter) Allow(ctx context.Context, clientID string) (Decision, error) {
	res, err := l.script.Run(
		ctx,
		l.rdb,
		[]string{cache.KeyRateLimit(l.scope, clientID)},
		l.now().UnixMilli(), l.window.Milliseconds(), l.limit, randomHex(12),
	).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("ratelimit: run script: %w", err)
	}

	return parseResult(res)
}

func parseResult(res interface{}) (Decision, error) {
	arr, ok := res.([]interface{})
	if !ok || len(arr) != 3 {
		return Decision{}, fmt.Errorf("ratelimit: bad script result: %v", res)
	}

	return Decision{
		Allowed:    toInt(arr[0]) == 1,
		Current:    toInt(arr[1]),
		RetryAfter: time.Duration(toInt(arr[2])) * time.Millisecond,
	}, nil
}

func toInt(v interface{}) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		var x int64
		fmt.Sscan(t, &x)
		return x
	default:
		return 0
	}
}

func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

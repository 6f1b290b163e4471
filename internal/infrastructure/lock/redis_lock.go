// Package lock provides the idempotency lock used by the domain event recorders.
package lock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/pos_finance_manager/internal/core/ports"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const keyPrefix = "finance:idem:"

// unlockScript deletes the key only while it still holds our token, so a
// holder whose TTL expired cannot release someone else's lock.
const unlockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`

// RedisLocker implements ports.IdempotencyLocker with SET NX EX.
type RedisLocker struct {
	client        *redis.Client
	ttl           time.Duration
	retryInterval time.Duration
	maxRetries    int
}

var _ ports.IdempotencyLocker = (*RedisLocker)(nil)

func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client:        client,
		ttl:           ttl,
		retryInterval: 50 * time.Millisecond,
		maxRetries:    20,
	}
}

// NewRedisClient connects to addr and verifies the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	return client, nil
}

// Acquire retries until the lock is free, the retries run out
// (ports.ErrLockHeld) or ctx is done.
func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	redisKey := keyPrefix + key
	token := uuid.NewString()

	for attempt := 0; attempt < l.maxRetries; attempt++ {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire idempotency lock %s: %w", key, err)
		}
		if ok {
			return func() { l.release(redisKey, token) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retryInterval):
		}
	}
	return nil, fmt.Errorf("%w: %s", ports.ErrLockHeld, key)
}

func (l *RedisLocker) release(redisKey, token string) {
	// the caller's context may already be cancelled; release regardless
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := l.client.Eval(ctx, unlockScript, []string{redisKey}, token).Err(); err != nil {
		slog.Warn("Failed to release idempotency lock", slog.String("key", redisKey), slog.String("error", err.Error()))
	}
}

// NoopLocker is used when Redis is not configured. The database unique
// constraint on the idempotency key still prevents duplicates.
type NoopLocker struct{}

var _ ports.IdempotencyLocker = NoopLocker{}

func (NoopLocker) Acquire(context.Context, string) (func(), error) {
	return func() {}, nil
}

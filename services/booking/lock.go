package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultLockTTL outlasts a slow payment provider call inside the locked section.
const DefaultLockTTL = 30 * time.Second

// releaseScript deletes the lock only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// SlotLocker serialises checkouts for one staff member and day across instances.
type SlotLocker struct {
	Cache  *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

// Acquire takes the lock for staffID on date. A nil locker always succeeds.
func (l *SlotLocker) Acquire(ctx context.Context, staffID, date string) (func(), error) {
	if l == nil || l.Cache == nil {
		return func() {}, nil
	}
	ttl := l.TTL
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}

	key := fmt.Sprintf("lock:booking:%s:%s", staffID, date)
	token := uuid.New().String()
	ok, err := l.Cache.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire booking lock: %w", err)
	}
	if !ok {
		return nil, ErrCheckoutInProgress
	}
	return func() {
		if err := releaseScript.Run(context.Background(), l.Cache, []string{key}, token).Err(); err != nil && l.Logger != nil {
			l.Logger.Error("Failed to release booking lock",
				zap.String("key", key),
				zap.Duration("ttl", ttl),
				zap.Error(err),
			)
		}
	}, nil
}

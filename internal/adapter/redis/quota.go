package redisadapter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "campaign-engine:quota:"

// Quota is a fixed-window call counter shared by every replica through
// Redis. It implements port.QuotaGuard.
type Quota struct {
	client redis.UniversalClient
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewQuota allows limit calls per key in each window. A non-positive limit
// disables metering.
func NewQuota(client redis.UniversalClient, limit int64, window time.Duration) *Quota {
	if window <= 0 {
		window = time.Minute
	}
	return &Quota{client: client, limit: limit, window: window, now: time.Now}
}

// Allow counts one call against key and reports whether it is within the
// limit.
func (q *Quota) Allow(ctx context.Context, key string) (bool, error) {
	if q.limit <= 0 {
		return true, nil
	}
	k := q.windowKey(key, q.now())

	pipe := q.client.Pipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, q.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("redis quota %s: %w", key, err)
	}
	return incr.Val() <= q.limit, nil
}

// Ping checks connectivity.
func (q *Quota) Ping(ctx context.Context) error {
	return q.client.Ping(ctx).Err()
}

func (q *Quota) windowKey(key string, t time.Time) string {
	return fmt.Sprintf("%s%s:%d", keyPrefix, key, t.UnixNano()/int64(q.window))
}

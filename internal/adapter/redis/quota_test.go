package redisadapter

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	c := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestQuotaDisabledNeverCallsRedis(t *testing.T) {
	q := NewQuota(unreachableClient(t), 0, time.Minute)

	ok, err := q.Allow(context.Background(), "llm:openai")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestQuotaReportsRedisErrors(t *testing.T) {
	q := NewQuota(unreachableClient(t), 10, time.Minute)

	ok, err := q.Allow(context.Background(), "llm:openai")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, q.Ping(context.Background()))
}

func TestQuotaWindowKey(t *testing.T) {
	q := NewQuota(nil, 10, time.Minute)
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	k1 := q.windowKey("llm:gemini", base)
	assert.Equal(t, k1, q.windowKey("llm:gemini", base.Add(59*time.Second)))
	assert.NotEqual(t, k1, q.windowKey("llm:gemini", base.Add(time.Minute)))
	assert.NotEqual(t, k1, q.windowKey("llm:openai", base))
	assert.Contains(t, k1, "campaign-engine:quota:llm:gemini:")
}

func TestQuotaDefaultWindow(t *testing.T) {
	assert.Equal(t, time.Minute, NewQuota(nil, 1, 0).window)
}

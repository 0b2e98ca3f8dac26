package payment

import (
	"context"
	"testing"
	"time"

	memoryRepo "hotelier/database/repository/memory"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestRedisEventCacheReportsConnectionErrors(t *testing.T) {
	client := unreachableRedis()
	defer client.Close()
	cache := NewRedisEventCache(client, time.Hour)

	_, err := cache.Seen(context.Background(), "evt_1")
	assert.Error(t, err)
	assert.Error(t, cache.MarkSeen(context.Background(), "evt_1"))
}

func TestListenerSurvivesRedisOutage(t *testing.T) {
	client := unreachableRedis()
	defer client.Close()

	payments := memoryRepo.NewPaymentRepo()
	l := newListener(payments, NewRedisEventCache(client, time.Hour), nil)
	payload := succeededEvent("evt_1", "pi_123", 1000, "")

	outcome, err := l.HandleEvent(context.Background(), payload, sign(payload, testSecret, time.Now()))
	require.NoError(t, err)
	assert.Equal(t, OutcomeRecorded, outcome)
	assert.Equal(t, 1, payments.Len())
}

package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

func (h HealthStatus) OK() bool {
	return h.Mongo
}

// HealthChecker pings the backing stores on demand.
type HealthChecker struct {
	Mongo *mongo.Client
	Redis *redis.Client
}

// Check pings each configured store. A nil Redis client reports false
// without failing the check since the cache is optional.
func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := HealthStatus{CheckedAt: time.Now()}
	if h.Mongo != nil {
		status.Mongo = h.Mongo.Ping(ctx, nil) == nil
	}
	if h.Redis != nil {
		status.Redis = h.Redis.Ping(ctx).Err() == nil
	}
	return status
}

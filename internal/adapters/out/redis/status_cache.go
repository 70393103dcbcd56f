// Package redis caches derived current statuses. The cache is a pure
// read-through accelerator: the status history in Postgres stays the
// source of truth, and writers invalidate rather than update so a stale
// entry can only survive until its TTL.
package redis

import (
	"context"
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ordertrack:current_status:"

// DefaultTTL bounds how long a cached status can outlive an invalidation
// that was lost to a crash between commit and cache call.
const DefaultTTL = 5 * time.Minute

// StatusCache implements ports.StatusCache on a redis client.
type StatusCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatusCache creates a cache over the given client. A non-positive ttl
// falls back to DefaultTTL.
func NewStatusCache(client *redis.Client, ttl time.Duration) *StatusCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &StatusCache{client: client, ttl: ttl}
}

// Get returns the cached status for the order. The second return value
// reports whether the entry was present; a miss is not an error.
func (c *StatusCache) Get(ctx context.Context, orderID kernel.UUID) (order.Status, bool, error) {
	val, err := c.client.Get(ctx, keyPrefix+orderID.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return order.Unknown, false, nil
		}
		return order.Unknown, false, err
	}

	status, err := order.StatusFromString(val)
	if err != nil {
		// A corrupt entry is treated as a miss so the reader falls back
		// to the history.
		return order.Unknown, false, nil
	}

	return status, true, nil
}

// Set stores the status under the order's key with the configured TTL.
func (c *StatusCache) Set(ctx context.Context, orderID kernel.UUID, status order.Status) error {
	return c.client.Set(ctx, keyPrefix+orderID.String(), status.String(), c.ttl).Err()
}

// Invalidate drops the order's entry. Dropping an absent entry succeeds.
func (c *StatusCache) Invalidate(ctx context.Context, orderID kernel.UUID) error {
	return c.client.Del(ctx, keyPrefix+orderID.String()).Err()
}

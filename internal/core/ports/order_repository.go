// Package ports defines the interfaces between the application core and its
// adapters: repositories, the unit of work, the command relay, remote entity
// lookup clients, and the current-status cache.
package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
)

// OrderRepository provides persistence operations for the Order aggregate.
//
// Get returns an errs.ObjectNotFoundError for an unknown id. GetByIDs omits
// missing ids rather than failing. Delete on an unknown id is a no-op so
// that redelivered delete commands stay idempotent.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error
	Update(ctx context.Context, aggregate *order.Order) error
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

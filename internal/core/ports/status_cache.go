package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
)

// StatusCache caches the derived current status per order so that hot
// "what is the status of order X" queries do not hit the history aggregate.
//
// The cache is an optimization layer only: a miss (found == false) or any
// cache failure falls back to the history store. Writers invalidate or
// overwrite the entry after committing a status change.
type StatusCache interface {
	Get(ctx context.Context, orderID kernel.UUID) (status order.Status, found bool, err error)
	Set(ctx context.Context, orderID kernel.UUID, status order.Status) error
	Invalidate(ctx context.Context, orderID kernel.UUID) error
}

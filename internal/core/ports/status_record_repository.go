package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/statustracker"
)

// StatusRecordRepository provides persistence for the append-only status
// history. Records are only ever appended; a status change never updates or
// removes an existing record.
//
// Get returns an errs.ObjectNotFoundError for an unknown record id, which is
// distinct from an order with zero history (an empty GetByOrder result).
// GetCurrentByOrder returns the record with the maximum timestamp for the
// order, ties broken by record id; it returns errs.ObjectNotFoundError when
// the order has no records at all.
type StatusRecordRepository interface {
	Append(ctx context.Context, record *statustracker.Record) error
	Get(ctx context.Context, id kernel.UUID) (*statustracker.Record, error)
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*statustracker.Record, error)
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*statustracker.Record, error)
	GetCurrentByOrder(ctx context.Context, orderID kernel.UUID) (*statustracker.Record, error)
}

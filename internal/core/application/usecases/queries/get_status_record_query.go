package queries

import (
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrGetStatusRecordQueryIsNotConstructed = errors.New(
		"GetStatusRecordQuery must be created via NewGetStatusRecordQuery constructor",
	)
)

// GetStatusRecordQuery retrieves a single status record by its own
// identifier, regardless of which order it belongs to.
type GetStatusRecordQuery struct {
	recordID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStatusRecordQuery creates a query for one status record.
func NewGetStatusRecordQuery(recordID kernel.UUID) (GetStatusRecordQuery, error) {
	if err := recordID.Validate(); err != nil {
		return GetStatusRecordQuery{}, err
	}
	return GetStatusRecordQuery{recordID: recordID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStatusRecordQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusRecordQueryIsNotConstructed)
}

// RecordID returns the identifier of the requested record.
func (q GetStatusRecordQuery) RecordID() kernel.UUID {
	return q.recordID
}

// StatusRecordResponse represents one history record. A zero RecordedAt
// means the assertion carried no timestamp.
type StatusRecordResponse struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	Status     order.Status
	RecordedAt time.Time
}

package queries

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrGetCurrentStatusBatchQueryIsNotConstructed = errors.New(
		"GetCurrentStatusBatchQuery must be created via NewGetCurrentStatusBatchQuery constructor",
	)
)

// GetCurrentStatusBatchQuery retrieves the current statuses of several
// orders at once. Orders without history are silently omitted from the
// result; requesting an empty id set is valid and yields an empty map.
type GetCurrentStatusBatchQuery struct {
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCurrentStatusBatchQuery creates a batch current-status query.
// Every id in the set must be valid.
func NewGetCurrentStatusBatchQuery(orderIDs []kernel.UUID) (GetCurrentStatusBatchQuery, error) {
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return GetCurrentStatusBatchQuery{}, err
		}
	}
	return GetCurrentStatusBatchQuery{orderIDs: orderIDs, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCurrentStatusBatchQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentStatusBatchQueryIsNotConstructed)
}

// OrderIDs returns the requested id set.
func (q GetCurrentStatusBatchQuery) OrderIDs() []kernel.UUID {
	return q.orderIDs
}

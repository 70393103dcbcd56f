package queries

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrGetCurrentStatusesQueryIsNotConstructed = errors.New(
		"GetCurrentStatusesQuery must be created via NewGetCurrentStatusesQuery constructor",
	)
)

// GetCurrentStatusesQuery retrieves the current status of every order that
// has at least one history record, optionally narrowed to orders whose
// current status matches a filter.
type GetCurrentStatusesQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetCurrentStatusesQuery creates the listing query. A non-nil status
// filter must be one of the five lifecycle members.
func NewGetCurrentStatusesQuery(status *order.Status) (GetCurrentStatusesQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetCurrentStatusesQuery{}, errs.NewValueIsInvalidErrorWithCause("status", err)
		}
	}
	return GetCurrentStatusesQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCurrentStatusesQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentStatusesQueryIsNotConstructed)
}

// Status returns the current-status filter, nil when absent.
func (q GetCurrentStatusesQuery) Status() *order.Status {
	return q.status
}

// CurrentStatusResponse pairs an order with its derived current status.
type CurrentStatusResponse struct {
	OrderID kernel.UUID
	Status  order.Status
}

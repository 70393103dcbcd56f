package queries

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrGetCurrentStatusQueryIsNotConstructed = errors.New(
		"GetCurrentStatusQuery must be created via NewGetCurrentStatusQuery constructor",
	)
)

// GetCurrentStatusQuery retrieves the derived current status of one order.
type GetCurrentStatusQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCurrentStatusQuery creates a query for one order's current status.
func NewGetCurrentStatusQuery(orderID kernel.UUID) (GetCurrentStatusQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetCurrentStatusQuery{}, err
	}
	return GetCurrentStatusQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCurrentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentStatusQueryIsNotConstructed)
}

// OrderID returns the identifier of the order.
func (q GetCurrentStatusQuery) OrderID() kernel.UUID {
	return q.orderID
}

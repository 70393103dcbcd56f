package queries

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves orders with optional filtering by user and
// product. Nil filters match everything.
//
// Example:
//
//	query, err := NewGetOrdersQuery(&userID, nil)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	userID    *kernel.UUID
	productID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list orders. Both filters are
// optional; a non-nil filter must hold a valid identifier.
func NewGetOrdersQuery(userID, productID *kernel.UUID) (GetOrdersQuery, error) {
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if productID != nil {
		if err := productID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	return GetOrdersQuery{userID: userID, productID: productID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// UserID returns the user filter, nil when absent.
func (q GetOrdersQuery) UserID() *kernel.UUID {
	return q.userID
}

// ProductID returns the product filter, nil when absent.
func (q GetOrdersQuery) ProductID() *kernel.UUID {
	return q.productID
}

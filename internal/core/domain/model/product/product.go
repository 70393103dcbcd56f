// Package product holds the read model for products, which are owned by the
// product service and referenced by orders and reviews by id only.
package product

import "ordertrack/internal/core/domain/model/kernel"

// Product is the externally owned product entity. A partially populated
// Product carries only the ID; the resolver fills in the remaining fields.
type Product struct {
	ID           kernel.UUID `json:"id"`
	Name         string      `json:"name"`
	Price        float64     `json:"price"`
	CategoryName string      `json:"category_name"`
}

// Key returns the identifier the resolver dispatches on.
func (p Product) Key() string {
	return p.ID.String()
}

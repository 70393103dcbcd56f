// Package review holds the read model for product reviews, which are owned
// by the review service and reference users and products by id.
package review

import "ordertrack/internal/core/domain/model/kernel"

// Review is the externally owned review entity. A partially populated Review
// carries only the ID; the resolver fills in the remaining fields.
type Review struct {
	ID        kernel.UUID `json:"id"`
	UserID    kernel.UUID `json:"user_id"`
	ProductID kernel.UUID `json:"product_id"`
	Rating    int         `json:"rating"`
	Comment   string      `json:"comment"`
}

// Key returns the identifier the resolver dispatches on.
func (r Review) Key() string {
	return r.ID.String()
}

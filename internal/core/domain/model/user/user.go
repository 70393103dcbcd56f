// Package user holds the read model for users, which are owned by the user
// service. Locally an order carries only the user id; the full entity is
// fetched through the entity resolver when a caller needs it.
package user

import "ordertrack/internal/core/domain/model/kernel"

// User is the externally owned user entity. A partially populated User
// carries only the ID; the resolver fills in the remaining fields.
type User struct {
	ID    kernel.UUID `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
}

// Key returns the identifier the resolver dispatches on.
func (u User) Key() string {
	return u.ID.String()
}

package order

import (
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a placed request linking a user to a product. It is the
// aggregate root owned by the order service.
//
// Order follows these invariants:
//   - Must have valid order, user, and product identifiers
//   - CreatedAt is truncated to whole seconds and is immutable in effect:
//     it only changes through an explicit update command
//   - Carries no status field; the current status is derived from the
//     append-only status history, never stored on the order itself
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID references the user who placed the order
	userID kernel.UUID

	// productID references the ordered product
	productID kernel.UUID

	// createdAt is the placement time, truncated to whole seconds
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way (besides
// RestoreOrder for persistence) to obtain a valid Order.
//
// createdAt is truncated to whole seconds so that equality and comparison are
// stable across serialization round trips.
func NewOrder(id, userID, productID kernel.UUID, createdAt time.Time) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setProductID(productID),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. It applies the same
// validation as NewOrder.
func RestoreOrder(id, userID, productID kernel.UUID, createdAt time.Time) (*Order, error) {
	return NewOrder(id, userID, productID, createdAt)
}

// Validate ensures the Order was constructed through NewOrder or
// RestoreOrder, preventing use of directly instantiated structs.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the user who placed the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// ProductID returns the identifier of the ordered product.
func (o *Order) ProductID() kernel.UUID {
	return o.productID
}

// CreatedAt returns the placement time, truncated to whole seconds.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Update applies a partial update to the order. Nil fields are left
// untouched. Each supplied field is validated before any assignment, so a
// failed update leaves the order unchanged.
func (o *Order) Update(userID, productID *kernel.UUID, createdAt *time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if userID != nil {
		if err := userID.Validate(); err != nil {
			return err
		}
	}
	if productID != nil {
		if err := productID.Validate(); err != nil {
			return err
		}
	}
	if createdAt != nil && createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}

	if userID != nil {
		o.userID = *userID
	}
	if productID != nil {
		o.productID = *productID
	}
	if createdAt != nil {
		o.createdAt = createdAt.Truncate(time.Second)
	}

	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	o.productID = productID
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt.Truncate(time.Second)
	return nil
}

package commands

import (
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	// ErrUpdateOrderCommandIsEmpty is returned when an update names no
	// fields at all; such a command would be a pointless round trip.
	ErrUpdateOrderCommandIsEmpty = errors.New("update order command must set at least one field")
)

// UpdateOrderCommand represents a partial update of an order's mutable
// fields. Nil fields are left untouched.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	userID    *kernel.UUID
	productID *kernel.UUID
	createdAt *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a partial-update command. At least one of
// userID, productID, createdAt must be non-nil.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	userID, productID *kernel.UUID,
	createdAt *time.Time,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if userID == nil && productID == nil && createdAt == nil {
		return UpdateOrderCommand{}, ErrUpdateOrderCommandIsEmpty
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setProductID(productID),
		cmd.setCreatedAt(createdAt),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the replacement user id, or nil to keep the current one.
func (c UpdateOrderCommand) UserID() *kernel.UUID {
	return c.userID
}

// ProductID returns the replacement product id, or nil to keep the current
// one.
func (c UpdateOrderCommand) ProductID() *kernel.UUID {
	return c.productID
}

// CreatedAt returns the replacement placement time, or nil to keep the
// current one.
func (c UpdateOrderCommand) CreatedAt() *time.Time {
	return c.createdAt
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setUserID(userID *kernel.UUID) error {
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return err
		}
	}
	c.userID = userID
	return nil
}

func (c *UpdateOrderCommand) setProductID(productID *kernel.UUID) error {
	if productID != nil {
		if err := productID.Validate(); err != nil {
			return err
		}
	}
	c.productID = productID
	return nil
}

func (c *UpdateOrderCommand) setCreatedAt(createdAt *time.Time) error {
	if createdAt != nil && createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	c.createdAt = createdAt
	return nil
}

package commands

import (
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
)

// DeleteOrderCommand represents a request to remove an order. Deletion is
// logical first: a final Deleted record is appended to the history before
// the order row is physically removed, so the history keeps a tombstone.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	deletedAt time.Time

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a delete command. deletedAt stamps the
// tombstone record; zero means an absent timestamp.
func NewDeleteOrderCommand(orderID kernel.UUID, deletedAt time.Time) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return DeleteOrderCommand{}, err
	}

	cmd.deletedAt = deletedAt
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to remove.
func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeletedAt returns the tombstone timestamp; zero means absent.
func (c DeleteOrderCommand) DeletedAt() time.Time {
	return c.deletedAt
}

func (c *DeleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

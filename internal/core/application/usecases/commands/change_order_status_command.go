package commands

import (
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents a request to append a status record
// to an order's history. recordedAt may be the zero time, in which case the
// record carries an absent timestamp and sorts last when deriving the
// current status.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	status     order.Status
	recordedAt time.Time

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a status-change command. The status
// must be one of the five lifecycle members; which transitions are legal is
// decided by the handler, not here.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	status order.Status,
	recordedAt time.Time,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	cmd.recordedAt = recordedAt
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose history grows.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the status to assert.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

// RecordedAt returns the assertion time; zero means absent.
func (c ChangeOrderStatusCommand) RecordedAt() time.Time {
	return c.recordedAt
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("status", err)
	}
	c.status = status
	return nil
}

// Package kafka consumes relay commands and applies them to the order
// lifecycle use cases.
package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/messaging"
)

// Dispatcher decodes a relay message and applies it through the matching
// command handler. It is broker-independent: the consumer feeds it raw
// message bodies, and tests feed it encoded commands directly.
type Dispatcher struct {
	createHandler commands.CreateOrderCommandHandler
	updateHandler commands.UpdateOrderCommandHandler
	statusHandler commands.ChangeOrderStatusCommandHandler
	deleteHandler commands.DeleteOrderCommandHandler
	logger        *slog.Logger
	now           func() time.Time
}

// NewDispatcher creates a dispatcher over the four command handlers.
func NewDispatcher(
	createHandler commands.CreateOrderCommandHandler,
	updateHandler commands.UpdateOrderCommandHandler,
	statusHandler commands.ChangeOrderStatusCommandHandler,
	deleteHandler commands.DeleteOrderCommandHandler,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		createHandler: createHandler,
		updateHandler: updateHandler,
		statusHandler: statusHandler,
		deleteHandler: deleteHandler,
		logger:        logger.With("component", "command_dispatcher"),
		now:           time.Now,
	}
}

// Dispatch decodes one message body and applies it. Errors are returned to
// the caller; the consumer's failure policy decides between retry and
// drop.
func (d *Dispatcher) Dispatch(ctx context.Context, body []byte) error {
	cmd, err := messaging.Decode(body)
	if err != nil {
		return err
	}

	switch c := cmd.(type) {
	case *messaging.OrderCreateCommand:
		return d.applyCreate(ctx, c)
	case *messaging.OrderUpdateCommand:
		return d.applyUpdate(ctx, c)
	case *messaging.StatusChangeCommand:
		return d.applyStatusChange(ctx, c)
	case *messaging.OrderDeleteCommand:
		return d.applyDelete(ctx, c)
	default:
		return fmt.Errorf("no handler for command type %q", cmd.CommandType())
	}
}

func (d *Dispatcher) applyCreate(ctx context.Context, c *messaging.OrderCreateCommand) error {
	orderID, err := kernel.UUIDFromString(c.OrderID)
	if err != nil {
		return err
	}
	userID, err := kernel.UUIDFromString(c.UserID)
	if err != nil {
		return err
	}
	productID, err := kernel.UUIDFromString(c.ProductID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, userID, productID, c.CreatedAt)
	if err != nil {
		return err
	}
	return d.createHandler.Handle(ctx, cmd)
}

func (d *Dispatcher) applyUpdate(ctx context.Context, c *messaging.OrderUpdateCommand) error {
	orderID, err := kernel.UUIDFromString(c.OrderID)
	if err != nil {
		return err
	}

	var userID, productID *kernel.UUID
	if c.UserID != nil {
		id, idErr := kernel.UUIDFromString(*c.UserID)
		if idErr != nil {
			return idErr
		}
		userID = &id
	}
	if c.ProductID != nil {
		id, idErr := kernel.UUIDFromString(*c.ProductID)
		if idErr != nil {
			return idErr
		}
		productID = &id
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, userID, productID, c.CreatedAt)
	if err != nil {
		return err
	}
	return d.updateHandler.Handle(ctx, cmd)
}

func (d *Dispatcher) applyStatusChange(ctx context.Context, c *messaging.StatusChangeCommand) error {
	orderID, err := kernel.UUIDFromString(c.OrderID)
	if err != nil {
		return err
	}

	status, err := order.StatusFromString(c.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status, c.RecordedAt)
	if err != nil {
		return err
	}
	return d.statusHandler.Handle(ctx, cmd)
}

func (d *Dispatcher) applyDelete(ctx context.Context, c *messaging.OrderDeleteCommand) error {
	orderID, err := kernel.UUIDFromString(c.OrderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, d.now())
	if err != nil {
		return err
	}
	return d.deleteHandler.Handle(ctx, cmd)
}

package commands

import (
	"context"
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/statustracker"
	"ordertrack/internal/pkg/errs"
)

// CreateOrderCommandHandler handles order registration. In one transaction
// it persists the order and appends the initial Created record to the
// status history, so a new order is immediately visible with a current
// status.
//
// A redelivered create for an already-known order id is a no-op, keeping
// the handler idempotent under at-least-once delivery.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order registration.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	// Redelivered create: the order id is already taken, nothing to do.
	if _, err := orderRepo.Get(ctx, cmd.OrderID()); err == nil {
		return nil
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.UserID(), cmd.ProductID(), cmd.CreatedAt())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	initial, err := statustracker.NewRecord(kernel.NewUUID(), newOrder.ID(), order.Created, newOrder.CreatedAt())
	if err != nil {
		return err
	}

	if err = uow.StatusRecordRepository().Append(ctx, initial); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"errors"
	"log/slog"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/statustracker"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes an order. In one transaction it appends
// a final Deleted record to the history and deletes the order row; the
// history records are retained as tombstones and are never purged.
//
// Deleting an order that does not exist is a no-op, not an error, so a
// redelivered delete command leaves the system in the same observable
// state as the first delivery.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
	cache      ports.StatusCache
	logger     *slog.Logger
}

// DeleteOrderOption configures the handler.
type DeleteOrderOption func(*DeleteOrderCommandHandler)

// WithDeleteStatusCache makes the handler drop the cached current status of
// the deleted order.
func WithDeleteStatusCache(cache ports.StatusCache) DeleteOrderOption {
	return func(h *DeleteOrderCommandHandler) {
		h.cache = cache
	}
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(
	uowFactory UoWFactory,
	logger *slog.Logger,
	opts ...DeleteOrderOption,
) DeleteOrderCommandHandler {
	h := DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "delete_order_handler"),
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// Handle processes the delete command.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if _, err := orderRepo.Get(ctx, cmd.OrderID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.InfoContext(ctx, "Delete of absent order ignored",
				"order_id", cmd.OrderID().String())
			return nil
		}
		return err
	}

	tombstone, err := statustracker.NewRecord(kernel.NewUUID(), cmd.OrderID(), order.Deleted, cmd.DeletedAt())
	if err != nil {
		return err
	}

	if err = uow.StatusRecordRepository().Append(ctx, tombstone); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.invalidateCache(ctx, cmd.OrderID())
	return nil
}

func (h *DeleteOrderCommandHandler) invalidateCache(ctx context.Context, orderID kernel.UUID) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Invalidate(ctx, orderID); err != nil {
		h.logger.ErrorContext(ctx, "Failed to invalidate status cache",
			"order_id", orderID.String(), "error", err)
	}
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/statustracker"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"
)

var (
	// ErrIllegalStatusTransition is returned in strict mode when the
	// requested status is not the immediate successor of the order's
	// current status.
	ErrIllegalStatusTransition = errors.New("status is not the successor of the current status")
)

// ChangeOrderStatusCommandHandler appends a status record to an order's
// history. The history is append-only, so the handler always appends and
// never rewrites: a duplicate relay delivery produces a harmless duplicate
// record, since the current status is derived by maximum timestamp, not by
// count.
//
// By default any status is accepted regardless of the previous one; the
// successor relation is advisory. WithStrictTransitions turns it into a
// hard guard that rejects skipped or regressed statuses.
type ChangeOrderStatusCommandHandler struct {
	uowFactory StatusUoWFactory
	strict     bool
	cache      ports.StatusCache
	logger     *slog.Logger
}

// ChangeOrderStatusOption configures the handler.
type ChangeOrderStatusOption func(*ChangeOrderStatusCommandHandler)

// WithStrictTransitions makes the handler reject any status that is not the
// immediate successor of the order's current status.
func WithStrictTransitions() ChangeOrderStatusOption {
	return func(h *ChangeOrderStatusCommandHandler) {
		h.strict = true
	}
}

// WithStatusCache makes the handler refresh the current-status cache after
// a committed append.
func WithStatusCache(cache ports.StatusCache) ChangeOrderStatusOption {
	return func(h *ChangeOrderStatusCommandHandler) {
		h.cache = cache
	}
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(
	uowFactory StatusUoWFactory,
	logger *slog.Logger,
	opts ...ChangeOrderStatusOption,
) ChangeOrderStatusCommandHandler {
	h := ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "change_order_status_handler"),
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// Handle processes the status-change command.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	statusRepo := uow.StatusRecordRepository()

	if h.strict {
		if err := h.validateTransition(ctx, statusRepo, cmd); err != nil {
			return err
		}
	}

	record, err := statustracker.NewRecord(kernel.NewUUID(), cmd.OrderID(), cmd.Status(), cmd.RecordedAt())
	if err != nil {
		return err
	}

	if err = statusRepo.Append(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.refreshCache(ctx, cmd)
	return nil
}

// validateTransition enforces the successor relation against the order's
// current status. An order with no history is in the pre-state, whose only
// successor is Created.
func (h *ChangeOrderStatusCommandHandler) validateTransition(
	ctx context.Context,
	statusRepo ports.StatusRecordRepository,
	cmd ChangeOrderStatusCommand,
) error {
	previous := order.Unknown

	current, err := statusRepo.GetCurrentByOrder(ctx, cmd.OrderID())
	switch {
	case err == nil:
		previous = current.Status()
	case errors.Is(err, errs.ErrObjectNotFound):
		// no history yet
	default:
		return err
	}

	if !cmd.Status().IsSuccessorOf(previous) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalStatusTransition, previous, cmd.Status())
	}
	return nil
}

// refreshCache drops the cached current status so the next read recomputes
// it from the history. The appended record is not necessarily the new
// current one (out-of-order timestamps, absent timestamps), so overwriting
// the entry here would be wrong. The append is already committed; cache
// failures are logged and swallowed.
func (h *ChangeOrderStatusCommandHandler) refreshCache(ctx context.Context, cmd ChangeOrderStatusCommand) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Invalidate(ctx, cmd.OrderID()); err != nil {
		h.logger.ErrorContext(ctx, "Failed to refresh status cache",
			"order_id", cmd.OrderID().String(), "error", err)
	}
}

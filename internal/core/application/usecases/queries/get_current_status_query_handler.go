package queries

import (
	"context"
	"log/slog"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCurrentStatusQueryHandler derives one order's current status from the
// history, optionally fronted by a cache. Cache errors never fail the
// read: a broken cache degrades to a database round trip.
type GetCurrentStatusQueryHandler struct {
	db     *gorm.DB
	cache  ports.StatusCache
	logger *slog.Logger
}

// GetCurrentStatusOption configures the handler.
type GetCurrentStatusOption func(*GetCurrentStatusQueryHandler)

// WithCurrentStatusCache fronts the handler with a cache. Hits skip the
// database entirely; misses fill the cache after a successful derivation.
func WithCurrentStatusCache(cache ports.StatusCache) GetCurrentStatusOption {
	return func(h *GetCurrentStatusQueryHandler) {
		h.cache = cache
	}
}

// NewGetCurrentStatusQueryHandler creates a handler for current-status
// reads.
func NewGetCurrentStatusQueryHandler(
	db *gorm.DB,
	logger *slog.Logger,
	opts ...GetCurrentStatusOption,
) GetCurrentStatusQueryHandler {
	h := GetCurrentStatusQueryHandler{
		db:     db,
		logger: logger.With("component", "get_current_status_handler"),
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// Handle executes the query. Returns ObjectNotFoundError when the order
// has no history records at all.
func (h GetCurrentStatusQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentStatusQuery,
) (order.Status, error) {
	if err := query.Validate(); err != nil {
		return order.Unknown, err
	}

	if h.cache != nil {
		status, found, err := h.cache.Get(ctx, query.OrderID())
		if err != nil {
			h.logger.WarnContext(ctx, "Status cache read failed, falling back to database",
				"order_id", query.OrderID().String(), "error", err)
		} else if found {
			return status, nil
		}
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM status_records
		WHERE order_id = ?
		ORDER BY recorded_at DESC NULLS LAST, id DESC
		LIMIT 1
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return order.Unknown, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return order.Unknown, err
		}
		return order.Unknown, errs.NewObjectNotFoundError("order status", query.OrderID().String())
	}

	var status int
	if err = rows.Scan(&status); err != nil {
		return order.Unknown, err
	}
	if err = rows.Err(); err != nil {
		return order.Unknown, err
	}

	current := order.Status(status)
	if h.cache != nil {
		if err = h.cache.Set(ctx, query.OrderID(), current); err != nil {
			h.logger.WarnContext(ctx, "Status cache write failed",
				"order_id", query.OrderID().String(), "error", err)
		}
	}

	return current, nil
}

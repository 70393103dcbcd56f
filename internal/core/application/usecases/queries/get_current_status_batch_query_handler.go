package queries

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetCurrentStatusBatchQueryHandler derives current statuses for a set of
// orders in one round trip using DISTINCT ON over an ANY(array) match.
type GetCurrentStatusBatchQueryHandler struct {
	db *gorm.DB
}

// NewGetCurrentStatusBatchQueryHandler creates a handler for batch reads.
func NewGetCurrentStatusBatchQueryHandler(db *gorm.DB) GetCurrentStatusBatchQueryHandler {
	return GetCurrentStatusBatchQueryHandler{db: db}
}

// Handle executes the query. The result maps order id to current status;
// ids with no history records are absent from the map, never an error.
func (h GetCurrentStatusBatchQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentStatusBatchQuery,
) (map[kernel.UUID]order.Status, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := make(map[kernel.UUID]order.Status, len(query.OrderIDs()))
	if len(query.OrderIDs()) == 0 {
		return statuses, nil
	}

	ids := make([]uuid.UUID, 0, len(query.OrderIDs()))
	for _, id := range query.OrderIDs() {
		ids = append(ids, id.Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT ON (order_id) order_id, status
		FROM status_records
		WHERE order_id = ANY(?)
		ORDER BY order_id, recorded_at DESC NULLS LAST, id DESC
	`, pq.Array(ids)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID uuid.UUID
			status  int
		)
		if err = rows.Scan(&orderID, &status); err != nil {
			return nil, err
		}

		oID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		statuses[oID] = order.Status(status)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return statuses, nil
}

package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetStatusHistoryQueryHandler lists an order's records oldest first.
// Records with an absent timestamp sort before everything else, mirroring
// how current-status derivation treats them as least recent.
type GetStatusHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusHistoryQueryHandler creates a handler for history reads.
func NewGetStatusHistoryQueryHandler(db *gorm.DB) GetStatusHistoryQueryHandler {
	return GetStatusHistoryQueryHandler{db: db}
}

// Handle executes the query. An order with no history yields a valid empty
// slice; the handler does not distinguish "no records" from "no such
// order".
func (h GetStatusHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetStatusHistoryQuery,
) ([]StatusRecordResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, order_id, status, recorded_at
		FROM status_records
		WHERE order_id = ?
		ORDER BY recorded_at ASC NULLS FIRST, id ASC
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]StatusRecordResponse, 0)
	for rows.Next() {
		record, scanErr := scanStatusRecord(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

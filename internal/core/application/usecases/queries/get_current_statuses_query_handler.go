package queries

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCurrentStatusesQueryHandler derives the current status for every
// order in the history in one pass. DISTINCT ON keeps exactly the most
// recent record per order: latest recorded_at first, absent timestamps
// last, ties broken by record id.
//
// The status filter applies to the derived status, not to individual
// records, so it runs over the DISTINCT ON result.
type GetCurrentStatusesQueryHandler struct {
	db *gorm.DB
}

// NewGetCurrentStatusesQueryHandler creates a handler for the listing.
func NewGetCurrentStatusesQueryHandler(db *gorm.DB) GetCurrentStatusesQueryHandler {
	return GetCurrentStatusesQueryHandler{db: db}
}

// Handle executes the query. Orders without history records do not appear.
func (h GetCurrentStatusesQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentStatusesQuery,
) ([]CurrentStatusResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT order_id, status FROM (
			SELECT DISTINCT ON (order_id) order_id, status
			FROM status_records
			ORDER BY order_id, recorded_at DESC NULLS LAST, id DESC
		) current
	`
	args := make([]any, 0, 1)
	if query.Status() != nil {
		stmt += " WHERE status = ?"
		args = append(args, int(*query.Status()))
	}
	stmt += " ORDER BY order_id"

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := make([]CurrentStatusResponse, 0)
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

		statuses = append(statuses, CurrentStatusResponse{
			OrderID: oID,
			Status:  order.Status(status),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return statuses, nil
}

package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders with their derived current statuses.
// Results are sorted by creation time, oldest first, then by id for a
// stable order between equal timestamps.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. An empty result is a valid empty slice, not
// an error.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			o.id,
			o.user_id,
			o.product_id,
			o.created_at,
			sr.status
		FROM orders o
		LEFT JOIN LATERAL (
			SELECT status
			FROM status_records
			WHERE order_id = o.id
			ORDER BY recorded_at DESC NULLS LAST, id DESC
			LIMIT 1
		) sr ON true
		WHERE 1=1
	`
	args := make([]any, 0, 2)
	if query.UserID() != nil {
		stmt += " AND o.user_id = ?"
		args = append(args, query.UserID().Bytes())
	}
	if query.ProductID() != nil {
		stmt += " AND o.product_id = ?"
		args = append(args, query.ProductID().Bytes())
	}
	stmt += " ORDER BY o.created_at, o.id"

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrderQueryResponse, 0)
	for rows.Next() {
		var (
			id, userID, productID uuid.UUID
			createdAt             time.Time
			status                sql.NullInt64
		)
		if err = rows.Scan(&id, &userID, &productID, &createdAt, &status); err != nil {
			return nil, err
		}

		resp, respErr := buildOrderResponse(id, userID, productID, createdAt, status)
		if respErr != nil {
			return nil, respErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

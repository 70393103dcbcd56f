package queries

import (
	"context"
	"database/sql"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order and derives its current status from
// the history in a single round trip. The lateral subquery picks the most
// recent record: latest recorded_at first, absent timestamps last, ties
// broken by record id.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when the order
// does not exist; an order without history records comes back with the
// Unknown current status.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	var (
		id, userID, productID uuid.UUID
		createdAt             time.Time
		status                sql.NullInt64
	)
	if err = rows.Scan(&id, &userID, &productID, &createdAt, &status); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := buildOrderResponse(id, userID, productID, createdAt, status)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, rows.Err()
}

func buildOrderResponse(
	id, userID, productID uuid.UUID,
	createdAt time.Time,
	status sql.NullInt64,
) (GetOrderQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	uID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	pID, err := kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	current := order.Unknown
	if status.Valid {
		current = order.Status(status.Int64)
	}

	return GetOrderQueryResponse{
		ID:            orderID,
		UserID:        uID,
		ProductID:     pID,
		CreatedAt:     createdAt,
		CurrentStatus: current,
	}, nil
}

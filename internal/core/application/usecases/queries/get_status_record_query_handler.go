package queries

import (
	"context"
	"database/sql"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStatusRecordQueryHandler reads one history record by id.
type GetStatusRecordQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusRecordQueryHandler creates a handler for single-record reads.
func NewGetStatusRecordQueryHandler(db *gorm.DB) GetStatusRecordQueryHandler {
	return GetStatusRecordQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when no record
// carries the requested id.
func (h GetStatusRecordQueryHandler) Handle(
	ctx context.Context,
	query GetStatusRecordQuery,
) (StatusRecordResponse, error) {
	if err := query.Validate(); err != nil {
		return StatusRecordResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, order_id, status, recorded_at
		FROM status_records
		WHERE id = ?
	`, query.RecordID().Bytes()).Rows()
	if err != nil {
		return StatusRecordResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return StatusRecordResponse{}, err
		}
		return StatusRecordResponse{}, errs.NewObjectNotFoundError("status record", query.RecordID().String())
	}

	resp, err := scanStatusRecord(rows)
	if err != nil {
		return StatusRecordResponse{}, err
	}

	return resp, rows.Err()
}

// scanStatusRecord maps the standard (id, order_id, status, recorded_at)
// column set onto a response. A NULL recorded_at becomes the zero time.
func scanStatusRecord(rows *sql.Rows) (StatusRecordResponse, error) {
	var (
		id, orderID uuid.UUID
		status      int
		recordedAt  sql.NullTime
	)
	if err := rows.Scan(&id, &orderID, &status, &recordedAt); err != nil {
		return StatusRecordResponse{}, err
	}

	recordID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return StatusRecordResponse{}, err
	}

	oID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return StatusRecordResponse{}, err
	}

	resp := StatusRecordResponse{
		ID:      recordID,
		OrderID: oID,
		Status:  order.Status(status),
	}
	if recordedAt.Valid {
		resp.RecordedAt = recordedAt.Time
	}
	return resp, nil
}

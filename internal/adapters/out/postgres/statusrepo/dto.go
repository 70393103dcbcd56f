// Package statusrepo persists the append-only status history, mapping
// between history records and their relational representation.
package statusrepo

import (
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/statustracker"

	"github.com/google/uuid"
)

// RecordDTO represents the database structure for one status record.
// RecordedAt is NULL when the assertion carried no timestamp; the index on
// (order_id, recorded_at) serves both history reads and current-status
// derivation.
type RecordDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;index:idx_status_records_order_recorded,priority:1"`
	Status     int        `gorm:"type:smallint"`
	RecordedAt *time.Time `gorm:"type:timestamptz;index:idx_status_records_order_recorded,priority:2"`
}

// TableName overrides GORM's default naming convention.
func (RecordDTO) TableName() string {
	return "status_records"
}

func fromDomain(r *statustracker.Record) RecordDTO {
	dto := RecordDTO{
		ID:      r.ID().Bytes(),
		OrderID: r.OrderID().Bytes(),
		Status:  int(r.Status()),
	}
	if at := r.RecordedAt(); !at.IsZero() {
		dto.RecordedAt = &at
	}
	return dto
}

func toDomain(dto RecordDTO) (*statustracker.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var recordedAt time.Time
	if dto.RecordedAt != nil {
		recordedAt = *dto.RecordedAt
	}

	return statustracker.RestoreRecord(id, orderID, order.Status(dto.Status), recordedAt)
}

package statusrepo

import (
	"context"
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/statustracker"
	"ordertrack/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormStatusRecordRepository implements StatusRecordRepository using GORM.
// The store is append-only: records are inserted and read, never updated
// or deleted, and the repository is order-agnostic: it will happily append
// a record for an order id with no order row behind it.
type GormStatusRecordRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStatusRecordRepository creates a new GORM status record
// repository.
func NewGormStatusRecordRepository(db *gorm.DB, tracker aggregateTracker) *GormStatusRecordRepository {
	return &GormStatusRecordRepository{
		db:      db,
		tracker: tracker,
	}
}

// Append inserts a new record into the history.
func (r *GormStatusRecordRepository) Append(ctx context.Context, record *statustracker.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Get retrieves a record by its own id.
func (r *GormStatusRecordRepository) Get(ctx context.Context, id kernel.UUID) (*statustracker.Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("status record", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the records whose ids are in the given set. Missing
// ids are skipped, not reported.
func (r *GormStatusRecordRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*statustracker.Record, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	records := make([]*statustracker.Record, 0, len(raw))
	if len(raw) == 0 {
		return records, nil
	}

	var dtos []RecordDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id = ANY(?)", pq.Array(raw)).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// GetByOrder retrieves an order's full history, oldest first. Records with
// an absent timestamp sort before everything else.
func (r *GormStatusRecordRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*statustracker.Record, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RecordDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("recorded_at ASC NULLS FIRST, id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*statustracker.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		records = append(records, record)
	}

	return records, nil
}

// GetCurrentByOrder retrieves the record that defines the order's current
// status: latest recorded_at, absent timestamps last, ties broken by id.
// Returns ObjectNotFoundError when the order has no history at all.
func (r *GormStatusRecordRepository) GetCurrentByOrder(ctx context.Context, orderID kernel.UUID) (*statustracker.Record, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto RecordDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("recorded_at DESC NULLS LAST, id DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order status", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

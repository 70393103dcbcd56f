package memory

import (
	"context"
	"sort"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/statustracker"
	"ordertrack/internal/pkg/errs"
)

// StatusRecordRepository implements ports.StatusRecordRepository on a
// Store. Like its Postgres counterpart it is order-agnostic append-only:
// records accumulate regardless of whether an order row exists.
type StatusRecordRepository struct {
	store *Store
}

// NewStatusRecordRepository creates a repository over the given store.
func NewStatusRecordRepository(store *Store) *StatusRecordRepository {
	return &StatusRecordRepository{store: store}
}

// Append inserts a new record into the history.
func (r *StatusRecordRepository) Append(_ context.Context, record *statustracker.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.records[record.ID()] = record
	return nil
}

// Get retrieves a record by its own id.
func (r *StatusRecordRepository) Get(_ context.Context, id kernel.UUID) (*statustracker.Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	record, ok := r.store.records[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("status record", id.String())
	}
	return record, nil
}

// GetByIDs retrieves the records present in the given id set; missing ids
// are skipped.
func (r *StatusRecordRepository) GetByIDs(_ context.Context, ids []kernel.UUID) ([]*statustracker.Record, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	records := make([]*statustracker.Record, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		if record, ok := r.store.records[id]; ok {
			records = append(records, record)
		}
	}
	return records, nil
}

// GetByOrder retrieves an order's history, oldest first, matching the
// recency order used for current-status derivation.
func (r *StatusRecordRepository) GetByOrder(_ context.Context, orderID kernel.UUID) ([]*statustracker.Record, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	records := make([]*statustracker.Record, 0)
	for _, record := range r.store.records {
		if record.OrderID().IsEqual(orderID) {
			records = append(records, record)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[j].MoreRecent(records[i])
	})
	return records, nil
}

// GetCurrentByOrder retrieves the record defining the order's current
// status. Returns ObjectNotFoundError when the order has no history.
func (r *StatusRecordRepository) GetCurrentByOrder(_ context.Context, orderID kernel.UUID) (*statustracker.Record, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var current *statustracker.Record
	for _, record := range r.store.records {
		if record.OrderID().IsEqual(orderID) && record.MoreRecent(current) {
			current = record
		}
	}

	if current == nil {
		return nil, errs.NewObjectNotFoundError("order status", orderID.String())
	}
	return current, nil
}

package memory

import (
	"context"

	"ordertrack/internal/core/ports"
)

// UnitOfWorkFactory creates in-memory units of work sharing one store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory over the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork bound to the shared store.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork satisfies ports.UnitOfWork without transactional semantics:
// repository writes apply to the store immediately and Rollback cannot
// undo them. Tests that need real atomicity use the Postgres adapter.
type UnitOfWork struct {
	store *Store
}

// Begin is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error { return nil }

// Commit is a no-op.
func (uow *UnitOfWork) Commit(_ context.Context) error { return nil }

// Rollback is a no-op.
func (uow *UnitOfWork) Rollback(_ context.Context) error { return nil }

// OrderRepository returns an order repository over the shared store.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return NewOrderRepository(uow.store)
}

// StatusRecordRepository returns a history repository over the shared
// store.
func (uow *UnitOfWork) StatusRecordRepository() ports.StatusRecordRepository {
	return NewStatusRecordRepository(uow.store)
}

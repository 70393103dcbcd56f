package ports

import "context"

// UnitOfWork coordinates a transaction spanning the order table and the
// status history, which must change together (for example: delete an order
// and append its final tombstone record atomically).
//
// Begin is idempotent; Commit and Rollback close the transaction. Each
// business operation should use a fresh UnitOfWork instance, giving
// concurrent consumers isolated transactions.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	StatusRecordRepository() StatusRecordRepository
}

// Package commands contains the business operations that mutate orders and
// their status history. It implements the Command pattern for the write side
// of the CQRS split: each operation is a validated command value object plus
// a handler that manages the transaction and persistence.
//
// Handlers are driven by the relay consumer (and, in tests, directly), so
// they are written to tolerate at-least-once delivery: redelivered commands
// must not corrupt state or fail loudly.
package commands

import (
	"context"

	"ordertrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure consistency between the order table
// and the status history.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StatusRepoFactory provides access to the status history within a
	// transaction.
	StatusRepoFactory interface {
		StatusRecordRepository() ports.StatusRecordRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StatusUoW manages transactions for history-only operations.
	StatusUoW interface {
		TxManager
		StatusRepoFactory
	}

	// StatusUoWFactory creates new history unit of work instances.
	StatusUoWFactory interface {
		Create() StatusUoW
	}

	// UoW manages transactions spanning the order table and the status
	// history, used by commands that must change both atomically.
	UoW interface {
		TxManager
		OrderRepoFactory
		StatusRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-store
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)

// Package memory provides in-process implementations of the persistence
// ports, used in tests and local development where a Postgres instance
// would be overkill. Writes apply immediately: the unit of work satisfies
// the transactional interface but Begin, Commit, and Rollback are no-ops.
package memory

import (
	"sync"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/statustracker"
)

// Store is the shared backing state for the in-memory repositories. It is
// safe for concurrent use; the history map only ever grows.
type Store struct {
	mu      sync.RWMutex
	orders  map[kernel.UUID]*order.Order
	records map[kernel.UUID]*statustracker.Record
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		orders:  make(map[kernel.UUID]*order.Order),
		records: make(map[kernel.UUID]*statustracker.Record),
	}
}

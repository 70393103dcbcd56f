package commands_test

import (
	"context"
	"testing"
	"time"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/statustracker"
	"ordertrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, kernel.NewUUID(), kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return o
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	if o := args.Get(0); o != nil {
		return o.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStatusRecordRepository struct{ mock.Mock }

func (m *MockStatusRecordRepository) Append(ctx context.Context, r *statustracker.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockStatusRecordRepository) Get(ctx context.Context, id kernel.UUID) (*statustracker.Record, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*statustracker.Record), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStatusRecordRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*statustracker.Record, error) {
	args := m.Called(ctx, ids)
	if r := args.Get(0); r != nil {
		return r.([]*statustracker.Record), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStatusRecordRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*statustracker.Record, error) {
	args := m.Called(ctx, orderID)
	if r := args.Get(0); r != nil {
		return r.([]*statustracker.Record), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStatusRecordRepository) GetCurrentByOrder(ctx context.Context, orderID kernel.UUID) (*statustracker.Record, error) {
	args := m.Called(ctx, orderID)
	if r := args.Get(0); r != nil {
		return r.(*statustracker.Record), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUoW satisfies commands.UoW and therefore also the narrower OrderUoW
// and StatusUoW interfaces.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StatusRecordRepository() ports.StatusRecordRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusRecordRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockStatusUoWFactory struct{ mock.Mock }

func (m *MockStatusUoWFactory) Create() commands.StatusUoW {
	args := m.Called()
	return args.Get(0).(commands.StatusUoW)
}

type MockStatusCache struct{ mock.Mock }

func (m *MockStatusCache) Get(ctx context.Context, orderID kernel.UUID) (order.Status, bool, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(order.Status), args.Bool(1), args.Error(2)
}

func (m *MockStatusCache) Set(ctx context.Context, orderID kernel.UUID, status order.Status) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *MockStatusCache) Invalidate(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

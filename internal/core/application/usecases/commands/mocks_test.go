package commands_test

import (
	"context"
	"testing"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetAllByStatusAndCustomer(
	ctx context.Context,
	status order.Status,
	customerID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, status, customerID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) GetFirstInPlacedStatus(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockLifecycleRecorder struct{ mock.Mock }

func (m *MockLifecycleRecorder) OrderTransitioned(from, to order.Status) {
	m.Called(from, to)
}

func (m *MockLifecycleRecorder) OrderServed(quote services.Quote) {
	m.Called(quote)
}

type nopRecorder struct{}

func (nopRecorder) OrderTransitioned(_, _ order.Status) {}
func (nopRecorder) OrderServed(_ services.Quote)        {}

// portsFactory exposes a ports.UnitOfWorkFactory as the narrower command factory.
type portsFactory struct{ ports.UnitOfWorkFactory }

func (f portsFactory) Create() commands.OrderUoW {
	return f.UnitOfWorkFactory.Create()
}

func newCustomer(t *testing.T, roles ...customer.Role) customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), "Mario", "mario@pizzeria.test", roles...)
	require.NoError(t, err)
	return c
}

func newItem(t *testing.T, price string, toppings ...string) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), "Pizza", decimal.RequireFromString(price), toppings...)
	require.NoError(t, err)
	return item
}

func storedOrder(t *testing.T, customerID kernel.UUID, status order.Status, preparedBy *kernel.UUID, items ...order.LineItem) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), customerID, items, status, decimal.Zero, preparedBy,
		time.Now().UTC().Truncate(time.Microsecond))
	require.NoError(t, err)
	return o
}

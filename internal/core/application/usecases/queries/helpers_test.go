package queries_test

import (
	"testing"
	"time"

	"pizzeria/internal/adapters/out/memory"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type readers struct{ f *memory.UnitOfWorkFactory }

func (r readers) Create() queries.OrderReader {
	return r.f.Create()
}

func newReaders(t *testing.T) readers {
	t.Helper()
	store, err := memory.NewStore()
	require.NoError(t, err)
	return readers{memory.NewUnitOfWorkFactory(store)}
}

// seed stores an order and walks it to status, started by staff when needed.
func seed(t *testing.T, r readers, status order.Status, staff kernel.UUID, prices ...string) *order.Order {
	t.Helper()
	ctx := t.Context()

	o, err := order.NewOrder(kernel.NewUUID())
	require.NoError(t, err)
	for _, p := range prices {
		item, err := order.NewLineItem(kernel.NewUUID(), "Pizza", decimal.RequireFromString(p))
		require.NoError(t, err)
		require.NoError(t, o.AddItem(item))
	}

	uow := r.f.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	if status >= order.Placed {
		require.NoError(t, o.Place())
	}
	if status >= order.Ongoing {
		require.NoError(t, o.Start(staff))
	}
	if status >= order.Served {
		require.NoError(t, o.Serve(decimal.RequireFromString("1.00")))
	}
	require.NoError(t, uow.OrderRepository().Update(ctx, o))
	require.NoError(t, uow.Commit(ctx))

	// keeps createdAt strictly increasing between seeded orders
	time.Sleep(time.Millisecond)
	return o
}

package memory_test

import (
	"testing"
	"time"

	"pizzeria/internal/adapters/out/memory"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFactory(t *testing.T) *memory.UnitOfWorkFactory {
	t.Helper()
	store, err := memory.NewStore()
	require.NoError(t, err)
	return memory.NewUnitOfWorkFactory(store)
}

func newItem(t *testing.T, price string, toppings ...string) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), "Pizza", decimal.RequireFromString(price), toppings...)
	require.NoError(t, err)
	return item
}

func draftWithItems(t *testing.T, customerID kernel.UUID, items ...order.LineItem) *order.Order {
	t.Helper()
	o, err := order.NewOrder(customerID)
	require.NoError(t, err)
	for _, item := range items {
		require.NoError(t, o.AddItem(item))
	}
	return o
}

func add(t *testing.T, f *memory.UnitOfWorkFactory, orders ...*order.Order) {
	t.Helper()
	ctx := t.Context()
	uow := f.Create()
	require.NoError(t, uow.Begin(ctx))
	for _, o := range orders {
		require.NoError(t, uow.OrderRepository().Add(ctx, o))
	}
	require.NoError(t, uow.Commit(ctx))
}

func update(t *testing.T, f *memory.UnitOfWorkFactory, o *order.Order) {
	t.Helper()
	ctx := t.Context()
	uow := f.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Update(ctx, o))
	require.NoError(t, uow.Commit(ctx))
}

func TestOrderRepository_AddAssignsIDAndRoundTrips(t *testing.T) {
	ctx := t.Context()
	f := newFactory(t)
	customerID := kernel.NewUUID()
	o := draftWithItems(t, customerID, newItem(t, "10.00"), newItem(t, "12.89", "ham", "pineapple"))

	add(t, f, o)

	require.True(t, o.IsPersisted())
	got, err := f.Create().OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.True(t, got.ID().IsEqual(o.ID()))
	assert.True(t, got.CustomerID().IsEqual(customerID))
	assert.Equal(t, order.Draft, got.Status())
	assert.Equal(t, o.Items(), got.Items())
	assert.Equal(t, o.CreatedAt(), got.CreatedAt())
	assert.NotSame(t, o, got)
}

func TestOrderRepository_AddRejectsPersistedOrder(t *testing.T) {
	ctx := t.Context()
	f := newFactory(t)
	o := draftWithItems(t, kernel.NewUUID(), newItem(t, "1.00"))
	add(t, f, o)

	uow := f.Create()
	require.NoError(t, uow.Begin(ctx))
	err := uow.OrderRepository().Add(ctx, o)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrderRepository_UpdateMissingOrder(t *testing.T) {
	ctx := t.Context()
	f := newFactory(t)
	o := draftWithItems(t, kernel.NewUUID(), newItem(t, "1.00"))
	require.NoError(t, o.AssignID(kernel.NewUUID()))

	uow := f.Create()
	require.NoError(t, uow.Begin(ctx))
	err := uow.OrderRepository().Update(ctx, o)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestOrderRepository_GetMissingOrder(t *testing.T) {
	_, err := newFactory(t).Create().OrderRepository().Get(t.Context(), kernel.NewUUID())

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestOrderRepository_WritesRequireTransaction(t *testing.T) {
	ctx := t.Context()
	f := newFactory(t)

	err := f.Create().OrderRepository().Add(ctx, draftWithItems(t, kernel.NewUUID(), newItem(t, "1.00")))

	require.ErrorIs(t, err, memory.ErrReadOnly)
}

func TestOrderRepository_StatusQueries(t *testing.T) {
	ctx := t.Context()
	f := newFactory(t)
	alice, bob := kernel.NewUUID(), kernel.NewUUID()

	aliceDraft := draftWithItems(t, alice, newItem(t, "1.00"))
	bobDraft := draftWithItems(t, bob, newItem(t, "2.00"))
	alicePlaced := draftWithItems(t, alice, newItem(t, "3.00"))
	add(t, f, aliceDraft, bobDraft, alicePlaced)
	require.NoError(t, alicePlaced.Place())
	update(t, f, alicePlaced)

	repo := f.Create().OrderRepository()

	drafts, err := repo.GetAllByStatusAndCustomer(ctx, order.Draft, alice)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.True(t, drafts[0].IsEqual(aliceDraft))

	placed, err := repo.GetAllInStatus(ctx, order.Placed)
	require.NoError(t, err)
	require.Len(t, placed, 1)
	assert.True(t, placed[0].IsEqual(alicePlaced))

	none, err := repo.GetAllByStatusAndCustomer(ctx, order.Placed, bob)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOrderRepository_GetFirstInPlacedStatusIsOldestFirst(t *testing.T) {
	ctx := t.Context()
	f := newFactory(t)

	first := draftWithItems(t, kernel.NewUUID(), newItem(t, "1.00"))
	time.Sleep(2 * time.Millisecond)
	second := draftWithItems(t, kernel.NewUUID(), newItem(t, "1.00"))
	add(t, f, first, second)

	require.NoError(t, second.Place())
	update(t, f, second)
	require.NoError(t, first.Place())
	update(t, f, first)

	next, err := f.Create().OrderRepository().GetFirstInPlacedStatus(ctx)

	require.NoError(t, err)
	assert.True(t, next.IsEqual(first), "oldest created order comes first, regardless of placement order")
}

func TestOrderRepository_GetFirstInPlacedStatusEmpty(t *testing.T) {
	_, err := newFactory(t).Create().OrderRepository().GetFirstInPlacedStatus(t.Context())

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestOrderRepository_LifecyclePersistsPreparerAndAmount(t *testing.T) {
	ctx := t.Context()
	f := newFactory(t)
	staff := kernel.NewUUID()
	o := draftWithItems(t, kernel.NewUUID(), newItem(t, "10.05"), newItem(t, "12.87"))
	add(t, f, o)
	require.NoError(t, o.Place())
	require.NoError(t, o.Start(staff))
	update(t, f, o)

	ongoing, err := f.Create().OrderRepository().GetAllInStatus(ctx, order.Ongoing)
	require.NoError(t, err)
	require.Len(t, ongoing, 1)
	assert.True(t, ongoing[0].PreparedBy().IsEqual(staff))

	require.NoError(t, o.Serve(decimal.RequireFromString("22.92")))
	update(t, f, o)

	got, err := f.Create().OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Served, got.Status())
	assert.Equal(t, "22.92", got.Amount().StringFixed(2))
	assert.True(t, got.PreparedBy().IsEqual(staff))
}

package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/tracking"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	c := newCustomer(t)
	draft := storedOrder(t, c.ID(), order.Draft, nil, newItem(t, "10.00"), newItem(t, "12.89", "pineapple"))
	itemsBefore := draft.Items()
	cmd, _ := commands.NewConfirmOrderCommand(c)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	recorder := new(MockLifecycleRecorder)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllByStatusAndCustomer", mock.Anything, order.Draft, c.ID()).Return([]*order.Order{draft}, nil).Once(),
		repo.On("GetAllByStatusAndCustomer", mock.Anything, order.Placed, c.ID()).Return(nil, nil).Once(),
		repo.On("Update", mock.Anything, draft).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		recorder.On("OrderTransitioned", order.Draft, order.Placed).Return().Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory, tracking.NewCustomerLocks(), recorder)
	placed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, draft, placed)
	assert.Equal(t, order.Placed, placed.Status())
	assert.Equal(t, itemsBefore, placed.Items())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_Failures(t *testing.T) {
	c := newCustomer(t)

	tests := []struct {
		name   string
		drafts []*order.Order
		placed []*order.Order
		want   []error
	}{
		{
			name: "no draft",
			want: []error{commands.ErrNoDraftOrder},
		},
		{
			name: "two drafts",
			drafts: []*order.Order{
				storedOrder(t, c.ID(), order.Draft, nil, newItem(t, "1.00")),
				storedOrder(t, c.ID(), order.Draft, nil, newItem(t, "2.00")),
			},
			want: []error{errs.ErrTooManyObjects, errs.ErrInvariantViolation},
		},
		{
			name:   "already placed",
			drafts: []*order.Order{storedOrder(t, c.ID(), order.Draft, nil, newItem(t, "1.00"))},
			placed: []*order.Order{storedOrder(t, c.ID(), order.Placed, nil, newItem(t, "2.00"))},
			want:   []error{commands.ErrOrderAlreadyPlaced},
		},
		{
			name:   "two placed",
			drafts: []*order.Order{storedOrder(t, c.ID(), order.Draft, nil, newItem(t, "1.00"))},
			placed: []*order.Order{
				storedOrder(t, c.ID(), order.Placed, nil, newItem(t, "2.00")),
				storedOrder(t, c.ID(), order.Placed, nil, newItem(t, "3.00")),
			},
			want: []error{errs.ErrInvariantViolation},
		},
		{
			name:   "empty draft",
			drafts: []*order.Order{storedOrder(t, c.ID(), order.Draft, nil)},
			want:   []error{errs.ErrValueIsInvalid},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, _ := commands.NewConfirmOrderCommand(c)

			repo := new(MockOrderRepository)
			repo.On("GetAllByStatusAndCustomer", mock.Anything, order.Draft, c.ID()).Return(tt.drafts, nil).Maybe()
			repo.On("GetAllByStatusAndCustomer", mock.Anything, order.Placed, c.ID()).Return(tt.placed, nil).Maybe()

			uow := new(MockOrderUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(repo).Once()
			uow.On("Rollback", ctx).Return(nil).Once()

			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()
			recorder := new(MockLifecycleRecorder)

			h := commands.NewConfirmOrderCommandHandler(factory, tracking.NewCustomerLocks(), recorder)
			placed, err := h.Handle(ctx, cmd)

			for _, want := range tt.want {
				require.ErrorIs(t, err, want)
			}
			assert.Nil(t, placed)
			for _, d := range tt.drafts {
				assert.Equal(t, order.Draft, d.Status())
			}
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
			recorder.AssertNotCalled(t, "OrderTransitioned", mock.Anything, mock.Anything)
			uow.AssertExpectations(t)
		})
	}
}

func TestConfirmOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewConfirmOrderCommandHandler(factory, tracking.NewCustomerLocks(), new(MockLifecycleRecorder))

	_, err := h.Handle(t.Context(), commands.ConfirmOrderCommand{})

	require.ErrorIs(t, err, commands.ErrConfirmOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

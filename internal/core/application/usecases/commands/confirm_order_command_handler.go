package commands

import (
	"context"
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

var (
	ErrNoDraftOrder       = errors.New("no draft order")
	ErrOrderAlreadyPlaced = errors.New("customer already has a placed order")
)

// ConfirmOrderCommandHandler turns the customer's single draft into a placed order.
//
// Outcomes:
//   - no draft: ErrNoDraftOrder
//   - several drafts: errs.TooManyObjectsError, nothing persisted
//   - a placed order already waiting: ErrOrderAlreadyPlaced
//   - several placed orders: errs.InvariantViolationError
//   - empty draft: errs.ErrValueIsInvalid
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      CustomerLocker
	recorder   LifecycleRecorder
}

func NewConfirmOrderCommandHandler(
	uowFactory OrderUoWFactory,
	locks CustomerLocker,
	recorder LifecycleRecorder,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		recorder:   recorder,
	}
}

// Handle returns the placed order.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	customerID := cmd.Customer().ID()
	unlock := h.locks.Lock(customerID)
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	drafts, err := repo.GetAllByStatusAndCustomer(ctx, order.Draft, customerID)
	if err != nil {
		return nil, err
	}
	switch {
	case len(drafts) == 0:
		return nil, fmt.Errorf("%w for customer %s", ErrNoDraftOrder, customerID)
	case len(drafts) > 1:
		return nil, errs.NewTooManyObjectsError("draft orders", customerID, len(drafts))
	}

	placed, err := repo.GetAllByStatusAndCustomer(ctx, order.Placed, customerID)
	if err != nil {
		return nil, err
	}
	switch {
	case len(placed) == 1:
		return nil, fmt.Errorf("%w: %s", ErrOrderAlreadyPlaced, placed[0].ID())
	case len(placed) > 1:
		return nil, errs.NewInvariantViolationError("placed orders", customerID, len(placed))
	}

	draft := drafts[0]
	if err = draft.Place(); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, draft); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.recorder.OrderTransitioned(order.Draft, order.Placed)

	return draft, nil
}

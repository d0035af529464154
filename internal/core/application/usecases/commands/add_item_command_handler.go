package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// AddItemCommandHandler appends an item to the customer's draft order, creating the draft
// when there is none. Runs under the customer's lock so a customer never races itself.
//
// Finding more than one draft for the customer is reported as errs.ErrInvariantViolation
// and nothing is persisted.
type AddItemCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      CustomerLocker
	recorder   LifecycleRecorder
}

func NewAddItemCommandHandler(
	uowFactory OrderUoWFactory,
	locks CustomerLocker,
	recorder LifecycleRecorder,
) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		recorder:   recorder,
	}
}

// Handle returns the draft order after the item was added and persisted.
func (h AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) (*order.Order, error) {
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

	var draft *order.Order
	switch len(drafts) {
	case 0:
		if draft, err = order.NewOrder(customerID); err != nil {
			return nil, err
		}
		if err = draft.AddItem(cmd.Item()); err != nil {
			return nil, err
		}
		if err = repo.Add(ctx, draft); err != nil {
			return nil, err
		}
	case 1:
		draft = drafts[0]
		if err = draft.AddItem(cmd.Item()); err != nil {
			return nil, err
		}
		if err = repo.Update(ctx, draft); err != nil {
			return nil, err
		}
	default:
		return nil, errs.NewInvariantViolationError("draft orders", customerID, len(drafts))
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if len(drafts) == 0 {
		h.recorder.OrderTransitioned(order.Unknown, order.Draft)
	}

	return draft, nil
}

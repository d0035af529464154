package commands

import (
	"context"
	"errors"
	"sync"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// PickNextOrderCommandHandler hands the oldest placed order to a staff member.
//
// The kitchen lock makes "read first placed order, start it, save, track" atomic within
// the process; the repository reserves the row against other processes. An order is
// therefore never handed to two staff members.
//
// Example:
//
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case err != nil:
//	    return err
//	case o == nil:
//	    // queue is empty
//	default:
//	    // prepare o.Items()
//	}
type PickNextOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	kitchen    sync.Locker
	tracker    PreparationTracker
	recorder   LifecycleRecorder
}

func NewPickNextOrderCommandHandler(
	uowFactory OrderUoWFactory,
	kitchen sync.Locker,
	tracker PreparationTracker,
	recorder LifecycleRecorder,
) PickNextOrderCommandHandler {
	return PickNextOrderCommandHandler{
		uowFactory: uowFactory,
		kitchen:    kitchen,
		tracker:    tracker,
		recorder:   recorder,
	}
}

// Handle returns the started order, or nil without error when no order is placed.
func (h PickNextOrderCommandHandler) Handle(ctx context.Context, cmd PickNextOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	h.kitchen.Lock()
	defer h.kitchen.Unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	next, err := repo.GetFirstInPlacedStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil //nolint:nilnil // empty queue is not an error
	}
	if err != nil {
		return nil, err
	}

	if err = next.Start(cmd.StaffID()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, next); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.recorder.OrderTransitioned(order.Placed, order.Ongoing)

	if err = h.tracker.Track(cmd.StaffID(), next); err != nil {
		return nil, err
	}

	return next, nil
}

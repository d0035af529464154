package commands

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/pkg/errs"
)

// ErrOrderNotFound is returned when the order to complete is absent or no longer ongoing.
var ErrOrderNotFound = errors.New("ongoing order not found")

// Receipt is the served order together with its price breakdown.
type Receipt struct {
	Order *order.Order
	Quote services.Quote
}

// CompleteOrderCommandHandler prices an ongoing order, serves it and drops it from the
// preparation tracker.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	kitchen    sync.Locker
	tracker    PreparationTracker
	pricing    services.PricingEngine
	recorder   LifecycleRecorder
}

func NewCompleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	kitchen sync.Locker,
	tracker PreparationTracker,
	pricing services.PricingEngine,
	recorder LifecycleRecorder,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		kitchen:    kitchen,
		tracker:    tracker,
		pricing:    pricing,
		recorder:   recorder,
	}
}

// Handle serves the order. Completing an order twice fails with ErrOrderNotFound.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (Receipt, error) {
	if err := cmd.Validate(); err != nil {
		return Receipt{}, err
	}

	h.kitchen.Lock()
	defer h.kitchen.Unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return Receipt{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.tracker.Untrack(cmd.OrderID())
		return Receipt{}, fmt.Errorf("%w: %s", ErrOrderNotFound, cmd.OrderID())
	}
	if err != nil {
		return Receipt{}, err
	}

	if o.Status() != order.Ongoing {
		if o.Status().IsFinal() {
			h.tracker.Untrack(o.ID())
		}
		return Receipt{}, fmt.Errorf("%w: order %s is %s", ErrOrderNotFound, o.ID(), o.Status())
	}

	quote := h.pricing.Quote(o.Items())
	if err = o.Serve(quote.Total); err != nil {
		return Receipt{}, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return Receipt{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return Receipt{}, err
	}

	h.tracker.Untrack(o.ID())
	h.recorder.OrderTransitioned(order.Ongoing, order.Served)
	h.recorder.OrderServed(quote)

	return Receipt{Order: o, Quote: quote}, nil
}

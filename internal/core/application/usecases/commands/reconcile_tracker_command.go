package commands

import (
	"context"
	"errors"
	"sync"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

var ErrReconcileTrackerCommandIsNotConstructed = errors.New(
	"ReconcileTrackerCommand must be created via NewReconcileTrackerCommand constructor",
)

// ReconcileTrackerCommand asks for the preparation tracker to be rebuilt from the store.
type ReconcileTrackerCommand struct {
	guard guard.ConstructorGuard
}

func NewReconcileTrackerCommand() ReconcileTrackerCommand {
	return ReconcileTrackerCommand{guard: guard.NewConstructorGuard()}
}

func (c ReconcileTrackerCommand) Validate() error {
	return c.guard.Validate(ErrReconcileTrackerCommandIsNotConstructed)
}

// ReconcileTrackerCommandHandler replaces the tracker content with the ongoing orders the
// store reports, discarding entries for orders served or lost elsewhere.
type ReconcileTrackerCommandHandler struct {
	uowFactory OrderUoWFactory
	kitchen    sync.Locker
	tracker    TrackerRebuilder
}

func NewReconcileTrackerCommandHandler(
	uowFactory OrderUoWFactory,
	kitchen sync.Locker,
	tracker TrackerRebuilder,
) ReconcileTrackerCommandHandler {
	return ReconcileTrackerCommandHandler{
		uowFactory: uowFactory,
		kitchen:    kitchen,
		tracker:    tracker,
	}
}

// Handle returns the number of tracked orders after reconciliation.
func (h ReconcileTrackerCommandHandler) Handle(ctx context.Context, cmd ReconcileTrackerCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	h.kitchen.Lock()
	defer h.kitchen.Unlock()

	ongoing, err := h.uowFactory.Create().OrderRepository().GetAllInStatus(ctx, order.Ongoing)
	if err != nil {
		return 0, err
	}

	return h.tracker.Replace(ongoing), nil
}

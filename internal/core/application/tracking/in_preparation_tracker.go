package tracking

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

var ErrOrderIsNotOngoing = errors.New("only ongoing orders can be tracked")

// Entry associates a staff member with the order they are preparing.
type Entry struct {
	StaffID kernel.UUID
	Order   *order.Order
}

// InPreparationTracker indexes Ongoing orders by the staff member preparing them, with a
// reverse index by order id. A staff member may hold several Ongoing orders and every
// one of them stays tracked. An order belongs to one staff member at a time. Safe for
// concurrent use.
type InPreparationTracker struct {
	mu      sync.RWMutex
	byStaff map[kernel.UUID]map[kernel.UUID]*order.Order
	byOrder map[kernel.UUID]kernel.UUID
}

// NewInPreparationTracker returns an empty tracker.
func NewInPreparationTracker() *InPreparationTracker {
	return &InPreparationTracker{
		byStaff: make(map[kernel.UUID]map[kernel.UUID]*order.Order),
		byOrder: make(map[kernel.UUID]kernel.UUID),
	}
}

// Track registers o as being prepared by staffID.
func (t *InPreparationTracker) Track(staffID kernel.UUID, o *order.Order) error {
	if err := staffID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("staff", err)
	}
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.IsPersisted() {
		return errs.NewValueIsRequiredError("order id")
	}
	if o.Status() != order.Ongoing {
		return fmt.Errorf("%w: order %s is %s", ErrOrderIsNotOngoing, o.ID(), o.Status())
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.put(staffID, o)
	return nil
}

// Untrack removes the order from the tracker and reports whether it was present.
func (t *InPreparationTracker) Untrack(orderID kernel.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.byOrder[orderID]; !ok {
		return false
	}
	t.remove(orderID)
	return true
}

// Current returns the oldest order tracked for staffID.
func (t *InPreparationTracker) Current(staffID kernel.UUID) (*order.Order, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var oldest *order.Order
	for _, o := range t.byStaff[staffID] {
		if oldest == nil || compareOrders(o, oldest) < 0 {
			oldest = o
		}
	}
	return oldest, oldest != nil
}

// Snapshot returns one entry per tracked order, oldest order first.
func (t *InPreparationTracker) Snapshot() []Entry {
	t.mu.RLock()
	entries := make([]Entry, 0, len(t.byOrder))
	for staffID, orders := range t.byStaff {
		for _, o := range orders {
			entries = append(entries, Entry{StaffID: staffID, Order: o})
		}
	}
	t.mu.RUnlock()

	slices.SortFunc(entries, func(a, b Entry) int {
		return compareOrders(a.Order, b.Order)
	})
	return entries
}

// Replace discards every entry and rebuilds the index from orders, keyed by their
// preparer. Orders that are not Ongoing or have no preparer are skipped. Returns the
// number of tracked orders.
func (t *InPreparationTracker) Replace(orders []*order.Order) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.byStaff = make(map[kernel.UUID]map[kernel.UUID]*order.Order, len(orders))
	t.byOrder = make(map[kernel.UUID]kernel.UUID, len(orders))

	for _, o := range orders {
		if o.Validate() != nil || o.Status() != order.Ongoing || o.PreparedBy() == nil || !o.IsPersisted() {
			continue
		}
		t.put(*o.PreparedBy(), o)
	}
	return len(t.byOrder)
}

// Len returns the number of tracked orders.
func (t *InPreparationTracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.byOrder)
}

// put must be called with mu held.
func (t *InPreparationTracker) put(staffID kernel.UUID, o *order.Order) {
	t.remove(o.ID())

	orders, ok := t.byStaff[staffID]
	if !ok {
		orders = make(map[kernel.UUID]*order.Order)
		t.byStaff[staffID] = orders
	}
	orders[o.ID()] = o
	t.byOrder[o.ID()] = staffID
}

// remove must be called with mu held.
func (t *InPreparationTracker) remove(orderID kernel.UUID) {
	staffID, ok := t.byOrder[orderID]
	if !ok {
		return
	}
	delete(t.byOrder, orderID)

	orders := t.byStaff[staffID]
	delete(orders, orderID)
	if len(orders) == 0 {
		delete(t.byStaff, staffID)
	}
}

func compareOrders(a, b *order.Order) int {
	if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
		return c
	}
	return compareIDs(a.ID(), b.ID())
}

func compareIDs(a, b kernel.UUID) int {
	ab, bb := a.Bytes(), b.Bytes()
	return slices.Compare(ab[:], bb[:])
}

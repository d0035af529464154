package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates. It is the
// source of truth for order state; any in-memory view defers to it.
type OrderRepository interface {
	// Add persists a new order and assigns its identifier.
	// The order must not have an identifier yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, amount, preparer and newly appended line items of an
	// existing order. Returns errs.ErrObjectNotFound if the order is not stored.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier, or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByStatusAndCustomer returns every order of the customer in the given status,
	// oldest first. An empty result is not an error.
	GetAllByStatusAndCustomer(ctx context.Context, status order.Status, customerID kernel.UUID) ([]*order.Order, error)

	// GetFirstInPlacedStatus returns the oldest Placed order (by creation time, then id),
	// or errs.ErrObjectNotFound when the queue is empty. Inside a transaction the
	// returned order is reserved for the caller until commit.
	GetFirstInPlacedStatus(ctx context.Context) (*order.Order, error)

	// GetAllInStatus returns every order in the given status, oldest first.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}

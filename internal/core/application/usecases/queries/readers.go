// Package queries contains read-only operations of the CQRS architecture.
// Queries never open a transaction; they read the last committed state.
package queries

import (
	"pizzeria/internal/core/application/tracking"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

type (
	// OrderReader exposes an order repository used outside any transaction.
	OrderReader interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderReaderFactory creates order readers.
	OrderReaderFactory interface {
		Create() OrderReader
	}

	// PreparationIndex is the in-memory index of orders being prepared, consulted before
	// the store and corrected from it.
	PreparationIndex interface {
		Current(staffID kernel.UUID) (*order.Order, bool)
		Track(staffID kernel.UUID, o *order.Order) error
		Untrack(orderID kernel.UUID) bool
	}

	// PreparationSnapshot lists every tracked order with its preparer.
	PreparationSnapshot interface {
		Snapshot() []tracking.Entry
	}
)

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, locking, transaction
// management, persistence, then in-memory side effects.
package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

// Shared in-memory collaborators owned by the composition root.
type (
	// CustomerLocker serializes operations of a single customer.
	CustomerLocker interface {
		Lock(customerID kernel.UUID) (unlock func())
	}

	// PreparationTracker is the in-memory index of orders being prepared.
	PreparationTracker interface {
		Track(staffID kernel.UUID, o *order.Order) error
		Untrack(orderID kernel.UUID) bool
	}

	// TrackerRebuilder replaces the whole in-memory index from the store's view.
	TrackerRebuilder interface {
		Replace(orders []*order.Order) int
	}

	// LifecycleRecorder observes successful lifecycle changes, after commit.
	LifecycleRecorder interface {
		OrderTransitioned(from, to order.Status)
		OrderServed(quote services.Quote)
	}
)

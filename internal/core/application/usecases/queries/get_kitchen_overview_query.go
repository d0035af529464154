package queries

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrGetKitchenOverviewQueryIsNotConstructed = errors.New(
	"GetKitchenOverviewQuery must be created via NewGetKitchenOverviewQuery constructor",
)

// GetKitchenOverviewQuery lists who is preparing what, answered from the in-memory
// preparation index without reading the store.
type GetKitchenOverviewQuery struct {
	guard guard.ConstructorGuard
}

func NewGetKitchenOverviewQuery() GetKitchenOverviewQuery {
	return GetKitchenOverviewQuery{guard: guard.NewConstructorGuard()}
}

func (q GetKitchenOverviewQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenOverviewQueryIsNotConstructed)
}

// GetKitchenOverviewQueryResponse is one order in preparation.
type GetKitchenOverviewQueryResponse struct {
	StaffID    kernel.UUID
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	ItemCount  int
	CreatedAt  time.Time
}

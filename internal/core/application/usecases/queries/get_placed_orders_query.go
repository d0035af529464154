package queries

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrGetPlacedOrdersQueryIsNotConstructed = errors.New(
	"GetPlacedOrdersQuery must be created via NewGetPlacedOrdersQuery constructor",
)

// GetPlacedOrdersQuery lists the kitchen queue in the order it will be picked.
//
// Example:
//
//	handler := NewGetPlacedOrdersQueryHandler(readers)
//	queue, err := handler.Handle(ctx, NewGetPlacedOrdersQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders waiting\n", len(queue))
type GetPlacedOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPlacedOrdersQuery() GetPlacedOrdersQuery {
	return GetPlacedOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPlacedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPlacedOrdersQueryIsNotConstructed)
}

// GetPlacedOrdersQueryResponse is one queued order.
type GetPlacedOrdersQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	ItemCount  int
	CreatedAt  time.Time
}

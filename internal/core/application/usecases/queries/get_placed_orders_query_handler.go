package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
)

type GetPlacedOrdersQueryHandler struct {
	readers OrderReaderFactory
}

func NewGetPlacedOrdersQueryHandler(readers OrderReaderFactory) GetPlacedOrdersQueryHandler {
	return GetPlacedOrdersQueryHandler{readers: readers}
}

// Handle returns placed orders oldest first, the order pickNext serves them in.
func (h GetPlacedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPlacedOrdersQuery,
) ([]GetPlacedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	placed, err := h.readers.Create().OrderRepository().GetAllInStatus(ctx, order.Placed)
	if err != nil {
		return nil, err
	}

	queue := make([]GetPlacedOrdersQueryResponse, 0, len(placed))
	for _, o := range placed {
		queue = append(queue, GetPlacedOrdersQueryResponse{
			ID:         o.ID(),
			CustomerID: o.CustomerID(),
			ItemCount:  len(o.Items()),
			CreatedAt:  o.CreatedAt(),
		})
	}
	return queue, nil
}

package queries

import (
	"context"
)

type GetKitchenOverviewQueryHandler struct {
	index PreparationSnapshot
}

func NewGetKitchenOverviewQueryHandler(index PreparationSnapshot) GetKitchenOverviewQueryHandler {
	return GetKitchenOverviewQueryHandler{index: index}
}

// Handle returns one entry per tracked order, oldest first. Entries may lag the store
// until the next reconciliation.
func (h GetKitchenOverviewQueryHandler) Handle(
	_ context.Context,
	query GetKitchenOverviewQuery,
) ([]GetKitchenOverviewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := h.index.Snapshot()
	overview := make([]GetKitchenOverviewQueryResponse, 0, len(entries))
	for _, e := range entries {
		overview = append(overview, GetKitchenOverviewQueryResponse{
			StaffID:    e.StaffID,
			OrderID:    e.Order.ID(),
			CustomerID: e.Order.CustomerID(),
			ItemCount:  len(e.Order.Items()),
			CreatedAt:  e.Order.CreatedAt(),
		})
	}
	return overview, nil
}

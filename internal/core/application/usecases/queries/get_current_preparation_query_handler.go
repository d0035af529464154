package queries

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// ErrNothingInPreparation is returned when the staff member has no ongoing order.
var ErrNothingInPreparation = errors.New("nothing in preparation")

// GetCurrentPreparationQueryHandler answers from the preparation index and verifies the
// answer against the store. A tracked order the store reports as absent, no longer
// ongoing or prepared by someone else is dropped from the index. On a miss the store is
// searched and the index refilled under the kitchen lock, so an order served
// concurrently is never tracked again.
type GetCurrentPreparationQueryHandler struct {
	readers OrderReaderFactory
	kitchen sync.Locker
	index   PreparationIndex
}

func NewGetCurrentPreparationQueryHandler(
	readers OrderReaderFactory,
	kitchen sync.Locker,
	index PreparationIndex,
) GetCurrentPreparationQueryHandler {
	return GetCurrentPreparationQueryHandler{readers: readers, kitchen: kitchen, index: index}
}

func (h GetCurrentPreparationQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentPreparationQuery,
) (GetCurrentPreparationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCurrentPreparationQueryResponse{}, err
	}

	staffID := query.StaffID()

	if cached, ok := h.index.Current(staffID); ok {
		fresh, err := h.readers.Create().OrderRepository().Get(ctx, cached.ID())
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			h.index.Untrack(cached.ID())
		case err != nil:
			return GetCurrentPreparationQueryResponse{}, err
		case isPreparedBy(fresh, staffID):
			return toPreparationResponse(fresh), nil
		default:
			h.index.Untrack(cached.ID())
		}
	}

	h.kitchen.Lock()
	defer h.kitchen.Unlock()

	// the reader must be created under the lock to see orders served meanwhile
	ongoing, err := h.readers.Create().OrderRepository().GetAllInStatus(ctx, order.Ongoing)
	if err != nil {
		return GetCurrentPreparationQueryResponse{}, err
	}

	// ongoing is oldest first
	var current *order.Order
	for _, o := range ongoing {
		if !isPreparedBy(o, staffID) {
			continue
		}
		if err = h.index.Track(staffID, o); err != nil {
			return GetCurrentPreparationQueryResponse{}, err
		}
		if current == nil {
			current = o
		}
	}
	if current == nil {
		return GetCurrentPreparationQueryResponse{}, fmt.Errorf("%w for staff %s", ErrNothingInPreparation, staffID)
	}

	return toPreparationResponse(current), nil
}

func isPreparedBy(o *order.Order, staffID kernel.UUID) bool {
	return o.Status() == order.Ongoing && o.PreparedBy() != nil && o.PreparedBy().IsEqual(staffID)
}

func toPreparationResponse(o *order.Order) GetCurrentPreparationQueryResponse {
	return GetCurrentPreparationQueryResponse{
		OrderID:    o.ID(),
		CustomerID: o.CustomerID(),
		Items:      o.Items(),
		CreatedAt:  o.CreatedAt(),
	}
}

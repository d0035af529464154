package queries

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

var ErrGetCurrentPreparationQueryIsNotConstructed = errors.New(
	"GetCurrentPreparationQuery must be created via NewGetCurrentPreparationQuery constructor",
)

// GetCurrentPreparationQuery asks what a staff member is currently preparing.
type GetCurrentPreparationQuery struct { //nolint:recvcheck //using for validation
	staffID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCurrentPreparationQuery(staffID kernel.UUID) (GetCurrentPreparationQuery, error) {
	if err := staffID.Validate(); err != nil {
		return GetCurrentPreparationQuery{}, err
	}
	return GetCurrentPreparationQuery{staffID: staffID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCurrentPreparationQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentPreparationQueryIsNotConstructed)
}

func (q GetCurrentPreparationQuery) StaffID() kernel.UUID {
	return q.staffID
}

// GetCurrentPreparationQueryResponse describes the order on a staff member's bench.
type GetCurrentPreparationQueryResponse struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	Items      []order.LineItem
	CreatedAt  time.Time
}

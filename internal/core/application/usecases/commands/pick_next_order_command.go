package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrPickNextOrderCommandIsNotConstructed = errors.New(
	"PickNextOrderCommand must be created via NewPickNextOrderCommand constructor",
)

// PickNextOrderCommand represents a staff member asking for the next order to prepare.
type PickNextOrderCommand struct { //nolint:recvcheck //using for validation
	staffID kernel.UUID

	guard guard.ConstructorGuard
}

func NewPickNextOrderCommand(staffID kernel.UUID) (PickNextOrderCommand, error) {
	if err := staffID.Validate(); err != nil {
		return PickNextOrderCommand{}, err
	}

	return PickNextOrderCommand{
		staffID: staffID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c PickNextOrderCommand) Validate() error {
	return c.guard.Validate(ErrPickNextOrderCommandIsNotConstructed)
}

func (c PickNextOrderCommand) StaffID() kernel.UUID {
	return c.staffID
}

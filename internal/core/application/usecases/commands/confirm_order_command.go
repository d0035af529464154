package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand represents a customer confirming their cart.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	customer customer.Customer

	guard guard.ConstructorGuard
}

func NewConfirmOrderCommand(c customer.Customer) (ConfirmOrderCommand, error) {
	if err := c.Validate(); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return ConfirmOrderCommand{
		customer: c,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

func (c ConfirmOrderCommand) Customer() customer.Customer {
	return c.customer
}

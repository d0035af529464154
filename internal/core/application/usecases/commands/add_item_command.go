package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand represents a customer putting a pizza into their cart.
//
// Example:
//
//	item, _ := order.NewLineItem(pizzaID, "Hawaii", decimal.RequireFromString("12.89"), "ham", "pineapple")
//	cmd, err := NewAddItemCommand(currentCustomer, item)
//	if err != nil {
//	    return err
//	}
//	draft, err := handler.Handle(ctx, cmd)
type AddItemCommand struct { //nolint:recvcheck //using for validation
	customer customer.Customer
	item     order.LineItem

	guard guard.ConstructorGuard
}

// NewAddItemCommand validates that both the customer and the item were properly constructed.
func NewAddItemCommand(c customer.Customer, item order.LineItem) (AddItemCommand, error) {
	cmd := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(c),
		cmd.setItem(item),
	); err != nil {
		return AddItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

func (c AddItemCommand) Customer() customer.Customer {
	return c.customer
}

func (c AddItemCommand) Item() order.LineItem {
	return c.item
}

func (c *AddItemCommand) setCustomer(cust customer.Customer) error {
	if err := cust.Validate(); err != nil {
		return err
	}
	c.customer = cust
	return nil
}

func (c *AddItemCommand) setItem(item order.LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	c.item = item
	return nil
}

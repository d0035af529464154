package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a single pizza attached to an order: catalog id, name, price and the
// ordered list of topping names. It is immutable.
type LineItem struct { //nolint:recvcheck //using for validation
	pizzaID  kernel.UUID
	name     string
	price    decimal.Decimal
	toppings []string

	guard guard.ConstructorGuard
}

// NewLineItem validates and builds a LineItem. The price must be non-negative with at
// most two decimal places; topping names must not be blank.
//
//	item, err := order.NewLineItem(pizzaID, "Hawaii", decimal.RequireFromString("12.89"), "ham", "pineapple")
func NewLineItem(pizzaID kernel.UUID, name string, price decimal.Decimal, toppings ...string) (LineItem, error) {
	item := LineItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setPizzaID(pizzaID),
		item.setName(name),
		item.setPrice(price),
		item.setToppings(toppings),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

func (i LineItem) PizzaID() kernel.UUID {
	return i.pizzaID
}

func (i LineItem) Name() string {
	return i.name
}

func (i LineItem) Price() decimal.Decimal {
	return i.price
}

// Toppings returns a copy of the topping names in their original order.
func (i LineItem) Toppings() []string {
	return slices.Clone(i.toppings)
}

// HasTopping is an exact, case-sensitive match.
func (i LineItem) HasTopping(name string) bool {
	return slices.Contains(i.toppings, name)
}

func (i *LineItem) setPizzaID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.pizzaID = id
	return nil
}

func (i *LineItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *LineItem) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%s is negative", price))
	}
	if !price.Equal(price.Truncate(2)) {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%s has more than 2 decimal places", price))
	}
	i.price = price
	return nil
}

func (i *LineItem) setToppings(toppings []string) error {
	for idx, t := range toppings {
		if strings.TrimSpace(t) == "" {
			return errs.NewValueIsRequiredErrorWithCause("topping", fmt.Errorf("topping #%d is blank", idx))
		}
	}
	i.toppings = slices.Clone(toppings)
	return nil
}

package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderAlreadyHasID is returned by AssignID on an order that was already persisted.
	ErrOrderAlreadyHasID = errors.New("order already has an identifier")
)

// Order is the aggregate root of the pizzeria: a customer's cart from the first added
// pizza until it is served.
//
// Order follows these invariants:
//   - Must belong to a customer
//   - Has no identifier until first persisted; the store assigns it exactly once
//   - Line items are appended only while Draft and never change afterwards
//   - The preparer is set when the order is started and kept once served
//   - The amount is zero until the order is served
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	items      []LineItem
	status     Status
	amount     decimal.Decimal
	preparedBy *kernel.UUID
	createdAt  time.Time

	isConstructed bool
}

// NewOrder creates an empty Draft order for the customer. The identifier stays zero
// until the repository assigns one on Add.
//
//	o, err := order.NewOrder(customerID)
//	if err != nil {
//	    return err
//	}
//	err = o.AddItem(item)
func NewOrder(customerID kernel.UUID) (*Order, error) {
	o := &Order{
		status:        Draft,
		amount:        decimal.Zero,
		createdAt:     time.Now().UTC().Truncate(time.Microsecond),
		isConstructed: true,
	}

	if err := o.setCustomerID(customerID); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an Order from persisted state, validating it the same way the
// lifecycle methods would have. Repositories use it; application code should not.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	status Status,
	amount decimal.Decimal,
	preparedBy *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        status,
		amount:        amount,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		status.Validate(),
		status.ValidateCanHavePreparer(preparedBy != nil),
		validateAmount(status, amount),
	); err != nil {
		return nil, err
	}

	if preparedBy != nil {
		staff := *preparedBy
		o.preparedBy = &staff
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two persisted orders by identifier. Orders without an identifier are
// never equal to anything.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && !o.id.IsZero() && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// IsPersisted reports whether the store has assigned an identifier.
func (o *Order) IsPersisted() bool {
	return !o.id.IsZero()
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the line items in the order they were added.
func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

func (o *Order) Status() Status {
	return o.status
}

// Amount is zero until the order is served.
func (o *Order) Amount() decimal.Decimal {
	return o.amount
}

// PreparedBy returns the staff member preparing or having prepared the order, nil before
// it was started.
func (o *Order) PreparedBy() *kernel.UUID {
	return o.preparedBy
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AssignID is called by the repository on first persistence.
func (o *Order) AssignID(id kernel.UUID) error {
	if o.IsPersisted() {
		return fmt.Errorf("%w: %s", ErrOrderAlreadyHasID, o.id)
	}
	return o.setID(id)
}

// AddItem appends a line item to a Draft order.
func (o *Order) AddItem(item LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := o.status.ValidateCanAddItems(); err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// Place confirms a non-empty Draft order.
func (o *Order) Place() error {
	if len(o.items) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("items are invalid", errors.New("an empty order cannot be placed"))
	}

	newStatus, err := o.status.Place()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Start hands a Placed order to the staff member who will prepare it.
func (o *Order) Start(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.preparedBy = &staffID
	return nil
}

// Serve finalizes an Ongoing order with its computed amount.
func (o *Order) Serve(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid", fmt.Errorf("%s is negative", amount))
	}

	newStatus, err := o.status.Serve()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.amount = amount
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = slices.Clone(items)
	return nil
}

func validateAmount(status Status, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid", fmt.Errorf("%s is negative", amount))
	}
	if status != Served && !amount.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s order cannot have amount %s", status, amount),
		)
	}
	return nil
}

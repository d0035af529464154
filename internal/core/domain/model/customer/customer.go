package customer

import (
	"errors"
	"fmt"
	"net/mail"
	"slices"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Role is a permission granted to a pizzeria user.
type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RolePizzaMaker Role = "PIZZA_MAKER"
	RoleAdmin      Role = "ADMIN"
)

// ParseRole maps the textual role names used by the identity collaborator.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleCustomer, RolePizzaMaker, RoleAdmin:
		return r, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
}

// Customer is a read-only identity: id, name, email and role set.
type Customer struct { //nolint:recvcheck //using for validation
	id    kernel.UUID
	name  string
	email string
	roles []Role

	guard guard.ConstructorGuard
}

// NewCustomer validates and builds a Customer. Duplicate roles are collapsed.
func NewCustomer(id kernel.UUID, name, email string, roles ...Role) (Customer, error) {
	c := Customer{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return Customer{}, err
	}

	for _, r := range roles {
		if !slices.Contains(c.roles, r) {
			c.roles = append(c.roles, r)
		}
	}

	return c, nil
}

func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c Customer) ID() kernel.UUID {
	return c.id
}

func (c Customer) Name() string {
	return c.name
}

func (c Customer) Email() string {
	return c.email
}

// Roles returns a copy of the role set.
func (c Customer) Roles() []Role {
	return slices.Clone(c.roles)
}

func (c Customer) HasRole(role Role) bool {
	return slices.Contains(c.roles, role)
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

// setEmail accepts an empty email; when present it must be a bare address.
func (c *Customer) setEmail(email string) error {
	if email == "" {
		return nil
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	c.email = email
	return nil
}

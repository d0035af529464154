package http

import (
	"net/http"
	"strings"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// Identity headers set by the upstream authentication proxy.
const (
	HeaderCustomerID    = "X-Customer-ID"
	HeaderCustomerName  = "X-Customer-Name"
	HeaderCustomerEmail = "X-Customer-Email"
	HeaderCustomerRoles = "X-Customer-Roles"
)

// IdentityResolver builds the calling customer from trusted request headers.
// Roles are comma separated; without any the caller is a plain customer.
type IdentityResolver struct{}

func NewIdentityResolver() IdentityResolver {
	return IdentityResolver{}
}

func (IdentityResolver) Resolve(header http.Header) (customer.Customer, error) {
	rawID := header.Get(HeaderCustomerID)
	if rawID == "" {
		return customer.Customer{}, errs.NewValueIsRequiredError(HeaderCustomerID)
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return customer.Customer{}, err
	}

	roles := []customer.Role{customer.RoleCustomer}
	if rawRoles := header.Get(HeaderCustomerRoles); strings.TrimSpace(rawRoles) != "" {
		roles = roles[:0]
		for _, name := range strings.Split(rawRoles, ",") {
			role, roleErr := customer.ParseRole(name)
			if roleErr != nil {
				return customer.Customer{}, roleErr
			}
			roles = append(roles, role)
		}
	}

	return customer.NewCustomer(id, header.Get(HeaderCustomerName), header.Get(HeaderCustomerEmail), roles...)
}

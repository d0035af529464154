package order

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Draft ──> Placed ──> Ongoing ──> Served
//
// No transition goes backwards or skips a state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the customer's cart. Items may still be added.
	Draft

	// Placed is a confirmed order waiting for kitchen staff.
	Placed

	// Ongoing is an order being prepared by a staff member.
	Ongoing

	// Served is the final state: priced and handed over.
	Served
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Draft:   "Draft",
		Placed:  "Placed",
		Ongoing: "Ongoing",
		Served:  "Served",
	}
}

// Validate checks if the Status value is one of Draft, Placed, Ongoing, Served.
// Used on values coming from persistence.
func (s Status) Validate() error {
	if s < Draft || s > Served {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether no further transition is possible.
func (s Status) IsFinal() bool {
	return s == Served
}

// ValidateCanHavePreparer validates the consistency between the status and the
// presence of a preparing staff member.
//
// Business Rules:
//   - Draft and Placed orders must not have a preparer
//   - Ongoing and Served orders must have a preparer
func (s Status) ValidateCanHavePreparer(preparer bool) error {
	if preparer && s != Ongoing && s != Served {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a preparer", s.String()),
		)
	}

	if !preparer && (s == Ongoing || s == Served) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no preparer", s.String()),
		)
	}

	return nil
}

// ValidateCanAddItems reports whether line items may still be appended.
func (s Status) ValidateCanAddItems() error {
	if s != Draft {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to add items", s.String()),
		)
	}
	return nil
}

// Place transitions Draft -> Placed.
func (s Status) Place() (Status, error) {
	return s.next(Draft, Placed, "place")
}

// Start transitions Placed -> Ongoing.
func (s Status) Start() (Status, error) {
	return s.next(Placed, Ongoing, "start")
}

// Serve transitions Ongoing -> Served.
func (s Status) Serve() (Status, error) {
	return s.next(Ongoing, Served, "serve")
}

func (s Status) next(from, to Status, action string) (Status, error) {
	if s != from {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to %s", s.String(), action),
		)
	}
	return to, nil
}

package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsRequired    = errors.New("value is required")
	ErrInvariantViolation = errors.New("invariant violation")
	ErrTooManyObjects     = errors.New("too many objects")
)

// ObjectNotFoundError reports a missing object identified by ParamName and ID.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %v", ErrObjectNotFound, e.ParamName, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvariantViolationError reports persisted state that breaks a uniqueness rule:
// Count objects of kind Subject were found for Owner where at most one is allowed.
type InvariantViolationError struct {
	Subject string
	Owner   any
	Count   int
}

func NewInvariantViolationError(subject string, owner any, count int) *InvariantViolationError {
	return &InvariantViolationError{Subject: subject, Owner: owner, Count: count}
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("%s: %d %s found for %v, expected at most one",
		ErrInvariantViolation, e.Count, e.Subject, sanitize(e.Owner))
}

func (e *InvariantViolationError) Unwrap() error {
	return ErrInvariantViolation
}

// TooManyObjectsError is raised when a lookup that must match exactly one object
// matches several. It is both ErrTooManyObjects and ErrInvariantViolation.
type TooManyObjectsError struct {
	Subject string
	Owner   any
	Count   int
}

func NewTooManyObjectsError(subject string, owner any, count int) *TooManyObjectsError {
	return &TooManyObjectsError{Subject: subject, Owner: owner, Count: count}
}

func (e *TooManyObjectsError) Error() string {
	return fmt.Sprintf("%s: %d %s found for %v, expected exactly one",
		ErrTooManyObjects, e.Count, e.Subject, sanitize(e.Owner))
}

func (e *TooManyObjectsError) Unwrap() []error {
	return []error{ErrTooManyObjects, ErrInvariantViolation}
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// sanitize keeps identifiers supplied by callers on a single log line.
func sanitize(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(s)
}

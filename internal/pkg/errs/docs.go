// Package errs provides the typed error kinds shared by the pizzeria core.
//
// Every kind follows the same shape:
//   - a sentinel error variable (e.g., ErrObjectNotFound) for errors.Is checks
//   - a struct carrying the details (e.g., ObjectNotFoundError) for errors.As checks
//   - constructors with and without an underlying cause
//   - Unwrap returning the sentinel
//
// Kinds:
//   - ObjectNotFoundError: a looked-up object does not exist
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsRequiredError: a mandatory value is missing
//   - InvariantViolationError: persisted state breaks a uniqueness rule (store corruption
//     or a missed guard upstream); surfaced to the caller, never auto-corrected
//   - TooManyObjectsError: a specialization of InvariantViolationError raised when more
//     objects than allowed match a lookup
package errs

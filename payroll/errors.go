/*
errors.go - Centralized error types for the payroll engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Calling layers (api, store) wrap these errors with transport context.

ERROR CATEGORIES:
  1. Validation errors - Bad input rejected before any calculation
  2. Lookup errors - Referenced employee does not exist

  There are no calculation-internal errors: the statutory formulas are total
  for valid non-negative input. Nothing is retried, logged, or suppressed
  inside the engine.

USAGE:
  if errors.Is(err, payroll.ErrUnknownCategory) {
      // reject with 400
  }

  var verr *payroll.ValidationError
  if errors.As(err, &verr) {
      log.Println(verr.Field, verr.Message)
  }
*/
package payroll

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrUnknownCategory is returned by the employee factory when the category
	// label matches neither REGULAR nor CONTRACTUAL (case-insensitive).
	ErrUnknownCategory = errors.New("unknown employee category")

	// ErrInvalidInput is the root of all validation failures. Structured
	// ValidationError values unwrap to it.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmployeeNotFound is returned by lookup collaborators when no record
	// exists for the given employee id.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrPayslipNotFound is returned by the payslip store on a missing record.
	ErrPayslipNotFound = errors.New("payslip not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ValidationError reports a rejected field before any calculation runs.
// A computation that returns a ValidationError has produced no partial result.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func invalidf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrUnknownCategory)
}

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound) ||
		errors.Is(err, ErrPayslipNotFound)
}

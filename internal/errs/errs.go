// Package errs defines the error taxonomy shared by the registry, the
// posting engine, and the HTTP layer. Every failure surfaced to a caller is
// one of these types; handlers map them to status codes with errors.As.
package errs

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError reports a malformed or out-of-range field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validationf builds a ValidationError for a field.
func Validationf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports that a referenced id or code does not exist.
type NotFoundError struct {
	Kind string // "account", "invoice", ...
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

// ConflictError reports a uniqueness violation, e.g. a duplicate account
// code on creation.
type ConflictError struct {
	Kind string
	Key  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Kind, e.Key)
}

// ImbalancedBatchError reports that a batch's debit and credit totals
// differ. The batch is rejected as a unit; nothing is appended.
type ImbalancedBatchError struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

func (e *ImbalancedBatchError) Error() string {
	return fmt.Sprintf("batch does not balance: debits (%s) != credits (%s)",
		e.Debit.StringFixed(2), e.Credit.StringFixed(2))
}

// ReferentialIntegrityError reports an operation that would leave journal
// lines pointing at a nonexistent account code.
type ReferentialIntegrityError struct {
	Code  string
	Lines int
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("account code %q is referenced by %d journal line(s)", e.Code, e.Lines)
}

package journal

import (
	"github.com/shopspring/decimal"

	"github.com/saldo-dev/saldo/internal/accounts"
	"github.com/saldo-dev/saldo/internal/errs"
	"github.com/saldo-dev/saldo/internal/model"
)

// cents is used to check amounts carry at most 2 decimal places.
var cents = decimal.NewFromInt(100)

// ValidateBatch enforces the posting invariants on a batch of lines:
//
//  1. every account_code resolves to an existing account,
//  2. amounts are non-negative and each line carries exactly one non-zero
//     side,
//  3. amounts have at most 2 decimal places,
//  4. sum(debit) == sum(credit) across the batch.
//
// The first violated invariant is returned; the batch must be rejected as a
// unit on any error.
func ValidateBatch(lines []model.JournalLine, lookup accounts.Lookup) error {
	if len(lines) == 0 {
		return errs.Validationf("lines", "batch must contain at least one line")
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for i, line := range lines {
		if err := validateLine(i, line, lookup); err != nil {
			return err
		}
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}

	if !totalDebit.Equal(totalCredit) {
		return &errs.ImbalancedBatchError{Debit: totalDebit, Credit: totalCredit}
	}
	return nil
}

func validateLine(i int, line model.JournalLine, lookup accounts.Lookup) error {
	if line.Date.IsZero() {
		return errs.Validationf("date", "line %d: date is required", i)
	}
	if !lookup.Exists(line.AccountCode) {
		return errs.Validationf("account_code", "line %d: unknown account code %q", i, line.AccountCode)
	}
	if line.Debit.IsNegative() {
		return errs.Validationf("debit", "line %d: debit must not be negative, got %s", i, line.Debit)
	}
	if line.Credit.IsNegative() {
		return errs.Validationf("credit", "line %d: credit must not be negative, got %s", i, line.Credit)
	}

	hasDebit := !line.Debit.IsZero()
	hasCredit := !line.Credit.IsZero()
	if hasDebit == hasCredit {
		return errs.Validationf("debit", "line %d: exactly one of debit or credit must be non-zero", i)
	}

	amt := line.Amount()
	if !amt.Mul(cents).Equal(amt.Mul(cents).Floor()) {
		return errs.Validationf("amount", "line %d: %s has more than 2 decimal places", i, amt)
	}
	return nil
}

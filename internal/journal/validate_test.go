package journal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saldo-dev/saldo/internal/errs"
	"github.com/saldo-dev/saldo/internal/model"
)

// mockLookup implements accounts.Lookup for testing.
type mockLookup struct {
	codes map[string]bool
}

func newMockLookup(codes ...string) *mockLookup {
	m := &mockLookup{codes: make(map[string]bool)}
	for _, c := range codes {
		m.codes[c] = true
	}
	return m
}

func (m *mockLookup) Exists(code string) bool {
	return m.codes[code]
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func pairLines(debitCode, creditCode, amount string) []model.JournalLine {
	return []model.JournalLine{
		{
			Date:        date(2024, 1, 5),
			AccountCode: debitCode,
			Description: "test",
			Debit:       dec(amount),
			Credit:      decimal.Zero,
			Reference:   "T-1",
		},
		{
			Date:        date(2024, 1, 5),
			AccountCode: creditCode,
			Description: "test",
			Debit:       decimal.Zero,
			Credit:      dec(amount),
			Reference:   "T-1",
		},
	}
}

var defaultLookup = newMockLookup("1000", "4000", "5000")

func TestValidateBatch_Balanced(t *testing.T) {
	err := ValidateBatch(pairLines("1000", "4000", "500.00"), defaultLookup)
	assert.NoError(t, err)
}

func TestValidateBatch_Empty(t *testing.T) {
	err := ValidateBatch(nil, defaultLookup)
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestValidateBatch_Imbalanced(t *testing.T) {
	lines := []model.JournalLine{{
		Date:        date(2024, 1, 5),
		AccountCode: "1000",
		Debit:       dec("100.00"),
	}}
	err := ValidateBatch(lines, defaultLookup)
	var ierr *errs.ImbalancedBatchError
	require.ErrorAs(t, err, &ierr)
	assert.True(t, ierr.Debit.Equal(dec("100.00")))
	assert.True(t, ierr.Credit.IsZero())
}

func TestValidateBatch_UnknownCode(t *testing.T) {
	err := ValidateBatch(pairLines("9999", "4000", "50.00"), defaultLookup)
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "account_code", verr.Field)
	assert.Contains(t, verr.Message, "9999")
}

func TestValidateBatch_BothSides(t *testing.T) {
	lines := []model.JournalLine{
		{Date: date(2024, 1, 5), AccountCode: "1000", Debit: dec("10.00"), Credit: dec("10.00")},
		{Date: date(2024, 1, 5), AccountCode: "4000"},
	}
	err := ValidateBatch(lines, defaultLookup)
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "exactly one")
}

func TestValidateBatch_NeitherSide(t *testing.T) {
	lines := []model.JournalLine{
		{Date: date(2024, 1, 5), AccountCode: "1000"},
	}
	err := ValidateBatch(lines, defaultLookup)
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestValidateBatch_NegativeAmount(t *testing.T) {
	lines := []model.JournalLine{
		{Date: date(2024, 1, 5), AccountCode: "1000", Debit: dec("-5.00")},
		{Date: date(2024, 1, 5), AccountCode: "4000", Credit: dec("-5.00")},
	}
	err := ValidateBatch(lines, defaultLookup)
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "debit", verr.Field)
}

func TestValidateBatch_TooManyDecimals(t *testing.T) {
	err := ValidateBatch(pairLines("1000", "4000", "10.005"), defaultLookup)
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "amount", verr.Field)
}

func TestValidateBatch_MissingDate(t *testing.T) {
	lines := []model.JournalLine{
		{AccountCode: "1000", Debit: dec("10.00")},
		{AccountCode: "4000", Credit: dec("10.00")},
	}
	err := ValidateBatch(lines, defaultLookup)
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "date", verr.Field)
}

func TestValidateBatch_MultiLine(t *testing.T) {
	// One debit split over two credits still balances.
	lines := []model.JournalLine{
		{Date: date(2024, 1, 5), AccountCode: "1000", Debit: dec("75.00")},
		{Date: date(2024, 1, 5), AccountCode: "4000", Credit: dec("50.00")},
		{Date: date(2024, 1, 5), AccountCode: "5000", Credit: dec("25.00")},
	}
	assert.NoError(t, ValidateBatch(lines, defaultLookup))
}

package books

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saldo-dev/saldo/internal/accounts"
	"github.com/saldo-dev/saldo/internal/errs"
	"github.com/saldo-dev/saldo/internal/id"
	"github.com/saldo-dev/saldo/internal/journal"
	"github.com/saldo-dev/saldo/internal/model"
)

func newTestBooks(t *testing.T) (*Service, *journal.Store) {
	t.Helper()
	store := journal.NewStore()
	registry := accounts.NewRegistry(store)
	require.NoError(t, registry.SeedDefaults())
	poster := journal.NewService(registry, store)
	return NewService(registry, poster), store
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddInvoice_DefaultsToReceivableAndRevenue(t *testing.T) {
	svc, store := newTestBooks(t)

	inv, err := svc.AddInvoice(model.Invoice{
		Date:          date(2024, 1, 5),
		InvoiceNumber: "INV-100",
		Customer:      "Acme",
		Amount:        dec("500.00"),
	}, "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, inv.ID)

	all := store.All()
	require.Len(t, all, 2)
	assert.Equal(t, "1100", all[0].AccountCode, "debit defaults to accounts receivable")
	assert.True(t, all[0].Debit.Equal(dec("500.00")))
	assert.Equal(t, "4000", all[1].AccountCode, "credit defaults to sales revenue")
	assert.Equal(t, "INV-100", all[0].Reference)
	assert.Equal(t, "Invoice INV-100", all[0].Description)
}

func TestAddInvoice_Overrides(t *testing.T) {
	svc, store := newTestBooks(t)

	_, err := svc.AddInvoice(model.Invoice{
		Date:          date(2024, 1, 5),
		InvoiceNumber: "INV-101",
		Amount:        dec("50.00"),
	}, "1000", "4000")
	require.NoError(t, err)

	all := store.All()
	require.Len(t, all, 2)
	assert.Equal(t, "1000", all[0].AccountCode)
}

func TestAddInvoice_MissingNumber(t *testing.T) {
	svc, store := newTestBooks(t)

	_, err := svc.AddInvoice(model.Invoice{
		Date:   date(2024, 1, 5),
		Amount: dec("50.00"),
	}, "", "")
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "invoice_number", verr.Field)
	assert.Zero(t, store.Len())
	assert.Empty(t, svc.ListInvoices())
}

func TestAddInvoice_UnknownOverrideLeavesNoRecord(t *testing.T) {
	svc, store := newTestBooks(t)

	_, err := svc.AddInvoice(model.Invoice{
		Date:          date(2024, 1, 5),
		InvoiceNumber: "INV-102",
		Amount:        dec("50.00"),
	}, "9999", "")
	require.Error(t, err)
	assert.Zero(t, store.Len())
	assert.Empty(t, svc.ListInvoices(), "no record without a posting")
}

func TestAddExpense_DefaultsAndReference(t *testing.T) {
	svc, store := newTestBooks(t)

	exp, err := svc.AddExpense(model.Expense{
		Date:        date(2024, 1, 9),
		Description: "Office rent",
		Amount:      dec("200.00"),
	}, "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, exp.ID)

	all := store.All()
	require.Len(t, all, 2)
	assert.Equal(t, "5000", all[0].AccountCode, "debit defaults to operating expense")
	assert.True(t, all[0].Debit.Equal(dec("200.00")))
	assert.Equal(t, "1000", all[1].AccountCode, "credit defaults to cash")
	assert.Equal(t, "EXP-001", all[0].Reference)

	// Second expense gets the next sequence.
	_, err = svc.AddExpense(model.Expense{
		Date:        date(2024, 1, 10),
		Description: "Stamps",
		Amount:      dec("5.00"),
	}, "", "")
	require.NoError(t, err)
	assert.Equal(t, "EXP-002", store.All()[2].Reference)
}

func TestAddExpense_FailedPostingKeepsSequence(t *testing.T) {
	svc, store := newTestBooks(t)

	// Unknown debit override: the posting is rejected.
	_, err := svc.AddExpense(model.Expense{
		Date:        date(2024, 1, 9),
		Description: "Materials",
		Amount:      dec("80.00"),
	}, "9999", "")
	require.Error(t, err)
	assert.Zero(t, store.Len())
	assert.Empty(t, svc.ListExpenses())

	// The next successful expense still gets EXP-001.
	_, err = svc.AddExpense(model.Expense{
		Date:        date(2024, 1, 10),
		Description: "Stamps",
		Amount:      dec("5.00"),
	}, "", "")
	require.NoError(t, err)
	assert.Equal(t, "EXP-001", store.All()[0].Reference)
}

func TestAddExpense_ConcurrentSequenceOrder(t *testing.T) {
	svc, store := newTestBooks(t)

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := svc.AddExpense(model.Expense{
				Date:        date(2024, 1, 9),
				Description: "Supplies",
				Amount:      dec("10.00"),
			}, "", "")
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, <-done)
	}

	// References appear in the journal in sequence order.
	all := store.All()
	require.Len(t, all, 16)
	for i := 0; i < 8; i++ {
		want := id.FormatReference("EXP", i+1)
		assert.Equal(t, want, all[2*i].Reference)
		assert.Equal(t, want, all[2*i+1].Reference)
	}
	assert.Len(t, svc.ListExpenses(), 8)
}

func TestAddExpense_NonPositiveAmount(t *testing.T) {
	svc, store := newTestBooks(t)

	_, err := svc.AddExpense(model.Expense{
		Date:        date(2024, 1, 9),
		Description: "Refund",
		Amount:      dec("-10.00"),
	}, "", "")
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "amount", verr.Field)
	assert.Zero(t, store.Len())
}

func TestDeleteInvoice(t *testing.T) {
	svc, store := newTestBooks(t)

	inv, err := svc.AddInvoice(model.Invoice{
		Date:          date(2024, 1, 5),
		InvoiceNumber: "INV-100",
		Amount:        dec("500.00"),
	}, "", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteInvoice(inv.ID))
	assert.Empty(t, svc.ListInvoices())
	assert.Equal(t, 2, store.Len(), "posted journal lines are immutable")

	err = svc.DeleteInvoice(inv.ID)
	var nferr *errs.NotFoundError
	require.ErrorAs(t, err, &nferr)
}

func TestDeleteExpense_NotFound(t *testing.T) {
	svc, _ := newTestBooks(t)

	err := svc.DeleteExpense("nope")
	var nferr *errs.NotFoundError
	require.ErrorAs(t, err, &nferr)
}

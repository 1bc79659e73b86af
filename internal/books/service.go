// Package books keeps invoice and expense records and turns each one into
// a balanced paired posting through the posting engine.
package books

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/saldo-dev/saldo/internal/accounts"
	"github.com/saldo-dev/saldo/internal/errs"
	"github.com/saldo-dev/saldo/internal/id"
	"github.com/saldo-dev/saldo/internal/journal"
	"github.com/saldo-dev/saldo/internal/model"
)

// expensePrefix is the reference prefix for expense postings.
const expensePrefix = "EXP"

// Service owns invoice and expense records. Adding a record posts the
// matching journal pair; failure to post means the record is not kept.
type Service struct {
	mu       sync.RWMutex
	invoices []model.Invoice
	expenses []model.Expense
	expSeq   int

	registry *accounts.Registry
	poster   *journal.Service
}

// NewService creates a books Service.
func NewService(registry *accounts.Registry, poster *journal.Service) *Service {
	return &Service{registry: registry, poster: poster}
}

// ListInvoices returns all invoices in insertion order.
func (s *Service) ListInvoices() []model.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Invoice, len(s.invoices))
	copy(out, s.invoices)
	return out
}

// ListExpenses returns all expenses in insertion order.
func (s *Service) ListExpenses() []model.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// AddInvoice records an invoice and posts debit receivable / credit
// revenue under the invoice number. Overrides pick non-default accounts;
// empty strings select the defaults (first asset account, preferring code
// 1100, and first revenue account).
func (s *Service) AddInvoice(inv model.Invoice, debitOverride, creditOverride string) (model.Invoice, error) {
	if err := validateCommon(inv.Date, inv.Amount); err != nil {
		return model.Invoice{}, err
	}
	if inv.InvoiceNumber == "" {
		return model.Invoice{}, errs.Validationf("invoice_number", "must not be empty")
	}

	debitCode := debitOverride
	if debitCode == "" {
		a, ok := s.registry.FirstOfType(model.AccountTypeAsset, "1100")
		if !ok {
			return model.Invoice{}, errs.Validationf("debit_account", "no asset account available")
		}
		debitCode = a.Code
	}
	creditCode := creditOverride
	if creditCode == "" {
		a, ok := s.registry.FirstOfType(model.AccountTypeRevenue, "")
		if !ok {
			return model.Invoice{}, errs.Validationf("credit_account", "no revenue account available")
		}
		creditCode = a.Code
	}

	inv.ID = uuid.NewString()
	_, err := s.poster.PostPair(inv.Date, "Invoice "+inv.InvoiceNumber,
		journal.Side{AccountCode: debitCode, Amount: inv.Amount},
		journal.Side{AccountCode: creditCode, Amount: inv.Amount},
		inv.InvoiceNumber,
	)
	if err != nil {
		return model.Invoice{}, err
	}

	s.mu.Lock()
	s.invoices = append(s.invoices, inv)
	s.mu.Unlock()
	return inv, nil
}

// AddExpense records an expense and posts debit expense / credit cash with
// a generated EXP-NNN reference.
func (s *Service) AddExpense(exp model.Expense, debitOverride, creditOverride string) (model.Expense, error) {
	if err := validateCommon(exp.Date, exp.Amount); err != nil {
		return model.Expense{}, err
	}

	debitCode := debitOverride
	if debitCode == "" {
		a, ok := s.registry.FirstOfType(model.AccountTypeExpense, "")
		if !ok {
			return model.Expense{}, errs.Validationf("debit_account", "no expense account available")
		}
		debitCode = a.Code
	}
	creditCode := creditOverride
	if creditCode == "" {
		a, ok := s.registry.FirstOfType(model.AccountTypeAsset, "")
		if !ok {
			return model.Expense{}, errs.Validationf("credit_account", "no asset account available")
		}
		creditCode = a.Code
	}

	// The lock is held across the posting so references land in the
	// journal in sequence order, and the sequence only advances when the
	// posting succeeds; a rejected expense does not burn its number.
	s.mu.Lock()
	defer s.mu.Unlock()

	ref := id.FormatReference(expensePrefix, s.expSeq+1)
	exp.ID = uuid.NewString()
	_, err := s.poster.PostPair(exp.Date, exp.Description,
		journal.Side{AccountCode: debitCode, Amount: exp.Amount},
		journal.Side{AccountCode: creditCode, Amount: exp.Amount},
		ref,
	)
	if err != nil {
		return model.Expense{}, err
	}

	s.expSeq++
	s.expenses = append(s.expenses, exp)
	return exp, nil
}

// DeleteInvoice removes an invoice record. Journal lines already posted
// under it are immutable and stay.
func (s *Service) DeleteInvoice(invID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, inv := range s.invoices {
		if inv.ID == invID {
			s.invoices = append(s.invoices[:i], s.invoices[i+1:]...)
			return nil
		}
	}
	return &errs.NotFoundError{Kind: "invoice", Key: invID}
}

// DeleteExpense removes an expense record, leaving its journal lines.
func (s *Service) DeleteExpense(expID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, exp := range s.expenses {
		if exp.ID == expID {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return nil
		}
	}
	return &errs.NotFoundError{Kind: "expense", Key: expID}
}

func validateCommon(date time.Time, amount decimal.Decimal) error {
	if date.IsZero() {
		return errs.Validationf("date", "is required")
	}
	if !amount.GreaterThan(decimal.Zero) {
		return errs.Validationf("amount", "must be greater than zero, got %s", amount)
	}
	return nil
}

package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a sales record. Adding one triggers a paired posting
// (debit receivable, credit revenue) under the invoice number.
type Invoice struct {
	ID            string
	Date          time.Time
	InvoiceNumber string
	Customer      string
	Amount        decimal.Decimal
}

// Expense is a purchase record. Adding one triggers a paired posting
// (debit expense, credit cash).
type Expense struct {
	ID          string
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

type invoiceJSON struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	InvoiceNumber string          `json:"invoice_number"`
	Customer      string          `json:"customer"`
	Amount        decimal.Decimal `json:"amount"`
}

func (i Invoice) MarshalJSON() ([]byte, error) {
	return json.Marshal(invoiceJSON{
		ID:            i.ID,
		Date:          i.Date.Format(DateFormat),
		InvoiceNumber: i.InvoiceNumber,
		Customer:      i.Customer,
		Amount:        i.Amount,
	})
}

func (i *Invoice) UnmarshalJSON(data []byte) error {
	var raw invoiceJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	date, err := time.Parse(DateFormat, raw.Date)
	if err != nil {
		return err
	}
	*i = Invoice{
		ID:            raw.ID,
		Date:          date,
		InvoiceNumber: raw.InvoiceNumber,
		Customer:      raw.Customer,
		Amount:        raw.Amount,
	}
	return nil
}

type expenseJSON struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

func (e Expense) MarshalJSON() ([]byte, error) {
	return json.Marshal(expenseJSON{
		ID:          e.ID,
		Date:        e.Date.Format(DateFormat),
		Description: e.Description,
		Amount:      e.Amount,
	})
}

func (e *Expense) UnmarshalJSON(data []byte) error {
	var raw expenseJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	date, err := time.Parse(DateFormat, raw.Date)
	if err != nil {
		return err
	}
	*e = Expense{
		ID:          raw.ID,
		Date:        date,
		Description: raw.Description,
		Amount:      raw.Amount,
	}
	return nil
}

// ProposedEntry is an externally produced journal entry proposal, for
// example from an AI generator. It is untrusted input: nothing here is
// assumed to reference a real account until the validator has checked it.
type ProposedEntry struct {
	Date              string          `json:"date"`
	Description       string          `json:"description"`
	DebitAccountCode  string          `json:"debit_account_code"`
	CreditAccountCode string          `json:"credit_account_code"`
	Amount            decimal.Decimal `json:"amount"`
	Reference         string          `json:"reference"`
}

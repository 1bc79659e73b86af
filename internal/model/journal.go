package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the calendar date layout used on the wire and in exports.
const DateFormat = "2006-01-02"

// JournalLine is a single immutable row in the journal. A line carries
// exactly one non-zero side: it is either a debit line or a credit line.
type JournalLine struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"-"`
	AccountCode string          `json:"account_code"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Reference   string          `json:"reference"`
}

// IsDebit reports whether the line carries its amount on the debit side.
func (l JournalLine) IsDebit() bool {
	return !l.Debit.IsZero()
}

// Amount returns the non-zero side of the line.
func (l JournalLine) Amount() decimal.Decimal {
	if l.IsDebit() {
		return l.Debit
	}
	return l.Credit
}

// journalLineJSON mirrors JournalLine with the date as a plain
// "YYYY-MM-DD" string, matching the export format.
type journalLineJSON struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	AccountCode string          `json:"account_code"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Reference   string          `json:"reference"`
}

// MarshalJSON renders Date as "YYYY-MM-DD".
func (l JournalLine) MarshalJSON() ([]byte, error) {
	return json.Marshal(journalLineJSON{
		ID:          l.ID,
		Date:        l.Date.Format(DateFormat),
		AccountCode: l.AccountCode,
		Description: l.Description,
		Debit:       l.Debit,
		Credit:      l.Credit,
		Reference:   l.Reference,
	})
}

// UnmarshalJSON parses Date from "YYYY-MM-DD".
func (l *JournalLine) UnmarshalJSON(data []byte) error {
	var raw journalLineJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	date, err := time.Parse(DateFormat, raw.Date)
	if err != nil {
		return err
	}
	*l = JournalLine{
		ID:          raw.ID,
		Date:        date,
		AccountCode: raw.AccountCode,
		Description: raw.Description,
		Debit:       raw.Debit,
		Credit:      raw.Credit,
		Reference:   raw.Reference,
	}
	return nil
}

// JournalBatch is a set of lines posted together under one reference.
// The posting engine guarantees sum(debit) == sum(credit) across the batch.
type JournalBatch struct {
	Reference string        `json:"reference"`
	Lines     []JournalLine `json:"lines"`
}

// TotalDebit sums the debit side of the batch.
func (b JournalBatch) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range b.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit sums the credit side of the batch.
func (b JournalBatch) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range b.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

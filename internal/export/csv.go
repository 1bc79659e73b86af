// Package export renders the chart of accounts and the journal as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/saldo-dev/saldo/internal/model"
)

const (
	acctFields  = 4
	acctColID   = 0
	acctColCode = 1
	acctColName = 2
	acctColType = 3
)

// WriteAccounts writes the chart of accounts as CSV, header included.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"id", "code", "name", "type"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, acct := range accounts {
		if err := cw.Write(marshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func marshalAccount(acct model.Account) []string {
	row := make([]string, acctFields)
	row[acctColID] = acct.ID
	row[acctColCode] = acct.Code
	row[acctColName] = acct.Name
	row[acctColType] = string(acct.Type)
	return row
}

const (
	lineFields  = 7
	lineColID   = 0
	lineColDate = 1
	lineColCode = 2
	lineColDesc = 3
	lineColDeb  = 4
	lineColCred = 5
	lineColRef  = 6
)

// lineHeader is the CSV header for journal exports.
var lineHeader = []string{"id", "date", "account_code", "description", "debit", "credit", "reference"}

// WriteLines writes journal lines as CSV, header included.
func WriteLines(w io.Writer, lines []model.JournalLine) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(lineHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, line := range lines {
		if err := cw.Write(marshalLine(line)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func marshalLine(line model.JournalLine) []string {
	row := make([]string, lineFields)
	row[lineColID] = line.ID
	row[lineColDate] = line.Date.Format(model.DateFormat)
	row[lineColCode] = line.AccountCode
	row[lineColDesc] = line.Description
	if !line.Debit.IsZero() {
		row[lineColDeb] = line.Debit.StringFixed(2)
	}
	if !line.Credit.IsZero() {
		row[lineColCred] = line.Credit.StringFixed(2)
	}
	row[lineColRef] = line.Reference
	return row
}

package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/saldo-dev/saldo/internal/model"
)

// LedgerLine is one journal line with the account's running balance
// (debit - credit) after the line.
type LedgerLine struct {
	Line    model.JournalLine `json:"line"`
	Balance decimal.Decimal   `json:"balance"`
}

// LedgerAccount is the general ledger section for one account.
type LedgerAccount struct {
	Code    string            `json:"code"`
	Name    string            `json:"name"`
	Type    model.AccountType `json:"type"`
	Lines   []LedgerLine      `json:"lines"`
	Balance decimal.Decimal   `json:"balance"`
}

// ComputeGeneralLedger lists every account's lines in append order with a
// running balance. Accounts with no activity are omitted; unclassified
// codes appear with an empty name and type.
func ComputeGeneralLedger(lines []model.JournalLine, accts []model.Account) []LedgerAccount {
	acctByCode := make(map[string]model.Account, len(accts))
	for _, a := range accts {
		acctByCode[a.Code] = a
	}

	byCode := make(map[string]*LedgerAccount)
	for _, l := range lines {
		la, ok := byCode[l.AccountCode]
		if !ok {
			la = &LedgerAccount{Code: l.AccountCode, Balance: decimal.Zero}
			if a, known := acctByCode[l.AccountCode]; known {
				la.Name = a.Name
				la.Type = a.Type
			}
			byCode[l.AccountCode] = la
		}
		la.Balance = la.Balance.Add(l.Debit).Sub(l.Credit)
		la.Lines = append(la.Lines, LedgerLine{Line: l, Balance: la.Balance})
	}

	out := make([]LedgerAccount, 0, len(byCode))
	for _, la := range byCode {
		out = append(out, *la)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

package accounts

import (
	"errors"

	"github.com/saldo-dev/saldo/internal/errs"
	"github.com/saldo-dev/saldo/internal/model"
)

// chartEntry is one row of the default chart, before IDs are assigned.
type chartEntry struct {
	Code string
	Name string
	Type model.AccountType
}

// defaultChart is the starter chart of accounts seeded on first boot.
var defaultChart = []chartEntry{
	{"1000", "Cash", model.AccountTypeAsset},
	{"1100", "Accounts Receivable", model.AccountTypeAsset},
	{"2000", "Accounts Payable", model.AccountTypeLiability},
	{"3000", "Equity", model.AccountTypeEquity},
	{"4000", "Sales Revenue", model.AccountTypeRevenue},
	{"5000", "Operating Expense", model.AccountTypeExpense},
	{"6000", "Cost of Goods Sold", model.AccountTypeCOGS},
}

// DefaultChart returns the default chart as accounts without IDs assigned.
func DefaultChart() []model.Account {
	out := make([]model.Account, len(defaultChart))
	for i, e := range defaultChart {
		out[i] = model.Account{Code: e.Code, Name: e.Name, Type: e.Type}
	}
	return out
}

// SeedDefaults adds the default chart to an empty registry. Codes already
// present are left untouched.
func (r *Registry) SeedDefaults() error {
	for _, e := range defaultChart {
		_, err := r.Add(e.Code, e.Name, e.Type)
		if err != nil {
			var conflict *errs.ConflictError
			if errors.As(err, &conflict) {
				continue
			}
			return err
		}
	}
	return nil
}

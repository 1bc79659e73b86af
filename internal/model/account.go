package model

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeCOGS      AccountType = "cogs"
	AccountTypeExpense   AccountType = "expense"
)

// AccountTypes lists every recognized type, in statement order.
var AccountTypes = []AccountType{
	AccountTypeAsset,
	AccountTypeLiability,
	AccountTypeEquity,
	AccountTypeRevenue,
	AccountTypeCOGS,
	AccountTypeExpense,
}

// Valid reports whether t is a recognized account type.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity,
		AccountTypeRevenue, AccountTypeCOGS, AccountTypeExpense:
		return true
	}
	return false
}

// Account is one entry in the chart of accounts. The ID is assigned at
// creation and never changes; journal lines reference accounts by Code.
type Account struct {
	ID   string      `json:"id"`
	Code string      `json:"code"`
	Name string      `json:"name"`
	Type AccountType `json:"type"`
}

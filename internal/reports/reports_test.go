package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saldo-dev/saldo/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func acct(code, name string, typ model.AccountType) model.Account {
	return model.Account{ID: "id-" + code, Code: code, Name: name, Type: typ}
}

func debitLine(d time.Time, code, amount string) model.JournalLine {
	return model.JournalLine{Date: d, AccountCode: code, Debit: dec(amount), Credit: decimal.Zero}
}

func creditLine(d time.Time, code, amount string) model.JournalLine {
	return model.JournalLine{Date: d, AccountCode: code, Debit: decimal.Zero, Credit: dec(amount)}
}

// chartFixture matches the starter chart used throughout.
var chartFixture = []model.Account{
	acct("1000", "Cash", model.AccountTypeAsset),
	acct("2000", "Accounts Payable", model.AccountTypeLiability),
	acct("3000", "Equity", model.AccountTypeEquity),
	acct("4000", "Sales Revenue", model.AccountTypeRevenue),
	acct("5000", "Operating Expense", model.AccountTypeExpense),
	acct("6000", "Cost of Goods Sold", model.AccountTypeCOGS),
}

// saleAndExpense posts a 500 sale into cash and a 200 expense out of it.
func saleAndExpense() []model.JournalLine {
	return []model.JournalLine{
		debitLine(date(2024, 1, 5), "1000", "500.00"),
		creditLine(date(2024, 1, 5), "4000", "500.00"),
		debitLine(date(2024, 1, 9), "5000", "200.00"),
		creditLine(date(2024, 1, 9), "1000", "200.00"),
	}
}

func TestTrialBalance_SaleOnly(t *testing.T) {
	lines := []model.JournalLine{
		debitLine(date(2024, 1, 5), "1000", "500.00"),
		creditLine(date(2024, 1, 5), "4000", "500.00"),
	}

	tb := ComputeTrialBalance(lines, chartFixture)
	require.Len(t, tb.Rows, 2)

	assert.Equal(t, "1000", tb.Rows[0].Code)
	assert.True(t, tb.Rows[0].Debit.Equal(dec("500.00")))
	assert.True(t, tb.Rows[0].Credit.IsZero())

	assert.Equal(t, "4000", tb.Rows[1].Code)
	assert.True(t, tb.Rows[1].Debit.IsZero())
	assert.True(t, tb.Rows[1].Credit.Equal(dec("500.00")))

	assert.True(t, tb.TotalDebit.Equal(tb.TotalCredit))
	assert.Empty(t, tb.Unclassified)
}

func TestTrialBalance_OrderedByCode(t *testing.T) {
	lines := []model.JournalLine{
		debitLine(date(2024, 2, 1), "5000", "10.00"),
		creditLine(date(2024, 2, 1), "1000", "10.00"),
		debitLine(date(2024, 2, 2), "1000", "30.00"),
		creditLine(date(2024, 2, 2), "4000", "30.00"),
	}

	tb := ComputeTrialBalance(lines, chartFixture)
	require.Len(t, tb.Rows, 3)
	assert.Equal(t, "1000", tb.Rows[0].Code)
	assert.Equal(t, "4000", tb.Rows[1].Code)
	assert.Equal(t, "5000", tb.Rows[2].Code)
}

func TestTrialBalance_UnclassifiedSurfaced(t *testing.T) {
	lines := []model.JournalLine{
		debitLine(date(2024, 1, 5), "7777", "40.00"),
		creditLine(date(2024, 1, 5), "4000", "40.00"),
	}

	tb := ComputeTrialBalance(lines, chartFixture)
	require.Len(t, tb.Rows, 1)
	require.Len(t, tb.Unclassified, 1)
	assert.Equal(t, "7777", tb.Unclassified[0].Code)
	assert.True(t, tb.Unclassified[0].Debit.Equal(dec("40.00")))
	// Unclassified amounts still count toward the control totals.
	assert.True(t, tb.TotalDebit.Equal(tb.TotalCredit))
}

func TestTrialBalance_Idempotent(t *testing.T) {
	lines := saleAndExpense()
	first := ComputeTrialBalance(lines, chartFixture)
	second := ComputeTrialBalance(lines, chartFixture)
	assert.Equal(t, first, second)
}

func TestBalanceSheet_Buckets(t *testing.T) {
	lines := saleAndExpense()

	bs := ComputeBalanceSheet(lines, chartFixture)
	require.Len(t, bs.Assets, 1)
	assert.Equal(t, "1000", bs.Assets[0].Code)
	assert.True(t, bs.Assets[0].Balance.Equal(dec("300.00")))
	assert.True(t, bs.TotalAssets.Equal(dec("300.00")))

	// Revenue and expense accounts never appear on the balance sheet.
	assert.Empty(t, bs.Liabilities)
	assert.Empty(t, bs.Equity)
}

func TestBalanceSheet_LiabilityAndEquity(t *testing.T) {
	lines := []model.JournalLine{
		debitLine(date(2024, 3, 1), "1000", "1000.00"),
		creditLine(date(2024, 3, 1), "3000", "1000.00"),
		debitLine(date(2024, 3, 2), "1000", "250.00"),
		creditLine(date(2024, 3, 2), "2000", "250.00"),
	}

	bs := ComputeBalanceSheet(lines, chartFixture)
	require.Len(t, bs.Liabilities, 1)
	assert.True(t, bs.Liabilities[0].Balance.Equal(dec("-250.00")))
	require.Len(t, bs.Equity, 1)
	assert.True(t, bs.Equity[0].Balance.Equal(dec("-1000.00")))
	assert.True(t, bs.TotalAssets.Equal(dec("1250.00")))
}

func TestIncomeStatement(t *testing.T) {
	is := ComputeIncomeStatement(saleAndExpense(), chartFixture)
	assert.True(t, is.Revenue.Equal(dec("500.00")))
	assert.True(t, is.Expense.Equal(dec("200.00")))
	assert.True(t, is.COGS.IsZero())
	assert.True(t, is.GrossProfit.Equal(dec("500.00")))
	assert.True(t, is.NetIncome.Equal(dec("300.00")))
}

func TestIncomeStatement_WithCOGS(t *testing.T) {
	lines := append(saleAndExpense(),
		debitLine(date(2024, 1, 12), "6000", "150.00"),
		creditLine(date(2024, 1, 12), "1000", "150.00"),
	)

	is := ComputeIncomeStatement(lines, chartFixture)
	assert.True(t, is.COGS.Equal(dec("150.00")))
	assert.True(t, is.GrossProfit.Equal(dec("350.00")))
	assert.True(t, is.NetIncome.Equal(dec("150.00")))
}

func TestIncomeStatement_ContraEntries(t *testing.T) {
	// A revenue debit (refund) reduces revenue; an expense credit reduces
	// expense.
	lines := []model.JournalLine{
		creditLine(date(2024, 1, 5), "4000", "500.00"),
		debitLine(date(2024, 1, 5), "1000", "500.00"),
		debitLine(date(2024, 1, 8), "4000", "100.00"),
		creditLine(date(2024, 1, 8), "1000", "100.00"),
	}

	is := ComputeIncomeStatement(lines, chartFixture)
	assert.True(t, is.Revenue.Equal(dec("400.00")))
}

func TestGeneralLedger_RunningBalance(t *testing.T) {
	gl := ComputeGeneralLedger(saleAndExpense(), chartFixture)
	require.Len(t, gl, 3)

	assert.Equal(t, "1000", gl[0].Code)
	assert.Equal(t, "Cash", gl[0].Name)
	require.Len(t, gl[0].Lines, 2)
	assert.True(t, gl[0].Lines[0].Balance.Equal(dec("500.00")))
	assert.True(t, gl[0].Lines[1].Balance.Equal(dec("300.00")))
	assert.True(t, gl[0].Balance.Equal(dec("300.00")))
}

func TestGeneralLedger_UnknownCode(t *testing.T) {
	lines := []model.JournalLine{
		debitLine(date(2024, 1, 5), "7777", "10.00"),
		creditLine(date(2024, 1, 5), "4000", "10.00"),
	}

	gl := ComputeGeneralLedger(lines, chartFixture)
	require.Len(t, gl, 2)
	assert.Equal(t, "7777", gl[1].Code)
	assert.Empty(t, gl[1].Name)
}

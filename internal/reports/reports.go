// Package reports computes derived statements by joining a journal
// snapshot with a chart-of-accounts snapshot on account code. Every report
// is a pure function of its inputs: identical snapshots always produce
// identical output.
package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/saldo-dev/saldo/internal/model"
)

// TrialBalanceRow is the per-account debit/credit summary.
type TrialBalanceRow struct {
	Code   string            `json:"code"`
	Name   string            `json:"name"`
	Type   model.AccountType `json:"type"`
	Debit  decimal.Decimal   `json:"debit"`
	Credit decimal.Decimal   `json:"credit"`
}

// UnclassifiedRow aggregates lines whose code has no matching account.
// They are surfaced separately, never silently dropped.
type UnclassifiedRow struct {
	Code   string          `json:"code"`
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

// TrialBalance is the full trial balance, ordered by account code.
type TrialBalance struct {
	Rows         []TrialBalanceRow `json:"rows"`
	Unclassified []UnclassifiedRow `json:"unclassified,omitempty"`
	TotalDebit   decimal.Decimal   `json:"total_debit"`
	TotalCredit  decimal.Decimal   `json:"total_credit"`
}

type sums struct {
	debit  decimal.Decimal
	credit decimal.Decimal
}

// sumByCode groups lines by account code and totals both sides.
func sumByCode(lines []model.JournalLine) map[string]sums {
	byCode := make(map[string]sums)
	for _, l := range lines {
		s := byCode[l.AccountCode]
		s.debit = s.debit.Add(l.Debit)
		s.credit = s.credit.Add(l.Credit)
		byCode[l.AccountCode] = s
	}
	return byCode
}

// ComputeTrialBalance groups lines by (code, name, type) and sums debit and
// credit per group.
func ComputeTrialBalance(lines []model.JournalLine, accts []model.Account) TrialBalance {
	byCode := sumByCode(lines)
	known := make(map[string]bool, len(accts))

	tb := TrialBalance{TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
	for _, a := range accts {
		known[a.Code] = true
		s, ok := byCode[a.Code]
		if !ok {
			continue
		}
		tb.Rows = append(tb.Rows, TrialBalanceRow{
			Code:   a.Code,
			Name:   a.Name,
			Type:   a.Type,
			Debit:  s.debit,
			Credit: s.credit,
		})
	}
	sort.Slice(tb.Rows, func(i, j int) bool { return tb.Rows[i].Code < tb.Rows[j].Code })

	for code, s := range byCode {
		if known[code] {
			continue
		}
		tb.Unclassified = append(tb.Unclassified, UnclassifiedRow{Code: code, Debit: s.debit, Credit: s.credit})
	}
	sort.Slice(tb.Unclassified, func(i, j int) bool { return tb.Unclassified[i].Code < tb.Unclassified[j].Code })

	for _, r := range tb.Rows {
		tb.TotalDebit = tb.TotalDebit.Add(r.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(r.Credit)
	}
	for _, r := range tb.Unclassified {
		tb.TotalDebit = tb.TotalDebit.Add(r.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(r.Credit)
	}
	return tb
}

// BalanceRow is one account's net balance (debit - credit).
type BalanceRow struct {
	Code    string          `json:"code"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// BalanceSheet partitions balances into asset/liability/equity buckets.
// Revenue, COGS and expense accounts are excluded.
type BalanceSheet struct {
	Assets           []BalanceRow    `json:"assets"`
	Liabilities      []BalanceRow    `json:"liabilities"`
	Equity           []BalanceRow    `json:"equity"`
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	TotalEquity      decimal.Decimal `json:"total_equity"`
}

// ComputeBalanceSheet builds the point-in-time asset/liability/equity view.
func ComputeBalanceSheet(lines []model.JournalLine, accts []model.Account) BalanceSheet {
	byCode := sumByCode(lines)

	bs := BalanceSheet{
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}
	for _, a := range accts {
		s, ok := byCode[a.Code]
		if !ok {
			continue
		}
		row := BalanceRow{Code: a.Code, Name: a.Name, Balance: s.debit.Sub(s.credit)}
		switch a.Type {
		case model.AccountTypeAsset:
			bs.Assets = append(bs.Assets, row)
			bs.TotalAssets = bs.TotalAssets.Add(row.Balance)
		case model.AccountTypeLiability:
			bs.Liabilities = append(bs.Liabilities, row)
			bs.TotalLiabilities = bs.TotalLiabilities.Add(row.Balance)
		case model.AccountTypeEquity:
			bs.Equity = append(bs.Equity, row)
			bs.TotalEquity = bs.TotalEquity.Add(row.Balance)
		}
	}
	for _, rows := range [][]BalanceRow{bs.Assets, bs.Liabilities, bs.Equity} {
		sort.Slice(rows, func(i, j int) bool { return rows[i].Code < rows[j].Code })
	}
	return bs
}

// IncomeStatement is the period revenue/COGS/expense view.
type IncomeStatement struct {
	Revenue     decimal.Decimal `json:"revenue"`
	COGS        decimal.Decimal `json:"cogs"`
	GrossProfit decimal.Decimal `json:"gross_profit"`
	Expense     decimal.Decimal `json:"expense"`
	NetIncome   decimal.Decimal `json:"net_income"`
}

// ComputeIncomeStatement computes revenue, cost of goods sold, expense,
// gross profit and net income. Revenue accrues on the credit side; COGS and
// expense on the debit side.
func ComputeIncomeStatement(lines []model.JournalLine, accts []model.Account) IncomeStatement {
	typeByCode := make(map[string]model.AccountType, len(accts))
	for _, a := range accts {
		typeByCode[a.Code] = a.Type
	}

	revenue := decimal.Zero
	cogs := decimal.Zero
	expense := decimal.Zero
	for _, l := range lines {
		switch typeByCode[l.AccountCode] {
		case model.AccountTypeRevenue:
			revenue = revenue.Add(l.Credit).Sub(l.Debit)
		case model.AccountTypeCOGS:
			cogs = cogs.Add(l.Debit).Sub(l.Credit)
		case model.AccountTypeExpense:
			expense = expense.Add(l.Debit).Sub(l.Credit)
		}
	}

	gross := revenue.Sub(cogs)
	return IncomeStatement{
		Revenue:     revenue,
		COGS:        cogs,
		GrossProfit: gross,
		Expense:     expense,
		NetIncome:   gross.Sub(expense),
	}
}

package reports

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/saldo-dev/saldo/internal/model"
)

// monthFormat keys trend points by calendar month.
const monthFormat = "2006-01"

// TrendPoint is one month's revenue, expense and net income.
type TrendPoint struct {
	Month   string          `json:"month"` // "YYYY-MM"
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// ComputeNetIncomeTrend groups lines by calendar month: revenue is the
// credit total over revenue-typed lines, expense the debit total over
// expense-typed lines. Months with no data are omitted.
func ComputeNetIncomeTrend(lines []model.JournalLine, accts []model.Account) []TrendPoint {
	points := trendByMonth(lines, accts)

	out := make([]TrendPoint, 0, len(points))
	for _, p := range points {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// ComputeTrendRange is the dense variant: every month from from through to
// gets a point, zero-filled when no lines fall in it.
func ComputeTrendRange(lines []model.JournalLine, accts []model.Account, from, to time.Time) []TrendPoint {
	points := trendByMonth(lines, accts)

	var out []TrendPoint
	cur := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(end) {
		key := cur.Format(monthFormat)
		if p, ok := points[key]; ok {
			out = append(out, p)
		} else {
			out = append(out, TrendPoint{
				Month:   key,
				Revenue: decimal.Zero,
				Expense: decimal.Zero,
				Net:     decimal.Zero,
			})
		}
		cur = cur.AddDate(0, 1, 0)
	}
	return out
}

func trendByMonth(lines []model.JournalLine, accts []model.Account) map[string]TrendPoint {
	typeByCode := make(map[string]model.AccountType, len(accts))
	for _, a := range accts {
		typeByCode[a.Code] = a.Type
	}

	points := make(map[string]TrendPoint)
	for _, l := range lines {
		typ := typeByCode[l.AccountCode]
		if typ != model.AccountTypeRevenue && typ != model.AccountTypeExpense {
			continue
		}
		key := l.Date.Format(monthFormat)
		p, ok := points[key]
		if !ok {
			p = TrendPoint{Month: key, Revenue: decimal.Zero, Expense: decimal.Zero, Net: decimal.Zero}
		}
		if typ == model.AccountTypeRevenue {
			p.Revenue = p.Revenue.Add(l.Credit)
		} else {
			p.Expense = p.Expense.Add(l.Debit)
		}
		p.Net = p.Revenue.Sub(p.Expense)
		points[key] = p
	}
	return points
}

package api

import (
	"net/http"
	"time"

	"github.com/saldo-dev/saldo/internal/accounts"
	"github.com/saldo-dev/saldo/internal/errs"
	"github.com/saldo-dev/saldo/internal/journal"
	"github.com/saldo-dev/saldo/internal/model"
	"github.com/saldo-dev/saldo/internal/reports"
)

// ReportsHandler serves the derived statements. Each handler snapshots the
// journal and the registry once, then computes a pure function of the two.
type ReportsHandler struct {
	registry *accounts.Registry
	store    *journal.Store
}

// NewReportsHandler creates a ReportsHandler.
func NewReportsHandler(registry *accounts.Registry, store *journal.Store) *ReportsHandler {
	return &ReportsHandler{registry: registry, store: store}
}

// snapshot reads both stores under the registry read lock, so a rename
// cascade can never leave the journal and the chart disagreeing about an
// account code mid-report.
func (h *ReportsHandler) snapshot() (lines []model.JournalLine, accts []model.Account) {
	h.registry.Snapshot(func(snap []model.Account) {
		accts = snap
		lines = h.store.All()
	})
	return lines, accts
}

// TrialBalance handles GET /reports/trialbalance.
func (h *ReportsHandler) TrialBalance(w http.ResponseWriter, r *http.Request) {
	lines, accts := h.snapshot()
	writeJSON(w, http.StatusOK, reports.ComputeTrialBalance(lines, accts))
}

// BalanceSheet handles GET /reports/balancesheet (and /balancesheet).
func (h *ReportsHandler) BalanceSheet(w http.ResponseWriter, r *http.Request) {
	lines, accts := h.snapshot()
	writeJSON(w, http.StatusOK, reports.ComputeBalanceSheet(lines, accts))
}

// IncomeStatement handles GET /reports/income.
func (h *ReportsHandler) IncomeStatement(w http.ResponseWriter, r *http.Request) {
	lines, accts := h.snapshot()
	writeJSON(w, http.StatusOK, reports.ComputeIncomeStatement(lines, accts))
}

// Trend handles GET /reports/trend. Without parameters months absent from
// the data are omitted; with from=YYYY-MM-DD&to=YYYY-MM-DD every month in
// the range gets a zero-filled point.
func (h *ReportsHandler) Trend(w http.ResponseWriter, r *http.Request) {
	lines, accts := h.snapshot()

	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" && toStr == "" {
		writeJSON(w, http.StatusOK, reports.ComputeNetIncomeTrend(lines, accts))
		return
	}

	from, err := time.Parse(model.DateFormat, fromStr)
	if err != nil {
		writeError(w, errs.Validationf("from", "%q is not a valid date (want YYYY-MM-DD)", fromStr))
		return
	}
	to, err := time.Parse(model.DateFormat, toStr)
	if err != nil {
		writeError(w, errs.Validationf("to", "%q is not a valid date (want YYYY-MM-DD)", toStr))
		return
	}
	if to.Before(from) {
		writeError(w, errs.Validationf("to", "must not be before from"))
		return
	}
	writeJSON(w, http.StatusOK, reports.ComputeTrendRange(lines, accts, from, to))
}

// GeneralLedger handles GET /reports/ledger.
func (h *ReportsHandler) GeneralLedger(w http.ResponseWriter, r *http.Request) {
	lines, accts := h.snapshot()
	writeJSON(w, http.StatusOK, reports.ComputeGeneralLedger(lines, accts))
}

// Package api wires the HTTP surface: chi routes, JSON bodies, and the
// mapping from the error taxonomy to status codes.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/saldo-dev/saldo/internal/accounts"
	"github.com/saldo-dev/saldo/internal/books"
	"github.com/saldo-dev/saldo/internal/journal"
	"github.com/saldo-dev/saldo/internal/suggest"
)

// Deps bundles everything the router serves.
type Deps struct {
	Registry  *accounts.Registry
	Store     *journal.Store
	Poster    *journal.Service
	Books     *books.Service
	Validator *suggest.Validator
	Log       *zap.Logger
}

// NewRouter builds the chi router with all routes registered.
func NewRouter(d Deps) http.Handler {
	accountsH := NewAccountsHandler(d.Registry)
	journalsH := NewJournalsHandler(d.Store, d.Poster)
	booksH := NewBooksHandler(d.Books)
	reportsH := NewReportsHandler(d.Registry, d.Store)
	suggestionsH := NewSuggestionsHandler(d.Validator)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(requestLogger(d.Log))
	r.Use(cors)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "up"})
	})

	r.Route("/accounts", func(r chi.Router) {
		r.Get("/", accountsH.List)
		r.Post("/", accountsH.Create)
		r.Get("/export", accountsH.Export)
		r.Put("/{id}", accountsH.Update)
		r.Delete("/{id}", accountsH.Delete)
	})

	r.Route("/journals", func(r chi.Router) {
		r.Get("/", journalsH.List)
		r.Post("/", journalsH.Post)
		r.Get("/export", journalsH.Export)
	})

	r.Route("/invoices", func(r chi.Router) {
		r.Get("/", booksH.ListInvoices)
		r.Post("/", booksH.CreateInvoice)
		r.Delete("/{id}", booksH.DeleteInvoice)
	})

	r.Route("/expenses", func(r chi.Router) {
		r.Get("/", booksH.ListExpenses)
		r.Post("/", booksH.CreateExpense)
		r.Delete("/{id}", booksH.DeleteExpense)
	})

	r.Route("/reports", func(r chi.Router) {
		r.Get("/trialbalance", reportsH.TrialBalance)
		r.Get("/balancesheet", reportsH.BalanceSheet)
		r.Get("/income", reportsH.IncomeStatement)
		r.Get("/trend", reportsH.Trend)
		r.Get("/ledger", reportsH.GeneralLedger)
	})
	// Flat alias kept for older clients.
	r.Get("/balancesheet", reportsH.BalanceSheet)

	r.Post("/suggestions", suggestionsH.Submit)

	return r
}

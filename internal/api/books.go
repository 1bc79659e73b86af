package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saldo-dev/saldo/internal/books"
	"github.com/saldo-dev/saldo/internal/model"
)

// BooksHandler serves invoices and expenses. Creating either triggers a
// paired journal posting.
type BooksHandler struct {
	svc *books.Service
}

// NewBooksHandler creates a BooksHandler.
func NewBooksHandler(svc *books.Service) *BooksHandler {
	return &BooksHandler{svc: svc}
}

// ListInvoices handles GET /invoices.
func (h *BooksHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListInvoices())
}

// CreateInvoice handles POST /invoices. Optional debit_account and
// credit_account query parameters override the default account selection.
func (h *BooksHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var inv model.Invoice
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		writeBadRequest(w, err)
		return
	}

	created, err := h.svc.AddInvoice(inv,
		r.URL.Query().Get("debit_account"),
		r.URL.Query().Get("credit_account"),
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// DeleteInvoice handles DELETE /invoices/{id}.
func (h *BooksHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteInvoice(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "invoice deleted"})
}

// ListExpenses handles GET /expenses.
func (h *BooksHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListExpenses())
}

// CreateExpense handles POST /expenses.
func (h *BooksHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var exp model.Expense
	if err := json.NewDecoder(r.Body).Decode(&exp); err != nil {
		writeBadRequest(w, err)
		return
	}

	created, err := h.svc.AddExpense(exp,
		r.URL.Query().Get("debit_account"),
		r.URL.Query().Get("credit_account"),
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// DeleteExpense handles DELETE /expenses/{id}.
func (h *BooksHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteExpense(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "expense deleted"})
}

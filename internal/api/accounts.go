package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saldo-dev/saldo/internal/accounts"
	"github.com/saldo-dev/saldo/internal/export"
	"github.com/saldo-dev/saldo/internal/model"
)

// AccountsHandler serves the chart of accounts.
type AccountsHandler struct {
	registry *accounts.Registry
}

// NewAccountsHandler creates an AccountsHandler.
func NewAccountsHandler(registry *accounts.Registry) *AccountsHandler {
	return &AccountsHandler{registry: registry}
}

type accountRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// List handles GET /accounts.
func (h *AccountsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.registry.List())
}

// Create handles POST /accounts.
func (h *AccountsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}

	acct, err := h.registry.Add(req.Code, req.Name, model.AccountType(req.Type))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, acct)
}

// Update handles PUT /accounts/{id}. A code change cascades to existing
// journal lines.
func (h *AccountsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req accountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}

	acct, err := h.registry.Update(id, req.Code, req.Name, model.AccountType(req.Type))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, acct)
}

// Delete handles DELETE /accounts/{id}.
func (h *AccountsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.registry.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "account deleted"})
}

// Export handles GET /accounts/export as a CSV download.
func (h *AccountsHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="chart-of-accounts.csv"`)
	if err := export.WriteAccounts(w, h.registry.List()); err != nil {
		writeError(w, err)
	}
}

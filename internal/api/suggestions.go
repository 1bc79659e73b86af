package api

import (
	"encoding/json"
	"net/http"

	"github.com/saldo-dev/saldo/internal/model"
	"github.com/saldo-dev/saldo/internal/suggest"
)

// SuggestionsHandler accepts externally generated entry proposals. They
// pass through the suggestion validator before touching the journal.
type SuggestionsHandler struct {
	validator *suggest.Validator
}

// NewSuggestionsHandler creates a SuggestionsHandler.
func NewSuggestionsHandler(validator *suggest.Validator) *SuggestionsHandler {
	return &SuggestionsHandler{validator: validator}
}

// Submit handles POST /suggestions.
func (h *SuggestionsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var proposal model.ProposedEntry
	if err := json.NewDecoder(r.Body).Decode(&proposal); err != nil {
		writeBadRequest(w, err)
		return
	}

	batch, err := h.validator.Submit(proposal)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"status": "posted",
		"batch":  batch,
	})
}

package api

import (
	"encoding/json"
	"net/http"

	"github.com/saldo-dev/saldo/internal/export"
	"github.com/saldo-dev/saldo/internal/journal"
	"github.com/saldo-dev/saldo/internal/model"
)

// JournalsHandler serves journal reads and batch postings.
type JournalsHandler struct {
	store  *journal.Store
	poster *journal.Service
}

// NewJournalsHandler creates a JournalsHandler.
func NewJournalsHandler(store *journal.Store, poster *journal.Service) *JournalsHandler {
	return &JournalsHandler{store: store, poster: poster}
}

// List handles GET /journals: every posted line in append order.
func (h *JournalsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.All())
}

// Post handles POST /journals. The body is an array of journal lines
// posted as one batch; on any validation failure nothing is appended.
func (h *JournalsHandler) Post(w http.ResponseWriter, r *http.Request) {
	var lines []model.JournalLine
	if err := json.NewDecoder(r.Body).Decode(&lines); err != nil {
		writeBadRequest(w, err)
		return
	}

	batch, err := h.poster.PostBatch(lines)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"status":   "success",
		"received": len(batch.Lines),
		"batch":    batch,
	})
}

// Export handles GET /journals/export as a CSV download.
func (h *JournalsHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="journal.csv"`)
	if err := export.WriteLines(w, h.store.All()); err != nil {
		writeError(w, err)
	}
}

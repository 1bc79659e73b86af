package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saldo-dev/saldo/internal/errs"
)

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy to HTTP status codes. Anything
// outside the taxonomy is a 500.
func writeError(w http.ResponseWriter, err error) {
	var (
		validation  *errs.ValidationError
		notFound    *errs.NotFoundError
		conflict    *errs.ConflictError
		imbalanced  *errs.ImbalancedBatchError
		referential *errs.ReferentialIntegrityError
	)
	switch {
	case errors.As(err, &validation):
		writeErrorBody(w, http.StatusBadRequest, "validation", validation.Message, validation.Field)
	case errors.As(err, &notFound):
		writeErrorBody(w, http.StatusNotFound, "not_found", notFound.Error(), "")
	case errors.As(err, &conflict):
		writeErrorBody(w, http.StatusConflict, "conflict", conflict.Error(), "")
	case errors.As(err, &imbalanced):
		writeErrorBody(w, http.StatusUnprocessableEntity, "imbalanced_batch", imbalanced.Error(), "")
	case errors.As(err, &referential):
		writeErrorBody(w, http.StatusConflict, "referential_integrity", referential.Error(), "")
	default:
		writeErrorBody(w, http.StatusInternalServerError, "internal", err.Error(), "")
	}
}

func writeErrorBody(w http.ResponseWriter, status int, kind, message, field string) {
	writeJSON(w, status, map[string]errorBody{
		"error": {Kind: kind, Message: message, Field: field},
	})
}

// writeBadRequest reports a request body that could not be decoded.
func writeBadRequest(w http.ResponseWriter, err error) {
	writeErrorBody(w, http.StatusBadRequest, "validation", "invalid request body: "+err.Error(), "")
}

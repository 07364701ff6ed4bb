package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/focusin/hub/internal/entity"
	"github.com/focusin/hub/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps the layered error types onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	var enrichErr entity.EnrichmentError
	switch {
	case entity.IsValidationError(err):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, entity.ErrLeadNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidFormat):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.As(err, &enrichErr):
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
	case usecase.IsDomainError(err):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

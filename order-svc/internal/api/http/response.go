package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"feastly/order-svc/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// clientMessage strips the sentinel prefix so callers see only the detail.
func clientMessage(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}

// fail maps err onto a status code. Validation and authentication details
// are returned as-is; anything unclassified is logged and hidden.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, action string, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeMessage(w, http.StatusBadRequest, clientMessage(err, domain.ErrValidation))
	case errors.Is(err, domain.ErrUnauthorized):
		writeMessage(w, http.StatusUnauthorized, clientMessage(err, domain.ErrUnauthorized))
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, notFound)
	default:
		h.Log.Error(r.Context(), action, "request failed", err,
			slog.String("method", r.Method), slog.String("path", r.URL.Path))
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

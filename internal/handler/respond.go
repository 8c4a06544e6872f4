package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/felipesousa7/ecommerce-order-system/internal/apperr"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// writeError maps the error taxonomy onto HTTP status codes. Untyped errors
// are logged and reported as a generic internal error.
func writeError(w http.ResponseWriter, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		http.Error(w, err.Error(), http.StatusBadRequest)
	case apperr.KindNotFound:
		http.Error(w, err.Error(), http.StatusNotFound)
	case apperr.KindUnavailable:
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case apperr.KindConflict:
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		slog.Error("request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

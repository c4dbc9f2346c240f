package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/wayfarer-labs/tripweaver/backend/internal/domain"
	"github.com/wayfarer-labs/tripweaver/backend/internal/worker"
)

// errorResponse is the JSON body for every non-2xx response.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a service error onto an HTTP status and JSON body.
// Unclassified errors become opaque 500s; the real cause is logged, not leaked.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{errorDetail{"not_found", "trip not found"}})
	case errors.Is(err, domain.ErrAccessDenied):
		writeJSON(w, http.StatusForbidden, errorResponse{errorDetail{"access_denied", "you do not own this trip"}})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{errorDetail{"validation_error", validationMessage(err)}})
	case errors.Is(err, worker.ErrQueueFull):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{errorDetail{"queue_full", "generation queue is full, try again shortly"}})
	default:
		slog.Error("handler error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{errorDetail{"internal", "internal server error"}})
	}
}

// requestError writes a 422 for a request rejected before reaching the
// service layer (e.g. missing or malformed body).
func requestError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{errorDetail{"validation_error", message}})
}

// unauthorizedError writes a 401 for requests with no authenticated user.
func unauthorizedError(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, errorResponse{errorDetail{"unauthorized", "authentication required"}})
}

// validationMessage extracts the human-readable part from a wrapped
// domain.ErrValidation error.
// e.g. "service.TripService.Create: validation error: title is required" → "title is required"
func validationMessage(err error) string {
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

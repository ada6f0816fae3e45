package api

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/Codenidhi/-hustlehub-jobportal/pkg/apperr"
)

// envelope is the `{success, message, ...payload}` response shape every
// mutating endpoint uses.
type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", slog.Any("err", err))
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses: validation,
// conflict and credential failures are 400, missing references 404,
// everything else 500. The human-readable message always reaches the body;
// wrapped causes stay in the server log.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindConflict, apperr.KindAuth:
		status = http.StatusBadRequest
	case apperr.KindNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		logger.Error("request failed", slog.Any("err", err))
	}

	writeJSON(w, status, envelope{
		"success": false,
		"message": apperr.MessageOf(err),
	})
}

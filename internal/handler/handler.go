package handler

import (
	"encoding/json"
	"net/http"

	"petro-catalog/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// language reads the "lang" query parameter. Absent defaults to Persian;
// an invalid value returns false after writing a 400 response.
func language(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (model.Language, bool) {
	raw := r.URL.Query().Get("lang")
	if raw == "" {
		return model.LanguageFA, true
	}

	lang := model.Language(raw)
	if !lang.Valid() {
		writeError(w, http.StatusBadRequest, model.ErrInvalidLanguage.Message, logger)
		return "", false
	}
	return lang, true
}

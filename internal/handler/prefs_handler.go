package handler

import (
	"net/http"

	"petro-catalog/internal/prefs"

	"github.com/rs/zerolog"
)

// PrefsHandler handles UI preference HTTP requests.
type PrefsHandler struct {
	theme  *prefs.Theme
	logger zerolog.Logger
}

// NewPrefsHandler creates a new preferences handler.
func NewPrefsHandler(theme *prefs.Theme, logger zerolog.Logger) *PrefsHandler {
	return &PrefsHandler{
		theme:  theme,
		logger: logger.With().Str("handler", "prefs").Logger(),
	}
}

// ThemeResponse is the theme state payload.
type ThemeResponse struct {
	Dark bool `json:"dark"`
}

// GetTheme handles GET /api/prefs/theme requests.
func (h *PrefsHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, ThemeResponse{Dark: h.theme.Dark()})
}

// ToggleTheme handles POST /api/prefs/theme/toggle requests.
func (h *PrefsHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	dark, err := h.theme.Toggle()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to persist theme preference", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, ThemeResponse{Dark: dark})
}

package handler

import (
	"net/http"

	"petro-catalog/internal/catalog"
	"petro-catalog/internal/menu"

	"github.com/rs/zerolog"
)

// MenuHandler serves the composed navigation mega-menu.
type MenuHandler struct {
	store  *catalog.Store
	logger zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(store *catalog.Store, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		store:  store,
		logger: logger.With().Str("handler", "menu").Logger(),
	}
}

// MenuResponse is the mega-menu payload.
type MenuResponse struct {
	Groups []menu.Group `json:"groups"`
}

// Get handles GET /api/menu requests. The menu is recomposed from the
// catalogue snapshot on every request.
func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	groups := menu.Compose(h.store.Categories(), h.store.Subcategories(), h.logger)
	writeJSON(w, http.StatusOK, MenuResponse{Groups: groups})
}

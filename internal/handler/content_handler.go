package handler

import (
	"net/http"

	"petro-catalog/internal/contact"
	"petro-catalog/internal/content"

	"github.com/rs/zerolog"
)

// ContentHandler serves the localized static site content and contact links.
type ContentHandler struct {
	contacts *contact.Builder
	logger   zerolog.Logger
}

// NewContentHandler creates a new content handler.
func NewContentHandler(contacts *contact.Builder, logger zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		contacts: contacts,
		logger:   logger.With().Str("handler", "content").Logger(),
	}
}

// GetHome handles GET /api/content/home requests.
func (h *ContentHandler) GetHome(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	lang, ok := language(w, r, h.logger)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, content.HomeContent(lang))
}

// GetLinks handles GET /api/content/links requests.
func (h *ContentHandler) GetLinks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	lang, ok := language(w, r, h.logger)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, content.NavLinks(lang))
}

// GetContactLinks handles GET /api/contact/links requests.
func (h *ContentHandler) GetContactLinks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	lang, ok := language(w, r, h.logger)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, h.contacts.Links(lang))
}

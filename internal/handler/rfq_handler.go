package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"petro-catalog/internal/model"
	"petro-catalog/internal/rfq"

	"github.com/rs/zerolog"
)

// RFQHandler handles quote-request session HTTP requests.
type RFQHandler struct {
	manager *rfq.Manager
	logger  zerolog.Logger
}

// NewRFQHandler creates a new quote-request handler.
func NewRFQHandler(manager *rfq.Manager, logger zerolog.Logger) *RFQHandler {
	return &RFQHandler{
		manager: manager,
		logger:  logger.With().Str("handler", "rfq").Logger(),
	}
}

// SessionResponse is the payload for a newly created session.
type SessionResponse struct {
	SessionID string `json:"sessionId"`
}

// ItemsResponse is the payload for a session's quote-request list.
type ItemsResponse struct {
	Items []model.RFQItem `json:"items"`
	Count int             `json:"count"`
}

// AddItemResponse reports whether an add call changed the list.
type AddItemResponse struct {
	Added bool `json:"added"`
	Count int  `json:"count"`
}

// CreateSession handles POST /api/rfq/sessions requests.
func (h *RFQHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, SessionResponse{SessionID: h.manager.NewSession()})
}

// Dispatch routes /api/rfq/sessions/{sid}[/items[/{id}]] requests.
func (h *RFQHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	// Expecting paths:
	//   /api/rfq/sessions/{sid}
	//   /api/rfq/sessions/{sid}/items
	//   /api/rfq/sessions/{sid}/items/{id}
	rest := strings.TrimPrefix(r.URL.Path, "/api/rfq/sessions/")
	if rest == "" || rest == r.URL.Path {
		writeError(w, http.StatusBadRequest, "session ID is required", h.logger)
		return
	}

	parts := strings.Split(strings.Trim(rest, "/"), "/")
	sessionID := parts[0]

	list, err := h.manager.Session(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found", h.logger)
		return
	}

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		h.getItems(w, list)
	case len(parts) == 2 && parts[1] == "items" && r.Method == http.MethodPost:
		h.addItem(w, r, list)
	case len(parts) == 2 && parts[1] == "items" && r.Method == http.MethodDelete:
		h.clearItems(w, list)
	case len(parts) == 3 && parts[1] == "items" && r.Method == http.MethodDelete:
		h.removeItem(w, list, parts[2])
	default:
		writeError(w, http.StatusNotFound, "not found", h.logger)
	}
}

func (h *RFQHandler) getItems(w http.ResponseWriter, list *rfq.List) {
	writeJSON(w, http.StatusOK, ItemsResponse{
		Items: list.Items(),
		Count: list.Count(),
	})
}

func (h *RFQHandler) addItem(w http.ResponseWriter, r *http.Request, list *rfq.List) {
	var item model.RFQItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if item.ID == "" {
		writeError(w, http.StatusBadRequest, "item ID is required", h.logger)
		return
	}

	added := list.Add(item)
	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	writeJSON(w, status, AddItemResponse{Added: added, Count: list.Count()})
}

func (h *RFQHandler) removeItem(w http.ResponseWriter, list *rfq.List, id string) {
	if !list.Remove(id) {
		writeError(w, http.StatusNotFound, "item not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, ItemsResponse{Items: list.Items(), Count: list.Count()})
}

func (h *RFQHandler) clearItems(w http.ResponseWriter, list *rfq.List) {
	list.Clear()
	writeJSON(w, http.StatusOK, ItemsResponse{Items: []model.RFQItem{}, Count: 0})
}

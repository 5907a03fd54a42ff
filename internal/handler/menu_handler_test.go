package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuHandler_Get(t *testing.T) {
	handler := NewMenuHandler(testStore(t, handlerSnapshot()), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	rec := httptest.NewRecorder()
	handler.Get(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp MenuResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Groups, 2)

	assert.Equal(t, "cat1", resp.Groups[0].Category.ID)
	require.Len(t, resp.Groups[0].Children, 1)
	assert.Equal(t, "s1", resp.Groups[0].Children[0].ID)

	// cat2 has no subcategories, and the s2 orphan is dropped entirely.
	assert.Equal(t, "cat2", resp.Groups[1].Category.ID)
	assert.Empty(t, resp.Groups[1].Children)
}

func TestMenuHandler_MethodNotAllowed(t *testing.T) {
	handler := NewMenuHandler(testStore(t, handlerSnapshot()), zerolog.Nop())

	rec := httptest.NewRecorder()
	handler.Get(rec, httptest.NewRequest(http.MethodPost, "/api/menu", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

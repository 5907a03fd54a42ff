package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"petro-catalog/internal/catalog"
	"petro-catalog/internal/contact"
	"petro-catalog/internal/handler"
	"petro-catalog/internal/prefs"
	"petro-catalog/internal/rfq"
	"petro-catalog/internal/router"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestServer seeds the catalogue, loads the store from postgres and
// wires the full handler stack. The store holds a point-in-time snapshot,
// so seeding has to happen before this call.
func setupTestServer(t *testing.T, testDB *TestDB) http.Handler {
	t.Helper()

	logger := zerolog.Nop()
	ctx := context.Background()

	CleanupDB(t, testDB.Pool)
	SeedCatalog(t, testDB.Pool)

	source := catalog.NewPostgresSource(testDB.Pool, logger)
	store := catalog.NewStore(logger)
	require.NoError(t, store.Load(ctx, source))
	require.False(t, store.Degraded())

	themeStore := prefs.NewFileStore(filepath.Join(t.TempDir(), "preferences.json"))
	theme, err := prefs.NewTheme(themeStore, false, logger)
	require.NoError(t, err)

	manager := rfq.NewManager(logger)
	contacts := contact.NewBuilder("989123456789", "https://wa.me/")

	productHandler := handler.NewProductHandler(store, logger)
	menuHandler := handler.NewMenuHandler(store, logger)
	contentHandler := handler.NewContentHandler(contacts, logger)
	rfqHandler := handler.NewRFQHandler(manager, logger)
	prefsHandler := handler.NewPrefsHandler(theme, logger)

	return router.New(productHandler, menuHandler, contentHandler, rfqHandler, prefsHandler, "test-api-key", logger)
}

func doRequest(server http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("X-API-Key", "test-api-key")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

func TestCatalogAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("GET /api/products returns all products", func(t *testing.T) {
		w := doRequest(server, http.MethodGet, "/api/products", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp handler.ListResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, 5, resp.Total)
		assert.Len(t, resp.Products, 5)
	})

	t.Run("GET /api/products with pagination", func(t *testing.T) {
		w := doRequest(server, http.MethodGet, "/api/products?limit=2&offset=0", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp handler.ListResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, 5, resp.Total)
		assert.Len(t, resp.Products, 2)
	})

	t.Run("GET /api/products with search", func(t *testing.T) {
		w := doRequest(server, http.MethodGet, "/api/products?q=gauge", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp handler.ListResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "P003", resp.Products[0].ID)
	})

	t.Run("GET /api/products/{id} returns localized detail", func(t *testing.T) {
		w := doRequest(server, http.MethodGet, "/api/products/P001?lang=en", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp handler.DetailResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "P001", resp.Product.ID)
		assert.Equal(t, "Gas Analyzer", resp.Localized.Name)

		// P002 and P004 share the category; P001 itself is excluded.
		ids := make([]string, 0, len(resp.Related))
		for _, p := range resp.Related {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []string{"P002", "P004"}, ids)
	})

	t.Run("GET /api/products/{id} redirects for non-existent product", func(t *testing.T) {
		w := doRequest(server, http.MethodGet, "/api/products/P999", nil)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/api/products", w.Header().Get("Location"))
	})

	t.Run("GET /api/menu returns composed groups", func(t *testing.T) {
		w := doRequest(server, http.MethodGet, "/api/menu", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp handler.MenuResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp.Groups, 2)
		assert.Equal(t, "cat-lab", resp.Groups[0].Category.ID)
		require.Len(t, resp.Groups[0].Children, 1)
		assert.Equal(t, "sub-analyzers", resp.Groups[0].Children[0].ID)
	})

	t.Run("GET /api/products without API key returns 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GET /health returns 200 without API key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRFQAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	w := doRequest(server, http.MethodPost, "/api/rfq/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var session handler.SessionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&session))
	require.NotEmpty(t, session.SessionID)

	base := "/api/rfq/sessions/" + session.SessionID

	t.Run("adds an item once", func(t *testing.T) {
		body := []byte(`{"id":"P001","name":"Gas Analyzer"}`)

		w := doRequest(server, http.MethodPost, base+"/items", body)
		require.Equal(t, http.StatusCreated, w.Code)

		w = doRequest(server, http.MethodPost, base+"/items", body)
		require.Equal(t, http.StatusOK, w.Code)

		var resp handler.AddItemResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.False(t, resp.Added)
		assert.Equal(t, 1, resp.Count)
	})

	t.Run("lists and removes items", func(t *testing.T) {
		w := doRequest(server, http.MethodGet, base, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var items handler.ItemsResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&items))
		require.Equal(t, 1, items.Count)

		w = doRequest(server, http.MethodDelete, base+"/items/P001", nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doRequest(server, http.MethodGet, base, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.NewDecoder(w.Body).Decode(&items))
		assert.Equal(t, 0, items.Count)
	})
}

func TestPrefsAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	w := doRequest(server, http.MethodGet, "/api/prefs/theme", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var theme handler.ThemeResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&theme))
	assert.False(t, theme.Dark)

	w = doRequest(server, http.MethodPost, "/api/prefs/theme/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&theme))
	assert.True(t, theme.Dark)
}

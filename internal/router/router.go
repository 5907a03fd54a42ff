package router

import (
	"net/http"
	"strings"

	"petro-catalog/internal/handler"
	"petro-catalog/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	menuHandler *handler.MenuHandler,
	contentHandler *handler.ContentHandler,
	rfqHandler *handler.RFQHandler,
	prefsHandler *handler.PrefsHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/products" || r.URL.Path == "/api/products/":
			productHandler.GetAll(w, r)
		case r.URL.Path == "/api/products/featured":
			productHandler.GetFeatured(w, r)
		default:
			productHandler.GetByID(w, r)
		}
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	mux.HandleFunc("/api/menu", menuHandler.Get)

	mux.HandleFunc("/api/content/home", contentHandler.GetHome)
	mux.HandleFunc("/api/content/links", contentHandler.GetLinks)
	mux.HandleFunc("/api/contact/links", contentHandler.GetContactLinks)

	// Quote-request handler function
	rfqRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/rfq/sessions" || r.URL.Path == "/api/rfq/sessions/" {
			rfqHandler.CreateSession(w, r)
			return
		}

		if strings.HasPrefix(r.URL.Path, "/api/rfq/sessions/") {
			rfqHandler.Dispatch(w, r)
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}

	// Register quote-request routes (both with and without trailing slash)
	mux.HandleFunc("/api/rfq/sessions", rfqRouteHandler)
	mux.HandleFunc("/api/rfq/sessions/", rfqRouteHandler)

	mux.HandleFunc("/api/prefs/theme", prefsHandler.GetTheme)
	mux.HandleFunc("/api/prefs/theme/toggle", prefsHandler.ToggleTheme)

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}

package handler

import (
	"net/http"
	"strconv"
	"strings"

	"petro-catalog/internal/catalog"
	"petro-catalog/internal/i18n"
	"petro-catalog/internal/model"
	"petro-catalog/internal/resolver"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	store  *catalog.Store
	logger zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(store *catalog.Store, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		store:  store,
		logger: logger.With().Str("handler", "product").Logger(),
	}
}

// ListResponse is the product listing payload. Warning carries the localized
// degraded-catalogue notice when the store is serving fallback data.
type ListResponse struct {
	Products []model.Product `json:"products"`
	Total    int             `json:"total"`
	Warning  string          `json:"warning,omitempty"`
}

// LocalizedProduct is the language-resolved view of one product.
type LocalizedProduct struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Applications []string `json:"applications"`
}

// DetailResponse is the product detail payload: the raw record, its
// localized fields, and the related products set.
type DetailResponse struct {
	Product   model.Product    `json:"product"`
	Localized LocalizedProduct `json:"localized"`
	Related   []model.Product  `json:"related"`
	Warning   string           `json:"warning,omitempty"`
}

// GetAll handles GET /api/products requests with pagination, category
// filtering and search.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	lang, ok := language(w, r, h.logger)
	if !ok {
		return
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit parameter", h.logger)
			return
		}
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	offset := 0
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		var err error
		offset, err = strconv.Atoi(offsetStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid offset parameter", h.logger)
			return
		}
	}
	if offset < 0 {
		offset = 0
	}

	var products []model.Product
	switch {
	case r.URL.Query().Get("q") != "":
		products = h.store.Search(r.URL.Query().Get("q"))
	case r.URL.Query().Get("category") != "":
		products = h.store.ByCategory(r.URL.Query().Get("category"))
	default:
		products = h.store.Products()
	}

	total := len(products)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	writeJSON(w, http.StatusOK, ListResponse{
		Products: products[offset:end],
		Total:    total,
		Warning:  h.degradedWarning(lang),
	})
}

// GetFeatured handles GET /api/products/featured requests.
func (h *ProductHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	lang, ok := language(w, r, h.logger)
	if !ok {
		return
	}

	count := 6
	if countStr := r.URL.Query().Get("count"); countStr != "" {
		var err error
		count, err = strconv.Atoi(countStr)
		if err != nil || count < 0 {
			writeError(w, http.StatusBadRequest, "invalid count parameter", h.logger)
			return
		}
	}

	products := h.store.Featured(count)
	writeJSON(w, http.StatusOK, ListResponse{
		Products: products,
		Total:    len(products),
		Warning:  h.degradedWarning(lang),
	})
}

// GetByID handles GET /api/products/{id} requests. A missing product
// redirects to the catalogue listing instead of rendering a missing-product
// response.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	lang, ok := language(w, r, h.logger)
	if !ok {
		return
	}

	// Expecting path: /api/products/{id}
	productID := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if productID == "" || strings.Contains(productID, "/") {
		http.Redirect(w, r, "/api/products", http.StatusSeeOther)
		return
	}

	product := h.store.Product(productID)
	if product == nil {
		h.logger.Debug().Str("product_id", productID).Msg("product not found, redirecting to listing")
		http.Redirect(w, r, "/api/products", http.StatusSeeOther)
		return
	}

	writeJSON(w, http.StatusOK, DetailResponse{
		Product: *product,
		Localized: LocalizedProduct{
			Name:         i18n.Pick(lang, product.Name, product.NameEn, ""),
			Category:     i18n.Pick(lang, product.Category, product.CategoryEn, ""),
			Description:  i18n.Pick(lang, product.Description, product.DescriptionEn, i18n.FallbackDescription(lang)),
			Applications: i18n.PickList(lang, product.Applications, product.ApplicationsEn),
		},
		Related: resolver.Related(*product, h.store.Products()),
		Warning: h.degradedWarning(lang),
	})
}

func (h *ProductHandler) degradedWarning(lang model.Language) string {
	if !h.store.Degraded() {
		return ""
	}
	return i18n.Pick(lang,
		"داده‌های کاتالوگ به‌صورت نمایشی بارگذاری شده‌اند",
		"Catalogue data is being served from the demo dataset",
		"")
}

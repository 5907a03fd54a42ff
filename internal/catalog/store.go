package catalog

import (
	"context"
	"strings"
	"sync"

	"petro-catalog/internal/model"

	"github.com/rs/zerolog"
)

// Store holds one loaded catalogue snapshot. Records are read-only after
// Load returns, so reads need no locking; the mutex only serialises loads.
type Store struct {
	mu       sync.RWMutex
	snap     Snapshot
	degraded bool
	logger   zerolog.Logger
}

// NewStore creates an empty catalogue store.
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		logger: logger.With().Str("component", "catalog-store").Logger(),
	}
}

// Load fetches the full catalogue from the source. Categories, subcategories
// and products are fetched concurrently. When the source fails, the store
// falls back to the built-in demo dataset and marks itself degraded; the
// caller still gets a working catalogue.
func (s *Store) Load(ctx context.Context, source Source) error {
	var (
		wg            sync.WaitGroup
		categories    []model.Category
		subcategories []model.Subcategory
		products      []model.Product
		catErr        error
		subErr        error
		prodErr       error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		categories, catErr = source.Categories(ctx)
	}()
	go func() {
		defer wg.Done()
		subcategories, subErr = source.Subcategories(ctx)
	}()
	go func() {
		defer wg.Done()
		products, prodErr = source.Products(ctx)
	}()
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, err := range []error{catErr, subErr, prodErr} {
		if err != nil {
			s.logger.Warn().
				Err(err).
				Msg("catalog source failed, falling back to demo dataset")
			s.snap = DemoSnapshot()
			s.degraded = true
			return nil
		}
	}

	s.snap = Snapshot{
		Categories:    categories,
		Subcategories: subcategories,
		Products:      products,
	}
	s.degraded = false

	s.logger.Info().
		Int("categories", len(categories)).
		Int("subcategories", len(subcategories)).
		Int("products", len(products)).
		Msg("catalog loaded")

	return nil
}

// Degraded reports whether the store is serving the fallback demo dataset.
func (s *Store) Degraded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.degraded
}

// Categories returns the loaded categories in display order.
func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Categories
}

// Subcategories returns the loaded subcategories in display order.
func (s *Store) Subcategories() []model.Subcategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Subcategories
}

// Products returns the loaded products in display order.
func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Products
}

// Product returns the product with the given id, or nil when absent.
func (s *Store) Product(id string) *model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.snap.Products {
		if s.snap.Products[i].ID == id {
			p := s.snap.Products[i]
			return &p
		}
	}
	return nil
}

// Featured returns the first count products of the snapshot.
func (s *Store) Featured(count int) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if count < 0 {
		count = 0
	}
	if count > len(s.snap.Products) {
		count = len(s.snap.Products)
	}
	return s.snap.Products[:count]
}

// Search returns products whose name or category display string contains the
// query, case-insensitively, in either language. Order follows the snapshot.
func (s *Store) Search(query string) []model.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []model.Product
	for _, p := range s.snap.Products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.NameEn), query) ||
			strings.Contains(strings.ToLower(p.Category), query) ||
			strings.Contains(strings.ToLower(p.CategoryEn), query) {
			matches = append(matches, p)
		}
	}
	return matches
}

// ByCategory returns products whose denormalised category display string
// equals the given value in either language.
func (s *Store) ByCategory(category string) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []model.Product
	for _, p := range s.snap.Products {
		if p.Category == category || p.CategoryEn == category {
			matches = append(matches, p)
		}
	}
	return matches
}

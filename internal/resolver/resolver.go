// Package resolver looks up products and derives the related-products set
// shown on a detail view.
package resolver

import (
	"context"
	"fmt"

	"petro-catalog/internal/catalog"
	"petro-catalog/internal/model"

	"github.com/rs/zerolog"
)

// relatedLimit caps the related-products set on a detail view.
const relatedLimit = 4

// Service resolves products against a catalogue source.
type Service struct {
	source catalog.Source
	logger zerolog.Logger
}

// NewService creates a new product resolver service.
func NewService(source catalog.Source, logger zerolog.Logger) *Service {
	return &Service{
		source: source,
		logger: logger.With().Str("service", "resolver").Logger(),
	}
}

// Resolve returns the product with the given id. A completed lookup with no
// match returns model.ErrProductNotFound; callers redirect to the catalogue
// listing rather than render a missing-product view.
func (s *Service) Resolve(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, err := s.source.Product(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to resolve product")
		return nil, fmt.Errorf("failed to resolve product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Related returns every product sharing the target's category display
// string, excluding the target itself, capped at the first four in input
// order. Pure and deterministic; recomputed on every call.
func Related(product model.Product, all []model.Product) []model.Product {
	related := make([]model.Product, 0, relatedLimit)
	for _, p := range all {
		if p.ID == product.ID || p.Category != product.Category {
			continue
		}
		related = append(related, p)
		if len(related) == relatedLimit {
			break
		}
	}
	return related
}

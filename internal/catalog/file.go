package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"petro-catalog/internal/model"

	"github.com/rs/zerolog"
)

// fileSource implements Source by reading a catalogue JSON file from the
// local file system. The whole file is parsed on every call; the Store loads
// it exactly once per snapshot so this stays cheap.
type fileSource struct {
	path   string
	logger zerolog.Logger
}

// NewFileSource creates a new file-based catalogue source.
func NewFileSource(path string, logger zerolog.Logger) Source {
	return &fileSource{
		path:   path,
		logger: logger.With().Str("source", "file").Logger(),
	}
}

func (s *fileSource) read(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(s.path)
	if err != nil {
		s.logger.Error().Err(err).Str("file", s.path).Msg("failed to open catalog file")
		return nil, fmt.Errorf("failed to open catalog file %s: %w", s.path, err)
	}
	defer file.Close()

	var snap Snapshot
	if err := json.NewDecoder(file).Decode(&snap); err != nil {
		s.logger.Error().Err(err).Str("file", s.path).Msg("failed to decode catalog file")
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", s.path, err)
	}

	s.logger.Debug().
		Str("file", s.path).
		Int("categories", len(snap.Categories)).
		Int("subcategories", len(snap.Subcategories)).
		Int("products", len(snap.Products)).
		Msg("catalog file read")

	return &snap, nil
}

// Categories returns all categories in file order.
func (s *fileSource) Categories(ctx context.Context) ([]model.Category, error) {
	snap, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Categories, nil
}

// Subcategories returns all subcategories in file order.
func (s *fileSource) Subcategories(ctx context.Context) ([]model.Subcategory, error) {
	snap, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Subcategories, nil
}

// Products returns all products in file order.
func (s *fileSource) Products(ctx context.Context) ([]model.Product, error) {
	snap, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Products, nil
}

// Product returns a single product by id, or (nil, nil) when absent.
func (s *fileSource) Product(ctx context.Context, id string) (*model.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}

package catalog

import (
	"context"

	"petro-catalog/internal/model"
)

// Source provides the raw catalogue records. Implementations are free to
// back this with Postgres, a JSON file, or an object store; the rest of the
// application only ever sees the loaded snapshot.
type Source interface {
	// Categories returns all categories in display order.
	Categories(ctx context.Context) ([]model.Category, error)

	// Subcategories returns all subcategories in display order.
	Subcategories(ctx context.Context) ([]model.Subcategory, error)

	// Products returns all products in display order.
	Products(ctx context.Context) ([]model.Product, error)

	// Product returns a single product by id, or (nil, nil) when no product
	// with that id exists.
	Product(ctx context.Context, id string) (*model.Product, error)
}

// Snapshot is one immutable load of the full catalogue.
type Snapshot struct {
	Categories    []model.Category    `json:"categories"`
	Subcategories []model.Subcategory `json:"subcategories"`
	Products      []model.Product     `json:"products"`
}

package catalog

import (
	"context"
	"fmt"

	"petro-catalog/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// postgresSource implements Source using PostgreSQL.
type postgresSource struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresSource creates a new PostgreSQL-backed catalogue source.
func NewPostgresSource(pool *pgxpool.Pool, logger zerolog.Logger) Source {
	return &postgresSource{
		pool:   pool,
		logger: logger.With().Str("source", "postgres").Logger(),
	}
}

// Categories returns all categories in display order.
func (s *postgresSource) Categories(ctx context.Context) ([]model.Category, error) {
	query := `
		SELECT id, name, name_en, image
		FROM categories
		ORDER BY position
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.NameEn, &c.Image); err != nil {
			s.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		s.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// Subcategories returns all subcategories in display order.
func (s *postgresSource) Subcategories(ctx context.Context) ([]model.Subcategory, error) {
	query := `
		SELECT id, category_id, name, name_en
		FROM subcategories
		ORDER BY position
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to query subcategories")
		return nil, fmt.Errorf("failed to query subcategories: %w", err)
	}
	defer rows.Close()

	var subcategories []model.Subcategory
	for rows.Next() {
		var sc model.Subcategory
		if err := rows.Scan(&sc.ID, &sc.CategoryID, &sc.Name, &sc.NameEn); err != nil {
			s.logger.Error().Err(err).Msg("failed to scan subcategory row")
			return nil, fmt.Errorf("failed to scan subcategory: %w", err)
		}
		subcategories = append(subcategories, sc)
	}

	if err := rows.Err(); err != nil {
		s.logger.Error().Err(err).Msg("error iterating subcategory rows")
		return nil, fmt.Errorf("error iterating subcategories: %w", err)
	}

	return subcategories, nil
}

// Products returns all products in display order.
func (s *postgresSource) Products(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id, category, category_en, name, name_en,
		       description, description_en, applications, applications_en,
		       standards, specs, image, in_stock
		FROM products
		ORDER BY position
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		s.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// Product returns a single product by id.
func (s *postgresSource) Product(ctx context.Context, id string) (*model.Product, error) {
	query := `
		SELECT id, category, category_en, name, name_en,
		       description, description_en, applications, applications_en,
		       standards, specs, image, in_stock
		FROM products
		WHERE id = $1
	`

	rows, err := s.pool.Query(ctx, query, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			s.logger.Error().Err(err).Str("product_id", id).Msg("failed to query product")
			return nil, fmt.Errorf("failed to query product: %w", err)
		}
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, nil
	}

	p, err := scanProduct(rows)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to scan product row")
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}

	return &p, nil
}

// scanProduct reads one product row. Applications, standards and specs are
// stored as text[] and jsonb columns, which pgx scans directly into slices
// and maps.
func scanProduct(rows pgx.Rows) (model.Product, error) {
	var p model.Product
	err := rows.Scan(
		&p.ID, &p.Category, &p.CategoryEn, &p.Name, &p.NameEn,
		&p.Description, &p.DescriptionEn, &p.Applications, &p.ApplicationsEn,
		&p.Standards, &p.Specs, &p.Image, &p.InStock,
	)
	return p, err
}

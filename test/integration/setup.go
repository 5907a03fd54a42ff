package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"petro-catalog/internal/config"
	"petro-catalog/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Create connection pool
	dbConfig := config.DatabaseConfig{
		Host:            "localhost",
		Port:            5432,
		User:            "testuser",
		Password:        "testpass",
		Database:        "testdb",
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	logger := zerolog.Nop()
	pool, err := database.NewPool(ctx, dbConfig, logger)
	if err != nil {
		// Try with connection string directly
		poolConfig, parseErr := pgxpool.ParseConfig(connStr)
		if parseErr != nil {
			t.Fatalf("failed to parse connection string: %v", parseErr)
		}
		pool, err = pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			t.Fatalf("failed to create connection pool: %v", err)
		}
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	// Create schema
	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the catalogue schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS categories (
			id VARCHAR(50) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			name_en VARCHAR(255) NOT NULL,
			image VARCHAR(500) NOT NULL DEFAULT '',
			position INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS subcategories (
			id VARCHAR(50) PRIMARY KEY,
			category_id VARCHAR(50) NOT NULL,
			name VARCHAR(255) NOT NULL,
			name_en VARCHAR(255) NOT NULL,
			position INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(50) PRIMARY KEY,
			category VARCHAR(255) NOT NULL,
			category_en VARCHAR(255) NOT NULL,
			name VARCHAR(255) NOT NULL,
			name_en VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			description_en TEXT NOT NULL DEFAULT '',
			applications TEXT[] NOT NULL DEFAULT '{}',
			applications_en TEXT[] NOT NULL DEFAULT '{}',
			standards TEXT[] NOT NULL DEFAULT '{}',
			specs JSONB NOT NULL DEFAULT '{}',
			image VARCHAR(500) NOT NULL DEFAULT '',
			in_stock BOOLEAN NOT NULL DEFAULT TRUE,
			position INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_subcategories_category_id ON subcategories(category_id);
		CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedCatalog inserts test catalogue data into the database.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	categories := []struct {
		id       string
		name     string
		nameEn   string
		position int
	}{
		{"cat-lab", "تجهیزات آزمایشگاهی", "Laboratory Equipment", 1},
		{"cat-inst", "ابزار دقیق", "Precision Instruments", 2},
	}
	for _, c := range categories {
		_, err := pool.Exec(ctx,
			"INSERT INTO categories (id, name, name_en, position) VALUES ($1, $2, $3, $4)",
			c.id, c.name, c.nameEn, c.position,
		)
		if err != nil {
			t.Fatalf("failed to seed category %s: %v", c.id, err)
		}
	}

	subcategories := []struct {
		id         string
		categoryID string
		name       string
		nameEn     string
		position   int
	}{
		{"sub-analyzers", "cat-lab", "آنالایزرها", "Analyzers", 1},
		{"sub-gauges", "cat-inst", "گیج‌ها", "Gauges", 2},
	}
	for _, sc := range subcategories {
		_, err := pool.Exec(ctx,
			"INSERT INTO subcategories (id, category_id, name, name_en, position) VALUES ($1, $2, $3, $4, $5)",
			sc.id, sc.categoryID, sc.name, sc.nameEn, sc.position,
		)
		if err != nil {
			t.Fatalf("failed to seed subcategory %s: %v", sc.id, err)
		}
	}

	products := []struct {
		id         string
		category   string
		categoryEn string
		name       string
		nameEn     string
		position   int
	}{
		{"P001", "تجهیزات آزمایشگاهی", "Laboratory Equipment", "آنالایزر گاز", "Gas Analyzer", 1},
		{"P002", "تجهیزات آزمایشگاهی", "Laboratory Equipment", "اسپکتروفتومتر", "Spectrophotometer", 2},
		{"P003", "ابزار دقیق", "Precision Instruments", "گیج فشار", "Pressure Gauge", 3},
		{"P004", "تجهیزات آزمایشگاهی", "Laboratory Equipment", "سانتریفیوژ", "Centrifuge", 4},
		{"P005", "ابزار دقیق", "Precision Instruments", "فلومتر", "Flow Meter", 5},
	}
	for _, p := range products {
		_, err := pool.Exec(ctx,
			`INSERT INTO products (id, category, category_en, name, name_en, position)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			p.id, p.category, p.categoryEn, p.name, p.nameEn, p.position,
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.id, err)
		}
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"products", "subcategories", "categories"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}

package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, snap Snapshot) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.json")
	data, err := json.Marshal(snap)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestFileSource_Load(t *testing.T) {
	path := writeCatalogFile(t, testSnapshot())
	source := NewFileSource(path, zerolog.Nop())
	ctx := context.Background()

	categories, err := source.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, "cat1", categories[0].ID)

	subcategories, err := source.Subcategories(ctx)
	require.NoError(t, err)
	assert.Len(t, subcategories, 1)

	products, err := source.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Alpha Analyzer", products[0].NameEn)
}

func TestFileSource_Product(t *testing.T) {
	path := writeCatalogFile(t, testSnapshot())
	source := NewFileSource(path, zerolog.Nop())
	ctx := context.Background()

	p, err := source.Product(ctx, "P003")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Gamma Meter", p.NameEn)

	// Absent id yields (nil, nil), mirroring the Postgres source.
	p, err = source.Product(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestFileSource_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing file", func(t *testing.T) {
		source := NewFileSource(filepath.Join(t.TempDir(), "absent.json"), zerolog.Nop())
		_, err := source.Products(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open catalog file")
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		source := NewFileSource(path, zerolog.Nop())
		_, err := source.Products(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode catalog file")
	})

	t.Run("Cancelled context", func(t *testing.T) {
		path := writeCatalogFile(t, testSnapshot())
		source := NewFileSource(path, zerolog.Nop())

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := source.Products(cancelled)
		require.ErrorIs(t, err, context.Canceled)
	})
}

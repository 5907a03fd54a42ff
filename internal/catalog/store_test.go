package catalog

import (
	"context"
	"errors"
	"testing"

	"petro-catalog/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource returns fixed data or a fixed error.
type stubSource struct {
	snap Snapshot
	err  error
}

func (s *stubSource) Categories(ctx context.Context) ([]model.Category, error) {
	return s.snap.Categories, s.err
}

func (s *stubSource) Subcategories(ctx context.Context) ([]model.Subcategory, error) {
	return s.snap.Subcategories, s.err
}

func (s *stubSource) Products(ctx context.Context) ([]model.Product, error) {
	return s.snap.Products, s.err
}

func (s *stubSource) Product(ctx context.Context, id string) (*model.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.snap.Products {
		if s.snap.Products[i].ID == id {
			return &s.snap.Products[i], nil
		}
	}
	return nil, nil
}

func testSnapshot() Snapshot {
	return Snapshot{
		Categories: []model.Category{
			{ID: "cat1", Name: "دسته یک", NameEn: "Category One"},
			{ID: "cat2", Name: "دسته دو", NameEn: "Category Two"},
		},
		Subcategories: []model.Subcategory{
			{ID: "s1", CategoryID: "cat1", Name: "زیر یک", NameEn: "Sub One"},
		},
		Products: []model.Product{
			{ID: "P001", Category: "دسته یک", CategoryEn: "Category One", Name: "محصول اول", NameEn: "Alpha Analyzer"},
			{ID: "P002", Category: "دسته یک", CategoryEn: "Category One", Name: "محصول دوم", NameEn: "Beta Gauge"},
			{ID: "P003", Category: "دسته دو", CategoryEn: "Category Two", Name: "محصول سوم", NameEn: "Gamma Meter"},
		},
	}
}

func TestStore_Load(t *testing.T) {
	store := NewStore(zerolog.Nop())
	source := &stubSource{snap: testSnapshot()}

	require.NoError(t, store.Load(context.Background(), source))

	assert.False(t, store.Degraded())
	assert.Len(t, store.Categories(), 2)
	assert.Len(t, store.Subcategories(), 1)
	assert.Len(t, store.Products(), 3)
}

func TestStore_Load_FallsBackToDemoData(t *testing.T) {
	store := NewStore(zerolog.Nop())
	source := &stubSource{err: errors.New("connection refused")}

	require.NoError(t, store.Load(context.Background(), source))

	assert.True(t, store.Degraded())
	assert.NotEmpty(t, store.Categories())
	assert.NotEmpty(t, store.Products())
}

func TestStore_Product(t *testing.T) {
	store := NewStore(zerolog.Nop())
	require.NoError(t, store.Load(context.Background(), &stubSource{snap: testSnapshot()}))

	p := store.Product("P002")
	require.NotNil(t, p)
	assert.Equal(t, "Beta Gauge", p.NameEn)

	assert.Nil(t, store.Product("missing"))
}

func TestStore_Featured(t *testing.T) {
	store := NewStore(zerolog.Nop())
	require.NoError(t, store.Load(context.Background(), &stubSource{snap: testSnapshot()}))

	tests := []struct {
		name     string
		count    int
		expected int
	}{
		{name: "Fewer than available", count: 2, expected: 2},
		{name: "More than available", count: 10, expected: 3},
		{name: "Zero", count: 0, expected: 0},
		{name: "Negative", count: -1, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, store.Featured(tt.count), tt.expected)
		})
	}
}

func TestStore_Search(t *testing.T) {
	store := NewStore(zerolog.Nop())
	require.NoError(t, store.Load(context.Background(), &stubSource{snap: testSnapshot()}))

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "English name match", query: "alpha", expected: []string{"P001"}},
		{name: "Case insensitive", query: "GAMMA", expected: []string{"P003"}},
		{name: "Persian name match", query: "محصول دوم", expected: []string{"P002"}},
		{name: "Category match preserves order", query: "category one", expected: []string{"P001", "P002"}},
		{name: "No match", query: "zzz", expected: nil},
		{name: "Blank query", query: "   ", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := store.Search(tt.query)
			ids := make([]string, 0, len(results))
			for _, p := range results {
				ids = append(ids, p.ID)
			}
			if tt.expected == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tt.expected, ids)
			}
		})
	}
}

func TestStore_ByCategory(t *testing.T) {
	store := NewStore(zerolog.Nop())
	require.NoError(t, store.Load(context.Background(), &stubSource{snap: testSnapshot()}))

	// Matches either language's display string.
	assert.Len(t, store.ByCategory("دسته یک"), 2)
	assert.Len(t, store.ByCategory("Category Two"), 1)
	assert.Empty(t, store.ByCategory("Unknown"))
}

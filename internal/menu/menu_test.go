package menu

import (
	"testing"

	"petro-catalog/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	categories := []model.Category{
		{ID: "cat1", Name: "دسته یک", NameEn: "Category One"},
		{ID: "cat2", Name: "دسته دو", NameEn: "Category Two"},
	}
	subcategories := []model.Subcategory{
		{ID: "s1", CategoryID: "cat1"},
		{ID: "s2", CategoryID: "cat9"}, // orphan
		{ID: "s3", CategoryID: "cat1"},
	}

	groups := Compose(categories, subcategories, zerolog.Nop())

	require.Len(t, groups, 2)

	// cat1 keeps its subcategories in input order.
	assert.Equal(t, "cat1", groups[0].Category.ID)
	require.Len(t, groups[0].Children, 2)
	assert.Equal(t, "s1", groups[0].Children[0].ID)
	assert.Equal(t, "s3", groups[0].Children[1].ID)

	// cat2 still appears with an empty children slice.
	assert.Equal(t, "cat2", groups[1].Category.ID)
	assert.Empty(t, groups[1].Children)

	// The orphan appears nowhere.
	for _, g := range groups {
		for _, child := range g.Children {
			assert.NotEqual(t, "s2", child.ID)
		}
	}
}

func TestCompose_PreservesCategoryOrder(t *testing.T) {
	categories := []model.Category{
		{ID: "z"},
		{ID: "a"},
		{ID: "m"},
	}

	groups := Compose(categories, nil, zerolog.Nop())

	require.Len(t, groups, 3)
	assert.Equal(t, "z", groups[0].Category.ID)
	assert.Equal(t, "a", groups[1].Category.ID)
	assert.Equal(t, "m", groups[2].Category.ID)
}

func TestCompose_EmptyInputs(t *testing.T) {
	assert.Empty(t, Compose(nil, nil, zerolog.Nop()))

	// Subcategories without any categories are all orphans.
	groups := Compose(nil, []model.Subcategory{{ID: "s1", CategoryID: "cat1"}}, zerolog.Nop())
	assert.Empty(t, groups)
}

func TestCompose_Idempotent(t *testing.T) {
	categories := []model.Category{{ID: "cat1"}, {ID: "cat2"}}
	subcategories := []model.Subcategory{
		{ID: "s1", CategoryID: "cat2"},
		{ID: "s2", CategoryID: "cat1"},
	}

	first := Compose(categories, subcategories, zerolog.Nop())
	second := Compose(categories, subcategories, zerolog.Nop())

	assert.Equal(t, first, second)
}

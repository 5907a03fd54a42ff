// Package menu builds the navigation mega-menu from the flat category and
// subcategory lists.
package menu

import (
	"petro-catalog/internal/model"

	"github.com/rs/zerolog"
)

// Group is one category with its subcategories, in input order.
type Group struct {
	Category model.Category      `json:"category"`
	Children []model.Subcategory `json:"children"`
}

// Compose groups subcategories under their categories. Category order and
// subcategory order are preserved as given; categories with no subcategories
// still appear with an empty Children slice. A subcategory whose CategoryID
// matches no category is dropped from every group and logged at warn level.
// Pure projection: safe to recompute on every call.
func Compose(categories []model.Category, subcategories []model.Subcategory, logger zerolog.Logger) []Group {
	known := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		known[c.ID] = struct{}{}
	}

	for _, sub := range subcategories {
		if _, ok := known[sub.CategoryID]; !ok {
			logger.Warn().
				Str("subcategory_id", sub.ID).
				Str("category_id", sub.CategoryID).
				Msg("subcategory references unknown category, dropping from menu")
		}
	}

	groups := make([]Group, 0, len(categories))
	for _, c := range categories {
		children := make([]model.Subcategory, 0)
		for _, sub := range subcategories {
			if sub.CategoryID == c.ID {
				children = append(children, sub)
			}
		}
		groups = append(groups, Group{Category: c, Children: children})
	}

	return groups
}

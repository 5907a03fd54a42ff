package model

// Language selects which side of a bilingual record is read.
type Language string

const (
	LanguageFA Language = "fa"
	LanguageEN Language = "en"
)

// Valid reports whether the language is one of the two supported values.
func (l Language) Valid() bool {
	return l == LanguageFA || l == LanguageEN
}

// Category is a top-level product grouping used to build the navigation menu.
type Category struct {
	ID     string `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	NameEn string `json:"nameEn" db:"name_en"`
	Image  string `json:"image" db:"image"`
}

// Subcategory belongs to exactly one category via CategoryID.
type Subcategory struct {
	ID         string `json:"id" db:"id"`
	CategoryID string `json:"categoryId" db:"category_id"`
	Name       string `json:"name" db:"name"`
	NameEn     string `json:"nameEn" db:"name_en"`
}

// Product represents an item in the equipment catalogue. The Category and
// CategoryEn fields are denormalised display strings, not foreign keys into
// the Category id space.
type Product struct {
	ID             string            `json:"id" db:"id"`
	Category       string            `json:"category" db:"category"`
	CategoryEn     string            `json:"categoryEn" db:"category_en"`
	Name           string            `json:"name" db:"name"`
	NameEn         string            `json:"nameEn" db:"name_en"`
	Description    string            `json:"description" db:"description"`
	DescriptionEn  string            `json:"descriptionEn" db:"description_en"`
	Applications   []string          `json:"applications" db:"applications"`
	ApplicationsEn []string          `json:"applicationsEn" db:"applications_en"`
	Standards      []string          `json:"standards" db:"standards"`
	Specs          map[string]string `json:"specs" db:"specs"`
	Image          string            `json:"image" db:"image"`
	InStock        bool              `json:"inStock" db:"in_stock"`
}

// RFQItem is the projection of a product that a quote-request list holds.
type RFQItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

// RFQItemFromProduct projects a product into a quote-request item, picking
// the name for the given language.
func RFQItemFromProduct(p Product, lang Language) RFQItem {
	name := p.Name
	if lang == LanguageEN {
		name = p.NameEn
	}
	return RFQItem{
		ID:       p.ID,
		Name:     name,
		Category: p.Category,
		Image:    p.Image,
	}
}

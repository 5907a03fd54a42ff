// Package content serves the static, localized marketing copy of the site:
// homepage stats and features, certifications, and navigation links.
package content

import (
	"petro-catalog/internal/i18n"
	"petro-catalog/internal/model"
)

// Stat is one homepage counter.
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Feature is one homepage benefit card.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// NavLink is one header or footer navigation entry.
type NavLink struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// NavSection groups sub-links under a top-level navigation entry.
type NavSection struct {
	Label string    `json:"label"`
	Path  string    `json:"path"`
	Links []NavLink `json:"links,omitempty"`
}

// Home is the localized homepage content block.
type Home struct {
	Stats          []Stat    `json:"stats"`
	Features       []Feature `json:"features"`
	Certifications []string  `json:"certifications"`
}

// Links is the localized navigation structure for header and footer.
type Links struct {
	Nav    []NavSection `json:"nav"`
	Footer []NavLink    `json:"footer"`
}

type bilingual struct {
	fa string
	en string
}

func (b bilingual) pick(lang model.Language) string {
	return i18n.Pick(lang, b.fa, b.en, "")
}

var stats = []struct {
	value string
	label bilingual
}{
	{value: "100+", label: bilingual{fa: "پروژه موفق", en: "Completed Projects"}},
	{value: "500+", label: bilingual{fa: "مشتری راضی", en: "Satisfied Clients"}},
	{value: "1000+", label: bilingual{fa: "محصول", en: "Products"}},
	{value: "24/7", label: bilingual{fa: "پشتیبانی", en: "Support"}},
}

var features = []struct {
	title bilingual
	desc  bilingual
}{
	{
		title: bilingual{fa: "کیفیت تضمین‌شده", en: "Guaranteed Quality"},
		desc:  bilingual{fa: "محصولات اصل با استانداردهای بین‌المللی", en: "Genuine products meeting international standards"},
	},
	{
		title: bilingual{fa: "پشتیبانی فنی", en: "Technical Support"},
		desc:  bilingual{fa: "تیم کارشناسی پاسخگوی شما", en: "An expert team at your service"},
	},
	{
		title: bilingual{fa: "تحویل سریع", en: "Fast Delivery"},
		desc:  bilingual{fa: "تأمین و ارسال در کوتاه‌ترین زمان", en: "Sourcing and shipping in the shortest time"},
	},
	{
		title: bilingual{fa: "گارانتی معتبر", en: "Valid Warranty"},
		desc:  bilingual{fa: "ضمانت اصالت و خدمات پس از فروش", en: "Authenticity guarantee and after-sales service"},
	},
}

var certifications = []string{
	"ISO 9001",
	"ISO 14001",
	"OHSAS 18001",
	"API",
	"ASME",
	"IEC",
	"ATEX",
}

// HomeContent returns the localized homepage content block.
func HomeContent(lang model.Language) Home {
	home := Home{
		Stats:          make([]Stat, 0, len(stats)),
		Features:       make([]Feature, 0, len(features)),
		Certifications: append([]string(nil), certifications...),
	}
	for _, s := range stats {
		home.Stats = append(home.Stats, Stat{Value: s.value, Label: s.label.pick(lang)})
	}
	for _, f := range features {
		home.Features = append(home.Features, Feature{
			Title:       f.title.pick(lang),
			Description: f.desc.pick(lang),
		})
	}
	return home
}

// NavLinks returns the localized header navigation and footer quick links.
func NavLinks(lang model.Language) Links {
	nav := []NavSection{
		{Label: i18n.Pick(lang, "خانه", "Home", ""), Path: "/"},
		{Label: i18n.Pick(lang, "محصولات", "Products", ""), Path: "/products"},
		{
			Label: i18n.Pick(lang, "خدمات", "Services", ""),
			Path:  "/services",
			Links: []NavLink{
				{Label: i18n.Pick(lang, "واردات و تأمین", "Import & Supply", ""), Path: "/services/import"},
				{Label: i18n.Pick(lang, "نصب و راه‌اندازی", "Installation", ""), Path: "/services/installation"},
				{Label: i18n.Pick(lang, "تعمیر و نگهداری", "Maintenance", ""), Path: "/services/maintenance"},
				{Label: i18n.Pick(lang, "مشاوره فنی", "Technical Consulting", ""), Path: "/services/consulting"},
			},
		},
		{Label: i18n.Pick(lang, "درباره ما", "About", ""), Path: "/about"},
		{
			Label: i18n.Pick(lang, "منابع", "Resources", ""),
			Path:  "/resources",
			Links: []NavLink{
				{Label: i18n.Pick(lang, "راهنماهای فنی", "Technical Guides", ""), Path: "/resources/guides"},
				{Label: i18n.Pick(lang, "وبلاگ", "Blog", ""), Path: "/resources/blog"},
				{Label: i18n.Pick(lang, "کاتالوگ‌ها", "Catalogs", ""), Path: "/resources/catalogs"},
				{Label: i18n.Pick(lang, "سؤالات متداول", "FAQ", ""), Path: "/resources/faq"},
			},
		},
		{Label: i18n.Pick(lang, "تماس با ما", "Contact", ""), Path: "/contact"},
	}

	footer := []NavLink{
		{Label: i18n.Pick(lang, "خانه", "Home", ""), Path: "/"},
		{Label: i18n.Pick(lang, "محصولات", "Products", ""), Path: "/products"},
		{Label: i18n.Pick(lang, "خدمات", "Services", ""), Path: "/services"},
		{Label: i18n.Pick(lang, "درباره ما", "About", ""), Path: "/about"},
	}

	return Links{Nav: nav, Footer: footer}
}

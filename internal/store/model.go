// Package store defines the storefront configuration model, its JSON
// persistence (with legacy-shape migration), and the validation rules
// applied before an export.
package store

// SchemaVersion is the current on-disk schema version. Files without a
// version field are treated as the legacy v1 flat shape and migrated.
const SchemaVersion = 2

// SectionKey identifies one region of the generated home page.
type SectionKey string

const (
	SectionHeader           SectionKey = "header"
	SectionHero             SectionKey = "hero"
	SectionFeaturedProducts SectionKey = "featuredProducts"
	SectionBestSellers      SectionKey = "bestSellers"
	SectionOnSale           SectionKey = "onSale"
	SectionAllProducts      SectionKey = "allProducts"
	SectionWhyChooseUs      SectionKey = "whyChooseUs"
	SectionFAQ              SectionKey = "faq"
	SectionFooter           SectionKey = "footer"
)

// SectionKeys is the fixed key set in canonical order. SectionOrder is
// always a permutation of this slice.
var SectionKeys = []SectionKey{
	SectionHeader,
	SectionHero,
	SectionFeaturedProducts,
	SectionBestSellers,
	SectionOnSale,
	SectionAllProducts,
	SectionWhyChooseUs,
	SectionFAQ,
	SectionFooter,
}

// Layout selects the product container style. Purely presentational.
type Layout string

const (
	LayoutGrid    Layout = "grid"
	LayoutList    Layout = "list"
	LayoutMasonry Layout = "masonry"
)

// Store is the root aggregate: everything the generator needs to
// compile a storefront. It is read-only during export.
type Store struct {
	SchemaVersion int    `json:"schemaVersion"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Logo          string `json:"logo,omitempty"`    // data URI or URL
	Favicon       string `json:"favicon,omitempty"` // data URI or URL
	FontFamily    string `json:"fontFamily,omitempty"`

	Theme  ThemeSettings `json:"theme"`
	Layout Layout        `json:"layout,omitempty"`

	Sections     map[SectionKey]SectionConfig `json:"sections"`
	SectionOrder []SectionKey                 `json:"sectionOrder"`

	WhatsApp WhatsAppSettings `json:"whatsapp"`

	Products []Product    `json:"products"`
	Pages    []CustomPage `json:"pages,omitempty"`
}

// ThemeSettings is the stored theme choice: an identifier plus three
// optional override colors.
type ThemeSettings struct {
	ID        string `json:"id"`
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
	Accent    string `json:"accent,omitempty"`
}

// SectionConfig holds the enablement flag and the section-specific data
// payload. Exactly one of the payload pointers is set, matching the
// section key it is registered under.
type SectionConfig struct {
	Enabled bool `json:"enabled"`

	Header  *HeaderData      `json:"header,omitempty"`
	Hero    *HeroData        `json:"hero,omitempty"`
	Grid    *ProductGridData `json:"grid,omitempty"`
	Feature *FeatureListData `json:"features,omitempty"`
	FAQ     *FAQData         `json:"faq,omitempty"`
	Footer  *FooterData      `json:"footer,omitempty"`
}

// HeaderData configures the top navigation bar.
type HeaderData struct {
	Sticky   bool      `json:"sticky,omitempty"`
	NavLinks []NavLink `json:"navLinks,omitempty"`
}

// NavLink is one navigation entry in the header or footer.
type NavLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// HeroData configures the hero banner.
type HeroData struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle,omitempty"`
	CTAText         string `json:"ctaText,omitempty"`
	CTALink         string `json:"ctaLink,omitempty"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
}

// ProductGridData configures a product-bearing section. Limit 0 means
// no truncation.
type ProductGridData struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

// FeatureListData configures the "why choose us" section.
type FeatureListData struct {
	Title    string        `json:"title,omitempty"`
	Subtitle string        `json:"subtitle,omitempty"`
	Items    []FeatureItem `json:"items,omitempty"`
}

// FeatureItem is one selling point with a symbolic icon name.
type FeatureItem struct {
	ID          string `json:"id"`
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// FAQData configures the FAQ accordion.
type FAQData struct {
	Title    string    `json:"title,omitempty"`
	Subtitle string    `json:"subtitle,omitempty"`
	Items    []FAQItem `json:"items,omitempty"`
}

// FAQItem is one question/answer pair.
type FAQItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FooterData configures the page footer.
type FooterData struct {
	CopyrightText string       `json:"copyrightText,omitempty"`
	Contact       ContactInfo  `json:"contact,omitempty"`
	SocialLinks   []SocialLink `json:"socialLinks,omitempty"`
}

// ContactInfo holds the store's contact details shown in the footer and
// the exported README.
type ContactInfo struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// SocialLink points at a social profile. Platform doubles as the icon
// name (facebook, instagram, twitter, whatsapp).
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// WhatsAppSettings configures purchase routing. When disabled, product
// cards render an unavailable control instead of a link.
type WhatsAppSettings struct {
	Enabled            bool   `json:"enabled"`
	Phone              string `json:"phone,omitempty"`
	MessageTemplate    string `json:"messageTemplate,omitempty"`
	ButtonText         string `json:"buttonText,omitempty"`
	IncludeName        bool   `json:"includeName"`
	IncludePrice       bool   `json:"includePrice"`
	IncludeDescription bool   `json:"includeDescription"`
	IncludeLink        bool   `json:"includeLink"`
}

// Product is one catalog entry. The id is generated once at creation
// and never regenerated on edit.
type Product struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description,omitempty"`
	Price              float64  `json:"price"`
	OriginalPrice      float64  `json:"originalPrice,omitempty"`
	Image              string   `json:"image,omitempty"` // data URI or URL
	Category           string   `json:"category,omitempty"`
	IsFeatured         bool     `json:"isFeatured,omitempty"`
	IsBestSeller       bool     `json:"isBestSeller,omitempty"`
	IsOnSale           bool     `json:"isOnSale,omitempty"`
	DiscountPercentage float64  `json:"discountPercentage,omitempty"`
	Tags               []string `json:"tags,omitempty"`
}

// PageType discriminates custom pages that list products from pure
// content pages.
type PageType string

const (
	PageTypeProducts PageType = "products"
	PageTypeContent  PageType = "content"
)

// CustomPage is a store-owner-authored page outside the fixed section
// set. Content is markdown (or raw HTML passed through) and is the one
// field deliberately not escaped at render time.
type CustomPage struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Content         string   `json:"content,omitempty"`
	PageType        PageType `json:"pageType,omitempty"`
	IsDefault       bool     `json:"isDefault,omitempty"`
	ShowAllProducts bool     `json:"showAllProducts,omitempty"`
	Published       bool     `json:"published"`
	MetaDescription string   `json:"metaDescription,omitempty"`
}

// Section returns the config registered for key, defaulting to a
// disabled empty section so generators never see a missing entry.
func (s *Store) Section(key SectionKey) SectionConfig {
	if s.Sections == nil {
		return SectionConfig{}
	}
	return s.Sections[key]
}

// DefaultPage returns the canonical "all products" page, if one exists.
func (s *Store) DefaultPage() *CustomPage {
	for i := range s.Pages {
		if s.Pages[i].IsDefault && s.Pages[i].ShowAllProducts {
			return &s.Pages[i]
		}
	}
	return nil
}

// PublishedPages returns the pages included in an export, in stored order.
func (s *Store) PublishedPages() []CustomPage {
	var out []CustomPage
	for _, p := range s.Pages {
		if p.Published {
			out = append(out, p)
		}
	}
	return out
}

// NormalizeSectionOrder repairs SectionOrder so it is always a total,
// duplicate-free ordering of the fixed key set: unknown keys and
// duplicates are dropped, missing keys are appended in canonical order.
func (s *Store) NormalizeSectionOrder() {
	known := make(map[SectionKey]bool, len(SectionKeys))
	for _, k := range SectionKeys {
		known[k] = true
	}
	seen := make(map[SectionKey]bool, len(SectionKeys))
	var order []SectionKey
	for _, k := range s.SectionOrder {
		if known[k] && !seen[k] {
			order = append(order, k)
			seen[k] = true
		}
	}
	for _, k := range SectionKeys {
		if !seen[k] {
			order = append(order, k)
		}
	}
	s.SectionOrder = order
}

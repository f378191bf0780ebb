package store

import (
	"encoding/json"
	"fmt"
	"os"
)

// NewStore returns a starter store for a freshly initialized project:
// header, hero, all-products grid, and footer enabled with placeholder
// content, everything else present but disabled.
func NewStore(name string) *Store {
	s := &Store{
		Name: name,
		Sections: map[SectionKey]SectionConfig{
			SectionHeader: {Enabled: true, Header: &HeaderData{Sticky: true}},
			SectionHero: {Enabled: true, Hero: &HeroData{
				Title:   "Welcome to " + name,
				CTAText: "Browse products",
			}},
			SectionAllProducts: {Enabled: true, Grid: &ProductGridData{}},
			SectionFooter:      {Enabled: true, Footer: &FooterData{}},
		},
	}
	s.Normalize()
	return s
}

// Load reads a store configuration from path, migrating legacy files to
// the current schema and normalizing the result.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading store file %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing store file %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a store configuration from JSON. Files without a
// schemaVersion field are decoded as the legacy v1 flat shape and
// migrated. The returned store is always normalized.
func Parse(data []byte) (*Store, error) {
	var probe struct {
		SchemaVersion int `json:"schemaVersion"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	var s *Store
	switch {
	case probe.SchemaVersion >= SchemaVersion:
		s = &Store{}
		if err := json.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("decoding store: %w", err)
		}
	default:
		var legacy legacyStore
		if err := json.Unmarshal(data, &legacy); err != nil {
			return nil, fmt.Errorf("decoding legacy store: %w", err)
		}
		s = migrateLegacy(&legacy)
	}

	s.Normalize()
	return s, nil
}

// Save writes the store as indented JSON.
func (s *Store) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing store file %s: %w", path, err)
	}
	return nil
}

// Normalize fills defaults so the generators never see a structurally
// incomplete store: current schema version, a complete section registry,
// a valid section order permutation, and a layout.
func (s *Store) Normalize() {
	s.SchemaVersion = SchemaVersion
	if s.Layout == "" {
		s.Layout = LayoutGrid
	}
	if s.Theme.ID == "" {
		s.Theme.ID = "modern"
	}
	if s.Sections == nil {
		s.Sections = make(map[SectionKey]SectionConfig, len(SectionKeys))
	}
	for _, k := range SectionKeys {
		if _, ok := s.Sections[k]; !ok {
			s.Sections[k] = SectionConfig{}
		}
	}
	for i := range s.Pages {
		if s.Pages[i].Slug == "" {
			s.Pages[i].Slug = Slugify(s.Pages[i].Title)
		}
		if s.Pages[i].PageType == "" {
			s.Pages[i].PageType = PageTypeContent
		}
	}
	s.NormalizeSectionOrder()
}

// legacyStore is the v1 flat shape: section enablement and content
// lived as top-level fields rather than a section registry.
type legacyStore struct {
	StoreName        string `json:"storeName"`
	StoreDescription string `json:"storeDescription"`
	Logo             string `json:"logo"`
	FontFamily       string `json:"fontFamily"`

	ThemeID        string `json:"themeId"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	AccentColor    string `json:"accentColor"`
	Layout         Layout `json:"layout"`

	ShowHeader bool      `json:"showHeader"`
	NavLinks   []NavLink `json:"navLinks"`

	ShowHero     bool   `json:"showHero"`
	HeroTitle    string `json:"heroTitle"`
	HeroSubtitle string `json:"heroSubtitle"`
	HeroCTAText  string `json:"heroCtaText"`
	HeroCTALink  string `json:"heroCtaLink"`
	HeroImage    string `json:"heroImage"`

	ShowFeatured    bool   `json:"showFeatured"`
	FeaturedTitle   string `json:"featuredTitle"`
	FeaturedLimit   int    `json:"featuredLimit"`
	ShowBestSellers bool   `json:"showBestSellers"`
	ShowOnSale      bool   `json:"showOnSale"`
	ShowAllProducts bool   `json:"showAllProducts"`

	ShowWhyChooseUs  bool          `json:"showWhyChooseUs"`
	WhyChooseUsItems []FeatureItem `json:"whyChooseUsItems"`

	ShowFAQ bool      `json:"showFaq"`
	FAQs    []FAQItem `json:"faqs"`

	ShowFooter   bool         `json:"showFooter"`
	FooterText   string       `json:"footerText"`
	ContactPhone string       `json:"contactPhone"`
	ContactEmail string       `json:"contactEmail"`
	SocialLinks  []SocialLink `json:"socialLinks"`

	WhatsAppEnabled bool   `json:"whatsappEnabled"`
	WhatsAppNumber  string `json:"whatsappNumber"`
	WhatsAppMessage string `json:"whatsappMessage"`

	Products []Product    `json:"products"`
	Pages    []CustomPage `json:"pages"`
}

// migrateLegacy lifts the v1 flat shape into the section registry.
// Legacy items without ids get fresh ones; legacy WhatsApp messages had
// all placeholder substitutions on.
func migrateLegacy(l *legacyStore) *Store {
	s := &Store{
		Name:        l.StoreName,
		Description: l.StoreDescription,
		Logo:        l.Logo,
		FontFamily:  l.FontFamily,
		Theme: ThemeSettings{
			ID:        l.ThemeID,
			Primary:   l.PrimaryColor,
			Secondary: l.SecondaryColor,
			Accent:    l.AccentColor,
		},
		Layout:   l.Layout,
		Products: l.Products,
		Pages:    l.Pages,
		WhatsApp: WhatsAppSettings{
			Enabled:            l.WhatsAppEnabled,
			Phone:              l.WhatsAppNumber,
			MessageTemplate:    l.WhatsAppMessage,
			IncludeName:        true,
			IncludePrice:       true,
			IncludeDescription: true,
			IncludeLink:        true,
		},
		Sections: map[SectionKey]SectionConfig{
			SectionHeader: {
				Enabled: l.ShowHeader,
				Header:  &HeaderData{NavLinks: l.NavLinks},
			},
			SectionHero: {
				Enabled: l.ShowHero,
				Hero: &HeroData{
					Title:           l.HeroTitle,
					Subtitle:        l.HeroSubtitle,
					CTAText:         l.HeroCTAText,
					CTALink:         l.HeroCTALink,
					BackgroundImage: l.HeroImage,
				},
			},
			SectionFeaturedProducts: {
				Enabled: l.ShowFeatured,
				Grid:    &ProductGridData{Title: l.FeaturedTitle, Limit: l.FeaturedLimit},
			},
			SectionBestSellers: {Enabled: l.ShowBestSellers, Grid: &ProductGridData{}},
			SectionOnSale:      {Enabled: l.ShowOnSale, Grid: &ProductGridData{}},
			SectionAllProducts: {Enabled: l.ShowAllProducts, Grid: &ProductGridData{}},
			SectionWhyChooseUs: {
				Enabled: l.ShowWhyChooseUs,
				Feature: &FeatureListData{Items: l.WhyChooseUsItems},
			},
			SectionFAQ: {
				Enabled: l.ShowFAQ,
				FAQ:     &FAQData{Items: l.FAQs},
			},
			SectionFooter: {
				Enabled: l.ShowFooter,
				Footer: &FooterData{
					CopyrightText: l.FooterText,
					Contact:       ContactInfo{Phone: l.ContactPhone, Email: l.ContactEmail},
					SocialLinks:   l.SocialLinks,
				},
			},
		},
	}

	for i := range s.Sections[SectionWhyChooseUs].Feature.Items {
		if s.Sections[SectionWhyChooseUs].Feature.Items[i].ID == "" {
			s.Sections[SectionWhyChooseUs].Feature.Items[i].ID = NewID()
		}
	}
	for i := range s.Sections[SectionFAQ].FAQ.Items {
		if s.Sections[SectionFAQ].FAQ.Items[i].ID == "" {
			s.Sections[SectionFAQ].FAQ.Items[i].ID = NewID()
		}
	}

	return s
}

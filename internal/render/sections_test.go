package render

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/yassirfh/shopforge/internal/store"
)

// testStore builds a fully-populated store with every section enabled.
func testStore() *store.Store {
	s := &store.Store{
		Name:        "Atlas Goods",
		Description: "Handmade things",
		Theme:       store.ThemeSettings{ID: "modern"},
		Layout:      store.LayoutGrid,
		Sections: map[store.SectionKey]store.SectionConfig{
			store.SectionHeader: {Enabled: true, Header: &store.HeaderData{
				NavLinks: []store.NavLink{{Label: "About", URL: "about.html"}},
			}},
			store.SectionHero: {Enabled: true, Hero: &store.HeroData{
				Title: "Welcome to Atlas", Subtitle: "Good things", CTAText: "Shop now",
			}},
			store.SectionFeaturedProducts: {Enabled: true, Grid: &store.ProductGridData{Title: "Our Picks"}},
			store.SectionBestSellers:      {Enabled: true, Grid: &store.ProductGridData{}},
			store.SectionOnSale:           {Enabled: true, Grid: &store.ProductGridData{}},
			store.SectionAllProducts:      {Enabled: true, Grid: &store.ProductGridData{}},
			store.SectionWhyChooseUs: {Enabled: true, Feature: &store.FeatureListData{
				Items: []store.FeatureItem{{ID: "f1", Icon: "truck", Title: "Fast shipping", Description: "Within 48h"}},
			}},
			store.SectionFAQ: {Enabled: true, FAQ: &store.FAQData{
				Items: []store.FAQItem{{ID: "q1", Question: "Do you ship abroad?", Answer: "Yes, worldwide."}},
			}},
			store.SectionFooter: {Enabled: true, Footer: &store.FooterData{
				Contact:     store.ContactInfo{Email: "hi@atlas.example", Phone: "+1 617 555 0100"},
				SocialLinks: []store.SocialLink{{Platform: "instagram", URL: "https://instagram.com/atlas"}},
			}},
		},
		WhatsApp: store.WhatsAppSettings{
			Enabled: true, Phone: "+16175550100",
			MessageTemplate: "I want {productName}",
			IncludeName:     true,
		},
		Products: []store.Product{
			{ID: "p1", Name: "Ceramic Mug", Price: 49.99, IsFeatured: true, Category: "Kitchen"},
			{ID: "p2", Name: "Wool Blanket", Price: 89, IsBestSeller: true},
			{ID: "p3", Name: "Oak Tray", Price: 35, OriginalPrice: 50, IsOnSale: true, DiscountPercentage: 30},
		},
	}
	s.Normalize()
	return s
}

func frozenComposer(s *store.Store) *Composer {
	c := NewComposer(s, "$")
	c.Now = func() time.Time { return time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC) }
	return c
}

func TestDisabledSectionRendersEmpty(t *testing.T) {
	for _, key := range store.SectionKeys {
		s := testStore()
		sec := s.Sections[key]
		sec.Enabled = false
		s.Sections[key] = sec

		c := frozenComposer(s)
		if got := c.Fragment(key); got != "" {
			t.Errorf("disabled %q should render empty, got %d bytes", key, len(got))
		}
	}
}

func TestEmptySubsetRendersEmpty(t *testing.T) {
	s := testStore()
	for i := range s.Products {
		s.Products[i].IsFeatured = false
	}
	c := frozenComposer(s)
	if got := c.Fragment(store.SectionFeaturedProducts); got != "" {
		t.Errorf("featured section with no matches should render empty, got %q", got)
	}
}

func TestEmptyItemListsRenderEmpty(t *testing.T) {
	s := testStore()
	s.Sections[store.SectionFAQ] = store.SectionConfig{Enabled: true, FAQ: &store.FAQData{}}
	s.Sections[store.SectionWhyChooseUs] = store.SectionConfig{Enabled: true, Feature: &store.FeatureListData{}}

	c := frozenComposer(s)
	if c.Fragment(store.SectionFAQ) != "" {
		t.Error("FAQ with no items should render empty")
	}
	if c.Fragment(store.SectionWhyChooseUs) != "" {
		t.Error("feature list with no items should render empty")
	}
}

func TestNilSectionDataDegradesGracefully(t *testing.T) {
	s := testStore()
	s.Sections[store.SectionHeader] = store.SectionConfig{Enabled: true}
	s.Sections[store.SectionFooter] = store.SectionConfig{Enabled: true}
	s.Sections[store.SectionHero] = store.SectionConfig{Enabled: true}

	c := frozenComposer(s)
	header := c.Fragment(store.SectionHeader)
	if !strings.Contains(header, "Atlas Goods") {
		t.Error("header without data should still show the brand")
	}
	footer := c.Fragment(store.SectionFooter)
	if !strings.Contains(footer, "© 2026 Atlas Goods") {
		t.Errorf("footer without data should auto-generate copyright, got %q", footer)
	}
	if c.Fragment(store.SectionHero) != "" {
		t.Error("hero with no content should render empty")
	}
}

func TestLimitTruncation(t *testing.T) {
	s := testStore()
	s.Products = nil
	for i := 0; i < 10; i++ {
		s.Products = append(s.Products, store.Product{
			ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("Item %d", i), Price: 10, IsFeatured: true,
		})
	}
	s.Sections[store.SectionFeaturedProducts] = store.SectionConfig{
		Enabled: true, Grid: &store.ProductGridData{Limit: 4},
	}

	c := frozenComposer(s)
	frag := c.Fragment(store.SectionFeaturedProducts)
	if got := strings.Count(frag, `<article class="product-card`); got != 4 {
		t.Errorf("card count = %d, want 4", got)
	}
	// Catalog relative order is preserved: first four items, in order.
	prev := -1
	for i := 0; i < 4; i++ {
		idx := strings.Index(frag, fmt.Sprintf("Item %d", i))
		if idx == -1 || idx < prev {
			t.Fatalf("Item %d missing or out of order", i)
		}
		prev = idx
	}
}

func TestLimitLargerThanSubset(t *testing.T) {
	s := testStore()
	s.Sections[store.SectionFeaturedProducts] = store.SectionConfig{
		Enabled: true, Grid: &store.ProductGridData{Limit: 50},
	}
	c := frozenComposer(s)
	frag := c.Fragment(store.SectionFeaturedProducts)
	if got := strings.Count(frag, `<article class="product-card`); got != 1 {
		t.Errorf("card count = %d, want 1", got)
	}
}

func TestDiscountBadge(t *testing.T) {
	s := testStore()
	c := frozenComposer(s)
	frag := c.Fragment(store.SectionOnSale)
	if !strings.Contains(frag, `<span class="discount-badge">-30%</span>`) {
		t.Errorf("discount badge missing: %q", frag)
	}
	if !strings.Contains(frag, `original-price`) {
		t.Error("original price should render struck through")
	}

	// No badge without a discount percentage, even when on sale.
	s.Products[2].DiscountPercentage = 0
	frag = frozenComposer(s).Fragment(store.SectionOnSale)
	if strings.Contains(frag, "discount-badge") {
		t.Error("badge should require both isOnSale and a discount value")
	}
}

func TestWhatsAppDisabledRendersUnavailable(t *testing.T) {
	s := testStore()
	s.WhatsApp.Enabled = false
	c := frozenComposer(s)
	frag := c.Fragment(store.SectionAllProducts)
	if !strings.Contains(frag, "buy-btn-disabled") || !strings.Contains(frag, "disabled>") {
		t.Error("purchase control should render disabled when WhatsApp is off")
	}
	if strings.Contains(frag, "data-phone") {
		t.Error("disabled checkout must not carry WhatsApp data attributes")
	}
}

func TestWhatsAppEnabledCardAttributes(t *testing.T) {
	s := testStore()
	c := frozenComposer(s)
	frag := c.Fragment(store.SectionFeaturedProducts)
	if !strings.Contains(frag, `data-phone="16175550100"`) {
		t.Errorf("phone should be digits-only in data attribute: %q", frag)
	}
	if !strings.Contains(frag, `data-message="I want Ceramic Mug"`) {
		t.Error("message should be substituted into the data attribute")
	}
}

func TestPlainTextFieldsAreEscaped(t *testing.T) {
	s := testStore()
	s.Name = `Atlas <script>alert("x")</script>`
	hero := s.Sections[store.SectionHero]
	hero.Hero.Title = `Deals & "Steals" <b>`
	s.Sections[store.SectionHero] = hero

	c := frozenComposer(s)
	header := c.Fragment(store.SectionHeader)
	if strings.Contains(header, "<script>alert") {
		t.Error("store name must be escaped in the header")
	}
	if !strings.Contains(header, "&lt;script&gt;") {
		t.Error("expected escaped store name")
	}
	heroFrag := c.Fragment(store.SectionHero)
	if !strings.Contains(heroFrag, "Deals &amp; &#34;Steals&#34; &lt;b&gt;") {
		t.Errorf("hero title not escaped: %q", heroFrag)
	}
}

func TestIconFallback(t *testing.T) {
	s := testStore()
	feat := s.Sections[store.SectionWhyChooseUs]
	feat.Feature.Items[0].Icon = "nonexistent"
	s.Sections[store.SectionWhyChooseUs] = feat

	frag := frozenComposer(s).Fragment(store.SectionWhyChooseUs)
	if strings.Contains(frag, "feature-icon") {
		t.Error("unknown icon should render no icon wrapper")
	}
	if !strings.Contains(frag, "Fast shipping") {
		t.Error("item content should still render without an icon")
	}
}

func TestLayoutClassSelection(t *testing.T) {
	for layout, class := range map[store.Layout]string{
		store.LayoutGrid:    "product-grid",
		store.LayoutList:    "product-list",
		store.LayoutMasonry: "product-masonry",
	} {
		s := testStore()
		s.Layout = layout
		frag := frozenComposer(s).Fragment(store.SectionAllProducts)
		if !strings.Contains(frag, `<div class="`+class+`">`) {
			t.Errorf("layout %q should use container class %q", layout, class)
		}
	}
}

func TestHeaderNavPointsAtDefaultPage(t *testing.T) {
	s := testStore()
	s.Pages = []store.CustomPage{{
		ID: "pg1", Title: "Shop", Slug: "shop", IsDefault: true,
		ShowAllProducts: true, Published: true, PageType: store.PageTypeProducts,
	}}
	header := frozenComposer(s).Fragment(store.SectionHeader)
	if !strings.Contains(header, `href="shop.html"`) {
		t.Error("header Products link should target the default page slug")
	}

	// Without a default page it falls back to the generated listing.
	s.Pages = nil
	header = frozenComposer(s).Fragment(store.SectionHeader)
	if !strings.Contains(header, `href="products.html"`) {
		t.Error("header Products link should fall back to products.html")
	}
}

package render

import (
	"strings"
	"testing"

	"github.com/yassirfh/shopforge/internal/store"
)

func TestComposeHomeScenario(t *testing.T) {
	s := testStore()
	s.SectionOrder = []store.SectionKey{store.SectionHero, store.SectionFeaturedProducts, store.SectionFooter}

	c := frozenComposer(s)
	page, err := c.ComposeHome()
	if err != nil {
		t.Fatalf("ComposeHome: %v", err)
	}

	hero := strings.Index(page, "Welcome to Atlas")
	grid := strings.Index(page, "Our Picks")
	foot := strings.Index(page, "© 2026 Atlas Goods. All rights reserved.")
	if hero == -1 || grid == -1 || foot == -1 {
		t.Fatalf("missing section content: hero=%d grid=%d footer=%d", hero, grid, foot)
	}
	if !(hero < grid && grid < foot) {
		t.Error("sections should appear in the configured order")
	}
	if got := strings.Count(page, "$49.99"); got != 1 {
		t.Errorf("featured grid should show exactly one card with $49.99, got %d", got)
	}
	if strings.Contains(page, "faq-section") {
		t.Error("sections absent from the order must not render")
	}
}

func TestComposeHomeDeterministic(t *testing.T) {
	s := testStore()
	c := frozenComposer(s)
	a, err := c.ComposeHome()
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.ComposeHome()
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("two renders of the same store should be byte-identical")
	}
}

func TestComposeHomeShell(t *testing.T) {
	s := testStore()
	page, err := frozenComposer(s).ComposeHome()
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Atlas Goods</title>",
		`<meta name="description" content="Handmade things">`,
		`<link rel="stylesheet" href="css/style.css">`,
		`<script src="js/main.js"></script>`,
		`id="scroll-top"`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("home page missing %q", want)
		}
	}
}

func TestComposeHomeDataURIFavicon(t *testing.T) {
	s := testStore()
	s.Favicon = "data:image/png;base64,iVBORw0KGgo="
	page, err := frozenComposer(s).ComposeHome()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(page, `href="data:image/png;base64,iVBORw0KGgo="`) {
		t.Error("data URI favicon should survive templating intact")
	}
	if strings.Contains(page, "ZgotmplZ") {
		t.Error("favicon URL was sanitized away")
	}
}

func TestComposeCustomPageMarkdown(t *testing.T) {
	s := testStore()
	c := frozenComposer(s)
	page, err := c.ComposeCustomPage(store.CustomPage{
		ID: "pg1", Title: "About Us", Slug: "about-us",
		Content:   "## Our story\n\nWe make **good** things.\n\n<div class=\"banner\">custom</div>",
		PageType:  store.PageTypeContent,
		Published: true,
	})
	if err != nil {
		t.Fatalf("ComposeCustomPage: %v", err)
	}
	for _, want := range []string{
		"<title>About Us — Atlas Goods</title>",
		`<h1 class="page-title">About Us</h1>`,
		"<h2", "Our story",
		"<strong>good</strong>",
		`<div class="banner">custom</div>`, // raw HTML is the escape opt-out
		`<a href="index.html" class="back-home">`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("custom page missing %q", want)
		}
	}
	if strings.Contains(page, "product-card") {
		t.Error("content page should not list products")
	}
}

func TestComposeCustomPageTitleEscaped(t *testing.T) {
	s := testStore()
	page, err := frozenComposer(s).ComposeCustomPage(store.CustomPage{
		ID: "pg1", Title: "Tips & <Tricks>", Slug: "tips", Published: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(page, `<h1 class="page-title">Tips &amp; &lt;Tricks&gt;</h1>`) {
		t.Error("page title must be escaped even though content is not")
	}
}

func TestComposeCustomPageWithProducts(t *testing.T) {
	s := testStore()
	page, err := frozenComposer(s).ComposeCustomPage(store.CustomPage{
		ID: "pg1", Title: "Shop", Slug: "shop",
		PageType: store.PageTypeProducts, ShowAllProducts: true, Published: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(page, `<article class="product-card`); got != len(s.Products) {
		t.Errorf("products page shows %d cards, want %d", got, len(s.Products))
	}
}

func TestLogoRef(t *testing.T) {
	tests := []struct {
		name string
		logo string
		want string
	}{
		{"empty", "", ""},
		{"url passthrough", "https://cdn.example/logo.svg", "https://cdn.example/logo.svg"},
		{"data uri", "data:image/png;base64,iVBORw0KGgo=", "logo.png"},
		{"data uri svg", "data:image/svg+xml;base64,PHN2Zz4=", "logo.svg"},
		{"malformed", "data:image/png;base64", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &store.Store{Logo: tt.logo}
			if got := LogoRef(s); got != tt.want {
				t.Errorf("LogoRef(%q) = %q, want %q", tt.logo, got, tt.want)
			}
		})
	}
}

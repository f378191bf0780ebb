package render

import (
	"strings"
	"testing"

	"github.com/yassirfh/shopforge/internal/store"
)

func TestGenerateCSSVariables(t *testing.T) {
	s := testStore()
	s.Theme = store.ThemeSettings{ID: "ocean", Primary: "#123456"}
	s.FontFamily = "'Inter', sans-serif"

	css := GenerateCSS(s)
	if !strings.HasPrefix(css, ":root {") {
		t.Error("stylesheet should open with the variable block")
	}
	if !strings.Contains(css, "--primary: #123456;") {
		t.Error("theme override should win over the palette primary")
	}
	if !strings.Contains(css, "--font-family: 'Inter', sans-serif;") {
		t.Error("configured font family should be emitted")
	}
	if !strings.Contains(css, "--hero-gradient:") {
		t.Error("hero gradient variable missing")
	}
}

func TestGenerateCSSUnknownThemeFallsBack(t *testing.T) {
	s := testStore()
	s.Theme = store.ThemeSettings{ID: "no-such-theme"}
	a := GenerateCSS(s)
	s.Theme = store.ThemeSettings{ID: "modern"}
	b := GenerateCSS(s)
	if a != b {
		t.Error("unknown theme id should fall back to the default palette")
	}
}

func TestGenerateCSSStructure(t *testing.T) {
	css := GenerateCSS(testStore())
	for _, selector := range []string{
		".site-header",
		".hero-gradient",
		".product-grid",
		".product-list",
		".product-masonry",
		".product-card",
		".discount-badge",
		".buy-btn-disabled",
		".faq-answer",
		".site-footer",
		".listing-controls",
		".page-content",
		".scroll-top",
		"@media (max-width: 768px)",
	} {
		if !strings.Contains(css, selector) {
			t.Errorf("stylesheet missing %q", selector)
		}
	}
	// Every page gets the same sheet regardless of store content.
	empty := &store.Store{Name: "X"}
	empty.Normalize()
	if !strings.Contains(GenerateCSS(empty), ".product-card") {
		t.Error("structural rules should not depend on catalog content")
	}
}

func TestGenerateClientScript(t *testing.T) {
	js := GenerateClientScript()
	for _, want := range []string{
		"product-search",
		"IntersectionObserver",
		"data-src",
		"faq-question",
		"buy-btn",
		"wa.me",
		"encodeURIComponent",
		"scroll-top",
	} {
		if !strings.Contains(js, want) {
			t.Errorf("client script missing %q", want)
		}
	}
	if GenerateClientScript() != js {
		t.Error("script generation should be deterministic")
	}
}

// Package theme resolves a theme identifier plus per-store color
// overrides into a concrete palette, and turns that palette into the
// CSS custom-property block consumed by the stylesheet generator.
package theme

import (
	"fmt"
	"strings"
)

// Palette is a complete set of colors applied across the generated site.
type Palette struct {
	Primary    string
	Secondary  string
	Accent     string
	Background string
	Surface    string
	Text       string
	TextMuted  string
	Border     string
	Success    string
	Warning    string
	Error      string
	Info       string
	Gradient   *Gradient
}

// Gradient describes an optional hero/background gradient.
type Gradient struct {
	From      string
	To        string
	Direction string
}

// Overrides are the three store-level color overrides. Empty fields
// keep the palette's own value.
type Overrides struct {
	Primary   string
	Secondary string
	Accent    string
}

// DefaultID is the palette used when a theme identifier is unknown.
const DefaultID = "modern"

var palettes = map[string]Palette{
	"modern": {
		Primary:    "#2563eb",
		Secondary:  "#1e40af",
		Accent:     "#f59e0b",
		Background: "#ffffff",
		Surface:    "#f8fafc",
		Text:       "#0f172a",
		TextMuted:  "#64748b",
		Border:     "#e2e8f0",
		Success:    "#16a34a",
		Warning:    "#d97706",
		Error:      "#dc2626",
		Info:       "#0284c7",
		Gradient:   &Gradient{From: "#2563eb", To: "#1e40af", Direction: "135deg"},
	},
	"dark": {
		Primary:    "#7aa2f7",
		Secondary:  "#bb9af7",
		Accent:     "#ff9e64",
		Background: "#1a1b26",
		Surface:    "#1f2030",
		Text:       "#c0caf5",
		TextMuted:  "#565f89",
		Border:     "#292e42",
		Success:    "#9ece6a",
		Warning:    "#e0af68",
		Error:      "#f7768e",
		Info:       "#7dcfff",
	},
	"ocean": {
		Primary:    "#0891b2",
		Secondary:  "#155e75",
		Accent:     "#06b6d4",
		Background: "#f0fdfa",
		Surface:    "#ffffff",
		Text:       "#134e4a",
		TextMuted:  "#5eead4",
		Border:     "#ccfbf1",
		Success:    "#059669",
		Warning:    "#d97706",
		Error:      "#e11d48",
		Info:       "#0ea5e9",
		Gradient:   &Gradient{From: "#0891b2", To: "#164e63", Direction: "160deg"},
	},
	"sunset": {
		Primary:    "#ea580c",
		Secondary:  "#9a3412",
		Accent:     "#facc15",
		Background: "#fffbeb",
		Surface:    "#ffffff",
		Text:       "#431407",
		TextMuted:  "#a8a29e",
		Border:     "#fed7aa",
		Success:    "#65a30d",
		Warning:    "#ca8a04",
		Error:      "#dc2626",
		Info:       "#0284c7",
		Gradient:   &Gradient{From: "#f97316", To: "#be123c", Direction: "120deg"},
	},
	"forest": {
		Primary:    "#16a34a",
		Secondary:  "#14532d",
		Accent:     "#a3e635",
		Background: "#f7fee7",
		Surface:    "#ffffff",
		Text:       "#1a2e05",
		TextMuted:  "#84cc16",
		Border:     "#d9f99d",
		Success:    "#15803d",
		Warning:    "#ca8a04",
		Error:      "#b91c1c",
		Info:       "#0369a1",
	},
	"minimal": {
		Primary:    "#18181b",
		Secondary:  "#3f3f46",
		Accent:     "#a1a1aa",
		Background: "#ffffff",
		Surface:    "#fafafa",
		Text:       "#18181b",
		TextMuted:  "#71717a",
		Border:     "#e4e4e7",
		Success:    "#16a34a",
		Warning:    "#d97706",
		Error:      "#dc2626",
		Info:       "#2563eb",
	},
}

// IDs returns the known theme identifiers in a stable order.
func IDs() []string {
	return []string{"modern", "dark", "ocean", "sunset", "forest", "minimal"}
}

// Known reports whether id names a built-in palette.
func Known(id string) bool {
	_, ok := palettes[id]
	return ok
}

// Resolve returns the palette for id with the overrides applied.
// Unknown ids fall back to the default palette rather than failing;
// an unset override keeps the palette value.
func Resolve(id string, ov Overrides) Palette {
	p, ok := palettes[id]
	if !ok {
		p = palettes[DefaultID]
	}
	if ov.Primary != "" {
		p.Primary = ov.Primary
	}
	if ov.Secondary != "" {
		p.Secondary = ov.Secondary
	}
	if ov.Accent != "" {
		p.Accent = ov.Accent
	}
	return p
}

// CSSVariables renders the palette as a :root custom-property block.
// This is the single point where theme state enters the stylesheet.
func (p Palette) CSSVariables(fontFamily string) string {
	if fontFamily == "" {
		fontFamily = `-apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif`
	}
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, v := range [][2]string{
		{"--primary", p.Primary},
		{"--secondary", p.Secondary},
		{"--accent", p.Accent},
		{"--bg", p.Background},
		{"--surface", p.Surface},
		{"--text", p.Text},
		{"--text-muted", p.TextMuted},
		{"--border", p.Border},
		{"--success", p.Success},
		{"--warning", p.Warning},
		{"--error", p.Error},
		{"--info", p.Info},
	} {
		fmt.Fprintf(&b, "  %s: %s;\n", v[0], v[1])
	}
	fmt.Fprintf(&b, "  --font-family: %s;\n", fontFamily)
	if p.Gradient != nil {
		fmt.Fprintf(&b, "  --hero-gradient: linear-gradient(%s, %s, %s);\n",
			p.Gradient.Direction, p.Gradient.From, p.Gradient.To)
	} else {
		fmt.Fprintf(&b, "  --hero-gradient: linear-gradient(135deg, %s, %s);\n", p.Primary, p.Secondary)
	}
	b.WriteString("}\n")
	return b.String()
}

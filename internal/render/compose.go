package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/yassirfh/shopforge/internal/datauri"
	"github.com/yassirfh/shopforge/internal/store"
)

// documentTemplate is the shared shell for every generated page. Body
// fragments are pre-escaped by their generators, so they enter as
// template.HTML; everything else is escaped by html/template.
const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  {{if .MetaDescription}}<meta name="description" content="{{.MetaDescription}}">
  {{end}}{{if .Favicon}}<link rel="icon" href="{{.Favicon}}">
  {{end}}<link rel="stylesheet" href="css/style.css">
</head>
<body>
{{.Body}}
<button class="scroll-top" id="scroll-top" aria-label="Back to top">↑</button>
<script src="js/main.js"></script>
</body>
</html>`

var docTmpl = template.Must(template.New("document").Parse(documentTemplate))

// documentData feeds the shell template.
type documentData struct {
	Title           string
	MetaDescription string
	// Favicon is template.URL so inline data URIs survive the
	// template's URL sanitizer; the value comes from validated config.
	Favicon template.URL
	Body    template.HTML
}

// markdown converts custom-page content. Unsafe rendering is the
// deliberate escape opt-out: page content is owner-authored rich text.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

// LogoRef returns the href for the store logo in generated pages: data
// URIs become the exported logo file, URLs pass through.
func LogoRef(s *store.Store) string {
	if s.Logo == "" {
		return ""
	}
	if datauri.IsDataURI(s.Logo) {
		ext, err := datauri.ExtFromURI(s.Logo)
		if err != nil {
			return ""
		}
		return "logo" + ext
	}
	return s.Logo
}

// faviconRef resolves the favicon href, falling back to the logo.
// Favicons may stay inline as data URIs; browsers accept them and it
// keeps the archive layout flat.
func (c *Composer) faviconRef() string {
	if c.Store.Favicon != "" {
		return c.Store.Favicon
	}
	return LogoRef(c.Store)
}

// document wraps a body in the shared shell.
func (c *Composer) document(title, metaDescription string, body string) (string, error) {
	var buf bytes.Buffer
	err := docTmpl.Execute(&buf, documentData{
		Title:           title,
		MetaDescription: metaDescription,
		Favicon:         template.URL(c.faviconRef()),
		Body:            template.HTML(body),
	})
	if err != nil {
		return "", fmt.Errorf("executing document template: %w", err)
	}
	return buf.String(), nil
}

// ComposeHome assembles the home page by walking the section order and
// concatenating non-empty fragments.
func (c *Composer) ComposeHome() (string, error) {
	var body strings.Builder
	for _, key := range c.Store.SectionOrder {
		frag := c.Fragment(key)
		if frag == "" {
			continue
		}
		body.WriteString(frag)
	}

	title := c.Store.Name
	if title == "" {
		title = "Store"
	}
	return c.document(title, c.Store.Description, body.String())
}

// ComposeCustomPage wraps a custom page's content in the document
// shell. Markdown (or raw HTML) content passes through goldmark; the
// title and meta description are escaped like every plain-text field.
func (c *Composer) ComposeCustomPage(page store.CustomPage) (string, error) {
	var body strings.Builder

	if header := c.Fragment(store.SectionHeader); header != "" {
		body.WriteString(header)
	}

	body.WriteString(`<main class="custom-page">` + "\n" + `<div class="container">` + "\n")
	fmt.Fprintf(&body, `<h1 class="page-title">%s</h1>`+"\n", esc(page.Title))

	var content bytes.Buffer
	if err := markdown.Convert([]byte(page.Content), &content); err != nil {
		return "", fmt.Errorf("rendering content for page %q: %w", page.Slug, err)
	}
	body.WriteString(`<div class="page-content">` + "\n")
	body.Write(content.Bytes())
	body.WriteString("</div>\n")

	if page.PageType == store.PageTypeProducts || page.ShowAllProducts {
		products := subset(store.SectionAllProducts, c.Store.Products, 0)
		if len(products) > 0 {
			body.WriteString(c.productGrid("", "", "section-allProducts", products))
		}
	}

	body.WriteString(`<a href="index.html" class="back-home">← Back to home</a>` + "\n")
	body.WriteString("</div>\n</main>\n")

	if footer := c.Fragment(store.SectionFooter); footer != "" {
		body.WriteString(footer)
	}

	title := page.Title
	if c.Store.Name != "" {
		title = page.Title + " — " + c.Store.Name
	}
	return c.document(title, page.MetaDescription, body.String())
}

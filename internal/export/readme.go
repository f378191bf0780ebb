package export

import (
	"fmt"
	"strings"

	"github.com/yassirfh/shopforge/internal/store"
)

// readme renders the README.md shipped inside every archive: what the
// files are, how to host them, and who to contact about the store.
func (e *Exporter) readme(sum Summary) string {
	s := e.Store
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n%s\n\n", s.Name, strings.Repeat("=", len(s.Name)))
	if s.Description != "" {
		b.WriteString(s.Description + "\n\n")
	}

	b.WriteString("This archive contains a complete static website. Upload its\n")
	b.WriteString("contents to any static host (Netlify, GitHub Pages, any web\n")
	b.WriteString("server document root) and open index.html.\n\n")

	b.WriteString("Contents\n--------\n")
	b.WriteString("  index.html      home page\n")
	b.WriteString("  products.html   full product listing with search and sorting\n")
	for _, p := range s.PublishedPages() {
		fmt.Fprintf(&b, "  %-15s %s\n", p.Slug+".html", p.Title)
	}
	b.WriteString("  css/style.css   stylesheet\n")
	b.WriteString("  js/main.js      client script\n")
	if sum.Images > 0 {
		fmt.Fprintf(&b, "  images/         %d product image(s)\n", sum.Images)
	}
	b.WriteString("\n")

	contact := footerContact(s)
	if contact.Phone != "" || contact.Email != "" || contact.Address != "" {
		b.WriteString("Contact\n-------\n")
		if contact.Phone != "" {
			fmt.Fprintf(&b, "  Phone:   %s\n", contact.Phone)
		}
		if contact.Email != "" {
			fmt.Fprintf(&b, "  Email:   %s\n", contact.Email)
		}
		if contact.Address != "" {
			fmt.Fprintf(&b, "  Address: %s\n", contact.Address)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Generated %s\n", e.Now().Format("2006-01-02"))
	return b.String()
}

func footerContact(s *store.Store) store.ContactInfo {
	sec := s.Section(store.SectionFooter)
	if sec.Footer == nil {
		return store.ContactInfo{}
	}
	return sec.Footer.Contact
}

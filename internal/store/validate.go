package store

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Issue is one validation finding tied to a field path.
type Issue struct {
	Field   string
	Message string
}

func (i Issue) String() string {
	return i.Field + ": " + i.Message
}

// Result separates blocking errors from non-blocking warnings.
// Warnings are shown to the user but never prevent an export.
type Result struct {
	Errors   []Issue
	Warnings []Issue
}

// OK reports whether the store may be exported.
func (r *Result) OK() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(field, format string, args ...any) {
	r.Errors = append(r.Errors, Issue{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (r *Result) warnf(field, format string, args ...any) {
	r.Warnings = append(r.Warnings, Issue{Field: field, Message: fmt.Sprintf(format, args...)})
}

var (
	hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbColorRe = regexp.MustCompile(`^rgba?\(\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}\s*(?:,\s*(?:0|1|0?\.\d+)\s*)?\)$`)
	hslColorRe = regexp.MustCompile(`^hsla?\(\s*\d{1,3}\s*,\s*\d{1,3}%\s*,\s*\d{1,3}%\s*(?:,\s*(?:0|1|0?\.\d+)\s*)?\)$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe    = regexp.MustCompile(`^\+?[0-9()\-\s]{6,20}$`)
	slugRe     = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// ValidColor accepts hex, rgb()/rgba(), and hsl()/hsla() notations.
func ValidColor(s string) bool {
	return hexColorRe.MatchString(s) || rgbColorRe.MatchString(s) || hslColorRe.MatchString(s)
}

// ValidEmail is a permissive shape check, not an RFC parser.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidPhone accepts international numbers with common separators.
func ValidPhone(s string) bool {
	return phoneRe.MatchString(s)
}

// ValidSlug accepts lowercase hyphen-separated path segments.
func ValidSlug(s string) bool {
	return slugRe.MatchString(s)
}

// ValidURL accepts absolute http(s) URLs, data URIs, anchors, and
// relative paths — everything that can appear in a generated link.
func ValidURL(s string) bool {
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "#") || strings.HasPrefix(s, "/") || strings.HasPrefix(s, "data:") {
		return true
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// longTextLimit is the length past which free-text fields draw a
// warning (they still export fine, but break layouts).
const longTextLimit = 500

// Validate checks the whole store and returns every finding at once so
// the user can fix them in a single pass.
func Validate(s *Store) *Result {
	r := &Result{}

	if strings.TrimSpace(s.Name) == "" {
		r.errorf("name", "store name is required")
	}
	if len(s.Description) > longTextLimit {
		r.warnf("description", "store description is very long (%d chars)", len(s.Description))
	}

	for _, c := range []struct{ field, value string }{
		{"theme.primary", s.Theme.Primary},
		{"theme.secondary", s.Theme.Secondary},
		{"theme.accent", s.Theme.Accent},
	} {
		if c.value != "" && !ValidColor(c.value) {
			r.errorf(c.field, "invalid color %q (expected hex, rgb, or hsl)", c.value)
		}
	}

	switch s.Layout {
	case "", LayoutGrid, LayoutList, LayoutMasonry:
	default:
		r.errorf("layout", "unknown layout %q", s.Layout)
	}

	validateProducts(s, r)
	validatePages(s, r)
	validateWhatsApp(s, r)
	validateFooter(s, r)

	return r
}

func validateProducts(s *Store, r *Result) {
	seen := make(map[string]bool, len(s.Products))
	for i, p := range s.Products {
		field := fmt.Sprintf("products[%d]", i)
		if strings.TrimSpace(p.Name) == "" {
			r.errorf(field+".name", "product name is required")
		}
		if p.ID == "" {
			r.errorf(field+".id", "product id is required")
		} else if seen[p.ID] {
			r.errorf(field+".id", "duplicate product id %q", p.ID)
		}
		seen[p.ID] = true
		if p.Price <= 0 {
			r.errorf(field+".price", "price must be positive, got %v", p.Price)
		}
		if p.OriginalPrice != 0 && p.OriginalPrice <= p.Price {
			r.warnf(field+".originalPrice", "original price %v does not exceed price %v", p.OriginalPrice, p.Price)
		}
		if p.DiscountPercentage < 0 || p.DiscountPercentage > 100 {
			r.errorf(field+".discountPercentage", "discount must be between 0 and 100, got %v", p.DiscountPercentage)
		}
		if p.DiscountPercentage > 0 && !p.IsOnSale {
			r.warnf(field+".discountPercentage", "discount set but product is not marked on sale")
		}
		if len(p.Description) > longTextLimit {
			r.warnf(field+".description", "description is very long (%d chars)", len(p.Description))
		}
		if p.Image != "" && !ValidURL(p.Image) {
			r.errorf(field+".image", "image must be a URL or data URI")
		}
	}
}

func validatePages(s *Store, r *Result) {
	slugs := make(map[string]bool, len(s.Pages))
	defaults := 0
	for i, p := range s.Pages {
		field := fmt.Sprintf("pages[%d]", i)
		if strings.TrimSpace(p.Title) == "" {
			r.errorf(field+".title", "page title is required")
		}
		if p.Slug == "" {
			r.errorf(field+".slug", "page slug is required")
		} else if !ValidSlug(p.Slug) {
			r.errorf(field+".slug", "invalid slug %q", p.Slug)
		} else if slugs[p.Slug] {
			r.errorf(field+".slug", "duplicate slug %q", p.Slug)
		}
		slugs[p.Slug] = true
		if p.IsDefault && p.ShowAllProducts {
			defaults++
		}
		if p.Content == "" && p.PageType == PageTypeContent {
			r.warnf(field+".content", "content page %q is empty", p.Title)
		}
	}
	if defaults > 1 {
		r.errorf("pages", "more than one page is marked default+showAllProducts")
	}
}

func validateWhatsApp(s *Store, r *Result) {
	if !s.WhatsApp.Enabled {
		return
	}
	if s.WhatsApp.Phone == "" {
		r.errorf("whatsapp.phone", "phone number is required when WhatsApp checkout is enabled")
	} else if !ValidPhone(s.WhatsApp.Phone) {
		r.errorf("whatsapp.phone", "invalid phone number %q", s.WhatsApp.Phone)
	}
	if s.WhatsApp.MessageTemplate == "" {
		r.warnf("whatsapp.messageTemplate", "no message template set; a default will be used")
	}
}

func validateFooter(s *Store, r *Result) {
	sec := s.Section(SectionFooter)
	if sec.Footer == nil {
		return
	}
	if e := sec.Footer.Contact.Email; e != "" && !ValidEmail(e) {
		r.errorf("sections.footer.contact.email", "invalid email %q", e)
	}
	if p := sec.Footer.Contact.Phone; p != "" && !ValidPhone(p) {
		r.errorf("sections.footer.contact.phone", "invalid phone %q", p)
	}
	for i, l := range sec.Footer.SocialLinks {
		if l.URL != "" && !ValidURL(l.URL) {
			r.errorf(fmt.Sprintf("sections.footer.socialLinks[%d].url", i), "invalid URL %q", l.URL)
		}
	}
}

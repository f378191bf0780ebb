package render

import (
	"fmt"
	"strings"

	"github.com/yassirfh/shopforge/internal/datauri"
	"github.com/yassirfh/shopforge/internal/store"
)

// subset filters the catalog by section key and truncates to limit,
// preserving catalog order. Sorting is a listing-page control, never a
// section concern.
func subset(key store.SectionKey, catalog []store.Product, limit int) []store.Product {
	var out []store.Product
	for _, p := range catalog {
		switch key {
		case store.SectionFeaturedProducts:
			if !p.IsFeatured {
				continue
			}
		case store.SectionBestSellers:
			if !p.IsBestSeller {
				continue
			}
		case store.SectionOnSale:
			if !p.IsOnSale {
				continue
			}
		case store.SectionAllProducts:
			// full catalog
		default:
			continue
		}
		out = append(out, p)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ImageRef returns the href used for a product image in generated
// pages: data URIs become files under images/, URLs pass through, and
// products without an image get none.
func ImageRef(p store.Product) string {
	if p.Image == "" {
		return ""
	}
	if datauri.IsDataURI(p.Image) {
		ext, err := datauri.ExtFromURI(p.Image)
		if err != nil {
			// Malformed URIs are caught by the exporter; render nothing
			// rather than a broken reference.
			return ""
		}
		return "images/" + p.ID + ext
	}
	return p.Image
}

// productCard renders one card. Images are lazy-loaded via data-src;
// the purchase control is a WhatsApp button or, when checkout is
// disabled, an inert unavailable control.
func (c *Composer) productCard(p store.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<article class="product-card fade-in" data-name="%s" data-category="%s" data-description="%s">`+"\n",
		esc(p.Name), esc(p.Category), esc(p.Description))

	if ref := ImageRef(p); ref != "" {
		fmt.Fprintf(&b, `<div class="product-image"><img data-src="%s" alt="%s">`, esc(ref), esc(p.Name))
	} else {
		fmt.Fprintf(&b, `<div class="product-image product-image-placeholder"><span>%s</span>`, esc(initial(p.Name)))
	}
	if p.IsOnSale && p.DiscountPercentage > 0 {
		fmt.Fprintf(&b, `<span class="discount-badge">-%.0f%%</span>`, p.DiscountPercentage)
	}
	b.WriteString("</div>\n")

	b.WriteString(`<div class="product-body">` + "\n")
	fmt.Fprintf(&b, `<h3 class="product-name">%s</h3>`+"\n", esc(p.Name))
	if p.Description != "" {
		fmt.Fprintf(&b, `<p class="product-description">%s</p>`+"\n", esc(p.Description))
	}
	b.WriteString(`<div class="product-price">`)
	fmt.Fprintf(&b, `<span class="price">%s</span>`, esc(c.price(p.Price)))
	if p.OriginalPrice > p.Price {
		fmt.Fprintf(&b, `<span class="original-price">%s</span>`, esc(c.price(p.OriginalPrice)))
	}
	b.WriteString("</div>\n")
	b.WriteString(c.buyControl(p))
	b.WriteString("</div>\n</article>\n")
	return b.String()
}

// buyControl renders the purchase affordance. The WhatsApp link itself
// is constructed at click time by the client script from the data
// attributes; only the prebuilt message text is embedded.
func (c *Composer) buyControl(p store.Product) string {
	w := c.Store.WhatsApp
	label := w.ButtonText
	if label == "" {
		label = "Order on WhatsApp"
	}
	if !w.Enabled {
		return `<button class="buy-btn buy-btn-disabled" disabled>Unavailable</button>` + "\n"
	}
	msg := c.BuildMessage(p, "products.html#"+p.ID)
	return fmt.Sprintf(`<button class="buy-btn" data-phone="%s" data-message="%s">%s</button>`+"\n",
		esc(DigitsOnly(w.Phone)), esc(msg), esc(label))
}

// productGrid renders a titled grid of cards, with the container class
// chosen by the store layout.
func (c *Composer) productGrid(title, subtitle, sectionClass string, products []store.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<section class="products-section %s">`+"\n", sectionClass)
	b.WriteString(`<div class="container">` + "\n")
	if title != "" {
		fmt.Fprintf(&b, `<h2 class="section-title">%s</h2>`+"\n", esc(title))
	}
	if subtitle != "" {
		fmt.Fprintf(&b, `<p class="section-subtitle">%s</p>`+"\n", esc(subtitle))
	}
	fmt.Fprintf(&b, `<div class="%s">`+"\n", containerClass(c.Store.Layout))
	for _, p := range products {
		b.WriteString(c.productCard(p))
	}
	b.WriteString("</div>\n</div>\n</section>\n")
	return b.String()
}

// containerClass maps the layout mode to the product container class.
// This is the layout's only effect.
func containerClass(l store.Layout) string {
	switch l {
	case store.LayoutList:
		return "product-list"
	case store.LayoutMasonry:
		return "product-masonry"
	default:
		return "product-grid"
	}
}

// initial returns the first rune of a name for the image placeholder.
func initial(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return "?"
}

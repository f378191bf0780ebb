package render

import (
	"fmt"
	"strings"

	"github.com/yassirfh/shopforge/internal/icons"
	"github.com/yassirfh/shopforge/internal/store"
)

// defaultGridTitles are used when a product section has no configured title.
var defaultGridTitles = map[store.SectionKey]string{
	store.SectionFeaturedProducts: "Featured Products",
	store.SectionBestSellers:      "Best Sellers",
	store.SectionOnSale:           "On Sale",
	store.SectionAllProducts:      "All Products",
}

// Fragment renders the fragment for one section key. It returns the
// empty string when the section is disabled or has nothing to show;
// callers treat empty as "omit entirely".
func (c *Composer) Fragment(key store.SectionKey) string {
	sec := c.Store.Section(key)
	if !sec.Enabled {
		return ""
	}
	switch key {
	case store.SectionHeader:
		return c.header(sec)
	case store.SectionHero:
		return c.hero(sec)
	case store.SectionFeaturedProducts, store.SectionBestSellers, store.SectionOnSale, store.SectionAllProducts:
		return c.productSection(key, sec)
	case store.SectionWhyChooseUs:
		return c.whyChooseUs(sec)
	case store.SectionFAQ:
		return c.faq(sec)
	case store.SectionFooter:
		return c.footer(sec)
	}
	return ""
}

func (c *Composer) header(sec store.SectionConfig) string {
	data := sec.Header
	if data == nil {
		data = &store.HeaderData{}
	}

	var b strings.Builder
	cls := "site-header"
	if data.Sticky {
		cls += " sticky"
	}
	fmt.Fprintf(&b, `<header class="%s">`+"\n", cls)
	b.WriteString(`<div class="container header-inner">` + "\n")

	b.WriteString(`<a href="index.html" class="brand">`)
	if c.Store.Logo != "" {
		fmt.Fprintf(&b, `<img src="%s" alt="%s" class="brand-logo">`, esc(LogoRef(c.Store)), esc(c.Store.Name))
	}
	fmt.Fprintf(&b, `<span class="brand-name">%s</span></a>`+"\n", esc(c.Store.Name))

	b.WriteString(`<nav class="main-nav">` + "\n")
	fmt.Fprintf(&b, `<a href="%s">Products</a>`+"\n", esc(c.productsHref()))
	for _, l := range data.NavLinks {
		if l.Label == "" || l.URL == "" {
			continue
		}
		fmt.Fprintf(&b, `<a href="%s">%s</a>`+"\n", esc(l.URL), esc(l.Label))
	}
	b.WriteString("</nav>\n")
	b.WriteString(`<input type="search" id="product-search" class="header-search" placeholder="Search products...">` + "\n")
	b.WriteString("</div>\n</header>\n")
	return b.String()
}

// productsHref points header navigation at the canonical all-products
// destination: the default custom page when one exists, otherwise the
// generated listing page.
func (c *Composer) productsHref() string {
	if p := c.Store.DefaultPage(); p != nil && p.Published {
		return p.Slug + ".html"
	}
	return "products.html"
}

func (c *Composer) hero(sec store.SectionConfig) string {
	data := sec.Hero
	if data == nil || (data.Title == "" && data.Subtitle == "" && data.CTAText == "") {
		return ""
	}

	var b strings.Builder
	if data.BackgroundImage != "" {
		fmt.Fprintf(&b, `<section class="hero hero-image" style="background-image: url('%s')">`+"\n", esc(data.BackgroundImage))
	} else {
		b.WriteString(`<section class="hero hero-gradient">` + "\n")
	}
	b.WriteString(`<div class="container hero-inner">` + "\n")
	if data.Title != "" {
		fmt.Fprintf(&b, `<h1 class="hero-title">%s</h1>`+"\n", esc(data.Title))
	}
	if data.Subtitle != "" {
		fmt.Fprintf(&b, `<p class="hero-subtitle">%s</p>`+"\n", esc(data.Subtitle))
	}
	if data.CTAText != "" {
		href := data.CTALink
		if href == "" {
			href = c.productsHref()
		}
		fmt.Fprintf(&b, `<a href="%s" class="hero-cta">%s</a>`+"\n", esc(href), esc(data.CTAText))
	}
	b.WriteString("</div>\n</section>\n")
	return b.String()
}

func (c *Composer) productSection(key store.SectionKey, sec store.SectionConfig) string {
	data := sec.Grid
	if data == nil {
		data = &store.ProductGridData{}
	}
	products := subset(key, c.Store.Products, data.Limit)
	if len(products) == 0 {
		return ""
	}
	title := data.Title
	if title == "" {
		title = defaultGridTitles[key]
	}
	return c.productGrid(title, data.Subtitle, "section-"+string(key), products)
}

func (c *Composer) whyChooseUs(sec store.SectionConfig) string {
	data := sec.Feature
	if data == nil || len(data.Items) == 0 {
		return ""
	}

	title := data.Title
	if title == "" {
		title = "Why Choose Us"
	}

	var b strings.Builder
	b.WriteString(`<section class="why-choose-us">` + "\n")
	b.WriteString(`<div class="container">` + "\n")
	fmt.Fprintf(&b, `<h2 class="section-title">%s</h2>`+"\n", esc(title))
	if data.Subtitle != "" {
		fmt.Fprintf(&b, `<p class="section-subtitle">%s</p>`+"\n", esc(data.Subtitle))
	}
	b.WriteString(`<div class="feature-grid">` + "\n")
	for _, item := range data.Items {
		b.WriteString(`<div class="feature-card fade-in">` + "\n")
		if svg := icons.Lookup(item.Icon); svg != "" {
			fmt.Fprintf(&b, `<div class="feature-icon">%s</div>`+"\n", svg)
		}
		fmt.Fprintf(&b, `<h3>%s</h3>`+"\n", esc(item.Title))
		if item.Description != "" {
			fmt.Fprintf(&b, `<p>%s</p>`+"\n", esc(item.Description))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n</div>\n</section>\n")
	return b.String()
}

func (c *Composer) faq(sec store.SectionConfig) string {
	data := sec.FAQ
	if data == nil || len(data.Items) == 0 {
		return ""
	}

	title := data.Title
	if title == "" {
		title = "Frequently Asked Questions"
	}

	var b strings.Builder
	b.WriteString(`<section class="faq-section">` + "\n")
	b.WriteString(`<div class="container">` + "\n")
	fmt.Fprintf(&b, `<h2 class="section-title">%s</h2>`+"\n", esc(title))
	if data.Subtitle != "" {
		fmt.Fprintf(&b, `<p class="section-subtitle">%s</p>`+"\n", esc(data.Subtitle))
	}
	b.WriteString(`<div class="faq-list">` + "\n")
	for _, item := range data.Items {
		if item.Question == "" {
			continue
		}
		b.WriteString(`<div class="faq-item">` + "\n")
		fmt.Fprintf(&b, `<button class="faq-question" aria-expanded="false">%s<span class="faq-chevron">⌄</span></button>`+"\n", esc(item.Question))
		fmt.Fprintf(&b, `<div class="faq-answer"><p>%s</p></div>`+"\n", esc(item.Answer))
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n</div>\n</section>\n")
	return b.String()
}

func (c *Composer) footer(sec store.SectionConfig) string {
	data := sec.Footer
	if data == nil {
		data = &store.FooterData{}
	}

	var b strings.Builder
	b.WriteString(`<footer class="site-footer">` + "\n")
	b.WriteString(`<div class="container footer-inner">` + "\n")

	b.WriteString(`<div class="footer-about">` + "\n")
	fmt.Fprintf(&b, `<h3>%s</h3>`+"\n", esc(c.Store.Name))
	if c.Store.Description != "" {
		fmt.Fprintf(&b, `<p>%s</p>`+"\n", esc(c.Store.Description))
	}
	b.WriteString("</div>\n")

	contact := data.Contact
	if contact.Phone != "" || contact.Email != "" || contact.Address != "" {
		b.WriteString(`<div class="footer-contact"><h4>Contact</h4><ul>` + "\n")
		if contact.Phone != "" {
			fmt.Fprintf(&b, `<li>%s<span>%s</span></li>`+"\n", icons.Lookup("phone"), esc(contact.Phone))
		}
		if contact.Email != "" {
			fmt.Fprintf(&b, `<li>%s<a href="mailto:%s">%s</a></li>`+"\n", icons.Lookup("mail"), esc(contact.Email), esc(contact.Email))
		}
		if contact.Address != "" {
			fmt.Fprintf(&b, `<li>%s<span>%s</span></li>`+"\n", icons.Lookup("location"), esc(contact.Address))
		}
		b.WriteString("</ul></div>\n")
	}

	if len(data.SocialLinks) > 0 {
		b.WriteString(`<div class="footer-social"><h4>Follow Us</h4><div class="social-links">` + "\n")
		for _, l := range data.SocialLinks {
			if l.URL == "" {
				continue
			}
			svg := icons.Lookup(l.Platform)
			if svg == "" {
				svg = esc(l.Platform)
			}
			fmt.Fprintf(&b, `<a href="%s" aria-label="%s" target="_blank" rel="noopener">%s</a>`+"\n", esc(l.URL), esc(l.Platform), svg)
		}
		b.WriteString("</div></div>\n")
	}

	b.WriteString("</div>\n")

	copyright := data.CopyrightText
	if copyright == "" {
		copyright = fmt.Sprintf("© %d %s. All rights reserved.", c.year(), c.Store.Name)
	}
	fmt.Fprintf(&b, `<div class="footer-copyright"><p>%s</p></div>`+"\n", esc(copyright))
	b.WriteString("</footer>\n")
	return b.String()
}

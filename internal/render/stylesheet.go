package render

import (
	"strings"

	"github.com/yassirfh/shopforge/internal/store"
	"github.com/yassirfh/shopforge/internal/theme"
)

// GenerateCSS emits the complete stylesheet for a store. Only the
// resolved palette and font family vary per store; the structural rules
// below are emitted for every export, including all three layout
// variants, so the stylesheet never depends on product data or section
// enablement.
func GenerateCSS(s *store.Store) string {
	p := theme.Resolve(s.Theme.ID, theme.Overrides{
		Primary:   s.Theme.Primary,
		Secondary: s.Theme.Secondary,
		Accent:    s.Theme.Accent,
	})

	var b strings.Builder
	b.WriteString(p.CSSVariables(s.FontFamily))
	b.WriteString(structuralCSS)
	return b.String()
}

// structuralCSS is the fixed part of every generated stylesheet.
const structuralCSS = `
/* ============ Reset & Base ============ */
*, *::before, *::after {
  box-sizing: border-box;
  margin: 0;
  padding: 0;
}

html {
  font-size: 16px;
  scroll-behavior: smooth;
}

body {
  font-family: var(--font-family);
  color: var(--text);
  background: var(--bg);
  line-height: 1.6;
}

img {
  max-width: 100%;
  display: block;
}

a {
  color: var(--primary);
  text-decoration: none;
}

.container {
  max-width: 1200px;
  margin: 0 auto;
  padding: 0 20px;
}

/* ============ Header ============ */
.site-header {
  background: var(--bg);
  border-bottom: 1px solid var(--border);
}

.site-header.sticky {
  position: sticky;
  top: 0;
  z-index: 100;
  box-shadow: 0 1px 3px rgba(0,0,0,0.08);
}

.header-inner {
  display: flex;
  align-items: center;
  gap: 24px;
  padding-top: 14px;
  padding-bottom: 14px;
}

.brand {
  display: flex;
  align-items: center;
  gap: 10px;
  color: var(--text);
}

.brand-logo {
  height: 40px;
  width: auto;
  border-radius: 6px;
}

.brand-name {
  font-size: 1.2rem;
  font-weight: 700;
  color: var(--primary);
}

.main-nav {
  display: flex;
  gap: 18px;
  flex: 1;
}

.main-nav a {
  color: var(--text);
  font-weight: 500;
  transition: color 0.2s;
}

.main-nav a:hover {
  color: var(--primary);
}

.header-search {
  padding: 8px 14px;
  border: 1px solid var(--border);
  border-radius: 20px;
  background: var(--surface);
  color: var(--text);
  min-width: 200px;
  outline: none;
}

.header-search:focus {
  border-color: var(--primary);
}

/* ============ Hero ============ */
.hero {
  color: #ffffff;
  text-align: center;
  padding: 90px 20px;
}

.hero-gradient {
  background: var(--hero-gradient);
}

.hero-image {
  background-size: cover;
  background-position: center;
  position: relative;
}

.hero-image::before {
  content: "";
  position: absolute;
  inset: 0;
  background: rgba(0,0,0,0.45);
}

.hero-inner {
  position: relative;
}

.hero-title {
  font-size: 2.8rem;
  font-weight: 800;
  margin-bottom: 14px;
}

.hero-subtitle {
  font-size: 1.2rem;
  opacity: 0.92;
  margin-bottom: 28px;
}

.hero-cta {
  display: inline-block;
  background: var(--accent);
  color: #ffffff;
  padding: 13px 34px;
  border-radius: 28px;
  font-weight: 600;
  transition: transform 0.2s, box-shadow 0.2s;
}

.hero-cta:hover {
  transform: translateY(-2px);
  box-shadow: 0 6px 18px rgba(0,0,0,0.2);
}

/* ============ Sections ============ */
.products-section,
.why-choose-us,
.faq-section {
  padding: 60px 0;
}

.section-title {
  font-size: 1.9rem;
  text-align: center;
  margin-bottom: 8px;
  color: var(--text);
}

.section-subtitle {
  text-align: center;
  color: var(--text-muted);
  margin-bottom: 32px;
}

/* ============ Product layouts ============ */
.product-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(250px, 1fr));
  gap: 24px;
  margin-top: 28px;
}

.product-list {
  display: flex;
  flex-direction: column;
  gap: 18px;
  margin-top: 28px;
}

.product-list .product-card {
  display: flex;
}

.product-list .product-image {
  width: 220px;
  flex-shrink: 0;
}

.product-masonry {
  columns: 4 250px;
  column-gap: 24px;
  margin-top: 28px;
}

.product-masonry .product-card {
  break-inside: avoid;
  margin-bottom: 24px;
}

/* ============ Product card ============ */
.product-card {
  background: var(--surface);
  border: 1px solid var(--border);
  border-radius: 12px;
  overflow: hidden;
  transition: transform 0.2s, box-shadow 0.2s;
}

.product-card:hover {
  transform: translateY(-4px);
  box-shadow: 0 8px 24px rgba(0,0,0,0.1);
}

.product-image {
  position: relative;
  aspect-ratio: 4 / 3;
  background: var(--border);
}

.product-image img {
  width: 100%;
  height: 100%;
  object-fit: cover;
}

.product-image-placeholder {
  display: flex;
  align-items: center;
  justify-content: center;
  font-size: 2.6rem;
  font-weight: 700;
  color: var(--text-muted);
  background: var(--hero-gradient);
  color: #ffffff;
}

.discount-badge {
  position: absolute;
  top: 10px;
  right: 10px;
  background: var(--error);
  color: #ffffff;
  font-size: 0.8rem;
  font-weight: 700;
  padding: 4px 10px;
  border-radius: 12px;
}

.product-body {
  padding: 16px;
  display: flex;
  flex-direction: column;
  gap: 8px;
}

.product-name {
  font-size: 1.05rem;
  color: var(--text);
}

.product-description {
  font-size: 0.88rem;
  color: var(--text-muted);
  display: -webkit-box;
  -webkit-line-clamp: 2;
  -webkit-box-orient: vertical;
  overflow: hidden;
}

.product-price {
  display: flex;
  align-items: baseline;
  gap: 10px;
}

.price {
  font-size: 1.15rem;
  font-weight: 700;
  color: var(--primary);
}

.original-price {
  font-size: 0.9rem;
  color: var(--text-muted);
  text-decoration: line-through;
}

.buy-btn {
  margin-top: auto;
  background: var(--success);
  color: #ffffff;
  border: none;
  padding: 10px 16px;
  border-radius: 8px;
  font-weight: 600;
  cursor: pointer;
  transition: opacity 0.2s;
}

.buy-btn:hover {
  opacity: 0.9;
}

.buy-btn-disabled {
  background: var(--border);
  color: var(--text-muted);
  cursor: not-allowed;
}

/* ============ Why choose us ============ */
.why-choose-us {
  background: var(--surface);
}

.feature-grid {
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(220px, 1fr));
  gap: 24px;
}

.feature-card {
  text-align: center;
  padding: 28px 18px;
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: 12px;
}

.feature-icon {
  display: inline-flex;
  align-items: center;
  justify-content: center;
  width: 56px;
  height: 56px;
  border-radius: 50%;
  background: var(--hero-gradient);
  color: #ffffff;
  margin-bottom: 14px;
}

.feature-card h3 {
  margin-bottom: 8px;
  font-size: 1.05rem;
}

.feature-card p {
  color: var(--text-muted);
  font-size: 0.9rem;
}

/* ============ FAQ accordion ============ */
.faq-list {
  max-width: 760px;
  margin: 0 auto;
}

.faq-item {
  border: 1px solid var(--border);
  border-radius: 10px;
  margin-bottom: 12px;
  background: var(--surface);
  overflow: hidden;
}

.faq-question {
  width: 100%;
  display: flex;
  justify-content: space-between;
  align-items: center;
  background: none;
  border: none;
  padding: 16px 20px;
  font-size: 1rem;
  font-weight: 600;
  color: var(--text);
  cursor: pointer;
  text-align: left;
}

.faq-chevron {
  transition: transform 0.25s;
}

.faq-item.open .faq-chevron {
  transform: rotate(180deg);
}

.faq-answer {
  max-height: 0;
  overflow: hidden;
  transition: max-height 0.3s ease;
}

.faq-answer p {
  padding: 0 20px 16px;
  color: var(--text-muted);
}

/* ============ Footer ============ */
.site-footer {
  background: var(--secondary);
  color: #ffffff;
  padding-top: 48px;
  margin-top: 60px;
}

.footer-inner {
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(220px, 1fr));
  gap: 32px;
  padding-bottom: 32px;
}

.site-footer h3,
.site-footer h4 {
  margin-bottom: 12px;
}

.site-footer p,
.site-footer li {
  opacity: 0.85;
  font-size: 0.92rem;
}

.footer-contact ul {
  list-style: none;
}

.footer-contact li {
  display: flex;
  align-items: center;
  gap: 10px;
  margin-bottom: 10px;
}

.footer-contact svg {
  width: 18px;
  height: 18px;
  flex-shrink: 0;
}

.footer-contact a {
  color: #ffffff;
}

.social-links {
  display: flex;
  gap: 14px;
}

.social-links a {
  color: #ffffff;
  opacity: 0.85;
  transition: opacity 0.2s;
}

.social-links a:hover {
  opacity: 1;
}

.footer-copyright {
  border-top: 1px solid rgba(255,255,255,0.15);
  text-align: center;
  padding: 18px 0;
  font-size: 0.85rem;
}

/* ============ Listing page ============ */
.listing-page,
.custom-page {
  padding: 40px 0 60px;
  min-height: 60vh;
}

.page-title {
  font-size: 2rem;
  margin-bottom: 24px;
}

.listing-controls {
  display: flex;
  flex-wrap: wrap;
  gap: 12px;
  margin-bottom: 16px;
}

.listing-controls input,
.listing-controls select {
  padding: 9px 14px;
  border: 1px solid var(--border);
  border-radius: 8px;
  background: var(--surface);
  color: var(--text);
  outline: none;
}

.listing-controls input {
  flex: 1;
  min-width: 200px;
}

.listing-count {
  color: var(--text-muted);
  font-size: 0.9rem;
  margin-bottom: 12px;
}

.listing-empty {
  text-align: center;
  color: var(--text-muted);
  padding: 48px 0;
}

/* ============ Custom page content ============ */
.page-content {
  max-width: 820px;
}

.page-content h2 {
  margin: 28px 0 12px;
}

.page-content p {
  margin-bottom: 14px;
}

.page-content ul,
.page-content ol {
  margin: 0 0 14px 24px;
}

.page-content pre {
  background: var(--surface);
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 14px;
  overflow-x: auto;
  margin-bottom: 14px;
}

.back-home {
  display: inline-block;
  margin-top: 28px;
  font-weight: 600;
}

/* ============ Scroll-to-top & animations ============ */
.scroll-top {
  position: fixed;
  right: 22px;
  bottom: 22px;
  width: 44px;
  height: 44px;
  border-radius: 50%;
  border: none;
  background: var(--primary);
  color: #ffffff;
  font-size: 1.2rem;
  cursor: pointer;
  opacity: 0;
  pointer-events: none;
  transition: opacity 0.25s;
  z-index: 90;
}

.scroll-top.visible {
  opacity: 1;
  pointer-events: auto;
}

.fade-in {
  opacity: 0;
  transform: translateY(16px);
  transition: opacity 0.5s ease, transform 0.5s ease;
}

.fade-in.visible {
  opacity: 1;
  transform: none;
}

/* ============ Responsive ============ */
@media (max-width: 1024px) {
  .product-masonry {
    columns: 3 220px;
  }
}

@media (max-width: 768px) {
  .header-inner {
    flex-wrap: wrap;
    gap: 12px;
  }

  .header-search {
    flex: 1 1 100%;
    min-width: 0;
  }

  .hero-title {
    font-size: 2rem;
  }

  .product-list .product-card {
    flex-direction: column;
  }

  .product-list .product-image {
    width: 100%;
  }

  .product-masonry {
    columns: 2 180px;
  }
}

@media (max-width: 480px) {
  .product-grid {
    grid-template-columns: 1fr 1fr;
    gap: 14px;
  }

  .product-masonry {
    columns: 1;
  }

  .hero {
    padding: 60px 16px;
  }
}
`

package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/yassirfh/shopforge/internal/store"
)

// listingEntry is the per-product payload embedded in products.html.
// The listing page re-renders cards from this data at runtime so its
// filtering can be driven by the querystring, independent of the
// DOM-based search on the home page.
type listingEntry struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Price         float64  `json:"price"`
	PriceLabel    string   `json:"priceLabel"`
	OriginalLabel string   `json:"originalLabel,omitempty"`
	Image         string   `json:"image,omitempty"`
	Category      string   `json:"category,omitempty"`
	IsOnSale      bool     `json:"isOnSale,omitempty"`
	Discount      float64  `json:"discount,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Message       string   `json:"message,omitempty"`
}

// listingPayload is the full embedded document: catalog plus the
// checkout settings the runtime script needs.
type listingPayload struct {
	Products   []listingEntry `json:"products"`
	Categories []string       `json:"categories"`
	WhatsApp   bool           `json:"whatsapp"`
	Phone      string         `json:"phone,omitempty"`
	ButtonText string         `json:"buttonText,omitempty"`
	Layout     string         `json:"layout"`
}

// ComposeListing builds products.html: all products, category and sort
// controls, and the embedded JSON consumed by the listing script.
func (c *Composer) ComposeListing() (string, error) {
	payload := listingPayload{
		Products:   make([]listingEntry, 0, len(c.Store.Products)),
		Categories: categories(c.Store.Products),
		WhatsApp:   c.Store.WhatsApp.Enabled,
		Phone:      DigitsOnly(c.Store.WhatsApp.Phone),
		ButtonText: c.Store.WhatsApp.ButtonText,
		Layout:     containerClass(c.Store.Layout),
	}
	if payload.ButtonText == "" {
		payload.ButtonText = "Order on WhatsApp"
	}
	for _, p := range c.Store.Products {
		e := listingEntry{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			PriceLabel:  c.price(p.Price),
			Image:       ImageRef(p),
			Category:    p.Category,
			IsOnSale:    p.IsOnSale,
			Discount:    p.DiscountPercentage,
			Tags:        p.Tags,
		}
		if p.OriginalPrice > p.Price {
			e.OriginalLabel = c.price(p.OriginalPrice)
		}
		if c.Store.WhatsApp.Enabled {
			e.Message = c.BuildMessage(p, "products.html#"+p.ID)
		}
		payload.Products = append(payload.Products, e)
	}

	// The default JSON encoder escapes <, >, and & which keeps the
	// embedded document safe inside a <script> element.
	var data bytes.Buffer
	enc := json.NewEncoder(&data)
	if err := enc.Encode(payload); err != nil {
		return "", fmt.Errorf("encoding catalog payload: %w", err)
	}

	var body strings.Builder
	if header := c.Fragment(store.SectionHeader); header != "" {
		body.WriteString(header)
	}

	body.WriteString(`<main class="listing-page">` + "\n" + `<div class="container">` + "\n")
	body.WriteString(`<h1 class="page-title">Products</h1>` + "\n")

	body.WriteString(`<div class="listing-controls">` + "\n")
	body.WriteString(`<input type="search" id="listing-search" placeholder="Search products...">` + "\n")
	body.WriteString(`<select id="listing-category"><option value="">All categories</option></select>` + "\n")
	body.WriteString(`<select id="listing-sort">
<option value="featured">Featured</option>
<option value="name">Name</option>
<option value="price-asc">Price: low to high</option>
<option value="price-desc">Price: high to low</option>
</select>` + "\n")
	body.WriteString("</div>\n")

	body.WriteString(`<p class="listing-count" id="listing-count"></p>` + "\n")
	fmt.Fprintf(&body, `<div id="listing-grid" class="%s"></div>`+"\n", containerClass(c.Store.Layout))
	body.WriteString(`<p class="listing-empty" id="listing-empty" hidden>No products match your search.</p>` + "\n")
	body.WriteString("</div>\n</main>\n")

	fmt.Fprintf(&body, `<script id="catalog-data" type="application/json">%s</script>`+"\n", data.String())
	body.WriteString("<script>\n" + listingScript + "</script>\n")

	if footer := c.Fragment(store.SectionFooter); footer != "" {
		body.WriteString(footer)
	}

	title := "Products"
	if c.Store.Name != "" {
		title = "Products — " + c.Store.Name
	}
	return c.document(title, c.Store.Description, body.String())
}

// categories collects the distinct non-empty product categories, sorted.
func categories(products []store.Product) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out
}

// listingScript is the self-contained runtime for products.html. It
// reads the embedded catalog, seeds its state from the querystring
// (?q=, ?category=, ?sort=), and re-renders the grid on every change.
const listingScript = `(function() {
  "use strict";

  var dataEl = document.getElementById("catalog-data");
  if (!dataEl) return;
  var payload = JSON.parse(dataEl.textContent);

  var grid = document.getElementById("listing-grid");
  var searchInput = document.getElementById("listing-search");
  var categorySelect = document.getElementById("listing-category");
  var sortSelect = document.getElementById("listing-sort");
  var countEl = document.getElementById("listing-count");
  var emptyEl = document.getElementById("listing-empty");

  payload.categories.forEach(function(cat) {
    var opt = document.createElement("option");
    opt.value = cat;
    opt.textContent = cat;
    categorySelect.appendChild(opt);
  });

  // Initial state from the querystring.
  var params = new URLSearchParams(window.location.search);
  searchInput.value = params.get("q") || "";
  categorySelect.value = params.get("category") || "";
  var sortParam = params.get("sort");
  if (sortParam && sortSelect.querySelector('option[value="' + sortParam + '"]')) {
    sortSelect.value = sortParam;
  }

  function esc(s) {
    return String(s)
      .replace(/&/g, "&amp;").replace(/</g, "&lt;").replace(/>/g, "&gt;")
      .replace(/"/g, "&quot;").replace(/'/g, "&#39;");
  }

  function matches(p, query, category) {
    if (category && p.category !== category) return false;
    if (!query) return true;
    var hay = (p.name + " " + (p.description || "") + " " + (p.category || "") + " " + (p.tags || []).join(" ")).toLowerCase();
    return hay.indexOf(query.toLowerCase()) !== -1;
  }

  function sorted(list, mode) {
    var copy = list.slice();
    if (mode === "name") {
      copy.sort(function(a, b) { return a.name.localeCompare(b.name); });
    } else if (mode === "price-asc") {
      copy.sort(function(a, b) { return a.price - b.price; });
    } else if (mode === "price-desc") {
      copy.sort(function(a, b) { return b.price - a.price; });
    }
    return copy;
  }

  function cardHTML(p) {
    var html = '<article class="product-card" id="' + esc(p.id) + '">';
    if (p.image) {
      html += '<div class="product-image"><img src="' + esc(p.image) + '" alt="' + esc(p.name) + '" loading="lazy">';
    } else {
      html += '<div class="product-image product-image-placeholder"><span>' + esc(p.name.charAt(0).toUpperCase()) + '</span>';
    }
    if (p.isOnSale && p.discount) {
      html += '<span class="discount-badge">-' + Math.round(p.discount) + '%</span>';
    }
    html += '</div><div class="product-body">';
    html += '<h3 class="product-name">' + esc(p.name) + '</h3>';
    if (p.description) html += '<p class="product-description">' + esc(p.description) + '</p>';
    html += '<div class="product-price"><span class="price">' + esc(p.priceLabel) + '</span>';
    if (p.originalLabel) html += '<span class="original-price">' + esc(p.originalLabel) + '</span>';
    html += '</div>';
    if (payload.whatsapp && p.message) {
      html += '<button class="buy-btn" data-phone="' + esc(payload.phone) + '" data-message="' + esc(p.message) + '">' + esc(payload.buttonText) + '</button>';
    } else {
      html += '<button class="buy-btn buy-btn-disabled" disabled>Unavailable</button>';
    }
    html += '</div></article>';
    return html;
  }

  function render() {
    var query = searchInput.value.trim();
    var category = categorySelect.value;
    var visible = payload.products.filter(function(p) { return matches(p, query, category); });
    visible = sorted(visible, sortSelect.value);

    grid.innerHTML = visible.map(cardHTML).join("");
    countEl.textContent = visible.length + " product" + (visible.length === 1 ? "" : "s");
    emptyEl.hidden = visible.length > 0;

    // Keep the querystring shareable.
    var next = new URLSearchParams();
    if (query) next.set("q", query);
    if (category) next.set("category", category);
    if (sortSelect.value !== "featured") next.set("sort", sortSelect.value);
    var qs = next.toString();
    window.history.replaceState(null, "", qs ? "?" + qs : window.location.pathname);
  }

  // Checkout clicks are handled by the shared main.js delegate; the
  // rendered buttons carry the same data attributes as home-page cards.

  var debounce;
  searchInput.addEventListener("input", function() {
    clearTimeout(debounce);
    debounce = setTimeout(render, 200);
  });
  categorySelect.addEventListener("change", render);
  sortSelect.addEventListener("change", render);

  render();
})();
`

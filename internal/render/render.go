// Package render is the static-site generation core: pure functions
// that turn a store configuration and product catalog into complete
// HTML documents, a stylesheet, and the client behavior script.
//
// Every generator is deterministic over its inputs. The one permitted
// piece of external state is the copyright year, drawn from the
// composer's clock so tests can freeze it.
package render

import (
	"html"
	"strconv"
	"time"

	"github.com/yassirfh/shopforge/internal/store"
)

// DefaultCurrency is used when the composer is built without one.
const DefaultCurrency = "$"

// Composer assembles full pages from section fragments. It holds the
// store snapshot read-only; nothing in this package mutates it.
type Composer struct {
	Store    *store.Store
	Currency string
	Now      func() time.Time
}

// NewComposer returns a composer over an immutable store snapshot.
func NewComposer(s *store.Store, currency string) *Composer {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Composer{Store: s, Currency: currency, Now: time.Now}
}

// esc escapes a plain-text field for interpolation into HTML element
// content or a double-quoted attribute. Rich-HTML fields (custom page
// content) are the only deliberate bypass, and go through markdown
// rendering instead.
func esc(s string) string {
	return html.EscapeString(s)
}

// price formats a monetary value with the configured currency symbol.
func (c *Composer) price(v float64) string {
	return c.Currency + strconv.FormatFloat(v, 'f', 2, 64)
}

// year returns the copyright year from the composer's clock.
func (c *Composer) year() int {
	return c.Now().Year()
}

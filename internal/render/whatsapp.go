package render

import (
	"net/url"
	"strings"

	"github.com/yassirfh/shopforge/internal/store"
)

// DefaultMessageTemplate is used when the store has WhatsApp enabled
// but no template configured.
const DefaultMessageTemplate = "Hello {storeName}! I would like to order {productName} ({price})."

// DigitsOnly strips every non-digit character from a phone number,
// including a leading +, as wa.me requires.
func DigitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildMessage substitutes the template's placeholder tokens for one
// product. Each token family has a flag; a disabled flag replaces its
// tokens with the empty string rather than leaving them in the text.
// Both historical spellings of each token are honored.
func (c *Composer) BuildMessage(p store.Product, productURL string) string {
	w := c.Store.WhatsApp
	tpl := w.MessageTemplate
	if tpl == "" {
		tpl = DefaultMessageTemplate
	}

	name, priceStr, desc, link := "", "", "", ""
	if w.IncludeName {
		name = p.Name
	}
	if w.IncludePrice {
		priceStr = c.price(p.Price)
	}
	if w.IncludeDescription {
		desc = p.Description
	}
	if w.IncludeLink {
		link = productURL
	}

	r := strings.NewReplacer(
		"{productName}", name,
		"{price}", priceStr,
		"{productPrice}", priceStr,
		"{description}", desc,
		"{productDescription}", desc,
		"{productUrl}", link,
		"{productLink}", link,
		"{storeName}", c.Store.Name,
	)
	return r.Replace(tpl)
}

// WhatsAppLink builds the wa.me deep link for a prebuilt message.
func WhatsAppLink(phone, message string) string {
	return "https://wa.me/" + DigitsOnly(phone) + "?text=" + url.QueryEscape(message)
}

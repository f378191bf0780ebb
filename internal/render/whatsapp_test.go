package render

import (
	"net/url"
	"strings"
	"testing"

	"github.com/yassirfh/shopforge/internal/store"
)

func TestDigitsOnly(t *testing.T) {
	tests := []struct{ in, want string }{
		{"+212 600-123 456", "212600123456"},
		{"(555) 012-3456", "5550123456"},
		{"16175551234", "16175551234"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := DigitsOnly(tt.in); got != tt.want {
			t.Errorf("DigitsOnly(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildMessageAllTokens(t *testing.T) {
	s := &store.Store{
		Name: "Atlas Goods",
		WhatsApp: store.WhatsAppSettings{
			Enabled:            true,
			Phone:              "+212600123456",
			MessageTemplate:    "Hi {storeName}, I want {productName} for {price}. Details: {description}. Link: {productUrl}",
			IncludeName:        true,
			IncludePrice:       true,
			IncludeDescription: true,
			IncludeLink:        true,
		},
	}
	c := NewComposer(s, "$")
	p := store.Product{ID: "p1", Name: "Ceramic Mug", Description: "Hand glazed", Price: 49.99}

	msg := c.BuildMessage(p, "products.html#p1")

	for _, want := range []string{"Atlas Goods", "Ceramic Mug", "$49.99", "Hand glazed", "products.html#p1"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
	if strings.Contains(msg, "{") {
		t.Errorf("message %q still contains a placeholder", msg)
	}
}

func TestBuildMessageAliasTokens(t *testing.T) {
	s := &store.Store{
		Name: "Atlas",
		WhatsApp: store.WhatsAppSettings{
			MessageTemplate: "{productPrice} / {productDescription} / {productLink}",
			IncludePrice:    true, IncludeDescription: true, IncludeLink: true,
		},
	}
	c := NewComposer(s, "$")
	msg := c.BuildMessage(store.Product{Name: "X", Description: "desc", Price: 5}, "u")
	if msg != "$5.00 / desc / u" {
		t.Errorf("alias tokens not substituted: %q", msg)
	}
}

func TestBuildMessageDisabledFlags(t *testing.T) {
	s := &store.Store{
		Name: "Atlas",
		WhatsApp: store.WhatsAppSettings{
			MessageTemplate: "Order: {productName} {price}",
		},
	}
	c := NewComposer(s, "$")
	msg := c.BuildMessage(store.Product{Name: "Mug", Price: 10}, "")
	// Disabled flags substitute empty strings rather than leaving tokens.
	if strings.Contains(msg, "{") || strings.Contains(msg, "Mug") || strings.Contains(msg, "10") {
		t.Errorf("disabled flags leaked content: %q", msg)
	}
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("+1 (617) 555-0100", "I want the Ceramic Mug & more")

	if !strings.HasPrefix(link, "https://wa.me/16175550100?text=") {
		t.Errorf("link = %q", link)
	}
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	if got := u.Query().Get("text"); got != "I want the Ceramic Mug & more" {
		t.Errorf("decoded text = %q", got)
	}
}

package store

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a fresh identifier for products, pages, and section
// child items. Generators never mint ids themselves; they are supplied
// by whoever creates the item.
func NewID() string {
	return uuid.NewString()
}

// Slugify derives a URL-safe slug from a page title: lowercase ASCII
// letters, digits, and single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

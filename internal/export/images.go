package export

import (
	"fmt"

	"github.com/yassirfh/shopforge/internal/datauri"
	"github.com/yassirfh/shopforge/internal/store"
)

// imageFiles decodes every inline data-URI image into a file entry.
// Remote URLs stay remote; products without images contribute nothing.
// Filenames must match what the renderer linked, so both sides derive
// them from the product id and the URI's MIME type.
func imageFiles(s *store.Store) ([]File, error) {
	var out []File

	if datauri.IsDataURI(s.Logo) {
		mime, data, err := datauri.Decode(s.Logo)
		if err != nil {
			return nil, fmt.Errorf("decoding store logo: %w", err)
		}
		out = append(out, File{Path: "logo" + datauri.Ext(mime), Data: data})
	}

	for _, p := range s.Products {
		if !datauri.IsDataURI(p.Image) {
			continue
		}
		mime, data, err := datauri.Decode(p.Image)
		if err != nil {
			return nil, fmt.Errorf("decoding image for product %q: %w", p.Name, err)
		}
		out = append(out, File{Path: "images/" + p.ID + datauri.Ext(mime), Data: data})
	}
	return out, nil
}

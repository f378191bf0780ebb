// Package datauri decodes base64 data URIs and maps image MIME types to
// file extensions. Both the renderer (to name image files in links) and
// the exporter (to write the binary payloads) depend on it.
package datauri

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// IsDataURI reports whether s looks like a data: URI.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// Decode splits a base64 data URI into its MIME type and decoded bytes.
// Only base64-encoded payloads are supported; anything else is a
// generation failure surfaced to the export boundary.
func Decode(uri string) (mime string, data []byte, err error) {
	if !IsDataURI(uri) {
		return "", nil, fmt.Errorf("not a data URI")
	}
	rest := strings.TrimPrefix(uri, "data:")
	comma := strings.Index(rest, ",")
	if comma < 0 {
		return "", nil, fmt.Errorf("malformed data URI: missing comma")
	}
	meta, payload := rest[:comma], rest[comma+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return "", nil, fmt.Errorf("unsupported data URI encoding (want base64)")
	}
	mime = strings.TrimSuffix(meta, ";base64")
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decoding base64 payload: %w", err)
	}
	return mime, data, nil
}

// Ext returns the conventional file extension for an image MIME type,
// defaulting to .png for anything unrecognized.
func Ext(mime string) string {
	switch mime {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	case "image/x-icon", "image/vnd.microsoft.icon":
		return ".ico"
	default:
		return ".png"
	}
}

// ExtFromURI returns the extension for a data URI without decoding the
// payload, or an error when the URI is not well formed.
func ExtFromURI(uri string) (string, error) {
	if !IsDataURI(uri) {
		return "", fmt.Errorf("not a data URI")
	}
	rest := strings.TrimPrefix(uri, "data:")
	comma := strings.Index(rest, ",")
	if comma < 0 {
		return "", fmt.Errorf("malformed data URI: missing comma")
	}
	mime := strings.TrimSuffix(rest[:comma], ";base64")
	return Ext(mime), nil
}

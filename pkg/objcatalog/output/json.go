// Package output serializes catalog items and publishes them to the viewer.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/models"
)

// Encode serializes items as a JSON array. Non-ASCII and HTML-significant
// characters are written literally. The compact form has no whitespace
// between tokens and no trailing newline.
func Encode(items []models.Item, pretty bool) ([]byte, error) {
	if items == nil {
		items = []models.Item{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(items); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Decode parses a JSON item array in either compact or pretty form.
// Missing fields decode as their zero values.
func Decode(data []byte) ([]models.Item, error) {
	var items []models.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

package output

import (
	"os"
	"path/filepath"

	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/models"
)

// JSONFile writes the catalog as the full content of a JSON file,
// creating parent directories as needed.
type JSONFile struct {
	Path string
}

// Target implements Writer.
func (w *JSONFile) Target() string { return w.Path }

// Write implements Writer.
func (w *JSONFile) Write(items []models.Item) error {
	data, err := Encode(items, false)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(w.Path), 0755); err != nil {
		return err
	}
	return WriteFileAtomic(w.Path, data, 0644)
}

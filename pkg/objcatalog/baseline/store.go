// Package baseline persists the catalog snapshot compared on the next run.
package baseline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/models"
	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/output"
)

// ErrNoBaseline indicates no previous snapshot has been saved yet.
var ErrNoBaseline = errors.New("no previous data")

// Store is a single JSON file holding the last saved snapshot.
type Store struct {
	Path string
}

// Load reads the saved snapshot. It returns ErrNoBaseline when the file
// does not exist.
func (s *Store) Load() ([]models.Item, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoBaseline
		}
		return nil, err
	}

	items, err := output.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("invalid baseline %s: %w", s.Path, err)
	}
	return items, nil
}

// Save overwrites the snapshot with items.
func (s *Store) Save(items []models.Item) error {
	data, err := output.Encode(items, false)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return err
	}
	return output.WriteFileAtomic(s.Path, data, 0644)
}

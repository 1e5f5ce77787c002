package output

import (
	"fmt"

	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/models"
)

// Mode selects the output strategy.
type Mode string

const (
	// ModeHTML patches the data line of an existing HTML catalog.
	ModeHTML Mode = "html"
	// ModeJSON overwrites a standalone JSON file.
	ModeJSON Mode = "json"
)

// DefaultMarker is the line prefix that holds the embedded catalog data.
const DefaultMarker = "const ALL_DATA = "

// Writer publishes a catalog snapshot.
type Writer interface {
	// Write serializes items to the target.
	Write(items []models.Item) error
	// Target returns the path the writer publishes to.
	Target() string
}

// New returns the writer for mode targeting path. marker is only used by
// ModeHTML; an empty marker selects DefaultMarker.
func New(mode Mode, path, marker string) (Writer, error) {
	switch mode {
	case ModeHTML:
		if marker == "" {
			marker = DefaultMarker
		}
		return &HTMLPatch{Path: path, Marker: marker}, nil
	case ModeJSON:
		return &JSONFile{Path: path}, nil
	default:
		return nil, fmt.Errorf("invalid output mode: %s (must be html or json)", mode)
	}
}

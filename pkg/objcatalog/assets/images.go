// Package assets checks catalog items against their image files.
package assets

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/models"
)

// ImageExt is the extension of icon image files.
const ImageExt = ".png"

// ImagePath returns the expected image file for an icon name.
func ImagePath(dir, icon string) string {
	return filepath.Join(dir, icon+ImageExt)
}

// MissingImages returns the items whose icon image is absent from dir.
// Icons that are not plain file names (containing a path separator) count
// as missing.
// checked is false when dir itself does not exist, in which case no item
// is reported.
func MissingImages(dir string, items []models.Item) (missing []models.Item, checked bool) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, false
	}

	missing = []models.Item{}
	for _, it := range items {
		if !validIcon(it.Icon) {
			missing = append(missing, it)
			continue
		}
		if _, err := os.Stat(ImagePath(dir, it.Icon)); err != nil {
			missing = append(missing, it)
		}
	}
	return missing, true
}

// validIcon reports whether icon names a file directly inside the image dir.
func validIcon(icon string) bool {
	if icon == "" || icon == "." || icon == ".." {
		return false
	}
	return !strings.ContainsAny(icon, `/\`)
}

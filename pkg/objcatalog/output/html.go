package output

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/models"
)

// ErrTemplateNotFound indicates the HTML catalog to patch does not exist.
var ErrTemplateNotFound = errors.New("html template not found")

// ErrMarkerNotFound indicates no line in the template starts with the marker.
var ErrMarkerNotFound = errors.New("data marker not found")

// HTMLPatch rewrites the single marker line of an existing HTML catalog.
// Every other byte of the file is left untouched.
type HTMLPatch struct {
	Path   string
	Marker string
}

// Target implements Writer.
func (w *HTMLPatch) Target() string { return w.Path }

// Write implements Writer. The template is not modified when the marker
// cannot be found.
func (w *HTMLPatch) Write(items []models.Item) error {
	info, err := os.Stat(w.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrTemplateNotFound, w.Path)
		}
		return err
	}

	src, err := os.ReadFile(w.Path)
	if err != nil {
		return err
	}

	payload, err := Encode(items, false)
	if err != nil {
		return err
	}

	patched, err := PatchMarkerLine(src, w.Marker, payload)
	if err != nil {
		return fmt.Errorf("%w in %s", err, w.Path)
	}

	return WriteFileAtomic(w.Path, patched, info.Mode().Perm())
}

// PatchMarkerLine replaces the first line of src whose content, after
// leading whitespace, starts with marker. The new line keeps the original
// indentation and line terminator and reads marker + payload + ";".
func PatchMarkerLine(src []byte, marker string, payload []byte) ([]byte, error) {
	prefix := []byte(marker)
	offset := 0
	for offset < len(src) {
		end := bytes.IndexByte(src[offset:], '\n')
		var line []byte
		if end < 0 {
			line = src[offset:]
		} else {
			line = src[offset : offset+end+1]
		}

		trimmed := bytes.TrimLeft(line, " \t\v\f")
		if bytes.HasPrefix(trimmed, prefix) {
			indent := line[:len(line)-len(trimmed)]

			var out bytes.Buffer
			out.Grow(len(src) - len(line) + len(indent) + len(prefix) + len(payload) + 3)
			out.Write(src[:offset])
			out.Write(indent)
			out.Write(prefix)
			out.Write(payload)
			out.WriteByte(';')
			out.Write(lineTerminator(line))
			out.Write(src[offset+len(line):])
			return out.Bytes(), nil
		}
		offset += len(line)
	}
	return nil, ErrMarkerNotFound
}

// lineTerminator returns the "\r\n", "\n" or empty ending of line.
func lineTerminator(line []byte) []byte {
	switch {
	case bytes.HasSuffix(line, []byte("\r\n")):
		return []byte("\r\n")
	case bytes.HasSuffix(line, []byte("\n")):
		return []byte("\n")
	default:
		return nil
	}
}

// Package report renders run results for the operator.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/ukaji3/objcatalog-go/pkg/objcatalog"
	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/assets"
)

// List limits applied by the text reporter.
const (
	MaxAdded    = 20
	MaxRemoved  = 20
	MaxModified = 10
	MaxMissing  = 10
)

// Reporter renders a run result.
type Reporter interface {
	Report(w io.Writer, res *objcatalog.Result) error
}

// New returns the reporter for format (text, json, none).
func New(format string) (Reporter, error) {
	switch format {
	case "text":
		return Text{}, nil
	case "json":
		return JSON{}, nil
	case "none":
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("invalid report format: %s (must be text, json, or none)", format)
	}
}

// Nop discards results.
type Nop struct{}

// Report implements Reporter.
func (Nop) Report(io.Writer, *objcatalog.Result) error { return nil }

// JSON writes the result as indented JSON.
type JSON struct{}

// Report implements Reporter.
func (JSON) Report(w io.Writer, res *objcatalog.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// Text renders a summary table followed by truncated item lists.
type Text struct{}

// Report implements Reporter.
func (Text) Report(w io.Writer, res *objcatalog.Result) error {
	var b strings.Builder

	if res.FirstRun || res.Diff == nil {
		b.WriteString("No previous data (first run)\n")
	} else {
		d := res.Diff
		b.WriteString("Change summary\n")
		t := table.NewWriter()
		t.SetStyle(table.StyleRounded)
		t.AppendRows([]table.Row{
			{"Previous", d.PrevCount},
			{"Current", d.NewCount},
			{"Added", len(d.Added)},
			{"Removed", len(d.Removed)},
			{"Modified", len(d.Modified)},
		})
		t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
		b.WriteString(t.Render())
		b.WriteString("\n")

		if len(d.Added) > 0 {
			fmt.Fprintf(&b, "\nAdded objects (%d):\n", len(d.Added))
			for _, id := range head(d.Added, MaxAdded) {
				it, _ := d.NewItem(id)
				fmt.Fprintf(&b, "  + %s (%s) [%s]\n", it.Name, id, it.Filter)
			}
			writeMore(&b, len(d.Added), MaxAdded)
		}

		if len(d.Removed) > 0 {
			fmt.Fprintf(&b, "\nRemoved objects (%d):\n", len(d.Removed))
			for _, id := range head(d.Removed, MaxRemoved) {
				it, _ := d.PrevItem(id)
				fmt.Fprintf(&b, "  - %s (%s)\n", it.Name, id)
			}
			writeMore(&b, len(d.Removed), MaxRemoved)
		}

		if len(d.Modified) > 0 {
			fmt.Fprintf(&b, "\nModified objects (%d):\n", len(d.Modified))
			n := len(d.Modified)
			if n > MaxModified {
				n = MaxModified
			}
			for _, c := range d.Modified[:n] {
				fmt.Fprintf(&b, "  ~ %s (%s) -> %s changed\n", c.New.Name, c.ID, strings.Join(c.Fields, ", "))
			}
			writeMore(&b, len(d.Modified), MaxModified)
		}
	}

	if res.ImagesChecked {
		if len(res.MissingImages) > 0 {
			fmt.Fprintf(&b, "\nObjects without image (%d):\n", len(res.MissingImages))
			n := len(res.MissingImages)
			if n > MaxMissing {
				n = MaxMissing
			}
			for _, it := range res.MissingImages[:n] {
				fmt.Fprintf(&b, "  ! %s -> %s\n", it.Name, assets.ImagePath(res.ImageDir, it.Icon))
			}
			writeMore(&b, len(res.MissingImages), MaxMissing)
		} else {
			b.WriteString("\nAll objects have an image file\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func head(ids []string, max int) []string {
	if len(ids) > max {
		return ids[:max]
	}
	return ids
}

func writeMore(b *strings.Builder, total, shown int) {
	if total > shown {
		fmt.Fprintf(b, "  ... and %d more\n", total-shown)
	}
}

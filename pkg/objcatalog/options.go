// Package objcatalog extracts catalog objects from a workbook and publishes
// them to the static catalog viewer.
package objcatalog

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/output"
	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/parser"
)

// Default file locations, relative to Config.Dir.
const (
	DefaultWorkbook   = "object.xlsx"
	DefaultSheet      = "Object"
	DefaultHTMLOutput = "inzoi_catalog.html"
	DefaultJSONOutput = "data/objects.json"
	DefaultBaseline   = "_prev_data.json"
	DefaultImageDir   = "img"
)

// Config configures a catalog run.
type Config struct {
	// Dir is the base directory relative paths are resolved against.
	Dir string `json:"-" yaml:"-"`
	// Workbook is the source spreadsheet.
	Workbook string `json:"workbook" yaml:"workbook"`
	// Sheet is the sheet holding object rows.
	Sheet string `json:"sheet" yaml:"sheet"`
	// Mode selects the output strategy (html, json).
	Mode output.Mode `json:"mode" yaml:"mode"`
	// Output is the publish target. If empty, it defaults per Mode.
	Output string `json:"output" yaml:"output"`
	// Marker is the line prefix patched in html mode.
	Marker string `json:"marker" yaml:"marker"`
	// Baseline is the snapshot file used for change detection.
	Baseline string `json:"baseline" yaml:"baseline"`
	// Images is the directory of <icon>.png files.
	Images string `json:"images" yaml:"images"`
	// Layout maps item fields to sheet columns.
	Layout parser.Layout `json:"layout" yaml:"layout"`
	// Report selects the report format (text, json, none).
	Report string `json:"report" yaml:"report"`

	// Logger receives progress records. If nil, slog.Default() is used.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

// DefaultConfig returns the configuration of a standard catalog folder.
func DefaultConfig() Config {
	return Config{
		Dir:      ".",
		Workbook: DefaultWorkbook,
		Sheet:    DefaultSheet,
		Mode:     output.ModeHTML,
		Marker:   output.DefaultMarker,
		Baseline: DefaultBaseline,
		Images:   DefaultImageDir,
		Layout:   parser.DefaultLayout(),
		Report:   "text",
	}
}

// OutputPath returns the configured output, or the default for Mode.
func (c Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	if c.Mode == output.ModeJSON {
		return DefaultJSONOutput
	}
	return DefaultHTMLOutput
}

// Resolve returns a copy with every path made relative to Dir.
func (c Config) Resolve() Config {
	c.Output = c.OutputPath()
	c.Workbook = c.resolvePath(c.Workbook)
	c.Output = c.resolvePath(c.Output)
	c.Baseline = c.resolvePath(c.Baseline)
	c.Images = c.resolvePath(c.Images)
	return c
}

func (c Config) resolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.Dir == "" {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// Validate checks the option values.
func (c Config) Validate() error {
	switch c.Mode {
	case output.ModeHTML, output.ModeJSON:
	default:
		return fmt.Errorf("invalid mode: %s (must be html or json)", c.Mode)
	}
	switch c.Report {
	case "text", "json", "none":
	default:
		return fmt.Errorf("invalid report format: %s (must be text, json, or none)", c.Report)
	}
	if c.Workbook == "" {
		return fmt.Errorf("workbook path is empty")
	}
	if c.Sheet == "" {
		return fmt.Errorf("sheet name is empty")
	}
	if c.Baseline == "" {
		return fmt.Errorf("baseline path is empty")
	}
	if err := c.Layout.Validate(); err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

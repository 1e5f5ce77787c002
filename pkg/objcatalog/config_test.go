package objcatalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/output"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadConfig(dir, "")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	def := DefaultConfig()
	if cfg.Dir != dir || cfg.Workbook != def.Workbook || cfg.Mode != output.ModeHTML || cfg.Layout != def.Layout {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigJSON5WithLocalOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "catalog.json5"), `{
		// shared settings
		mode: "json",
		workbook: "source/object.xlsx",
		layout: { price: 30 },
	}`)
	writeFile(t, filepath.Join(dir, "catalog.local.json5"), `{ workbook: "D:/local/object.xlsx", }`)

	cfg, err := LoadConfig(dir, "")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Mode != output.ModeJSON {
		t.Errorf("Mode = %s, expected json", cfg.Mode)
	}
	if cfg.Workbook != "D:/local/object.xlsx" {
		t.Errorf("Workbook = %s, expected local override", cfg.Workbook)
	}
	if cfg.Layout.Price != 30 || cfg.Layout.Icon != 14 || cfg.Layout.HeaderRows != 2 {
		t.Errorf("Layout = %+v, expected price override only", cfg.Layout)
	}
	if cfg.Sheet != DefaultSheet {
		t.Errorf("Sheet = %s, expected default", cfg.Sheet)
	}
}

func TestLoadConfigYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	writeFile(t, path, "mode: json\noutput: public/objects.json\nreport: none\nlayout:\n  icon: 15\n")

	cfg, err := LoadConfig(dir, path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Mode != output.ModeJSON || cfg.Output != "public/objects.json" || cfg.Report != "none" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Layout.Icon != 15 || cfg.Layout.Name != 2 {
		t.Errorf("Layout = %+v", cfg.Layout)
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(dir, filepath.Join(dir, "nope.json5")); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "catalog.json5"), "{ mode: ")
	if _, err := LoadConfig(dir, ""); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestResolve(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dir = "/srv/catalog"
	cfg.Images = "/abs/img"

	r := cfg.Resolve()
	if r.Workbook != filepath.Join("/srv/catalog", DefaultWorkbook) {
		t.Errorf("Workbook = %s", r.Workbook)
	}
	if r.Output != filepath.Join("/srv/catalog", DefaultHTMLOutput) {
		t.Errorf("Output = %s", r.Output)
	}
	if r.Images != "/abs/img" {
		t.Errorf("Images = %s, absolute path should be kept", r.Images)
	}

	cfg.Mode = output.ModeJSON
	if got := cfg.Resolve().Output; got != filepath.Join("/srv/catalog", DefaultJSONOutput) {
		t.Errorf("json Output = %s", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"json mode", func(c *Config) { c.Mode = output.ModeJSON }, true},
		{"bad mode", func(c *Config) { c.Mode = "pdf" }, false},
		{"bad report", func(c *Config) { c.Report = "html" }, false},
		{"no workbook", func(c *Config) { c.Workbook = "" }, false},
		{"no sheet", func(c *Config) { c.Sheet = "" }, false},
		{"negative column", func(c *Config) { c.Layout.Icon = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tt.ok)
			}
		})
	}
}

func TestLoadConfigZeroLayoutValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	writeFile(t, path, "layout:\n  header_rows: 0\n  name: 1\n")

	cfg, err := LoadConfig(dir, path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Layout.HeaderRows != 0 {
		t.Errorf("HeaderRows = %d, expected 0 from config", cfg.Layout.HeaderRows)
	}
	if cfg.Layout.Name != 1 || cfg.Layout.Icon != 14 {
		t.Errorf("Layout = %+v, expected name=1 and default icon", cfg.Layout)
	}
}

func TestLoadConfigLocalOverrideToZero(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "catalog.json5"), `{ layout: { id: 3, price: 0 } }`)
	writeFile(t, filepath.Join(dir, "catalog.local.json5"), `{ layout: { id: 0 } }`)

	cfg, err := LoadConfig(dir, "")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Layout.ID != 0 || cfg.Layout.Price != 0 {
		t.Errorf("Layout = %+v, expected id=0 and price=0", cfg.Layout)
	}
	if cfg.Dir != dir {
		t.Errorf("Dir = %s, expected %s", cfg.Dir, dir)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workbook = "from-file.xlsx"

	if err := ApplyOverrides(&cfg, Config{Output: "out.json", Mode: output.ModeJSON}); err != nil {
		t.Fatalf("ApplyOverrides failed: %v", err)
	}
	if cfg.Output != "out.json" || cfg.Mode != output.ModeJSON {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Workbook != "from-file.xlsx" || cfg.Layout != DefaultConfig().Layout {
		t.Errorf("empty override fields must be ignored: %+v", cfg)
	}
}

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/objcatalog-go/pkg/objcatalog"
	"github.com/xuri/excelize/v2"
)

func writeTestWorkbook(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", "Object"); err != nil {
		t.Fatalf("SetSheetName: %v", err)
	}
	cells := map[string]interface{}{
		"A1": "meta", "A2": "ID", "C2": "Name", "O2": "Icon",
		"A3": "OBJ_1", "C3": "Chair", "O3": "icon_chair", "AH3": 150,
	}
	for cell, v := range cells {
		if err := f.SetCellValue("Object", cell, v); err != nil {
			t.Fatalf("SetCellValue: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestRunJSONMode(t *testing.T) {
	dir := t.TempDir()
	writeTestWorkbook(t, filepath.Join(dir, "object.xlsx"))

	out, err := execute(t, "--dir", dir, "--mode", "json")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(out, "No previous data") {
		t.Errorf("expected first-run report, got:\n%s", out)
	}

	data, err := os.ReadFile(filepath.Join(dir, "data", "objects.json"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	expected := `[{"id":"OBJ_1","name":"Chair","desc":"","category":"","filter":"","icon":"icon_chair","price":150,"tags":""}]`
	if string(data) != expected {
		t.Errorf("objects.json = %s, expected %s", data, expected)
	}
	if _, err := os.Stat(filepath.Join(dir, "_prev_data.json")); err != nil {
		t.Errorf("baseline not saved: %v", err)
	}
}

func TestRunHTMLModeMissingTemplate(t *testing.T) {
	dir := t.TempDir()
	writeTestWorkbook(t, filepath.Join(dir, "object.xlsx"))

	_, err := execute(t, "--dir", dir, "--report", "none")
	if !errors.Is(err, objcatalog.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestRunMissingWorkbook(t *testing.T) {
	_, err := execute(t, "--dir", t.TempDir(), "--mode", "json")
	if !errors.Is(err, objcatalog.ErrWorkbookNotFound) {
		t.Fatalf("expected ErrWorkbookNotFound, got %v", err)
	}
}

func TestRunFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	writeTestWorkbook(t, filepath.Join(dir, "source.xlsx"))
	if err := os.WriteFile(filepath.Join(dir, "catalog.json5"), []byte(`{ mode: "json", workbook: "missing.xlsx" }`), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := execute(t, "--dir", dir, "--workbook", "source.xlsx", "--output", "out/catalog.json", "--report", "json"); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out", "catalog.json")); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestRunInvalidReport(t *testing.T) {
	if _, err := execute(t, "--dir", t.TempDir(), "--report", "xml"); err == nil {
		t.Fatal("expected error for invalid report format")
	}
}

func TestRunRejectsArgs(t *testing.T) {
	if _, err := execute(t, "extra"); err == nil {
		t.Fatal("expected error for positional argument")
	}
}

package objcatalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/models"
	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/parser"
	"github.com/xuri/excelize/v2"
)

// Extraction is the outcome of reading the object sheet.
type Extraction struct {
	Items []models.Item
	// Range is the cell range covered by data rows, e.g. "A3:AH120".
	Range string
	// ShortRows counts data rows that end before the last mapped column.
	ShortRows int
}

// Extract reads catalog items from the workbook at path.
func Extract(path, sheet string, layout parser.Layout) (*Extraction, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrWorkbookNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	rows, err := parser.ReadRows(f, sheet)
	if err != nil {
		return nil, err
	}

	return &Extraction{
		Items:     parser.ItemsFromRows(rows, layout),
		Range:     parser.DataRange(rows, layout),
		ShortRows: parser.ShortColumns(rows, layout),
	}, nil
}

package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the workbook has no sheet with the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// ReadRows returns the raw rows of a sheet. Cell values are not passed
// through number formats, so ids and prices keep their stored form.
func ReadRows(f *excelize.File, sheetName string) ([][]string, error) {
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}
	return f.GetRows(sheetName, excelize.Options{RawCellValue: true})
}

// ExtractItems projects the data rows of a sheet into catalog items.
// Rows without an id, a name or an icon are skipped.
func ExtractItems(f *excelize.File, sheetName string, layout Layout) ([]models.Item, error) {
	rows, err := ReadRows(f, sheetName)
	if err != nil {
		return nil, err
	}
	return ItemsFromRows(rows, layout), nil
}

// ItemsFromRows applies the layout to already loaded rows.
func ItemsFromRows(rows [][]string, layout Layout) []models.Item {
	if layout.HeaderRows >= len(rows) {
		return []models.Item{}
	}

	items := make([]models.Item, 0, len(rows)-layout.HeaderRows)
	for _, row := range rows[layout.HeaderRows:] {
		if cellText(row, layout.ID) == "" {
			continue
		}
		item := models.Item{
			ID:       cellText(row, layout.ID),
			Name:     cellText(row, layout.Name),
			Desc:     cellText(row, layout.Desc),
			Category: cellText(row, layout.Category),
			Filter:   cellText(row, layout.Filter),
			Icon:     cellText(row, layout.Icon),
			Price:    parsePrice(cellText(row, layout.Price)),
			Tags:     cellText(row, layout.Tags),
		}
		if item.Complete() {
			items = append(items, item)
		}
	}
	return items
}

package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// DataRange returns the cell range (e.g. "A3:AH120") covering the non-empty
// cells below the header rows, or "" when there is no data.
func DataRange(rows [][]string, layout Layout) string {
	if layout.HeaderRows >= len(rows) {
		return ""
	}
	minRow, maxRow, minCol, maxCol := findDataBounds(rows[layout.HeaderRows:])
	if minRow < 0 {
		return ""
	}

	startCell, err := excelize.CoordinatesToCellName(minCol+1, minRow+layout.HeaderRows+1)
	if err != nil {
		return ""
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol+1, maxRow+layout.HeaderRows+1)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// ShortColumns counts data rows that stop before the last column the layout
// reads. Such rows are not errors; their trailing fields are empty.
func ShortColumns(rows [][]string, layout Layout) int {
	if layout.HeaderRows >= len(rows) {
		return 0
	}
	need := layout.maxColumn() + 1
	count := 0
	for _, row := range rows[layout.HeaderRows:] {
		if len(row) > 0 && len(row) < need {
			count++
		}
	}
	return count
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 {
					minRow = rowIdx
				}
				maxRow = rowIdx
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

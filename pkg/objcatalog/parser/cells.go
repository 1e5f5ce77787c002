package parser

import (
	"math"
	"strconv"
	"strings"
)

// cellText returns the cell at column idx, or "" when the row is shorter.
func cellText(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parsePrice converts a raw cell value to an integer price.
// Decimals truncate toward zero; anything unparsable is 0.
func parsePrice(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return int(i)
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return int(math.Trunc(f))
	}
	return 0
}

// Package parser provides workbook parsing utilities for the object catalog.
package parser

import "fmt"

// Layout describes where item fields live in the object sheet.
// Column indices are zero-based.
type Layout struct {
	// HeaderRows is the number of leading rows (metadata, header) to skip.
	HeaderRows int `json:"header_rows" yaml:"header_rows"`
	ID         int `json:"id" yaml:"id"`
	Name       int `json:"name" yaml:"name"`
	Desc       int `json:"desc" yaml:"desc"`
	Category   int `json:"category" yaml:"category"`
	Filter     int `json:"filter" yaml:"filter"`
	Icon       int `json:"icon" yaml:"icon"`
	Tags       int `json:"tags" yaml:"tags"`
	Price      int `json:"price" yaml:"price"`
}

// DefaultLayout returns the column layout of the Object sheet.
func DefaultLayout() Layout {
	return Layout{
		HeaderRows: 2,
		ID:         0,
		Name:       2,
		Desc:       4,
		Category:   8,
		Filter:     9,
		Icon:       14,
		Tags:       17,
		Price:      33,
	}
}

// maxColumn returns the highest column index the layout reads.
func (l Layout) maxColumn() int {
	m := l.ID
	for _, c := range []int{l.Name, l.Desc, l.Category, l.Filter, l.Icon, l.Tags, l.Price} {
		if c > m {
			m = c
		}
	}
	return m
}

// Validate rejects negative offsets.
func (l Layout) Validate() error {
	if l.HeaderRows < 0 {
		return fmt.Errorf("header_rows must not be negative: %d", l.HeaderRows)
	}
	for name, c := range map[string]int{
		"id": l.ID, "name": l.Name, "desc": l.Desc, "category": l.Category,
		"filter": l.Filter, "icon": l.Icon, "tags": l.Tags, "price": l.Price,
	} {
		if c < 0 {
			return fmt.Errorf("column %s must not be negative: %d", name, c)
		}
	}
	return nil
}

// Package diff computes changes between two catalog snapshots.
package diff

import "github.com/ukaji3/objcatalog-go/pkg/objcatalog/models"

// ReportedFields lists the fields ChangedFields checks, in report order.
var ReportedFields = []string{"name", "filter", "price", "category", "tags", "desc"}

// Change describes an item present in both snapshots with different contents.
type Change struct {
	ID     string      `json:"id"`
	Old    models.Item `json:"old"`
	New    models.Item `json:"new"`
	Fields []string    `json:"fields"`
}

// Result holds the outcome of comparing a new snapshot against a previous one.
type Result struct {
	// PrevCount is the number of items in the previous snapshot.
	PrevCount int `json:"prev_count"`
	// NewCount is the number of items in the new snapshot.
	NewCount int `json:"new_count"`
	// Added lists ids only in the new snapshot, in new-snapshot order.
	Added []string `json:"added"`
	// Removed lists ids only in the previous snapshot, in previous-snapshot order.
	Removed []string `json:"removed"`
	// Modified lists items whose contents differ, in new-snapshot order.
	Modified []Change `json:"modified"`

	prev *Index
	next *Index
}

// Compare diffs newItems against prevItems by id.
// Modification is full equality over every field, not only the reported ones.
func Compare(newItems, prevItems []models.Item) *Result {
	prev := NewIndex(prevItems)
	next := NewIndex(newItems)

	r := &Result{
		PrevCount: len(prevItems),
		NewCount:  len(newItems),
		Added:     []string{},
		Removed:   []string{},
		Modified:  []Change{},
		prev:      prev,
		next:      next,
	}

	for _, id := range next.Keys() {
		cur, _ := next.Get(id)
		old, ok := prev.Get(id)
		if !ok {
			r.Added = append(r.Added, id)
			continue
		}
		if old != cur {
			r.Modified = append(r.Modified, Change{
				ID:     id,
				Old:    old,
				New:    cur,
				Fields: ChangedFields(old, cur),
			})
		}
	}

	for _, id := range prev.Keys() {
		if !next.Has(id) {
			r.Removed = append(r.Removed, id)
		}
	}

	return r
}

// Unchanged reports whether nothing was added, removed or modified.
func (r *Result) Unchanged() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Modified) == 0
}

// NewItem returns the new-snapshot item for id.
func (r *Result) NewItem(id string) (models.Item, bool) {
	if r.next == nil {
		return models.Item{}, false
	}
	return r.next.Get(id)
}

// PrevItem returns the previous-snapshot item for id.
func (r *Result) PrevItem(id string) (models.Item, bool) {
	if r.prev == nil {
		return models.Item{}, false
	}
	return r.prev.Get(id)
}

// ChangedFields returns the names of the reported fields that differ
// between old and cur, in ReportedFields order.
func ChangedFields(old, cur models.Item) []string {
	changes := []string{}
	for _, field := range ReportedFields {
		if fieldValue(old, field) != fieldValue(cur, field) {
			changes = append(changes, field)
		}
	}
	return changes
}

func fieldValue(it models.Item, field string) interface{} {
	switch field {
	case "id":
		return it.ID
	case "name":
		return it.Name
	case "desc":
		return it.Desc
	case "category":
		return it.Category
	case "filter":
		return it.Filter
	case "icon":
		return it.Icon
	case "price":
		return it.Price
	case "tags":
		return it.Tags
	}
	return nil
}

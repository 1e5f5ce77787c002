package diff

import "github.com/ukaji3/objcatalog-go/pkg/objcatalog/models"

// Index maps item ids to items and iterates in first-insertion order.
// Setting an id that already exists replaces the item but keeps its position.
type Index struct {
	keys  []string
	items map[string]models.Item
}

// NewIndex builds an index over items.
func NewIndex(items []models.Item) *Index {
	idx := &Index{
		keys:  make([]string, 0, len(items)),
		items: make(map[string]models.Item, len(items)),
	}
	for _, it := range items {
		idx.Set(it)
	}
	return idx
}

// Set inserts or replaces the item stored under it.ID.
func (idx *Index) Set(it models.Item) {
	if _, ok := idx.items[it.ID]; !ok {
		idx.keys = append(idx.keys, it.ID)
	}
	idx.items[it.ID] = it
}

// Get returns the item for id.
func (idx *Index) Get(id string) (models.Item, bool) {
	it, ok := idx.items[id]
	return it, ok
}

// Has reports whether id is present.
func (idx *Index) Has(id string) bool {
	_, ok := idx.items[id]
	return ok
}

// Keys returns the ids in insertion order.
func (idx *Index) Keys() []string {
	out := make([]string, len(idx.keys))
	copy(out, idx.keys)
	return out
}

// Len returns the number of distinct ids.
func (idx *Index) Len() int {
	return len(idx.keys)
}

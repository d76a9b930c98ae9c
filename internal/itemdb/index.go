// Package itemdb loads rAthena item database YAML files into an in-memory
// index keyed by item id.
package itemdb

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Item is one item database entry. Fields beyond the reference name are
// ignored; the converter only needs ids and AegisNames.
type Item struct {
	ID        int    `yaml:"Id"`
	AegisName string `yaml:"AegisName"`
	Name      string `yaml:"Name"`
}

type itemFile struct {
	Body []Item `yaml:"Body"`
}

// Index is a read-only item id lookup built once per run.
type Index struct {
	items map[int]Item
}

// Load reads all given item database files and merges them into one Index.
// Later paths override earlier ones on duplicate ids, so override sets can be
// layered after base databases.
//
// Precondition: every path must be a readable rAthena item_db YAML.
// Postcondition: returns a non-nil Index, or an error naming the first
// unreadable or unparsable path. Any failure here is fatal to the run: drop
// resolution without the full item index would silently drop valid items.
func Load(paths []string) (*Index, error) {
	idx := &Index{items: make(map[int]Item)}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading item database %s: %w", path, err)
		}

		var f itemFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing item database %s: %w", path, err)
		}

		for _, it := range f.Body {
			if it.ID == 0 {
				continue
			}
			idx.items[it.ID] = it
		}
	}

	return idx, nil
}

// Lookup returns the item for the given id.
func (idx *Index) Lookup(id int) (Item, bool) {
	it, ok := idx.items[id]
	return it, ok
}

// Len returns the number of indexed items.
func (idx *Index) Len() int {
	return len(idx.items)
}

package convert

import (
	"github.com/athena-tools/mobgen/internal/divinepride"
	"github.com/athena-tools/mobgen/internal/itemdb"
)

// minDropRate replaces missing or non-positive vendor drop chances.
const minDropRate = 10

// ResolveDrops maps vendor drop entries onto item references from the index.
// A drop whose item id is missing from the index, or cannot be parsed to a
// positive integer, is omitted with a warning; the remaining drops are
// unaffected. Rates pass through unchanged apart from the non-positive floor.
//
// Precondition: idx must be non-nil.
// Postcondition: every returned entry references an item present in idx.
func ResolveDrops(monsterID int, drops []divinepride.Drop, idx *itemdb.Index) ([]DropEntry, []Warning) {
	var (
		resolved []DropEntry
		warnings []Warning
	)

	for _, d := range drops {
		itemID := d.ItemID.Int()
		if itemID <= 0 {
			warnings = append(warnings, warnf(WarnDropItem, monsterID,
				"drop entry has no usable item id (%d), skipping", itemID))
			continue
		}

		item, ok := idx.Lookup(itemID)
		if !ok {
			warnings = append(warnings, warnf(WarnDropItem, monsterID,
				"item %d not found in item database, skipping drop", itemID))
			continue
		}

		rate := d.Chance.Int()
		if rate <= 0 {
			rate = minDropRate
		}

		resolved = append(resolved, DropEntry{
			Item:           item.AegisName,
			Rate:           rate,
			StealProtected: d.StealProtected,
		})
	}

	return resolved, warnings
}

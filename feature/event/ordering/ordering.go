package ordering

import (
	"github.com/blusalice3/sokubaikai/feature/event/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator compares block/number strings with numeric awareness so that
// "A-2" sorts before "A-10" and kana blocks compare in locale order.
// All reorder calls are serialized by the store, the collator is never
// used concurrently.
var collator = collate.New(language.Japanese, collate.Numeric)

// Compare orders items by (block, number). Items without a block sort last.
func Compare(a, b models.Item) int {
	if a.Block == "" || b.Block == "" {
		switch {
		case a.Block == "" && b.Block == "":
			return 0
		case a.Block == "":
			return 1
		default:
			return -1
		}
	}
	if c := collator.CompareString(a.Block, b.Block); c != 0 {
		return c
	}
	return collator.CompareString(a.Number, b.Number)
}

// InsertSorted inserts it at the first position where it is not strictly
// greater than the following item. Existing items keep their manual order;
// only the new item's slot is searched. The input slice is not modified.
func InsertSorted(items []models.Item, it models.Item) []models.Item {
	pos := len(items)
	for i := range items {
		if Compare(it, items[i]) <= 0 {
			pos = i
			break
		}
	}
	out := make([]models.Item, 0, len(items)+1)
	out = append(out, items[:pos]...)
	out = append(out, it)
	out = append(out, items[pos:]...)
	return out
}

// MoveItem repositions draggedID (or the whole selected block containing it)
// to immediately before targetID. When selected contains draggedID and has
// more than one entry, the selected items move as one block in their original
// relative order. A stale or self-referential target makes the move a no-op.
// The returned bool reports whether anything moved; the input slice is never
// modified.
func MoveItem(items []models.Item, draggedID, targetID string, selected []string) ([]models.Item, bool) {
	selSet := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		selSet[id] = struct{}{}
	}
	_, draggedSelected := selSet[draggedID]

	if draggedSelected && len(selSet) > 1 {
		return moveBlock(items, targetID, selSet)
	}
	return moveSingle(items, draggedID, targetID)
}

func moveBlock(items []models.Item, targetID string, selSet map[string]struct{}) ([]models.Item, bool) {
	block := make([]models.Item, 0, len(selSet))
	rest := make([]models.Item, 0, len(items))
	for _, it := range items {
		if _, ok := selSet[it.ID]; ok {
			block = append(block, it)
		} else {
			rest = append(rest, it)
		}
	}

	// Target gone or part of the selection itself: nothing sane to do.
	pos := indexOf(rest, targetID)
	if pos < 0 {
		return items, false
	}

	out := make([]models.Item, 0, len(items))
	out = append(out, rest[:pos]...)
	out = append(out, block...)
	out = append(out, rest[pos:]...)
	return out, true
}

func moveSingle(items []models.Item, draggedID, targetID string) ([]models.Item, bool) {
	from := indexOf(items, draggedID)
	if from < 0 {
		return items, false
	}
	dragged := items[from]

	rest := make([]models.Item, 0, len(items)-1)
	rest = append(rest, items[:from]...)
	rest = append(rest, items[from+1:]...)

	pos := indexOf(rest, targetID)
	if pos < 0 {
		return items, false
	}

	out := make([]models.Item, 0, len(items))
	out = append(out, rest[:pos]...)
	out = append(out, dragged)
	out = append(out, rest[pos:]...)
	return out, true
}

func indexOf(items []models.Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

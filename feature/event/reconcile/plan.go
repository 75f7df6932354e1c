package reconcile

import (
	"github.com/blusalice3/sokubaikai/feature/event/models"
)

// Build computes the change-set that brings the current collection in line
// with a freshly fetched sheet row set.
//
// Matching is strictly key based and tiered:
//
//  1. A candidate whose full key (circle, date, block, number, title)
//     matches a current item is the same entry; it becomes an update only
//     if price or remarks changed.
//  2. Otherwise, a loose-key match (same tuple, different title) is a title
//     edit upstream: the current item's id and purchase status survive,
//     title/price/remarks are replaced.
//  3. Otherwise the candidate is genuinely new and becomes an add.
//
// Current items whose loose key is absent from the fetched set are deleted.
// Build never mutates its inputs.
func Build(current []models.Item, rows [][]string) *ChangeSet {
	candidates, skipped := ParseRows(rows)

	cs := &ChangeSet{
		ToDelete: []models.Item{},
		ToUpdate: []models.Item{},
		ToAdd:    []models.Item{},
		Summary: Summary{
			FetchedRows: len(rows),
			SkippedRows: skipped,
		},
	}

	byFull := make(map[string]models.Item, len(current))
	byLoose := make(map[string]models.Item, len(current))
	for _, it := range current {
		byFull[it.FullKey()] = it
		byLoose[it.LooseKey()] = it
	}

	fetchedLoose := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		fetchedLoose[c.LooseKey()] = struct{}{}
	}

	// Delete tier: anything local the sheet no longer knows about.
	for _, it := range current {
		if _, ok := fetchedLoose[it.LooseKey()]; !ok {
			cs.ToDelete = append(cs.ToDelete, it)
		}
	}

	for _, c := range candidates {
		if cur, ok := byFull[c.FullKey()]; ok {
			// Identity unchanged; title matched exactly so it is not
			// re-applied.
			if cur.Price == c.Price && cur.Remarks == c.Remarks {
				cs.Summary.Unchanged++
				continue
			}
			cur.Price = c.Price
			cur.Remarks = c.Remarks
			cs.ToUpdate = append(cs.ToUpdate, cur)
			continue
		}
		if cur, ok := byLoose[c.LooseKey()]; ok {
			// Title edited upstream; local identity and status survive.
			cur.Title = c.Title
			cur.Price = c.Price
			cur.Remarks = c.Remarks
			cs.ToUpdate = append(cs.ToUpdate, cur)
			continue
		}
		cs.ToAdd = append(cs.ToAdd, c)
	}

	cs.Summary.Adds = len(cs.ToAdd)
	cs.Summary.Updates = len(cs.ToUpdate)
	cs.Summary.Deletes = len(cs.ToDelete)
	return cs
}

package partition

import (
	"github.com/blusalice3/sokubaikai/feature/event/models"
)

// AddToActive appends ids not already present in the active list.
// Duplicates are ignored and newly appended ids keep the order given.
func AddToActive(active []string, ids []string) []string {
	present := make(map[string]struct{}, len(active))
	for _, id := range active {
		present[id] = struct{}{}
	}
	out := append(make([]string, 0, len(active)+len(ids)), active...)
	for _, id := range ids {
		if _, ok := present[id]; ok {
			continue
		}
		present[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// RemoveFromActive deletes matching ids, preserving the relative order of
// the remainder. Unknown ids are ignored.
func RemoveFromActive(active []string, ids []string) []string {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	out := make([]string, 0, len(active))
	for _, id := range active {
		if _, ok := drop[id]; ok {
			continue
		}
		out = append(out, id)
	}
	return out
}

// ActiveItems projects the active id list against the collection, in active
// list order. Ids of deleted items silently disappear: the partition is not
// the source of truth for existence.
func ActiveItems(active []string, items []models.Item) []models.Item {
	byID := make(map[string]models.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	out := make([]models.Item, 0, len(active))
	for _, id := range active {
		if it, ok := byID[id]; ok {
			out = append(out, it)
		}
	}
	return out
}

// CandidateItems projects the complement of the active list, filtered to the
// given day, in collection order. Candidate membership is always derived,
// never stored, so an id can never sit in both columns at once.
func CandidateItems(active []string, items []models.Item, day models.Day) []models.Item {
	inActive := make(map[string]struct{}, len(active))
	for _, id := range active {
		inActive[id] = struct{}{}
	}
	out := make([]models.Item, 0, len(items))
	for _, it := range items {
		if !day.Matches(it.EventDate) {
			continue
		}
		if _, ok := inActive[it.ID]; ok {
			continue
		}
		out = append(out, it)
	}
	return out
}

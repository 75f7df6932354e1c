package partition_test

import (
	"testing"

	"github.com/blusalice3/sokubaikai/feature/event/models"
	"github.com/blusalice3/sokubaikai/feature/event/partition"

	"github.com/stretchr/testify/assert"
)

func day1Items() []models.Item {
	return []models.Item{
		{ID: "1", EventDate: "1日目", Block: "A", Number: "1"},
		{ID: "2", EventDate: "1日目", Block: "A", Number: "2"},
		{ID: "3", EventDate: "2日目", Block: "B", Number: "1"},
		{ID: "4", EventDate: "1日目", Block: "C", Number: "1"},
	}
}

func TestAddToActive(t *testing.T) {
	active := partition.AddToActive(nil, []string{"2", "1"})
	assert.Equal(t, []string{"2", "1"}, active)

	// Duplicates are ignored, appended order kept.
	active = partition.AddToActive(active, []string{"1", "4", "2"})
	assert.Equal(t, []string{"2", "1", "4"}, active)
}

func TestRemoveFromActive(t *testing.T) {
	active := []string{"2", "1", "4"}

	out := partition.RemoveFromActive(active, []string{"1", "ghost"})
	assert.Equal(t, []string{"2", "4"}, out)

	out = partition.RemoveFromActive(out, []string{"2", "4"})
	assert.Empty(t, out)
}

func TestActiveItems(t *testing.T) {
	items := day1Items()

	// Active list order wins over collection order.
	out := partition.ActiveItems([]string{"4", "1"}, items)
	assert.Equal(t, []string{"4", "1"}, idsOf(out))

	// Ids of deleted items vanish from the projection.
	out = partition.ActiveItems([]string{"4", "deleted", "1"}, items)
	assert.Equal(t, []string{"4", "1"}, idsOf(out))
}

func TestCandidateItems(t *testing.T) {
	items := day1Items()

	// Nothing active: every day-1 item is a candidate, in collection order.
	out := partition.CandidateItems(nil, items, models.Day1)
	assert.Equal(t, []string{"1", "2", "4"}, idsOf(out))

	// Active ids leave the candidate column.
	out = partition.CandidateItems([]string{"2"}, items, models.Day1)
	assert.Equal(t, []string{"1", "4"}, idsOf(out))

	// The other day sees only its own items.
	out = partition.CandidateItems(nil, items, models.Day2)
	assert.Equal(t, []string{"3"}, idsOf(out))
}

func TestColumnsAreExclusiveAndComplete(t *testing.T) {
	items := day1Items()
	active := []string{"4", "2"}

	activeItems := partition.ActiveItems(active, items)
	candidates := partition.CandidateItems(active, items, models.Day1)

	seen := map[string]int{}
	for _, it := range activeItems {
		seen[it.ID]++
	}
	for _, it := range candidates {
		seen[it.ID]++
	}

	// Every day-1 item appears exactly once across both columns.
	assert.Equal(t, map[string]int{"1": 1, "2": 1, "4": 1}, seen)
}

func idsOf(items []models.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

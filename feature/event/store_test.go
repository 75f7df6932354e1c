package event_test

import (
	"testing"

	"github.com/blusalice3/sokubaikai/feature/event"
	"github.com/blusalice3/sokubaikai/feature/event/models"
	"github.com/blusalice3/sokubaikai/feature/event/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedItems() []models.Item {
	return []models.Item{
		{ID: "a", CircleName: "サークルA", EventDate: "1日目", Block: "あ", Number: "01a", Title: "新刊"},
		{ID: "b", CircleName: "サークルB", EventDate: "1日目", Block: "い", Number: "02b", Title: "既刊"},
		{ID: "c", CircleName: "サークルC", EventDate: "2日目", Block: "う", Number: "03c", Title: "グッズ"},
	}
}

func seededStore(t *testing.T) *event.Store {
	t.Helper()
	s := event.NewStore()
	added := s.CreateOrAppend("c106", seedItems())
	require.Equal(t, 3, added)
	return s
}

func TestCreateOrAppend(t *testing.T) {
	s := seededStore(t)

	// Duplicate ids are skipped, items without an id get one.
	added := s.CreateOrAppend("c106", []models.Item{
		{ID: "a", CircleName: "重複", EventDate: "1日目", Block: "あ", Number: "01a"},
		{CircleName: "新規", EventDate: "1日目", Block: "え", Number: "04d"},
	})
	assert.Equal(t, 1, added)

	items, ok := s.Items("c106")
	require.True(t, ok)
	require.Len(t, items, 4)
	assert.Equal(t, "サークルA", items[0].CircleName) // the duplicate did not overwrite
	assert.NotEmpty(t, items[3].ID)

	// A new event starts with both days in edit mode.
	s.CreateOrAppend("c107", nil)
	mode, ok := s.Mode("c107", models.Day1)
	require.True(t, ok)
	assert.Equal(t, models.ModeEdit, mode)
}

func TestUpdateItem(t *testing.T) {
	s := seededStore(t)

	updated := seedItems()[0]
	updated.Price = 1200
	updated.Status = models.StatusPurchased
	assert.True(t, s.UpdateItem("c106", updated))

	items, _ := s.Items("c106")
	assert.Equal(t, 1200, items[0].Price)

	// Stale id and unknown event report false.
	assert.False(t, s.UpdateItem("c106", models.Item{ID: "ghost"}))
	assert.False(t, s.UpdateItem("nope", updated))
}

func TestDeleteItemPrunesPartitions(t *testing.T) {
	s := seededStore(t)
	require.True(t, s.AddToActive("c106", models.Day1, []string{"a", "b"}))

	assert.True(t, s.DeleteItem("c106", "a"))
	assert.False(t, s.DeleteItem("c106", "a")) // already gone

	active, _, ok := s.Columns("c106", models.Day1)
	require.True(t, ok)
	assert.Equal(t, []string{"b"}, itemIDs(active))

	items, _ := s.Items("c106")
	assert.Len(t, items, 2)
}

func TestMove(t *testing.T) {
	s := seededStore(t)

	assert.True(t, s.Move("c106", "c", "a", nil))
	items, _ := s.Items("c106")
	assert.Equal(t, []string{"c", "a", "b"}, itemIDs(items))

	// Stale references leave the order untouched.
	assert.False(t, s.Move("c106", "ghost", "a", nil))
	items, _ = s.Items("c106")
	assert.Equal(t, []string{"c", "a", "b"}, itemIDs(items))
}

func TestAddToActiveDropsUnknownIds(t *testing.T) {
	s := seededStore(t)

	require.True(t, s.AddToActive("c106", models.Day1, []string{"b", "ghost", "a"}))
	active, candidate, ok := s.Columns("c106", models.Day1)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, itemIDs(active))
	assert.Empty(t, itemIDs(candidate)) // both day-1 items are active now

	require.True(t, s.RemoveFromActive("c106", models.Day1, []string{"b"}))
	active, candidate, _ = s.Columns("c106", models.Day1)
	assert.Equal(t, []string{"a"}, itemIDs(active))
	assert.Equal(t, []string{"b"}, itemIDs(candidate))
}

func TestToggleModePerDay(t *testing.T) {
	s := seededStore(t)

	mode, ok := s.ToggleMode("c106", models.Day1)
	require.True(t, ok)
	assert.Equal(t, models.ModeExecute, mode)

	// The other day keeps its own flag.
	mode, ok = s.Mode("c106", models.Day2)
	require.True(t, ok)
	assert.Equal(t, models.ModeEdit, mode)

	_, ok = s.ToggleMode("nope", models.Day1)
	assert.False(t, ok)
}

func TestConfirmChangeSet(t *testing.T) {
	s := seededStore(t)
	require.True(t, s.AddToActive("c106", models.Day1, []string{"a"}))

	cs := &reconcile.ChangeSet{
		ToDelete: []models.Item{{ID: "a"}},
		ToUpdate: []models.Item{{ID: "b", CircleName: "サークルB", EventDate: "1日目", Block: "い", Number: "02b", Title: "既刊", Price: 700}},
		ToAdd: []models.Item{
			{CircleName: "サークルD", EventDate: "1日目", Block: "あ", Number: "05e", Title: "セット", Status: "should-be-cleared"},
		},
	}
	require.True(t, s.ConfirmChangeSet("c106", cs))

	items, _ := s.Items("c106")
	require.Len(t, items, 3)

	byID := map[string]models.Item{}
	for _, it := range items {
		byID[it.ID] = it
	}
	_, deleted := byID["a"]
	assert.False(t, deleted)
	assert.Equal(t, 700, byID["b"].Price)

	// The add got a fresh id and a clean status, and landed in sorted
	// position among the survivors.
	var add models.Item
	for _, it := range items {
		if it.CircleName == "サークルD" {
			add = it
		}
	}
	require.NotEmpty(t, add.ID)
	assert.Equal(t, models.StatusNone, add.Status)
	assert.Equal(t, add.ID, items[0].ID) // block あ sorts before い and う

	// Deleted id left the partition.
	active, _, _ := s.Columns("c106", models.Day1)
	assert.Empty(t, itemIDs(active))

	// Import timestamp was stamped.
	meta, _ := s.Metadata("c106")
	assert.False(t, meta.LastImportAt.IsZero())
}

func TestConfirmChangeSetUnknownEvent(t *testing.T) {
	s := seededStore(t)
	assert.False(t, s.ConfirmChangeSet("nope", &reconcile.ChangeSet{}))
	assert.False(t, s.ConfirmChangeSet("c106", nil))
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	s := seededStore(t)
	require.True(t, s.AddToActive("c106", models.Day2, []string{"c"}))
	_, ok := s.ToggleMode("c106", models.Day2)
	require.True(t, ok)
	s.SetMetadata("c106", models.EventMetadata{SourceURL: "https://example.com", SheetName: "s1"})

	restored := event.NewStore()
	restored.Restore(s.Snapshot())

	items, ok := restored.Items("c106")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, itemIDs(items))

	active, _, _ := restored.Columns("c106", models.Day2)
	assert.Equal(t, []string{"c"}, itemIDs(active))

	mode, _ := restored.Mode("c106", models.Day2)
	assert.Equal(t, models.ModeExecute, mode)

	meta, _ := restored.Metadata("c106")
	assert.Equal(t, "https://example.com", meta.SourceURL)

	// Restoring nil empties the store.
	restored.Restore(nil)
	assert.Empty(t, restored.Events())
}

func TestDeleteEvent(t *testing.T) {
	s := seededStore(t)
	assert.True(t, s.DeleteEvent("c106"))
	assert.False(t, s.DeleteEvent("c106"))
	_, ok := s.Items("c106")
	assert.False(t, ok)
}

func itemIDs(items []models.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

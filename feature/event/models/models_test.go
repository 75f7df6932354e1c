package models_test

import (
	"testing"

	"github.com/blusalice3/sokubaikai/feature/event/models"

	"github.com/stretchr/testify/assert"
)

func validItem() models.Item {
	return models.Item{
		ID:         "id-1",
		CircleName: "サークルA",
		EventDate:  "1日目",
		Block:      "あ",
		Number:     "01a",
		Title:      "新刊セット",
		Price:      1500,
	}
}

func TestItemValidate(t *testing.T) {
	assert.Empty(t, validItem().Validate())

	cases := []struct {
		name   string
		mutate func(*models.Item)
		reason string
	}{
		{"missing circle name", func(i *models.Item) { i.CircleName = "  " }, "missing circle name"},
		{"missing event date", func(i *models.Item) { i.EventDate = "" }, "missing event date"},
		{"missing block", func(i *models.Item) { i.Block = "" }, "missing block"},
		{"missing number", func(i *models.Item) { i.Number = "" }, "missing number"},
		{"negative price", func(i *models.Item) { i.Price = -100 }, "negative price"},
		{"unknown status", func(i *models.Item) { i.Status = "bought" }, "unknown purchase status"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it := validItem()
			tc.mutate(&it)
			assert.Equal(t, tc.reason, it.Validate())
		})
	}

	// Empty title and zero price are legal: free goods and untitled entries exist.
	it := validItem()
	it.Title = ""
	it.Price = 0
	assert.Empty(t, it.Validate())
}

func TestDayMatches(t *testing.T) {
	cases := []struct {
		label string
		day1  bool
		day2  bool
	}{
		{"1日目", true, false},
		{"2日目", false, true},
		{"１日目", true, false}, // full-width digit
		{"２日目", false, true},
		{"day 1", true, false},
		{"Day2", false, true},
		{"土曜(1日目)", true, false},
		{"3日目", false, false}, // outside the two-day window
		{"未定", true, false},   // no digit falls to day 1
		{"", true, false},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			assert.Equal(t, tc.day1, models.Day1.Matches(tc.label))
			assert.Equal(t, tc.day2, models.Day2.Matches(tc.label))
		})
	}
}

func TestParseDay(t *testing.T) {
	d, ok := models.ParseDay("day1")
	assert.True(t, ok)
	assert.Equal(t, models.Day1, d)

	d, ok = models.ParseDay(" DAY2 ")
	assert.True(t, ok)
	assert.Equal(t, models.Day2, d)

	_, ok = models.ParseDay("day3")
	assert.False(t, ok)
}

func TestModeToggle(t *testing.T) {
	assert.Equal(t, models.ModeExecute, models.ModeEdit.Toggle())
	assert.Equal(t, models.ModeEdit, models.ModeExecute.Toggle())
	// Unknown values land on execute and then stay on the cycle.
	assert.Equal(t, models.ModeExecute, models.Mode("").Toggle())
}

func TestPurchaseStatus(t *testing.T) {
	assert.True(t, models.StatusNone.IsValid())
	assert.True(t, models.StatusPurchased.IsValid())
	assert.False(t, models.PurchaseStatus("done").IsValid())

	assert.Equal(t, "Sold out", models.StatusSoldOut.Label())
	assert.Equal(t, "", models.StatusNone.Label())
}

func TestItemKeys(t *testing.T) {
	a := validItem()
	b := a
	b.Title = "別の新刊"

	// A title edit changes the full key but not the loose key.
	assert.NotEqual(t, a.FullKey(), b.FullKey())
	assert.Equal(t, a.LooseKey(), b.LooseKey())

	// Keys survive values that contain the usual delimiters.
	c := a
	c.CircleName = "A,B\tC"
	d := a
	d.CircleName = "A"
	d.EventDate = ",B\tC" + a.EventDate
	assert.NotEqual(t, c.FullKey(), d.FullKey())

	e := a
	e.Block = "B"
	assert.NotEqual(t, a.LooseKey(), e.LooseKey())
}

func TestNewEventState(t *testing.T) {
	st := models.NewEventState()
	assert.Empty(t, st.Items)
	for _, day := range models.Days() {
		assert.Equal(t, models.ModeEdit, st.Modes[day])
		assert.Empty(t, st.Partitions[day])
	}
}

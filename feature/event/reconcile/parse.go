package reconcile

import (
	"strings"

	"github.com/blusalice3/sokubaikai/core/utils"
	"github.com/blusalice3/sokubaikai/feature/event/models"
)

// Column positions in the shared sheet layout. The sheet carries many
// columns the planner does not consume; only these are read.
const (
	colCircle  = 12
	colDate    = 13
	colBlock   = 14
	colNumber  = 15
	colTitle   = 16
	colPrice   = 17
	colRemarks = 22
)

// ParseRow converts one raw sheet row into a candidate item without an id
// or purchase status. It returns false when any of the four mandatory
// fields (circle, event date, block, number) is missing, in which case the
// row is skipped entirely.
func ParseRow(row []string) (models.Item, bool) {
	it := models.Item{
		CircleName: cell(row, colCircle),
		EventDate:  cell(row, colDate),
		Block:      cell(row, colBlock),
		Number:     cell(row, colNumber),
		Title:      cell(row, colTitle),
		Price:      utils.ParsePrice(cell(row, colPrice)),
		Remarks:    cell(row, colRemarks),
	}
	if it.CircleName == "" || it.EventDate == "" || it.Block == "" || it.Number == "" {
		return models.Item{}, false
	}
	return it, true
}

// ParseRows converts a fetched row set into candidates, returning the
// candidates and the number of skipped rows.
func ParseRows(rows [][]string) ([]models.Item, int) {
	candidates := make([]models.Item, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		it, ok := ParseRow(row)
		if !ok {
			skipped++
			continue
		}
		candidates = append(candidates, it)
	}
	return candidates, skipped
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

package event

import (
	"strings"

	"github.com/blusalice3/sokubaikai/core/utils"
	"github.com/blusalice3/sokubaikai/feature/event/models"
)

// Paste column order: circle, event date, block, number, title, price.
const (
	pasteCircle = iota
	pasteDate
	pasteBlock
	pasteNumber
	pasteTitle
	pastePrice
)

// ParsePaste converts tab-delimited bulk paste text (one item per line,
// fixed column order) into items without ids. Rows missing block or number
// are skipped; the skipped count is returned alongside.
func ParsePaste(text string) ([]models.Item, int) {
	var items []models.Item
	skipped := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		it := models.Item{
			CircleName: pasteField(fields, pasteCircle),
			EventDate:  pasteField(fields, pasteDate),
			Block:      pasteField(fields, pasteBlock),
			Number:     pasteField(fields, pasteNumber),
			Title:      pasteField(fields, pasteTitle),
			Price:      utils.ParsePrice(pasteField(fields, pastePrice)),
		}
		if it.Block == "" || it.Number == "" {
			skipped++
			continue
		}
		items = append(items, it)
	}
	return items, skipped
}

func pasteField(fields []string, idx int) string {
	if idx >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[idx])
}

package event

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/blusalice3/sokubaikai/feature/event/models"
)

// utf8BOM keeps spreadsheet applications from misreading the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var exportHeader = []string{
	"circle", "eventDate", "block", "number", "title", "price", "status", "remarks",
}

// WriteCSV emits the collection as a BOM-prefixed CSV table, one row per
// item in current route order. Quoting follows the same rule the import
// parser accepts.
func WriteCSV(w io.Writer, items []models.Item) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, it := range items {
		row := []string{
			it.CircleName,
			it.EventDate,
			it.Block,
			it.Number,
			it.Title,
			strconv.Itoa(it.Price),
			it.Status.Label(),
			it.Remarks,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVBytes renders WriteCSV into a byte slice for HTTP responses.
func CSVBytes(items []models.Item) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, items); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package models

// Key separator. Field values come from spreadsheet cells and may contain
// almost anything printable, so a control character keeps keys collision free.
const keySep = "\x1f"

// FullKey is the identity tuple including the title. Two items with equal
// full keys are the same logical entry in the external source.
func (i Item) FullKey() string {
	return i.CircleName + keySep + i.EventDate + keySep + i.Block + keySep + i.Number + keySep + i.Title
}

// LooseKey is the identity tuple without the title. Equal loose keys with
// differing titles indicate a title edit upstream.
func (i Item) LooseKey() string {
	return i.CircleName + keySep + i.EventDate + keySep + i.Block + keySep + i.Number
}

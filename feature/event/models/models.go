package models

import (
	"strings"
	"time"
)

// PurchaseStatus is the outcome recorded against an item during the event.
type PurchaseStatus string

const (
	StatusNone      PurchaseStatus = ""
	StatusPurchased PurchaseStatus = "purchased"
	StatusSoldOut   PurchaseStatus = "soldout"
	StatusAbsent    PurchaseStatus = "absent"
	StatusPostpone  PurchaseStatus = "postpone"
	StatusLate      PurchaseStatus = "late"
)

// IsValid checks if the status is one of the known values.
func (s PurchaseStatus) IsValid() bool {
	switch s {
	case StatusNone, StatusPurchased, StatusSoldOut, StatusAbsent, StatusPostpone, StatusLate:
		return true
	default:
		return false
	}
}

// Label returns the human readable label used in CSV exports.
func (s PurchaseStatus) Label() string {
	switch s {
	case StatusPurchased:
		return "Purchased"
	case StatusSoldOut:
		return "Sold out"
	case StatusAbsent:
		return "Absent"
	case StatusPostpone:
		return "Postpone"
	case StatusLate:
		return "Late"
	default:
		return ""
	}
}

// Day identifies one of the two event days. Partitions and mode flags are
// tracked independently per day.
type Day string

const (
	Day1 Day = "day1"
	Day2 Day = "day2"
)

// Days returns all days in display order.
func Days() []Day {
	return []Day{Day1, Day2}
}

// ParseDay parses a day identifier from a route parameter or payload.
func ParseDay(s string) (Day, bool) {
	switch Day(strings.ToLower(strings.TrimSpace(s))) {
	case Day1:
		return Day1, true
	case Day2:
		return Day2, true
	default:
		return "", false
	}
}

// Matches reports whether a free-text event date label ("1日目", "day 2",
// "２日目") belongs to this day. The first digit found in the label decides;
// labels without a digit fall to day 1 so the item stays visible somewhere.
func (d Day) Matches(eventDate string) bool {
	for _, r := range eventDate {
		switch r {
		case '1', '１':
			return d == Day1
		case '2', '２':
			return d == Day2
		case '3', '4', '5', '6', '7', '8', '9', '３', '４', '５', '６', '７', '８', '９':
			return false
		}
	}
	return d == Day1
}

// Mode controls what a day's board allows: edit shows both columns with
// editable membership, execute shows only the active column.
type Mode string

const (
	ModeEdit    Mode = "edit"
	ModeExecute Mode = "execute"
)

// Toggle flips between edit and execute.
func (m Mode) Toggle() Mode {
	if m == ModeExecute {
		return ModeEdit
	}
	return ModeExecute
}

// Column identifies one side of a day's two-column board.
type Column string

const (
	ColumnActive    Column = "active"
	ColumnCandidate Column = "candidate"
)

// Item represents one purchasable unit at one circle.
type Item struct {
	// ID is an opaque unique identifier, generated on creation, immutable.
	ID string `json:"id"`
	// CircleName is the vendor/exhibitor name.
	CircleName string `json:"circle_name"`
	// EventDate is the free-text day label (e.g. "1日目").
	EventDate string `json:"event_date"`
	// Block and Number are the circle's spatial coordinates.
	Block  string `json:"block"`
	Number string `json:"number"`
	// Title is the item title.
	Title string `json:"title"`
	// Price is the unit price in yen. Never negative.
	Price int `json:"price"`
	// Status is the purchase outcome, locally owned and never overwritten
	// by reconciliation.
	Status PurchaseStatus `json:"purchase_status"`
	// Remarks is free-form memo text.
	Remarks string `json:"remarks"`
}

// Validate checks that the item carries the minimum required fields.
// It returns an empty string when valid, or a reason otherwise.
func (i Item) Validate() string {
	if strings.TrimSpace(i.CircleName) == "" {
		return "missing circle name"
	}
	if strings.TrimSpace(i.EventDate) == "" {
		return "missing event date"
	}
	if strings.TrimSpace(i.Block) == "" {
		return "missing block"
	}
	if strings.TrimSpace(i.Number) == "" {
		return "missing number"
	}
	if i.Price < 0 {
		return "negative price"
	}
	if !i.Status.IsValid() {
		return "unknown purchase status"
	}
	return ""
}

// EventMetadata remembers how a collection was last imported so
// reconciliation can be re-run against the same sheet.
type EventMetadata struct {
	SourceURL    string    `json:"source_url"`
	SheetName    string    `json:"sheet_name"`
	LastImportAt time.Time `json:"last_import_at"`
}

// EventState bundles everything the store owns for one event: the ordered
// collection, the per-day active partitions, the per-day mode flags, and
// the import metadata.
type EventState struct {
	Items      []Item
	Partitions map[Day][]string
	Modes      map[Day]Mode
	Meta       EventMetadata
}

// NewEventState creates an empty state with both days in edit mode.
func NewEventState() *EventState {
	return &EventState{
		Partitions: map[Day][]string{Day1: {}, Day2: {}},
		Modes:      map[Day]Mode{Day1: ModeEdit, Day2: ModeEdit},
	}
}

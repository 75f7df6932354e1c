package reconcile

import (
	"github.com/blusalice3/sokubaikai/feature/event/models"
)

// ChangeSet is the pending edit set produced by a reconciliation run.
// Nothing is mutated until the caller explicitly confirms it against the
// store; a dismissed change-set is simply discarded.
type ChangeSet struct {
	// ToDelete holds current items whose loose key no longer appears in the
	// fetched sheet. Confirm removes them by id.
	ToDelete []models.Item `json:"to_delete"`

	// ToUpdate holds current items with refreshed sheet fields. The local
	// id and purchase status are already carried over.
	ToUpdate []models.Item `json:"to_update"`

	// ToAdd holds genuinely new items. They carry no id; ids are assigned
	// when the change-set is confirmed.
	ToAdd []models.Item `json:"to_add"`

	// Summary provides aggregate counts for reporting.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate statistics for a change-set.
type Summary struct {
	// FetchedRows is the number of raw rows received from the source.
	FetchedRows int `json:"fetched_rows"`
	// SkippedRows counts rows dropped for missing mandatory fields.
	SkippedRows int `json:"skipped_rows"`
	// Unchanged counts fetched entries that matched an item exactly.
	Unchanged int `json:"unchanged"`
	// Adds, Updates and Deletes mirror the change-set lengths.
	Adds    int `json:"adds"`
	Updates int `json:"updates"`
	Deletes int `json:"deletes"`
}

// Empty reports whether confirming the change-set would be a no-op.
func (c *ChangeSet) Empty() bool {
	return len(c.ToDelete) == 0 && len(c.ToUpdate) == 0 && len(c.ToAdd) == 0
}

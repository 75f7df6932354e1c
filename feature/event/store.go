package event

import (
	"sync"
	"time"

	"github.com/blusalice3/sokubaikai/feature/event/models"
	"github.com/blusalice3/sokubaikai/feature/event/ordering"
	"github.com/blusalice3/sokubaikai/feature/event/partition"
	"github.com/blusalice3/sokubaikai/feature/event/reconcile"

	"github.com/google/uuid"
)

// Store owns all event state: ordered item collections, per-day active
// partitions, per-day mode flags and import metadata, keyed by event name.
// Nothing it owns is shared by reference with callers; every accessor
// returns copies.
//
// Mutations are serialized by a single mutex, which is the whole
// concurrency story: a reconciliation confirm arriving after other
// mutations re-derives everything from current state under the lock
// instead of trusting a snapshot captured before the fetch.
//
// Store never persists itself. Persistence is the service layer's job,
// performed after each successful mutation.
type Store struct {
	mu     sync.Mutex
	events map[string]*models.EventState
}

// State is the persisted snapshot form: four maps keyed by event name.
// They are always written and loaded together; a partial write would
// desynchronize partitions from collections.
type State struct {
	Collections map[string][]models.Item              `json:"collections"`
	Metadata    map[string]models.EventMetadata       `json:"metadata"`
	Partitions  map[string]map[models.Day][]string    `json:"partitions"`
	Modes       map[string]map[models.Day]models.Mode `json:"modes"`
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{events: make(map[string]*models.EventState)}
}

// CreateOrAppend creates the event if absent (empty partitions, both days in
// edit mode) and appends the given items to its collection. Items without an
// id receive one; items whose id already exists in the collection are
// skipped so ids stay unique. Returns the number of items added.
func (s *Store) CreateOrAppend(event string, items []models.Item) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.events[event]
	if !ok {
		st = models.NewEventState()
		s.events[event] = st
	}

	seen := make(map[string]struct{}, len(st.Items))
	for _, it := range st.Items {
		seen[it.ID] = struct{}{}
	}

	added := 0
	for _, it := range items {
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		if _, dup := seen[it.ID]; dup {
			continue
		}
		seen[it.ID] = struct{}{}
		st.Items = append(st.Items, it)
		added++
	}
	return added
}

// UpdateItem replaces the item with the same id. It reports false when the
// event or the id is unknown; a stale id is a silent no-op for the caller.
func (s *Store) UpdateItem(event string, item models.Item) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.events[event]
	if !ok {
		return false
	}
	for i := range st.Items {
		if st.Items[i].ID == item.ID {
			st.Items[i] = item
			return true
		}
	}
	return false
}

// DeleteItem removes the item from the collection and prunes its id from
// both days' partitions. Unknown ids report false.
func (s *Store) DeleteItem(event, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.events[event]
	if !ok {
		return false
	}
	idx := -1
	for i := range st.Items {
		if st.Items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	st.Items = append(st.Items[:idx], st.Items[idx+1:]...)
	prunePartitions(st, []string{id})
	return true
}

// Move repositions the dragged item (or the selected block containing it)
// to immediately before the target. Stale references make it a no-op.
func (s *Store) Move(event, draggedID, targetID string, selected []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.events[event]
	if !ok {
		return false
	}
	items, moved := ordering.MoveItem(st.Items, draggedID, targetID, selected)
	if moved {
		st.Items = items
	}
	return moved
}

// AddToActive appends ids to a day's active list. Ids not present in the
// collection are dropped so the partition can never reference a deleted
// item.
func (s *Store) AddToActive(event string, day models.Day, ids []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.events[event]
	if !ok {
		return false
	}
	existing := make(map[string]struct{}, len(st.Items))
	for _, it := range st.Items {
		existing[it.ID] = struct{}{}
	}
	known := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := existing[id]; ok {
			known = append(known, id)
		}
	}
	st.Partitions[day] = partition.AddToActive(st.Partitions[day], known)
	return true
}

// RemoveFromActive deletes ids from a day's active list.
func (s *Store) RemoveFromActive(event string, day models.Day, ids []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.events[event]
	if !ok {
		return false
	}
	st.Partitions[day] = partition.RemoveFromActive(st.Partitions[day], ids)
	return true
}

// Columns projects a day's active and candidate item lists.
func (s *Store) Columns(event string, day models.Day) (active, candidate []models.Item, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, found := s.events[event]
	if !found {
		return nil, nil, false
	}
	active = partition.ActiveItems(st.Partitions[day], st.Items)
	candidate = partition.CandidateItems(st.Partitions[day], st.Items, day)
	return active, candidate, true
}

// Mode returns the current mode flag for a day.
func (s *Store) Mode(event string, day models.Day) (models.Mode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.events[event]
	if !ok {
		return "", false
	}
	return st.Modes[day], true
}

// ToggleMode flips a day's mode between edit and execute, independently of
// the other day. Returns the new mode.
func (s *Store) ToggleMode(event string, day models.Day) (models.Mode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.events[event]
	if !ok {
		return "", false
	}
	st.Modes[day] = st.Modes[day].Toggle()
	return st.Modes[day], true
}

// ConfirmChangeSet applies a pending change-set as one atomic transition:
// deletes, then updates by id, then sorted inserts for the adds (which
// receive fresh ids here, so a dismissed change-set never burns
// identifiers). If the event no longer exists the whole confirm is a no-op.
// Deleted ids are pruned from both days' partitions.
func (s *Store) ConfirmChangeSet(event string, cs *reconcile.ChangeSet) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.events[event]
	if !ok || cs == nil {
		return false
	}

	// Work on a copy so a surprise never leaves half a confirm applied.
	items := make([]models.Item, len(st.Items))
	copy(items, st.Items)

	deleted := make(map[string]struct{}, len(cs.ToDelete))
	for _, it := range cs.ToDelete {
		deleted[it.ID] = struct{}{}
	}
	if len(deleted) > 0 {
		kept := items[:0]
		for _, it := range items {
			if _, drop := deleted[it.ID]; !drop {
				kept = append(kept, it)
			}
		}
		items = kept
	}

	for _, upd := range cs.ToUpdate {
		for i := range items {
			if items[i].ID == upd.ID {
				items[i] = upd
				break
			}
		}
	}

	for _, add := range cs.ToAdd {
		add.ID = uuid.NewString()
		add.Status = models.StatusNone
		items = ordering.InsertSorted(items, add)
	}

	st.Items = items
	if len(deleted) > 0 {
		ids := make([]string, 0, len(deleted))
		for id := range deleted {
			ids = append(ids, id)
		}
		prunePartitions(st, ids)
	}
	st.Meta.LastImportAt = time.Now()
	return true
}

// Items returns a copy of the event's collection in route order.
func (s *Store) Items(event string) ([]models.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.events[event]
	if !ok {
		return nil, false
	}
	out := make([]models.Item, len(st.Items))
	copy(out, st.Items)
	return out, true
}

// Events returns the known event names.
func (s *Store) Events() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.events))
	for name := range s.events {
		names = append(names, name)
	}
	return names
}

// DeleteEvent removes the event and everything it owns from the state
// space.
func (s *Store) DeleteEvent(event string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[event]; !ok {
		return false
	}
	delete(s.events, event)
	return true
}

// Metadata returns the event's import metadata.
func (s *Store) Metadata(event string) (models.EventMetadata, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.events[event]
	if !ok {
		return models.EventMetadata{}, false
	}
	return st.Meta, true
}

// SetMetadata records the source locator and sheet name for later
// reconciliation runs.
func (s *Store) SetMetadata(event string, meta models.EventMetadata) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.events[event]
	if !ok {
		return false
	}
	st.Meta = meta
	return true
}

// Snapshot exports the persisted form of the whole store.
func (s *Store) Snapshot() *State {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := &State{
		Collections: make(map[string][]models.Item, len(s.events)),
		Metadata:    make(map[string]models.EventMetadata, len(s.events)),
		Partitions:  make(map[string]map[models.Day][]string, len(s.events)),
		Modes:       make(map[string]map[models.Day]models.Mode, len(s.events)),
	}
	for name, st := range s.events {
		items := make([]models.Item, len(st.Items))
		copy(items, st.Items)
		out.Collections[name] = items
		out.Metadata[name] = st.Meta

		parts := make(map[models.Day][]string, len(st.Partitions))
		for day, ids := range st.Partitions {
			cp := make([]string, len(ids))
			copy(cp, ids)
			parts[day] = cp
		}
		out.Partitions[name] = parts

		modes := make(map[models.Day]models.Mode, len(st.Modes))
		for day, mode := range st.Modes {
			modes[day] = mode
		}
		out.Modes[name] = modes
	}
	return out
}

// Restore replaces the store's contents with a previously persisted state.
// Events mentioned in any of the four maps are rebuilt; missing pieces get
// their zero defaults so a snapshot from an older version still loads.
func (s *Store) Restore(state *State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = make(map[string]*models.EventState)
	if state == nil {
		return
	}

	names := make(map[string]struct{})
	for name := range state.Collections {
		names[name] = struct{}{}
	}
	for name := range state.Metadata {
		names[name] = struct{}{}
	}
	for name := range state.Partitions {
		names[name] = struct{}{}
	}
	for name := range state.Modes {
		names[name] = struct{}{}
	}

	for name := range names {
		st := models.NewEventState()
		st.Items = append(st.Items, state.Collections[name]...)
		st.Meta = state.Metadata[name]
		for day, ids := range state.Partitions[name] {
			st.Partitions[day] = append([]string{}, ids...)
		}
		for day, mode := range state.Modes[name] {
			st.Modes[day] = mode
		}
		s.events[name] = st
	}
}

func prunePartitions(st *models.EventState, ids []string) {
	for _, day := range models.Days() {
		st.Partitions[day] = partition.RemoveFromActive(st.Partitions[day], ids)
	}
}

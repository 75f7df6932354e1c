package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blusalice3/sokubaikai/core/snapshot"
	"github.com/blusalice3/sokubaikai/feature/event/models"
	"github.com/blusalice3/sokubaikai/feature/event/reconcile"
	"github.com/blusalice3/sokubaikai/feature/event/source"

	"go.uber.org/zap"
)

// ErrEventNotFound reports an operation on an event name that is not in the
// store. Stale item ids, by contrast, are silent no-ops: they legitimately
// arise from UI actions completing out of order.
var ErrEventNotFound = errors.New("event not found")

// ValidationError reports a manual add/edit with missing required fields.
// The operation is not applied and no state changes.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// Service orchestrates the event store, the snapshot persistence and the
// sheet row source.
//
// Every mutating method follows the same outer loop: mutate the store, then
// persist the whole state as one snapshot. The store itself never persists;
// keeping the write out here means core mutations stay pure and the
// snapshot is always written as a consistent whole.
type Service struct {
	store  *Store
	snap   snapshot.Store
	src    source.RowSource
	logger *zap.Logger
	name   string
}

// NewService creates a new event service. name is the snapshot blob name.
func NewService(store *Store, snap snapshot.Store, src source.RowSource, logger *zap.Logger, name string) *Service {
	return &Service{store: store, snap: snap, src: src, logger: logger, name: name}
}

// Load restores the store from the persisted snapshot. A missing snapshot
// means a fresh start, not an error.
func (s *Service) Load(ctx context.Context) error {
	data, err := s.snap.Load(ctx, s.name)
	if err != nil {
		if errors.Is(err, snapshot.ErrNotFound) {
			s.logger.Info("No snapshot found, starting fresh", zap.String("snapshot", s.name))
			return nil
		}
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to decode snapshot: %w", err)
	}
	s.store.Restore(&state)
	s.logger.Info("Snapshot restored",
		zap.String("snapshot", s.name),
		zap.Int("events", len(s.store.Events())))
	return nil
}

func (s *Service) persist(ctx context.Context) error {
	data, err := json.Marshal(s.store.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := s.snap.Save(ctx, s.name, data); err != nil {
		s.logger.Error("Snapshot write failed", zap.Error(err))
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return nil
}

// Events lists the known event names.
func (s *Service) Events() []string {
	return s.store.Events()
}

// Items returns the event's collection in route order.
func (s *Service) Items(event string) ([]models.Item, error) {
	items, ok := s.store.Items(event)
	if !ok {
		return nil, ErrEventNotFound
	}
	return items, nil
}

// Metadata returns the event's import metadata.
func (s *Service) Metadata(event string) (models.EventMetadata, error) {
	meta, ok := s.store.Metadata(event)
	if !ok {
		return models.EventMetadata{}, ErrEventNotFound
	}
	return meta, nil
}

// ImportPaste parses tab-delimited paste text and appends the parsed items,
// creating the event if needed. Returns items added and rows skipped.
func (s *Service) ImportPaste(ctx context.Context, event, text string) (added, skipped int, err error) {
	items, skipped := ParsePaste(text)
	added = s.store.CreateOrAppend(event, items)
	if err := s.persist(ctx); err != nil {
		return added, skipped, err
	}
	return added, skipped, nil
}

// AddItems validates and appends manually entered items, creating the event
// if needed.
func (s *Service) AddItems(ctx context.Context, event string, items []models.Item) (int, error) {
	for _, it := range items {
		if reason := it.Validate(); reason != "" {
			return 0, &ValidationError{Reason: reason}
		}
	}
	added := s.store.CreateOrAppend(event, items)
	if err := s.persist(ctx); err != nil {
		return added, err
	}
	return added, nil
}

// UpdateItem replaces an item by id. A stale id is a silent no-op.
func (s *Service) UpdateItem(ctx context.Context, event string, item models.Item) error {
	if _, ok := s.store.Items(event); !ok {
		return ErrEventNotFound
	}
	if reason := item.Validate(); reason != "" {
		return &ValidationError{Reason: reason}
	}
	if !s.store.UpdateItem(event, item) {
		// Stale id, nothing changed, nothing to persist.
		return nil
	}
	return s.persist(ctx)
}

// DeleteItem removes an item and prunes it from both days' partitions.
// A stale id is a silent no-op.
func (s *Service) DeleteItem(ctx context.Context, event, id string) error {
	if _, ok := s.store.Items(event); !ok {
		return ErrEventNotFound
	}
	if !s.store.DeleteItem(event, id) {
		return nil
	}
	return s.persist(ctx)
}

// Move repositions an item or a selected block. Stale references are
// silent no-ops.
func (s *Service) Move(ctx context.Context, event, draggedID, targetID string, selected []string) error {
	if _, ok := s.store.Items(event); !ok {
		return ErrEventNotFound
	}
	if !s.store.Move(event, draggedID, targetID, selected) {
		return nil
	}
	return s.persist(ctx)
}

// AddToActive places items on a day's active route.
func (s *Service) AddToActive(ctx context.Context, event string, day models.Day, ids []string) error {
	if !s.store.AddToActive(event, day, ids) {
		return ErrEventNotFound
	}
	return s.persist(ctx)
}

// RemoveFromActive takes items off a day's active route.
func (s *Service) RemoveFromActive(ctx context.Context, event string, day models.Day, ids []string) error {
	if !s.store.RemoveFromActive(event, day, ids) {
		return ErrEventNotFound
	}
	return s.persist(ctx)
}

// Columns returns a day's active and candidate projections plus its mode.
func (s *Service) Columns(event string, day models.Day) (active, candidate []models.Item, mode models.Mode, err error) {
	active, candidate, ok := s.store.Columns(event, day)
	if !ok {
		return nil, nil, "", ErrEventNotFound
	}
	mode, _ = s.store.Mode(event, day)
	return active, candidate, mode, nil
}

// ToggleMode flips a day's edit/execute flag.
func (s *Service) ToggleMode(ctx context.Context, event string, day models.Day) (models.Mode, error) {
	mode, ok := s.store.ToggleMode(event, day)
	if !ok {
		return "", ErrEventNotFound
	}
	if err := s.persist(ctx); err != nil {
		return mode, err
	}
	return mode, nil
}

// Plan fetches the sheet behind the locator and computes the pending
// change-set against the event's current collection. Nothing is mutated.
// An empty locator falls back to the event's stored source metadata.
func (s *Service) Plan(ctx context.Context, event, locator, sheet string) (*reconcile.ChangeSet, error) {
	items, ok := s.store.Items(event)
	if !ok {
		return nil, ErrEventNotFound
	}

	if locator == "" {
		meta, _ := s.store.Metadata(event)
		locator, sheet = meta.SourceURL, meta.SheetName
	}
	if locator == "" {
		return nil, fmt.Errorf("%w: no source locator known for event", source.ErrSourceUnavailable)
	}

	rows, err := s.src.Fetch(ctx, locator, sheet)
	if err != nil {
		return nil, err
	}

	cs := reconcile.Build(items, rows)
	s.logger.Info("Reconciliation planned",
		zap.String("event", event),
		zap.Int("adds", cs.Summary.Adds),
		zap.Int("updates", cs.Summary.Updates),
		zap.Int("deletes", cs.Summary.Deletes),
		zap.Int("skipped_rows", cs.Summary.SkippedRows))
	return cs, nil
}

// Confirm applies a pending change-set atomically and records the source
// locator for later runs. The change-set is validated against current state
// inside the store; a concurrently deleted event makes the whole confirm a
// no-op.
func (s *Service) Confirm(ctx context.Context, event string, cs *reconcile.ChangeSet, locator, sheet string) error {
	if !s.store.ConfirmChangeSet(event, cs) {
		return ErrEventNotFound
	}
	if locator != "" {
		// Keep LastImportAt the store just stamped.
		meta, _ := s.store.Metadata(event)
		meta.SourceURL = locator
		meta.SheetName = sheet
		s.store.SetMetadata(event, meta)
	}
	return s.persist(ctx)
}

// ExportCSV renders the event's collection as a BOM-prefixed CSV table.
func (s *Service) ExportCSV(event string) ([]byte, error) {
	items, ok := s.store.Items(event)
	if !ok {
		return nil, ErrEventNotFound
	}
	return CSVBytes(items)
}

// DeleteEvent removes the event and everything it owns.
func (s *Service) DeleteEvent(ctx context.Context, event string) error {
	if !s.store.DeleteEvent(event) {
		return ErrEventNotFound
	}
	return s.persist(ctx)
}

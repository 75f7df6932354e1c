// Package event implements the purchase visit planner.
//
// An event is a named collection of purchase targets for a doujin sales
// event, kept in manual visitation order, plus per-day route partitions and
// edit/execute mode flags. The package owns the item lifecycle (bulk import,
// manual add, edit, delete, drag reorder), the per-day active/candidate
// columns and the diff-based reconciliation against the published circle
// spreadsheet.
//
// # Components
//
//   - Store: In-memory state with all core mutations under one mutex.
//   - Service: Orchestrates the store, snapshot persistence and the sheet
//     row source. Persists after every successful mutation.
//   - Handler: Exposes the HTTP endpoints.
//   - Feature: Registers the feature with the application.
//
// Sub-packages hold the pure logic: models (item, day, mode), ordering
// (locale-aware sort and drag moves), partition (column projections),
// reconcile (change-set planning) and source (sheet fetching).
package event

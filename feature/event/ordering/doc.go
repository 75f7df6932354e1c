// Package ordering implements the route-order operations on an event's
// item collection.
//
// The collection order is the visitation route, so it is user data: reorder
// operations never change the set of items, only their positions.
//
// # Operations
//
//   - MoveItem: drag-and-drop repositioning, including multi-select block
//     moves that keep the selection's internal order intact.
//   - InsertSorted: places newly reconciled items at their (block, number)
//     position without disturbing the manual order of existing items.
//
// Comparison is locale- and numeric-aware (golang.org/x/text/collate), so
// "A-2" comes before "A-10".
package ordering

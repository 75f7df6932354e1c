// Package partition tracks which subset of a day's items is on the active
// route, independent of the master collection's order.
//
// Only the active id list is stored. The candidate column is always derived
// as "items of the day minus active ids", which makes the active/candidate
// exclusivity invariant structural rather than something to maintain.
package partition

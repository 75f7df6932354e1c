// Package snapshot persists the application state as a single named blob.
//
// The whole event state (collections, metadata, partitions, mode flags) is
// serialized into one JSON document and written in one call after each
// successful mutation; loading happens once at startup. Writing everything
// together is deliberate: a partial write could leave partitions pointing
// at items that no longer exist.
//
// # Backends
//
//   - ObjectStore: stores the blob in a bucket via core/storage (MinIO/S3).
//   - DatabaseStore: stores the blob in a "snapshots" table via GORM.
//
// The backend is selected by configuration; both satisfy the Store
// interface and are interchangeable.
package snapshot

package snapshot

import (
	"context"
	"errors"
)

// ErrNotFound reports that no snapshot has been saved under the given name.
// Callers treat this as "start fresh", not as a failure.
var ErrNotFound = errors.New("snapshot not found")

// Store persists named state blobs. The application state is serialized as
// one document and written in a single call, so partial writes cannot
// desynchronize its parts.
type Store interface {
	// Save writes the blob under name, replacing any previous version.
	Save(ctx context.Context, name string, data []byte) error
	// Load reads the blob saved under name, or ErrNotFound.
	Load(ctx context.Context, name string) ([]byte, error)
}

// Config selects and names the snapshot backend.
type Config struct {
	// Backend is the store implementation: "object" (bucket) or "database".
	Backend string `mapstructure:"backend" default:"object"`
	// Name is the blob name the application state is saved under.
	Name string `mapstructure:"name" default:"events.json"`
}

const (
	BackendObject   = "object"
	BackendDatabase = "database"
)

// IsValidBackend checks if the configured backend is known.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendObject, BackendDatabase:
		return true
	default:
		return false
	}
}

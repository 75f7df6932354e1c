package cmd

import (
	"fmt"
	"time"

	"github.com/blusalice3/sokubaikai/core/config"
	"github.com/blusalice3/sokubaikai/core/database"
	"github.com/blusalice3/sokubaikai/core/snapshot"
	"github.com/blusalice3/sokubaikai/core/storage"
	"github.com/blusalice3/sokubaikai/feature/event"
	"github.com/blusalice3/sokubaikai/feature/event/source"

	"go.uber.org/zap"
)

// newSnapshotStore builds the configured snapshot backend.
func newSnapshotStore(cfg *config.Config) (snapshot.Store, error) {
	if !cfg.Snapshot.IsValidBackend() {
		return nil, fmt.Errorf("unknown snapshot backend %q", cfg.Snapshot.Backend)
	}

	switch cfg.Snapshot.Backend {
	case snapshot.BackendDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return snapshot.NewDatabaseStore(db)
	default:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		return snapshot.NewObjectStore(client, cfg.Storage.Bucket), nil
	}
}

// newEventService wires the store, the snapshot backend and the sheet source
// into a service. The caller still has to Load it.
func newEventService(cfg *config.Config, logg *zap.Logger) (*event.Service, error) {
	snap, err := newSnapshotStore(cfg)
	if err != nil {
		return nil, err
	}
	src := source.NewHTTPSource(time.Duration(cfg.Sheet.TimeoutSeconds) * time.Second)
	return event.NewService(event.NewStore(), snap, src, logg, cfg.Snapshot.Name), nil
}

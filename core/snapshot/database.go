package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Blob is the snapshots table row: one named JSON document per row.
type Blob struct {
	Name      string `gorm:"column:name;primaryKey;size:191"`
	Data      []byte `gorm:"column:data"`
	UpdatedAt time.Time
}

// TableName sets the table name for GORM.
func (Blob) TableName() string {
	return "snapshots"
}

// DatabaseStore persists snapshots in a database table.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a database-backed snapshot store and ensures the
// snapshots table exists.
func NewDatabaseStore(db *gorm.DB) (*DatabaseStore, error) {
	if err := db.AutoMigrate(&Blob{}); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshots table: %w", err)
	}
	return &DatabaseStore{db: db}, nil
}

// Save upserts the blob row.
func (s *DatabaseStore) Save(ctx context.Context, name string, data []byte) error {
	blob := Blob{Name: name, Data: data, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&blob).Error
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", name, err)
	}
	return nil
}

// Load reads the blob row, mapping a missing record to ErrNotFound.
func (s *DatabaseStore) Load(ctx context.Context, name string) ([]byte, error) {
	var blob Blob
	err := s.db.WithContext(ctx).First(&blob, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load snapshot %s: %w", name, err)
	}
	return blob.Data, nil
}

package snapshot

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestDatabaseStoreSaveUpserts(t *testing.T) {
	db, mock := setupMockDB(t)
	store := &DatabaseStore{db: db}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `snapshots`.*ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := store.Save(context.Background(), "events.json", []byte(`{"collections":{}}`))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabaseStoreLoad(t *testing.T) {
	db, mock := setupMockDB(t)
	store := &DatabaseStore{db: db}

	rows := sqlmock.NewRows([]string{"name", "data"}).
		AddRow("events.json", []byte(`{"collections":{}}`))
	mock.ExpectQuery("SELECT \\* FROM `snapshots` WHERE name = \\?").
		WillReturnRows(rows)

	data, err := store.Load(context.Background(), "events.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"collections":{}}`), data)
}

func TestDatabaseStoreLoadMissing(t *testing.T) {
	db, mock := setupMockDB(t)
	store := &DatabaseStore{db: db}

	mock.ExpectQuery("SELECT \\* FROM `snapshots` WHERE name = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"name", "data"}))

	_, err := store.Load(context.Background(), "missing.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

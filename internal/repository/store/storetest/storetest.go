// Package storetest opens throwaway SQLite databases for tests.
package storetest

import (
	"path/filepath"
	"testing"

	"Community_API/internal/repository/store"

	"gorm.io/gorm"
)

// OpenDB opens a migrated SQLite database in t.TempDir() and closes it on cleanup.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := store.Open(store.Config{Driver: "sqlite", DSN: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = store.Close(db) })
	return db
}

// Package testutil provides test helpers for setting up test stores,
// creating fixtures, and making assertions.
package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"dia/internal/models"
	"dia/internal/store"
)

// allModels is the list of all GORM models to auto-migrate in tests.
var allModels = []interface{}{
	&models.User{},
	&models.AuthToken{},
	&models.Portfolio{},
	&models.Transaction{},
}

// SetupTestDB creates an in-memory SQLite database with all models migrated.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A pooled second connection would see its own empty in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get underlying DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}

// ForEachStore runs fn as a subtest against both store implementations, so
// every service behavior is verified under the persistent-backed store
// (SQLite stand-in) and the in-memory store.
func ForEachStore(t *testing.T, fn func(t *testing.T, st store.Store)) {
	t.Helper()

	t.Run("gorm", func(t *testing.T) {
		db := SetupTestDB(t)
		defer TeardownTestDB(t, db)
		fn(t, store.NewGormStore(db))
	})

	t.Run("memory", func(t *testing.T) {
		fn(t, store.NewMemoryStore())
	})
}

package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thelsien/Snaxlog-sub000/internal/db"
	"github.com/thelsien/Snaxlog-sub000/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snaxlog.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if err := service.SeedCatalog(sqldb); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	return sqldb
}

func floatPtr(v float64) *float64 { return &v }

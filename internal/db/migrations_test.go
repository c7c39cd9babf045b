package db_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thelsien/Snaxlog-sub000/internal/db"
)

func TestApplyMigrationsIdempotent(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "snaxlog.db")
	sqldb, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("first apply migrations: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("second apply migrations: %v", err)
	}

	var migrationCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&migrationCount); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if migrationCount != 2 {
		t.Fatalf("expected 2 migration versions, got %d", migrationCount)
	}

	for _, table := range []string{"foods", "diary_entries", "goals", "app_config"} {
		var count int
		if err := sqldb.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&count); err != nil {
			t.Fatalf("check %s table: %v", table, err)
		}
		if count != 1 {
			t.Fatalf("expected %s table to exist", table)
		}
	}

	var activeIndexCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'index' AND name = 'idx_goals_single_active'`).Scan(&activeIndexCount); err != nil {
		t.Fatalf("check single-active goal index: %v", err)
	}
	if activeIndexCount != 1 {
		t.Fatalf("expected idx_goals_single_active index to exist")
	}

	var mealColCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM pragma_table_info('diary_entries') WHERE name = 'meal'`).Scan(&mealColCount); err != nil {
		t.Fatalf("check diary_entries meal column: %v", err)
	}
	if mealColCount != 1 {
		t.Fatalf("expected meal column in diary_entries table")
	}

	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected db file to exist: %v", err)
	}
}

func TestSingleActiveGoalIndexEnforced(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "snaxlog.db")
	sqldb, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	if _, err := sqldb.Exec(`INSERT INTO goals(name, calories, is_active) VALUES('one', 2000, 1)`); err != nil {
		t.Fatalf("insert first active goal: %v", err)
	}
	if _, err := sqldb.Exec(`INSERT INTO goals(name, calories, is_active) VALUES('two', 1800, 1)`); err == nil {
		t.Fatalf("expected unique index to reject a second active goal")
	}
	if _, err := sqldb.Exec(`INSERT INTO goals(name, calories, is_active) VALUES('two', 1800, 0)`); err != nil {
		t.Fatalf("insert inactive goal: %v", err)
	}
}

package migration

import (
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func mapFS(files map[string]string) fstest.MapFS {
	m := fstest.MapFS{}
	for name, content := range files {
		m[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return m
}

func TestGetCurrentVersion(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, mapFS(nil))

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0, got %d", version)
	}

	if err := runner.SetVersion(5); err != nil {
		t.Fatalf("SetVersion failed: %v", err)
	}
	version, err = runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 5 {
		t.Errorf("expected version 5, got %d", version)
	}
}

func TestReadMigrationFiles(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		wantErr  string
		wantVers []int
	}{
		{
			name: "sorted by version",
			files: map[string]string{
				"002_second.sql": "SELECT 2;",
				"001_first.sql":  "SELECT 1;",
				"README.md":      "ignored",
			},
			wantVers: []int{1, 2},
		},
		{
			name:    "bad filename",
			files:   map[string]string{"init.sql": "SELECT 1;"},
			wantErr: "invalid migration filename",
		},
		{
			name:    "non-numeric version",
			files:   map[string]string{"abc_init.sql": "SELECT 1;"},
			wantErr: "invalid version number",
		},
		{
			name:    "zero version",
			files:   map[string]string{"000_init.sql": "SELECT 1;"},
			wantErr: "at least 1",
		},
		{
			name: "duplicate version",
			files: map[string]string{
				"001_a.sql": "SELECT 1;",
				"01_b.sql":  "SELECT 1;",
			},
			wantErr: "duplicate migration version 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(setupTestDB(t), mapFS(tt.files))
			migrations, err := runner.ReadMigrationFiles()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadMigrationFiles failed: %v", err)
			}
			if len(migrations) != len(tt.wantVers) {
				t.Fatalf("expected %d migrations, got %d", len(tt.wantVers), len(migrations))
			}
			for i, v := range tt.wantVers {
				if migrations[i].Version != v {
					t.Errorf("migration %d has version %d, want %d", i, migrations[i].Version, v)
				}
			}
			if migrations[0].Name != "first" {
				t.Errorf("expected name 'first', got %q", migrations[0].Name)
			}
		})
	}
}

func TestApplyMigrations(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, mapFS(map[string]string{
		"001_items.sql": "CREATE TABLE items (id TEXT PRIMARY KEY);",
		"002_name.sql":  "ALTER TABLE items ADD COLUMN name TEXT;",
	}))

	var logs []string
	applied, err := runner.ApplyMigrations(func(s string) { logs = append(logs, s) })
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 applied migrations, got %d", applied)
	}
	if len(logs) == 0 {
		t.Error("expected progress to be logged")
	}

	if _, err := db.Exec("INSERT INTO items (id, name) VALUES ('a', 'b')"); err != nil {
		t.Errorf("migrated schema is unusable: %v", err)
	}

	applied, err = runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second ApplyMigrations failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected no migrations on second run, got %d", applied)
	}

	st, err := runner.Status()
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if !st.UpToDate() || st.Current != 2 || st.Latest != 2 {
		t.Errorf("unexpected status %+v", st)
	}
}

func TestApplyMigrationsRollsBackFailure(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, mapFS(map[string]string{
		"001_ok.sql":  "CREATE TABLE ok (id INTEGER);",
		"002_bad.sql": "CREATE TABLE broken (;",
	}))

	applied, err := runner.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("expected error from invalid migration")
	}
	if applied != 1 {
		t.Errorf("expected 1 applied migration before failure, got %d", applied)
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 1 {
		t.Errorf("expected version to stay at 1, got %d", version)
	}
}

func TestValidateVersionRejectsNewerSchema(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, mapFS(map[string]string{
		"001_init.sql": "CREATE TABLE t (id INTEGER);",
	}))
	if err := runner.SetVersion(3); err != nil {
		t.Fatalf("SetVersion failed: %v", err)
	}

	err := runner.ValidateVersion()
	if !errors.Is(err, ErrSchemaTooNew) {
		t.Fatalf("expected ErrSchemaTooNew, got %v", err)
	}
	if _, err := runner.ApplyMigrations(nil); !errors.Is(err, ErrSchemaTooNew) {
		t.Errorf("ApplyMigrations should refuse newer schema, got %v", err)
	}
}

package system

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/studydash/internal/backup"
	"github.com/julianstephens/studydash/internal/cli"
	"github.com/julianstephens/studydash/internal/constants"
	"github.com/julianstephens/studydash/internal/i18n"
	"github.com/julianstephens/studydash/internal/planner"
	"github.com/julianstephens/studydash/internal/storage"
	"github.com/julianstephens/studydash/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	storeReachable := false

	// Check 1: Store reachable
	if err := checkStoreReachable(ctx); err != nil {
		ctx.Printf("❌ Storage reachable: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.Printf("✓ Storage reachable: OK\n")
		storeReachable = true
	}

	// Check 2: Schema version (SQLite only)
	if storeReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			ctx.Printf("❌ Schema version: FAIL\n")
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			ctx.Printf("✓ Schema version: OK\n")
		}
	} else {
		ctx.Printf("⊘ Schema version: SKIPPED (storage not reachable)\n")
	}

	// Check 3: Backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		ctx.Printf("⚠ Backups present: WARNING\n")
		ctx.Printf("   %v\n", err)
	} else {
		ctx.Printf("✓ Backups present: OK\n")
	}

	// Check 4: Stored collections decode
	var snap planner.Snapshot
	collectionsOK := false
	if storeReachable {
		var err error
		if snap, err = checkCollections(ctx); err != nil {
			ctx.Printf("❌ Stored collections: FAIL\n")
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			ctx.Printf("✓ Stored collections: OK\n")
			collectionsOK = true
		}
	} else {
		ctx.Printf("⊘ Stored collections: SKIPPED (storage not reachable)\n")
	}

	// Check 5: Data integrity (warning only, nothing is auto-fixed)
	if collectionsOK {
		report := validation.CheckIntegrity(snap.Classes, snap.Homework, snap.Notes)
		if report.HasConflicts() {
			ctx.Printf("⚠ Data integrity: WARNING\n")
			ctx.Printf("   %d problem(s) found, run 'studydash validate' for details\n", len(report.Conflicts))
		} else {
			ctx.Printf("✓ Data integrity: OK\n")
		}
	} else {
		ctx.Printf("⊘ Data integrity: SKIPPED (collections unreadable)\n")
	}

	// Check 6: Language preference
	if storeReachable {
		if err := checkLanguage(ctx); err != nil {
			ctx.Printf("⚠ Language preference: WARNING\n")
			ctx.Printf("   %v\n", err)
		} else {
			ctx.Printf("✓ Language preference: OK\n")
		}
	} else {
		ctx.Printf("⊘ Language preference: SKIPPED (storage not reachable)\n")
	}

	// Check 7: Clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		ctx.Printf("❌ Clock/timezone: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.Printf("✓ Clock/timezone: OK\n")
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		// JSON store has no schema version
		return nil
	}

	status, err := sqliteStore.MigrationStatus()
	if err != nil {
		return err
	}
	if status.Current > status.Latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", status.Current, status.Latest)
	}
	if !status.UpToDate() {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", status.Current, status.Latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'studydash backup create'")
	}

	return nil
}

// checkCollections decodes each stored collection without touching the
// planner, which would fall back to sample data for unreadable values.
func checkCollections(ctx *cli.Context) (planner.Snapshot, error) {
	var snap planner.Snapshot
	targets := []struct {
		key string
		dst interface{}
	}{
		{constants.KeyClasses, &snap.Classes},
		{constants.KeyHomework, &snap.Homework},
		{constants.KeyNotes, &snap.Notes},
	}
	for _, t := range targets {
		raw, ok, err := ctx.Store.GetItem(t.key)
		if err != nil {
			return snap, fmt.Errorf("failed to read %s: %w", t.key, err)
		}
		if !ok {
			return snap, fmt.Errorf("%s is missing, run 'studydash init'", t.key)
		}
		if err := json.Unmarshal([]byte(raw), t.dst); err != nil {
			return snap, fmt.Errorf("%s is not a valid collection: %w", t.key, err)
		}
	}
	return snap, nil
}

func checkLanguage(ctx *cli.Context) error {
	raw, ok, err := ctx.Store.GetItem(constants.KeyLanguage)
	if err != nil {
		return fmt.Errorf("failed to read language preference: %w", err)
	}
	if ok && !i18n.Language(raw).Valid() {
		return fmt.Errorf("stored language %q is not supported, run 'studydash lang set <code>'", raw)
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	return nil
}

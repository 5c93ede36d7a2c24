package backups

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/studydash/internal/backup"
	"github.com/julianstephens/studydash/internal/cli"
	"github.com/julianstephens/studydash/internal/models"
	"github.com/julianstephens/studydash/internal/planner"
	"github.com/julianstephens/studydash/internal/storage"
)

func setupTestContext(t *testing.T, name string) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := storage.New(filepath.Join(t.TempDir(), name))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	p := planner.New(store, planner.WithClock(func() time.Time { return now }))
	if err := p.Load(); err != nil {
		t.Fatalf("failed to load planner: %v", err)
	}
	if err := p.Reset(true); err != nil {
		t.Fatalf("failed to seed planner: %v", err)
	}

	out := &bytes.Buffer{}
	return &cli.Context{Store: store, Planner: p, Out: out}, out
}

func noOtherInstances(t *testing.T) {
	t.Helper()
	orig := otherInstances
	otherInstances = func() ([]int, error) { return nil, nil }
	t.Cleanup(func() { otherInstances = orig })
}

func TestBackupCreateAndList(t *testing.T) {
	ctx, out := setupTestContext(t, "test.db")

	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup create failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Backup created: studydash-") {
		t.Errorf("unexpected output %q", out.String())
	}

	out.Reset()
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup list failed: %v", err)
	}
	if !strings.Contains(out.String(), "Available backups (1 total, keeping most recent 14)") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestBackupListEmpty(t *testing.T) {
	ctx, out := setupTestContext(t, "test.db")

	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup list failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "No backups found.") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestBackupRestore(t *testing.T) {
	for _, name := range []string{"test.db", "test.json"} {
		t.Run(name, func(t *testing.T) {
			noOtherInstances(t)
			ctx, out := setupTestContext(t, name)

			mgr := backup.NewManager(ctx.Store.GetConfigPath())
			backupPath, err := mgr.CreateBackup()
			if err != nil {
				t.Fatalf("CreateBackup failed: %v", err)
			}

			if _, err := ctx.Planner.AddClass(models.ClassInput{
				Name: "Added Later", Instructor: "X", Room: "Y",
				DayOfWeek: time.Friday, StartTime: "08:00", EndTime: "09:00",
			}); err != nil {
				t.Fatalf("AddClass failed: %v", err)
			}

			ctx.In = strings.NewReader("yes\n")
			if err := (&BackupRestoreCmd{BackupFile: filepath.Base(backupPath)}).Run(ctx); err != nil {
				t.Fatalf("restore failed: %v", err)
			}
			if !strings.Contains(out.String(), "✓ Planner data restored successfully!") {
				t.Errorf("unexpected output:\n%s", out.String())
			}

			store := storage.New(ctx.Store.GetConfigPath())
			if err := store.Load(); err != nil {
				t.Fatalf("reload failed: %v", err)
			}
			defer store.Close()
			p := planner.New(store)
			if err := p.Load(); err != nil {
				t.Fatalf("planner reload failed: %v", err)
			}
			if len(p.Classes()) != 3 {
				t.Errorf("expected restored data with 3 classes, got %d", len(p.Classes()))
			}
		})
	}
}

func TestBackupRestoreCancelled(t *testing.T) {
	noOtherInstances(t)
	ctx, out := setupTestContext(t, "test.db")

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	ctx.In = strings.NewReader("n\n")
	if err := (&BackupRestoreCmd{BackupFile: backupPath}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if !strings.Contains(out.String(), "Restore cancelled.") {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	backups, _ := mgr.ListBackups()
	if len(backups) != 1 {
		t.Errorf("cancelled restore should not take a safety copy, have %d backups", len(backups))
	}
}

func TestBackupRestoreRefusedWhileRunning(t *testing.T) {
	ctx, _ := setupTestContext(t, "test.db")

	orig := otherInstances
	otherInstances = func() ([]int, error) { return []int{4242}, nil }
	t.Cleanup(func() { otherInstances = orig })

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	err = (&BackupRestoreCmd{BackupFile: backupPath, Yes: true}).Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "PID 4242") {
		t.Errorf("expected running-instance error, got %v", err)
	}
}

func TestBackupRestoreProcessCheckFails(t *testing.T) {
	ctx, _ := setupTestContext(t, "test.db")

	orig := otherInstances
	otherInstances = func() ([]int, error) { return nil, errors.New("no /proc") }
	t.Cleanup(func() { otherInstances = orig })

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if err := (&BackupRestoreCmd{BackupFile: backupPath, Yes: true}).Run(ctx); err == nil {
		t.Error("expected error when processes cannot be listed")
	}
}

func TestBackupRestoreMissingFile(t *testing.T) {
	noOtherInstances(t)
	ctx, _ := setupTestContext(t, "test.db")

	err := (&BackupRestoreCmd{BackupFile: "studydash-20990101-0000.db", Yes: true}).Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "backup file not found") {
		t.Errorf("expected not found error, got %v", err)
	}
	if _, statErr := os.Stat(ctx.Store.GetConfigPath()); statErr != nil {
		t.Errorf("store should be untouched: %v", statErr)
	}
}

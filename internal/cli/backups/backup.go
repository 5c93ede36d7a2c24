package backups

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/julianstephens/studydash/internal/backup"
	"github.com/julianstephens/studydash/internal/cli"
	"github.com/julianstephens/studydash/internal/constants"
)

// otherInstances is swapped in tests.
var otherInstances = backup.OtherInstances

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	ctx.Printf("✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		ctx.Println("No backups found.")
		ctx.Printf("Backups are stored in: %s\n", mgr.GetBackupDir())
		return nil
	}

	ctx.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		sizeKB := float64(b.Size) / 1024.0
		timestamp := b.Timestamp.Format("2006-01-02 15:04:05")
		ctx.Printf("  %s  %s  (%.1f KB)\n", timestamp, filepath.Base(b.Path), sizeKB)
	}
	ctx.Printf("\nBackup directory: %s\n", mgr.GetBackupDir())

	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	backupPath, err := mgr.ResolvePath(c.BackupFile)
	if err != nil {
		return err
	}

	pids, err := otherInstances()
	if err != nil {
		return fmt.Errorf("failed to check for running studydash processes: %w", err)
	}
	if len(pids) > 0 {
		strs := make([]string, len(pids))
		for i, pid := range pids {
			strs[i] = fmt.Sprint(pid)
		}
		return fmt.Errorf("studydash is running in another process (PID %s), close it before restoring", strings.Join(strs, ", "))
	}

	if !c.Yes {
		ctx.Println("⚠️  WARNING: This will replace your current planner data with the backup.")
		ctx.Println("A backup of your current data will be created before restoring.")
		ctx.Printf("\nRestore from: %s\n", backupPath)
		ok, err := ctx.Confirm("Continue?")
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Restore cancelled.")
			return nil
		}
	}

	// Close the current store connection before restoring
	if err := ctx.Store.Close(); err != nil {
		ctx.Printf("Warning: failed to close storage: %v\n", err)
	}

	safetyCopy, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	ctx.Println("✓ Planner data restored successfully!")
	if safetyCopy != "" {
		ctx.Printf("  Previous data saved as: %s\n", filepath.Base(safetyCopy))
	}
	return nil
}

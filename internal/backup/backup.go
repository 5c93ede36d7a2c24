package backup

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/studydash/internal/constants"
	"github.com/julianstephens/studydash/internal/logger"
)

var timestampFormats = []string{"20060102-1504", "20060102-150405"}

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
	modTime   time.Time
}

// Manager creates, lists, rotates and restores snapshots of one store file.
// SQLite stores are copied with VACUUM INTO; JSON stores are copied verbatim.
type Manager struct {
	storePath string
	backupDir string
	suffix    string
	now       func() time.Time
}

// NewManager creates a manager that keeps backups beside storePath.
func NewManager(storePath string) *Manager {
	suffix := filepath.Ext(storePath)
	if suffix == "" {
		suffix = ".db"
	}
	return &Manager{
		storePath: storePath,
		backupDir: filepath.Join(filepath.Dir(storePath), constants.BackupDirName),
		suffix:    suffix,
		now:       time.Now,
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

func (m *Manager) isJSON() bool {
	return strings.EqualFold(m.suffix, ".json")
}

// CreateBackup snapshots the store and prunes backups beyond constants.MaxBackups.
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

// createBackup skips rotation when taking the safety copy made before a restore.
func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.storePath); os.IsNotExist(err) {
		return "", fmt.Errorf("store does not exist: %s", m.storePath)
	}

	backupPath, err := m.uniqueBackupPath()
	if err != nil {
		return "", err
	}

	if m.isJSON() {
		if err := verifyJSON(m.storePath); err != nil {
			return "", fmt.Errorf("store appears to be corrupted: %w", err)
		}
		err = copyFile(m.storePath, backupPath)
	} else {
		err = m.backupDatabase(backupPath)
	}
	if err != nil {
		return "", fmt.Errorf("failed to back up store: %w", err)
	}
	logger.Info("backup created", "path", backupPath)

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			logger.Warn("failed to rotate old backups", "error", err)
		}
	}

	return backupPath, nil
}

// uniqueBackupPath names the backup by minute, then by second, then with a counter.
func (m *Manager) uniqueBackupPath() (string, error) {
	now := m.now()
	for _, layout := range timestampFormats {
		p := m.backupPath(now.Format(layout), 0)
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return p, nil
		}
	}

	stamp := now.Format(timestampFormats[len(timestampFormats)-1])
	for counter := 1; counter <= 100; counter++ {
		p := m.backupPath(stamp, counter)
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return p, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique backup filename")
}

func (m *Manager) backupPath(stamp string, counter int) string {
	name := constants.BackupFilePrefix + stamp
	if counter > 0 {
		name += "-" + strconv.Itoa(counter)
	}
	return filepath.Join(m.backupDir, name+m.suffix)
}

// backupDatabase writes a consistent copy of the SQLite store to destPath.
func (m *Manager) backupDatabase(destPath string) error {
	srcDB, err := sql.Open("sqlite", m.storePath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer srcDB.Close()

	var count int
	if err := srcDB.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := srcDB.Exec("VACUUM INTO ?", destPath); err != nil {
		logger.Debug("VACUUM INTO failed, copying file instead", "error", err)
		srcDB.Close()
		return copyFile(m.storePath, destPath)
	}
	return nil
}

// parseStamp extracts the time from a backup filename stem, ignoring any counter.
func parseStamp(stem string) (time.Time, bool) {
	for _, layout := range timestampFormats {
		if len(stem) < len(layout) {
			continue
		}
		head, rest := stem[:len(layout)], stem[len(layout):]
		if rest != "" {
			n, ok := strings.CutPrefix(rest, "-")
			if !ok {
				continue
			}
			if _, err := strconv.Atoi(n); err != nil {
				continue
			}
		}
		if ts, err := time.ParseInLocation(layout, head, time.Local); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// ListBackups returns all backups, newest first.
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []BackupInfo{}, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []BackupInfo{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, m.suffix) {
			continue
		}

		stem := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), m.suffix)
		ts, ok := parseStamp(stem)
		if !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		backups = append(backups, BackupInfo{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: ts,
			Size:      info.Size(),
			modTime:   info.ModTime(),
		})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].modTime.After(backups[j].modTime)
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

// rotateBackups removes old backups beyond the retention limit
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
		logger.Debug("removed old backup", "path", backups[i].Path)
	}
	return nil
}

// ResolvePath finds a backup given an absolute path, a path relative to the
// working directory, or a bare filename inside the backup directory.
func (m *Manager) ResolvePath(name string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("backup file not found: %s", name)
		}
		return name, nil
	}
	if _, err := os.Stat(name); err == nil {
		return filepath.Abs(name)
	}
	candidate := filepath.Join(m.backupDir, name)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return "", fmt.Errorf("backup file not found: tried current directory and %s", m.backupDir)
}

// RestoreBackup replaces the store with backupPath. The current store is
// backed up first and the returned path names that safety copy ("" if there
// was no store).
func (m *Manager) RestoreBackup(backupPath string) (string, error) {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return "", fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	if err := m.verifyBackup(backupPath); err != nil {
		return "", fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	var safetyCopy string
	if _, err := os.Stat(m.storePath); err == nil {
		safetyCopy, err = m.createBackup(true)
		if err != nil {
			return "", fmt.Errorf("failed to back up current store before restore: %w", err)
		}
	}

	tempPath := m.storePath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return safetyCopy, fmt.Errorf("failed to copy backup file: %w", err)
	}

	if err := os.Rename(tempPath, m.storePath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			logger.Warn("failed to remove temporary file", "path", tempPath, "error", removeErr)
		}
		return safetyCopy, fmt.Errorf("failed to restore store: %w", err)
	}

	logger.Info("store restored", "from", backupPath, "safety_copy", safetyCopy)
	return safetyCopy, nil
}

func (m *Manager) verifyBackup(path string) error {
	if m.isJSON() {
		return verifyJSON(path)
	}

	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='local_storage'").Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%s is not a %s database", filepath.Base(path), constants.AppName)
	}
	return nil
}

func verifyJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var items map[string]string
	return json.Unmarshal(data, &items)
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}
	return destFile.Sync()
}

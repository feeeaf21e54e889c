package xolog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ensureFile opens the log file in append mode, creating it when absent,
// and returns its current size. The file is not kept open; every append
// reopens it so a rotation rename never races an open descriptor.
func ensureFile(path string) (int64, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat log file: %w", err)
	}
	return info.Size(), nil
}

// appendFile appends data to the file at path, creating it when absent.
func appendFile(path string, data []byte) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("failed to write log file: %w", err)
	}
	return file.Close()
}

// truncateFile recreates an empty file at path, replacing any content.
func truncateFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	return file.Close()
}

// listBackups returns the rotated backups of the named logfile in dir,
// oldest first by modification time. The active file itself is excluded;
// a backup is any file ending in "_<name>" with a non-empty prefix.
func listBackups(dir, name string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read log directory: %w", err)
	}

	type backup struct {
		name    string
		modTime time.Time
	}

	var backups []backup
	suffix := "_" + name
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == name || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, backup{name: entry.Name(), modTime: info.ModTime()})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].modTime.Before(backups[j].modTime)
	})

	names := make([]string, len(backups))
	for i, b := range backups {
		names[i] = b.name
	}
	return names, nil
}

// pruneBackups removes the oldest rotated backups of the named logfile
// until at most keep remain. Individual removal failures are skipped.
func pruneBackups(dir, name string, keep int) error {
	backups, err := listBackups(dir, name)
	if err != nil {
		return err
	}

	for i := 0; i < len(backups)-keep; i++ {
		if err := os.Remove(filepath.Join(dir, backups[i])); err != nil {
			continue
		}
	}
	return nil
}

package xolog

import (
	"fmt"
	"os"
)

// rotate renames the active file out of the way and starts a fresh one.
// The rotated name is the minute-granularity slice of ts prepended to the
// logfile name, e.g. "2026-08-31T15:04_xo.log". Must be called with the
// handle mutex held. A crash between the rename and the recreate leaves
// no file at the active path; that window is accepted.
func (l *Logger) rotate(ts string) error {
	rotated := l.folder + ts[:rotatePrefixLen] + "_" + l.name
	if err := os.Rename(l.path, rotated); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if err := truncateFile(l.path); err != nil {
		return fmt.Errorf("failed to recreate log file: %w", err)
	}
	l.size = 0

	if l.maxBackups > 0 {
		// Pruning is best effort; a failed directory scan does not fail
		// the emit that triggered the rotation.
		_ = pruneBackups(l.folder, l.name, l.maxBackups)
	}
	return nil
}

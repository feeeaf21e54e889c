package xolog

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Logger is a handle on one logfile. It gates messages by severity,
// formats and timestamps them, appends them to its backing file and
// rotates the file once its tracked size crosses the handle's limit.
// Handles are obtained from a Registry and are safe for concurrent use;
// one mutex guards the whole append-or-rotate step.
type Logger struct {
	mu sync.Mutex

	// name and the resolved folder are fixed at creation. A handle
	// created before a log folder was configured stays in console mode
	// even if a folder is configured later.
	name   string
	folder string
	path   string // folder + name, "" in console mode

	console io.Writer

	size       int64 // tracked byte count, an estimate of the file size
	maxSize    int64
	maxBackups int
	threshold  Level
}

// Name returns the logfile name the handle was registered under.
func (l *Logger) Name() string {
	return l.name
}

// Level returns the handle's current severity threshold.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.threshold
}

// SetLevel sets the handle's severity threshold. It returns false and
// changes nothing when the level name is not recognized.
func (l *Logger) SetLevel(level string) bool {
	lv, ok := ParseLevel(level)
	if !ok {
		return false
	}
	l.setThreshold(lv)
	return true
}

func (l *Logger) setThreshold(lv Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.threshold = lv
}

func (l *Logger) setMaxSize(size int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.maxSize = size
}

// Log emits one message. The boolean reports whether a line was written:
// an unrecognized level name or a message filtered by the handle's
// threshold returns (false, nil) with no side effects. A non-nil error
// means the backing store failed; size tracking is left consistent with
// what actually reached the file.
//
// component tags the line and defaults to "log" when empty. With args
// present, msg is treated as a printf format; without them it is written
// verbatim, and an empty msg falls back to the level name.
func (l *Logger) Log(level, component, msg string, args ...any) (bool, error) {
	lv, ok := ParseLevel(level)
	if !ok {
		return false, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if lv > l.threshold {
		return false, nil
	}

	if component == "" {
		component = defaultComponent
	}

	now := time.Now()
	ts := timestamp(now)
	line := formatLine(ts, lv, component, formatMessage(lv, msg, args))

	// Console mode: no size tracking, no rotation.
	if l.path == "" {
		if _, err := l.console.Write(line); err != nil {
			return false, fmt.Errorf("failed to write console: %w", err)
		}
		return true, nil
	}

	if err := appendFile(l.path, line); err != nil {
		return false, err
	}
	l.size += int64(len(line))

	if l.size > l.maxSize {
		if err := l.rotate(ts); err != nil {
			return true, err
		}
	}
	return true, nil
}

// Error emits a message at ERROR level.
func (l *Logger) Error(component, msg string, args ...any) (bool, error) {
	return l.Log("ERROR", component, msg, args...)
}

// Warn emits a message at WARN level.
func (l *Logger) Warn(component, msg string, args ...any) (bool, error) {
	return l.Log("WARN", component, msg, args...)
}

// Info emits a message at INFO level.
func (l *Logger) Info(component, msg string, args ...any) (bool, error) {
	return l.Log("INFO", component, msg, args...)
}

// Debug emits a message at DEBUG level.
func (l *Logger) Debug(component, msg string, args ...any) (bool, error) {
	return l.Log("DEBUG", component, msg, args...)
}

// Trace emits a message at TRACE level.
func (l *Logger) Trace(component, msg string, args ...any) (bool, error) {
	return l.Log("TRACE", component, msg, args...)
}

// Backups returns the handle's rotated backup files, oldest first.
// It returns nil in console mode.
func (l *Logger) Backups() ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.path == "" {
		return nil, nil
	}
	return listBackups(l.folder, l.name)
}

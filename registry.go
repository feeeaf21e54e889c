package xolog

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
)

const (
	// DefaultName is the logfile name used when none is given.
	DefaultName = "xo.log"

	// DefaultMaxFileSize is the rotation threshold for new handles.
	DefaultMaxFileSize int64 = 2_000_000

	// MinFileSize and MaxFileSize bound the accepted rotation thresholds.
	MinFileSize int64 = 100
	MaxFileSize int64 = 10_000_000

	defaultComponent = "log"
	defaultLevel     = LevelError
)

// Registry maps logfile names to logger handles, creating each handle
// exactly once, and owns the configuration applied to new handles: the
// log folder, the default rotation size and the default severity
// threshold. Build one per application with New or NewWithConfig and
// pass it to whatever needs logging; all methods are safe for
// concurrent use.
type Registry struct {
	handles *xsync.MapOf[string, *Logger]

	mu         sync.RWMutex
	folder     string // always stored with a trailing separator, "" = console mode
	console    io.Writer
	maxSize    int64
	maxBackups int
	level      Level
}

// New returns an empty Registry in console-fallback mode with default
// rotation size and an ERROR threshold.
func New() *Registry {
	return &Registry{
		handles: xsync.NewMapOf[string, *Logger](),
		console: os.Stdout,
		maxSize: DefaultMaxFileSize,
		level:   defaultLevel,
	}
}

// Logger returns the handle registered under name, creating it on first
// use. An empty name resolves to DefaultName. When a log folder is
// configured the backing file is created if absent and its current size
// probed; a failure there returns the error and registers nothing, so a
// later call may retry. Concurrent first use for the same name yields
// the same single handle.
func (r *Registry) Logger(name string) (*Logger, error) {
	if name == "" {
		name = DefaultName
	}

	var createErr error
	handle, ok := r.handles.Compute(name, func(old *Logger, loaded bool) (*Logger, bool) {
		if loaded {
			return old, false
		}

		r.mu.RLock()
		folder := r.folder
		console := r.console
		maxSize := r.maxSize
		maxBackups := r.maxBackups
		level := r.level
		r.mu.RUnlock()

		l := &Logger{
			name:       name,
			console:    console,
			maxSize:    maxSize,
			maxBackups: maxBackups,
			threshold:  level,
		}

		if folder != "" {
			size, err := ensureFile(folder + name)
			if err != nil {
				createErr = err
				return nil, true
			}
			l.folder = folder
			l.path = folder + name
			l.size = size
		}
		return l, false
	})
	if !ok {
		return nil, createErr
	}
	return handle, nil
}

// SetLogLevel sets the severity threshold of the named handle, or of
// every registered handle when name is empty. It returns false and
// changes nothing when the level name is not recognized or the named
// handle does not exist.
func (r *Registry) SetLogLevel(name, level string) bool {
	lv, ok := ParseLevel(level)
	if !ok {
		return false
	}

	if name == "" {
		r.handles.Range(func(_ string, l *Logger) bool {
			l.setThreshold(lv)
			return true
		})
		return true
	}

	l, ok := r.handles.Load(name)
	if !ok {
		return false
	}
	l.setThreshold(lv)
	return true
}

// SetMaxFileSize sets the rotation threshold of the named handle, or of
// every registered handle when name is empty. Sizes outside
// [MinFileSize, MaxFileSize] are rejected.
func (r *Registry) SetMaxFileSize(name string, size int64) bool {
	if size < MinFileSize || size > MaxFileSize {
		return false
	}

	if name == "" {
		r.handles.Range(func(_ string, l *Logger) bool {
			l.setMaxSize(size)
			return true
		})
		return true
	}

	l, ok := r.handles.Load(name)
	if !ok {
		return false
	}
	l.setMaxSize(size)
	return true
}

// SetLogFolder stores path, with a trailing separator appended, as the
// backing-store root for handles created afterwards. Handles that
// already exist keep the path they resolved at creation, including
// console-mode handles created before any folder was set. An empty path
// is ignored.
func (r *Registry) SetLogFolder(path string) {
	if path == "" {
		return
	}
	if !strings.HasSuffix(path, string(os.PathSeparator)) {
		path += string(os.PathSeparator)
	}

	r.mu.Lock()
	r.folder = path
	r.mu.Unlock()
}

// LogFolder returns the configured log folder, or "" in console mode.
func (r *Registry) LogFolder() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.folder
}

// SetConsole replaces the console sink used by handles created
// afterwards in console-fallback mode. The default is os.Stdout.
func (r *Registry) SetConsole(w io.Writer) {
	r.mu.Lock()
	r.console = w
	r.mu.Unlock()
}

package xolog

import "strings"

// Level indicates the logging severity level. Lower values are more
// severe: a message is emitted only when its level value does not
// exceed the handle's threshold value.
type Level int8

const (
	// LevelError logs are high-priority and pass every threshold.
	LevelError Level = iota
	// LevelWarn logs warn about potential issues.
	LevelWarn
	// LevelInfo logs carry general informational messages.
	LevelInfo
	// LevelDebug logs are typically voluminous and disabled in production.
	LevelDebug
	// LevelTrace logs carry the finest-grained diagnostics.
	LevelTrace
	// LevelAll as a threshold admits every message.
	LevelAll
)

// levelNames maps each level to its canonical uppercase name.
var levelNames = [...]string{
	LevelError: "ERROR",
	LevelWarn:  "WARN",
	LevelInfo:  "INFO",
	LevelDebug: "DEBUG",
	LevelTrace: "TRACE",
	LevelAll:   "ALL",
}

// String returns the canonical uppercase name of the level, as written
// into log lines.
func (l Level) String() string {
	if l < LevelError || l > LevelAll {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel resolves a severity level name to its Level value. Matching
// is case-insensitive. The second return value reports whether the name
// is a recognized level; callers must treat false as an invalid argument
// and leave state untouched.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(s) {
	case "ERROR":
		return LevelError, true
	case "WARN":
		return LevelWarn, true
	case "INFO":
		return LevelInfo, true
	case "DEBUG":
		return LevelDebug, true
	case "TRACE":
		return LevelTrace, true
	case "ALL":
		return LevelAll, true
	default:
		return 0, false
	}
}

package xolog

import (
	"fmt"
	"time"
)

// timestampLayout renders wall-clock time with millisecond precision and
// no zone suffix, e.g. "2026-08-31T15:04:05.123".
const timestampLayout = "2006-01-02T15:04:05.000"

// rotatePrefixLen is the minute-granularity slice of a timestamp used to
// prefix rotated file names ("2006-01-02T15:04").
const rotatePrefixLen = 16

// localOffset is the local zone offset captured once at process start.
// Every timestamp is rendered with this fixed offset; a zone change or
// DST transition during the process lifetime is deliberately ignored.
var localOffset = func() time.Duration {
	_, offset := time.Now().Zone()
	return time.Duration(offset) * time.Second
}()

// timestamp renders t shifted by the startup zone offset.
func timestamp(t time.Time) string {
	return t.UTC().Add(localOffset).Format(timestampLayout)
}

// formatMessage produces the message text for a log line. An empty msg
// falls back to the level name, with or without arguments. Otherwise
// format arguments trigger printf-style substitution into msg; without
// them msg is used verbatim.
func formatMessage(level Level, msg string, args []any) string {
	if msg == "" {
		return level.String()
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// formatLine builds a complete log line including the trailing newline:
// "<timestamp> [<LEVEL>] [<component>] <message>\n".
func formatLine(ts string, level Level, component, msg string) []byte {
	buf := make([]byte, 0, len(ts)+len(component)+len(msg)+16)
	buf = append(buf, ts...)
	buf = append(buf, ' ', '[')
	buf = append(buf, level.String()...)
	buf = append(buf, ']', ' ', '[')
	buf = append(buf, component...)
	buf = append(buf, ']', ' ')
	buf = append(buf, msg...)
	buf = append(buf, '\n')
	return buf
}

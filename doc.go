// Package xolog provides a minimal leveled file logger with size-based
// rotation. Callers obtain named logger handles from a Registry; each
// handle gates messages by severity, formats them with a millisecond
// timestamp, appends them to its backing file and rotates the file once
// it grows past a configurable size threshold. Without a configured log
// folder all output falls back to a console sink.
//
// Features:
//   - One handle per logfile name, safe under concurrent first use
//   - Six severity levels from ERROR to ALL with per-handle thresholds
//   - Synchronous size-tracked appends with rename-based rotation
//   - Count-based pruning of rotated backup files
//   - Console fallback when no log folder is configured
//   - Broadcast or per-handle level and size configuration
//   - String and struct based configuration with defaults
//   - log/slog bridge with a colored console handler
package xolog

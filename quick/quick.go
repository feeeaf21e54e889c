// Package quick provides a package-level registry and shorthand logging
// functions for programs that do not want to wire a Registry themselves.
package quick

import (
	"fmt"

	"github.com/xolog/xolog"
)

// registry backs every function in this package.
var registry = xolog.New()

// Registry returns the package-level registry, for cases where the
// shorthand functions are not enough.
func Registry() *xolog.Registry {
	return registry
}

// Logger returns the handle registered under name, creating it on first
// use. An empty name resolves to the default logfile.
func Logger(name string) (*xolog.Logger, error) {
	return registry.Logger(name)
}

// Error logs an error message on the default logfile.
func Error(component, msg string, args ...any) bool {
	return emit("ERROR", component, msg, args...)
}

// Warn logs a warning message on the default logfile.
// Message is dropped if the threshold is lower than warn.
func Warn(component, msg string, args ...any) bool {
	return emit("WARN", component, msg, args...)
}

// Info logs an info message on the default logfile.
// Message is dropped if the threshold is lower than info.
func Info(component, msg string, args ...any) bool {
	return emit("INFO", component, msg, args...)
}

// Debug logs a debug message on the default logfile.
// Message is dropped if the threshold is lower than debug.
func Debug(component, msg string, args ...any) bool {
	return emit("DEBUG", component, msg, args...)
}

// Trace logs a trace message on the default logfile.
// Message is dropped if the threshold is lower than trace.
func Trace(component, msg string, args ...any) bool {
	return emit("TRACE", component, msg, args...)
}

func emit(level, component, msg string, args ...any) bool {
	l, err := registry.Logger("")
	if err != nil {
		return false
	}
	written, _ := l.Log(level, component, msg, args...)
	return written
}

// Config changes the registry configuration with string statements.
// e.g. quick.Config("folder=/var/log/app", "level=INFO")
func Config(args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("no config provided")
	}

	cfg, err := config(args...)
	if err != nil {
		return err
	}
	return registry.Configure(cfg)
}

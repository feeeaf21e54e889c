package xolog

import "fmt"

// Config defines the registry configuration parameters.
// All fields can be provided via JSON or TOML configuration files.
type Config struct {
	Folder      string `json:"folder" toml:"folder"`               // Backing-store root, empty keeps console mode
	Level       string `json:"level" toml:"level"`                 // Default severity threshold name, e.g. "INFO"
	MaxFileSize int64  `json:"max_file_size" toml:"max_file_size"` // Rotation threshold in bytes
	MaxBackups  int    `json:"max_backups" toml:"max_backups"`     // Rotated files kept per logfile, 0 keeps all
}

// NewWithConfig builds a Registry from cfg. Zero-valued fields fall back
// to the package defaults: console mode, ERROR threshold,
// DefaultMaxFileSize, unlimited backups.
func NewWithConfig(cfg *Config) (*Registry, error) {
	r := New()
	if cfg == nil {
		return r, nil
	}
	if err := r.Configure(cfg); err != nil {
		return nil, err
	}
	return r, nil
}

// Configure applies cfg to a live registry. The folder, default
// threshold, rotation size and backup count take effect for handles
// created afterwards; level and size changes are also broadcast to the
// handles that already exist, matching SetLogLevel and SetMaxFileSize
// with an empty name. Zero-valued fields leave the current setting
// untouched.
func (r *Registry) Configure(cfg *Config) error {
	var level Level
	if cfg.Level != "" {
		lv, ok := ParseLevel(cfg.Level)
		if !ok {
			return fmt.Errorf("unrecognized log level: %q", cfg.Level)
		}
		level = lv
	}

	maxSize := getConfigValue(DefaultMaxFileSize, cfg.MaxFileSize)
	if maxSize < MinFileSize || maxSize > MaxFileSize {
		return fmt.Errorf("max file size %d outside [%d, %d]", maxSize, MinFileSize, MaxFileSize)
	}
	if cfg.MaxBackups < 0 {
		return fmt.Errorf("negative max backups: %d", cfg.MaxBackups)
	}

	r.mu.Lock()
	if cfg.MaxFileSize != 0 {
		r.maxSize = maxSize
	}
	if cfg.MaxBackups != 0 {
		r.maxBackups = cfg.MaxBackups
	}
	if cfg.Level != "" {
		r.level = level
	}
	r.mu.Unlock()

	r.SetLogFolder(cfg.Folder)

	if cfg.Level != "" {
		r.SetLogLevel("", cfg.Level)
	}
	if cfg.MaxFileSize != 0 {
		r.SetMaxFileSize("", cfg.MaxFileSize)
	}
	return nil
}

// getConfigValue returns defaultVal if cfgVal equals the zero value for
// type T, otherwise returns cfgVal. Used for merging configuration
// values with their defaults.
func getConfigValue[T comparable](defaultVal, cfgVal T) T {
	var zero T
	if cfgVal == zero {
		return defaultVal
	}
	return cfgVal
}

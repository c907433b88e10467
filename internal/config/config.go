package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete epicview configuration
type Config struct {
	TUI     TUIConfig     `mapstructure:"tui"`
	Data    DataConfig    `mapstructure:"data"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// ShowDescriptions renders epic descriptions next to the epic name (default: true)
	ShowDescriptions bool `mapstructure:"show_descriptions"`
	// MouseEnabled turns on mouse support so nodes can be clicked (default: true)
	MouseEnabled bool `mapstructure:"mouse_enabled"`
}

// DataConfig controls where the work queue snapshot comes from
type DataConfig struct {
	// SnapshotPath is the path to the orchestrator's snapshot file.
	// Supports ~ for home directory expansion.
	SnapshotPath string `mapstructure:"snapshot_path"`
	// Watch reloads the snapshot when the file changes (default: true)
	Watch bool `mapstructure:"watch"`
	// DebounceMs is how long to wait after a file event before reloading,
	// so a burst of writes produces a single reload (default: 100)
	DebounceMs int `mapstructure:"debounce_ms"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// File is the log file path. Empty means {config dir}/epicview.log.
	// The TUI owns the terminal, so logs never go to stderr while it runs.
	File string `mapstructure:"file"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 5)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 2)
	MaxBackups int `mapstructure:"max_backups"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		TUI: TUIConfig{
			ShowDescriptions: true,
			MouseEnabled:     true,
		},
		Data: DataConfig{
			SnapshotPath: "",
			Watch:        true,
			DebounceMs:   100,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			File:       "",
			MaxSizeMB:  5,
			MaxBackups: 2,
		},
	}
}

// Debounce returns the watch debounce as a time.Duration
func (d *DataConfig) Debounce() time.Duration {
	return time.Duration(d.DebounceMs) * time.Millisecond
}

// ResolveSnapshotPath returns the snapshot path with ~ expanded and relative
// paths resolved against baseDir.
func (d *DataConfig) ResolveSnapshotPath(baseDir string) string {
	path := d.SnapshotPath
	if path == "" {
		return ""
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	return path
}

// ResolveFile returns the log file path, falling back to the default
// location in the config directory.
func (l *LoggingConfig) ResolveFile() string {
	if l.File != "" {
		return l.File
	}
	return filepath.Join(ConfigDir(), "epicview.log")
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// TUI defaults
	viper.SetDefault("tui.show_descriptions", defaults.TUI.ShowDescriptions)
	viper.SetDefault("tui.mouse_enabled", defaults.TUI.MouseEnabled)

	// Data defaults
	viper.SetDefault("data.snapshot_path", defaults.Data.SnapshotPath)
	viper.SetDefault("data.watch", defaults.Data.Watch)
	viper.SetDefault("data.debounce_ms", defaults.Data.DebounceMs)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "epicview")
	}
	// Fall back to ~/.config/epicview
	home, err := os.UserHomeDir()
	if err != nil {
		return ".epicview"
	}
	return filepath.Join(home, ".config", "epicview")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

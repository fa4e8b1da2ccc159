package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/GriffinCanCode/hyprsession/internal/shared/paths"
)

// Config holds all application configuration.
type Config struct {
	Hypr    HyprConfig
	Logging LogConfig
	Session SessionConfig
	Restore RestoreConfig
	Metrics MetricsConfig
	Watch   WatchConfig
}

// HyprConfig holds the compositor socket identifiers. They are not marked
// required here: a missing value is reported when the endpoint is resolved,
// so commands that never touch the compositor still work.
type HyprConfig struct {
	RuntimeDir string        `envconfig:"XDG_RUNTIME_DIR"`
	Signature  string        `envconfig:"HYPRLAND_INSTANCE_SIGNATURE"`
	Timeout    time.Duration `envconfig:"HYPRSESSION_IPC_TIMEOUT" default:"0s"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// SessionConfig holds snapshot location and capture filters.
type SessionConfig struct {
	Snapshot      string   `envconfig:"HYPRSESSION_SNAPSHOT"`
	StateHome     string   `envconfig:"XDG_STATE_HOME"`
	Home          string   `envconfig:"HOME"`
	IgnoreClasses []string `envconfig:"HYPRSESSION_IGNORE_CLASSES"`
}

// RestoreConfig holds restoration behaviour.
type RestoreConfig struct {
	Notify        bool   `envconfig:"HYPRSESSION_NOTIFY" default:"true"`
	NotifyCommand string `envconfig:"HYPRSESSION_NOTIFY_CMD" default:"notify-send"`
	AliasFile     string `envconfig:"HYPRSESSION_ALIASES"`
	ConfigHome    string `envconfig:"XDG_CONFIG_HOME"`
	Home          string `envconfig:"HOME"`
}

// MetricsConfig holds the optional Prometheus endpoint.
type MetricsConfig struct {
	Addr string `envconfig:"HYPRSESSION_METRICS_ADDR"`
}

// WatchConfig holds the caller-side reconnect policy for the event watcher.
type WatchConfig struct {
	Reconnect         bool          `envconfig:"HYPRSESSION_RECONNECT" default:"false"`
	ReconnectInterval time.Duration `envconfig:"HYPRSESSION_RECONNECT_INTERVAL" default:"1s"`
	MaxFailures       uint32        `envconfig:"HYPRSESSION_RECONNECT_FAILURES" default:"5"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Restore: RestoreConfig{
			Notify:        true,
			NotifyCommand: "notify-send",
		},
		Watch: WatchConfig{
			Reconnect:         false,
			ReconnectInterval: time.Second,
			MaxFailures:       5,
		},
	}
}

// SnapshotPath returns the configured snapshot file, falling back to
// $XDG_STATE_HOME/hyprsession/session.json and then
// ~/.local/state/hyprsession/session.json.
func (c SessionConfig) SnapshotPath() string {
	if c.Snapshot != "" {
		return c.Snapshot
	}
	return paths.DefaultSnapshot(c.StateHome, c.Home)
}

// AliasPath returns the configured alias file, or the default one under
// $XDG_CONFIG_HOME if it exists, or "".
func (c RestoreConfig) AliasPath() string {
	if c.AliasFile != "" {
		return c.AliasFile
	}
	return paths.DefaultAliases(c.ConfigHome, c.Home)
}

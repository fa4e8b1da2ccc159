package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Hypr config
	assert.Empty(t, cfg.Hypr.RuntimeDir)
	assert.Empty(t, cfg.Hypr.Signature)
	assert.Zero(t, cfg.Hypr.Timeout)

	// Logging config
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	// Restore config
	assert.True(t, cfg.Restore.Notify)
	assert.Equal(t, "notify-send", cfg.Restore.NotifyCommand)

	// Watch config
	assert.False(t, cfg.Watch.Reconnect)
	assert.Equal(t, time.Second, cfg.Watch.ReconnectInterval)
	assert.Equal(t, uint32(5), cfg.Watch.MaxFailures)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"XDG_RUNTIME_DIR":                "/run/user/1000",
		"HYPRLAND_INSTANCE_SIGNATURE":    "abc_123",
		"HYPRSESSION_IPC_TIMEOUT":        "2s",
		"LOG_LEVEL":                      "debug",
		"LOG_DEV":                        "true",
		"HYPRSESSION_SNAPSHOT":           "/tmp/session.yaml",
		"HYPRSESSION_IGNORE_CLASSES":     "xdg-desktop-portal*,polkit*",
		"HYPRSESSION_NOTIFY":             "false",
		"HYPRSESSION_NOTIFY_CMD":         "dunstify",
		"HYPRSESSION_ALIASES":            "/etc/hyprsession/aliases.yaml",
		"HYPRSESSION_METRICS_ADDR":       "127.0.0.1:9477",
		"HYPRSESSION_RECONNECT":          "true",
		"HYPRSESSION_RECONNECT_INTERVAL": "250ms",
		"HYPRSESSION_RECONNECT_FAILURES": "3",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/run/user/1000", cfg.Hypr.RuntimeDir)
	assert.Equal(t, "abc_123", cfg.Hypr.Signature)
	assert.Equal(t, 2*time.Second, cfg.Hypr.Timeout)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)

	assert.Equal(t, "/tmp/session.yaml", cfg.Session.Snapshot)
	assert.Equal(t, []string{"xdg-desktop-portal*", "polkit*"}, cfg.Session.IgnoreClasses)

	assert.False(t, cfg.Restore.Notify)
	assert.Equal(t, "dunstify", cfg.Restore.NotifyCommand)
	assert.Equal(t, "/etc/hyprsession/aliases.yaml", cfg.Restore.AliasFile)

	assert.Equal(t, "127.0.0.1:9477", cfg.Metrics.Addr)

	assert.True(t, cfg.Watch.Reconnect)
	assert.Equal(t, 250*time.Millisecond, cfg.Watch.ReconnectInterval)
	assert.Equal(t, uint32(3), cfg.Watch.MaxFailures)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("HYPRSESSION_IPC_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)

	// LoadOrDefault swallows the error
	cfg := LoadOrDefault()
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoggingConfig(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		dev       string
		wantLevel string
		wantDev   bool
	}{
		{
			name:      "default values",
			wantLevel: "info",
			wantDev:   false,
		},
		{
			name:      "debug level",
			level:     "debug",
			wantLevel: "debug",
			wantDev:   false,
		},
		{
			name:      "development mode",
			dev:       "true",
			wantLevel: "info",
			wantDev:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// An empty variable is "set" as far as envconfig is concerned,
			// so spell out the defaults instead of clearing.
			level, dev := tt.level, tt.dev
			if level == "" {
				level = "info"
			}
			if dev == "" {
				dev = "false"
			}
			t.Setenv("LOG_LEVEL", level)
			t.Setenv("LOG_DEV", dev)

			cfg := LoadOrDefault()

			assert.Equal(t, tt.wantLevel, cfg.Logging.Level)
			assert.Equal(t, tt.wantDev, cfg.Logging.Development)
		})
	}
}

func TestSnapshotPath(t *testing.T) {
	tests := []struct {
		name string
		cfg  SessionConfig
		want string
	}{
		{
			name: "explicit path wins",
			cfg:  SessionConfig{Snapshot: "/data/s.toml", StateHome: "/state", Home: "/home/u"},
			want: "/data/s.toml",
		},
		{
			name: "xdg state home",
			cfg:  SessionConfig{StateHome: "/state", Home: "/home/u"},
			want: "/state/hyprsession/session.json",
		},
		{
			name: "home fallback",
			cfg:  SessionConfig{Home: "/home/u"},
			want: "/home/u/.local/state/hyprsession/session.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.SnapshotPath())
		})
	}
}

func TestAliasPath(t *testing.T) {
	assert.Equal(t, "/etc/aliases.yaml", RestoreConfig{AliasFile: "/etc/aliases.yaml"}.AliasPath())
	assert.Equal(t, "", RestoreConfig{ConfigHome: t.TempDir()}.AliasPath())
}

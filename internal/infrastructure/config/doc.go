// Package config provides 12-factor configuration management for hyprsession.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags can override environment variables.
//
// Configuration Sections:
//   - Hypr: compositor socket identifiers and an optional IPC deadline
//   - Logging: Log level and output format
//   - Session: snapshot location and capture filters
//   - Restore: notification and launch alias settings
//   - Metrics: optional Prometheus listen address
//   - Watch: reconnect policy for the event watcher
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	endpoint, err := hypr.NewEndpoint(cfg.Hypr.RuntimeDir, cfg.Hypr.Signature)
//
// Environment Variables:
//   - XDG_RUNTIME_DIR, HYPRLAND_INSTANCE_SIGNATURE, HYPRSESSION_IPC_TIMEOUT
//   - LOG_LEVEL, LOG_DEV
//   - HYPRSESSION_SNAPSHOT, XDG_STATE_HOME, HYPRSESSION_IGNORE_CLASSES
//   - HYPRSESSION_NOTIFY, HYPRSESSION_NOTIFY_CMD, HYPRSESSION_ALIASES
//   - HYPRSESSION_METRICS_ADDR
//   - HYPRSESSION_RECONNECT, HYPRSESSION_RECONNECT_INTERVAL, HYPRSESSION_RECONNECT_FAILURES
package config

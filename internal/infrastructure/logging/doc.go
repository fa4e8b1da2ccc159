// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON lines on stderr, suitable for journald
//   - Development: Colored console output for human readability
//
// Components take a *Logger and treat nil as "discard", so tests can
// construct them without any logging setup.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("restoring window", zap.String("class", "kitty"))
//	logger.Error("launch failed", zap.Error(err))
package logging

package restore

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/hyprsession/internal/hypr"
	"github.com/GriffinCanCode/hyprsession/internal/infrastructure/logging"
	"github.com/GriffinCanCode/hyprsession/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/hyprsession/internal/session"
	"github.com/GriffinCanCode/hyprsession/internal/shared/id"
)

// Commander is the part of the command client the restorer drives.
type Commander interface {
	Clients(ctx context.Context) ([]hypr.Window, error)
	ExecOnWorkspace(ctx context.Context, workspace int, program string) (string, error)
}

// Positioner puts a claimed live window where the saved client was.
type Positioner interface {
	Restore(ctx context.Context, live hypr.Window, saved session.ClientDescriptor) error
}

// Notifier tells the user a window is being launched.
type Notifier interface {
	Notify(ctx context.Context, summary, body string) error
}

const notifySummary = "Restoring Session"

// Window outcomes, also used as metric labels.
const (
	outcomeMatched        = "matched"
	outcomeLaunched       = "launched"
	outcomeLaunchFailed   = "launch_failed"
	outcomePositionFailed = "position_failed"
)

// Match pairs a saved client with the live window that claimed it.
type Match struct {
	Saved   session.ClientDescriptor
	Address string
}

// Launch records a dispatched (or failed) launch.
type Launch struct {
	Saved   session.ClientDescriptor
	Command string
	// Response is the compositor's reply to the exec dispatch.
	Response string
	Err      error
}

// Report summarizes a run. On a fatal error it covers the work done so far.
type Report struct {
	RunID          id.RunID
	Matched        []Match
	Launched       []Launch
	LaunchFailures []Launch
	// Remaining holds live windows no saved client claimed.
	Remaining []hypr.Window
}

// PositionError aborts a run when a claimed window could not be positioned.
type PositionError struct {
	Saved   session.ClientDescriptor
	Address string
	Err     error
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("restore: position %s (%s): %v", e.Saved.Class, e.Address, e.Err)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}

// Restorer matches a snapshot against live windows.
type Restorer struct {
	commander  Commander
	positioner Positioner
	notifier   Notifier
	aliases    Aliases
	logger     *logging.Logger
	metrics    *monitoring.Metrics
}

// NewRestorer creates a restorer with the default aliases and no notifier.
func NewRestorer(commander Commander, positioner Positioner) *Restorer {
	return &Restorer{
		commander:  commander,
		positioner: positioner,
		aliases:    DefaultAliases(),
		logger:     logging.NewNop(),
	}
}

// WithNotifier enables launch notifications.
func (r *Restorer) WithNotifier(notifier Notifier) *Restorer {
	r.notifier = notifier
	return r
}

// WithAliases replaces the alias table.
func (r *Restorer) WithAliases(aliases Aliases) *Restorer {
	r.aliases = aliases
	return r
}

// WithLogger adds logging to the restorer.
func (r *Restorer) WithLogger(logger *logging.Logger) *Restorer {
	r.logger = logging.OrNop(logger).Named("restore")
	return r
}

// WithMetrics adds metrics tracking to the restorer.
func (r *Restorer) WithMetrics(metrics *monitoring.Metrics) *Restorer {
	r.metrics = metrics
	return r
}

// Run queries the live windows and restores snap against them.
func (r *Restorer) Run(ctx context.Context, snap *session.Snapshot) (*Report, error) {
	live, err := r.commander.Clients(ctx)
	if err != nil {
		r.metrics.RecordRestoreRun("error")
		return nil, fmt.Errorf("restore: query clients: %w", err)
	}
	return r.Restore(ctx, snap, live)
}

// Restore walks snap's clients in order against live. live is not modified.
func (r *Restorer) Restore(ctx context.Context, snap *session.Snapshot, live []hypr.Window) (*Report, error) {
	report := &Report{RunID: id.NewRunID()}
	log := r.logger.With(zap.String("run_id", report.RunID.String()))

	available := make([]hypr.Window, len(live))
	copy(available, live)

	log.Info("restoring session",
		zap.Int("saved", len(snap.Clients)),
		zap.Int("live", len(live)),
	)

	for _, saved := range snap.Clients {
		if err := ctx.Err(); err != nil {
			report.Remaining = available
			r.metrics.RecordRestoreRun("canceled")
			return report, fmt.Errorf("restore: %w", err)
		}

		idx := claim(available, saved.Class)
		if idx < 0 {
			r.launch(ctx, log, report, saved)
			continue
		}

		window := available[idx]
		available = append(available[:idx], available[idx+1:]...)

		log.Info("restoring window",
			zap.String("class", window.Class),
			zap.String("title", window.Title),
			zap.String("address", window.Address),
		)
		if err := r.positioner.Restore(ctx, window, saved); err != nil {
			report.Remaining = available
			r.metrics.RecordRestoreWindow(outcomePositionFailed)
			r.metrics.RecordRestoreRun("position_failed")
			return report, &PositionError{Saved: saved, Address: window.Address, Err: err}
		}

		report.Matched = append(report.Matched, Match{Saved: saved, Address: window.Address})
		r.metrics.RecordRestoreWindow(outcomeMatched)
	}

	report.Remaining = available
	r.metrics.RecordRestoreRun("success")
	log.Info("session restored",
		zap.Int("matched", len(report.Matched)),
		zap.Int("launched", len(report.Launched)),
		zap.Int("launch_failures", len(report.LaunchFailures)),
	)
	return report, nil
}

// claim returns the index of the first window with exactly this class, or -1.
func claim(windows []hypr.Window, class string) int {
	for i, w := range windows {
		if w.Class == class {
			return i
		}
	}
	return -1
}

func (r *Restorer) launch(ctx context.Context, log *logging.Logger, report *Report, saved session.ClientDescriptor) {
	log.Warn("window missing", zap.String("class", saved.Class))

	if r.notifier != nil {
		if err := r.notifier.Notify(ctx, notifySummary, fmt.Sprintf("Launching %s...", saved.Class)); err != nil {
			log.Debug("notification failed", zap.Error(err))
		}
	}

	command := r.aliases.Resolve(saved.LaunchName())
	log.Info("launching missing window",
		zap.String("command", command),
		zap.Int("workspace", saved.Workspace.ID),
	)

	resp, err := r.commander.ExecOnWorkspace(ctx, saved.Workspace.ID, command)
	entry := Launch{Saved: saved, Command: command, Response: resp, Err: err}
	if err != nil {
		log.Error("failed to launch", zap.String("command", command), zap.Error(err))
		report.LaunchFailures = append(report.LaunchFailures, entry)
		r.metrics.RecordRestoreWindow(outcomeLaunchFailed)
		return
	}

	if rejected := hypr.CheckResponse(resp); rejected != nil {
		log.Warn("compositor rejected launch", zap.String("command", command), zap.Error(rejected))
	}
	report.Launched = append(report.Launched, entry)
	r.metrics.RecordRestoreWindow(outcomeLaunched)
}

package session

import (
	"context"
	"fmt"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/GriffinCanCode/hyprsession/internal/hypr"
)

// StateSource is the part of the command client Capture needs.
type StateSource interface {
	CaptureState(ctx context.Context) (*hypr.State, error)
}

// CaptureOptions controls which windows end up in a snapshot.
type CaptureOptions struct {
	// IgnoreClasses holds glob patterns (doublestar syntax) matched against
	// each window's class. Matching windows are left out.
	IgnoreClasses []string

	// Now overrides the snapshot timestamp; nil means time.Now.
	Now func() time.Time
}

// Capture queries the compositor and builds a snapshot of every mapped,
// visible window, in the order the compositor lists them.
func Capture(ctx context.Context, src StateSource, opts CaptureOptions) (*Snapshot, error) {
	for _, pattern := range opts.IgnoreClasses {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("session: invalid ignore pattern %q", pattern)
		}
	}

	state, err := src.CaptureState(ctx)
	if err != nil {
		return nil, fmt.Errorf("session: capture state: %w", err)
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	snap := NewSnapshot(now())
	for _, w := range state.Clients {
		if !w.Mapped || w.Hidden {
			continue
		}
		if ignored(w.Class, opts.IgnoreClasses) {
			continue
		}
		snap.Clients = append(snap.Clients, DescriptorFromWindow(w, state.MonitorName(w.Monitor)))
	}
	return snap, nil
}

func ignored(class string, patterns []string) bool {
	for _, pattern := range patterns {
		// Patterns were validated up front.
		if ok, _ := doublestar.Match(pattern, class); ok {
			return true
		}
	}
	return false
}

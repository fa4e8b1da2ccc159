// Package watch keeps an event listener running on behalf of a caller.
//
// The listener itself never reconnects: when the compositor closes the
// stream, Listen returns. Watcher adds that policy on top. Reconnect attempts
// are paced by a rate limiter and a circuit breaker stops the loop once
// dialing has failed too many times in a row.
package watch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/GriffinCanCode/hyprsession/internal/hypr"
	"github.com/GriffinCanCode/hyprsession/internal/infrastructure/logging"
	"github.com/GriffinCanCode/hyprsession/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/hyprsession/internal/infrastructure/resilience"
)

// ErrGaveUp is returned once the breaker refuses further reconnects.
var ErrGaveUp = errors.New("watch: reconnect attempts exhausted")

// DialFunc opens a listener.
type DialFunc func(ctx context.Context) (*hypr.Listener, error)

// Options controls a Watcher.
type Options struct {
	// Reconnect re-dials after the stream ends or a dial fails.
	Reconnect bool
	// Interval is the minimum spacing between connection attempts.
	Interval time.Duration
	// MaxFailures is the number of consecutive dial failures tolerated.
	MaxFailures uint32
	// Filter selects the events passed to the sink; nil passes all.
	Filter func(hypr.Event) bool
}

// DefaultOptions does not reconnect.
func DefaultOptions() Options {
	return Options{Interval: time.Second, MaxFailures: 5}
}

// Watcher runs a listener until the stream ends, the context is canceled,
// or, with reconnects enabled, the breaker opens.
type Watcher struct {
	dial    DialFunc
	opts    Options
	limiter *rate.Limiter
	breaker *resilience.Breaker
	logger  *logging.Logger
	metrics *monitoring.Metrics
}

// New creates a watcher for the endpoint's event socket.
func New(endpoint hypr.Endpoint, opts Options) *Watcher {
	return NewWithDialer(func(ctx context.Context) (*hypr.Listener, error) {
		return hypr.Dial(ctx, endpoint)
	}, opts)
}

// NewWithDialer creates a watcher around a custom dial function.
func NewWithDialer(dial DialFunc, opts Options) *Watcher {
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.MaxFailures == 0 {
		opts.MaxFailures = 5
	}

	w := &Watcher{
		dial:    dial,
		opts:    opts,
		limiter: rate.NewLimiter(rate.Every(opts.Interval), 1),
		logger:  logging.NewNop(),
	}
	w.breaker = resilience.New("event-socket", resilience.Settings{
		ReadyToTrip: resilience.TripAfter(opts.MaxFailures),
		// Once open the watcher stops, so the breaker never needs to recover.
		Timeout: 24 * time.Hour,
		OnStateChange: func(name string, from, to resilience.State) {
			w.logger.Warn("breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return w
}

// WithLogger adds logging to the watcher.
func (w *Watcher) WithLogger(logger *logging.Logger) *Watcher {
	w.logger = logging.OrNop(logger).Named("watch")
	return w
}

// WithMetrics adds metrics tracking to the watcher and its listeners.
func (w *Watcher) WithMetrics(metrics *monitoring.Metrics) *Watcher {
	w.metrics = metrics
	return w
}

// Run delivers events to sink. It returns nil when ctx is canceled or, with
// reconnects disabled, when the stream ends cleanly.
func (w *Watcher) Run(ctx context.Context, sink func(hypr.Event)) error {
	var lastErr error
	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			if !w.opts.Reconnect {
				return lastErr
			}
			w.metrics.IncReconnects()
		}
		if err := w.limiter.Wait(ctx); err != nil {
			return nil
		}

		var listener *hypr.Listener
		err := w.breaker.Do(func() error {
			var dialErr error
			listener, dialErr = w.dial(ctx)
			return dialErr
		})
		switch {
		case ctx.Err() != nil:
			if listener != nil {
				_ = listener.Close()
			}
			return nil
		case errors.Is(err, resilience.ErrCircuitOpen), errors.Is(err, resilience.ErrTooManyRequests):
			return fmt.Errorf("%w: %w", ErrGaveUp, lastErr)
		case err != nil:
			w.logger.Warn("event socket dial failed", zap.Int("attempt", attempt), zap.Error(err))
			lastErr = err
			continue
		}

		w.logger.Info("listening for events", zap.Int("attempt", attempt))
		lastErr = w.listen(ctx, listener, sink)
		if ctx.Err() != nil {
			return nil
		}
		if lastErr != nil {
			w.logger.Warn("event stream failed", zap.Error(lastErr))
		} else {
			w.logger.Info("event stream closed")
		}
	}
}

func (w *Watcher) listen(ctx context.Context, listener *hypr.Listener, sink func(hypr.Event)) error {
	listener.WithLogger(w.logger).WithMetrics(w.metrics)
	defer listener.Close()

	// Closing is the only way to interrupt a blocked Listen.
	stop := context.AfterFunc(ctx, func() { _ = listener.Close() })
	defer stop()

	return listener.ListenFiltered(sink, w.opts.Filter)
}

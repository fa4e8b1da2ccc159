package hypr

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"net"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/hyprsession/internal/infrastructure/logging"
	"github.com/GriffinCanCode/hyprsession/internal/infrastructure/monitoring"
)

// maxLineSize bounds a single event line. Window titles are the only
// unbounded field and never come close.
const maxLineSize = 1 << 20

// Listener reads the event socket. It owns exactly one connection, made when
// it is constructed, and has a single consumer.
type Listener struct {
	conn    net.Conn
	scanner *bufio.Scanner
	logger  *logging.Logger
	metrics *monitoring.Metrics
}

// Dial connects to the endpoint's event socket.
func Dial(ctx context.Context, endpoint Endpoint) (*Listener, error) {
	return DialPath(ctx, endpoint.EventPath)
}

// DialPath connects to an event socket at an explicit path.
func DialPath(ctx context.Context, socketPath string) (*Listener, error) {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("hypr: connect event socket %s: %w", socketPath, err)
	}
	return NewListener(conn), nil
}

// NewListener wraps an already established connection.
func NewListener(conn net.Conn) *Listener {
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &Listener{
		conn:    conn,
		scanner: scanner,
		logger:  logging.NewNop(),
	}
}

// WithLogger adds debug logging of decoded events.
func (l *Listener) WithLogger(logger *logging.Logger) *Listener {
	l.logger = logging.OrNop(logger).Named("hypr.listener")
	return l
}

// WithMetrics counts decoded events by kind.
func (l *Listener) WithMetrics(metrics *monitoring.Metrics) *Listener {
	l.metrics = metrics
	return l
}

// Close closes the connection. A Listen call blocked on another goroutine
// returns an error wrapping net.ErrClosed.
func (l *Listener) Close() error {
	return l.conn.Close()
}

// Next blocks until the next line arrives and returns it decoded. It returns
// io.EOF once the compositor closes the stream.
func (l *Listener) Next() (Event, error) {
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			return nil, fmt.Errorf("hypr: read event stream: %w", err)
		}
		return nil, io.EOF
	}

	line := l.scanner.Bytes()
	if !utf8.Valid(line) {
		return nil, fmt.Errorf("hypr: read event stream: %w", ErrInvalidUTF8)
	}

	ev := Decode(string(line))
	l.metrics.RecordEvent(string(ev.Kind()))
	if u, ok := ev.(Unknown); ok {
		l.logger.Debug("undecoded event", zap.String("raw", u.Raw))
	}
	return ev, nil
}

// Listen calls sink for every event, in the order received, until the stream
// ends. End of stream returns nil; read errors are returned.
func (l *Listener) Listen(sink func(Event)) error {
	return l.ListenFiltered(sink, nil)
}

// ListenFiltered is Listen with sink only called when predicate holds. Every
// line is still decoded and offered to the predicate. A nil predicate
// accepts everything.
func (l *Listener) ListenFiltered(sink func(Event), predicate func(Event) bool) error {
	for {
		ev, err := l.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if predicate == nil || predicate(ev) {
			sink(ev)
		}
	}
}

// Events exposes the stream as a pull iterator. Iteration stops at end of
// stream; a read error is yielded once as the final pair. Breaking out of the
// loop leaves the connection open, so iteration can resume later.
func (l *Listener) Events() iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		for {
			ev, err := l.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(ev, nil) {
				return
			}
		}
	}
}

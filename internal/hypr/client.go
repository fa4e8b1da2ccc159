package hypr

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/hyprsession/internal/infrastructure/logging"
	"github.com/GriffinCanCode/hyprsession/internal/infrastructure/monitoring"
)

// Client sends commands to the compositor's command socket. Every call opens
// a fresh connection; nothing is kept between calls.
type Client struct {
	socketPath string
	timeout    time.Duration
	logger     *logging.Logger
	metrics    *monitoring.Metrics
}

// NewClient creates a command client for the endpoint's command socket.
func NewClient(endpoint Endpoint) *Client {
	return NewClientWithSocket(endpoint.CommandPath)
}

// NewClientWithSocket creates a command client for an explicit socket path.
func NewClientWithSocket(socketPath string) *Client {
	return &Client{
		socketPath: socketPath,
		logger:     logging.NewNop(),
	}
}

// WithLogger adds debug logging of every round trip.
func (c *Client) WithLogger(logger *logging.Logger) *Client {
	c.logger = logging.OrNop(logger).Named("hypr.client")
	return c
}

// WithMetrics adds metrics tracking to the client.
func (c *Client) WithMetrics(metrics *monitoring.Metrics) *Client {
	c.metrics = metrics
	return c
}

// WithTimeout bounds every round trip. Zero, the default, means no deadline
// beyond whatever the caller's context carries.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.timeout = timeout
	return c
}

// SocketPath returns the command socket path.
func (c *Client) SocketPath() string {
	return c.socketPath
}

// Send writes command, half-closes the connection, and returns everything the
// compositor wrote back before closing its side.
func (c *Client) Send(ctx context.Context, command string) (string, error) {
	timer := monitoring.NewTimer(c.metrics, opLabel(command))

	response, err := c.roundTrip(ctx, command)
	if err != nil {
		timer.Stop("error")
		c.logger.Debug("command failed", zap.String("command", command), zap.Error(err))
		return "", err
	}

	timer.Stop("success")
	c.logger.Debug("command sent",
		zap.String("command", command),
		zap.Int("response_bytes", len(response)),
	)
	return response, nil
}

func (c *Client) roundTrip(ctx context.Context, command string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return "", &CommandError{Stage: StageConnect, Command: command, Err: err}
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	// Unblock pending I/O when the context is cancelled.
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Unix(1, 0))
	})
	defer stop()

	fail := func(stage Stage, err error) (string, error) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		} else if _, ok := ctx.Deadline(); ok && errors.Is(err, os.ErrDeadlineExceeded) {
			// The socket deadline can fire a moment before the context's timer.
			err = context.DeadlineExceeded
		}
		return "", &CommandError{Stage: stage, Command: command, Err: err}
	}

	if _, err := io.WriteString(conn, command); err != nil {
		return fail(StageWrite, err)
	}
	if hc, ok := conn.(interface{ CloseWrite() error }); ok {
		if err := hc.CloseWrite(); err != nil {
			return fail(StageWrite, err)
		}
	}

	data, err := io.ReadAll(conn)
	if err != nil {
		return fail(StageRead, err)
	}
	if !utf8.Valid(data) {
		return "", &CommandError{Stage: StageRead, Command: command, Err: ErrInvalidUTF8}
	}

	return string(data), nil
}

// opLabel keeps metric cardinality bounded: dispatches are labelled by
// dispatcher name, everything else by its first word.
func opLabel(command string) string {
	fields := strings.Fields(command)
	switch {
	case len(fields) == 0:
		return "empty"
	case fields[0] == "dispatch" && len(fields) > 1:
		return "dispatch:" + fields[1]
	default:
		return fields[0]
	}
}

// Send resolves the endpoint from the environment and sends one command.
func Send(ctx context.Context, command string) (string, error) {
	endpoint, err := EndpointFromEnv()
	if err != nil {
		return "", err
	}
	return NewClient(endpoint).Send(ctx, command)
}

// Dispatch resolves the endpoint from the environment and sends
// "dispatch <op>".
func Dispatch(ctx context.Context, op string) (string, error) {
	return Send(ctx, DispatchCommand(op))
}

// QueryJSON resolves the endpoint from the environment and sends "j/<key>".
func QueryJSON(ctx context.Context, key string) (string, error) {
	return Send(ctx, QueryJSONCommand(key))
}

package hypr

import (
	"errors"
	"fmt"
)

var (
	// ErrEndpointUnresolved is matched by every *EndpointError.
	ErrEndpointUnresolved = errors.New("hypr: compositor endpoint unresolved")

	// ErrInvalidUTF8 is returned when a response or event line is not UTF-8.
	ErrInvalidUTF8 = errors.New("hypr: invalid UTF-8")
)

// EndpointError reports a missing environment identifier.
type EndpointError struct {
	Var string
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf("hypr: socket not found: %s not set", e.Var)
}

func (e *EndpointError) Unwrap() error {
	return ErrEndpointUnresolved
}

// Stage names the step of a command round trip that failed.
type Stage string

const (
	StageConnect Stage = "connect"
	StageWrite   Stage = "write"
	StageRead    Stage = "read"
)

// CommandError is returned by Client.Send for any transport failure.
type CommandError struct {
	Stage   Stage
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("hypr: %s failed for %q: %v", e.Stage, e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

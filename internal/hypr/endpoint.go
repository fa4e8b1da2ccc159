package hypr

import (
	"os"
	"path/filepath"
)

// Environment variables the endpoint is derived from.
const (
	EnvRuntimeDir = "XDG_RUNTIME_DIR"
	EnvSignature  = "HYPRLAND_INSTANCE_SIGNATURE"
)

const (
	commandSocketName = ".socket.sock"
	eventSocketName   = ".socket2.sock"
)

// Endpoint holds the resolved socket paths of one compositor instance.
type Endpoint struct {
	CommandPath string
	EventPath   string
}

// NewEndpoint derives both socket paths from the runtime directory and the
// instance signature. An empty value for either is an *EndpointError.
func NewEndpoint(runtimeDir, signature string) (Endpoint, error) {
	if runtimeDir == "" {
		return Endpoint{}, &EndpointError{Var: EnvRuntimeDir}
	}
	if signature == "" {
		return Endpoint{}, &EndpointError{Var: EnvSignature}
	}

	dir := filepath.Join(runtimeDir, "hypr", signature)
	return Endpoint{
		CommandPath: filepath.Join(dir, commandSocketName),
		EventPath:   filepath.Join(dir, eventSocketName),
	}, nil
}

// EndpointFromEnv reads XDG_RUNTIME_DIR and HYPRLAND_INSTANCE_SIGNATURE.
func EndpointFromEnv() (Endpoint, error) {
	return NewEndpoint(os.Getenv(EnvRuntimeDir), os.Getenv(EnvSignature))
}

// EndpointFromPaths builds an endpoint from explicit socket paths.
func EndpointFromPaths(commandPath, eventPath string) Endpoint {
	return Endpoint{CommandPath: commandPath, EventPath: eventPath}
}

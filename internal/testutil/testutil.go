// Package testutil provides an in-process fake compositor for tests: a
// command socket that records requests and replies with canned text, and an
// event socket that plays back scripted lines.
package testutil

import (
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/GriffinCanCode/hyprsession/internal/hypr"
)

// TestSignature is the instance signature used by NewCompositor.
const TestSignature = "test_instance"

// Responder produces the reply for one request.
type Responder func(request string) string

// Reply returns a Responder that always answers text.
func Reply(text string) Responder {
	return func(string) string { return text }
}

// Routes answers by exact request match, falling back to "ok".
func Routes(routes map[string]string) Responder {
	return func(request string) string {
		if reply, ok := routes[request]; ok {
			return reply
		}
		return "ok"
	}
}

// CommandServer imitates the compositor's command socket: one request per
// connection, answered after the client half-closes.
type CommandServer struct {
	Path string

	respond  Responder
	stall    bool
	listener net.Listener

	mu       sync.Mutex
	requests []string
	held     []net.Conn
	wg       sync.WaitGroup
}

// NewCommandServer starts a command server in a fresh temp directory.
func NewCommandServer(t *testing.T, respond Responder) *CommandServer {
	t.Helper()
	return startCommandServer(t, filepath.Join(shortTempDir(t), ".socket.sock"), respond, false)
}

// NewStallingServer accepts connections and never answers, for deadline
// tests.
func NewStallingServer(t *testing.T) *CommandServer {
	t.Helper()
	return startCommandServer(t, filepath.Join(shortTempDir(t), ".socket.sock"), nil, true)
}

func startCommandServer(t *testing.T, path string, respond Responder, stall bool) *CommandServer {
	t.Helper()

	ln, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("listen %s: %v", path, err)
	}

	s := &CommandServer{Path: path, respond: respond, stall: stall, listener: ln}
	s.wg.Add(1)
	go s.serve()
	t.Cleanup(s.Close)
	return s
}

func (s *CommandServer) serve() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		if s.stall {
			s.mu.Lock()
			s.held = append(s.held, conn)
			s.mu.Unlock()
			continue
		}
		s.handle(conn)
	}
}

func (s *CommandServer) handle(conn net.Conn) {
	defer conn.Close()

	data, err := io.ReadAll(conn)
	if err != nil {
		return
	}
	request := string(data)

	s.mu.Lock()
	s.requests = append(s.requests, request)
	s.mu.Unlock()

	if s.respond != nil {
		_, _ = io.WriteString(conn, s.respond(request))
	}
}

// Requests returns every request received so far, in order.
func (s *CommandServer) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.requests))
	copy(out, s.requests)
	return out
}

// Close stops the server and drops held connections.
func (s *CommandServer) Close() {
	_ = s.listener.Close()
	s.mu.Lock()
	for _, c := range s.held {
		_ = c.Close()
	}
	s.held = nil
	s.mu.Unlock()
	s.wg.Wait()
}

// EventServer imitates the event socket: it accepts connections and writes a
// fixed payload to each, then closes it.
type EventServer struct {
	Path string

	payload  []byte
	listener net.Listener
	wg       sync.WaitGroup
}

// NewEventServer serves the given lines, each terminated by "\n".
func NewEventServer(t *testing.T, lines ...string) *EventServer {
	t.Helper()
	payload := ""
	if len(lines) > 0 {
		payload = strings.Join(lines, "\n") + "\n"
	}
	return NewRawEventServer(t, []byte(payload))
}

// NewRawEventServer serves payload byte for byte.
func NewRawEventServer(t *testing.T, payload []byte) *EventServer {
	t.Helper()
	return startEventServer(t, filepath.Join(shortTempDir(t), ".socket2.sock"), payload)
}

func startEventServer(t *testing.T, path string, payload []byte) *EventServer {
	t.Helper()

	ln, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("listen %s: %v", path, err)
	}

	s := &EventServer{Path: path, payload: payload, listener: ln}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			_, _ = conn.Write(s.payload)
			_ = conn.Close()
		}
	}()
	t.Cleanup(s.Close)
	return s
}

// Close stops the server.
func (s *EventServer) Close() {
	_ = s.listener.Close()
	s.wg.Wait()
}

// Compositor bundles both fake sockets under the directory layout the real
// compositor uses.
type Compositor struct {
	RuntimeDir string
	Commands   *CommandServer
	Events     *EventServer
}

// NewCompositor creates <tmp>/hypr/<TestSignature>/.socket.sock and
// .socket2.sock.
func NewCompositor(t *testing.T, respond Responder, eventLines ...string) *Compositor {
	t.Helper()

	runtimeDir := shortTempDir(t)
	dir := filepath.Join(runtimeDir, "hypr", TestSignature)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}

	payload := ""
	if len(eventLines) > 0 {
		payload = strings.Join(eventLines, "\n") + "\n"
	}

	return &Compositor{
		RuntimeDir: runtimeDir,
		Commands:   startCommandServer(t, filepath.Join(dir, ".socket.sock"), respond, false),
		Events:     startEventServer(t, filepath.Join(dir, ".socket2.sock"), []byte(payload)),
	}
}

// Endpoint returns the endpoint pointing at both fake sockets.
func (c *Compositor) Endpoint() hypr.Endpoint {
	return hypr.EndpointFromPaths(c.Commands.Path, c.Events.Path)
}

// CreateTestWindow creates a live window with default values.
func CreateTestWindow(t *testing.T, address, class string, workspace int) hypr.Window {
	t.Helper()

	return hypr.Window{
		Address:      address,
		Mapped:       true,
		At:           [2]int{0, 0},
		Size:         [2]int{800, 600},
		Workspace:    hypr.WorkspaceRef{ID: workspace, Name: strconv.Itoa(workspace)},
		Class:        class,
		Title:        class + " window",
		InitialClass: class,
		InitialTitle: class + " window",
	}
}

// ClientsPayload encodes windows the way "j/clients" returns them.
func ClientsPayload(t *testing.T, windows ...hypr.Window) string {
	t.Helper()

	if windows == nil {
		windows = []hypr.Window{}
	}
	out, err := sonic.MarshalString(windows)
	if err != nil {
		t.Fatalf("encode clients: %v", err)
	}
	return out
}

// shortTempDir returns a temp dir with a short path; unix socket paths are
// limited to about 100 bytes and t.TempDir embeds the test name.
func shortTempDir(t *testing.T) string {
	t.Helper()

	dir, err := os.MkdirTemp("", "hypr")
	if err != nil {
		t.Fatalf("mkdtemp: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return dir
}

package hypr

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bytedance/sonic"
)

// WorkspaceRef identifies a workspace inside other objects.
type WorkspaceRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// FullscreenMode is the fullscreen state of a window. Older compositor
// releases report a bool, newer ones an integer mode (0 none, 1 maximized,
// 2 fullscreen, 3 both); both forms decode into this type.
type FullscreenMode int

// UnmarshalJSON accepts true/false as well as an integer mode.
func (m *FullscreenMode) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "true":
		*m = 2
		return nil
	case "false", "null":
		*m = 0
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("hypr: fullscreen value %s: %w", data, err)
	}
	*m = FullscreenMode(n)
	return nil
}

// Window is one entry of "j/clients": a live window as the compositor sees
// it.
type Window struct {
	Address        string         `json:"address"`
	Mapped         bool           `json:"mapped"`
	Hidden         bool           `json:"hidden"`
	At             [2]int         `json:"at"`
	Size           [2]int         `json:"size"`
	Workspace      WorkspaceRef   `json:"workspace"`
	Floating       bool           `json:"floating"`
	Pseudo         bool           `json:"pseudo"`
	Monitor        int            `json:"monitor"`
	Class          string         `json:"class"`
	Title          string         `json:"title"`
	InitialClass   string         `json:"initialClass"`
	InitialTitle   string         `json:"initialTitle"`
	PID            int            `json:"pid"`
	XWayland       bool           `json:"xwayland"`
	Pinned         bool           `json:"pinned"`
	Fullscreen     FullscreenMode `json:"fullscreen"`
	FocusHistoryID int            `json:"focusHistoryID"`
}

// Workspace is one entry of "j/workspaces".
type Workspace struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Monitor         string `json:"monitor"`
	MonitorID       int    `json:"monitorID"`
	Windows         int    `json:"windows"`
	HasFullscreen   bool   `json:"hasfullscreen"`
	LastWindow      string `json:"lastwindow"`
	LastWindowTitle string `json:"lastwindowtitle"`
}

// Monitor is one entry of "j/monitors".
type Monitor struct {
	ID               int          `json:"id"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Width            int          `json:"width"`
	Height           int          `json:"height"`
	RefreshRate      float64      `json:"refreshRate"`
	X                int          `json:"x"`
	Y                int          `json:"y"`
	ActiveWorkspace  WorkspaceRef `json:"activeWorkspace"`
	SpecialWorkspace WorkspaceRef `json:"specialWorkspace"`
	Scale            float64      `json:"scale"`
	Transform        int          `json:"transform"`
	Focused          bool         `json:"focused"`
	DPMSStatus       bool         `json:"dpmsStatus"`
	VRR              bool         `json:"vrr"`
}

// State is a point-in-time view of the compositor.
type State struct {
	Clients    []Window
	Workspaces []Workspace
	Monitors   []Monitor
	Active     *Window
}

// MonitorName returns the name of the monitor with the given ID, or "".
func (s *State) MonitorName(id int) string {
	for _, m := range s.Monitors {
		if m.ID == id {
			return m.Name
		}
	}
	return ""
}

// ParseClients decodes a "j/clients" payload.
func ParseClients(payload string) ([]Window, error) {
	var windows []Window
	if err := decodeJSON(payload, &windows); err != nil {
		return nil, fmt.Errorf("hypr: decode clients: %w", err)
	}
	return windows, nil
}

// ParseWorkspaces decodes a "j/workspaces" payload.
func ParseWorkspaces(payload string) ([]Workspace, error) {
	var workspaces []Workspace
	if err := decodeJSON(payload, &workspaces); err != nil {
		return nil, fmt.Errorf("hypr: decode workspaces: %w", err)
	}
	return workspaces, nil
}

// ParseMonitors decodes a "j/monitors" payload.
func ParseMonitors(payload string) ([]Monitor, error) {
	var monitors []Monitor
	if err := decodeJSON(payload, &monitors); err != nil {
		return nil, fmt.Errorf("hypr: decode monitors: %w", err)
	}
	return monitors, nil
}

// ParseActiveWindow decodes a "j/activewindow" payload. The compositor
// answers "{}" when nothing is focused; that yields nil.
func ParseActiveWindow(payload string) (*Window, error) {
	var w Window
	if err := decodeJSON(payload, &w); err != nil {
		return nil, fmt.Errorf("hypr: decode active window: %w", err)
	}
	if w.Address == "" {
		return nil, nil
	}
	return &w, nil
}

// decodeJSON rejects error-shaped replies before handing the payload to the
// JSON decoder, so the error names the compositor's message instead of a
// syntax offset.
func decodeJSON(payload string, v any) error {
	if err := CheckResponse(payload); err != nil {
		return err
	}
	return sonic.UnmarshalString(payload, v)
}

// Clients queries and decodes the live window list.
func (c *Client) Clients(ctx context.Context) ([]Window, error) {
	payload, err := c.ClientsJSON(ctx)
	if err != nil {
		return nil, err
	}
	return ParseClients(payload)
}

// Workspaces queries and decodes the workspace list.
func (c *Client) Workspaces(ctx context.Context) ([]Workspace, error) {
	payload, err := c.WorkspacesJSON(ctx)
	if err != nil {
		return nil, err
	}
	return ParseWorkspaces(payload)
}

// Monitors queries and decodes the monitor list.
func (c *Client) Monitors(ctx context.Context) ([]Monitor, error) {
	payload, err := c.MonitorsJSON(ctx)
	if err != nil {
		return nil, err
	}
	return ParseMonitors(payload)
}

// ActiveWindow queries the focused window; nil when nothing is focused.
func (c *Client) ActiveWindow(ctx context.Context) (*Window, error) {
	payload, err := c.ActiveWindowJSON(ctx)
	if err != nil {
		return nil, err
	}
	return ParseActiveWindow(payload)
}

// CaptureState runs the four queries in sequence. The result is not atomic:
// windows may open or close between queries.
func (c *Client) CaptureState(ctx context.Context) (*State, error) {
	clients, err := c.Clients(ctx)
	if err != nil {
		return nil, err
	}
	workspaces, err := c.Workspaces(ctx)
	if err != nil {
		return nil, err
	}
	monitors, err := c.Monitors(ctx)
	if err != nil {
		return nil, err
	}
	active, err := c.ActiveWindow(ctx)
	if err != nil {
		return nil, err
	}
	return &State{
		Clients:    clients,
		Workspaces: workspaces,
		Monitors:   monitors,
		Active:     active,
	}, nil
}

package hypr

import (
	"context"
	"fmt"
)

// Command templates. Each returns the exact bytes written to the socket.

// DispatchCommand returns "dispatch <op>".
func DispatchCommand(op string) string {
	return "dispatch " + op
}

// QueryJSONCommand returns "j/<key>".
func QueryJSONCommand(key string) string {
	return "j/" + key
}

// FocusWorkspaceCommand returns "dispatch workspace <n>".
func FocusWorkspaceCommand(workspace int) string {
	return DispatchCommand(fmt.Sprintf("workspace %d", workspace))
}

// MoveToWorkspaceCommand returns "dispatch movetoworkspace <n>".
func MoveToWorkspaceCommand(workspace int) string {
	return DispatchCommand(fmt.Sprintf("movetoworkspace %d", workspace))
}

// MoveWindowToWorkspaceSilentCommand moves a specific window without
// following it: "dispatch movetoworkspacesilent <n>,address:<addr>".
func MoveWindowToWorkspaceSilentCommand(address string, workspace int) string {
	return DispatchCommand(fmt.Sprintf("movetoworkspacesilent %d,address:%s", workspace, address))
}

// FocusWindowCommand returns "dispatch focuswindow address:<addr>".
func FocusWindowCommand(address string) string {
	return DispatchCommand("focuswindow address:" + address)
}

// MoveWindowCommand returns "dispatch movewindowpixel exact <x> <y>,<addr>".
func MoveWindowCommand(address string, x, y int) string {
	return DispatchCommand(fmt.Sprintf("movewindowpixel exact %d %d,%s", x, y, address))
}

// ResizeWindowCommand returns "dispatch resizewindowpixel exact <w> <h>,<addr>".
func ResizeWindowCommand(address string, w, h int) string {
	return DispatchCommand(fmt.Sprintf("resizewindowpixel exact %d %d,%s", w, h, address))
}

// ExecCommand returns "dispatch exec <program>".
func ExecCommand(program string) string {
	return DispatchCommand("exec " + program)
}

// ExecOnWorkspaceCommand launches program on a workspace without stealing
// focus: "dispatch exec [workspace <n> silent] <program>".
func ExecOnWorkspaceCommand(workspace int, program string) string {
	return DispatchCommand(fmt.Sprintf("exec [workspace %d silent] %s", workspace, program))
}

const (
	killActiveCommand     = "dispatch killactive"
	fullscreenCommand     = "dispatch fullscreen"
	toggleFloatingCommand = "dispatch togglefloating"
	reloadCommand         = "reload"
	clientsKey            = "clients"
	workspacesKey         = "workspaces"
	activeWindowKey       = "activewindow"
	monitorsKey           = "monitors"
)

// Dispatch sends "dispatch <op>".
func (c *Client) Dispatch(ctx context.Context, op string) (string, error) {
	return c.Send(ctx, DispatchCommand(op))
}

// QueryJSON sends "j/<key>" and returns the raw JSON text.
func (c *Client) QueryJSON(ctx context.Context, key string) (string, error) {
	return c.Send(ctx, QueryJSONCommand(key))
}

// FocusWorkspace switches to a workspace.
func (c *Client) FocusWorkspace(ctx context.Context, workspace int) (string, error) {
	return c.Send(ctx, FocusWorkspaceCommand(workspace))
}

// MoveToWorkspace moves the active window to a workspace.
func (c *Client) MoveToWorkspace(ctx context.Context, workspace int) (string, error) {
	return c.Send(ctx, MoveToWorkspaceCommand(workspace))
}

// MoveWindowToWorkspaceSilent moves the window at address to a workspace
// without changing focus.
func (c *Client) MoveWindowToWorkspaceSilent(ctx context.Context, address string, workspace int) (string, error) {
	return c.Send(ctx, MoveWindowToWorkspaceSilentCommand(address, workspace))
}

// FocusWindow focuses the window at address.
func (c *Client) FocusWindow(ctx context.Context, address string) (string, error) {
	return c.Send(ctx, FocusWindowCommand(address))
}

// CloseActiveWindow closes the active window.
func (c *Client) CloseActiveWindow(ctx context.Context) (string, error) {
	return c.Send(ctx, killActiveCommand)
}

// ToggleFullscreen toggles fullscreen for the active window.
func (c *Client) ToggleFullscreen(ctx context.Context) (string, error) {
	return c.Send(ctx, fullscreenCommand)
}

// ToggleFloating toggles floating for the active window.
func (c *Client) ToggleFloating(ctx context.Context) (string, error) {
	return c.Send(ctx, toggleFloatingCommand)
}

// MoveWindow moves the window at address to absolute pixel coordinates.
func (c *Client) MoveWindow(ctx context.Context, address string, x, y int) (string, error) {
	return c.Send(ctx, MoveWindowCommand(address, x, y))
}

// ResizeWindow resizes the window at address to an exact pixel size.
func (c *Client) ResizeWindow(ctx context.Context, address string, w, h int) (string, error) {
	return c.Send(ctx, ResizeWindowCommand(address, w, h))
}

// Exec runs program through the compositor.
func (c *Client) Exec(ctx context.Context, program string) (string, error) {
	return c.Send(ctx, ExecCommand(program))
}

// ExecOnWorkspace runs program on a workspace with the silent placement flag.
func (c *Client) ExecOnWorkspace(ctx context.Context, workspace int, program string) (string, error) {
	return c.Send(ctx, ExecOnWorkspaceCommand(workspace, program))
}

// Reload reloads the compositor configuration.
func (c *Client) Reload(ctx context.Context) (string, error) {
	return c.Send(ctx, reloadCommand)
}

// ClientsJSON returns the raw "j/clients" payload.
func (c *Client) ClientsJSON(ctx context.Context) (string, error) {
	return c.QueryJSON(ctx, clientsKey)
}

// WorkspacesJSON returns the raw "j/workspaces" payload.
func (c *Client) WorkspacesJSON(ctx context.Context) (string, error) {
	return c.QueryJSON(ctx, workspacesKey)
}

// ActiveWindowJSON returns the raw "j/activewindow" payload.
func (c *Client) ActiveWindowJSON(ctx context.Context) (string, error) {
	return c.QueryJSON(ctx, activeWindowKey)
}

// MonitorsJSON returns the raw "j/monitors" payload.
func (c *Client) MonitorsJSON(ctx context.Context) (string, error) {
	return c.QueryJSON(ctx, monitorsKey)
}

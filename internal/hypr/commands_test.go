package hypr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandTemplates(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"dispatch", DispatchCommand("exec kitty"), "dispatch exec kitty"},
		{"query json", QueryJSONCommand("clients"), "j/clients"},
		{"focus workspace", FocusWorkspaceCommand(3), "dispatch workspace 3"},
		{"move to workspace", MoveToWorkspaceCommand(7), "dispatch movetoworkspace 7"},
		{"move silent", MoveWindowToWorkspaceSilentCommand("0xabc", 2), "dispatch movetoworkspacesilent 2,address:0xabc"},
		{"focus window", FocusWindowCommand("0xabc"), "dispatch focuswindow address:0xabc"},
		{"move pixel", MoveWindowCommand("address:0xabc", 10, -20), "dispatch movewindowpixel exact 10 -20,address:0xabc"},
		{"resize pixel", ResizeWindowCommand("address:0xabc", 800, 600), "dispatch resizewindowpixel exact 800 600,address:0xabc"},
		{"exec", ExecCommand("firefox --new-window"), "dispatch exec firefox --new-window"},
		{"exec on workspace", ExecOnWorkspaceCommand(4, "kitty"), "dispatch exec [workspace 4 silent] kitty"},
		{"no escaping", DispatchCommand("exec a;b\n"), "dispatch exec a;b\n"},
		{"empty dispatch", DispatchCommand(""), "dispatch "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestOpLabel(t *testing.T) {
	tests := []struct {
		command string
		want    string
	}{
		{"", "empty"},
		{"   ", "empty"},
		{"j/clients", "j/clients"},
		{"dispatch exec kitty", "dispatch:exec"},
		{"dispatch", "dispatch"},
		{"reload", "reload"},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			assert.Equal(t, tt.want, opLabel(tt.command))
		})
	}
}

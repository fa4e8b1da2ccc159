package hypr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clientsFixture = `[
  {
    "address": "0x55d1",
    "mapped": true,
    "hidden": false,
    "at": [10, 40],
    "size": [1280, 720],
    "workspace": {"id": 2, "name": "2"},
    "floating": true,
    "monitor": 0,
    "class": "firefox",
    "title": "Mozilla Firefox",
    "initialClass": "firefox",
    "initialTitle": "Mozilla Firefox",
    "pid": 4242,
    "xwayland": false,
    "pinned": false,
    "fullscreen": 0,
    "focusHistoryID": 1
  },
  {
    "address": "0x55d2",
    "mapped": true,
    "at": [0, 0],
    "size": [800, 600],
    "workspace": {"id": 1, "name": "1"},
    "class": "kitty",
    "title": "zsh",
    "initialClass": "kitty",
    "initialTitle": "kitty",
    "fullscreen": true
  }
]`

func TestParseClients(t *testing.T) {
	windows, err := ParseClients(clientsFixture)
	require.NoError(t, err)
	require.Len(t, windows, 2)

	ff := windows[0]
	assert.Equal(t, "0x55d1", ff.Address)
	assert.Equal(t, [2]int{10, 40}, ff.At)
	assert.Equal(t, [2]int{1280, 720}, ff.Size)
	assert.Equal(t, WorkspaceRef{ID: 2, Name: "2"}, ff.Workspace)
	assert.True(t, ff.Floating)
	assert.Equal(t, 4242, ff.PID)
	assert.Equal(t, FullscreenMode(0), ff.Fullscreen)

	assert.Equal(t, FullscreenMode(2), windows[1].Fullscreen)
}

func TestParseClientsRejectsErrorReply(t *testing.T) {
	_, err := ParseClients("unknown request")
	assert.ErrorIs(t, err, ErrResponse)
}

func TestParseClientsMalformed(t *testing.T) {
	_, err := ParseClients(`[{"address": `)
	assert.Error(t, err)
}

func TestParseActiveWindow(t *testing.T) {
	w, err := ParseActiveWindow("{}")
	require.NoError(t, err)
	assert.Nil(t, w)

	w, err = ParseActiveWindow(`{"address":"0x1","class":"kitty","workspace":{"id":3,"name":"3"}}`)
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, "kitty", w.Class)
	assert.Equal(t, 3, w.Workspace.ID)
}

func TestParseWorkspacesAndMonitors(t *testing.T) {
	ws, err := ParseWorkspaces(`[{"id":1,"name":"1","monitor":"DP-1","monitorID":0,"windows":2,"hasfullscreen":false}]`)
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, "DP-1", ws[0].Monitor)
	assert.Equal(t, 2, ws[0].Windows)

	mons, err := ParseMonitors(`[{"id":0,"name":"DP-1","width":2560,"height":1440,"refreshRate":143.9,"focused":true,"activeWorkspace":{"id":1,"name":"1"}}]`)
	require.NoError(t, err)
	require.Len(t, mons, 1)
	assert.Equal(t, 2560, mons[0].Width)
	assert.True(t, mons[0].Focused)

	state := &State{Monitors: mons}
	assert.Equal(t, "DP-1", state.MonitorName(0))
	assert.Equal(t, "", state.MonitorName(9))
}

func TestFullscreenModeUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    FullscreenMode
		wantErr bool
	}{
		{"true", 2, false},
		{"false", 0, false},
		{"null", 0, false},
		{"1", 1, false},
		{"3", 3, false},
		{`"x"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var m FullscreenMode
			err := m.UnmarshalJSON([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m)
		})
	}
}

package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/hyprsession/internal/hypr"
	"github.com/GriffinCanCode/hyprsession/internal/infrastructure/monitoring"
)

type stubSource struct {
	state *hypr.State
	err   error
}

func (s stubSource) CaptureState(context.Context) (*hypr.State, error) {
	return s.state, s.err
}

func liveWindow(address, class string, ws int) hypr.Window {
	return hypr.Window{
		Address:      address,
		Mapped:       true,
		At:           [2]int{100, 50},
		Size:         [2]int{1200, 800},
		Workspace:    hypr.WorkspaceRef{ID: ws, Name: "ws"},
		Class:        class,
		Title:        class + " title",
		InitialClass: class,
		InitialTitle: class,
	}
}

func sampleSnapshot() *Snapshot {
	snap := NewSnapshot(time.Date(2024, 3, 9, 10, 30, 0, 0, time.UTC))
	snap.Clients = []ClientDescriptor{
		{
			Class:        "firefox",
			Title:        "Mozilla Firefox, Start Page",
			InitialClass: "firefox",
			Workspace:    WorkspaceRef{ID: 2, Name: "web"},
			At:           [2]int{0, 30},
			Size:         [2]int{1920, 1050},
			Monitor:      "DP-1",
		},
		{
			Class:     "kitty",
			Title:     "zsh",
			Workspace: WorkspaceRef{ID: 1, Name: "1"},
			At:        [2]int{600, 300},
			Size:      [2]int{800, 500},
			Floating:  true,
		},
	}
	return snap
}

func TestCapture(t *testing.T) {
	hidden := liveWindow("0x3", "spotify", 4)
	hidden.Hidden = true
	unmapped := liveWindow("0x4", "xdg-desktop-portal", 1)
	unmapped.Mapped = false
	ff := liveWindow("0x1", "firefox", 2)
	ff.Monitor = 1

	src := stubSource{state: &hypr.State{
		Clients: []hypr.Window{
			ff,
			liveWindow("0x2", "kitty", 1),
			hidden,
			unmapped,
			liveWindow("0x5", "org.gnome.Calculator", 3),
		},
		Monitors: []hypr.Monitor{{ID: 0, Name: "eDP-1"}, {ID: 1, Name: "DP-1"}},
	}}
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	snap, err := Capture(context.Background(), src, CaptureOptions{
		IgnoreClasses: []string{"org.gnome.*"},
		Now:           func() time.Time { return at },
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"firefox", "kitty"}, snap.Classes())
	assert.Equal(t, CurrentVersion, snap.Version)
	assert.Equal(t, at, snap.CreatedAt)
	assert.Equal(t, "DP-1", snap.Clients[0].Monitor)
	assert.Equal(t, "eDP-1", snap.Clients[1].Monitor)
	assert.Equal(t, WorkspaceRef{ID: 2, Name: "ws"}, snap.Clients[0].Workspace)
}

func TestCaptureErrors(t *testing.T) {
	_, err := Capture(context.Background(), stubSource{err: errors.New("socket gone")}, CaptureOptions{})
	assert.ErrorContains(t, err, "socket gone")

	_, err = Capture(context.Background(), stubSource{state: &hypr.State{}}, CaptureOptions{
		IgnoreClasses: []string{"[unclosed"},
	})
	assert.ErrorContains(t, err, "invalid ignore pattern")
}

func TestLaunchName(t *testing.T) {
	assert.Equal(t, "Brave-browser", ClientDescriptor{Class: "brave", InitialClass: "Brave-browser"}.LaunchName())
	assert.Equal(t, "kitty", ClientDescriptor{Class: "kitty"}.LaunchName())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Snapshot)
		wantErr string
	}{
		{"valid", func(*Snapshot) {}, ""},
		{"future version", func(s *Snapshot) { s.Version = CurrentVersion + 1 }, "unsupported snapshot version"},
		{"zero version", func(s *Snapshot) { s.Version = 0 }, "unsupported snapshot version"},
		{"no class", func(s *Snapshot) { s.Clients[1].Class = "" }, "client 1 has no class"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := sampleSnapshot()
			tt.mutate(snap)
			err := snap.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path       string
		format     Format
		compressed bool
		wantErr    bool
	}{
		{"session.json", FormatJSON, false, false},
		{"/a/b/Session.JSON", FormatJSON, false, false},
		{"session.yaml", FormatYAML, false, false},
		{"session.yml.gz", FormatYAML, true, false},
		{"session.toml", FormatTOML, false, false},
		{"session.json.gz", FormatJSON, true, false},
		{"session.txt", "", false, true},
		{"session.gz", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, compressed, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.format, format)
			assert.Equal(t, tt.compressed, compressed)
		})
	}
}

func TestStoreSaveLoad(t *testing.T) {
	for _, name := range []string{
		"session.json",
		"session.yaml",
		"session.toml",
		"session.json.gz",
		"session.yml.gz",
		"session.toml.gz",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			store := NewStore(path)
			want := sampleSnapshot()

			require.NoError(t, store.Save(want))

			got, err := store.Load()
			require.NoError(t, err)
			assert.Equal(t, want.ID, got.ID)
			assert.Equal(t, want.Version, got.Version)
			assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
			assert.Equal(t, want.Clients, got.Clients)
		})
	}
}

func TestStoreSaveReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	store := NewStore(path)

	first := sampleSnapshot()
	require.NoError(t, store.Save(first))
	second := sampleSnapshot()
	second.Clients = second.Clients[:1]
	require.NoError(t, store.Save(second))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
	assert.Len(t, got.Clients, 1)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestStoreLoadMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestStoreLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json.gz")
	require.NoError(t, os.WriteFile(path, []byte("not gzip"), 0o644))

	_, err := NewStore(path).Load()
	assert.ErrorContains(t, err, "decompress")
}

func TestStoreRecordsMetrics(t *testing.T) {
	metrics := monitoring.NewMetrics()
	store := NewStore(filepath.Join(t.TempDir(), "session.json")).WithMetrics(metrics)

	require.NoError(t, store.Save(sampleSnapshot()))

	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.SnapshotsSaved))
	assert.Equal(t, 2.0, promtest.ToFloat64(metrics.SnapshotWindows))
}

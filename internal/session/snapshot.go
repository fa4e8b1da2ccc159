package session

import (
	"fmt"
	"time"

	"github.com/GriffinCanCode/hyprsession/internal/hypr"
	"github.com/GriffinCanCode/hyprsession/internal/shared/id"
)

// CurrentVersion is the snapshot layout written by this package.
const CurrentVersion = 1

// WorkspaceRef is the saved workspace of a client.
type WorkspaceRef struct {
	ID   int    `json:"id" yaml:"id" toml:"id"`
	Name string `json:"name" yaml:"name" toml:"name"`
}

// ClientDescriptor is the saved form of one window.
type ClientDescriptor struct {
	Class        string       `json:"class" yaml:"class" toml:"class"`
	Title        string       `json:"title" yaml:"title" toml:"title"`
	InitialClass string       `json:"initialClass,omitempty" yaml:"initialClass,omitempty" toml:"initialClass,omitempty"`
	InitialTitle string       `json:"initialTitle,omitempty" yaml:"initialTitle,omitempty" toml:"initialTitle,omitempty"`
	Workspace    WorkspaceRef `json:"workspace" yaml:"workspace" toml:"workspace"`
	At           [2]int       `json:"at" yaml:"at" toml:"at"`
	Size         [2]int       `json:"size" yaml:"size" toml:"size"`
	Floating     bool         `json:"floating" yaml:"floating" toml:"floating"`
	Fullscreen   int          `json:"fullscreen" yaml:"fullscreen" toml:"fullscreen"`
	Monitor      string       `json:"monitor,omitempty" yaml:"monitor,omitempty" toml:"monitor,omitempty"`
}

// Snapshot is a saved session.
type Snapshot struct {
	ID        id.SnapshotID      `json:"id" yaml:"id" toml:"id"`
	Version   int                `json:"version" yaml:"version" toml:"version"`
	CreatedAt time.Time          `json:"createdAt" yaml:"createdAt" toml:"createdAt"`
	Clients   []ClientDescriptor `json:"clients" yaml:"clients" toml:"clients"`
}

// NewSnapshot creates an empty snapshot with a fresh ID.
func NewSnapshot(createdAt time.Time) *Snapshot {
	return &Snapshot{
		ID:        id.NewSnapshotID(),
		Version:   CurrentVersion,
		CreatedAt: createdAt.UTC(),
		Clients:   []ClientDescriptor{},
	}
}

// DescriptorFromWindow converts a live window. monitor is the name of the
// window's monitor, or "" if unknown.
func DescriptorFromWindow(w hypr.Window, monitor string) ClientDescriptor {
	return ClientDescriptor{
		Class:        w.Class,
		Title:        w.Title,
		InitialClass: w.InitialClass,
		InitialTitle: w.InitialTitle,
		Workspace:    WorkspaceRef{ID: w.Workspace.ID, Name: w.Workspace.Name},
		At:           w.At,
		Size:         w.Size,
		Floating:     w.Floating,
		Fullscreen:   int(w.Fullscreen),
		Monitor:      monitor,
	}
}

// LaunchName is the name a missing client is launched by: the initial class
// when known, otherwise the class.
func (d ClientDescriptor) LaunchName() string {
	if d.InitialClass != "" {
		return d.InitialClass
	}
	return d.Class
}

// Validate checks that a loaded snapshot can be restored.
func (s *Snapshot) Validate() error {
	if s.Version < 1 || s.Version > CurrentVersion {
		return fmt.Errorf("session: unsupported snapshot version %d", s.Version)
	}
	for i, c := range s.Clients {
		if c.Class == "" && c.InitialClass == "" {
			return fmt.Errorf("session: client %d has no class", i)
		}
	}
	return nil
}

// Classes returns the class of every client, in order.
func (s *Snapshot) Classes() []string {
	out := make([]string, len(s.Clients))
	for i, c := range s.Clients {
		out[i] = c.Class
	}
	return out
}

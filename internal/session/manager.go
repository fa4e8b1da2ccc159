package session

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Stats describes what a Manager has done in this process.
type Stats struct {
	Path       string
	LastSaved  *time.Time
	LastLoaded *time.Time
	LastID     string
}

// Manager ties capture and storage together: Save captures the live layout
// and writes it, Load reads it back.
type Manager struct {
	source StateSource
	store  *Store
	opts   CaptureOptions

	mu         sync.Mutex
	lastSaved  *time.Time
	lastLoaded *time.Time
	lastID     string
}

// NewManager creates a session manager
func NewManager(source StateSource, store *Store, opts CaptureOptions) *Manager {
	return &Manager{source: source, store: store, opts: opts}
}

// Save captures the current layout and persists it.
func (m *Manager) Save(ctx context.Context) (*Snapshot, error) {
	snap, err := Capture(ctx, m.source, m.opts)
	if err != nil {
		return nil, err
	}
	if err := m.store.Save(snap); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	m.mu.Lock()
	now := time.Now()
	m.lastSaved = &now
	m.lastID = snap.ID.String()
	m.mu.Unlock()

	return snap, nil
}

// Load reads the saved snapshot.
func (m *Manager) Load() (*Snapshot, error) {
	snap, err := m.store.Load()
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	now := time.Now()
	m.lastLoaded = &now
	m.lastID = snap.ID.String()
	m.mu.Unlock()

	return snap, nil
}

// Stats returns manager statistics
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Stats{
		Path:       m.store.Path(),
		LastSaved:  m.lastSaved,
		LastLoaded: m.lastLoaded,
		LastID:     m.lastID,
	}
}

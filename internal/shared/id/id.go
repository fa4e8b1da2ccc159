// Package id generates the identifiers attached to snapshots and restore
// runs.
//
// IDs are ULIDs, so they sort by creation time, with a short type prefix
// (snap_*, run_*) that keeps logs readable.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// SnapshotID identifies a saved session snapshot
type SnapshotID string

// RunID identifies one restoration run
type RunID string

const (
	SnapshotPrefix = "snap"
	RunPrefix      = "run"
)

// Generator generates ULIDs with optional prefixes
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the process-wide generator
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a generator backed by crypto/rand, made monotonic so
// IDs generated within the same millisecond still sort in creation order.
func NewGenerator() *Generator {
	return NewGeneratorWithEntropy(ulid.Monotonic(rand.Reader, 0))
}

// NewGeneratorWithEntropy creates a generator with a custom entropy source.
// Useful for deterministic tests.
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	return g.GenerateAt(time.Now())
}

// GenerateAt creates a ULID carrying the given timestamp
func (g *Generator) GenerateAt(t time.Time) ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(t), g.entropy)
}

// GenerateWithPrefix creates a prefixed ULID string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.Generate().String())
}

// NewSnapshotID generates a snapshot ID
func NewSnapshotID() SnapshotID {
	return SnapshotID(Default().GenerateWithPrefix(SnapshotPrefix))
}

// NewRunID generates a restore run ID
func NewRunID() RunID {
	return RunID(Default().GenerateWithPrefix(RunPrefix))
}

func (id SnapshotID) String() string { return string(id) }
func (id RunID) String() string      { return string(id) }

// Time returns the creation time encoded in the snapshot ID.
func (id SnapshotID) Time() (time.Time, error) {
	return Timestamp(string(id))
}

// IsValid reports whether s is a ULID, with or without a prefix.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Parse parses a ULID, stripping a "<prefix>_" if present.
func Parse(s string) (ulid.ULID, error) {
	if _, rest, ok := strings.Cut(s, "_"); ok {
		s = rest
	}
	return ulid.Parse(s)
}

// Timestamp extracts the timestamp from a ULID
func Timestamp(s string) (time.Time, error) {
	parsed, err := Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}

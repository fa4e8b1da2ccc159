package session

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/gzip"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/hyprsession/internal/infrastructure/logging"
	"github.com/GriffinCanCode/hyprsession/internal/infrastructure/monitoring"
)

// ErrNoSnapshot is returned by Load when the snapshot file does not exist.
var ErrNoSnapshot = errors.New("session: no snapshot saved")

// Format is a snapshot encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

const gzipExt = ".gz"

// FormatFromPath derives the encoding from a file name: "session.json",
// "session.yaml.gz" and so on.
func FormatFromPath(path string) (format Format, compressed bool, err error) {
	name := strings.ToLower(filepath.Base(path))
	if strings.HasSuffix(name, gzipExt) {
		compressed = true
		name = strings.TrimSuffix(name, gzipExt)
	}

	switch filepath.Ext(name) {
	case ".json":
		return FormatJSON, compressed, nil
	case ".yaml", ".yml":
		return FormatYAML, compressed, nil
	case ".toml":
		return FormatTOML, compressed, nil
	}
	return "", false, fmt.Errorf("session: unsupported snapshot file %q", path)
}

// Marshal encodes a snapshot.
func Marshal(snap *Snapshot, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return sonic.ConfigStd.MarshalIndent(snap, "", "  ")
	case FormatYAML:
		return yaml.Marshal(snap)
	case FormatTOML:
		return toml.Marshal(snap)
	}
	return nil, fmt.Errorf("session: unknown format %q", format)
}

// Unmarshal decodes a snapshot.
func Unmarshal(data []byte, format Format) (*Snapshot, error) {
	var snap Snapshot
	var err error
	switch format {
	case FormatJSON:
		err = sonic.ConfigStd.Unmarshal(data, &snap)
	case FormatYAML:
		err = yaml.Unmarshal(data, &snap)
	case FormatTOML:
		err = toml.Unmarshal(data, &snap)
	default:
		return nil, fmt.Errorf("session: unknown format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// Store reads and writes one snapshot file.
type Store struct {
	path    string
	logger  *logging.Logger
	metrics *monitoring.Metrics
}

// NewStore creates a store for path. The format is checked on each call.
func NewStore(path string) *Store {
	return &Store{path: path, logger: logging.NewNop()}
}

// WithLogger adds logging to the store.
func (s *Store) WithLogger(logger *logging.Logger) *Store {
	s.logger = logging.OrNop(logger).Named("session.store")
	return s
}

// WithMetrics adds metrics tracking to the store.
func (s *Store) WithMetrics(metrics *monitoring.Metrics) *Store {
	s.metrics = metrics
	return s
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

// Save writes snap, replacing any previous snapshot atomically.
func (s *Store) Save(snap *Snapshot) error {
	format, compressed, err := FormatFromPath(s.path)
	if err != nil {
		return err
	}

	data, err := Marshal(snap, format)
	if err != nil {
		return fmt.Errorf("session: encode snapshot: %w", err)
	}
	if compressed {
		if data, err = compress(data); err != nil {
			return fmt.Errorf("session: compress snapshot: %w", err)
		}
	}

	if err := writeAtomic(s.path, data); err != nil {
		return fmt.Errorf("session: write %s: %w", s.path, err)
	}

	s.metrics.RecordSnapshotSaved(len(snap.Clients))
	s.logger.Info("snapshot saved",
		zap.String("id", snap.ID.String()),
		zap.String("path", s.path),
		zap.Int("clients", len(snap.Clients)),
	)
	return nil
}

// Load reads and validates the snapshot.
func (s *Store) Load() (*Snapshot, error) {
	format, compressed, err := FormatFromPath(s.path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoSnapshot, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("session: read %s: %w", s.path, err)
	}

	if compressed {
		if data, err = decompress(data); err != nil {
			return nil, fmt.Errorf("session: decompress %s: %w", s.path, err)
		}
	}

	snap, err := Unmarshal(data, format)
	if err != nil {
		return nil, fmt.Errorf("session: decode %s: %w", s.path, err)
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	s.logger.Debug("snapshot loaded",
		zap.String("id", snap.ID.String()),
		zap.Int("clients", len(snap.Clients)),
	)
	return snap, nil
}

func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// writeAtomic writes to a sibling temp file and renames it over path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

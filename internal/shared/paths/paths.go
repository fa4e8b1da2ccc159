package paths

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under each XDG base directory.
const AppName = "hyprsession"

const (
	// SnapshotFile is the default snapshot file name.
	SnapshotFile = "session.json"
	// AliasFile is the optional launch alias table.
	AliasFile = "aliases.yaml"
)

// Base resolves an XDG base directory: the variable's value when set,
// otherwise home joined with fallback.
func Base(xdgValue, home string, fallback ...string) string {
	if xdgValue != "" {
		return xdgValue
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// StateDir returns $XDG_STATE_HOME/hyprsession, falling back to
// ~/.local/state/hyprsession.
func StateDir(stateHome, home string) string {
	return filepath.Join(Base(stateHome, home, ".local", "state"), AppName)
}

// ConfigDir returns $XDG_CONFIG_HOME/hyprsession, falling back to
// ~/.config/hyprsession.
func ConfigDir(configHome, home string) string {
	return filepath.Join(Base(configHome, home, ".config"), AppName)
}

// DefaultSnapshot returns the snapshot path used when none is configured.
func DefaultSnapshot(stateHome, home string) string {
	return filepath.Join(StateDir(stateHome, home), SnapshotFile)
}

// DefaultAliases returns the alias file path if that file exists, or "".
func DefaultAliases(configHome, home string) string {
	path := filepath.Join(ConfigDir(configHome, home), AliasFile)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

package restore

import (
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// Aliases maps a lowercased window class to the program that launches it.
type Aliases map[string]string

// DefaultAliases covers classes whose launcher name differs from the class.
func DefaultAliases() Aliases {
	return Aliases{
		"brave-browser": "brave",
		"code":          "code",
		"google-chrome": "google-chrome-stable",
	}
}

// Resolve lowercases name and substitutes its alias, if any.
func (a Aliases) Resolve(name string) string {
	lower := strings.ToLower(name)
	if cmd, ok := a[lower]; ok {
		return cmd
	}
	return lower
}

// ResolveCommand resolves name with the default aliases.
func ResolveCommand(name string) string {
	return DefaultAliases().Resolve(name)
}

// Merge returns a copy of a with other's entries added on top. Keys of other
// are lowercased.
func (a Aliases) Merge(other Aliases) Aliases {
	out := make(Aliases, len(a)+len(other))
	maps.Copy(out, a)
	for k, v := range other {
		out[strings.ToLower(k)] = v
	}
	return out
}

// LoadAliases reads a YAML mapping of class to command and merges it over
// the defaults. An empty path returns the defaults.
//
//	org.wezfurlong.wezterm: wezterm
//	jetbrains-idea: idea
func LoadAliases(path string) (Aliases, error) {
	defaults := DefaultAliases()
	if path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("restore: read aliases: %w", err)
	}

	var extra map[string]string
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("restore: parse aliases %s: %w", path, err)
	}
	for class, cmd := range extra {
		if strings.TrimSpace(cmd) == "" {
			return nil, fmt.Errorf("restore: alias for %q is empty", class)
		}
	}
	return defaults.Merge(extra), nil
}

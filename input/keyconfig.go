package input

import (
	"fmt"
	"os"
	"sort"

	toml "github.com/pelletier/go-toml"
)

// keymapFile is the on-disk shape of a bindings file:
//
//	[bindings]
//	jump = ["space", "w"]
//	move-left = ["left", "a"]
type keymapFile struct {
	Bindings map[string][]string `toml:"bindings"`
}

// ParseBindings parses TOML keymap data into virtual → physical name lists
// Physical names are not resolved here; Bind drops unresolvable ones later
func ParseBindings(data []byte) (map[string][]string, error) {
	var file keymapFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	out := make(map[string][]string, len(file.Bindings))
	for virtual, physical := range file.Bindings {
		if virtual == "" {
			return nil, fmt.Errorf("keymap: empty virtual name")
		}
		if len(physical) == 0 {
			return nil, fmt.Errorf("keymap: virtual %q has no physical keys", virtual)
		}
		out[virtual] = physical
	}
	return out, nil
}

// LoadBindingsFile reads and parses a TOML keymap file
func LoadBindingsFile(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap read: %w", err)
	}
	bindings, err := ParseBindings(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return bindings, nil
}

// UnresolvedNames returns the physical names in bindings that the key space
// cannot resolve, sorted. Binding still succeeds without them; callers use
// this to surface typos in keymap files.
func UnresolvedNames(keys *KeySpace, bindings map[string][]string) []string {
	seen := make(map[string]struct{})
	for _, physical := range bindings {
		for _, name := range physical {
			if keys.NameIndex(name) == NotFound {
				seen[name] = struct{}{}
			}
		}
	}

	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

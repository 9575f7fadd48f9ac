package world

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Establishment describes a single enterable building: its type drives
// the interior handler and background art, its menu lists the actions
// shown to the player.
type Establishment struct {
	Type string   `yaml:"type"`
	Name string   `yaml:"name"`
	Menu []string `yaml:"menu"`
}

// directoryFile is the on-disk YAML shape: map letter -> establishment.
type directoryFile struct {
	Establishments map[string]Establishment `yaml:"establishments"`
}

// Directory maps map letters to establishment definitions.
type Directory struct {
	byKey map[byte]Establishment
}

// ParseDirectory parses establishment YAML data. Menu entries that only
// restate how to leave ("Exit", "Esc") are dropped; leaving is a key
// binding, not a menu action.
func ParseDirectory(data []byte) (*Directory, error) {
	var f directoryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("world: establishments yaml: %w", err)
	}

	d := &Directory{byKey: make(map[byte]Establishment, len(f.Establishments))}
	for key, est := range f.Establishments {
		if len(key) != 1 {
			return nil, fmt.Errorf("world: establishment key %q must be a single letter", key)
		}
		if est.Type == "" {
			return nil, fmt.Errorf("world: establishment %q has no type", key)
		}
		est.Menu = sanitizeMenu(est.Menu)
		d.byKey[strings.ToLower(key)[0]] = est
	}
	return d, nil
}

// LoadDirectory reads and parses an establishments file.
func LoadDirectory(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("world: cannot read establishments %s: %w", path, err)
	}
	return ParseDirectory(data)
}

func sanitizeMenu(menu []string) []string {
	out := make([]string, 0, len(menu))
	for _, item := range menu {
		lower := strings.ToLower(item)
		if strings.Contains(lower, "exit") || strings.Contains(lower, "esc") {
			continue
		}
		out = append(out, item)
	}
	return out
}

// ByTile resolves the establishment behind a map tile, if any.
func (d *Directory) ByTile(t Tile) (Establishment, bool) {
	key := t.Key()
	if key == 0 {
		return Establishment{}, false
	}
	est, ok := d.byKey[key]
	return est, ok
}

// ByType finds an establishment by its type string.
func (d *Directory) ByType(typ string) (Establishment, bool) {
	for _, est := range d.byKey {
		if est.Type == typ {
			return est, true
		}
	}
	return Establishment{}, false
}

// Types returns all establishment types, in no particular order.
func (d *Directory) Types() []string {
	out := make([]string, 0, len(d.byKey))
	for _, est := range d.byKey {
		out = append(out, est.Type)
	}
	return out
}

// DisplayName returns the establishment name, falling back to a
// title-cased type when no name is configured.
func (e Establishment) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	if e.Type == "" {
		return ""
	}
	return strings.ToUpper(e.Type[:1]) + e.Type[1:]
}

package datatable

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Manifest names the fixed set of table documents a run loads. It backs the
// CLI's untyped path; typed consumers declare Load[T] entries in code instead.
type Manifest struct {
	Tables []ManifestEntry `yaml:"tables"`
}

// ManifestEntry points at one table document. Name optionally overrides the
// logical name derived from the path.
type ManifestEntry struct {
	Path string `yaml:"path"`
	Name string `yaml:"name,omitempty"`
}

// ParseManifest decodes a YAML manifest and rejects empty or pathless entries.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("manifest: %w", err)
	}
	if len(m.Tables) == 0 {
		return Manifest{}, fmt.Errorf("manifest: no tables listed")
	}
	for i, e := range m.Tables {
		if e.Path == "" {
			return Manifest{}, fmt.Errorf("manifest: tables[%d] has no path", i)
		}
	}
	return m, nil
}

// UntypedRow is the row shape of manifest-driven loads: every field decodes
// generically. Defaults overlay and the container contract behave exactly as
// for typed rows.
type UntypedRow = map[string]any

// Entries builds untyped load entries for every table in the manifest.
func (m Manifest) Entries() []Entry {
	out := make([]Entry, 0, len(m.Tables))
	for _, e := range m.Tables {
		name := e.Name
		if name == "" {
			name = TableNameFromPath(e.Path)
		}
		out = append(out, LoadAs[UntypedRow](e.Path, name))
	}
	return out
}

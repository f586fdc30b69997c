package tablegen

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Kind names the table layout a TSV is compiled into.
type Kind string

const (
	KindAutonym Kind = "autonym"
	KindScript  Kind = "script"
	KindLCID    Kind = "lcid"
)

// Table describes one TSV input and the Go file generated from it.
type Table struct {
	Kind    Kind   `yaml:"kind"`
	Input   string `yaml:"input"`
	Output  string `yaml:"output"`
	Package string `yaml:"package"`
}

// Manifest lists the tables to compile. Relative paths are resolved against
// Dir, the directory of the manifest file.
type Manifest struct {
	Tables []Table `yaml:"tables"`
	Dir    string  `yaml:"-"`
}

// LoadManifest reads and validates a YAML manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tablegen: read manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("tablegen: %s: %w", path, err)
	}
	m.Dir = filepath.Dir(path)
	return m, nil
}

// ParseManifest decodes and validates manifest YAML. Dir is left empty.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if len(m.Tables) == 0 {
		return fmt.Errorf("no tables listed")
	}
	kinds := make(map[Kind]bool, len(m.Tables))
	outputs := make(map[string]bool, len(m.Tables))
	for i, t := range m.Tables {
		switch t.Kind {
		case KindAutonym, KindScript, KindLCID:
		default:
			return fmt.Errorf("table %d: unknown kind %q", i, t.Kind)
		}
		if kinds[t.Kind] {
			return fmt.Errorf("table %d: kind %q listed twice", i, t.Kind)
		}
		kinds[t.Kind] = true
		if t.Input == "" || t.Output == "" || t.Package == "" {
			return fmt.Errorf("table %d (%s): input, output and package are required", i, t.Kind)
		}
		if outputs[t.Output] {
			return fmt.Errorf("table %d (%s): output %q listed twice", i, t.Kind, t.Output)
		}
		outputs[t.Output] = true
	}
	if kinds[KindLCID] && !kinds[KindAutonym] {
		return fmt.Errorf("lcid table requires the autonym table for its cross-check")
	}
	return nil
}

func (m *Manifest) path(p string) string {
	if filepath.IsAbs(p) || m.Dir == "" {
		return p
	}
	return filepath.Join(m.Dir, p)
}

package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest is the parsed contents of an optional pakhi.yaml project file:
// an entry file, extra library search roots, and a platform override for
// testing _প্ল্যাটফর্ম.
type Manifest struct {
	Path         string   `yaml:"-"`
	Entry        string   `yaml:"entry"`
	LibraryPaths []string `yaml:"library_paths"`
	Platform     string   `yaml:"platform"`
}

// LoadManifest reads and parses pakhi.yaml from dir. A missing manifest
// is not an error: it returns (nil, nil), since `pakhi <file>` must keep
// working standalone.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "pakhi.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("driver: read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("driver: parse manifest %s: %w", path, err)
	}
	m.Path = path
	for i, lp := range m.LibraryPaths {
		if !filepath.IsAbs(lp) {
			m.LibraryPaths[i] = filepath.Join(dir, lp)
		}
	}
	return &m, nil
}

// ResolveEntry returns the manifest's entry file. A relative entry is
// joined onto the manifest's own directory; the result is absolute only
// when that directory (or the entry itself) is.
func (m *Manifest) ResolveEntry() (string, error) {
	if m == nil || m.Entry == "" {
		return "", fmt.Errorf("driver: manifest has no entry file configured")
	}
	if filepath.IsAbs(m.Entry) {
		return m.Entry, nil
	}
	return filepath.Join(filepath.Dir(m.Path), m.Entry), nil
}

package navigation

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Load reads and validates a YAML menu file from fs.
func Load(fs afero.Fs, path string) (Menu, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return Menu{}, fmt.Errorf("failed to read menu file %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML menu document.
func Parse(raw []byte) (Menu, error) {
	var m Menu
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return Menu{}, fmt.Errorf("failed to parse menu: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Menu{}, err
	}
	return m, nil
}

// Marshal encodes a menu as YAML.
func Marshal(m Menu) ([]byte, error) {
	return yaml.Marshal(m)
}

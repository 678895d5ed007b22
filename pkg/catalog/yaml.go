package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fableworks/storybook/pkg/domain"
)

// yamlFile is the on-disk shape of a catalog document.
type yamlFile struct {
	Templates []domain.StoryTemplate `yaml:"templates"`
}

// LoadYAML reads a declarative catalog from a YAML file. The file holds a
// top-level "templates" list; every entry is validated before the catalog is
// returned, so a malformed story never reaches rendering.
func LoadYAML(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML builds a catalog from raw YAML bytes.
func ParseYAML(data []byte) (*Catalog, error) {
	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	if len(file.Templates) == 0 {
		return nil, fmt.Errorf("catalog YAML defines no templates")
	}
	return New(file.Templates...)
}

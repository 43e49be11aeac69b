package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML manifest with the same shape as the JSON form.
func ParseYAML(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("manifest: decode yaml: %w", err)
	}
	if err := validate(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Copyright Akcero Labs Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Load reads a catalog data file (YAML) and builds a validated Catalog.
// Maps absent from the file fall back to the built-in records, so a file
// can override a single facet without restating the rest.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	data := Defaults()
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}

	c, err := New(data)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}

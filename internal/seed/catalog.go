package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type CatalogEntry struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type catalogFile struct {
	Exercises []CatalogEntry `yaml:"exercises"`
}

// Catalog returns the fixed exercise list in file order.
func Catalog() ([]CatalogEntry, error) {
	var f catalogFile
	if err := yaml.Unmarshal(catalogYAML, &f); err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}
	return f.Exercises, nil
}

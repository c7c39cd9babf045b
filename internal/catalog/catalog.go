// Package catalog holds the built-in reference data seeded into the store at
// first launch: the food catalog and the predefined goals. The data ships as
// an embedded YAML document so the binary stays self-contained.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var raw []byte

type Food struct {
	Name        string  `yaml:"name"`
	Group       string  `yaml:"group"`
	ServingDesc string  `yaml:"serving"`
	ServingG    float64 `yaml:"serving_g"`
	Calories    int     `yaml:"calories"`
	ProteinG    float64 `yaml:"protein_g"`
	CarbsG      float64 `yaml:"carbs_g"`
	FatG        float64 `yaml:"fat_g"`
}

type Goal struct {
	Name     string   `yaml:"name"`
	Calories int      `yaml:"calories"`
	ProteinG *float64 `yaml:"protein_g"`
	CarbsG   *float64 `yaml:"carbs_g"`
	FatG     *float64 `yaml:"fat_g"`
}

type Catalog struct {
	Version int    `yaml:"version"`
	Foods   []Food `yaml:"foods"`
	Goals   []Goal `yaml:"goals"`
}

// Load parses and validates the embedded catalog.
func Load() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}
	if c.Version <= 0 {
		return nil, fmt.Errorf("embedded catalog version must be > 0, got %d", c.Version)
	}
	if len(c.Foods) == 0 {
		return nil, fmt.Errorf("embedded catalog contains no foods")
	}
	seen := map[string]bool{}
	for i, f := range c.Foods {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return nil, fmt.Errorf("catalog food %d has no name", i)
		}
		if seen[strings.ToLower(name)] {
			return nil, fmt.Errorf("catalog food %q is duplicated", name)
		}
		seen[strings.ToLower(name)] = true
		if f.Calories < 0 || f.ProteinG < 0 || f.CarbsG < 0 || f.FatG < 0 {
			return nil, fmt.Errorf("catalog food %q has negative nutrient values", name)
		}
		if f.ServingG <= 0 {
			return nil, fmt.Errorf("catalog food %q serving weight must be > 0", name)
		}
	}
	for i, g := range c.Goals {
		if strings.TrimSpace(g.Name) == "" {
			return nil, fmt.Errorf("catalog goal %d has no name", i)
		}
		if g.Calories <= 0 {
			return nil, fmt.Errorf("catalog goal %q calorie target must be > 0", g.Name)
		}
	}
	return &c, nil
}

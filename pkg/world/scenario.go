package world

import (
	"path/filepath"

	"github.com/arthur-debert/autopickup/pkg/errors"
	"github.com/arthur-debert/autopickup/pkg/types"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Scenario describes item stacks on map tiles, optionally with extra
// catalog types, for offline pickup runs.
type Scenario struct {
	Catalog []*ItemType `yaml:"catalog,omitempty"`
	Tiles   []Tile      `yaml:"tiles"`
}

// Tile is the stack of items at one position
type Tile struct {
	At    types.Point `yaml:"at"`
	Items []*Item     `yaml:"items"`
}

// LoadScenario reads a YAML scenario from fs
func LoadScenario(fs afero.Fs, path string) (*Scenario, error) {
	data, err := afero.ReadFile(fs, filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrScenarioLoad, "failed to read scenario %s", path).
			WithDetail("path", path)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, errors.ErrScenarioLoad, "failed to parse scenario %s", path)
	}
	return &s, nil
}

// Build adds the scenario's types to base and places its items on a new
// map. Items naming a catalog type inherit its defaults.
func (s *Scenario) Build(base *Catalog) (*Map, error) {
	for _, t := range s.Catalog {
		base.Add(t)
	}

	m := NewMap()
	for _, tile := range s.Tiles {
		for _, it := range tile.Items {
			if err := it.resolve(base); err != nil {
				return nil, errors.Wrap(err, errors.ErrScenarioLoad, "failed to resolve scenario item").
					WithDetail("tile", tile.At.String())
			}
			m.AddItem(tile.At, it)
		}
	}
	return m, nil
}

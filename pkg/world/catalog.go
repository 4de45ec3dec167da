package world

import (
	_ "embed"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/autopickup/pkg/errors"
	"github.com/arthur-debert/autopickup/pkg/types"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed embedded/catalog.yaml
var defaultCatalog []byte

// ItemType is a catalog definition; instances copy its defaults
type ItemType struct {
	ID          string          `yaml:"id"`
	TypeName    string          `yaml:"name"`
	MadeOf      types.Materials `yaml:"materials,omitempty"`
	Grams       types.Mass      `yaml:"weight,omitempty"`
	Millilitres types.Volume    `yaml:"volume,omitempty"`
	Liquid      bool            `yaml:"liquid,omitempty"`
	Container   bool            `yaml:"container,omitempty"`
	Rigid       bool            `yaml:"rigid,omitempty"`
	Sealed      bool            `yaml:"sealed,omitempty"`
	Corpse      bool            `yaml:"corpse,omitempty"`
	Capacity    int             `yaml:"battery_capacity,omitempty"`
	Battery     bool            `yaml:"battery,omitempty"`
	Flags       []types.Flag    `yaml:"flags,omitempty"`
}

func (t *ItemType) Name() string {
	return t.TypeName
}

func (t *ItemType) Materials() types.Materials {
	return t.MadeOf
}

// New creates an instance of the type
func (t *ItemType) New() *Item {
	it := &Item{Type: t.ID}
	t.fill(it)
	return it
}

func (t *ItemType) fill(it *Item) {
	if it.Label == "" {
		it.Label = t.TypeName
	}
	if it.MadeOf == nil {
		it.MadeOf = t.MadeOf.Clone()
	}
	if it.Grams == 0 {
		it.Grams = t.Grams
	}
	if it.Millilitres == 0 {
		it.Millilitres = t.Millilitres
	}
	if it.Capacity == 0 {
		it.Capacity = t.Capacity
	}
	if it.Flags == nil && len(t.Flags) > 0 {
		it.Flags = append([]types.Flag(nil), t.Flags...)
	}
	it.Liquid = it.Liquid || t.Liquid
	it.Container = it.Container || t.Container
	it.Rigid = it.Rigid || t.Rigid
	it.Sealed = it.Sealed || t.Sealed
	it.Corpse = it.Corpse || t.Corpse
	it.Battery = it.Battery || t.Battery
}

// Catalog is an ordered set of item types
type Catalog struct {
	types []*ItemType
	byID  map[string]*ItemType
}

type catalogFile struct {
	Items []*ItemType `yaml:"items"`
}

// NewCatalog creates a catalog holding the given types in order
func NewCatalog(itemTypes ...*ItemType) *Catalog {
	c := &Catalog{byID: make(map[string]*ItemType)}
	for _, t := range itemTypes {
		c.Add(t)
	}
	return c
}

// Add appends a type; a type with a known ID replaces the old definition
func (c *Catalog) Add(t *ItemType) {
	if t.ID == "" {
		t.ID = t.TypeName
	}
	if old, ok := c.byID[t.ID]; ok {
		for i := range c.types {
			if c.types[i] == old {
				c.types[i] = t
			}
		}
	} else {
		c.types = append(c.types, t)
	}
	c.byID[t.ID] = t
}

// All implements types.Catalog
func (c *Catalog) All() []types.ItemType {
	out := make([]types.ItemType, 0, len(c.types))
	for _, t := range c.types {
		out = append(out, t)
	}
	return out
}

// Lookup finds a type by ID
func (c *Catalog) Lookup(id string) (*ItemType, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// Find looks a type up by ID, then by display name ignoring case
func (c *Catalog) Find(idOrName string) (*ItemType, bool) {
	if t, ok := c.byID[idOrName]; ok {
		return t, true
	}
	for _, t := range c.types {
		if strings.EqualFold(t.Name(), idOrName) {
			return t, true
		}
	}
	return nil, false
}

// Len returns the number of types
func (c *Catalog) Len() int {
	return len(c.types)
}

// DefaultCatalog returns the catalog bundled with the binary
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic("embedded catalog is invalid: " + err.Error())
	}
	return c
}

// ParseCatalog decodes a YAML catalog document
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrCatalogLoad, "failed to parse catalog")
	}
	for i, t := range doc.Items {
		if t == nil || t.TypeName == "" {
			return nil, errors.Newf(errors.ErrCatalogLoad, "catalog entry %d has no name", i)
		}
	}
	return NewCatalog(doc.Items...), nil
}

// LoadCatalog reads a YAML catalog from fs
func LoadCatalog(fs afero.Fs, path string) (*Catalog, error) {
	data, err := afero.ReadFile(fs, filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalogLoad, "failed to read catalog %s", path).
			WithDetail("path", path)
	}
	return ParseCatalog(data)
}

func errUnknownType(id string) error {
	return errors.Newf(errors.ErrNotFound, "unknown item type %q", id).WithDetail("type", id)
}

package world

import (
	"github.com/arthur-debert/autopickup/pkg/types"
)

// Item is a concrete item instance. Containers hold their contents in Items.
// Items are always handled by pointer so they compare by identity.
type Item struct {
	Type        string          `yaml:"type,omitempty"`
	Label       string          `yaml:"name,omitempty"`
	Grams       types.Mass      `yaml:"weight,omitempty"`
	Millilitres types.Volume    `yaml:"volume,omitempty"`
	OwnedBy     string          `yaml:"owner,omitempty"`
	MadeOf      types.Materials `yaml:"materials,omitempty"`
	Liquid      bool            `yaml:"liquid,omitempty"`
	Container   bool            `yaml:"container,omitempty"`
	Rigid       bool            `yaml:"rigid,omitempty"`
	Sealed      bool            `yaml:"sealed,omitempty"`
	Corpse      bool            `yaml:"corpse,omitempty"`
	Capacity    int             `yaml:"battery_capacity,omitempty"`
	Battery     bool            `yaml:"battery,omitempty"`
	Flags       []types.Flag    `yaml:"flags,omitempty"`
	Items       []*Item         `yaml:"contents,omitempty"`
}

// NewItem creates a plain item
func NewItem(name string, grams types.Mass, ml types.Volume, materials types.Materials) *Item {
	return &Item{Label: name, Grams: grams, Millilitres: ml, MadeOf: materials}
}

// NewContainer creates an empty container item
func NewContainer(name string, grams types.Mass, ml types.Volume, rigid bool) *Item {
	return &Item{Label: name, Grams: grams, Millilitres: ml, Container: true, Rigid: rigid}
}

// Put places items inside it and returns it
func (i *Item) Put(items ...*Item) *Item {
	i.Container = true
	i.Items = append(i.Items, items...)
	return i
}

func (i *Item) Name() string {
	return i.Label
}

// Weight includes everything inside the item
func (i *Item) Weight() types.Mass {
	total := i.Grams
	for _, it := range i.Items {
		total += it.Weight()
	}
	return total
}

// Volume of a rigid container does not depend on its contents; soft
// containers grow with what they hold.
func (i *Item) Volume() types.Volume {
	if i.Container && i.Rigid {
		return i.Millilitres
	}
	total := i.Millilitres
	for _, it := range i.Items {
		total += it.Volume()
	}
	return total
}

func (i *Item) Owner() string {
	return i.OwnedBy
}

func (i *Item) Materials() types.Materials {
	return i.MadeOf
}

func (i *Item) IsLiquid() bool {
	return i.Liquid
}

func (i *Item) IsContainer() bool {
	return i.Container
}

func (i *Item) IsContainerEmpty() bool {
	return len(i.Items) == 0
}

func (i *Item) AllPocketsRigid() bool {
	return i.Container && i.Rigid
}

func (i *Item) AnyPocketsSealed() bool {
	return i.Container && i.Sealed
}

func (i *Item) Contents() []types.Item {
	out := make([]types.Item, 0, len(i.Items))
	for _, it := range i.Items {
		out = append(out, it)
	}
	return out
}

// RemoveItem detaches a direct content entry. It returns nil when entry is
// not held by this item.
func (i *Item) RemoveItem(entry types.Item) types.Item {
	for idx, it := range i.Items {
		if types.Item(it) != entry {
			continue
		}
		i.Items = append(i.Items[:idx], i.Items[idx+1:]...)
		return it
	}
	return nil
}

func (i *Item) IsCorpse() bool {
	return i.Corpse
}

func (i *Item) BatteryCapacity() int {
	return i.Capacity
}

func (i *Item) IsBattery() bool {
	return i.Battery
}

func (i *Item) HasFlag(flag types.Flag) bool {
	for _, f := range i.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// resolve fills unset fields from the catalog type named by Type, then
// descends into the contents.
func (i *Item) resolve(c *Catalog) error {
	if i.Type != "" {
		t, ok := c.Lookup(i.Type)
		if !ok {
			return errUnknownType(i.Type)
		}
		t.fill(i)
	}
	for _, it := range i.Items {
		if err := it.resolve(c); err != nil {
			return err
		}
	}
	if len(i.Items) > 0 {
		i.Container = true
	}
	return nil
}

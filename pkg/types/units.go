package types

import (
	"fmt"
	"sort"
)

// Mass is a weight in grams
type Mass int64

// Volume is a volume in millilitres
type Volume int64

// Limit units used by the auto-pickup options
const (
	MassStep   Mass   = 50
	VolumeStep Volume = 50
)

// Flag is an item marker such as "ZERO_WEIGHT"
type Flag string

const (
	// FlagWeightIgnored marks items whose weight is not counted
	FlagWeightIgnored Flag = "ZERO_WEIGHT"
	// FlagNoDrop marks items that cannot exist outside their owner
	FlagNoDrop Flag = "NO_DROP"
)

// Point is a tile position on the map
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	Z int `json:"z" yaml:"z"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Materials maps a material name to its portion of the item
type Materials map[string]int

// Names returns the material names in sorted order
func (m Materials) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy, nil for an empty set
func (m Materials) Clone() Materials {
	if len(m) == 0 {
		return nil
	}
	out := make(Materials, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

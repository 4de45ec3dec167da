package world

import (
	"sort"

	"github.com/arthur-debert/autopickup/pkg/types"
)

// Map stores item stacks per tile
type Map struct {
	tiles map[types.Point][]types.Item
}

// NewMap creates an empty map
func NewMap() *Map {
	return &Map{tiles: make(map[types.Point][]types.Item)}
}

// AddItem implements types.Map
func (m *Map) AddItem(where types.Point, it types.Item) {
	if it == nil {
		return
	}
	m.tiles[where] = append(m.tiles[where], it)
}

// Stack returns a snapshot of the items lying on a tile
func (m *Map) Stack(where types.Point) []types.Item {
	return append([]types.Item(nil), m.tiles[where]...)
}

// Tiles returns every tile holding at least one item, ordered by level,
// then row, then column.
func (m *Map) Tiles() []types.Point {
	out := make([]types.Point, 0, len(m.tiles))
	for p, stack := range m.tiles {
		if len(stack) > 0 {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return out
}

// Remove takes an item off a tile
func (m *Map) Remove(where types.Point, it types.Item) bool {
	stack := m.tiles[where]
	for i := range stack {
		if stack[i] != it {
			continue
		}
		m.tiles[where] = append(stack[:i], stack[i+1:]...)
		return true
	}
	return false
}

// Take detaches the item at loc, from the tile or from its parent container
func (m *Map) Take(loc types.Location) (types.Item, bool) {
	if loc.Parent == nil {
		if !m.Remove(loc.Tile, loc.Item) {
			return nil, false
		}
		return loc.Item, true
	}
	taken := loc.Parent.Item.RemoveItem(loc.Item)
	return taken, taken != nil
}

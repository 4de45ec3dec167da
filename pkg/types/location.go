package types

// Location identifies an item on a map tile, possibly nested inside a
// chain of containers. Parent is nil for items lying directly on the tile.
type Location struct {
	Tile   Point
	Item   Item
	Parent *Location
}

// OnTile locates an item lying directly on tile
func OnTile(tile Point, it Item) Location {
	return Location{Tile: tile, Item: it}
}

// Inside locates an item held directly by the item at parent
func Inside(parent Location, it Item) Location {
	p := parent
	return Location{Tile: parent.Tile, Item: it, Parent: &p}
}

// Equal reports whether both locations name the same item through the same
// chain of containers.
func (l Location) Equal(other Location) bool {
	if l.Tile != other.Tile || l.Item != other.Item {
		return false
	}
	if l.Parent == nil || other.Parent == nil {
		return l.Parent == nil && other.Parent == nil
	}
	return l.Parent.Equal(*other.Parent)
}

// Depth is the number of containers enclosing the item
func (l Location) Depth() int {
	depth := 0
	for p := l.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}

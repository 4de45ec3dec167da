package types

// Item is the query surface the pickup engine needs from a concrete item
// instance lying on the map or nested inside a container.
type Item interface {
	// Name is the singular display name without condition or damage suffixes.
	Name() string
	Weight() Mass
	Volume() Volume

	// Owner is the faction or actor the item belongs to, empty when unowned.
	Owner() string

	// Materials is the item's own material composition, which may differ
	// from its catalog definition.
	Materials() Materials

	// IsLiquid reports whether the item is in the liquid phase.
	IsLiquid() bool

	IsContainer() bool
	IsContainerEmpty() bool
	AllPocketsRigid() bool
	AnyPocketsSealed() bool

	// Contents returns a snapshot of the items directly inside this one.
	Contents() []Item

	// RemoveItem takes a direct content entry out of this item and returns it.
	RemoveItem(entry Item) Item

	IsCorpse() bool

	// BatteryCapacity is the battery charge the item can hold, zero for
	// items that are not battery powered.
	BatteryCapacity() int
	IsBattery() bool

	HasFlag(flag Flag) bool
}

// ItemType is one entry of the static item catalog.
type ItemType interface {
	// Name is the singular catalog name of the type.
	Name() string
	Materials() Materials
}

// Catalog enumerates every known item type.
type Catalog interface {
	All() []ItemType
}

// Map is the part of the game map the engine writes to: items stripped out
// of containers are dropped back onto the tile.
type Map interface {
	AddItem(where Point, it Item)
}

// Package types defines the core types and interfaces shared by the
// auto-pickup packages. This includes the Verdict enum, material sets,
// units, and the narrow Item, ItemType, Catalog and Map interfaces through
// which the engine consumes the game's item model.
package types

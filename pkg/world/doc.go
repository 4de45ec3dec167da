// Package world is a small in-memory item model: catalog types, item
// instances with nested contents, and a tile map. It implements the
// interfaces of package types so the pickup engine can run outside the game,
// and it loads catalogs and test scenarios from YAML.
package world

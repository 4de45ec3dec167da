// Package pickup decides which items on a map tile are picked up
// automatically.
//
// SelectItems walks the tile's stack and, for containers, their contents.
// Whitelisted items are taken whole. Containers that are not whitelisted are
// searched for whitelisted contents, and the container itself is taken
// instead when everything inside it was selected.
//
// Containers and items are never picked up when:
//
//   - they are owned and picking up owned items is off
//   - they exceed the weight or volume limit
//   - they are blacklisted
//
// A container is always taken whole when it is sealed, when it holds a
// whitelisted liquid, or when every item inside it was selected. It is never
// taken when only batteries were selected from a battery powered tool, or
// when it is a corpse that is not itself whitelisted.
//
// Before a whitelisted container is taken, unwanted contents are dropped
// onto its tile: a rigid container drops only blacklisted entries, a soft
// one keeps only whitelisted entries.
package pickup

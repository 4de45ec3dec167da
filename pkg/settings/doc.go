// Package settings owns rule lists together with their classification
// cache.
//
// PlayerSettings holds a global list shared by every character and a list
// for the current character. NPCSettings holds the single list an NPC
// follower uses when it harvests items. Each value owns its own cache and
// wires the lists' change hooks to invalidate it, so an edit to any list is
// seen on the next query.
//
// Rebuilding replays the global list before the character list; a
// character rule therefore overrides a global one for the same name.
package settings

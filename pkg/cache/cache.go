// Package cache holds the memoized classification of item names.
//
// A Cache is either stale or fresh. Any query on a stale cache first runs
// the builder supplied by the owning settings, which replays every rule list
// into the empty cache. Entries written during a rebuild carry the material
// snapshot of the catalog type that produced them so exclude rules can
// re-check material filters; snapshots are dropped once the rebuild ends.
package cache

import (
	"sort"

	"github.com/arthur-debert/autopickup/pkg/logging"
	"github.com/arthur-debert/autopickup/pkg/types"
	"github.com/rs/zerolog"
)

// Entry is the cached state of one item name
type Entry struct {
	Verdict   types.Verdict
	Materials types.Materials
}

// Builder repopulates an empty cache
type Builder func(c *Cache)

// Cache maps item display names to verdicts
type Cache struct {
	entries map[string]Entry
	ready   bool
	build   Builder
	logger  zerolog.Logger
}

// New creates a stale cache that rebuilds itself with build
func New(build Builder) *Cache {
	return &Cache{
		entries: make(map[string]Entry),
		build:   build,
		logger:  logging.GetLogger("cache"),
	}
}

// Ready reports whether the cache is fresh
func (c *Cache) Ready() bool {
	return c.ready
}

// Invalidate marks the cache stale; the next query rebuilds it
func (c *Cache) Invalidate() {
	if c.ready {
		c.logger.Debug().Int("entries", len(c.entries)).Msg("Cache invalidated")
	}
	c.ready = false
}

// Rebuild clears the cache and replays the builder
func (c *Cache) Rebuild() {
	done := logging.LogOperationStart(c.logger, "cache.rebuild")
	defer done()

	c.entries = make(map[string]Entry)
	if c.build != nil {
		c.build(c)
	}
	c.ready = true

	for name, entry := range c.entries {
		entry.Materials = nil
		c.entries[name] = entry
	}
	c.logger.Debug().Int("entries", len(c.entries)).Msg("Cache rebuilt")
}

// Check returns the verdict for name, rebuilding first when stale
func (c *Cache) Check(name string) types.Verdict {
	if !c.ready {
		c.Rebuild()
	}
	return c.entries[name].Verdict
}

// Lookup returns the raw entry without triggering a rebuild
func (c *Cache) Lookup(name string) (Entry, bool) {
	entry, ok := c.entries[name]
	return entry, ok
}

// Materials returns the material snapshot held for name. Snapshots only
// exist while a rebuild is running.
func (c *Cache) Materials(name string) types.Materials {
	return c.entries[name].Materials
}

// Whitelist records an include match together with the material snapshot
// of the catalog type that produced it.
func (c *Cache) Whitelist(name string, materials types.Materials) {
	c.entries[name] = Entry{Verdict: types.VerdictWhitelisted, Materials: materials.Clone()}
}

// Blacklist demotes name, keeping any material snapshot
func (c *Cache) Blacklist(name string) {
	entry := c.entries[name]
	entry.Verdict = types.VerdictBlacklisted
	c.entries[name] = entry
}

// Set stores a verdict for name without a material snapshot
func (c *Cache) Set(name string, verdict types.Verdict) {
	c.entries[name] = Entry{Verdict: verdict}
}

// Names returns the cached names in sorted order
func (c *Cache) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of cached names
func (c *Cache) Len() int {
	return len(c.entries)
}

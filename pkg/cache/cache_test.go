package cache_test

import (
	"testing"

	"github.com/arthur-debert/autopickup/pkg/cache"
	"github.com/arthur-debert/autopickup/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_LazyRebuild(t *testing.T) {
	builds := 0
	c := cache.New(func(c *cache.Cache) {
		builds++
		c.Whitelist("wooden arrow", types.Materials{"Wood": 1})
	})

	assert.False(t, c.Ready())
	assert.Equal(t, 0, builds, "construction must not build")

	assert.Equal(t, types.VerdictWhitelisted, c.Check("wooden arrow"))
	assert.True(t, c.Ready())
	assert.Equal(t, 1, builds)

	assert.Equal(t, types.VerdictNone, c.Check("steel arrow"))
	assert.Equal(t, 1, builds, "fresh cache must not rebuild")

	c.Invalidate()
	assert.False(t, c.Ready())
	c.Check("wooden arrow")
	assert.Equal(t, 2, builds)
}

func TestCache_RebuildClearsEntries(t *testing.T) {
	include := true
	c := cache.New(func(c *cache.Cache) {
		if include {
			c.Whitelist("rope", nil)
		}
	})

	assert.Equal(t, types.VerdictWhitelisted, c.Check("rope"))

	c.Set("ad hoc", types.VerdictBlacklisted)
	include = false
	c.Invalidate()

	assert.Equal(t, types.VerdictNone, c.Check("rope"))
	assert.Equal(t, types.VerdictNone, c.Check("ad hoc"))
	assert.Equal(t, 0, c.Len())
}

func TestCache_SnapshotsOnlyLiveDuringRebuild(t *testing.T) {
	var seen types.Materials
	c := cache.New(func(c *cache.Cache) {
		c.Whitelist("copper wire", types.Materials{"Copper": 1})
		entry, ok := c.Lookup("copper wire")
		require.True(t, ok)
		seen = entry.Materials
		assert.Equal(t, seen, c.Materials("copper wire"))
	})

	c.Rebuild()

	assert.Equal(t, types.Materials{"Copper": 1}, seen)
	entry, ok := c.Lookup("copper wire")
	require.True(t, ok)
	assert.Nil(t, entry.Materials)
	assert.Nil(t, c.Materials("copper wire"))
	assert.Equal(t, types.VerdictWhitelisted, entry.Verdict)
}

func TestCache_BlacklistKeepsSnapshot(t *testing.T) {
	c := cache.New(nil)
	c.Whitelist("steel arrow", types.Materials{"Steel": 1})
	c.Blacklist("steel arrow")

	entry, ok := c.Lookup("steel arrow")
	require.True(t, ok)
	assert.Equal(t, types.VerdictBlacklisted, entry.Verdict)
	assert.Equal(t, types.Materials{"Steel": 1}, entry.Materials)
}

func TestCache_WhitelistCopiesMaterials(t *testing.T) {
	c := cache.New(nil)
	mats := types.Materials{"Steel": 1}
	c.Whitelist("knife", mats)
	mats["Wood"] = 1

	entry, _ := c.Lookup("knife")
	assert.Equal(t, types.Materials{"Steel": 1}, entry.Materials)
}

func TestCache_Names(t *testing.T) {
	c := cache.New(func(c *cache.Cache) {
		c.Whitelist("b", nil)
		c.Whitelist("a", nil)
	})
	c.Rebuild()
	assert.Equal(t, []string{"a", "b"}, c.Names())
}

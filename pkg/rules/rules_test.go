// Test Type: Unit Test
// Description: Tests for rule construction, list editing and cache replay

package rules_test

import (
	"encoding/json"
	"testing"

	"github.com/arthur-debert/autopickup/pkg/cache"
	"github.com/arthur-debert/autopickup/pkg/errors"
	"github.com/arthur-debert/autopickup/pkg/rules"
	"github.com/arthur-debert/autopickup/pkg/types"
	"github.com/arthur-debert/autopickup/pkg/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *world.Catalog {
	return world.NewCatalog(
		&world.ItemType{ID: "arrow_wood", TypeName: "wooden arrow", MadeOf: types.Materials{"Wood": 1}},
		&world.ItemType{ID: "arrow_steel", TypeName: "steel arrow", MadeOf: types.Materials{"Steel": 2, "Wood": 1}},
		&world.ItemType{ID: "arrow_fire", TypeName: "heavy fletched fire arrow", MadeOf: types.Materials{"Wood": 2}},
		&world.ItemType{ID: "knife", TypeName: "steak knife", MadeOf: types.Materials{"Steel": 1, "Plastic": 1}},
		&world.ItemType{ID: "wire", TypeName: "copper wire", MadeOf: types.Materials{"Copper": 1}},
		&world.ItemType{ID: "ingot", TypeName: "bronze ingot", MadeOf: types.Materials{"Copper": 9, "Tin": 1}},
		&world.ItemType{ID: "vest", TypeName: "kevlar vest", MadeOf: types.Materials{"Kevlar": 3, "Cotton": 1}},
		&world.ItemType{ID: "rag", TypeName: "rag", MadeOf: types.Materials{"Cotton": 1}},
	)
}

func mustRule(t *testing.T, pattern string, exclude bool) rules.Rule {
	t.Helper()
	r, err := rules.NewRule(pattern, true, exclude)
	require.NoError(t, err)
	return r
}

// replay builds a fresh cache from the list, the way settings do
func replay(l *rules.List, catalog types.Catalog) *cache.Cache {
	c := cache.New(func(c *cache.Cache) { l.Apply(c, catalog) })
	c.Rebuild()
	return c
}

func TestNewRule(t *testing.T) {
	r, err := rules.NewRule("  wooden**arrow ", true, false)
	require.NoError(t, err)
	assert.Equal(t, "wooden*arrow", r.Pattern)
	assert.Equal(t, types.VerdictWhitelisted, r.Verdict())

	r, err = rules.NewRule("*", false, true)
	require.NoError(t, err)
	assert.False(t, r.Active)
	assert.Equal(t, types.VerdictBlacklisted, r.Verdict())

	for _, blank := range []string{"", "   "} {
		_, err := rules.NewRule(blank, true, false)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRuleInvalid), "pattern %q", blank)
	}
}

func TestRule_Test(t *testing.T) {
	catalog := testCatalog()

	assert.Equal(t,
		[]string{"wooden arrow", "steel arrow", "heavy fletched fire arrow"},
		mustRule(t, "*arrow", false).Test(catalog))
	assert.Equal(t, []string{"copper wire"}, mustRule(t, "M:copper", false).Test(catalog))
	assert.Equal(t, []string{"copper wire", "bronze ingot"}, mustRule(t, "m:copper", false).Test(catalog))
	assert.Empty(t, mustRule(t, "plutonium*", false).Test(catalog))
	assert.Empty(t, rules.Rule{Pattern: ""}.Test(catalog))
}

func TestList_Apply(t *testing.T) {
	catalog := testCatalog()

	t.Run("include then narrowing exclude", func(t *testing.T) {
		l := rules.NewList(mustRule(t, "*arrow", false), mustRule(t, "steel*", true))
		c := replay(l, catalog)

		assert.Equal(t, types.VerdictWhitelisted, c.Check("wooden arrow"))
		assert.Equal(t, types.VerdictWhitelisted, c.Check("heavy fletched fire arrow"))
		assert.Equal(t, types.VerdictBlacklisted, c.Check("steel arrow"))
		assert.Equal(t, types.VerdictNone, c.Check("steak knife"), "exclude never adds names")
	})

	t.Run("exclude alone is inert", func(t *testing.T) {
		l := rules.NewList(mustRule(t, "steel*", true))
		c := replay(l, catalog)

		assert.Zero(t, c.Len())
		assert.Equal(t, types.VerdictNone, c.Check("steel arrow"))
	})

	t.Run("last matching rule wins", func(t *testing.T) {
		l := rules.NewList(
			mustRule(t, "*arrow", false),
			mustRule(t, "steel arrow", true),
			mustRule(t, "steel*", false),
			mustRule(t, "wooden*", true),
		)
		c := replay(l, catalog)

		assert.Equal(t, types.VerdictWhitelisted, c.Check("steel arrow"))
		assert.Equal(t, types.VerdictBlacklisted, c.Check("wooden arrow"))
		assert.Equal(t, types.VerdictNone, c.Check("steak knife"), "no rule names it")
		assert.Equal(t, types.VerdictWhitelisted, c.Check("heavy fletched fire arrow"))
	})

	t.Run("material filters", func(t *testing.T) {
		l := rules.NewList(mustRule(t, "M:copper", false), mustRule(t, "m:kevlar", false))
		c := replay(l, catalog)

		assert.Equal(t, types.VerdictWhitelisted, c.Check("copper wire"))
		assert.Equal(t, types.VerdictNone, c.Check("bronze ingot"))
		assert.Equal(t, types.VerdictWhitelisted, c.Check("kevlar vest"))
	})

	t.Run("exclude material filter uses catalog snapshot", func(t *testing.T) {
		l := rules.NewList(mustRule(t, "*arrow", false), mustRule(t, "m:steel", true))
		c := replay(l, catalog)

		assert.Equal(t, types.VerdictBlacklisted, c.Check("steel arrow"))
		assert.Equal(t, types.VerdictWhitelisted, c.Check("wooden arrow"))
	})

	t.Run("inactive and invalid rules are skipped", func(t *testing.T) {
		l := rules.NewList(
			rules.Rule{Pattern: "*arrow", Active: false},
			rules.Rule{Pattern: "", Active: true},
			rules.Rule{Pattern: "rag", Active: true},
		)
		c := replay(l, catalog)

		assert.Equal(t, []string{"rag"}, c.Names())
	})
}

func TestList_ApplyItem(t *testing.T) {
	l := rules.NewList(mustRule(t, "m:kevlar", false), mustRule(t, "odd*", true))

	t.Run("uses the item's own materials", func(t *testing.T) {
		c := cache.New(nil)
		l.ApplyItem(c, world.NewItem("odd kevlar rock", 10, 10, types.Materials{"Kevlar": 1}))

		entry, ok := c.Lookup("odd kevlar rock")
		require.True(t, ok)
		assert.Equal(t, types.VerdictBlacklisted, entry.Verdict, "last match wins")
	})

	t.Run("no match writes nothing", func(t *testing.T) {
		c := cache.New(nil)
		l.ApplyItem(c, world.NewItem("pebble", 10, 10, types.Materials{"Stone": 1}))
		assert.Zero(t, c.Len())
	})
}

func TestList_ApplyName(t *testing.T) {
	l := rules.NewList(mustRule(t, "m:kevlar", false), mustRule(t, "kevlar*", false))
	c := cache.New(nil)

	l.ApplyName(c, "kevlar helmet")
	l.ApplyName(c, "plate armor")

	assert.Equal(t, []string{"kevlar helmet"}, c.Names())
}

func TestList_Mutations(t *testing.T) {
	changes := 0
	l := rules.NewList()
	l.OnChange(func() { changes++ })

	require.NoError(t, l.Append(mustRule(t, "a", false)))
	require.NoError(t, l.Append(mustRule(t, "b", false)))
	require.NoError(t, l.Insert(0, mustRule(t, "c", true)))
	assert.Equal(t, 3, changes)
	assert.Equal(t, []string{"c", "a", "b"}, patterns(l))

	require.NoError(t, l.MoveDown(0))
	assert.Equal(t, []string{"a", "c", "b"}, patterns(l))
	require.NoError(t, l.MoveUp(2))
	assert.Equal(t, []string{"a", "b", "c"}, patterns(l))
	assert.Equal(t, 5, changes)

	t.Run("moves at the edges do nothing", func(t *testing.T) {
		before := changes
		require.NoError(t, l.MoveUp(0))
		require.NoError(t, l.MoveDown(l.Len()-1))
		assert.Equal(t, before, changes)
		assert.Equal(t, []string{"a", "b", "c"}, patterns(l))
	})

	t.Run("flags", func(t *testing.T) {
		require.NoError(t, l.SetActive(0, false))
		require.NoError(t, l.ToggleExclude(1))
		r0, _ := l.At(0)
		r1, _ := l.At(1)
		assert.False(t, r0.Active)
		assert.True(t, r1.Exclude)
	})

	t.Run("pattern edits", func(t *testing.T) {
		require.NoError(t, l.SetPattern(2, " *arrow "))
		r, _ := l.At(2)
		assert.Equal(t, "*arrow", r.Pattern)

		err := l.SetPattern(2, "  ")
		assert.True(t, errors.IsErrorCode(err, errors.ErrRuleInvalid))
		r, _ = l.At(2)
		assert.Equal(t, "*arrow", r.Pattern, "rejected edit keeps the old pattern")
	})

	t.Run("copy take and lookup", func(t *testing.T) {
		require.NoError(t, l.Copy(0))
		assert.Equal(t, 4, l.Len())
		assert.Equal(t, 2, l.IndexOf("*ARROW"))

		r, err := l.Take(3)
		require.NoError(t, err)
		assert.Equal(t, "a", r.Pattern)
		require.NoError(t, l.Remove(0))
		assert.Equal(t, []string{"b", "*arrow"}, patterns(l))
		assert.Equal(t, -1, l.IndexOf("a"))
	})

	t.Run("out of range", func(t *testing.T) {
		before := changes
		for _, err := range []error{
			l.Remove(5),
			l.Copy(-1),
			l.MoveUp(9),
			l.SetActive(2, true),
			l.Insert(9, mustRule(t, "x", false)),
		} {
			assert.True(t, errors.IsErrorCode(err, errors.ErrRuleIndex), "got %v", err)
		}
		_, err := l.At(2)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRuleIndex))
		assert.Equal(t, before, changes)
	})

	t.Run("append rejects blank rules", func(t *testing.T) {
		err := l.Append(rules.Rule{Pattern: " ", Active: true})
		assert.True(t, errors.IsErrorCode(err, errors.ErrRuleInvalid))
	})

	t.Run("clear", func(t *testing.T) {
		before := changes
		l.Clear()
		assert.True(t, l.Empty())
		assert.Equal(t, before+1, changes)
	})
}

func TestList_RulesIsACopy(t *testing.T) {
	l := rules.NewList(mustRule(t, "a", false))
	got := l.Rules()
	got[0].Pattern = "changed"

	r, _ := l.At(0)
	assert.Equal(t, "a", r.Pattern)
}

func TestList_JSON(t *testing.T) {
	l := rules.NewList(mustRule(t, "*arrow", false), rules.Rule{Pattern: "steel*", Active: false, Exclude: true})

	data, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"rule": "*arrow", "active": true, "exclude": false},
		{"rule": "steel*", "active": false, "exclude": true}
	]`, string(data))

	empty, err := json.Marshal(rules.NewList())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))

	t.Run("decode replaces content and notifies", func(t *testing.T) {
		changed := false
		decoded := rules.NewList(mustRule(t, "old", false))
		decoded.OnChange(func() { changed = true })

		require.NoError(t, json.Unmarshal(data, decoded))
		assert.True(t, changed)
		assert.Equal(t, l.Rules(), decoded.Rules())
	})

	t.Run("blank patterns load verbatim", func(t *testing.T) {
		decoded := rules.NewList()
		require.NoError(t, json.Unmarshal([]byte(`[{"rule":"","active":true,"exclude":false}]`), decoded))
		require.Equal(t, 1, decoded.Len())

		c := replay(decoded, testCatalog())
		assert.Zero(t, c.Len())
	})

	t.Run("malformed", func(t *testing.T) {
		err := rules.NewList().UnmarshalJSON([]byte(`{"rule": "x"}`))
		assert.True(t, errors.IsErrorCode(err, errors.ErrRulesFormat))
	})
}

func TestSuggest(t *testing.T) {
	catalog := testCatalog()

	assert.Equal(t, []string{"wooden arrow"}, rules.Suggest("woden arrow", catalog, 5))

	fragments := rules.Suggest("*arow", catalog, 10)
	assert.Contains(t, fragments, "wooden arrow")
	assert.Contains(t, fragments, "steel arrow")
	assert.NotContains(t, fragments, "rag")

	assert.Len(t, rules.Suggest("*arow", catalog, 1), 1)
	assert.Nil(t, rules.Suggest("m:kevlr", catalog, 5))
	assert.Nil(t, rules.Suggest("ab", catalog, 5))
	assert.Nil(t, rules.Suggest("woden arrow", catalog, 0))
}

func patterns(l *rules.List) []string {
	var out []string
	for _, r := range l.Rules() {
		out = append(out, r.Pattern)
	}
	return out
}

package settings

import (
	"encoding/json"

	"github.com/arthur-debert/autopickup/pkg/cache"
	"github.com/arthur-debert/autopickup/pkg/rules"
	"github.com/arthur-debert/autopickup/pkg/types"
)

// NPCSettings is a follower's own rule list and cache. It is saved inside
// the NPC record rather than in a file of its own.
type NPCSettings struct {
	rules   *rules.List
	cache   *cache.Cache
	catalog types.Catalog
}

// NewNPC creates empty NPC settings classifying against catalog
func NewNPC(catalog types.Catalog) *NPCSettings {
	n := &NPCSettings{rules: rules.NewList(), catalog: catalog}
	n.cache = cache.New(func(c *cache.Cache) {
		n.rules.Apply(c, n.catalog)
	})
	n.rules.OnChange(n.Invalidate)
	return n
}

// Rules returns the NPC's list
func (n *NPCSettings) Rules() *rules.List {
	return n.rules
}

// Invalidate marks the cache stale
func (n *NPCSettings) Invalidate() {
	n.cache.Invalidate()
}

// Empty reports whether the NPC has no rules
func (n *NPCSettings) Empty() bool {
	return n.rules.Empty()
}

// CheckItem returns the cached verdict for name
func (n *NPCSettings) CheckItem(name string) types.Verdict {
	return n.cache.Check(name)
}

// CreateRule classifies one concrete item into the cache
func (n *NPCSettings) CreateRule(it types.Item) {
	if !n.cache.Ready() {
		n.cache.Rebuild()
	}
	n.rules.ApplyItem(n.cache, it)
}

// CreateRuleForName classifies a bare name, as when an NPC harvests
// something that is not an item yet. Material filters do not apply.
func (n *NPCSettings) CreateRuleForName(name string) {
	if !n.cache.Ready() {
		n.cache.Rebuild()
	}
	n.rules.ApplyName(n.cache, name)
}

// Classify returns the item's verdict, classifying it on demand
func (n *NPCSettings) Classify(it types.Item) types.Verdict {
	return classify(n.cache, it, n.CreateRule)
}

// MarshalJSON encodes the rule list
func (n *NPCSettings) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.rules)
}

// UnmarshalJSON replaces the rule list
func (n *NPCSettings) UnmarshalJSON(data []byte) error {
	return n.rules.UnmarshalJSON(data)
}

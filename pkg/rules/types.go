package rules

import (
	"github.com/arthur-debert/autopickup/pkg/errors"
	"github.com/arthur-debert/autopickup/pkg/matchers"
	"github.com/arthur-debert/autopickup/pkg/types"
)

// Rule is one user-authored auto-pickup pattern
type Rule struct {
	Pattern string `json:"rule" yaml:"rule" toml:"rule"`
	Active  bool   `json:"active" yaml:"active" toml:"active"`
	Exclude bool   `json:"exclude" yaml:"exclude" toml:"exclude"`
}

// NewRule builds a rule from user input. The pattern is trimmed and must not
// end up empty; use "*" to include or exclude everything.
func NewRule(pattern string, active, exclude bool) (Rule, error) {
	trimmed := matchers.TrimRule(pattern)
	if trimmed == "" {
		return Rule{}, errors.New(errors.ErrRuleInvalid, "rule pattern is empty").
			WithDetail("pattern", pattern)
	}
	return Rule{Pattern: trimmed, Active: active, Exclude: exclude}, nil
}

// Valid reports whether the pattern can match anything at all
func (r Rule) Valid() bool {
	return matchers.TrimRule(r.Pattern) != ""
}

// Matches tests the rule against an item name and material set
func (r Rule) Matches(name string, materials types.Materials) bool {
	if !r.Valid() {
		return false
	}
	return matchers.Match(name, materials, r.Pattern)
}

// Verdict is what the rule writes into the cache when it matches
func (r Rule) Verdict() types.Verdict {
	if r.Exclude {
		return types.VerdictBlacklisted
	}
	return types.VerdictWhitelisted
}

// Test lists every catalog name the rule matches, in catalog order.
// Only catalog names are considered; prefixes, suffixes and contents are not.
func (r Rule) Test(catalog types.Catalog) []string {
	if !r.Valid() || catalog == nil {
		return nil
	}

	seen := make(map[string]bool)
	var names []string
	for _, it := range catalog.All() {
		name := it.Name()
		if seen[name] || !r.Matches(name, it.Materials()) {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

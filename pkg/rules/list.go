package rules

import (
	"encoding/json"
	"strings"

	"github.com/arthur-debert/autopickup/pkg/cache"
	"github.com/arthur-debert/autopickup/pkg/errors"
	"github.com/arthur-debert/autopickup/pkg/logging"
	"github.com/arthur-debert/autopickup/pkg/matchers"
	"github.com/arthur-debert/autopickup/pkg/types"
	"github.com/rs/zerolog"
)

// List is an ordered set of rules for one scope
type List struct {
	rules    []Rule
	onChange func()
	logger   zerolog.Logger
}

// NewList creates a list holding rules in order
func NewList(rules ...Rule) *List {
	return &List{
		rules:  append([]Rule(nil), rules...),
		logger: logging.GetLogger("rules.list"),
	}
}

// OnChange registers the hook called after every mutation
func (l *List) OnChange(fn func()) {
	l.onChange = fn
}

func (l *List) changed() {
	if l.onChange != nil {
		l.onChange()
	}
}

// Len returns the number of rules
func (l *List) Len() int {
	return len(l.rules)
}

// Empty reports whether the list holds no rules
func (l *List) Empty() bool {
	return len(l.rules) == 0
}

// Rules returns a copy of the rules in order
func (l *List) Rules() []Rule {
	return append([]Rule(nil), l.rules...)
}

// At returns the rule at index i
func (l *List) At(i int) (Rule, error) {
	if err := l.checkIndex(i); err != nil {
		return Rule{}, err
	}
	return l.rules[i], nil
}

// IndexOf returns the index of the first rule whose pattern equals name
// ignoring case, or -1.
func (l *List) IndexOf(name string) int {
	for i, r := range l.rules {
		if strings.EqualFold(r.Pattern, name) {
			return i
		}
	}
	return -1
}

// Append adds a rule at the end of the list
func (l *List) Append(r Rule) error {
	return l.Insert(len(l.rules), r)
}

// Insert places a rule at index i, shifting later rules down
func (l *List) Insert(i int, r Rule) error {
	if !r.Valid() {
		return errors.New(errors.ErrRuleInvalid, "rule pattern is empty")
	}
	if i < 0 || i > len(l.rules) {
		return l.indexError(i)
	}
	l.rules = append(l.rules, Rule{})
	copy(l.rules[i+1:], l.rules[i:])
	l.rules[i] = r
	l.logger.Debug().Str("pattern", r.Pattern).Int("index", i).Msg("Rule added")
	l.changed()
	return nil
}

// Remove deletes the rule at index i
func (l *List) Remove(i int) error {
	_, err := l.Take(i)
	return err
}

// Take removes the rule at index i and returns it
func (l *List) Take(i int) (Rule, error) {
	if err := l.checkIndex(i); err != nil {
		return Rule{}, err
	}
	r := l.rules[i]
	l.rules = append(l.rules[:i], l.rules[i+1:]...)
	l.logger.Debug().Str("pattern", r.Pattern).Int("index", i).Msg("Rule removed")
	l.changed()
	return r, nil
}

// Copy appends a duplicate of the rule at index i
func (l *List) Copy(i int) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	l.rules = append(l.rules, l.rules[i])
	l.changed()
	return nil
}

// MoveUp swaps the rule at index i with its predecessor.
// The first rule stays put.
func (l *List) MoveUp(i int) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	if i == 0 {
		return nil
	}
	l.rules[i-1], l.rules[i] = l.rules[i], l.rules[i-1]
	l.changed()
	return nil
}

// MoveDown swaps the rule at index i with its successor.
// The last rule stays put.
func (l *List) MoveDown(i int) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	if i == len(l.rules)-1 {
		return nil
	}
	l.rules[i], l.rules[i+1] = l.rules[i+1], l.rules[i]
	l.changed()
	return nil
}

// SetActive enables or disables the rule at index i
func (l *List) SetActive(i int, active bool) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	l.rules[i].Active = active
	l.changed()
	return nil
}

// SetExclude switches the rule at index i between include and exclude
func (l *List) SetExclude(i int, exclude bool) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	l.rules[i].Exclude = exclude
	l.changed()
	return nil
}

// ToggleExclude flips the include/exclude flag of the rule at index i
func (l *List) ToggleExclude(i int) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	return l.SetExclude(i, !l.rules[i].Exclude)
}

// SetPattern replaces the pattern of the rule at index i. Blank patterns
// are rejected and leave the rule untouched.
func (l *List) SetPattern(i int, pattern string) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	trimmed := matchers.TrimRule(pattern)
	if trimmed == "" {
		return errors.New(errors.ErrRuleInvalid, "rule pattern is empty").WithDetail("index", i)
	}
	l.rules[i].Pattern = trimmed
	l.changed()
	return nil
}

// Replace swaps the whole content of the list. Rules are kept verbatim so
// that loaded files round-trip.
func (l *List) Replace(rules []Rule) {
	l.rules = append([]Rule(nil), rules...)
	l.changed()
}

// Clear removes every rule
func (l *List) Clear() {
	l.rules = nil
	l.changed()
}

// Apply replays the active rules into c. Include rules scan the whole
// catalog; exclude rules only narrow names already present in c.
func (l *List) Apply(c *cache.Cache, catalog types.Catalog) {
	var all []types.ItemType
	if catalog != nil {
		all = catalog.All()
	}

	for _, r := range l.rules {
		if !r.Active || !r.Valid() {
			continue
		}

		if !r.Exclude {
			matched := 0
			for _, it := range all {
				if !r.Matches(it.Name(), it.Materials()) {
					continue
				}
				c.Whitelist(it.Name(), it.Materials())
				matched++
			}
			l.logger.Trace().Str("pattern", r.Pattern).Int("matched", matched).Msg("Include rule applied")
			continue
		}

		excluded := 0
		for _, name := range c.Names() {
			entry, _ := c.Lookup(name)
			if !r.Matches(name, entry.Materials) {
				continue
			}
			c.Blacklist(name)
			excluded++
		}
		l.logger.Trace().Str("pattern", r.Pattern).Int("matched", excluded).Msg("Exclude rule applied")
	}
}

// ApplyItem classifies one concrete item against every active rule using
// the item's own materials. The last matching rule decides.
func (l *List) ApplyItem(c *cache.Cache, it types.Item) {
	name := it.Name()
	materials := it.Materials()
	for _, r := range l.rules {
		if !r.Active || !r.Matches(name, materials) {
			continue
		}
		c.Set(name, r.Verdict())
	}
}

// ApplyName classifies a bare name with wildcard rules only; material
// filters are ignored.
func (l *List) ApplyName(c *cache.Cache, name string) {
	for _, r := range l.rules {
		if !r.Active || !r.Valid() || !matchers.Wildcard(name, r.Pattern) {
			continue
		}
		c.Set(name, r.Verdict())
	}
}

// MarshalJSON encodes the list as an ordered array of rule records
func (l *List) MarshalJSON() ([]byte, error) {
	rules := l.rules
	if rules == nil {
		rules = []Rule{}
	}
	return json.Marshal(rules)
}

// UnmarshalJSON replaces the list content with the decoded records
func (l *List) UnmarshalJSON(data []byte) error {
	var rules []Rule
	if err := json.Unmarshal(data, &rules); err != nil {
		return errors.Wrap(err, errors.ErrRulesFormat, "invalid rule list")
	}
	l.Replace(rules)
	return nil
}

func (l *List) checkIndex(i int) error {
	if i < 0 || i >= len(l.rules) {
		return l.indexError(i)
	}
	return nil
}

func (l *List) indexError(i int) error {
	return errors.Newf(errors.ErrRuleIndex, "rule index %d out of range", i).
		WithDetail("index", i).
		WithDetail("len", len(l.rules))
}

package settings

import (
	"github.com/arthur-debert/autopickup/pkg/cache"
	"github.com/arthur-debert/autopickup/pkg/errors"
	"github.com/arthur-debert/autopickup/pkg/logging"
	"github.com/arthur-debert/autopickup/pkg/paths"
	"github.com/arthur-debert/autopickup/pkg/rules"
	"github.com/arthur-debert/autopickup/pkg/store"
	"github.com/arthur-debert/autopickup/pkg/types"
	"github.com/rs/zerolog"
)

// Files tells PlayerSettings where its lists persist. SaveBase is the
// character's save path without extension; empty means no character.
type Files struct {
	Global   string
	SaveBase string
}

// PlayerSettings is the player's global and character rule lists sharing
// one cache.
type PlayerSettings struct {
	global    *rules.List
	character *rules.List
	cache     *cache.Cache
	catalog   types.Catalog
	store     *store.Store
	files     Files
	logger    zerolog.Logger
}

// NewPlayer creates empty player settings classifying against catalog
func NewPlayer(catalog types.Catalog, st *store.Store, files Files) *PlayerSettings {
	p := &PlayerSettings{
		global:    rules.NewList(),
		character: rules.NewList(),
		catalog:   catalog,
		store:     st,
		files:     files,
		logger:    logging.GetLogger("settings"),
	}
	p.cache = cache.New(p.rebuild)
	p.global.OnChange(p.Invalidate)
	p.character.OnChange(p.Invalidate)
	return p
}

func (p *PlayerSettings) rebuild(c *cache.Cache) {
	p.global.Apply(c, p.catalog)
	p.character.Apply(c, p.catalog)
}

// Global returns the list shared by every character
func (p *PlayerSettings) Global() *rules.List {
	return p.global
}

// Character returns the current character's list
func (p *PlayerSettings) Character() *rules.List {
	return p.character
}

// List returns the list for scope
func (p *PlayerSettings) List(scope Scope) *rules.List {
	if scope == ScopeCharacter {
		return p.character
	}
	return p.global
}

// Cache exposes the classification cache, mostly for inspection
func (p *PlayerSettings) Cache() *cache.Cache {
	return p.cache
}

// Invalidate marks the cache stale
func (p *PlayerSettings) Invalidate() {
	p.cache.Invalidate()
}

// Empty reports whether neither list holds a rule
func (p *PlayerSettings) Empty() bool {
	return p.global.Empty() && p.character.Empty()
}

// CheckItem returns the cached verdict for name
func (p *PlayerSettings) CheckItem(name string) types.Verdict {
	return p.cache.Check(name)
}

// CreateRule classifies one concrete item into the cache, global rules
// first.
func (p *PlayerSettings) CreateRule(it types.Item) {
	if !p.cache.Ready() {
		p.cache.Rebuild()
	}
	p.global.ApplyItem(p.cache, it)
	p.character.ApplyItem(p.cache, it)
}

// Classify returns the item's verdict, classifying it on demand when the
// cache has nothing for its name.
func (p *PlayerSettings) Classify(it types.Item) types.Verdict {
	return classify(p.cache, it, p.CreateRule)
}

// AddRule adds a character rule for the item's name, include or exclude,
// and classifies the item right away.
func (p *PlayerSettings) AddRule(it types.Item, include bool) error {
	r, err := rules.NewRule(it.Name(), true, !include)
	if err != nil {
		return err
	}
	if err := p.character.Append(r); err != nil {
		return err
	}
	p.CreateRule(it)
	return nil
}

// RemoveRule deletes the first character rule whose pattern is the item's
// name, ignoring case. It reports whether a rule was removed.
func (p *PlayerSettings) RemoveRule(it types.Item) bool {
	i := p.character.IndexOf(it.Name())
	if i < 0 {
		return false
	}
	return p.character.Remove(i) == nil
}

// HasRule reports whether a character rule names the item exactly
func (p *PlayerSettings) HasRule(it types.Item) bool {
	return p.character.IndexOf(it.Name()) >= 0
}

// ClearCharacterRules empties the character list
func (p *PlayerSettings) ClearCharacterRules() {
	p.character.Clear()
}

// SwapScope moves rule i from one list to the end of the other
func (p *PlayerSettings) SwapScope(from Scope, i int) error {
	src, dst := p.List(from), p.List(from.Other())
	r, err := src.At(i)
	if err != nil {
		return err
	}
	// blank loaded patterns cannot be appended; leave them where they are
	if !r.Valid() {
		return errors.Newf(errors.ErrRuleScope, "cannot move rule %d to %s rules: pattern is empty", i, from.Other()).
			WithDetail("index", i)
	}
	if err := dst.Append(r); err != nil {
		return errors.Wrapf(err, errors.ErrRuleScope, "cannot move rule %d to %s rules", i, from.Other())
	}
	_, err = src.Take(i)
	return err
}

// HasCharacter reports whether a character save base is configured
func (p *PlayerSettings) HasCharacter() bool {
	return p.files.SaveBase != ""
}

// LoadGlobal replaces the global list with the global rules file
func (p *PlayerSettings) LoadGlobal() error {
	return p.store.LoadInto(p.files.Global, p.global)
}

// LoadCharacter replaces the character list with the character's rules
// file. Without a character the list is just cleared.
func (p *PlayerSettings) LoadCharacter() error {
	path := paths.CharacterRulesPath(p.files.SaveBase)
	if path == "" {
		p.character.Clear()
		return nil
	}
	return p.store.LoadInto(path, p.character)
}

// Load reads both lists
func (p *PlayerSettings) Load() error {
	if err := p.LoadGlobal(); err != nil {
		return err
	}
	return p.LoadCharacter()
}

// SaveGlobal writes the global list
func (p *PlayerSettings) SaveGlobal() error {
	return p.store.SaveList(p.files.Global, p.global)
}

// SaveCharacter writes the character list. Nothing is written until the
// character has a save of its own.
func (p *PlayerSettings) SaveCharacter() error {
	if !paths.CharacterSaved(p.store.Fs(), p.files.SaveBase) {
		p.logger.Debug().Str("save", p.files.SaveBase).Msg("Character not saved yet, skipping rules")
		return nil
	}
	return p.store.SaveList(paths.CharacterRulesPath(p.files.SaveBase), p.character)
}

// Save writes the list for scope
func (p *PlayerSettings) Save(scope Scope) error {
	if scope == ScopeCharacter {
		return p.SaveCharacter()
	}
	return p.SaveGlobal()
}

func classify(c *cache.Cache, it types.Item, create func(types.Item)) types.Verdict {
	if v := c.Check(it.Name()); v != types.VerdictNone {
		return v
	}
	create(it)
	return c.Check(it.Name())
}

package pickup

import (
	"strings"

	"github.com/arthur-debert/autopickup/pkg/logging"
	"github.com/arthur-debert/autopickup/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultMaxDepth bounds the container nesting the engine descends into
const DefaultMaxDepth = 16

// Classifier resolves an item to its rule verdict
type Classifier interface {
	Classify(it types.Item) types.Verdict
}

// Selection is one item chosen for pickup. Quantity 0 means the whole stack.
type Selection struct {
	Location types.Location
	Quantity int
}

// Engine selects items for auto-pickup
type Engine struct {
	options  types.Options
	rules    Classifier
	world    types.Map
	logger   zerolog.Logger
	MaxDepth int
	// Actor is who picks up. Items owned by anyone else are left alone
	// unless PickupOwned is set.
	Actor string
}

// NewEngine creates an engine. Items stripped out of containers are dropped
// on world.
func NewEngine(opts types.Options, rules Classifier, world types.Map) *Engine {
	return &Engine{
		options:  opts,
		rules:    rules,
		world:    world,
		logger:   logging.GetLogger("pickup.engine"),
		MaxDepth: DefaultMaxDepth,
	}
}

// Options returns the options in effect
func (e *Engine) Options() types.Options {
	return e.options
}

// SetOptions replaces the options used by later selections
func (e *Engine) SetOptions(opts types.Options) {
	e.options = opts
}

// SelectItems returns the items of stack, lying on tile, to pick up. It
// returns nil when auto-pickup is off.
func (e *Engine) SelectItems(stack []types.Item, tile types.Point) []Selection {
	if !e.options.Enabled {
		return nil
	}

	logger := e.logger.With().Str("tile", tile.String()).Logger()
	var result []Selection
	for _, it := range stack {
		if e.skipOwned(it) {
			logger.Trace().Str("item", it.Name()).Str("owner", it.Owner()).Msg("Skipping owned item")
			continue
		}
		// spilt liquids stay where they are
		if it.IsLiquid() {
			continue
		}

		loc := types.OnTile(tile, it)
		verdict := e.rules.Classify(it)
		switch {
		case verdict == types.VerdictWhitelisted:
			if it.IsContainer() {
				e.emptyTarget(it, tile)
			}
			// still too big once emptied
			if !e.options.WithinLimits(it) {
				logger.Trace().Str("item", it.Name()).Msg("Whitelisted item over limits")
				continue
			}
			result = append(result, Selection{Location: loc})
		case (it.IsContainer() && !it.IsContainerEmpty()) || it.BatteryCapacity() > 0:
			for _, nested := range e.selectContents(loc) {
				result = append(result, Selection{Location: nested})
			}
		}
	}

	logger.Debug().Int("stack", len(stack)).Int("selected", len(result)).Msg("Auto-pickup selection")
	return result
}

// selectContents returns the locations to take out of the container at
// from. A result of exactly {from} means the container itself is taken.
func (e *Engine) selectContents(from types.Location) []types.Location {
	container := from.Item
	if e.skipOwned(container) {
		return nil
	}
	if from.Depth() >= e.maxDepth() {
		e.logger.Warn().
			Str("container", container.Name()).
			Int("depth", from.Depth()).
			Msg("Container nesting too deep, not descending")
		return nil
	}

	// sealed contents are never unsealed
	force := container.AnyPocketsSealed()
	all := true
	anyWhitelisted := false

	contents := container.Contents()
	result := make([]types.Location, 0, len(contents))
	for _, entry := range contents {
		if !e.options.WithinLimits(entry) {
			all = false
			continue
		}

		loc := types.Inside(from, entry)
		verdict := e.rules.Classify(entry)
		if verdict == types.VerdictWhitelisted {
			anyWhitelisted = true
			if force {
				continue
			}
			if entry.IsContainer() {
				e.emptyTarget(entry, from.Tile)
			} else if entry.IsLiquid() {
				// liquids only travel in their container
				force = true
				break
			}
			result = append(result, loc)
			continue
		}

		if !force && entry.IsContainer() && !entry.IsContainerEmpty() {
			nested := e.selectContents(loc)
			if len(nested) != 1 || !nested[0].Equal(loc) {
				all = false
			}
			result = append(result, nested...)
			continue
		}

		all = false
	}

	if len(contents) == 0 || !(all || force) {
		return result
	}

	// Everything inside was wanted; decide whether to take the container.
	verdict := e.rules.Classify(container)
	if verdict == types.VerdictBlacklisted || !anyWhitelisted ||
		(container.IsCorpse() && verdict != types.VerdictWhitelisted) {
		return result
	}

	powered := container.BatteryCapacity() > 0
	onlyBatteries := powered && allBatteries(result)
	switch {
	case e.options.WithinLimits(container) && !onlyBatteries:
		return []types.Location{from}
	case force:
		return nil
	}
	return result
}

// emptyTarget drops unwanted contents of container onto tile. Rigid
// containers keep all but blacklisted entries; soft ones keep only
// whitelisted entries.
func (e *Engine) emptyTarget(container types.Item, tile types.Point) {
	rigid := container.AllPocketsRigid()
	for _, entry := range container.Contents() {
		verdict := e.rules.Classify(entry)
		drop := verdict != types.VerdictWhitelisted
		if rigid {
			drop = verdict == types.VerdictBlacklisted
		}
		if !drop {
			continue
		}
		removed := container.RemoveItem(entry)
		if removed == nil {
			continue
		}
		e.logger.Trace().
			Str("container", container.Name()).
			Str("item", removed.Name()).
			Msg("Dropping unwanted content")
		e.world.AddItem(tile, removed)
	}
}

func (e *Engine) skipOwned(it types.Item) bool {
	if e.options.PickupOwned {
		return false
	}
	owner := it.Owner()
	return owner != "" && !strings.EqualFold(owner, e.Actor)
}

func (e *Engine) maxDepth() int {
	if e.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return e.MaxDepth
}

func allBatteries(locs []types.Location) bool {
	for _, l := range locs {
		if !l.Item.IsBattery() {
			return false
		}
	}
	return true
}

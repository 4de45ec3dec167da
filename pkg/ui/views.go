package ui

// RuleRow is one rule of a listed rule list
type RuleRow struct {
	Index   int    `json:"index"`
	Pattern string `json:"pattern"`
	Active  bool   `json:"active"`
	Exclude bool   `json:"exclude"`
}

// RulesView is a rule list with where it came from
type RulesView struct {
	Scope string    `json:"scope"`
	Path  string    `json:"path,omitempty"`
	Rules []RuleRow `json:"rules"`
}

// VerdictView is the classification of one item name
type VerdictView struct {
	Name    string `json:"name"`
	Verdict string `json:"verdict"`
}

// MatchView lists what a pattern matches in the catalog. Suggestions are
// offered when nothing matched.
type MatchView struct {
	Pattern     string   `json:"pattern"`
	Matches     []string `json:"matches"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// PickedItem is one selected item; Path runs from the tile down to it
type PickedItem struct {
	Path     []string `json:"path"`
	Quantity int      `json:"quantity,omitempty"`
}

// TileView is the auto-pickup outcome on one tile
type TileView struct {
	Tile     string       `json:"tile"`
	Picked   []PickedItem `json:"picked"`
	Left     []string     `json:"left"`
	Disabled bool         `json:"disabled,omitempty"`
}

// OptionsView shows the pickup options and their file
type OptionsView struct {
	Path        string `json:"path"`
	Enabled     bool   `json:"enabled"`
	PickupOwned bool   `json:"pickup_owned"`
	WeightLimit int    `json:"weight_limit"`
	VolumeLimit int    `json:"volume_limit"`
	MaxWeight   int64  `json:"max_weight_g"`
	MaxVolume   int64  `json:"max_volume_ml"`
}

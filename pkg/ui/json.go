package ui

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/autopickup/pkg/style"
)

// jsonRenderer provides JSON output for machine consumption
type jsonRenderer struct {
	encoder *json.Encoder
}

func newJSONRenderer(output io.Writer) *jsonRenderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &jsonRenderer{encoder: encoder}
}

func (r *jsonRenderer) RenderRules(views []RulesView) error {
	for i := range views {
		if views[i].Rules == nil {
			views[i].Rules = []RuleRow{}
		}
	}
	return r.encoder.Encode(views)
}

func (r *jsonRenderer) RenderVerdicts(views []VerdictView) error {
	return r.encoder.Encode(views)
}

func (r *jsonRenderer) RenderMatches(view MatchView) error {
	if view.Matches == nil {
		view.Matches = []string{}
	}
	return r.encoder.Encode(view)
}

func (r *jsonRenderer) RenderTiles(views []TileView) error {
	for i := range views {
		if views[i].Picked == nil {
			views[i].Picked = []PickedItem{}
		}
		if views[i].Left == nil {
			views[i].Left = []string{}
		}
	}
	return r.encoder.Encode(views)
}

func (r *jsonRenderer) RenderOptions(view OptionsView) error {
	return r.encoder.Encode(view)
}

func (r *jsonRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": style.Strip(msg)})
}

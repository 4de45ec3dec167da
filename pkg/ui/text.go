package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/autopickup/pkg/style"
)

// textRenderer provides plain text output without colors or styling
type textRenderer struct {
	output io.Writer
}

func newTextRenderer(output io.Writer) *textRenderer {
	return &textRenderer{output: output}
}

func (r *textRenderer) RenderRules(views []RulesView) error {
	for i, v := range views {
		if i > 0 {
			fmt.Fprintln(r.output)
		}
		fmt.Fprintf(r.output, "%s rules", v.Scope)
		if v.Path != "" {
			fmt.Fprintf(r.output, " (%s)", v.Path)
		}
		fmt.Fprintln(r.output, ":")
		if len(v.Rules) == 0 {
			fmt.Fprintln(r.output, "  (none)")
			continue
		}
		for _, row := range v.Rules {
			fmt.Fprintf(r.output, "  %2d %s %s\n", row.Index, ruleMark(row), row.Pattern)
		}
	}
	return nil
}

func (r *textRenderer) RenderVerdicts(views []VerdictView) error {
	for _, v := range views {
		fmt.Fprintf(r.output, "%s: %s\n", v.Name, v.Verdict)
	}
	return nil
}

func (r *textRenderer) RenderMatches(view MatchView) error {
	if len(view.Matches) == 0 {
		fmt.Fprintf(r.output, "%q matches nothing in the catalog\n", view.Pattern)
		if len(view.Suggestions) > 0 {
			fmt.Fprintf(r.output, "Did you mean: %s\n", strings.Join(view.Suggestions, ", "))
		}
		return nil
	}
	fmt.Fprintf(r.output, "%q matches:\n", view.Pattern)
	for _, name := range view.Matches {
		fmt.Fprintf(r.output, "  %s\n", name)
	}
	return nil
}

func (r *textRenderer) RenderTiles(views []TileView) error {
	for i, v := range views {
		if i > 0 {
			fmt.Fprintln(r.output)
		}
		fmt.Fprintf(r.output, "tile %s:\n", v.Tile)
		if v.Disabled {
			fmt.Fprintln(r.output, "  auto-pickup is disabled")
			continue
		}
		if len(v.Picked) == 0 {
			fmt.Fprintln(r.output, "  nothing picked up")
		}
		for _, p := range v.Picked {
			fmt.Fprintf(r.output, "  picked %s\n", pickedText(p))
		}
		for _, name := range v.Left {
			fmt.Fprintf(r.output, "  left   %s\n", name)
		}
	}
	return nil
}

func (r *textRenderer) RenderOptions(view OptionsView) error {
	fmt.Fprintf(r.output, "file:          %s\n", view.Path)
	fmt.Fprintf(r.output, "enabled:       %t\n", view.Enabled)
	fmt.Fprintf(r.output, "pickup owned:  %t\n", view.PickupOwned)
	fmt.Fprintf(r.output, "weight limit:  %s\n", limitText(view.WeightLimit, view.MaxWeight, "g"))
	fmt.Fprintf(r.output, "volume limit:  %s\n", limitText(view.VolumeLimit, view.MaxVolume, "ml"))
	return nil
}

func (r *textRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.Strip(msg))
	return err
}

func ruleMark(row RuleRow) string {
	switch {
	case !row.Active:
		return "o"
	case row.Exclude:
		return "-"
	default:
		return "+"
	}
}

func pickedText(p PickedItem) string {
	s := strings.Join(p.Path, " > ")
	if p.Quantity > 0 {
		s += fmt.Sprintf(" (x%d)", p.Quantity)
	}
	return s
}

func limitText(steps int, max int64, unit string) string {
	if steps <= 0 {
		return "none"
	}
	return fmt.Sprintf("%d (%d %s)", steps, max, unit)
}

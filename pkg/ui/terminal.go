package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/autopickup/pkg/style"
	"github.com/arthur-debert/autopickup/pkg/types"
	"github.com/pterm/pterm"
)

// terminalRenderer provides rich terminal output with pterm tables and the
// style package's colors
type terminalRenderer struct {
	output io.Writer
}

func newTerminalRenderer(output io.Writer) *terminalRenderer {
	return &terminalRenderer{output: output}
}

func (r *terminalRenderer) table(data pterm.TableData) error {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, s)
	return err
}

func (r *terminalRenderer) RenderRules(views []RulesView) error {
	for i, v := range views {
		if i > 0 {
			fmt.Fprintln(r.output)
		}
		scope := v.Scope
		if scope != "" {
			scope = strings.ToUpper(scope[:1]) + scope[1:]
		}
		title := style.TitleStyle.Render(scope + " rules")
		if v.Path != "" {
			title += " " + style.PathStyle.Render(v.Path)
		}
		fmt.Fprintln(r.output, title)
		if len(v.Rules) == 0 {
			fmt.Fprintln(r.output, style.MutedStyle.Render("  no rules"))
			continue
		}

		data := pterm.TableData{{"#", "", "Pattern"}}
		for _, row := range v.Rules {
			data = append(data, []string{
				strconv.Itoa(row.Index),
				style.RuleIndicator(row.Active, row.Exclude),
				style.RenderPattern(row.Pattern, row.Active, row.Exclude),
			})
		}
		if err := r.table(data); err != nil {
			return err
		}
	}
	return nil
}

func (r *terminalRenderer) RenderVerdicts(views []VerdictView) error {
	data := pterm.TableData{{"Item", "Verdict"}}
	for _, v := range views {
		data = append(data, []string{v.Name, style.RenderVerdict(types.ParseVerdict(v.Verdict))})
	}
	return r.table(data)
}

func (r *terminalRenderer) RenderMatches(view MatchView) error {
	pattern := style.CodeStyle.Render(view.Pattern)
	if len(view.Matches) == 0 {
		fmt.Fprintln(r.output, style.WarningStyle.Render("No catalog item matches")+" "+pattern)
		if len(view.Suggestions) > 0 {
			fmt.Fprintln(r.output, style.InfoStyle.Render("Did you mean: ")+strings.Join(view.Suggestions, ", "))
		}
		return nil
	}
	fmt.Fprintln(r.output, pattern+" "+style.MutedStyle.Render(fmt.Sprintf("matches %d item(s)", len(view.Matches))))
	for _, name := range view.Matches {
		fmt.Fprintln(r.output, style.Indent(style.WhitelistStyle.Render(name), 1))
	}
	return nil
}

func (r *terminalRenderer) RenderTiles(views []TileView) error {
	for i, v := range views {
		if i > 0 {
			fmt.Fprintln(r.output)
		}
		fmt.Fprintln(r.output, style.TitleStyle.Render("Tile "+v.Tile))
		if v.Disabled {
			fmt.Fprintln(r.output, style.WarningStyle.Render("auto-pickup is disabled"))
			continue
		}

		data := pterm.TableData{{"", "Item", "Qty"}}
		for _, p := range v.Picked {
			qty := "all"
			if p.Quantity > 0 {
				qty = strconv.Itoa(p.Quantity)
			}
			data = append(data, []string{style.IncludeIndicator, strings.Join(p.Path, " › "), qty})
		}
		for _, name := range v.Left {
			data = append(data, []string{style.InactiveIndicator, style.MutedStyle.Render(name), ""})
		}
		if len(data) == 1 {
			fmt.Fprintln(r.output, style.MutedStyle.Render("  empty"))
			continue
		}
		if err := r.table(data); err != nil {
			return err
		}
	}
	return nil
}

func (r *terminalRenderer) RenderOptions(view OptionsView) error {
	fmt.Fprintln(r.output, style.TitleStyle.Render("Auto-pickup options")+" "+style.PathStyle.Render(view.Path))
	data := pterm.TableData{
		{"Option", "Value"},
		{"enabled", onOff(view.Enabled)},
		{"pickup_owned", onOff(view.PickupOwned)},
		{"weight_limit", limitText(view.WeightLimit, view.MaxWeight, "g")},
		{"volume_limit", limitText(view.VolumeLimit, view.MaxVolume, "ml")},
	}
	return r.table(data)
}

func (r *terminalRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.Render(msg))
	return err
}

func onOff(b bool) string {
	if b {
		return style.WhitelistStyle.Render("on")
	}
	return style.BlacklistStyle.Render("off")
}

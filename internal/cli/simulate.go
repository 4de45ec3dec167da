package cli

import (
	"strings"

	"github.com/arthur-debert/autopickup/pkg/config"
	"github.com/arthur-debert/autopickup/pkg/errors"
	"github.com/arthur-debert/autopickup/pkg/paths"
	"github.com/arthur-debert/autopickup/pkg/pickup"
	"github.com/arthur-debert/autopickup/pkg/types"
	"github.com/arthur-debert/autopickup/pkg/ui"
	"github.com/arthur-debert/autopickup/pkg/world"
	"github.com/spf13/cobra"
)

func newSimulateCmd(g *globalFlags) *cobra.Command {
	var (
		sets     []string
		maxDepth int
		actor    string
	)

	cmd := &cobra.Command{
		Use:     "simulate SCENARIO",
		Aliases: []string{"sim"},
		Short:   MsgSimulateShort,
		Long:    MsgSimulateLong,
		Example: `  autopickup simulate camp.yaml
  autopickup simulate --set weight_limit=20 --set pickup_owned=true camp.yaml`,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := parseSets(sets)
			if err != nil {
				return err
			}

			a, err := newApp(g)
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			opts, err := config.Load(a.paths.OptionsPath(), overrides)
			if err != nil {
				return err
			}

			scenario, err := world.LoadScenario(a.fs, paths.ExpandHome(args[0]))
			if err != nil {
				return err
			}
			m, err := scenario.Build(a.catalog)
			if err != nil {
				return err
			}
			// the scenario may have added catalog types
			a.player.Invalidate()

			engine := pickup.NewEngine(opts, a.player, m)
			if maxDepth > 0 {
				engine.MaxDepth = maxDepth
			}
			engine.Actor = actor
			return r.RenderTiles(simulate(engine, m))
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, MsgFlagSet)
	cmd.Flags().IntVar(&maxDepth, "max-depth", pickup.DefaultMaxDepth, MsgFlagMaxDepth)
	cmd.Flags().StringVar(&actor, "actor", "player", MsgFlagActor)
	return cmd
}

// simulate runs the engine over every tile of m, taking what it selects
func simulate(engine *pickup.Engine, m *world.Map) []ui.TileView {
	tiles := m.Tiles()
	views := make([]ui.TileView, 0, len(tiles))
	for _, tile := range tiles {
		view := ui.TileView{Tile: tile.String(), Disabled: !engine.Options().Enabled}

		for _, sel := range engine.SelectItems(m.Stack(tile), tile) {
			if _, ok := m.Take(sel.Location); !ok {
				continue
			}
			view.Picked = append(view.Picked, ui.PickedItem{Path: locationPath(sel.Location), Quantity: sel.Quantity})
		}
		// emptied containers drop their unwanted contents here too
		for _, it := range m.Stack(tile) {
			view.Left = append(view.Left, it.Name())
		}
		views = append(views, view)
	}
	return views
}

// locationPath lists the names from the outermost container down to the item
func locationPath(loc types.Location) []string {
	path := make([]string, loc.Depth()+1)
	i := len(path) - 1
	for l := &loc; l != nil; l = l.Parent {
		path[i] = l.Item.Name()
		i--
	}
	return path
}

func parseSets(sets []string) (map[string]interface{}, error) {
	if len(sets) == 0 {
		return nil, nil
	}
	overrides := make(map[string]interface{}, len(sets))
	for _, s := range sets {
		key, value, ok := strings.Cut(s, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, MsgErrSetFlag, s).WithDetail("set", s)
		}
		overrides[strings.ToLower(key)] = strings.TrimSpace(value)
	}
	return overrides, nil
}

package cli

import (
	"github.com/arthur-debert/autopickup/pkg/ui"
	"github.com/spf13/cobra"
)

func newCheckCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check NAME...",
		Short: MsgCheckShort,
		Long: `Check shows how the current rules classify each item. NAME is a catalog ID
or item name; names missing from the catalog are classified by name alone.`,
		Example: `  autopickup check arrow_steel "copper wire"`,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(g)
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			views := make([]ui.VerdictView, 0, len(args))
			for _, arg := range args {
				it := itemFor(a.catalog, arg)
				v := a.player.Classify(it)
				a.logger.Debug().Str("item", it.Name()).Str("verdict", v.String()).Msg("Checked item")
				views = append(views, ui.VerdictView{Name: it.Name(), Verdict: v.String()})
			}
			return r.RenderVerdicts(views)
		},
	}
}

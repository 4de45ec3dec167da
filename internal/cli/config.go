package cli

import (
	"fmt"

	"github.com/arthur-debert/autopickup/pkg/config"
	"github.com/arthur-debert/autopickup/pkg/paths"
	"github.com/arthur-debert/autopickup/pkg/types"
	"github.com/arthur-debert/autopickup/pkg/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newConfigCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "core",
	}
	cmd.AddCommand(newConfigShowCmd(g), newConfigToggleCmd(g))
	return cmd
}

// optionsPath resolves the options file without loading any rules
func optionsPath(g *globalFlags) (string, error) {
	p, err := paths.New(g.configDir)
	if err != nil {
		return "", err
	}
	return p.OptionsPath(), nil
}

func optionsView(path string, opts types.Options) ui.OptionsView {
	return ui.OptionsView{
		Path:        path,
		Enabled:     opts.Enabled,
		PickupOwned: opts.PickupOwned,
		WeightLimit: opts.WeightLimit,
		VolumeLimit: opts.VolumeLimit,
		MaxWeight:   int64(opts.MaxWeight()),
		MaxVolume:   int64(opts.MaxVolume()),
	}
}

func newConfigShowCmd(g *globalFlags) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultsContent())
				return err
			}

			path, err := optionsPath(g)
			if err != nil {
				return err
			}
			opts, err := config.Load(path, nil)
			if err != nil {
				return err
			}
			format, err := ui.ParseFormat(g.format)
			if err != nil {
				return err
			}
			r, err := ui.NewRenderer(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.RenderOptions(optionsView(path, opts))
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newConfigToggleCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: MsgConfigToggleShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := optionsPath(g)
			if err != nil {
				return err
			}
			opts, err := config.Toggle(afero.NewOsFs(), path)
			if err != nil {
				return err
			}
			format, err := ui.ParseFormat(g.format)
			if err != nil {
				return err
			}
			r, err := ui.NewRenderer(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			state := "off"
			if opts.Enabled {
				state = "on"
			}
			return r.RenderMessage(fmt.Sprintf(MsgToggled, state))
		},
	}
}

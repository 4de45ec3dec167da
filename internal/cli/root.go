// Package cli is the autopickup command line.
package cli

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/autopickup/internal/version"
	"github.com/arthur-debert/autopickup/pkg/cobrax/topics"
	"github.com/arthur-debert/autopickup/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// globalFlags are the persistent flags every command sees
type globalFlags struct {
	verbosity int
	configDir string
	catalog   string
	save      string
	format    string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "autopickup",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.CommandPath()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&g.configDir, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&g.catalog, "catalog", "", MsgFlagCatalog)
	rootCmd.PersistentFlags().StringVar(&g.save, "save", "", MsgFlagSave)
	rootCmd.PersistentFlags().StringVarP(&g.format, "format", "o", "auto", MsgFlagFormat)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	content, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		panic(err)
	}
	tm, err := topics.Load(content, topics.Options{
		Extensions: []string{".txt", ".md"},
		Renderer:   topics.NewGlamourRenderer(),
	})
	if err != nil {
		panic(err)
	}

	rootCmd.AddCommand(newRulesCmd(g))
	rootCmd.AddCommand(newCheckCmd(g))
	rootCmd.AddCommand(newSimulateCmd(g))
	rootCmd.AddCommand(newConfigCmd(g))
	rootCmd.AddCommand(newSyntaxCmd(tm))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	tm.Install(rootCmd)
	return rootCmd
}

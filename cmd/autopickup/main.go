package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/autopickup/internal/cli"
	"github.com/arthur-debert/autopickup/pkg/errors"
	"github.com/arthur-debert/autopickup/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))

		// wrong indexes and scopes are worth a pointer to the listing
		if errors.IsErrorCode(err, errors.ErrRuleIndex) || errors.IsErrorCode(err, errors.ErrRuleScope) {
			fmt.Fprintln(os.Stderr, style.MutedStyle.Render("Run 'autopickup rules list' to see the rules and their indexes."))
		}
		os.Exit(1)
	}
}

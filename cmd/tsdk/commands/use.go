package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use [location]",
		Short: "Select the TypeScript SDK at the given lib directory",
		Long: `Select the TypeScript SDK at the given lib directory.

Pass "default" (or no argument) to switch back to the bundled SDK.
The location must be one of the SDKs discovered in the workspace;
run "tsdk list" to see them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location := "default"
			if len(args) == 1 {
				location = args[0]
			}

			snap, err := c.app.Use(cmd.Context(), location)
			if err != nil {
				return err
			}

			cmdo := cmd.OutOrStdout()
			if snap.Current != nil && snap.Current.Valid() {
				_, _ = fmt.Fprintf(cmdo, "now using TypeScript %s (%s)\n", snap.Current.Version(), snap.Current.Location())
			} else if snap.Current != nil {
				_, _ = fmt.Fprintf(cmdo, "now using SDK at %s\n", snap.Current.Location())
			}
			return nil
		},
	}
}

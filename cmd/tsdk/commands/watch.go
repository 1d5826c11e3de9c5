package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the workspace and keep the SDK selection up to date",
		Long: `Watch the workspace and keep the SDK selection up to date.

The watcher tracks workspace folders, the workfile and the settings
file, re-discovers SDKs when package manifests change on disk, and
re-applies the selection rules. It runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Watch(cmd.Context())
		},
	}
}

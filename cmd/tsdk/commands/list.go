package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/tsdk/internal/app"
	"go.trai.ch/tsdk/internal/core/domain"
	"go.trai.ch/tsdk/internal/ui/style"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the bundled and workspace TypeScript SDKs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := c.app.List(cmd.Context())
			if err != nil {
				return err
			}
			renderSnapshot(cmd.OutOrStdout(), snap)
			return nil
		},
	}
}

func renderSnapshot(w io.Writer, snap *app.Snapshot) {
	if snap.Default != nil {
		writeRecord(w, snap, snap.Default, " (default)")
	}
	for _, rec := range snap.Versions {
		writeRecord(w, snap, rec, "")
	}
	_, _ = fmt.Fprintf(w, "\nworkspace SDK in use: %t\n", snap.UseWorkspace)
}

func writeRecord(w io.Writer, snap *app.Snapshot, rec *domain.VersionRecord, suffix string) {
	marker := style.Muted.Render(style.Circle)
	if rec.Equal(snap.Current) {
		marker = style.Active.Render(style.Dot)
	}
	version := rec.Version()
	if !rec.Valid() {
		version = style.Invalid.Render("invalid")
	}
	_, _ = fmt.Fprintf(w, "%s %s%s  %s\n", marker, version, suffix, style.Muted.Render(rec.Location()))
}

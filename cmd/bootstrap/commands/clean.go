package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bootstrap/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the build artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			buildDir, _ := cmd.Flags().GetString("build-dir")
			verbose, _ := cmd.Flags().GetBool("verbose")

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				BuildDir: buildDir,
				Verbose:  verbose,
			})
		},
	}
	addGlobalFlags(cmd)
	return cmd
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bootstrap/internal/app"
)

func (c *CLI) newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Build the package manager, then test it with itself",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parallel, _ := cmd.Flags().GetBool("parallel")
			filters, _ := cmd.Flags().GetStringArray("filter")

			return c.app.Test(cmd.Context(), app.TestOptions{
				BuildOptions: buildOptions(cmd),
				Parallel:     parallel,
				Filters:      filters,
			})
		},
	}
	addBuildFlags(cmd)
	cmd.Flags().Bool("parallel", true, "Run the tests in parallel")
	cmd.Flags().StringArray("filter", nil, "Filter which tests to run; repeatable")
	return cmd
}

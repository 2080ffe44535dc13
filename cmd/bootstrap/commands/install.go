package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bootstrap/internal/app"
	"go.trai.ch/bootstrap/internal/core/domain"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "install",
		Short:  "Build the package manager, then install its build products",
		Args:   cobra.NoArgs,
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefix, _ := cmd.Flags().GetString("prefix")
			libSwiftPM, _ := cmd.Flags().GetBool("libswiftpm")

			return c.app.Install(cmd.Context(), app.InstallOptions{
				BuildOptions: buildOptions(cmd),
				Prefix:       prefix,
				LibSwiftPM:   libSwiftPM,
			})
		},
	}
	addBuildFlags(cmd)
	cmd.Flags().String("prefix", domain.DefaultInstallPrefix, "Installation prefix")
	cmd.Flags().Bool("libswiftpm", false, "Additionally install the package manager libraries")
	return cmd
}

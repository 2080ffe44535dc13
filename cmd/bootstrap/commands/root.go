// Package commands implements the CLI commands for the bootstrap tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/bootstrap/internal/app"
	"go.trai.ch/bootstrap/internal/build"
	"go.trai.ch/bootstrap/internal/core/domain"
)

// defaultVerb is dispatched when the binary is invoked without a verb.
const defaultVerb = "build"

// CLI represents the command line interface for bootstrap.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) error
	Test(ctx context.Context, opts app.TestOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
	Install(ctx context.Context, opts app.InstallOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "bootstrap",
		Short:         "Bootstraps the package manager through a staged build pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newTestCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Invoking the tool with
// no arguments dispatches to the default verb.
func (c *CLI) SetArgs(args []string) {
	if len(args) == 0 {
		args = []string{defaultVerb}
	}
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// addGlobalFlags registers the flags shared by every verb.
func addGlobalFlags(cmd *cobra.Command) {
	cmd.Flags().String("build-dir", domain.DefaultBuildDirName, "Path where products will be built")
	cmd.Flags().BoolP("verbose", "v", false, "Print the commands being executed")
}

// addBuildFlags registers the flags shared by the building verbs.
func addBuildFlags(cmd *cobra.Command) {
	addGlobalFlags(cmd)
	cmd.Flags().String("swiftc", "", "Path to the Swift compiler")
	cmd.Flags().Bool("release", false, "Build the package manager in release mode")
}

// buildOptions extracts the shared build options from a command's flags.
func buildOptions(cmd *cobra.Command) app.BuildOptions {
	buildDir, _ := cmd.Flags().GetString("build-dir")
	verbose, _ := cmd.Flags().GetBool("verbose")
	swiftc, _ := cmd.Flags().GetString("swiftc")
	release, _ := cmd.Flags().GetBool("release")

	return app.BuildOptions{
		BuildDir: buildDir,
		Compiler: swiftc,
		Release:  release,
		Verbose:  verbose,
	}
}

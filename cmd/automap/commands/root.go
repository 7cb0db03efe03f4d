// Package commands implements the CLI commands for automap.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/automap/internal/app"
	"go.trai.ch/automap/internal/build"
	"go.trai.ch/automap/internal/core/domain"
)

// CLI represents the command line interface for automap.
type CLI struct {
	app        Application
	rootCmd    *cobra.Command
	configPath string
}

// Application represents the application logic interface.
type Application interface {
	Inspect(ctx context.Context, opts app.InspectOptions) (*domain.PackageReport, error)
	Generate(ctx context.Context, opts app.GenerateOptions) (*domain.GenerationResult, error)
	Watch(ctx context.Context, opts app.GenerateOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "automap",
		Short:         "Discover and generate member accessor tables for Go types",
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

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", domain.DefaultConfigFile, "Path to the config file")

	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newGenCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// addInspectFlags registers the flags shared by inspect and gen.
func addInspectFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("type", "t", nil, "Restrict to the named types (repeatable)")
	cmd.Flags().StringP("dir", "d", "", "Directory the package pattern is resolved from")
}

func (c *CLI) inspectOptions(cmd *cobra.Command, pattern string) app.InspectOptions {
	types, _ := cmd.Flags().GetStringSlice("type")
	dir, _ := cmd.Flags().GetString("dir")
	return app.InspectOptions{
		ConfigPath: c.configPath,
		Dir:        dir,
		Pattern:    pattern,
		Types:      types,
	}
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/automap/internal/ui/report"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <pattern>",
		Short: "List the readable members and no-arg methods of a package's types",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			rep, err := c.app.Inspect(cmd.Context(), c.inspectOptions(cmd, args[0]))
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), rep)
		},
	}
	addInspectFlags(cmd)
	return cmd
}

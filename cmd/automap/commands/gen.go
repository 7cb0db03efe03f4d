package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/automap/internal/app"
	"go.trai.ch/automap/internal/ui/output"
	"go.trai.ch/automap/internal/ui/style"
)

func (c *CLI) newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen <pattern>",
		Short: "Generate static accessor tables for a package",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			out, _ := cmd.Flags().GetString("output")
			force, _ := cmd.Flags().GetBool("force")
			watch, _ := cmd.Flags().GetBool("watch")

			opts := app.GenerateOptions{
				InspectOptions: c.inspectOptions(cmd, args[0]),
				Output:         out,
				Force:          force,
			}
			if watch {
				return c.app.Watch(cmd.Context(), opts)
			}

			res, err := c.app.Generate(cmd.Context(), opts)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			r := output.Renderer(w)
			types := style.Muted.Renderer(r).Render("(" + strings.Join(res.Types, ", ") + ")")
			if res.Changed {
				icon := r.NewStyle().Foreground(style.Green).Render(style.Check)
				_, err = fmt.Fprintf(w, "%s wrote %s %s\n", icon, res.Output, types)
			} else {
				icon := style.Muted.Renderer(r).Render(style.Tilde)
				_, err = fmt.Fprintf(w, "%s up to date %s %s\n", icon, res.Output, types)
			}
			return err
		},
	}
	addInspectFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "Generated file, relative to the package directory")
	cmd.Flags().BoolP("force", "f", false, "Rewrite the file even when it is up to date")
	cmd.Flags().BoolP("watch", "w", false, "Regenerate whenever a Go file of the package changes")
	return cmd
}

package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "bump [major|minor|patch]",
		Aliases: []string{"b"},
		Short:   "Bump the cookbook version, the patch version by default",
		Long: `Bump one field of the version in the cookbook's VERSION file.
The other fields are left as they are.

Bump the patch version:
  $ cheflow bump

Bump the major version:
  $ cheflow bump major`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"major", "minor", "patch"},
		RunE: func(cmd *cobra.Command, args []string) error {
			level := ""
			if len(args) == 1 {
				level = args[0]
			}
			_, _, err := c.app.Bump(cmd.Context(), c.opts, level)
			return err
		},
	}
}

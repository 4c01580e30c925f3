package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cheflow/internal/core/domain"
)

func (c *CLI) newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply [environment]",
		Short: "Apply the Berksfile.lock to a node environment",
		Long: `Pin a node environment to the cookbook versions in the Berksfile.lock.
The environment defaults to production, which asks for confirmation.

  $ cheflow apply staging      # node_<name>_staging
  $ cheflow apply              # node_<name>, asks first`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label := domain.ProductionEnvironment
			if len(args) == 1 {
				label = args[0]
			}
			yes, _ := cmd.Flags().GetBool("yes")

			_, err := c.app.Apply(cmd.Context(), c.opts, label, yes)
			return err
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Apply to production without asking")
	return cmd
}

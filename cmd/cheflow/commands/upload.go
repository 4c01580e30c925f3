package commands

import "github.com/spf13/cobra"

func (c *CLI) newUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload",
		Short: "Upload the cookbook, frozen when the version is a production version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Upload(cmd.Context(), c.opts)
		},
	}
}

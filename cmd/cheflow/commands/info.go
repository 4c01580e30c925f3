package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cheflow/internal/app"
	"go.trai.ch/cheflow/internal/ui/report"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "info",
		Aliases: []string{"i"},
		Short:   "Display information about the cookbook",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			withVersions, _ := cmd.Flags().GetBool("versions")
			formatFlag, _ := cmd.Flags().GetString("format")

			format, err := report.ParseFormat(formatFlag)
			if err != nil {
				return err
			}

			r, err := c.app.Info(cmd.Context(), c.opts, app.InfoOptions{WithVersions: withVersions})
			if err != nil {
				return err
			}
			return report.Render(cmd.OutOrStdout(), r, format)
		},
	}
	cmd.Flags().Bool("versions", false, "Show the cookbook version pinned in each environment")
	cmd.Flags().StringP("format", "f", "text", "Output format: text, json or yaml")
	return cmd
}

package commands

import "github.com/spf13/cobra"

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether the comparison interpreter and Poppler are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			status := c.app.Status()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), newStatusJSON(status))
			}
			return renderStatus(cmd.OutOrStdout(), status)
		},
	}
	cmd.Flags().Bool("json", false, "Print the status as JSON")
	return cmd
}

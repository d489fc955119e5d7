package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pdfdiff/internal/adapters/config"
	"go.trai.ch/pdfdiff/internal/app"
	"go.trai.ch/pdfdiff/internal/core/domain"
)

func (c *CLI) newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <a.pdf> <b.pdf>",
		Short: "Compare two PDF documents and write a visual diff report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			output, _ := cmd.Flags().GetString("output")
			python, _ := cmd.Flags().GetString("python")
			rawTimeout, _ := cmd.Flags().GetString("timeout")
			workdir, _ := cmd.Flags().GetString("workdir")
			inMemory, _ := cmd.Flags().GetBool("in-memory")
			asJSON, _ := cmd.Flags().GetBool("json")

			opts := domain.ExecutionOptions{
				InterpreterPath: python,
				WorkingDir:      workdir,
			}
			if rawTimeout != "" {
				timeout, err := config.ParseTimeout(rawTimeout)
				if err != nil {
					return err
				}
				opts.Timeout = timeout
			}

			res, err := c.app.Compare(cmd.Context(), app.CompareRequest{
				PathA:      args[0],
				PathB:      args[1],
				Output:     output,
				ConfigPath: configPath,
				Options:    opts,
				InMemory:   inMemory,
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), newComparisonJSON(res))
			}
			return renderComparison(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringP("output", "o", domain.DefaultReportPath, "Path of the diff report")
	cmd.Flags().String("python", "", "Interpreter to run the comparison with (default: auto-detect)")
	cmd.Flags().String("timeout", "", "Maximum duration of each interpreter run, e.g. 90s or 2m (default 2m)")
	cmd.Flags().String("workdir", "", "Working directory for the interpreter")
	cmd.Flags().Bool("in-memory", false, "Read both documents and compare them in a temporary directory")
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	return cmd
}

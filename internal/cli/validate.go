package cli

import (
	"fmt"

	"github.com/skillsmith-labs/skillsmith/internal/checks"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <package-dir>",
	Short: "Run publication checks on a skill package",
	Long: `Run every publication rule against a skill package and report pass/fail
per rule. The package is never modified. Exits nonzero when any check
fails, so the command can gate unattended pipelines.

Example:
  skillsmith validate ./skills/sprint-planner`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := checks.Run(args[0])
		if err != nil {
			return err
		}

		report.WriteText(cmd.OutOrStdout())

		if !report.Passed() {
			return fmt.Errorf("%d of %d checks failed", report.Failed(), len(report.Results))
		}
		return nil
	},
}

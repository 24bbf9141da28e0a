// internal/commands/accuracy.go
package bm25filter

import (
	"fmt"

	"github.com/mwiater/bm25filter/internal/accuracy"
	"github.com/mwiater/bm25filter/internal/appconfig"
	"github.com/mwiater/bm25filter/internal/rag"
	"github.com/spf13/cobra"
)

// accuracyCmd checks how often expected passages survive selection.
var accuracyCmd = &cobra.Command{
	Use:   "accuracy",
	Short: "Measure passage retention over a suite of queries and documents",
	Long: `Measure passage retention over a suite of queries and documents.

Each --profile names an alternate config file whose tunables replace the
active configuration for one run of the suite, so settings can be compared
side by side.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		suitePath, _ := cmd.Flags().GetString("suite")
		outDir, _ := cmd.Flags().GetString("out")
		workers, _ := cmd.Flags().GetInt("workers")
		profiles, _ := cmd.Flags().GetStringSlice("profile")

		if len(profiles) == 0 {
			opts, err := resolveOptions(cmd)
			if err != nil {
				return err
			}
			_, err = accuracy.RunAccuracyCommand(cmd.Context(), cmd.OutOrStdout(), suitePath, outDir, opts, workers)
			return err
		}

		out := cmd.OutOrStdout()
		for _, profile := range profiles {
			cfg, err := appconfig.Load(profile)
			if err != nil {
				return err
			}
			opts, err := optionsWithFlags(cmd, &cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "profile %s\n", profile)
			if _, err := accuracy.RunAccuracyCommand(cmd.Context(), out, suitePath, outDir, opts, workers); err != nil {
				return fmt.Errorf("profile %s: %w", profile, err)
			}
		}
		return nil
	},
}

func init() {
	accuracyCmd.Flags().String("suite", "data/accuracy_suite.json", "path to the retention suite")
	accuracyCmd.Flags().String("out", "", "directory for JSONL results (empty disables)")
	accuracyCmd.Flags().Int("k", rag.DefaultK, "number of passages to keep")
	accuracyCmd.Flags().Int("workers", 4, "cases evaluated in parallel")
	accuracyCmd.Flags().StringSlice("profile", nil, "alternate config file to evaluate (repeatable)")
	rootCmd.AddCommand(accuracyCmd)
}

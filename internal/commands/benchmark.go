// internal/commands/benchmark.go
package bm25filter

import (
	"fmt"
	"strings"

	"github.com/mwiater/bm25filter/internal/benchmark"
	"github.com/mwiater/bm25filter/internal/rag"
	"github.com/spf13/cobra"
)

// benchmarkCmd times the selection pipeline over one document.
var benchmarkCmd = &cobra.Command{
	Use:   "benchmark <query>",
	Short: "Time passage selection over a document",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			return fmt.Errorf("query is required")
		}
		opts, err := resolveOptions(cmd)
		if err != nil {
			return err
		}
		file, _ := cmd.Flags().GetString("file")
		count, _ := cmd.Flags().GetInt("count")
		outDir, _ := cmd.Flags().GetString("out")
		_, err = benchmark.RunBenchmarkCommand(cmd.OutOrStdout(), file, query, opts, count, outDir)
		return err
	},
}

func init() {
	benchmarkCmd.Flags().String("file", "", "path to the document text")
	benchmarkCmd.Flags().Int("k", rag.DefaultK, "number of passages to keep")
	benchmarkCmd.Flags().Int("count", 100, "iterations to run")
	benchmarkCmd.Flags().String("out", "", "directory for the JSON result (empty disables)")
	rootCmd.AddCommand(benchmarkCmd)
}

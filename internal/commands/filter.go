package bm25filter

import (
	"strings"
	"time"

	"github.com/k0kubun/pp"
	"github.com/mwiater/bm25filter/internal/logging"
	"github.com/mwiater/bm25filter/internal/rag"
	"github.com/spf13/cobra"
)

// filterCmd is the process boundary: a JSON request in, a JSON passage list out.
var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Select the passages of a document most relevant to a query",
	Long: `Select the passages of a document most relevant to a query.

Reads a JSON object {"query": "...", "content": "...", "k": 10} from stdin, or
takes --query and --file, and writes a JSON array of {text, score, index}
objects in document order.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(cmd)
		if err != nil {
			return err
		}
		query, _ := cmd.Flags().GetString("query")
		file, _ := cmd.Flags().GetString("file")
		useStdin, _ := cmd.Flags().GetBool("stdin")

		query, content, err := readRequest(cmd, query, file, useStdin, &opts)
		if err != nil {
			return err
		}
		if DebugEnabled() {
			pp.Fprintln(cmd.ErrOrStderr(), opts)
			logging.LogPayload("request", map[string]any{
				"query":        query,
				"k":            opts.K,
				"contentWords": len(strings.Fields(content)),
			})
		}

		start := time.Now()
		sel, err := rag.Select(content, query, opts)
		if err != nil {
			return err
		}
		logging.LogSelection(string(sel.Path), query, sel.ChunkCount, len(sel.Chunks), time.Since(start))

		return rag.EncodeResults(cmd.OutOrStdout(), sel.Chunks)
	},
}

func init() {
	filterCmd.Flags().String("query", "", "search query")
	filterCmd.Flags().String("file", "", "path to the document text")
	filterCmd.Flags().Int("k", rag.DefaultK, "number of passages to keep")
	filterCmd.Flags().Bool("stdin", false, "read a JSON request from stdin even when it is a terminal")
	rootCmd.AddCommand(filterCmd)
}

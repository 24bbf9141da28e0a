package bm25filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mwiater/bm25filter/internal/logging"
	"github.com/mwiater/bm25filter/internal/rag"
	"github.com/spf13/cobra"
)

var (
	labelColor = color.New(color.FgCyan, color.Bold)
	scoreColor = color.New(color.FgGreen)
	pathColor  = color.New(color.FgYellow, color.Bold)
)

// previewCmd previews passage selection and context assembly for a query.
var previewCmd = &cobra.Command{
	Use:   "preview <query>",
	Short: "Preview passage selection and context assembly",
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
		content, err := readDocument(file)
		if err != nil {
			return err
		}
		contextWords, _ := cmd.Flags().GetInt("context-words")

		out := cmd.OutOrStdout()
		status := func(format string, args ...any) {
			labelColor.Fprint(out, "[BM25] ")
			fmt.Fprintf(out, format+"\n", args...)
		}

		status("Preview query: %s", query)
		status("document: %s (%d words)", file, len(strings.Fields(content)))
		status("chunk words: %d-%d, bypass threshold: %d", opts.MinChunkWords, opts.MaxChunkWords, opts.BypassThreshold)
		status("k: %d, k1: %g, b: %g, lead bonus: %g", opts.K, opts.K1, opts.B, opts.LeadBonus)

		start := time.Now()
		sel, err := rag.Select(content, query, opts)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		logging.LogSelection(string(sel.Path), query, sel.ChunkCount, len(sel.Chunks), elapsed)

		labelColor.Fprint(out, "[BM25] ")
		fmt.Fprint(out, "path: ")
		pathColor.Fprintln(out, sel.Path)
		status("chunks: %d, returned: %d, elapsed: %s", sel.ChunkCount, len(sel.Chunks), elapsed.Truncate(time.Microsecond))

		for _, c := range sel.Chunks {
			labelColor.Fprintf(out, "[BM25] passage #%d ", c.Index)
			scoreColor.Fprintf(out, "score=%.4f", c.Score)
			fmt.Fprintf(out, " words=%d\n", len(strings.Fields(c.Text)))
		}

		context, words, passages := rag.FormatContext(sel.Chunks, contextWords)
		if context != "" {
			status("context: %d words from %d passages", words, passages)
			fmt.Fprintln(out, context)
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().String("file", "", "path to the document text")
	previewCmd.Flags().Int("k", rag.DefaultK, "number of passages to keep")
	previewCmd.Flags().Int("context-words", 0, "word budget for the context block (0 = unlimited)")
	rootCmd.AddCommand(previewCmd)
}

package bm25filter

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/mwiater/bm25filter/internal/rag"
	"github.com/mwiater/bm25filter/internal/util"
	"github.com/spf13/cobra"
)

const chunkPreviewRunes = 72

// chunksCmd prints the chunker output for tuning word bounds.
var chunksCmd = &cobra.Command{
	Use:   "chunks",
	Short: "Show how a document is split into chunks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(cmd)
		if err != nil {
			return err
		}
		if err := opts.Validate(); err != nil {
			return err
		}
		file, _ := cmd.Flags().GetString("file")
		content, err := readDocument(file)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		chunks := rag.NewChunker(opts).Split(content)
		if len(chunks) == 0 {
			fmt.Fprintln(out, "No chunks: the document is empty or entirely boilerplate.")
			return nil
		}

		index := color.New(color.FgCyan, color.Bold)
		words := color.New(color.FgGreen)
		for _, c := range chunks {
			index.Fprintf(out, "#%-4d", c.Index)
			words.Fprintf(out, "%5d words  ", c.Words)
			fmt.Fprintln(out, util.Preview(c.Text, chunkPreviewRunes))
		}
		fmt.Fprintf(out, "%d chunks (bypass threshold %d)\n", len(chunks), opts.BypassThreshold)
		return nil
	},
}

func init() {
	chunksCmd.Flags().String("file", "", "path to the document text")
	rootCmd.AddCommand(chunksCmd)
}

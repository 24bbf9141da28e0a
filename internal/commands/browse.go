package bm25filter

import (
	"fmt"
	"strings"

	"github.com/mwiater/bm25filter/internal/rag"
	"github.com/mwiater/bm25filter/internal/tui"
	"github.com/spf13/cobra"
)

// runBrowser is swapped out in tests.
var runBrowser = tui.Run

// browseCmd opens the interactive passage browser for a query.
var browseCmd = &cobra.Command{
	Use:   "browse <query>",
	Short: "Browse the selected passages interactively",
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
		sel, err := rag.Select(content, query, opts)
		if err != nil {
			return err
		}
		return runBrowser(query, sel)
	},
}

func init() {
	browseCmd.Flags().String("file", "", "path to the document text")
	browseCmd.Flags().Int("k", rag.DefaultK, "number of passages to keep")
	rootCmd.AddCommand(browseCmd)
}

package bm25filter

import "github.com/spf13/cobra"

// showCmd groups commands that display information.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show information",
}

func init() {
	rootCmd.AddCommand(showCmd)
}

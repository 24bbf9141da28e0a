package bm25filter

import (
	"github.com/k0kubun/pp"
	"github.com/mwiater/bm25filter/internal/appconfig"
	"github.com/mwiater/bm25filter/internal/rag"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overriden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		fallback := appconfig.Config{
			Debug:   viper.GetBool("debug"),
			LogFile: viper.GetString("logFile"),
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), viper.ConfigFileUsed(), GetConfig(), fallback)
		if DebugEnabled() {
			pp.Fprintln(cmd.OutOrStdout(), rag.OptionsFromConfig(GetConfig()))
		}
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
)

const (
	VERSION string = "0.1.0"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show prize version",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		appUI.Info("Version: %s", VERSION)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

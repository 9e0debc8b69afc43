package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/prize/config"
	"github.com/tranvictor/prize/locale"
	"github.com/tranvictor/prize/ui"
	"github.com/tranvictor/prize/wallets"
)

var walletsCmd = &cobra.Command{
	Use:   "wallets [query]",
	Short: "List EVM wallets you can install",
	Long: `List the EVM wallets prize suggests when it can't find one. Query filters
them by fuzzy matching their names, e.g. "prize wallets mm" or "prize wallets trust".`,
	Run: func(cmd *cobra.Command, args []string) {
		showWallets(appUI, locale.New(config.Lang), strings.Join(args, " "))
	},
}

func showWallets(u ui.UI, loc *locale.Localizer, query string) {
	links := wallets.Search(query)
	if len(links) == 0 {
		u.Warn("%s", loc.Text(locale.MsgNoWalletMatch, map[string]any{"Query": query}))
		return
	}
	u.Section(loc.Text(locale.MsgWalletsTitle, nil))
	w := u.Indent().Writer()
	for i, link := range links {
		fmt.Fprintf(w, "%d. %s: %s\n", i+1, link.Name, link.URL)
	}
}

func init() {
	rootCmd.AddCommand(walletsCmd)
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/prize/networks"
	"github.com/tranvictor/prize/ui"
)

var listNetworkCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the networks prize can add to a wallet",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		showNetworks(appUI, networks.GetSupportedNetworks())
	},
}

func showNetworks(u ui.UI, list []networks.Network) {
	for i, n := range list {
		params := networks.NewAddChainParams(n)
		u.Section(fmt.Sprintf("%d. %s", i+1, n.GetDisplayName()))
		u.KeyValue([][2]string{
			{"Name", strings.Join(append([]string{n.GetName()}, n.GetAlternativeNames()...), ", ")},
			{"Chain ID", fmt.Sprintf("%d (%s)", n.GetChainID(), params.ChainID)},
			{"Currency", fmt.Sprintf("%s (%s, %d decimals)", params.NativeCurrency.Name, params.NativeCurrency.Symbol, params.NativeCurrency.Decimals)},
			{"RPC nodes", strings.Join(params.RPCURLs, ", ")},
			{"Explorer", strings.Join(params.BlockExplorerURLs, ", ")},
		})
		u.Info("Set %s to use your own node when the network is added to a wallet.", n.GetNodeVariableName())
	}
}

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Show the networks prize knows about",
	Long:  ``,
}

func init() {
	networkCmd.AddCommand(listNetworkCmd)
	rootCmd.AddCommand(networkCmd)
}

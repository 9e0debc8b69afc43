// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tranvictor/prize/config"
	"github.com/tranvictor/prize/locale"
	"github.com/tranvictor/prize/networks"
	"github.com/tranvictor/prize/ui"
)

var appUI ui.UI = ui.NewTerminalUI()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "prize",
	Short: "Send a small amount of ETH through your own wallet",
	Long: fmt.Sprintf(`Prize asks an EVM wallet to send a small native currency transfer, a tip,
to an address. It never touches your keys: the wallet shows the transaction,
you approve or decline it there, and prize reports the transaction hash.

Prize talks to the wallet over JSON-RPC. Point it to your wallet's local
endpoint (e.g. Frame on http://127.0.0.1:1248, or a dev node with unlocked
accounts) with --provider or the following env vars:
	1. %s (or %s)
	2. for an older endpoint used only when the first one is absent:
	   %s (or %s)

If no wallet can be found, prize lists wallets you can install.

Transfers go to %s (chain id %d) unless --chain says otherwise. When the
wallet doesn't know that network, prize asks it to add it, using the node in
%s when set.`,
		"PRIZE_PROVIDER", "ETHEREUM_PROVIDER",
		"PRIZE_LEGACY_PROVIDER", "WEB3_PROVIDER",
		networks.Default().GetDisplayName(), networks.DefaultChainID,
		networks.Default().GetNodeVariableName(),
	),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(cmd.Root().PersistentFlags()); err != nil {
			return err
		}
		cmd.SetContext(newLogger().WithContext(cmd.Context()))
		return nil
	},
}

// newLogger writes to stderr so logs never mix with what appUI prints.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if config.Verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().StringVar(&config.ProviderURL, config.ProviderKey, "", "JSON-RPC endpoint of your wallet (http, ws or ipc).")
	rootCmd.PersistentFlags().StringVar(&config.LegacyProviderURL, config.LegacyProviderKey, "", "Endpoint used only when --provider is absent.")
	rootCmd.PersistentFlags().StringVarP(&config.Chain, config.ChainKey, "k", config.DefaultChain, "Chain id or network name to send on.")
	rootCmd.PersistentFlags().StringVar(&config.Lang, config.LangKey, config.DefaultLang, fmt.Sprintf("Language of the messages. Valid values: %s.", strings.Join(locale.Languages(), ", ")))
	rootCmd.PersistentFlags().BoolVar(&config.Verbose, config.VerboseKey, false, "Log every wallet request to stderr.")

	if err := rootCmd.Execute(); err != nil {
		appUI.Error("%s", err)
		os.Exit(1)
	}
}

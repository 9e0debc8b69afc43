package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tranvictor/prize/config"
	"github.com/tranvictor/prize/locale"
	"github.com/tranvictor/prize/provider"
	"github.com/tranvictor/prize/transfer"
)

var sendCmd = &cobra.Command{
	Use:   "send [recipient] [amount]",
	Short: "Ask your wallet to send native currency to an address",
	Long: `Ask your wallet to send a small amount of native currency (0.001 by default)
to recipient. The wallet is connected, moved to the right network and given a
gas price and gas limit, then it prompts you to approve the transaction.
Nothing is signed or broadcasted by prize itself.

Examples:
	prize send 0x52908400098527886E0F7030069857D2E4169EE7
	prize send 52908400098527886E0F7030069857D2E4169EE7 0.01
	prize send --to 0x52908400098527886E0F7030069857D2E4169EE7 --amount 1e-3`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		req, err := transferRequest(args)
		if err != nil {
			appUI.Error("%s", err)
			os.Exit(EXIT_FAILED)
		}

		ctx := cmd.Context()
		env, err := provider.DialEnvironment(ctx, config.ProviderURL, config.LegacyProviderURL)
		if err != nil {
			appUI.Error("%s", err)
			os.Exit(EXIT_FAILED)
		}

		outcome := transfer.NewOrchestrator(locale.New(config.Lang)).Initiate(ctx, appUI, env, req)
		env.Close()
		if code := exitCode(outcome); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	AddTransferFlags(sendCmd)
	rootCmd.AddCommand(sendCmd)
}

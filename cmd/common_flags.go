package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tranvictor/prize/config"
)

func AddTransferFlags(c *cobra.Command) {
	c.Flags().
		StringVarP(&config.To, "to", "t", "", "Recipient address. Can be given as the first argument instead.")
	c.Flags().
		StringVarP(&config.Amount, "amount", "v", "", "Amount of native currency to send, e.g. 0.001 or 1e-3. Can be given as the second argument instead. Default: 0.001")
}

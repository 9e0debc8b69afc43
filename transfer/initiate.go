package transfer

import (
	"context"
	"fmt"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/tranvictor/prize/common"
	"github.com/tranvictor/prize/locale"
	"github.com/tranvictor/prize/networks"
	"github.com/tranvictor/prize/provider"
	"github.com/tranvictor/prize/ui"
	"github.com/tranvictor/prize/wallets"
)

// DefaultAmount is what Initiate sends when the request has no amount.
const DefaultAmount = "0.001"

// Initiate is the caller facing entry point. Everything the user needs to
// know is reported through u: the install prompt when env has no provider,
// a spinner while the wallet waits for approval, then a single Success or
// Error line. The returned Outcome only lets callers pick an exit status.
func (o *Orchestrator) Initiate(ctx context.Context, u ui.UI, env provider.Environment, req Request) Outcome {
	if req.Recipient == "" {
		message := o.loc.Text(locale.MsgMissingRecipient, nil)
		u.Error("%s", message)
		return Outcome{Err: &Error{Kind: KindInvalidAddress, Message: message, Err: ErrInvalidAddress}}
	}
	if req.Amount == "" {
		req.Amount = DefaultAmount
	}

	p := provider.Detect(env)
	if p == nil {
		o.showInstallPrompt(u)
		return Outcome{
			Err: &Error{
				Kind:    KindProviderUnavailable,
				Message: o.loc.Text(locale.MsgProviderUnavailable, nil),
				Err:     ErrProviderUnavailable,
			},
			NoWallet: true,
		}
	}

	o.showSummary(u, req)
	stop := u.Spinner(o.loc.Text(locale.MsgWaitingApproval, nil))
	outcome := o.Transfer(ctx, p, req)
	stop()

	if !outcome.Succeeded() {
		u.Error("%s", o.loc.Text(locale.MsgTransferFailed, map[string]any{"Reason": outcome.Err.Message}))
		return outcome
	}
	u.Success("%s", o.loc.Text(locale.MsgSubmitted, map[string]any{
		"Hash": u.Style(ui.StyledText{Text: outcome.TxHash, Severity: ui.SeverityCritical}),
	}))
	return outcome
}

func (o *Orchestrator) showInstallPrompt(u ui.UI) {
	u.Section(o.loc.Text(locale.MsgInstallTitle, nil))
	u.Info("%s", o.loc.Text(locale.MsgInstallDescription, nil))
	links := wallets.InstallLinks()
	rows := make([][]string, 0, len(links))
	for _, link := range links {
		rows = append(rows, []string{
			o.loc.Text(locale.MsgInstallEntry, map[string]any{"Name": link.Name}),
			link.URL,
		})
	}
	u.Table(nil, rows)
}

// showSummary prints what is about to be sent for approval. The recipient is
// shown checksummed when it is a valid hex address and the amount as it will
// be encoded. Invalid values are shown as given, Transfer reports them.
func (o *Orchestrator) showSummary(u ui.UI, req Request) {
	recipient := req.Recipient
	if ethcommon.IsHexAddress(recipient) {
		recipient = ethcommon.HexToAddress(recipient).Hex()
	}
	chainID := req.ChainID
	if chainID == 0 {
		chainID = networks.DefaultChainID
	}
	chain, symbol := fmt.Sprintf("chain %d", chainID), ""
	if n, err := networks.GetNetworkByID(chainID); err == nil {
		chain, symbol = n.GetDisplayName(), n.GetNativeTokenSymbol()
	}
	amount := req.Amount
	if wei, err := EncodeAmount(req.Amount); err == nil {
		amount = common.ReadableAmount(wei.Big(), NativeDecimals, symbol)
	}

	u.Section(o.loc.Text(locale.MsgSummaryTitle, nil))
	u.KeyValue([][2]string{
		{"To", u.Style(ui.StyledText{Text: recipient, Severity: ui.SeverityCritical})},
		{"Amount", amount},
		{"Chain", chain},
	})
}

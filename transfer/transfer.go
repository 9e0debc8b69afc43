package transfer

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tranvictor/prize/locale"
	"github.com/tranvictor/prize/networks"
	"github.com/tranvictor/prize/provider"
)

// Request describes one transfer attempt.
type Request struct {
	Recipient string
	// Amount is a decimal amount of the native currency, e.g. "0.001".
	Amount string
	// ChainID is the network to send on, zero means networks.DefaultChainID.
	ChainID uint64
}

// transaction is the single parameter of eth_sendTransaction. It has no data
// field: this is a pure value transfer.
type transaction struct {
	From     string            `json:"from"`
	To       NormalizedAddress `json:"to"`
	Value    WeiAmount         `json:"value"`
	Gas      string            `json:"gas"`
	GasPrice string            `json:"gasPrice"`
}

// Orchestrator runs transfer attempts against a provider. It holds no state
// between attempts; concurrent attempts against the same provider are not
// serialized, callers who need that must do it themselves.
type Orchestrator struct {
	loc        *locale.Localizer
	translator *Translator
}

func NewOrchestrator(loc *locale.Localizer) *Orchestrator {
	if loc == nil {
		loc = locale.New()
	}
	return &Orchestrator{
		loc:        loc,
		translator: NewTranslator(loc),
	}
}

// Transfer asks the provider to send req.Amount of the native currency to
// req.Recipient. Provider requests are issued one after the other: accounts,
// chain, gas price, gas estimate and finally the transaction itself, which
// blocks until the user answers the wallet's prompt. Only fee estimation
// tolerates failures; anything else ends the attempt with a failed Outcome.
func (o *Orchestrator) Transfer(ctx context.Context, p provider.Provider, req Request) Outcome {
	logger := zerolog.Ctx(ctx).With().Str("attempt", uuid.NewString()).Logger()
	ctx = logger.WithContext(ctx)

	chainID := req.ChainID
	if chainID == 0 {
		chainID = networks.DefaultChainID
	}

	var accounts []string
	if err := p.CallContext(ctx, &accounts, provider.MethodRequestAccounts); err != nil {
		kind := KindProviderUnavailable
		if provider.HasCode(err, provider.CodeUserRejected) {
			kind = KindSubmissionRejected
		}
		return o.fail(&logger, kind, err, o.translator.Translate(err))
	}
	if len(accounts) == 0 {
		return o.fail(&logger, KindNoAccount, ErrNoAccount, o.loc.Text(locale.MsgNoAccount, nil))
	}
	from := accounts[0]

	switched, err := EnsureChain(ctx, p, chainID)
	if err != nil {
		return o.fail(&logger, KindChainSwitchFailed, err, o.chainSwitchMessage(err))
	}
	logger.Debug().Str("from", from).Uint64("chain", chainID).Stringer("chain_switch", switched).Msg("wallet ready")

	to, err := NormalizeAddress(req.Recipient)
	if err != nil {
		return o.fail(&logger, KindInvalidAddress, err, o.loc.Text(locale.MsgInvalidAddress, nil))
	}
	value, err := EncodeAmount(req.Amount)
	if err != nil {
		return o.fail(&logger, KindInvalidAmount, err, o.loc.Text(locale.MsgInvalidAmount, nil))
	}

	fees := EstimateFees(ctx, p, to, value)
	tx := transaction{
		From:     from,
		To:       to,
		Value:    value,
		Gas:      fees.GasLimit,
		GasPrice: fees.GasPrice,
	}
	logger.Debug().Interface("tx", tx).Msg("submitting transaction")

	var hash string
	if err := p.CallContext(ctx, &hash, provider.MethodSendTransaction, tx); err != nil {
		kind := KindSubmissionFailed
		if provider.HasCode(err, provider.CodeUserRejected) {
			kind = KindSubmissionRejected
		}
		return o.fail(&logger, kind, err, o.translator.Translate(err))
	}
	if hash == "" {
		err := errors.New("wallet accepted the transaction without returning its hash")
		return o.fail(&logger, KindSubmissionFailed, err, o.translator.Translate(nil))
	}

	logger.Info().Str("tx", hash).Msg("transaction submitted")
	return Outcome{TxHash: hash}
}

// chainSwitchMessage prefers what the wallet said about the refusal.
func (o *Orchestrator) chainSwitchMessage(err error) string {
	var switchErr *ChainSwitchError
	if !errors.As(err, &switchErr) {
		return o.loc.Text(locale.MsgChainSwitchFailed, nil)
	}
	if switchErr.Network != "" {
		return o.loc.Text(locale.MsgChainAddFailed, map[string]any{"Chain": switchErr.Network})
	}
	if msg := provider.Message(switchErr.Err); msg != "" {
		return msg
	}
	return o.loc.Text(locale.MsgChainSwitchFailed, nil)
}

func (o *Orchestrator) fail(logger *zerolog.Logger, kind Kind, err error, message string) Outcome {
	code, _ := provider.Code(err)
	logger.Warn().Err(err).Stringer("kind", kind).Int("code", code).Msg("transfer failed")
	return Outcome{Err: &Error{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}}
}

package transfer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog"

	"github.com/tranvictor/prize/common"
	"github.com/tranvictor/prize/networks"
	"github.com/tranvictor/prize/provider"
)

// ChainSwitch is how EnsureChain got the provider onto the target network.
type ChainSwitch int

const (
	AlreadyOnTarget ChainSwitch = iota
	Switched
	AddedAndSwitched
)

func (s ChainSwitch) String() string {
	switch s {
	case AlreadyOnTarget:
		return "already on target"
	case Switched:
		return "switched"
	case AddedAndSwitched:
		return "added and switched"
	}
	return fmt.Sprintf("ChainSwitch(%d)", int(s))
}

// ChainSwitchError is the failed outcome of EnsureChain.
type ChainSwitchError struct {
	ChainID uint64
	// Network is set when registering the network with the provider failed.
	Network string
	Err     error
}

func (e *ChainSwitchError) Error() string {
	if e.Network != "" {
		return fmt.Sprintf("couldn't add %s to the wallet: %s", e.Network, e.Err)
	}
	return fmt.Sprintf("couldn't switch to chain %d: %s", e.ChainID, e.Err)
}

func (e *ChainSwitchError) Unwrap() []error {
	return []error{ErrChainSwitchFailed, e.Err}
}

type switchChainParams struct {
	ChainID string `json:"chainId"`
}

// CurrentChainID asks the provider which network it is on.
func CurrentChainID(ctx context.Context, p provider.Provider) (uint64, error) {
	var raw json.RawMessage
	if err := p.CallContext(ctx, &raw, provider.MethodChainID); err != nil {
		return 0, err
	}
	id, err := common.QuantityFromJSON(raw)
	if err != nil {
		return 0, fmt.Errorf("couldn't read chain id: %w", err)
	}
	if !id.IsUint64() {
		return 0, fmt.Errorf("chain id %s is out of range", id)
	}
	return id.Uint64(), nil
}

func switchChain(ctx context.Context, p provider.Provider, chainID uint64) error {
	return p.CallContext(ctx, nil, provider.MethodSwitchChain, switchChainParams{
		ChainID: hexutil.EncodeUint64(chainID),
	})
}

// EnsureChain makes sure the provider is on targetChainID. The live chain is
// read on every call. A provider that doesn't know the target is asked to
// register it, then to switch once more, but only when registration data for
// the target exists. Any failure is returned as a *ChainSwitchError.
func EnsureChain(ctx context.Context, p provider.Provider, targetChainID uint64) (ChainSwitch, error) {
	logger := zerolog.Ctx(ctx)

	current, err := CurrentChainID(ctx, p)
	if err != nil {
		return 0, &ChainSwitchError{ChainID: targetChainID, Err: err}
	}
	if current == targetChainID {
		return AlreadyOnTarget, nil
	}

	logger.Debug().Uint64("from", current).Uint64("to", targetChainID).Msg("switching chain")
	err = switchChain(ctx, p, targetChainID)
	if err == nil {
		return Switched, nil
	}
	if !provider.HasCode(err, provider.CodeUnrecognizedChain) {
		return 0, &ChainSwitchError{ChainID: targetChainID, Err: err}
	}

	network, nerr := networks.GetNetworkByID(targetChainID)
	if nerr != nil {
		return 0, &ChainSwitchError{ChainID: targetChainID, Err: err}
	}
	logger.Info().Str("network", network.GetDisplayName()).Msg("wallet doesn't know the network, adding it")
	if err := p.CallContext(ctx, nil, provider.MethodAddChain, networks.NewAddChainParams(network)); err != nil {
		return 0, &ChainSwitchError{ChainID: targetChainID, Network: network.GetDisplayName(), Err: err}
	}
	if err := switchChain(ctx, p, targetChainID); err != nil {
		return 0, &ChainSwitchError{ChainID: targetChainID, Err: err}
	}
	return AddedAndSwitched, nil
}

package networks

// Network is the static registration data of a chain, enough for a wallet
// to add it when it doesn't know it yet.
type Network interface {
	GetName() string
	GetDisplayName() string
	GetChainID() uint64
	GetAlternativeNames() []string
	GetNativeTokenName() string
	GetNativeTokenSymbol() string
	GetNativeTokenDecimal() uint64

	GetNodeVariableName() string
	GetDefaultNodes() map[string]string
	GetBlockExplorerURL() string
}

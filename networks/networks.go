package networks

import (
	"os"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// DefaultChainID is the network transfers target unless told otherwise. It is
// also the only network whose registration data is known.
const DefaultChainID uint64 = 1

func Default() Network {
	return EthereumMainnet
}

// NativeCurrency mirrors the nativeCurrency object of EIP-3085.
type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint64 `json:"decimals"`
}

// AddChainParams is the single parameter of wallet_addEthereumChain.
type AddChainParams struct {
	ChainID           string         `json:"chainId"`
	ChainName         string         `json:"chainName"`
	NativeCurrency    NativeCurrency `json:"nativeCurrency"`
	RPCURLs           []string       `json:"rpcUrls"`
	BlockExplorerURLs []string       `json:"blockExplorerUrls"`
}

// RPCURLs returns the node set in the network's node variable when present,
// followed by its default nodes sorted by name.
func RPCURLs(n Network) []string {
	urls := []string{}
	if custom := strings.TrimSpace(os.Getenv(n.GetNodeVariableName())); custom != "" {
		urls = append(urls, custom)
	}
	nodes := n.GetDefaultNodes()
	names := make([]string, 0, len(nodes))
	for name := range nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		urls = append(urls, nodes[name])
	}
	return urls
}

func NewAddChainParams(n Network) AddChainParams {
	return AddChainParams{
		ChainID:   hexutil.EncodeUint64(n.GetChainID()),
		ChainName: n.GetDisplayName(),
		NativeCurrency: NativeCurrency{
			Name:     n.GetNativeTokenName(),
			Symbol:   n.GetNativeTokenSymbol(),
			Decimals: n.GetNativeTokenDecimal(),
		},
		RPCURLs:           RPCURLs(n),
		BlockExplorerURLs: []string{n.GetBlockExplorerURL()},
	}
}

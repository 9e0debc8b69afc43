package networks

import (
	"fmt"
)

// Insert more Network implementation here to make them registrable
// through wallet_addEthereumChain.
var supportedNetworks = []Network{
	EthereumMainnet,
}

var globalSupportedNetworks = newSupportedNetworks()
var ErrNetworkNotFound = fmt.Errorf("network not found")

type networks struct {
	networks     map[string]Network
	networksByID map[uint64]Network
}

func (n *networks) getSupportedNetworkNames() []string {
	res := []string{}
	for _, n := range supportedNetworks {
		res = append(res, n.GetName())
		res = append(res, n.GetAlternativeNames()...)
	}
	return res
}

func (n *networks) getNetworkByID(id uint64) (Network, error) {
	res, found := n.networksByID[id]
	if !found {
		return nil, fmt.Errorf("network id %d: %w", id, ErrNetworkNotFound)
	}
	return res, nil
}

func (n *networks) getNetwork(name string) (Network, error) {
	res, found := n.networks[name]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return res, nil
}

func newSupportedNetworks() *networks {
	result := networks{
		map[string]Network{},
		map[uint64]Network{},
	}
	for _, n := range supportedNetworks {
		if _, found := result.networks[n.GetName()]; found {
			panic(
				fmt.Errorf(
					"network with name or alternative name of '%s' already exists",
					n.GetName(),
				),
			)
		}
		result.networks[n.GetName()] = n
		result.networksByID[n.GetChainID()] = n
		for _, an := range n.GetAlternativeNames() {
			if _, found := result.networks[an]; found {
				panic(
					fmt.Errorf("network with name or alternative name of '%s' already exists", an),
				)
			}
			result.networks[an] = n
		}
	}
	return &result
}

// GetSupportedNetworks returns every registered network.
func GetSupportedNetworks() []Network {
	result := make([]Network, len(supportedNetworks))
	copy(result, supportedNetworks)
	return result
}

func GetSupportedNetworkNames() []string {
	return globalSupportedNetworks.getSupportedNetworkNames()
}

func GetNetworkByID(id uint64) (Network, error) {
	return globalSupportedNetworks.getNetworkByID(id)
}

func GetNetwork(name string) (Network, error) {
	return globalSupportedNetworks.getNetwork(name)
}

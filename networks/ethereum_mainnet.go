package networks

var EthereumMainnet Network = NewEthereumMainnet()

type ethereumMainnet struct{}

func NewEthereumMainnet() *ethereumMainnet {
	return &ethereumMainnet{}
}

func (self *ethereumMainnet) GetName() string {
	return "mainnet"
}

func (self *ethereumMainnet) GetDisplayName() string {
	return "Ethereum Mainnet"
}

func (self *ethereumMainnet) GetChainID() uint64 {
	return 1
}

func (self *ethereumMainnet) GetAlternativeNames() []string {
	return []string{"ethereum", "eth"}
}

func (self *ethereumMainnet) GetNativeTokenName() string {
	return "Ether"
}

func (self *ethereumMainnet) GetNativeTokenSymbol() string {
	return "ETH"
}

func (self *ethereumMainnet) GetNativeTokenDecimal() uint64 {
	return 18
}

func (self *ethereumMainnet) GetNodeVariableName() string {
	return "ETHEREUM_MAINNET_NODE"
}

func (self *ethereumMainnet) GetDefaultNodes() map[string]string {
	return map[string]string{
		"mainnet-infura": "https://mainnet.infura.io/v3/",
	}
}

func (self *ethereumMainnet) GetBlockExplorerURL() string {
	return "https://etherscan.io"
}

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tranvictor/prize/common"
	"github.com/tranvictor/prize/networks"
)

// flag names, also the viper keys
const (
	ProviderKey       = "provider"
	LegacyProviderKey = "legacy-provider"
	ChainKey          = "chain"
	LangKey           = "lang"
	VerboseKey        = "verbose"
)

const (
	DefaultChain = "1"
	DefaultLang  = "en"
)

var (
	ProviderURL       string
	LegacyProviderURL string
	Chain             string
	Lang              string
	Verbose           bool

	To     string
	Amount string
)

// envs lists, per key, the env vars consulted in order when the flag is not
// given.
var envs = map[string][]string{
	ProviderKey:       {"PRIZE_PROVIDER", "ETHEREUM_PROVIDER"},
	LegacyProviderKey: {"PRIZE_LEGACY_PROVIDER", "WEB3_PROVIDER"},
	ChainKey:          {"PRIZE_CHAIN_ID"},
	LangKey:           {"PRIZE_LANG"},
	VerboseKey:        {"PRIZE_VERBOSE"},
}

// Load resolves the global settings from flags, then env vars, then
// defaults. flags must hold the persistent flags of the root command.
func Load(flags *pflag.FlagSet) error {
	v := viper.New()
	for key, names := range envs {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return fmt.Errorf("couldn't bind env of %s: %w", key, err)
		}
	}
	v.SetDefault(ChainKey, DefaultChain)
	v.SetDefault(LangKey, DefaultLang)
	for key := range envs {
		if f := flags.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("couldn't bind flag %s: %w", key, err)
			}
		}
	}

	ProviderURL = strings.TrimSpace(v.GetString(ProviderKey))
	LegacyProviderURL = strings.TrimSpace(v.GetString(LegacyProviderKey))
	Chain = strings.TrimSpace(v.GetString(ChainKey))
	Lang = strings.TrimSpace(v.GetString(LangKey))
	Verbose = v.GetBool(VerboseKey)
	return nil
}

// ChainID resolves Chain, given either as a decimal or hex chain id or as a
// network name such as "mainnet".
func ChainID() (uint64, error) {
	if Chain == "" {
		return networks.DefaultChainID, nil
	}
	if id, err := common.ParseQuantity(Chain); err == nil {
		if !id.IsUint64() || id.Sign() == 0 {
			return 0, fmt.Errorf("invalid chain id %s", Chain)
		}
		return id.Uint64(), nil
	}
	n, err := networks.GetNetwork(strings.ToLower(Chain))
	if err != nil {
		return 0, fmt.Errorf("%w. Valid values: %s or a chain id", err, strings.Join(networks.GetSupportedNetworkNames(), ", "))
	}
	return n.GetChainID(), nil
}

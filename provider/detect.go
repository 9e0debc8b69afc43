package provider

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"
)

// Web3 is the legacy provider holder that predates injected providers.
type Web3 struct {
	CurrentProvider Provider
}

// Environment is whatever the host exposes to look for a provider in.
type Environment struct {
	// Ethereum is the primary injected provider.
	Ethereum Provider
	Web3     *Web3

	closers []func()
}

// Detect returns the primary provider when present, the legacy one otherwise
// and nil when there is neither. It never issues a request.
func Detect(env Environment) Provider {
	if env.Ethereum != nil {
		return env.Ethereum
	}
	if env.Web3 != nil && env.Web3.CurrentProvider != nil {
		return env.Web3.CurrentProvider
	}
	return nil
}

// DialEnvironment connects to the configured provider endpoints. An empty
// url leaves its slot empty. Supported transports are the ones of
// rpc.DialContext: http(s), ws(s) and IPC paths.
func DialEnvironment(ctx context.Context, primaryURL, legacyURL string) (Environment, error) {
	env := Environment{}
	if primaryURL != "" {
		client, err := rpc.DialContext(ctx, primaryURL)
		if err != nil {
			return env, fmt.Errorf("couldn't connect to provider %s: %w", primaryURL, err)
		}
		env.Ethereum = client
		env.closers = append(env.closers, client.Close)
	}
	if legacyURL != "" {
		client, err := rpc.DialContext(ctx, legacyURL)
		if err != nil {
			env.Close()
			return Environment{}, fmt.Errorf("couldn't connect to legacy provider %s: %w", legacyURL, err)
		}
		env.Web3 = &Web3{CurrentProvider: client}
		env.closers = append(env.closers, client.Close)
	}
	return env, nil
}

// Close releases the connections opened by DialEnvironment.
func (env Environment) Close() {
	for _, c := range env.closers {
		c()
	}
}

package provider_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/prize/provider"
)

func TestDetectPrefersPrimary(t *testing.T) {
	primary := provider.NewRecordingProvider()
	legacy := provider.NewRecordingProvider()

	got := provider.Detect(provider.Environment{
		Ethereum: primary,
		Web3:     &provider.Web3{CurrentProvider: legacy},
	})
	assert.Same(t, primary, got)
	assert.Empty(t, primary.Calls())
}

func TestDetectFallsBackToLegacy(t *testing.T) {
	legacy := provider.NewRecordingProvider()
	got := provider.Detect(provider.Environment{Web3: &provider.Web3{CurrentProvider: legacy}})
	assert.Same(t, legacy, got)
}

func TestDetectNone(t *testing.T) {
	assert.Nil(t, provider.Detect(provider.Environment{}))
	assert.Nil(t, provider.Detect(provider.Environment{Web3: &provider.Web3{}}))
}

func TestDialEnvironment(t *testing.T) {
	env, err := provider.DialEnvironment(context.Background(), "", "")
	require.NoError(t, err)
	assert.Nil(t, provider.Detect(env))

	env, err = provider.DialEnvironment(context.Background(), "", "http://127.0.0.1:8545")
	require.NoError(t, err)
	defer env.Close()
	assert.Nil(t, env.Ethereum)
	require.NotNil(t, env.Web3)
	assert.NotNil(t, provider.Detect(env))
}

func TestDialEnvironmentUnknownTransport(t *testing.T) {
	_, err := provider.DialEnvironment(context.Background(), "ftp://127.0.0.1", "")
	assert.Error(t, err)

	_, err = provider.DialEnvironment(context.Background(), "http://127.0.0.1:8545", "ftp://127.0.0.1")
	assert.Error(t, err)
}

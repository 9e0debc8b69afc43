package provider_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/prize/provider"
)

func TestRecordingProviderServesInOrder(t *testing.T) {
	p := provider.NewRecordingProvider().
		On(provider.MethodChainID, "0x38").
		On(provider.MethodChainID, "0x1")
	ctx := context.Background()

	var id string
	require.NoError(t, p.CallContext(ctx, &id, provider.MethodChainID))
	assert.Equal(t, "0x38", id)
	require.NoError(t, p.CallContext(ctx, &id, provider.MethodChainID))
	assert.Equal(t, "0x1", id)
	// the last response sticks
	require.NoError(t, p.CallContext(ctx, &id, provider.MethodChainID))
	assert.Equal(t, "0x1", id)

	assert.Equal(t, []string{provider.MethodChainID, provider.MethodChainID, provider.MethodChainID}, p.Methods())
}

func TestRecordingProviderRecordsParams(t *testing.T) {
	p := provider.NewRecordingProvider().On(provider.MethodEstimateGas, "0x5208")
	var gas string
	require.NoError(t, p.CallContext(context.Background(), &gas, provider.MethodEstimateGas,
		map[string]string{"to": "0xab", "value": "0x1"}))

	calls := p.CallsTo(provider.MethodEstimateGas)
	require.Len(t, calls, 1)
	var params []map[string]string
	require.NoError(t, calls[0].Decode(&params))
	assert.Equal(t, []map[string]string{{"to": "0xab", "value": "0x1"}}, params)
}

func TestRecordingProviderFailures(t *testing.T) {
	boom := &provider.Error{Code: provider.CodeUserRejected, Message: "rejected"}
	p := provider.NewRecordingProvider().Fail(provider.MethodRequestAccounts, boom)

	err := p.CallContext(context.Background(), nil, provider.MethodRequestAccounts)
	assert.Same(t, boom, err)

	err = p.CallContext(context.Background(), nil, provider.MethodGasPrice)
	code, ok := provider.Code(err)
	require.True(t, ok)
	assert.Equal(t, provider.CodeMethodNotFound, code)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.On(provider.MethodGasPrice, "0x1")
	err = p.CallContext(ctx, nil, provider.MethodGasPrice)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Len(t, p.Calls(), 3)
}

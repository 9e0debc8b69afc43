package transfer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/prize/provider"
)

const testRecipient NormalizedAddress = "0x1111111111111111111111111111111111111111"

func TestEstimateFees(t *testing.T) {
	p := provider.NewRecordingProvider().
		On(provider.MethodGasPrice, "0x3b9aca00").
		On(provider.MethodEstimateGas, "0x5208")

	got := EstimateFees(context.Background(), p, testRecipient, "0x38d7ea4c68000")
	// 21000 * 1.2 = 25200
	assert.Equal(t, FeeParameters{GasPrice: "0x3b9aca00", GasLimit: "0x6270"}, got)
	assert.Equal(t, []string{provider.MethodGasPrice, provider.MethodEstimateGas}, p.Methods())

	var params []estimateGasParams
	require.NoError(t, p.CallsTo(provider.MethodEstimateGas)[0].Decode(&params))
	assert.Equal(t, []estimateGasParams{{To: testRecipient, Value: "0x38d7ea4c68000"}}, params)
}

func TestEstimateFeesFloorsMargin(t *testing.T) {
	cases := map[string]string{
		"0x1":    "0x1", // 1.2
		"0x4":    "0x4", // 4.8
		"0x5":    "0x6",
		"0x7":    "0x8", // 8.4
		"0xc350": "0xea60",
	}
	for estimate, want := range cases {
		p := provider.NewRecordingProvider().
			On(provider.MethodGasPrice, "0x1").
			On(provider.MethodEstimateGas, estimate)
		got := EstimateFees(context.Background(), p, testRecipient, "0x1")
		assert.Equal(t, want, got.GasLimit, estimate)
	}
}

func TestEstimateFeesFallbacks(t *testing.T) {
	p := provider.NewRecordingProvider().
		Fail(provider.MethodGasPrice, errors.New("connection reset")).
		Fail(provider.MethodEstimateGas, &provider.Error{Code: provider.CodeServerError, Message: "execution reverted"})

	got := EstimateFees(context.Background(), p, testRecipient, "0x1")
	assert.Equal(t, FeeParameters{GasPrice: "0x4a817c800", GasLimit: "0x5208"}, got)
}

func TestEstimateFeesUnparsableResults(t *testing.T) {
	p := provider.NewRecordingProvider().
		On(provider.MethodGasPrice, "twenty").
		On(provider.MethodEstimateGas, map[string]int{"gas": 1})

	got := EstimateFees(context.Background(), p, testRecipient, "0x1")
	assert.Equal(t, FeeParameters{GasPrice: "0x4a817c800", GasLimit: "0x5208"}, got)
}

func TestEstimateFeesUnsupportedMethods(t *testing.T) {
	got := EstimateFees(context.Background(), provider.NewRecordingProvider(), testRecipient, "0x1")
	assert.Equal(t, "0x4a817c800", got.GasPrice)
	assert.Equal(t, "0x5208", got.GasLimit)
}

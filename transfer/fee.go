package transfer

import (
	"context"
	"encoding/json"
	"math/big"

	"github.com/rs/zerolog"

	"github.com/tranvictor/prize/common"
	"github.com/tranvictor/prize/provider"
)

var (
	// FallbackGasPrice is 20 gwei.
	FallbackGasPrice = common.GweiToWei(20)
	// FallbackGasLimit is the intrinsic gas of a plain value transfer.
	FallbackGasLimit = big.NewInt(21000)
)

// estimates are inflated by 20%
var (
	gasMarginNumerator   = big.NewInt(6)
	gasMarginDenominator = big.NewInt(5)
)

// FeeParameters are the hex quantities sent along with the transaction.
type FeeParameters struct {
	GasPrice string
	GasLimit string
}

type estimateGasParams struct {
	To    NormalizedAddress `json:"to"`
	Value WeiAmount         `json:"value"`
}

// EstimateFees asks the provider for a gas price and a gas limit for sending
// value to to. It never fails: whatever the provider can't answer is replaced
// by FallbackGasPrice or FallbackGasLimit.
func EstimateFees(ctx context.Context, p provider.Provider, to NormalizedAddress, value WeiAmount) FeeParameters {
	return FeeParameters{
		GasPrice: estimateGasPrice(ctx, p),
		GasLimit: estimateGasLimit(ctx, p, to, value),
	}
}

func estimateGasPrice(ctx context.Context, p provider.Provider) string {
	price, err := queryQuantity(ctx, p, provider.MethodGasPrice)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).
			Str("fallback", common.BigToHex(FallbackGasPrice)).
			Msg("couldn't get gas price, using fallback")
		return common.BigToHex(FallbackGasPrice)
	}
	return common.BigToHex(price)
}

func estimateGasLimit(ctx context.Context, p provider.Provider, to NormalizedAddress, value WeiAmount) string {
	gas, err := queryQuantity(ctx, p, provider.MethodEstimateGas, estimateGasParams{To: to, Value: value})
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).
			Str("fallback", common.BigToHex(FallbackGasLimit)).
			Msg("couldn't estimate gas, using fallback")
		return common.BigToHex(FallbackGasLimit)
	}
	limit := new(big.Int).Mul(gas, gasMarginNumerator)
	return common.BigToHex(limit.Quo(limit, gasMarginDenominator))
}

func queryQuantity(ctx context.Context, p provider.Provider, method string, args ...interface{}) (*big.Int, error) {
	var raw json.RawMessage
	if err := p.CallContext(ctx, &raw, method, args...); err != nil {
		return nil, err
	}
	return common.QuantityFromJSON(raw)
}

package transfer

import (
	"fmt"
	"math/big"

	"github.com/tranvictor/prize/common"
)

// NativeDecimals is the precision of the native currency of every EVM chain.
const NativeDecimals uint64 = 18

// WeiAmount is an amount in the smallest unit of the native currency, as a
// 0x-prefixed hex quantity.
type WeiAmount string

// EncodeAmount converts a decimal amount of the native currency to wei.
// Digits beyond the 18th decimal are dropped. Exponent notation is accepted
// and normalized exactly.
func EncodeAmount(amount string) (WeiAmount, error) {
	wei, err := common.DecimalStringToBig(amount, NativeDecimals)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidAmount, err)
	}
	return WeiAmount(common.BigToHex(wei)), nil
}

func (w WeiAmount) Big() *big.Int {
	b, err := common.ParseQuantity(string(w))
	if err != nil {
		return new(big.Int)
	}
	return b
}

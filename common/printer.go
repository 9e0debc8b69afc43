package common

import (
	"fmt"
	"math/big"
	"strings"
)

// ReadableNumber groups the digits of an integer string by thousands.
// Example:
//   - ReadableNumber("1000000000000000") = "1,000,000,000,000,000"
func ReadableNumber(value string) string {
	if len(value) <= 4 {
		return value
	}

	digits := []string{}
	for i := range value {
		digits = append([]string{string(value[len(value)-1-i])}, digits...)
		if (i+1)%3 == 0 && i < len(value)-1 {
			digits = append([]string{","}, digits...)
		}
	}
	return strings.Join(digits, "")
}

// ReadableAmount shows an amount in base units next to its decimal value.
// Example:
//   - ReadableAmount(1e15, 18, "ETH") = "0.001 ETH (1,000,000,000,000,000 wei)"
func ReadableAmount(value *big.Int, decimal uint64, symbol string) string {
	return fmt.Sprintf(
		"%s %s (%s wei)",
		BigToFloatString(value, decimal),
		symbol,
		ReadableNumber(value.String()),
	)
}

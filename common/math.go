package common

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// optional '+', digits with an optional fraction, optional decimal exponent
var decimalPattern = regexp.MustCompile(`^\+?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// DecimalStringToBig converts a human readable decimal amount to its integer
// representation with the given number of decimals. Digits beyond the
// precision are dropped, never rounded.
// Example:
//   - DecimalStringToBig("1.5", 4) = 15000
//   - DecimalStringToBig("0.123456", 3) = 123
//   - DecimalStringToBig("2e-2", 3) = 20
func DecimalStringToBig(value string, decimal uint64) (*big.Int, error) {
	value = strings.TrimSpace(value)
	if !decimalPattern.MatchString(value) {
		return nil, fmt.Errorf("%q is not a decimal number", value)
	}
	// only used to reject non-finite and non-positive values before any
	// digit padding happens, the conversion itself is exact
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, fmt.Errorf("%q is not a finite number", value)
	}
	if f <= 0 {
		return nil, fmt.Errorf("%q is not greater than zero", value)
	}

	mantissa, exp := strings.TrimPrefix(value, "+"), 0
	if i := strings.IndexAny(mantissa, "eE"); i >= 0 {
		exp, err = strconv.Atoi(mantissa[i+1:])
		if err != nil {
			return nil, fmt.Errorf("%q has an invalid exponent: %w", value, err)
		}
		mantissa = mantissa[:i]
	}
	intPart, fracPart, _ := strings.Cut(mantissa, ".")
	digits := intPart + fracPart

	// position of the decimal point inside digits once the result is scaled
	point := len(intPart) + exp + int(decimal)
	var scaled string
	switch {
	case point <= 0:
		scaled = "0"
	case point <= len(digits):
		scaled = digits[:point]
	default:
		scaled = digits + strings.Repeat("0", point-len(digits))
	}

	result, ok := new(big.Int).SetString(scaled, 10)
	if !ok {
		return nil, fmt.Errorf("couldn't parse %q to big int", scaled)
	}
	if result.Sign() == 0 {
		return nil, fmt.Errorf("%q is below the smallest unit", value)
	}
	return result, nil
}

// ParseQuantity parses a non-negative integer given either as 0x-prefixed hex
// or as plain decimal. Unlike hexutil.DecodeBig it tolerates leading zeros,
// which some wallets emit for chain ids ("0x01").
func ParseQuantity(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s, base = s[2:], 16
	}
	if s == "" {
		return nil, fmt.Errorf("empty quantity")
	}
	result, ok := new(big.Int).SetString(s, base)
	if !ok || result.Sign() < 0 {
		return nil, fmt.Errorf("invalid quantity %q", s)
	}
	return result, nil
}

// QuantityFromJSON parses a JSON-RPC result that is either a quantity string
// or a bare JSON number.
func QuantityFromJSON(raw json.RawMessage) (*big.Int, error) {
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return ParseQuantity(str)
	}
	var num json.Number
	if err := json.Unmarshal(raw, &num); err != nil {
		return nil, fmt.Errorf("quantity is neither a string nor a number: %s", string(raw))
	}
	return ParseQuantity(num.String())
}

// BigToHex renders b as a 0x-prefixed lowercase hex quantity.
func BigToHex(b *big.Int) string {
	return hexutil.EncodeBig(b)
}

func HexToBig(hex string) (*big.Int, error) {
	return ParseQuantity(hex)
}

// GweiToWei converts an integer amount of gwei to wei.
func GweiToWei(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e9))
}

// BigToFloatString converts a big int to a decimal string according to its
// number of decimal digits, without trailing zeros.
// Example:
//   - BigToFloatString(1100, 3) = "1.1"
//   - BigToFloatString(1000, 3) = "1"
func BigToFloatString(value *big.Int, decimal uint64) string {
	f := new(big.Float).SetPrec(256).SetInt(value)
	power := new(big.Float).SetPrec(256).SetInt(new(big.Int).Exp(
		big.NewInt(10), big.NewInt(int64(decimal)), nil,
	))
	res := new(big.Float).SetPrec(256).Quo(f, power).Text('f', int(decimal))
	if !strings.Contains(res, ".") {
		return res
	}
	return strings.TrimRight(strings.TrimRight(res, "0"), ".")
}

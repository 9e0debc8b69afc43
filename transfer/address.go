package transfer

import (
	"fmt"
	"strings"
)

const normalizedAddressLength = 42

// NormalizedAddress is a recipient address, 0x-prefixed and lowercase. It is
// only produced by NormalizeAddress.
type NormalizedAddress string

// NormalizeAddress prefixes raw with 0x when needed and lowercases it. Only
// the length is checked: a 42 character string with non hex characters is
// accepted.
func NormalizeAddress(raw string) (NormalizedAddress, error) {
	addr := raw
	if !strings.HasPrefix(addr, "0x") {
		addr = "0x" + addr
	}
	addr = strings.ToLower(addr)
	if len(addr) != normalizedAddressLength {
		return "", fmt.Errorf(
			"%w: %q is %d characters long with its 0x prefix, want %d",
			ErrInvalidAddress, raw, len(addr), normalizedAddressLength,
		)
	}
	return NormalizedAddress(addr), nil
}

package types

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
)

var (
	ErrUint256Overflow = errors.New("value overflows 256 bits")
)

// ParseUint64orHex parses a decimal or 0x-prefixed hex string. A nil
// pointer parses as zero.
func ParseUint64orHex(val *string) (uint64, error) {
	if val == nil {
		return 0, nil
	}

	str := *val
	base := 10

	if strings.HasPrefix(str, "0x") {
		str = str[2:]
		base = 16
	}

	return strconv.ParseUint(str, base, 64)
}

// ParseUint256orHex parses a decimal or 0x-prefixed hex string into a
// 256-bit unsigned integer. A nil pointer parses as nil.
func ParseUint256orHex(val *string) (*uint256.Int, error) {
	if val == nil {
		return nil, nil
	}

	str := *val
	base := 10

	if strings.HasPrefix(str, "0x") {
		str = str[2:]
		base = 16
	}

	b, ok := new(big.Int).SetString(str, base)
	if !ok || b.Sign() < 0 {
		return nil, fmt.Errorf("could not parse %q as an unsigned integer", *val)
	}

	v, overflow := uint256.FromBig(b)
	if overflow {
		return nil, fmt.Errorf("%w: %s", ErrUint256Overflow, *val)
	}

	return v, nil
}

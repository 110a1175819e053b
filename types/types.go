package types

import (
	"fmt"
	"strings"

	"github.com/dogechain-lab/blockenv/helper/hex"
)

const (
	HashLength    = 32
	AddressLength = 20
)

var (
	ZeroAddress = Address{}
	ZeroHash    = Hash{}
)

type Hash [HashLength]byte

type Address [AddressLength]byte

func min(i, j int) int {
	if i < j {
		return i
	}

	return j
}

func BytesToHash(b []byte) Hash {
	var h Hash

	size := len(b)
	min := min(size, HashLength)

	copy(h[HashLength-min:], b[len(b)-min:])

	return h
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h Hash) String() string {
	return hex.EncodeToHex(h[:])
}

func (h Hash) IsZero() bool {
	return h == ZeroHash
}

// checksumEncode returns the address in the mixed case format of EIP-55
func (a Address) checksumEncode() string {
	address := strings.ToLower(hex.EncodeToHex(a[:])[2:])
	hash := hex.EncodeToHex(keccak256([]byte(address)))[2:]

	result := make([]byte, 0, 2+len(address))
	result = append(result, '0', 'x')

	for i, c := range address {
		if c >= 'a' && c <= 'f' && hash[i] >= '8' {
			result = append(result, byte(c)-32)
		} else {
			result = append(result, byte(c))
		}
	}

	return string(result)
}

func (a Address) String() string {
	return a.checksumEncode()
}

func (a Address) Bytes() []byte {
	return a[:]
}

func StringToHash(str string) Hash {
	return BytesToHash(StringToBytes(str))
}

func StringToAddress(str string) Address {
	return BytesToAddress(StringToBytes(str))
}

func BytesToAddress(b []byte) Address {
	var a Address

	size := len(b)
	min := min(size, AddressLength)

	copy(a[AddressLength-min:], b[len(b)-min:])

	return a
}

// ParseAddress decodes a 0x-prefixed hex address, rejecting any input that is
// not exactly 20 bytes long.
func ParseAddress(str string) (Address, error) {
	b, err := hex.DecodeHex(str)
	if err != nil {
		return ZeroAddress, err
	}

	if len(b) != AddressLength {
		return ZeroAddress, fmt.Errorf("invalid address length %d, expected %d", len(b), AddressLength)
	}

	return BytesToAddress(b), nil
}

// ParseHash decodes a 0x-prefixed hex hash of exactly 32 bytes.
func ParseHash(str string) (Hash, error) {
	b, err := hex.DecodeHex(str)
	if err != nil {
		return ZeroHash, err
	}

	if len(b) != HashLength {
		return ZeroHash, fmt.Errorf("invalid hash length %d, expected %d", len(b), HashLength)
	}

	return BytesToHash(b), nil
}

// UnmarshalText parses a hash in hex syntax.
func (h *Hash) UnmarshalText(input []byte) error {
	*h = BytesToHash(StringToBytes(string(input)))

	return nil
}

// UnmarshalText parses an address in hex syntax.
func (a *Address) UnmarshalText(input []byte) error {
	buf := StringToBytes(string(input))
	if len(buf) != AddressLength {
		return fmt.Errorf("incorrect address length %d", len(buf))
	}

	*a = BytesToAddress(buf)

	return nil
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

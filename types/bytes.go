package types

import (
	"encoding/hex"
	"strings"
)

// CopyBytes returns an exact copy of the provided bytes.
func CopyBytes(b []byte) (copiedBytes []byte) {
	if b == nil {
		return nil
	}

	copiedBytes = make([]byte, len(b))
	copy(copiedBytes, b)

	return
}

// StringToBytes decodes a hex string, with or without the 0x prefix, padding
// odd-length input with a leading zero nibble. Invalid input yields nil.
func StringToBytes(str string) []byte {
	str = strings.TrimPrefix(str, "0x")
	if len(str)%2 == 1 {
		str = "0" + str
	}

	b, _ := hex.DecodeString(str)

	return b
}

// CountZeroBytes returns the number of 0x00 bytes in b
func CountZeroBytes(b []byte) uint64 {
	var z uint64

	for _, c := range b {
		if c == 0 {
			z++
		}
	}

	return z
}

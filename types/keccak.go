package types

import "github.com/dogechain-lab/blockenv/helper/keccak"

func keccak256(b []byte) []byte {
	return keccak.Keccak256(nil, b)
}

package encode

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRecord(t *testing.T) {
	p := &encodeParams{
		indexRaw:     "7",
		validatorRaw: "42",
		addressRaw:   "0x0000000000000000000000000000000000000001",
		amountRaw:    "1000000",
	}
	require.NoError(t, p.validateFlags(true))

	result := p.encode()

	assert.False(t, result.List)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, "0xdb072a94"+strings.Repeat("00", 19)+"01830f4240", result.RLP)
	assert.Empty(t, result.Hash)
}

func TestEncodeRequiresAddress(t *testing.T) {
	p := &encodeParams{indexRaw: "0", validatorRaw: "0", amountRaw: "0"}
	assert.ErrorIs(t, p.validateFlags(false), errNoAddress)

	p.addressRaw = "0x01"
	assert.Error(t, p.validateFlags(true))
}

func TestEncodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "withdrawals.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"index": 7, "validatorIndex": 42, "address": "0x0000000000000000000000000000000000000001", "amount": 1000000},
		{"index": 8, "validatorIndex": 43, "address": "0x0000000000000000000000000000000000000002", "amount": 1}
	]`), 0600))

	p := &encodeParams{file: path}
	require.NoError(t, p.validateFlags(false))

	result := p.encode()
	assert.True(t, result.List)
	assert.Equal(t, 2, result.Count)
	assert.True(t, strings.HasPrefix(result.RLP, "0xf5db07"))
	assert.NotEmpty(t, result.Hash)

	p = &encodeParams{file: path}
	assert.ErrorIs(t, p.validateFlags(true), errFileWithFields)
}

func TestEncodeEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "withdrawals.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0600))

	p := &encodeParams{file: path}
	require.NoError(t, p.validateFlags(false))

	assert.Equal(t, "0xc0", p.encode().RLP)
}

package state

import (
	"bytes"
	"testing"

	"github.com/dogechain-lab/blockenv/chain"
	"github.com/dogechain-lab/blockenv/types"
	"github.com/stretchr/testify/assert"
)

func testParams() *chain.Params {
	return &chain.Params{
		Forks: &chain.Forks{
			Homestead: chain.NewFork(0),
			Istanbul:  chain.NewFork(0),
			Prague:    chain.NewFork(100),
		},
	}
}

func TestMinimumGasBeforeFloor(t *testing.T) {
	t.Parallel()

	tx := &types.Transaction{
		Action: callAction,
		Input:  bytes.Repeat([]byte{0x01}, 100),
	}

	req := MinimumGas(testParams(), 99, tx)
	assert.Equal(t, uint64(21000+100*16), req.Intrinsic)
	assert.Equal(t, uint64(0), req.Floor)
	assert.Equal(t, req.Intrinsic, req.Minimum)
}

func TestMinimumGasFloorBinding(t *testing.T) {
	t.Parallel()

	tx := &types.Transaction{
		Action: callAction,
		Input:  bytes.Repeat([]byte{0x01}, 100),
	}

	req := MinimumGas(testParams(), 100, tx)
	assert.Equal(t, uint64(21000+100*16), req.Intrinsic)
	assert.Equal(t, uint64(21000+400*10), req.Floor)
	assert.Equal(t, req.Floor, req.Minimum)
}

func TestMinimumGasIntrinsicBinding(t *testing.T) {
	t.Parallel()

	tx := &types.Transaction{
		Action: types.CreateAction(),
		Input:  []byte{0x01},
	}

	req := MinimumGas(testParams(), 100, tx)
	assert.Equal(t, uint64(53016), req.Intrinsic)
	assert.Equal(t, uint64(21040), req.Floor)
	assert.Equal(t, req.Intrinsic, req.Minimum)
}

func TestCheckIntrinsicGas(t *testing.T) {
	t.Parallel()

	tx := &types.Transaction{
		Action: callAction,
		Input:  []byte{0x00, 0x01, 0x00},
		Gas:    21059,
	}

	assert.NoError(t, CheckIntrinsicGas(testParams(), 1, tx))
	assert.ErrorIs(t, CheckIntrinsicGas(testParams(), 100, tx), ErrIntrinsicGasTooLow)

	tx.Gas = 21060
	assert.NoError(t, CheckIntrinsicGas(testParams(), 100, tx))
}

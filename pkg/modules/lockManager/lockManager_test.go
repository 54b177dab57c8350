package lockManager

import (
	"context"
	"testing"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/relayer"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var (
	module = common.HexToAddress("0x0000000000000000000000000000000000000003")
	wallet = common.HexToAddress("0x0000000000000000000000000000000000000001")
)

type fixedSigner struct{}

func (fixedSigner) SignDigest(context.Context, common.Hash) ([]byte, error) {
	sig := make([]byte, relayer.SignatureLength)
	sig[64] = 28
	return sig, nil
}

type recordingSender struct {
	txs []*types.Transaction
}

func (r *recordingSender) SignAndSendTransaction(_ context.Context, tx *types.Transaction) (common.Hash, error) {
	r.txs = append(r.txs, tx)
	return tx.Hash(), nil
}

func Test_LockUnlock(t *testing.T) {
	sender := &recordingSender{}
	lm, err := NewLockManager(module, relayer.StaticNonce{Value: uint256.NewInt(123456)}, fixedSigner{}, sender, zaptest.NewLogger(t))
	require.NoError(t, err)

	tests := []struct {
		name     string
		run      func() (*relayer.Result, error)
		selector string
		digest   string
	}{
		{"lock", func() (*relayer.Result, error) { return lm.Lock(context.Background(), wallet) },
			"0xf435f5a7", "0xd3da70d61960e4a38eddd03bbe9816e4d2ca525445a74a3d83b3587ca5ab9077"},
		{"unlock", func() (*relayer.Result, error) { return lm.Unlock(context.Background(), wallet) },
			"0x2f6c493c", "0xd073c945e4e0e60198fec2647ae7d8ad9367ea5d867911563083261ecfa895aa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.run()
			require.NoError(t, err)
			assert.Equal(t, common.FromHex(tt.selector), result.Call.CallData[:4])
			assert.Equal(t, common.HexToHash(tt.digest), result.Digest)
			assert.Equal(t, relayer.StateSubmitted, result.State)
		})
	}
	assert.Len(t, sender.txs, 2)
}

package relayer

import (
	"context"
	"math/big"
	"testing"

	RecoveryManager "github.com/Layr-Labs/wallet-relayer-go/pkg/bindings/RecoveryManager"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newRecoveryEncoder(t *testing.T) *MessageEncoder {
	t.Helper()
	encoder, err := NewMessageEncoder(RecoveryManager.RecoveryManagerMetaData)
	require.NoError(t, err)
	return encoder
}

func Test_MessageEncoder_RoundTrip(t *testing.T) {
	encoder := newRecoveryEncoder(t)

	data, err := encoder.Encode("executeRecovery", fixtureWallet, fixtureNewOwner)
	require.NoError(t, err)

	method, args, err := encoder.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "executeRecovery", method)
	require.Len(t, args, 2)
	assert.Equal(t, fixtureWallet, args[0])
	assert.Equal(t, fixtureNewOwner, args[1])
}

func Test_MessageEncoder_CancelRecovery(t *testing.T) {
	encoder := newRecoveryEncoder(t)

	data, err := encoder.Encode("cancelRecovery", fixtureWallet)
	require.NoError(t, err)
	assert.Equal(t, "c90db447"+"0000000000000000000000000000000000000000000000000000000000000001", common.Bytes2Hex(data))
}

func Test_MessageEncoder_Deterministic(t *testing.T) {
	encoder := newRecoveryEncoder(t)
	a, err := encoder.Encode("executeRecovery", fixtureWallet, fixtureNewOwner)
	require.NoError(t, err)
	b, err := encoder.Encode("executeRecovery", fixtureWallet, fixtureNewOwner)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func Test_MessageEncoder_Errors(t *testing.T) {
	encoder := newRecoveryEncoder(t)

	t.Run("unknown function", func(t *testing.T) {
		_, err := encoder.Encode("transferOwnership", fixtureWallet)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindEncoding))
	})

	t.Run("wrong arity", func(t *testing.T) {
		_, err := encoder.Encode("executeRecovery", fixtureWallet)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEncoding)
	})

	t.Run("wrong argument type", func(t *testing.T) {
		_, err := encoder.Encode("cancelRecovery", "not an address")
		require.Error(t, err)
		assert.Equal(t, KindEncoding, KindOf(err))
	})

	t.Run("decode short data", func(t *testing.T) {
		_, _, err := encoder.Decode([]byte{0x01, 0x02})
		assert.ErrorIs(t, err, ErrEncoding)
	})

	t.Run("decode unknown selector", func(t *testing.T) {
		_, _, err := encoder.Decode(common.FromHex("deadbeef"))
		assert.ErrorIs(t, err, ErrEncoding)
	})
}

func Test_ModuleExecutor_ExecuteCallData(t *testing.T) {
	encoder := newRecoveryEncoder(t)
	executor := NewModuleExecutor(encoder, nil, zaptest.NewLogger(t))

	call := fixtureCall(t)
	signature := make([]byte, SignatureLength)
	signature[64] = 27

	data, err := executor.ExecuteCallData(call, signature)
	require.NoError(t, err)
	assert.Equal(t, "aacaaf88", common.Bytes2Hex(data[:4]))

	method, args, err := encoder.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "execute", method)
	require.Len(t, args, 6)
	assert.Equal(t, fixtureWallet, args[0])
	assert.Equal(t, call.CallData, args[1])
	assert.Equal(t, 0, big.NewInt(123456).Cmp(args[2].(*big.Int)))
	assert.Equal(t, signature, args[3])
	assert.Equal(t, 0, big.NewInt(0).Cmp(args[4].(*big.Int)))
	assert.Equal(t, 0, big.NewInt(250000).Cmp(args[5].(*big.Int)))
}

func Test_ModuleExecutor_MissingParameters(t *testing.T) {
	executor := NewModuleExecutor(newRecoveryEncoder(t), nil, zaptest.NewLogger(t))
	call := fixtureCall(t)
	call.Nonce = nil

	_, err := executor.ExecuteCallData(call, make([]byte, SignatureLength))
	assert.ErrorIs(t, err, ErrEncoding)
}

func Test_ModuleExecutor_RejectsValue(t *testing.T) {
	sender := &stubSender{}
	executor := NewModuleExecutor(newRecoveryEncoder(t), sender, zaptest.NewLogger(t))
	call := fixtureCall(t)
	call.Value = uint256.NewInt(1)

	_, err := executor.ExecuteCallData(call, make([]byte, SignatureLength))
	assert.ErrorIs(t, err, ErrEncoding)

	_, err = executor.Execute(context.Background(), call, make([]byte, SignatureLength))
	assert.ErrorIs(t, err, ErrEncoding)
	assert.Empty(t, sender.txs)

	call.Value = nil
	_, err = executor.ExecuteCallData(call, make([]byte, SignatureLength))
	assert.NoError(t, err)
}

func Test_RelayError(t *testing.T) {
	err := ChainQueryError("fetch latest block", assert.AnError)

	assert.ErrorIs(t, err, ErrChainQuery)
	assert.NotErrorIs(t, err, ErrSigning)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, "ChainQueryError: fetch latest block: "+assert.AnError.Error(), err.Error())
	assert.Equal(t, KindChainQuery, KindOf(err))
	assert.Equal(t, ErrorKind(""), KindOf(assert.AnError))

	// tagging preserves an existing kind
	assert.Equal(t, KindAccountUnavailable, KindOf(asKind(KindSubmission, "execute", AccountUnavailableError("accounts", nil))))
	assert.Equal(t, KindSubmission, KindOf(asKind(KindSubmission, "execute", assert.AnError)))

	assert.Equal(t, "SigningError", ErrSigning.Error())
}

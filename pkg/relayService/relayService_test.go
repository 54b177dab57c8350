package relayService

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/contractCaller"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/modules/lockManager"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/modules/recoveryManager"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence/memory"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/relayer"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var (
	module   = common.HexToAddress("0x0000000000000000000000000000000000000003")
	wallet   = common.HexToAddress("0x0000000000000000000000000000000000000001")
	newOwner = common.HexToAddress("0x0000000000000000000000000000000000000002")
)

type stubSigner struct {
	err error
}

func (s *stubSigner) SignDigest(_ context.Context, _ common.Hash) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	sig := make([]byte, relayer.SignatureLength)
	sig[64] = 28
	return sig, nil
}

type countingSender struct {
	mu sync.Mutex
	n  int64
}

func (c *countingSender) SignAndSendTransaction(_ context.Context, _ *types.Transaction) (common.Hash, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	return common.BigToHash(big.NewInt(c.n)), nil
}

type testEnv struct {
	service  *Service
	journal  *memory.MemoryPersistence
	receipts *contractCaller.MockContractCallerStub
}

func newTestEnv(t *testing.T, signer relayer.DigestSigner) *testEnv {
	t.Helper()
	l := zaptest.NewLogger(t)
	nonces := relayer.StaticNonce{Value: uint256.NewInt(123456)}
	sender := &countingSender{}

	rm, err := recoveryManager.NewRecoveryManager(module, nonces, signer, sender, l)
	require.NoError(t, err)
	lm, err := lockManager.NewLockManager(module, nonces, signer, sender, l)
	require.NoError(t, err)

	journal := memory.NewMemoryPersistence(l)
	t.Cleanup(func() { _ = journal.Close() })
	receipts := contractCaller.NewMockContractCallerStub()

	return &testEnv{
		service:  NewService(rm, lm, receipts, journal, &ServiceConfig{PollInterval: time.Millisecond}, l),
		journal:  journal,
		receipts: receipts,
	}
}

func Test_InitializeRecovery_Journaled(t *testing.T) {
	env := newTestEnv(t, &stubSigner{})

	rec, err := env.service.InitializeRecovery(context.Background(), wallet, newOwner)
	require.NoError(t, err)

	assert.Equal(t, persistence.Operation_RecoveryInitialize, rec.Operation)
	assert.Equal(t, persistence.RelayState_Submitted, rec.State)
	assert.Equal(t, module, rec.Module)
	assert.Equal(t, wallet, rec.Wallet)
	assert.Equal(t, newOwner.Hex(), rec.Args["newOwner"])
	assert.Equal(t, "123456", rec.Nonce)
	assert.Equal(t, common.HexToHash("0xaedfb3c64a24d6178d3cde12741ce0de156190b7e5f85a8067b2a74bd4b7d017"), rec.Digest)
	assert.Len(t, rec.Signature, relayer.SignatureLength)
	assert.NotEqual(t, common.Hash{}, rec.TxHash)

	stored, err := env.journal.LoadRelay(rec.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, rec.TxHash, stored.TxHash)
}

func Test_Operations_Digests(t *testing.T) {
	env := newTestEnv(t, &stubSigner{})
	ctx := context.Background()

	cancel, err := env.service.CancelRecovery(ctx, wallet)
	require.NoError(t, err)
	assert.Equal(t, common.HexToHash("0xf8f76ffef692199b5076c833ba3bae03b4bd57ba60916d4dd3eec2aaed6a5932"), cancel.Digest)

	lock, err := env.service.Lock(ctx, wallet)
	require.NoError(t, err)
	assert.Equal(t, common.HexToHash("0xd3da70d61960e4a38eddd03bbe9816e4d2ca525445a74a3d83b3587ca5ab9077"), lock.Digest)

	unlock, err := env.service.Unlock(ctx, wallet)
	require.NoError(t, err)
	assert.Equal(t, common.HexToHash("0xd073c945e4e0e60198fec2647ae7d8ad9367ea5d867911563083261ecfa895aa"), unlock.Digest)

	finalize, err := env.service.FinalizeRecovery(ctx, wallet)
	require.NoError(t, err)
	assert.Equal(t, persistence.RelayState_Submitted, finalize.State)
	assert.Equal(t, common.Hash{}, finalize.Digest)
	assert.Empty(t, finalize.Signature)
	assert.Empty(t, finalize.Nonce)

	all, err := env.service.ListRelaysForWallet(wallet)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	others, err := env.service.ListRelaysForWallet(newOwner)
	require.NoError(t, err)
	assert.Empty(t, others)
}

func Test_Failure_Journaled(t *testing.T) {
	env := newTestEnv(t, &stubSigner{err: errors.New("account is locked")})

	rec, err := env.service.Lock(context.Background(), wallet)
	require.Error(t, err)
	assert.ErrorIs(t, err, relayer.ErrSigning)
	require.NotNil(t, rec)
	assert.Equal(t, persistence.RelayState_Failed, rec.State)
	assert.Contains(t, rec.Error, "account is locked")
	assert.Equal(t, common.HexToHash("0xd3da70d61960e4a38eddd03bbe9816e4d2ca525445a74a3d83b3587ca5ab9077"), rec.Digest)
	assert.Equal(t, common.Hash{}, rec.TxHash)

	// Failed records are final and never hit the chain
	status, err := env.service.Status(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, persistence.RelayState_Failed, status.State)
}

func Test_Status(t *testing.T) {
	env := newTestEnv(t, &stubSigner{})
	ctx := context.Background()

	t.Run("pending stays submitted", func(t *testing.T) {
		rec, err := env.service.Lock(ctx, wallet)
		require.NoError(t, err)

		status, err := env.service.Status(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, persistence.RelayState_Submitted, status.State)
	})

	t.Run("successful receipt confirms", func(t *testing.T) {
		rec, err := env.service.Lock(ctx, wallet)
		require.NoError(t, err)
		env.receipts.SetReceipt(&types.Receipt{TxHash: rec.TxHash, Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(10)})

		status, err := env.service.Status(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, persistence.RelayState_Confirmed, status.State)

		stored, err := env.journal.LoadRelay(rec.ID)
		require.NoError(t, err)
		assert.Equal(t, persistence.RelayState_Confirmed, stored.State)
		assert.False(t, stored.UpdatedAt.Before(stored.CreatedAt))
	})

	t.Run("failed receipt reverts", func(t *testing.T) {
		rec, err := env.service.Unlock(ctx, wallet)
		require.NoError(t, err)
		env.receipts.SetReceipt(&types.Receipt{TxHash: rec.TxHash, Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(11)})

		status, err := env.service.Status(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, persistence.RelayState_Reverted, status.State)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := env.service.Status(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrRelayNotFound)
	})
}

type flakyReceipts struct {
	mu      sync.Mutex
	misses  int
	calls   int
	receipt *types.Receipt
	err     error
}

func (f *flakyReceipts) GetTransactionReceipt(_ context.Context, txHash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.calls <= f.misses {
		return nil, ethereum.NotFound
	}
	r := *f.receipt
	r.TxHash = txHash
	return &r, nil
}

func Test_WaitForFinality(t *testing.T) {
	env := newTestEnv(t, &stubSigner{})
	ctx := context.Background()

	receipts := &flakyReceipts{misses: 3, receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(1)}}
	env.service.receipts = receipts

	rec, err := env.service.InitializeRecovery(ctx, wallet, newOwner)
	require.NoError(t, err)

	final, err := env.service.WaitForFinality(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, persistence.RelayState_Confirmed, final.State)
	assert.Equal(t, 4, receipts.calls)
}

func Test_WaitForFinality_ContextDone(t *testing.T) {
	env := newTestEnv(t, &stubSigner{})
	env.service.receipts = &flakyReceipts{misses: 1 << 30}

	rec, err := env.service.Lock(context.Background(), wallet)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = env.service.WaitForFinality(ctx, rec.ID)
	require.Error(t, err)
}

func Test_Status_ChainError(t *testing.T) {
	env := newTestEnv(t, &stubSigner{})
	env.service.receipts = &flakyReceipts{err: errors.New("connection refused")}

	rec, err := env.service.Lock(context.Background(), wallet)
	require.NoError(t, err)

	_, err = env.service.Status(context.Background(), rec.ID)
	assert.ErrorIs(t, err, relayer.ErrChainQuery)
}

func Test_ModuleNotConfigured(t *testing.T) {
	l := zaptest.NewLogger(t)
	svc := NewService(nil, nil, contractCaller.NewMockContractCallerStub(), memory.NewMemoryPersistence(l), nil, l)
	ctx := context.Background()

	_, err := svc.InitializeRecovery(ctx, wallet, newOwner)
	assert.ErrorIs(t, err, ErrModuleNotConfigured)
	_, err = svc.FinalizeRecovery(ctx, wallet)
	assert.ErrorIs(t, err, ErrModuleNotConfigured)
	_, err = svc.Unlock(ctx, wallet)
	assert.ErrorIs(t, err, ErrModuleNotConfigured)

	assert.Equal(t, DefaultPollInterval, svc.config.PollInterval)
}

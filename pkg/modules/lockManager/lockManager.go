package lockManager

import (
	"context"
	"fmt"

	lockManagerBinding "github.com/Layr-Labs/wallet-relayer-go/pkg/bindings/LockManager"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/relayer"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

const (
	MethodLock   = "lock"
	MethodUnlock = "unlock"
)

// LockManager relays guardian lock and unlock calls through the wallet's LockManager module
type LockManager struct {
	*relayer.BaseRelayer
	pipeline *relayer.Pipeline
	logger   *zap.Logger
}

var _ relayer.Relayer = (*LockManager)(nil)

func NewLockManager(
	address common.Address,
	nonces relayer.NonceProvider,
	signer relayer.DigestSigner,
	sender relayer.TransactionSender,
	logger *zap.Logger,
	opts ...relayer.PipelineOption,
) (*LockManager, error) {
	encoder, err := relayer.NewMessageEncoder(lockManagerBinding.LockManagerMetaData)
	if err != nil {
		return nil, fmt.Errorf("failed to load LockManager ABI: %w", err)
	}
	executor := relayer.NewModuleExecutor(encoder, sender, logger)

	lm := &LockManager{
		BaseRelayer: relayer.NewBaseRelayer(address, encoder, nonces, executor, logger),
		logger:      logger,
	}
	lm.pipeline = relayer.NewPipeline(lm, signer, logger, opts...)
	return lm, nil
}

func (lm *LockManager) Lock(ctx context.Context, wallet common.Address) (*relayer.Result, error) {
	lm.logger.Sugar().Infow("Locking wallet", "wallet", wallet.Hex())
	return lm.pipeline.Run(ctx, wallet, MethodLock, wallet)
}

func (lm *LockManager) Unlock(ctx context.Context, wallet common.Address) (*relayer.Result, error) {
	lm.logger.Sugar().Infow("Unlocking wallet", "wallet", wallet.Hex())
	return lm.pipeline.Run(ctx, wallet, MethodUnlock, wallet)
}

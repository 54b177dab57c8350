// Package recoveryManager relays guardian-approved recovery operations through the wallet's
// RecoveryManager module.
package recoveryManager

import (
	"context"
	"fmt"

	recoveryManagerBinding "github.com/Layr-Labs/wallet-relayer-go/pkg/bindings/RecoveryManager"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/relayer"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

const (
	MethodExecuteRecovery  = "executeRecovery"
	MethodCancelRecovery   = "cancelRecovery"
	MethodFinalizeRecovery = "finalizeRecovery"
)

// RecoveryManager relays recovery calls. It uses the default relay policy: value 0, gas price 0
// and gas limit 250000.
type RecoveryManager struct {
	*relayer.BaseRelayer
	executor *relayer.ModuleExecutor
	pipeline *relayer.Pipeline
	logger   *zap.Logger
}

var _ relayer.Relayer = (*RecoveryManager)(nil)

func NewRecoveryManager(
	address common.Address,
	nonces relayer.NonceProvider,
	signer relayer.DigestSigner,
	sender relayer.TransactionSender,
	logger *zap.Logger,
	opts ...relayer.PipelineOption,
) (*RecoveryManager, error) {
	encoder, err := relayer.NewMessageEncoder(recoveryManagerBinding.RecoveryManagerMetaData)
	if err != nil {
		return nil, fmt.Errorf("failed to load RecoveryManager ABI: %w", err)
	}
	executor := relayer.NewModuleExecutor(encoder, sender, logger)

	rm := &RecoveryManager{
		BaseRelayer: relayer.NewBaseRelayer(address, encoder, nonces, executor, logger),
		executor:    executor,
		logger:      logger,
	}
	rm.pipeline = relayer.NewPipeline(rm, signer, logger, opts...)
	return rm, nil
}

// Initialize starts recovery of wallet to newOwner
func (rm *RecoveryManager) Initialize(ctx context.Context, wallet, newOwner common.Address) (*relayer.Result, error) {
	rm.logger.Sugar().Infow("Initializing recovery",
		"wallet", wallet.Hex(),
		"newOwner", newOwner.Hex(),
	)
	return rm.pipeline.Run(ctx, wallet, MethodExecuteRecovery, wallet, newOwner)
}

// Cancel aborts a pending recovery of wallet
func (rm *RecoveryManager) Cancel(ctx context.Context, wallet common.Address) (*relayer.Result, error) {
	rm.logger.Sugar().Infow("Cancelling recovery", "wallet", wallet.Hex())
	return rm.pipeline.Run(ctx, wallet, MethodCancelRecovery, wallet)
}

// Finalize completes a recovery once its security period has elapsed. Anyone may call it, so it is
// sent directly rather than relayed.
func (rm *RecoveryManager) Finalize(ctx context.Context, wallet common.Address) (common.Hash, error) {
	rm.logger.Sugar().Infow("Finalizing recovery", "wallet", wallet.Hex())
	return rm.executor.SendCall(ctx, rm.Address(), MethodFinalizeRecovery, wallet)
}

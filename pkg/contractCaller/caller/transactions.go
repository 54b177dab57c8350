package caller

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// GetTransactionReceipt returns the receipt of a mined transaction. While the transaction is
// pending the error wraps ethereum.NotFound.
func (cc *ContractCaller) GetTransactionReceipt(ctx context.Context, txHash common.Hash) (*ethereumTypes.Receipt, error) {
	receipt, err := cc.ethclient.TransactionReceipt(ctx, txHash)
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt for %s: %w", txHash.Hex(), err)
	}
	cc.logger.Debug("Fetched transaction receipt",
		zap.String("txHash", txHash.Hex()),
		zap.Uint64("status", receipt.Status),
		zap.Uint64("gasUsed", receipt.GasUsed),
	)
	return receipt, nil
}

package transactionSigner

import (
	"context"
	"math/big"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/relayer"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

var (
	// FallbackGasTipCap is used when the node does not support eth_maxPriorityFeePerGas
	FallbackGasTipCap = big.NewInt(1_500_000_000)

	// BaseFeeMultiplier leaves headroom for base fee growth while the transaction is pending
	BaseFeeMultiplier int64 = 3
)

// txParams are the fields filled in before signing
type txParams struct {
	GasTipCap *big.Int
	GasFeeCap *big.Int
	BaseFee   *big.Int
	Gas       uint64
	Nonce     uint64
}

// baseSigner holds what every backend shares: the chain client, chain id and fee policy
type baseSigner struct {
	backend EthBackend
	chainID *big.Int
	logger  *zap.Logger
}

func newBaseSigner(backend EthBackend, logger *zap.Logger) (*baseSigner, error) {
	chainID, err := backend.ChainID(context.Background())
	if err != nil {
		return nil, relayer.ChainQueryError("chain id", err)
	}
	return &baseSigner{backend: backend, chainID: chainID, logger: logger}, nil
}

// prepare computes EIP-1559 fees, a buffered gas limit and the pending nonce for tx sent from.
func (b *baseSigner) prepare(ctx context.Context, from common.Address, tx *types.Transaction) (*txParams, error) {
	gasTipCap, err := b.backend.SuggestGasTipCap(ctx)
	if err != nil {
		b.logger.Sugar().Warnw("SignAndSendTransaction: cannot get gasTipCap, using fallback",
			zap.Error(err),
		)
		gasTipCap = new(big.Int).Set(FallbackGasTipCap)
	}

	header, err := b.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, relayer.ChainQueryError("latest block header", err)
	}
	baseFee := header.BaseFee
	if baseFee == nil {
		baseFee = big.NewInt(0)
	}

	maxFeePerGas := new(big.Int).Add(
		new(big.Int).Mul(baseFee, big.NewInt(BaseFeeMultiplier)),
		gasTipCap,
	)

	gasLimit, err := b.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:      from,
		To:        tx.To(),
		GasTipCap: gasTipCap,
		GasFeeCap: maxFeePerGas,
		Value:     tx.Value(),
		Data:      tx.Data(),
	})
	if err != nil {
		return nil, relayer.SubmissionError("estimate gas", err)
	}

	// the incoming nonce may legitimately be 0, so always ask the network
	nonce, err := b.backend.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, relayer.ChainQueryError("pending nonce", err)
	}

	return &txParams{
		GasTipCap: gasTipCap,
		GasFeeCap: maxFeePerGas,
		BaseFee:   baseFee,
		Gas:       addGasBuffer(gasLimit),
		Nonce:     nonce,
	}, nil
}

// dynamicFeeTx rebuilds tx as an EIP-1559 transaction with params applied
func (b *baseSigner) dynamicFeeTx(tx *types.Transaction, params *txParams) *types.Transaction {
	value := tx.Value()
	if value == nil {
		value = big.NewInt(0)
	}
	return types.NewTx(&types.DynamicFeeTx{
		ChainID:   b.chainID,
		Nonce:     params.Nonce,
		GasTipCap: params.GasTipCap,
		GasFeeCap: params.GasFeeCap,
		Gas:       params.Gas,
		To:        tx.To(),
		Value:     value,
		Data:      tx.Data(),
	})
}

func (b *baseSigner) send(ctx context.Context, signedTx *types.Transaction) (common.Hash, error) {
	if err := b.backend.SendTransaction(ctx, signedTx); err != nil {
		return common.Hash{}, relayer.SubmissionError("send transaction", err)
	}
	b.logger.Info("SignAndSendTransaction: transaction sent",
		zap.String("txHash", signedTx.Hash().Hex()),
		zap.Uint64("nonce", signedTx.Nonce()),
		zap.Uint64("gasLimit", signedTx.Gas()),
	)
	return signedTx.Hash(), nil
}

func (b *baseSigner) logPrepared(to *common.Address, params *txParams) {
	toHex := "<contract creation>"
	if to != nil {
		toHex = to.Hex()
	}
	b.logger.Info("SignAndSendTransaction: sending transaction",
		zap.String("to", toHex),
		zap.String("maxPriorityFeePerGas", params.GasTipCap.String()),
		zap.String("maxFeePerGas", params.GasFeeCap.String()),
		zap.String("baseFee", params.BaseFee.String()),
		zap.Uint64("gasLimit", params.Gas),
		zap.Uint64("nonce", params.Nonce),
	)
}

// WaitForReceipt waits for the transaction to be mined. A reverted transaction is returned with
// status 0 and no error.
func (b *baseSigner) WaitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	receipt, err := bind.WaitMinedHash(ctx, b.backend, txHash)
	if err != nil {
		return nil, relayer.ChainQueryError("wait for receipt", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		b.logger.Warn("Transaction reverted",
			zap.String("txHash", txHash.Hex()),
			zap.Uint64("gasUsed", receipt.GasUsed),
		)
	}
	return receipt, nil
}

// addGasBuffer adds 20% to an estimated gas limit
func addGasBuffer(gasLimit uint64) uint64 {
	return gasLimit + gasLimit/5
}

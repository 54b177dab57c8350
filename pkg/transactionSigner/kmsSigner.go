package transactionSigner

import (
	"context"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/messageSigner"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/relayer"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// KMSTransactionSigner signs transactions with a remote hash signer such as AWS KMS
type KMSTransactionSigner struct {
	*baseSigner
	signer messageSigner.HashSigner
}

func NewKMSTransactionSigner(signer messageSigner.HashSigner, backend EthBackend, logger *zap.Logger) (*KMSTransactionSigner, error) {
	base, err := newBaseSigner(backend, logger)
	if err != nil {
		return nil, err
	}
	return &KMSTransactionSigner{baseSigner: base, signer: signer}, nil
}

func (k *KMSTransactionSigner) GetTransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	from, err := k.GetFromAddress(ctx)
	if err != nil {
		return nil, err
	}
	return unsentTransactOpts(ctx, from), nil
}

func (k *KMSTransactionSigner) SignAndSendTransaction(ctx context.Context, tx *types.Transaction) (common.Hash, error) {
	from, err := k.GetFromAddress(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	params, err := k.prepare(ctx, from, tx)
	if err != nil {
		return common.Hash{}, err
	}
	k.logPrepared(tx.To(), params)

	unsigned := k.dynamicFeeTx(tx, params)
	txSigner := types.LatestSignerForChainID(k.chainID)

	sig, err := k.signer.SignHash(ctx, txSigner.Hash(unsigned).Bytes())
	if err != nil {
		return common.Hash{}, relayer.SigningError("kms sign transaction", err)
	}
	signedTx, err := unsigned.WithSignature(txSigner, sig)
	if err != nil {
		return common.Hash{}, relayer.SigningError("attach signature", err)
	}
	return k.send(ctx, signedTx)
}

func (k *KMSTransactionSigner) GetFromAddress(ctx context.Context) (common.Address, error) {
	addr, err := k.signer.Address(ctx)
	if err != nil {
		return common.Address{}, relayer.AccountUnavailableError("kms key address", err)
	}
	return addr, nil
}

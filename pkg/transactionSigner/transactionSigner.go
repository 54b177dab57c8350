package transactionSigner

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/config"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/messageSigner"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// ITransactionSigner signs and broadcasts transactions from the relayer's sending account
type ITransactionSigner interface {
	// GetTransactOpts returns options for building unsigned, unsent transactions with a binding
	GetTransactOpts(ctx context.Context) (*bind.TransactOpts, error)

	// SignAndSendTransaction fills in fees, gas and nonce, signs the transaction and sends it.
	// It returns as soon as the node accepts the transaction.
	SignAndSendTransaction(ctx context.Context, tx *types.Transaction) (common.Hash, error)

	// WaitForReceipt blocks until the transaction is mined or ctx ends
	WaitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)

	// GetFromAddress returns the sending account
	GetFromAddress(ctx context.Context) (common.Address, error)
}

// EthBackend is the chain client surface used by the signers. *ethclient.Client implements it.
type EthBackend interface {
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// NewTransactionSigner builds the signer named by cfg.Type.
func NewTransactionSigner(cfg *config.SignerConfig, backend EthBackend, backends *messageSigner.Backends, logger *zap.Logger) (ITransactionSigner, error) {
	switch cfg.Type {
	case config.SignerType_Node:
		if backends.Node == nil {
			return nil, fmt.Errorf("node signer requires a node client")
		}
		return NewNodeTransactionSigner(backends.Node, backend, logger)
	case config.SignerType_PrivateKey:
		if cfg.PrivateKey == "" {
			return nil, fmt.Errorf("private key cannot be empty")
		}
		return NewPrivateKeySigner(cfg.PrivateKey, backend, logger)
	case config.SignerType_AWSKMS:
		if backends.KMS == nil {
			return nil, fmt.Errorf("aws-kms signer requires a KMS client")
		}
		return NewKMSTransactionSigner(backends.KMS, backend, logger)
	case config.SignerType_Web3Signer:
		if backends.Web3Signer == nil || cfg.RemoteSigner == nil {
			return nil, fmt.Errorf("web3signer signer requires a web3signer client and remote signer config")
		}
		return NewWeb3TransactionSigner(backends.Web3Signer, common.HexToAddress(cfg.RemoteSigner.FromAddress), backend, logger)
	}
	return nil, fmt.Errorf("unsupported signer type %q", cfg.Type)
}

// unsentTransactOpts returns opts whose Signer passes the transaction through untouched, so the
// binding only builds it and SignAndSendTransaction does the rest.
func unsentTransactOpts(ctx context.Context, from common.Address) *bind.TransactOpts {
	return &bind.TransactOpts{
		From:    from,
		Context: ctx,
		NoSend:  true,
		Signer: func(_ common.Address, tx *types.Transaction) (*types.Transaction, error) {
			return tx, nil
		},
	}
}

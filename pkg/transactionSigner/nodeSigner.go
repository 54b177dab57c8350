package transactionSigner

import (
	"context"
	"errors"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/clients/node"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/relayer"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// NodeTransactionSigner sends from the node's first unlocked account via eth_sendTransaction.
// The node signs; fees, gas and nonce are still computed locally.
type NodeTransactionSigner struct {
	*baseSigner
	accounts node.INodeAccounts
}

func NewNodeTransactionSigner(accounts node.INodeAccounts, backend EthBackend, logger *zap.Logger) (*NodeTransactionSigner, error) {
	base, err := newBaseSigner(backend, logger)
	if err != nil {
		return nil, err
	}
	return &NodeTransactionSigner{baseSigner: base, accounts: accounts}, nil
}

func (n *NodeTransactionSigner) GetTransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	from, err := n.GetFromAddress(ctx)
	if err != nil {
		return nil, err
	}
	return unsentTransactOpts(ctx, from), nil
}

func (n *NodeTransactionSigner) SignAndSendTransaction(ctx context.Context, tx *types.Transaction) (common.Hash, error) {
	from, err := n.GetFromAddress(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	params, err := n.prepare(ctx, from, tx)
	if err != nil {
		return common.Hash{}, err
	}
	n.logPrepared(tx.To(), params)

	hash, err := n.accounts.SendTransaction(ctx, &node.SendTxArgs{
		From:                 from,
		To:                   tx.To(),
		Gas:                  node.Uint64Ptr(params.Gas),
		MaxFeePerGas:         node.BigPtr(params.GasFeeCap),
		MaxPriorityFeePerGas: node.BigPtr(params.GasTipCap),
		Value:                node.BigPtr(tx.Value()),
		Nonce:                node.Uint64Ptr(params.Nonce),
		Data:                 tx.Data(),
	})
	if err != nil {
		return common.Hash{}, relayer.SubmissionError("eth_sendTransaction", err)
	}
	n.logger.Info("SignAndSendTransaction: transaction sent",
		zap.String("txHash", hash.Hex()),
		zap.String("from", from.Hex()),
	)
	return hash, nil
}

// GetFromAddress returns the node's first account
func (n *NodeTransactionSigner) GetFromAddress(ctx context.Context) (common.Address, error) {
	accounts, err := n.accounts.Accounts(ctx)
	if err != nil {
		return common.Address{}, relayer.ChainQueryError("eth_accounts", err)
	}
	if len(accounts) == 0 {
		return common.Address{}, relayer.AccountUnavailableError("eth_accounts", errors.New("node has no accounts"))
	}
	return accounts[0], nil
}

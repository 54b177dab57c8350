package node

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

// INodeAccounts is the account-management surface of a node that holds unlocked keys.
type INodeAccounts interface {
	// Accounts returns the node's eth_accounts list.
	Accounts(ctx context.Context) ([]common.Address, error)

	// Sign calls eth_sign, which applies the "\x19Ethereum Signed Message:\n" prefix to data.
	Sign(ctx context.Context, account common.Address, data []byte) ([]byte, error)

	// SendTransaction calls eth_sendTransaction and returns the transaction hash.
	SendTransaction(ctx context.Context, args *SendTxArgs) (common.Hash, error)
}

// SendTxArgs are the eth_sendTransaction parameters. Unset fields are filled by the node.
type SendTxArgs struct {
	From                 common.Address  `json:"from"`
	To                   *common.Address `json:"to,omitempty"`
	Gas                  *hexutil.Uint64 `json:"gas,omitempty"`
	GasPrice             *hexutil.Big    `json:"gasPrice,omitempty"`
	MaxFeePerGas         *hexutil.Big    `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas *hexutil.Big    `json:"maxPriorityFeePerGas,omitempty"`
	Value                *hexutil.Big    `json:"value,omitempty"`
	Nonce                *hexutil.Uint64 `json:"nonce,omitempty"`
	Data                 hexutil.Bytes   `json:"data,omitempty"`
}

// Client talks to a node's personal account endpoints over JSON-RPC.
type Client struct {
	rpc    *rpc.Client
	logger *zap.Logger
}

var _ INodeAccounts = (*Client)(nil)

func NewClient(rpcClient *rpc.Client, logger *zap.Logger) *Client {
	return &Client{rpc: rpcClient, logger: logger}
}

// Dial connects to url and returns a Client.
func Dial(ctx context.Context, url string, logger *zap.Logger) (*Client, error) {
	c, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial node at %s: %w", url, err)
	}
	return NewClient(c, logger), nil
}

func (c *Client) Accounts(ctx context.Context) ([]common.Address, error) {
	var accounts []common.Address
	if err := c.rpc.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		return nil, fmt.Errorf("eth_accounts failed: %w", err)
	}
	c.logger.Sugar().Debugw("Fetched node accounts", "count", len(accounts))
	return accounts, nil
}

func (c *Client) Sign(ctx context.Context, account common.Address, data []byte) ([]byte, error) {
	var signature hexutil.Bytes
	if err := c.rpc.CallContext(ctx, &signature, "eth_sign", account, hexutil.Bytes(data)); err != nil {
		return nil, fmt.Errorf("eth_sign failed: %w", err)
	}
	return signature, nil
}

func (c *Client) SendTransaction(ctx context.Context, args *SendTxArgs) (common.Hash, error) {
	var hash common.Hash
	if err := c.rpc.CallContext(ctx, &hash, "eth_sendTransaction", args); err != nil {
		return common.Hash{}, fmt.Errorf("eth_sendTransaction failed: %w", err)
	}
	c.logger.Sugar().Infow("Node accepted transaction",
		"from", args.From.Hex(),
		"txHash", hash.Hex(),
	)
	return hash, nil
}

// BigPtr converts v for use in SendTxArgs.
func BigPtr(v *big.Int) *hexutil.Big {
	if v == nil {
		return nil
	}
	return (*hexutil.Big)(v)
}

// Uint64Ptr converts v for use in SendTxArgs.
func Uint64Ptr(v uint64) *hexutil.Uint64 {
	u := hexutil.Uint64(v)
	return &u
}

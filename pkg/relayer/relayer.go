package relayer

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"go.uber.org/zap"
)

// Relayer is implemented by every wallet module that accepts meta-transactions.
type Relayer interface {
	// Address is the module contract the relayed call is sent to.
	Address() common.Address

	// Encoder encodes calls against the module's interface.
	Encoder() *MessageEncoder

	// Nonce returns a fresh replay-protection value.
	Nonce(ctx context.Context) (*uint256.Int, error)

	// Value is covered by the signature only. execute carries no ether, so it must be zero.
	Value() *uint256.Int
	GasPrice() *uint256.Int
	GasLimit() *uint256.Int

	// Execute submits the signed call and returns the transaction hash once the node accepts it.
	// The hash does not imply inclusion.
	Execute(ctx context.Context, call *RelayedCall, signature []byte) (common.Hash, error)
}

// BaseRelayer carries the default relay policy. Modules embed it and shadow the methods they
// need to change.
type BaseRelayer struct {
	module   common.Address
	encoder  *MessageEncoder
	nonces   NonceProvider
	executor Executor
	logger   *zap.Logger
}

func NewBaseRelayer(
	module common.Address,
	encoder *MessageEncoder,
	nonces NonceProvider,
	executor Executor,
	logger *zap.Logger,
) *BaseRelayer {
	return &BaseRelayer{
		module:   module,
		encoder:  encoder,
		nonces:   nonces,
		executor: executor,
		logger:   logger,
	}
}

func (b *BaseRelayer) Address() common.Address {
	return b.module
}

func (b *BaseRelayer) Encoder() *MessageEncoder {
	return b.encoder
}

func (b *BaseRelayer) Nonce(ctx context.Context) (*uint256.Int, error) {
	return b.nonces.Nonce(ctx)
}

func (b *BaseRelayer) Value() *uint256.Int {
	return uint256.NewInt(0)
}

func (b *BaseRelayer) GasPrice() *uint256.Int {
	return uint256.NewInt(0)
}

func (b *BaseRelayer) GasLimit() *uint256.Int {
	return uint256.NewInt(DefaultGasLimit)
}

func (b *BaseRelayer) Execute(ctx context.Context, call *RelayedCall, signature []byte) (common.Hash, error) {
	if call.Module != b.module {
		return common.Hash{}, SubmissionError("execute", errModuleMismatch(call.Module, b.module))
	}
	return b.executor.Execute(ctx, call, signature)
}

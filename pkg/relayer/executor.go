package relayer

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// Executor submits a signed relayed call to its module.
type Executor interface {
	Execute(ctx context.Context, call *RelayedCall, signature []byte) (common.Hash, error)
}

// TransactionSender signs and broadcasts a transaction template. Fee, gas and nonce fields of the
// template are filled in by the sender.
type TransactionSender interface {
	SignAndSendTransaction(ctx context.Context, tx *types.Transaction) (common.Hash, error)
}

// ModuleExecutor calls the module's execute function from the relayer's sending account.
type ModuleExecutor struct {
	encoder *MessageEncoder
	sender  TransactionSender
	logger  *zap.Logger
}

func NewModuleExecutor(encoder *MessageEncoder, sender TransactionSender, logger *zap.Logger) *ModuleExecutor {
	return &ModuleExecutor{encoder: encoder, sender: sender, logger: logger}
}

func (e *ModuleExecutor) Execute(ctx context.Context, call *RelayedCall, signature []byte) (common.Hash, error) {
	data, err := e.ExecuteCallData(call, signature)
	if err != nil {
		return common.Hash{}, err
	}

	module := call.Module
	tx := types.NewTx(&types.DynamicFeeTx{
		To:    &module,
		Value: big.NewInt(0),
		Data:  data,
	})

	e.logger.Sugar().Infow("Submitting relayed call",
		"module", module.Hex(),
		"wallet", call.Wallet.Hex(),
		"nonce", call.Nonce.Dec(),
		"gasLimit", call.GasLimit.Dec(),
	)

	txHash, err := e.sender.SignAndSendTransaction(ctx, tx)
	if err != nil {
		return common.Hash{}, asKind(KindSubmission, "send execute transaction", err)
	}
	return txHash, nil
}

// ExecuteCallData encodes execute(wallet, data, nonce, signatures, gasPrice, gasLimit) using the
// exact values that were hashed for signing. execute is not payable, so a call that signs a
// non-zero value is rejected.
func (e *ModuleExecutor) ExecuteCallData(call *RelayedCall, signature []byte) ([]byte, error) {
	if call.Nonce == nil || call.GasPrice == nil || call.GasLimit == nil {
		return nil, EncodingError("encode execute", fmt.Errorf("relayed call is missing nonce or gas parameters"))
	}
	if call.Value != nil && !call.Value.IsZero() {
		return nil, EncodingError("encode execute", fmt.Errorf("relayed call value %s cannot be sent to execute", call.Value.Dec()))
	}
	return e.encoder.Encode("execute",
		call.Wallet,
		call.CallData,
		call.Nonce.ToBig(),
		signature,
		call.GasPrice.ToBig(),
		call.GasLimit.ToBig(),
	)
}

// SendCall sends method(args...) to the module as a plain transaction from the relayer's account.
// It is used for module functions that anyone may call and so need no owner signature.
func (e *ModuleExecutor) SendCall(ctx context.Context, module common.Address, method string, args ...interface{}) (common.Hash, error) {
	data, err := e.encoder.Encode(method, args...)
	if err != nil {
		return common.Hash{}, err
	}
	tx := types.NewTx(&types.DynamicFeeTx{
		To:    &module,
		Value: big.NewInt(0),
		Data:  data,
	})

	e.logger.Sugar().Infow("Sending module call",
		"module", module.Hex(),
		"method", method,
	)

	txHash, err := e.sender.SignAndSendTransaction(ctx, tx)
	if err != nil {
		return common.Hash{}, asKind(KindSubmission, "send "+method+" transaction", err)
	}
	return txHash, nil
}

func errModuleMismatch(got, want common.Address) error {
	return fmt.Errorf("call targets module %s but relayer is bound to %s", got.Hex(), want.Hex())
}

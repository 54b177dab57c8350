package transactionSigner

import (
	"context"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/clients/web3signer"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/relayer"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// Web3TransactionSigner implements ITransactionSigner using a Web3Signer service
type Web3TransactionSigner struct {
	*baseSigner
	web3SignerClient web3signer.IWeb3Signer
	fromAddress      common.Address
}

// NewWeb3TransactionSigner creates a new Web3TransactionSigner
func NewWeb3TransactionSigner(web3SignerClient web3signer.IWeb3Signer, fromAddress common.Address, backend EthBackend, logger *zap.Logger) (*Web3TransactionSigner, error) {
	base, err := newBaseSigner(backend, logger)
	if err != nil {
		return nil, err
	}
	return &Web3TransactionSigner{
		baseSigner:       base,
		web3SignerClient: web3SignerClient,
		fromAddress:      fromAddress,
	}, nil
}

func (w3s *Web3TransactionSigner) GetTransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	return unsentTransactOpts(ctx, w3s.fromAddress), nil
}

// SignAndSendTransaction signs a transaction with eth_signTransaction and sends it to the network
func (w3s *Web3TransactionSigner) SignAndSendTransaction(ctx context.Context, tx *types.Transaction) (common.Hash, error) {
	params, err := w3s.prepare(ctx, w3s.fromAddress, tx)
	if err != nil {
		return common.Hash{}, err
	}
	w3s.logPrepared(tx.To(), params)

	txData := map[string]interface{}{
		"value":                hexutil.EncodeBig(tx.Value()),
		"gas":                  hexutil.EncodeUint64(params.Gas),
		"maxPriorityFeePerGas": hexutil.EncodeBig(params.GasTipCap),
		"maxFeePerGas":         hexutil.EncodeBig(params.GasFeeCap),
		"nonce":                hexutil.EncodeUint64(params.Nonce),
		"data":                 hexutil.Encode(tx.Data()),
		"type":                 "0x2",
		"chainId":              hexutil.EncodeUint64(w3s.chainID.Uint64()),
	}
	if tx.To() != nil {
		txData["to"] = tx.To().Hex()
	}

	signedTxHex, err := w3s.web3SignerClient.EthSignTransaction(ctx, w3s.fromAddress.Hex(), txData)
	if err != nil {
		return common.Hash{}, relayer.SigningError("web3signer sign transaction", err)
	}

	signedTxBytes, err := hexutil.Decode(signedTxHex)
	if err != nil {
		return common.Hash{}, relayer.SigningError("decode signed transaction", err)
	}

	var signedTx types.Transaction
	if err := signedTx.UnmarshalBinary(signedTxBytes); err != nil {
		return common.Hash{}, relayer.SigningError("unmarshal signed transaction", err)
	}

	return w3s.send(ctx, &signedTx)
}

// GetFromAddress returns the address that will be used for signing
func (w3s *Web3TransactionSigner) GetFromAddress(_ context.Context) (common.Address, error) {
	return w3s.fromAddress, nil
}

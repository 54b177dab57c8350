package transactionSigner

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/relayer"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// PrivateKeySigner signs transactions with an in-process key
type PrivateKeySigner struct {
	*baseSigner
	privateKey  *ecdsa.PrivateKey
	fromAddress common.Address
}

func NewPrivateKeySigner(privateKeyHex string, backend EthBackend, logger *zap.Logger) (*PrivateKeySigner, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	base, err := newBaseSigner(backend, logger)
	if err != nil {
		return nil, err
	}
	return &PrivateKeySigner{
		baseSigner:  base,
		privateKey:  key,
		fromAddress: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

func (p *PrivateKeySigner) GetTransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	return unsentTransactOpts(ctx, p.fromAddress), nil
}

func (p *PrivateKeySigner) SignAndSendTransaction(ctx context.Context, tx *types.Transaction) (common.Hash, error) {
	params, err := p.prepare(ctx, p.fromAddress, tx)
	if err != nil {
		return common.Hash{}, err
	}
	p.logPrepared(tx.To(), params)

	signedTx, err := types.SignTx(p.dynamicFeeTx(tx, params), types.LatestSignerForChainID(p.chainID), p.privateKey)
	if err != nil {
		return common.Hash{}, relayer.SigningError("sign transaction", err)
	}
	return p.send(ctx, signedTx)
}

func (p *PrivateKeySigner) GetFromAddress(_ context.Context) (common.Address, error) {
	return p.fromAddress, nil
}

package relayer

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
	"go.uber.org/zap"
)

// HeaderReader is the slice of the chain client needed to derive nonces.
type HeaderReader interface {
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
}

// NonceProvider yields the replay-protection value for a new relay.
type NonceProvider interface {
	Nonce(ctx context.Context) (*uint256.Int, error)
}

// BlockNonceProvider derives nonces from the latest block header.
//
// Two relays whose nonces are derived from the same block get identical values.
type BlockNonceProvider struct {
	chain  HeaderReader
	logger *zap.Logger
}

func NewBlockNonceProvider(chain HeaderReader, logger *zap.Logger) *BlockNonceProvider {
	return &BlockNonceProvider{chain: chain, logger: logger}
}

func (p *BlockNonceProvider) Nonce(ctx context.Context) (*uint256.Int, error) {
	header, err := p.chain.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, ChainQueryError("fetch latest block", err)
	}
	if header == nil || header.Number == nil {
		return nil, ChainQueryError("fetch latest block", errors.New("no block returned"))
	}
	nonce, err := DeriveNonce(header.Number, header.Time)
	if err != nil {
		return nil, err
	}
	p.logger.Sugar().Debugw("Derived relay nonce",
		"blockNumber", header.Number.String(),
		"timestamp", header.Time,
		"nonce", nonce.Dec(),
	)
	return nonce, nil
}

// DeriveNonce concatenates the decimal block number and timestamp and parses the result as a
// 256-bit integer.
func DeriveNonce(number *big.Int, timestamp uint64) (*uint256.Int, error) {
	if number == nil || number.Sign() < 0 {
		return nil, ChainQueryError("derive nonce", fmt.Errorf("invalid block number %v", number))
	}
	digits := number.String() + strconv.FormatUint(timestamp, 10)
	nonce, err := uint256.FromDecimal(digits)
	if err != nil {
		return nil, ChainQueryError("derive nonce", fmt.Errorf("parse %q: %w", digits, err))
	}
	return nonce, nil
}

// StaticNonce always returns the same value. It is useful for reproducing a signature offline.
type StaticNonce struct {
	Value *uint256.Int
}

func (s StaticNonce) Nonce(_ context.Context) (*uint256.Int, error) {
	if s.Value == nil {
		return nil, ChainQueryError("static nonce", errors.New("no nonce configured"))
	}
	return new(uint256.Int).Set(s.Value), nil
}

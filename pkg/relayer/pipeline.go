package relayer

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// SignatureLength is the size of an r || s || v signature.
const SignatureLength = 65

// DigestSigner produces the owner's signature over a signing hash.
type DigestSigner interface {
	SignDigest(ctx context.Context, digest common.Hash) ([]byte, error)
}

// StateObserver is notified after every pipeline transition.
type StateObserver func(state PipelineState, result *Result)

// Pipeline runs one relayed call from nonce derivation to submission. It holds no per-call state
// and may be used concurrently.
type Pipeline struct {
	relayer  Relayer
	signer   DigestSigner
	observer StateObserver
	logger   *zap.Logger
}

type PipelineOption func(*Pipeline)

// WithObserver registers a callback for state transitions.
func WithObserver(o StateObserver) PipelineOption {
	return func(p *Pipeline) {
		p.observer = o
	}
}

func NewPipeline(relayer Relayer, signer DigestSigner, logger *zap.Logger, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		relayer: relayer,
		signer:  signer,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run relays method(args...) on behalf of wallet. It stops at the first failing stage and returns
// that stage's error unchanged alongside the partial result.
func (p *Pipeline) Run(ctx context.Context, wallet common.Address, method string, args ...interface{}) (*Result, error) {
	result := &Result{
		Call: &RelayedCall{
			Module:   p.relayer.Address(),
			Wallet:   wallet,
			Value:    p.relayer.Value(),
			GasPrice: p.relayer.GasPrice(),
			GasLimit: p.relayer.GasLimit(),
		},
		State: StateIdle,
	}
	sugar := p.logger.Sugar().With("module", result.Call.Module.Hex(), "wallet", wallet.Hex(), "method", method)

	nonce, err := p.relayer.Nonce(ctx)
	if err != nil {
		sugar.Warnw("Failed to derive nonce", "error", err)
		return result, asKind(KindChainQuery, "nonce", err)
	}
	result.Call.Nonce = nonce
	p.advance(result, StateNonceFetched)

	data, err := p.relayer.Encoder().Encode(method, args...)
	if err != nil {
		sugar.Warnw("Failed to encode call", "error", err)
		return result, asKind(KindEncoding, "encode", err)
	}
	result.Call.CallData = data
	p.advance(result, StateEncoded)

	result.Digest = result.Call.SigningHash()
	p.advance(result, StateHashed)

	signature, err := p.signer.SignDigest(ctx, result.Digest)
	if err != nil {
		sugar.Warnw("Failed to sign relay digest", "error", err)
		return result, asKind(KindSigning, "sign", err)
	}
	if len(signature) != SignatureLength {
		return result, SigningError("sign", fmt.Errorf("expected %d byte signature, got %d", SignatureLength, len(signature)))
	}
	result.Signature = signature
	p.advance(result, StateSigned)

	txHash, err := p.relayer.Execute(ctx, result.Call, signature)
	if err != nil {
		sugar.Warnw("Failed to submit relayed call", "error", err)
		return result, asKind(KindSubmission, "execute", err)
	}
	result.TxHash = txHash
	p.advance(result, StateSubmitted)

	sugar.Infow("Relayed call submitted",
		"nonce", nonce.Dec(),
		"digest", result.Digest.Hex(),
		"txHash", txHash.Hex(),
	)
	return result, nil
}

func (p *Pipeline) advance(result *Result, state PipelineState) {
	result.State = state
	p.logger.Debug("Relay pipeline transition", zap.String("state", state.String()))
	if p.observer != nil {
		p.observer(state, result)
	}
}

package messageSigner

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/clients/node"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/clients/web3signer"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/config"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/relayer"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// IMessageSigner produces the wallet owner's authorisation for a relay digest.
//
// Every backend signs the digest the way eth_sign does: the 32 bytes are wrapped in the
// "\x19Ethereum Signed Message:\n32" envelope before hashing, and v is returned as 27 or 28.
type IMessageSigner interface {
	SignDigest(ctx context.Context, digest common.Hash) ([]byte, error)
	GetAddress(ctx context.Context) (common.Address, error)
}

var _ relayer.DigestSigner = IMessageSigner(nil)

// HashSigner signs a 32-byte hash and returns r || s || v with v in {0, 1}.
type HashSigner interface {
	SignHash(ctx context.Context, hash []byte) ([]byte, error)
	Address(ctx context.Context) (common.Address, error)
}

// Backends holds the collaborators each signer type may need.
type Backends struct {
	Node       node.INodeAccounts
	Web3Signer web3signer.IWeb3Signer
	KMS        HashSigner
}

// NewMessageSigner picks the backend named by cfg.Type.
func NewMessageSigner(cfg *config.SignerConfig, backends *Backends, logger *zap.Logger) (IMessageSigner, error) {
	switch cfg.Type {
	case config.SignerType_Node:
		if backends.Node == nil {
			return nil, errors.New("node signer requires a node client")
		}
		return NewNodeSigner(backends.Node, logger), nil
	case config.SignerType_PrivateKey:
		return NewPrivateKeySigner(cfg.PrivateKey, logger)
	case config.SignerType_AWSKMS:
		if backends.KMS == nil {
			return nil, errors.New("aws-kms signer requires a KMS client")
		}
		return NewHashSignerAdapter(backends.KMS, logger), nil
	case config.SignerType_Web3Signer:
		if backends.Web3Signer == nil || cfg.RemoteSigner == nil {
			return nil, errors.New("web3signer signer requires a web3signer client and remote signer config")
		}
		return NewWeb3MessageSigner(backends.Web3Signer, common.HexToAddress(cfg.RemoteSigner.FromAddress), logger), nil
	}
	return nil, fmt.Errorf("unsupported signer type %q", cfg.Type)
}

// PersonalDigest is the hash actually signed for digest: keccak256("\x19Ethereum Signed Message:\n32" || digest).
func PersonalDigest(digest common.Hash) []byte {
	return accounts.TextHash(digest[:])
}

// RecoverSigner returns the address that produced signature over digest.
func RecoverSigner(digest common.Hash, signature []byte) (common.Address, error) {
	if len(signature) != relayer.SignatureLength {
		return common.Address{}, fmt.Errorf("expected %d byte signature, got %d", relayer.SignatureLength, len(signature))
	}
	sig := make([]byte, len(signature))
	copy(sig, signature)
	if sig[64] >= 27 {
		sig[64] -= 27
	}
	pub, err := crypto.SigToPub(PersonalDigest(digest), sig)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// toEthereumV shifts a raw recovery id into the 27/28 convention.
func toEthereumV(sig []byte) ([]byte, error) {
	if len(sig) != relayer.SignatureLength {
		return nil, fmt.Errorf("expected %d byte signature, got %d", relayer.SignatureLength, len(sig))
	}
	out := make([]byte, len(sig))
	copy(out, sig)
	if out[64] < 27 {
		out[64] += 27
	}
	return out, nil
}

// NodeSigner signs with the first account of the connected node via eth_sign.
type NodeSigner struct {
	node   node.INodeAccounts
	logger *zap.Logger
}

func NewNodeSigner(n node.INodeAccounts, logger *zap.Logger) *NodeSigner {
	return &NodeSigner{node: n, logger: logger}
}

func (n *NodeSigner) GetAddress(ctx context.Context) (common.Address, error) {
	accts, err := n.node.Accounts(ctx)
	if err != nil {
		return common.Address{}, relayer.ChainQueryError("eth_accounts", err)
	}
	if len(accts) == 0 {
		return common.Address{}, relayer.AccountUnavailableError("eth_accounts", errors.New("node exposes no accounts"))
	}
	return accts[0], nil
}

func (n *NodeSigner) SignDigest(ctx context.Context, digest common.Hash) ([]byte, error) {
	account, err := n.GetAddress(ctx)
	if err != nil {
		return nil, err
	}
	sig, err := n.node.Sign(ctx, account, digest[:])
	if err != nil {
		return nil, relayer.SigningError("eth_sign", err)
	}
	sig, err = toEthereumV(sig)
	if err != nil {
		return nil, relayer.SigningError("eth_sign", err)
	}
	n.logger.Sugar().Debugw("Signed relay digest with node account", "account", account.Hex(), "digest", digest.Hex())
	return sig, nil
}

// PrivateKeySigner signs with an in-process secp256k1 key.
type PrivateKeySigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
	logger  *zap.Logger
}

func NewPrivateKeySigner(hexKey string, logger *zap.Logger) (*PrivateKeySigner, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return &PrivateKeySigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		logger:  logger,
	}, nil
}

func (p *PrivateKeySigner) GetAddress(_ context.Context) (common.Address, error) {
	return p.address, nil
}

func (p *PrivateKeySigner) SignDigest(_ context.Context, digest common.Hash) ([]byte, error) {
	sig, err := crypto.Sign(PersonalDigest(digest), p.key)
	if err != nil {
		return nil, relayer.SigningError("sign digest", err)
	}
	return toEthereumV(sig)
}

// HashSignerAdapter signs personal digests with any raw hash signer, e.g. AWS KMS.
type HashSignerAdapter struct {
	signer HashSigner
	logger *zap.Logger
}

func NewHashSignerAdapter(signer HashSigner, logger *zap.Logger) *HashSignerAdapter {
	return &HashSignerAdapter{signer: signer, logger: logger}
}

func (h *HashSignerAdapter) GetAddress(ctx context.Context) (common.Address, error) {
	addr, err := h.signer.Address(ctx)
	if err != nil {
		return common.Address{}, relayer.AccountUnavailableError("signer address", err)
	}
	return addr, nil
}

func (h *HashSignerAdapter) SignDigest(ctx context.Context, digest common.Hash) ([]byte, error) {
	sig, err := h.signer.SignHash(ctx, PersonalDigest(digest))
	if err != nil {
		return nil, relayer.SigningError("sign digest", err)
	}
	sig, err = toEthereumV(sig)
	if err != nil {
		return nil, relayer.SigningError("sign digest", err)
	}
	return sig, nil
}

// Web3MessageSigner signs through a Web3Signer eth_sign call.
type Web3MessageSigner struct {
	client      web3signer.IWeb3Signer
	fromAddress common.Address
	logger      *zap.Logger
}

func NewWeb3MessageSigner(client web3signer.IWeb3Signer, fromAddress common.Address, logger *zap.Logger) *Web3MessageSigner {
	return &Web3MessageSigner{client: client, fromAddress: fromAddress, logger: logger}
}

func (w *Web3MessageSigner) GetAddress(_ context.Context) (common.Address, error) {
	return w.fromAddress, nil
}

func (w *Web3MessageSigner) SignDigest(ctx context.Context, digest common.Hash) ([]byte, error) {
	sigHex, err := w.client.EthSign(ctx, w.fromAddress.Hex(), digest.Hex())
	if err != nil {
		return nil, relayer.SigningError("web3signer eth_sign", err)
	}
	sig := common.FromHex(sigHex)
	sig, err = toEthereumV(sig)
	if err != nil {
		return nil, relayer.SigningError("web3signer eth_sign", err)
	}
	return sig, nil
}

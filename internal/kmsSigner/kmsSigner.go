package kmsSigner

import (
	"context"
	cryptoEcdsa "crypto/ecdsa"
	"encoding/asn1"
	"fmt"
	"math/big"
	"sync"

	"github.com/Layr-Labs/crypto-libs/pkg/ecdsa"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/kms/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// KMSAPI is the part of the AWS KMS client used for signing.
type KMSAPI interface {
	Sign(ctx context.Context, params *kms.SignInput, optFns ...func(*kms.Options)) (*kms.SignOutput, error)
	GetPublicKey(ctx context.Context, params *kms.GetPublicKeyInput, optFns ...func(*kms.Options)) (*kms.GetPublicKeyOutput, error)
}

var (
	secp256k1N     = crypto.S256().Params().N
	secp256k1HalfN = new(big.Int).Rsh(secp256k1N, 1)
)

// KMSSigner signs 32-byte hashes with a secp256k1 key that never leaves AWS KMS.
type KMSSigner struct {
	client KMSAPI
	keyId  string
	logger *zap.Logger

	mu      sync.Mutex
	pubKey  *cryptoEcdsa.PublicKey
	address common.Address
}

func NewKMSSigner(client KMSAPI, keyId string, logger *zap.Logger) *KMSSigner {
	return &KMSSigner{
		client: client,
		keyId:  keyId,
		logger: logger,
	}
}

func (k *KMSSigner) KeyId() string {
	return k.keyId
}

// PublicKey fetches and caches the key's public half.
func (k *KMSSigner) PublicKey(ctx context.Context) (*cryptoEcdsa.PublicKey, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.pubKey != nil {
		return k.pubKey, nil
	}
	pub, address, err := k.loadPublicKey(ctx)
	if err != nil {
		return nil, err
	}
	k.pubKey, k.address = pub, address
	return pub, nil
}

// Address is the Ethereum address of the KMS key.
func (k *KMSSigner) Address(ctx context.Context) (common.Address, error) {
	if _, err := k.PublicKey(ctx); err != nil {
		return common.Address{}, err
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.address, nil
}

func (k *KMSSigner) loadPublicKey(ctx context.Context) (*cryptoEcdsa.PublicKey, common.Address, error) {
	out, err := k.client.GetPublicKey(ctx, &kms.GetPublicKeyInput{KeyId: aws.String(k.keyId)})
	if err != nil {
		return nil, common.Address{}, errors.Wrapf(err, "failed to get public key for %s", k.keyId)
	}
	pub, err := ParsePublicKey(out.PublicKey)
	if err != nil {
		return nil, common.Address{}, errors.Wrapf(err, "failed to parse public key for %s", k.keyId)
	}

	pk := &ecdsa.PublicKey{X: pub.X, Y: pub.Y}
	addr, err := pk.DeriveAddress()
	if err != nil {
		return nil, common.Address{}, errors.Wrapf(err, "failed to derive address for %s", k.keyId)
	}
	address := common.HexToAddress(addr.String())

	k.logger.Sugar().Infow("Loaded KMS signing key", "keyId", k.keyId, "address", address.Hex())
	return pub, address, nil
}

// SignHash signs hash and returns r || s || v with v in {0, 1}.
func (k *KMSSigner) SignHash(ctx context.Context, hash []byte) ([]byte, error) {
	if len(hash) != 32 {
		return nil, fmt.Errorf("hash must be exactly 32 bytes, got %d", len(hash))
	}
	pub, err := k.PublicKey(ctx)
	if err != nil {
		return nil, err
	}

	out, err := k.client.Sign(ctx, &kms.SignInput{
		KeyId:            aws.String(k.keyId),
		Message:          hash,
		SigningAlgorithm: types.SigningAlgorithmSpecEcdsaSha256,
		MessageType:      types.MessageTypeDigest,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "kms sign failed for %s", k.keyId)
	}

	sig, err := RecoverableSignature(hash, out.Signature, pub)
	if err != nil {
		return nil, err
	}
	k.logger.Debug("Signed hash with KMS", zap.String("keyId", k.keyId), zap.Uint8("recoveryId", sig[64]))
	return sig, nil
}

type asn1EcSig struct {
	R asn1.RawValue
	S asn1.RawValue
}

type asn1EcPublicKey struct {
	EcPublicKeyInfo asn1EcPublicKeyInfo
	PublicKey       asn1.BitString
}

type asn1EcPublicKeyInfo struct {
	Algorithm  asn1.ObjectIdentifier
	Parameters asn1.ObjectIdentifier
}

// ParsePublicKey decodes the DER SubjectPublicKeyInfo returned by KMS.
func ParsePublicKey(der []byte) (*cryptoEcdsa.PublicKey, error) {
	var spki asn1EcPublicKey
	if _, err := asn1.Unmarshal(der, &spki); err != nil {
		return nil, fmt.Errorf("failed to parse ASN.1 public key: %w", err)
	}
	return crypto.UnmarshalPubkey(spki.PublicKey.Bytes)
}

// RecoverableSignature converts a DER signature into the 65-byte form, normalising s to the
// lower half of the curve order and picking the recovery id that yields expected.
func RecoverableSignature(hash, der []byte, expected *cryptoEcdsa.PublicKey) ([]byte, error) {
	var parsed asn1EcSig
	if _, err := asn1.Unmarshal(der, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse ASN.1 signature: %w", err)
	}

	r := new(big.Int).SetBytes(parsed.R.Bytes)
	s := new(big.Int).SetBytes(parsed.S.Bytes)
	if s.Cmp(secp256k1HalfN) > 0 {
		s = new(big.Int).Sub(secp256k1N, s)
	}

	sig := make([]byte, 65)
	r.FillBytes(sig[0:32])
	s.FillBytes(sig[32:64])

	for recoveryId := byte(0); recoveryId < 2; recoveryId++ {
		sig[64] = recoveryId
		recovered, err := crypto.SigToPub(hash, sig)
		if err != nil {
			continue
		}
		if recovered.X.Cmp(expected.X) == 0 && recovered.Y.Cmp(expected.Y) == 0 {
			return sig, nil
		}
	}
	return nil, errors.New("could not determine valid recovery ID - signature recovery failed")
}

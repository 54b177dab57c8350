package kmsSigner

import (
	"context"
	cryptoEcdsa "crypto/ecdsa"
	"encoding/asn1"
	"errors"
	"math/big"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/kms/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var (
	oidEcPublicKey = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidSecp256k1   = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
)

type derSig struct {
	R *big.Int
	S *big.Int
}

// fakeKMS signs with a local key and encodes responses the way KMS does.
type fakeKMS struct {
	key         *cryptoEcdsa.PrivateKey
	highS       bool
	signErr     error
	pubKeyCalls int
}

func (f *fakeKMS) GetPublicKey(_ context.Context, params *kms.GetPublicKeyInput, _ ...func(*kms.Options)) (*kms.GetPublicKeyOutput, error) {
	f.pubKeyCalls++
	pub := crypto.FromECDSAPub(&f.key.PublicKey)
	der, err := asn1.Marshal(asn1EcPublicKey{
		EcPublicKeyInfo: asn1EcPublicKeyInfo{Algorithm: oidEcPublicKey, Parameters: oidSecp256k1},
		PublicKey:       asn1.BitString{Bytes: pub, BitLength: len(pub) * 8},
	})
	if err != nil {
		return nil, err
	}
	return &kms.GetPublicKeyOutput{KeyId: params.KeyId, PublicKey: der}, nil
}

func (f *fakeKMS) Sign(_ context.Context, params *kms.SignInput, _ ...func(*kms.Options)) (*kms.SignOutput, error) {
	if f.signErr != nil {
		return nil, f.signErr
	}
	if params.MessageType != types.MessageTypeDigest {
		return nil, errors.New("expected digest message type")
	}
	sig, err := crypto.Sign(params.Message, f.key)
	if err != nil {
		return nil, err
	}
	s := new(big.Int).SetBytes(sig[32:64])
	if f.highS {
		s = new(big.Int).Sub(secp256k1N, s)
	}
	der, err := asn1.Marshal(derSig{R: new(big.Int).SetBytes(sig[0:32]), S: s})
	if err != nil {
		return nil, err
	}
	return &kms.SignOutput{KeyId: params.KeyId, Signature: der}, nil
}

func newFakeKMS(t *testing.T) *fakeKMS {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return &fakeKMS{key: key}
}

func Test_KMSSigner_Address(t *testing.T) {
	fake := newFakeKMS(t)
	signer := NewKMSSigner(fake, "alias/relayer", zaptest.NewLogger(t))

	addr, err := signer.Address(context.Background())
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(fake.key.PublicKey), addr)

	_, err = signer.Address(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fake.pubKeyCalls)
}

func Test_KMSSigner_SignHash(t *testing.T) {
	for _, highS := range []bool{false, true} {
		fake := newFakeKMS(t)
		fake.highS = highS
		signer := NewKMSSigner(fake, "alias/relayer", zaptest.NewLogger(t))

		hash := crypto.Keccak256([]byte("relay me"))
		sig, err := signer.SignHash(context.Background(), hash)
		require.NoError(t, err)
		require.Len(t, sig, 65)
		assert.LessOrEqual(t, sig[64], byte(1))

		s := new(big.Int).SetBytes(sig[32:64])
		assert.LessOrEqual(t, s.Cmp(secp256k1HalfN), 0, "s must be canonical")

		recovered, err := crypto.SigToPub(hash, sig)
		require.NoError(t, err)
		assert.Equal(t, crypto.PubkeyToAddress(fake.key.PublicKey), crypto.PubkeyToAddress(*recovered))
	}
}

func Test_KMSSigner_Errors(t *testing.T) {
	fake := newFakeKMS(t)
	signer := NewKMSSigner(fake, "alias/relayer", zaptest.NewLogger(t))

	_, err := signer.SignHash(context.Background(), []byte{0x01})
	assert.Error(t, err)

	fake.signErr = errors.New("AccessDeniedException")
	_, err = signer.SignHash(context.Background(), crypto.Keccak256([]byte("x")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AccessDeniedException")
}

func Test_RecoverableSignature_WrongKey(t *testing.T) {
	fake := newFakeKMS(t)
	other, err := crypto.GenerateKey()
	require.NoError(t, err)

	hash := crypto.Keccak256([]byte("relay me"))
	out, err := fake.Sign(context.Background(), &kms.SignInput{
		KeyId:       aws.String("k"),
		Message:     hash,
		MessageType: types.MessageTypeDigest,
	})
	require.NoError(t, err)

	_, err = RecoverableSignature(hash, out.Signature, &other.PublicKey)
	assert.Error(t, err)

	_, err = RecoverableSignature(hash, []byte{0x30, 0x00, 0x01}, &fake.key.PublicKey)
	assert.Error(t, err)
}

func Test_ParsePublicKey(t *testing.T) {
	fake := newFakeKMS(t)
	out, err := fake.GetPublicKey(context.Background(), &kms.GetPublicKeyInput{KeyId: aws.String("k")})
	require.NoError(t, err)

	pub, err := ParsePublicKey(out.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, 0, pub.X.Cmp(fake.key.PublicKey.X))
	assert.Equal(t, 0, pub.Y.Cmp(fake.key.PublicKey.Y))

	_, err = ParsePublicKey([]byte("garbage"))
	assert.Error(t, err)
}

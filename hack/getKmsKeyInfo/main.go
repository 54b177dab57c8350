package main

import (
	"context"
	"os"

	"github.com/Layr-Labs/wallet-relayer-go/internal/aws"
	"github.com/Layr-Labs/wallet-relayer-go/internal/kmsSigner"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/logger"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Prints the Ethereum account behind an AWS KMS key, i.e. the address the aws-kms signer relays
// from and must be funded.
func main() {
	l, _ := logger.NewLogger(&logger.LoggerConfig{Debug: false})
	ctx := context.Background()

	keyId := os.Getenv("KEY_ID")
	if keyId == "" {
		l.Sugar().Fatal("KEY_ID environment variable is not set")
	}

	client, err := aws.NewKMSClient(ctx, os.Getenv("AWS_REGION"), l)
	if err != nil {
		l.Sugar().Fatalw("failed to create KMS client", "error", err)
	}

	signer := kmsSigner.NewKMSSigner(client, keyId, l)

	pubKey, err := signer.PublicKey(ctx)
	if err != nil {
		l.Sugar().Fatalw("failed to get public key", "error", err)
	}
	address, err := signer.Address(ctx)
	if err != nil {
		l.Sugar().Fatalw("failed to derive address", "error", err)
	}

	l.Sugar().Infow("KMS key",
		"keyId", signer.KeyId(),
		"publicKeyHex", hexutil.Encode(crypto.FromECDSAPub(pubKey)),
		"address", address.Hex(),
	)
}

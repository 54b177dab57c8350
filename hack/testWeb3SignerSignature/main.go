package main

import (
	"context"
	"os"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/clients/web3signer"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/config"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/logger"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/messageSigner"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/relayer"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// Signs the same relay digest with a local key and with Web3Signer and checks that both
// signatures recover to the same account.
func main() {
	l, _ := logger.NewLogger(&logger.LoggerConfig{Debug: false})
	ctx := context.Background()

	privateKey := os.Getenv("PRIVATE_KEY")
	address := os.Getenv("FROM_ADDRESS")
	url := os.Getenv("WEB3SIGNER_URL")
	if url == "" {
		url = "http://localhost:9100"
	}
	if privateKey == "" || address == "" {
		l.Sugar().Fatal("PRIVATE_KEY and FROM_ADDRESS must be set")
	}

	pkSigner, err := messageSigner.NewPrivateKeySigner(privateKey, l)
	if err != nil {
		l.Sugar().Fatalw("failed to parse private key", "error", err)
	}

	web3SignerClient, err := web3signer.NewWeb3SignerClientFromRemoteSignerConfig(&config.RemoteSignerConfig{
		Url:         url,
		FromAddress: address,
	}, l)
	if err != nil {
		l.Sugar().Fatalw("failed to create Web3Signer client", "error", err)
	}
	w3Signer := messageSigner.NewWeb3MessageSigner(web3SignerClient, common.HexToAddress(address), l)

	digest := relayer.SigningHash(
		common.HexToAddress("0x0000000000000000000000000000000000000003"),
		common.HexToAddress("0x0000000000000000000000000000000000000001"),
		uint256.NewInt(0),
		hexutil.MustDecode("0xc90db4470000000000000000000000000000000000000000000000000000000000000001"),
		uint256.NewInt(123456),
		uint256.NewInt(0),
		uint256.NewInt(250000),
	)

	sigPK, err := pkSigner.SignDigest(ctx, digest)
	if err != nil {
		l.Sugar().Fatalw("failed to sign with private key", "error", err)
	}
	sigW3, err := w3Signer.SignDigest(ctx, digest)
	if err != nil {
		l.Sugar().Fatalw("failed to sign with Web3Signer", "error", err)
	}

	recoveredPK, err := messageSigner.RecoverSigner(digest, sigPK)
	if err != nil {
		l.Sugar().Fatalw("failed to recover private key signature", "error", err)
	}
	recoveredW3, err := messageSigner.RecoverSigner(digest, sigW3)
	if err != nil {
		l.Sugar().Fatalw("failed to recover Web3Signer signature", "error", err)
	}

	l.Sugar().Infow("Signatures",
		"digest", digest.Hex(),
		"privateKey", hexutil.Encode(sigPK),
		"web3signer", hexutil.Encode(sigW3),
		"recoveredPrivateKey", recoveredPK.Hex(),
		"recoveredWeb3Signer", recoveredW3.Hex(),
		"match", recoveredPK == recoveredW3,
	)
}

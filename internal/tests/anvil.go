package tests

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/Layr-Labs/chain-indexer/pkg/clients/ethereum"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// Anvil's first prefunded development account. Anvil serves it unlocked, so eth_sign and
// eth_sendTransaction work against it.
const (
	AnvilAccountAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	AnvilAccountPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	AnvilChainId           = "31337"
)

type AnvilConfig struct {
	PortNumber string `json:"portNumber"`
	ChainId    string `json:"chainId"`

	// Optional. Without a fork url anvil starts an empty chain that mines on every transaction.
	ForkUrl         string `json:"forkUrl"`
	ForkBlockNumber string `json:"forkBlockNumber"`
	BlockTime       string `json:"blockTime"`
}

// AnvilAvailable reports whether the anvil binary is on PATH
func AnvilAvailable() bool {
	_, err := exec.LookPath("anvil")
	return err == nil
}

func StartAnvil(ctx context.Context, cfg *AnvilConfig) (*exec.Cmd, error) {
	args := []string{
		"--chain-id", cfg.ChainId,
		"--port", cfg.PortNumber,
	}
	if cfg.ForkUrl != "" {
		args = append(args, "--fork-url", cfg.ForkUrl)
		if cfg.ForkBlockNumber != "" {
			args = append(args, "--fork-block-number", cfg.ForkBlockNumber)
		}
	}
	if cfg.BlockTime != "" {
		args = append(args, "--block-time", cfg.BlockTime)
	}

	fmt.Printf("Starting anvil with args: %v\n", args)
	cmd := exec.CommandContext(ctx, "anvil", args...)
	cmd.Stderr = os.Stderr
	if os.Getenv("JOIN_ANVIL_OUTPUT") == "true" {
		cmd.Stdout = os.Stdout
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start anvil: %w", err)
	}
	return cmd, nil
}

// WaitForAnvil dials the node until it answers eth_blockNumber or ctx ends
func WaitForAnvil(ctx context.Context, rpcUrl string, logger *zap.Logger) (*ethclient.Client, error) {
	client := ethereum.NewEthereumClient(&ethereum.EthereumClientConfig{
		BaseUrl:   rpcUrl,
		BlockType: ethereum.BlockType_Latest,
	}, logger)

	for i := 1; ; i++ {
		eth, err := client.GetEthereumContractCaller()
		if err == nil {
			if block, err := eth.BlockNumber(ctx); err == nil {
				logger.Sugar().Infow("Anvil is up and running", "latestBlock", block)
				return eth, nil
			}
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("failed to start anvil: %w", ctx.Err())
		case <-time.After(time.Duration(i) * 250 * time.Millisecond):
			logger.Sugar().Debugw("Anvil not ready yet, retrying", "attempt", i)
		}
	}
}

func KillAnvil(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return fmt.Errorf("anvil command is not running")
	}

	if err := cmd.Process.Kill(); err != nil {
		return fmt.Errorf("failed to kill anvil process: %w", err)
	}
	_ = cmd.Wait()
	return nil
}

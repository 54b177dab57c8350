package main

import (
	"fmt"
	"os"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/config"
	"github.com/urfave/cli/v2"
)

const walletArgUsage = "<wallet address or ENS name>"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "wallet-relayer",
		Usage: "Inspect Argent wallets and relay owner-signed module calls",
		Description: `Reads wallet state (owner, guardians, modules, balances, ENS) and relays
meta-transactions to the RecoveryManager and LockManager modules.

Relayed calls are signed by the configured signer over the module's relay digest and
submitted through the module's execute function. Every relay is recorded in the relay
journal so its status can be followed with "recovery status" or the HTTP API.`,
		Version:              "1.0.0",
		EnableBashCompletion: true,
		Flags:                globalFlags(),
		Commands: []*cli.Command{
			ensCommand(),
			ownerCommand(),
			guardiansCommand(),
			modulesCommand(),
			balanceCommand(),
			recoveryCommand(),
			lockCommand(),
			unlockCommand(),
			relaysCommand(),
			serveCommand(),
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a TOML config file",
			EnvVars: []string{config.EnvRelayerConfigFile},
		},
		&cli.StringFlag{
			Name:    "rpc-url",
			Usage:   "Ethereum JSON-RPC endpoint",
			EnvVars: []string{config.EnvRelayerRPCURL},
		},
		&cli.Uint64Flag{
			Name:    "chain-id",
			Aliases: []string{"chain"},
			Usage:   fmt.Sprintf("Ethereum chain ID: %s", config.GetSupportedChainIDsString()),
			EnvVars: []string{config.EnvRelayerChainID},
		},
		&cli.StringFlag{
			Name:    "signer",
			Usage:   "Signer backend: node, private-key, aws-kms or web3signer",
			EnvVars: []string{config.EnvRelayerSigner},
		},
		&cli.StringFlag{
			Name:    "private-key",
			Usage:   "Hex private key for the private-key signer",
			EnvVars: []string{config.EnvRelayerPrivateKey},
		},
		&cli.StringFlag{
			Name:    "kms-key-id",
			Usage:   "AWS KMS key id for the aws-kms signer",
			EnvVars: []string{config.EnvRelayerKMSKeyID},
		},
		&cli.StringFlag{
			Name:    "aws-region",
			Usage:   "AWS region of the KMS key",
			EnvVars: []string{config.EnvRelayerAWSRegion},
		},
		&cli.StringFlag{
			Name:    "web3signer-url",
			Usage:   "Web3Signer endpoint for the web3signer signer",
			EnvVars: []string{config.EnvRelayerWeb3SignerURL},
		},
		&cli.StringFlag{
			Name:    "from-address",
			Usage:   "Account the web3signer signer signs as",
			EnvVars: []string{config.EnvRelayerFromAddress},
		},
		&cli.StringFlag{
			Name:    "recovery-manager",
			Usage:   "Override the RecoveryManager module address",
			EnvVars: []string{config.EnvRelayerRecoveryManager},
		},
		&cli.StringFlag{
			Name:    "lock-manager",
			Usage:   "Override the LockManager module address",
			EnvVars: []string{config.EnvRelayerLockManager},
		},
		&cli.StringFlag{
			Name:    "persistence",
			Usage:   "Relay journal backend: memory, badger, leveldb or redis",
			EnvVars: []string{config.EnvRelayerPersistence},
		},
		&cli.StringFlag{
			Name:    "data-path",
			Usage:   "Data directory for the badger and leveldb journals",
			EnvVars: []string{config.EnvRelayerDataPath},
		},
		&cli.StringFlag{
			Name:    "redis-address",
			Usage:   "Redis address for the redis journal",
			EnvVars: []string{config.EnvRelayerRedisAddress},
		},
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Usage:   "Do not ask for confirmation before relaying",
			EnvVars: []string{config.EnvRelayerAssumeYes},
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Usage:   "Enable debug logging",
			EnvVars: []string{config.EnvRelayerVerbose},
		},
		&cli.StringFlag{
			Name:    "log-file",
			Usage:   "Also write JSON logs to this file, rotated hourly",
			EnvVars: []string{config.EnvRelayerLogFile},
		},
	}
}

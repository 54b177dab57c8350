package main

import (
	"context"
	"fmt"

	"github.com/Layr-Labs/chain-indexer/pkg/clients/ethereum"
	internalAws "github.com/Layr-Labs/wallet-relayer-go/internal/aws"
	"github.com/Layr-Labs/wallet-relayer-go/internal/kmsSigner"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/clients/node"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/clients/web3signer"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/config"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/contractCaller"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/contractCaller/caller"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/logger"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/messageSigner"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/modules/lockManager"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/modules/recoveryManager"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence/journal"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/relayService"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/relayer"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/transactionSigner"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/tui"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// runtime holds what a command needs. Chain and journal connections are opened on first use so
// commands that only read the journal never dial the node.
type runtime struct {
	cfg       *config.RelayerConfig
	logger    *zap.Logger
	printer   *tui.Printer
	assumeYes bool

	eth     *ethclient.Client
	caller  contractCaller.IContractCaller
	journal persistence.IRelayJournal
}

func newRuntime(c *cli.Context) (*runtime, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	l, err := logger.NewLogger(&logger.LoggerConfig{
		Debug:         cfg.Log.Debug,
		LogFile:       cfg.Log.File,
		MaxAgeHours:   cfg.Log.MaxAgeHours,
		RotationHours: cfg.Log.RotationHours,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &runtime{
		cfg:       cfg,
		logger:    l,
		printer:   tui.NewPrinter(c.App.Writer, c.App.Reader, cfg.ChainID),
		assumeYes: c.Bool("yes"),
	}, nil
}

// loadConfig reads the config file, applies any flags that were set and validates the result
func loadConfig(c *cli.Context) (*config.RelayerConfig, error) {
	cfg, err := config.LoadConfigFile(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("rpc-url") {
		cfg.RpcUrl = c.String("rpc-url")
	}
	if c.IsSet("chain-id") {
		cfg.ChainID = config.ChainId(c.Uint64("chain-id"))
	}
	if c.IsSet("signer") {
		cfg.Signer.Type = config.SignerType(c.String("signer"))
	}
	if c.IsSet("private-key") {
		cfg.Signer.PrivateKey = c.String("private-key")
	}
	if c.IsSet("kms-key-id") {
		cfg.Signer.KMSKeyId = c.String("kms-key-id")
	}
	if c.IsSet("aws-region") {
		cfg.Signer.AWSRegion = c.String("aws-region")
	}
	if c.IsSet("web3signer-url") || c.IsSet("from-address") {
		if cfg.Signer.RemoteSigner == nil {
			cfg.Signer.RemoteSigner = &config.RemoteSignerConfig{}
		}
		if c.IsSet("web3signer-url") {
			cfg.Signer.RemoteSigner.Url = c.String("web3signer-url")
		}
		if c.IsSet("from-address") {
			cfg.Signer.RemoteSigner.FromAddress = c.String("from-address")
		}
	}
	if c.IsSet("recovery-manager") {
		cfg.RecoveryManager = c.String("recovery-manager")
	}
	if c.IsSet("lock-manager") {
		cfg.LockManager = c.String("lock-manager")
	}
	if c.IsSet("persistence") {
		cfg.Persistence.Type = config.PersistenceType(c.String("persistence"))
	}
	if c.IsSet("data-path") {
		cfg.Persistence.DataPath = c.String("data-path")
	}
	if c.IsSet("redis-address") {
		if cfg.Persistence.Redis == nil {
			cfg.Persistence.Redis = &config.RedisConfig{}
		}
		cfg.Persistence.Redis.Address = c.String("redis-address")
	}
	if c.Bool("verbose") {
		cfg.Log.Debug = true
	}
	if c.IsSet("log-file") {
		cfg.Log.File = c.String("log-file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (rt *runtime) chain() (*ethclient.Client, contractCaller.IContractCaller, error) {
	if rt.eth != nil {
		return rt.eth, rt.caller, nil
	}

	ethClient := ethereum.NewEthereumClient(&ethereum.EthereumClientConfig{
		BaseUrl:   rt.cfg.RpcUrl,
		BlockType: ethereum.BlockType_Latest,
	}, rt.logger)

	eth, err := ethClient.GetEthereumContractCaller()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get Ethereum contract caller: %w", err)
	}

	cc, err := caller.NewContractCaller(eth, &caller.ContractCallerConfig{
		Contracts:        rt.cfg.Contracts,
		LogScanChunkSize: rt.cfg.LogScanChunkSize,
	}, rt.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create contract caller: %w", err)
	}

	rt.eth = eth
	rt.caller = cc
	return rt.eth, rt.caller, nil
}

func (rt *runtime) contractCaller() (contractCaller.IContractCaller, error) {
	_, cc, err := rt.chain()
	return cc, err
}

func (rt *runtime) relayJournal() (persistence.IRelayJournal, error) {
	if rt.journal != nil {
		return rt.journal, nil
	}
	j, err := journal.NewJournal(&rt.cfg.Persistence, rt.logger)
	if err != nil {
		return nil, err
	}
	rt.journal = j
	return j, nil
}

// signerBackends connects only the backend the configured signer type needs
func (rt *runtime) signerBackends(ctx context.Context) (*messageSigner.Backends, error) {
	backends := &messageSigner.Backends{}

	switch rt.cfg.Signer.Type {
	case config.SignerType_Node:
		n, err := node.Dial(ctx, rt.cfg.RpcUrl, rt.logger)
		if err != nil {
			return nil, err
		}
		backends.Node = n
	case config.SignerType_AWSKMS:
		client, err := internalAws.NewKMSClient(ctx, rt.cfg.Signer.AWSRegion, rt.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create AWS KMS client: %w", err)
		}
		backends.KMS = kmsSigner.NewKMSSigner(client, rt.cfg.Signer.KMSKeyId, rt.logger)
	case config.SignerType_Web3Signer:
		client, err := web3signer.NewWeb3SignerClientFromRemoteSignerConfig(rt.cfg.Signer.RemoteSigner, rt.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create web3signer client: %w", err)
		}
		backends.Web3Signer = client
	}
	return backends, nil
}

// relayService wires the configured signer into the relay modules and the journal.
// A module without an address on the configured chain is left unset and its operations fail
// with relayService.ErrModuleNotConfigured.
func (rt *runtime) relayService(ctx context.Context) (*relayService.Service, error) {
	eth, cc, err := rt.chain()
	if err != nil {
		return nil, err
	}
	j, err := rt.relayJournal()
	if err != nil {
		return nil, err
	}

	backends, err := rt.signerBackends(ctx)
	if err != nil {
		return nil, err
	}
	msgSigner, err := messageSigner.NewMessageSigner(&rt.cfg.Signer, backends, rt.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create message signer: %w", err)
	}
	txSigner, err := transactionSigner.NewTransactionSigner(&rt.cfg.Signer, eth, backends, rt.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction signer: %w", err)
	}

	nonces := relayer.NewBlockNonceProvider(eth, rt.logger)
	observer := relayer.WithObserver(func(state relayer.PipelineState, result *relayer.Result) {
		rt.logger.Sugar().Debugw("Relay pipeline advanced", "state", state.String(), "digest", result.Digest.Hex())
	})

	var recovery relayService.RecoveryRelayer
	if addr := rt.cfg.Contracts.RecoveryManager; addr != "" {
		rm, err := recoveryManager.NewRecoveryManager(common.HexToAddress(addr), nonces, msgSigner, txSigner, rt.logger, observer)
		if err != nil {
			return nil, err
		}
		recovery = rm
	}

	var lock relayService.LockRelayer
	if addr := rt.cfg.Contracts.LockManager; addr != "" {
		lm, err := lockManager.NewLockManager(common.HexToAddress(addr), nonces, msgSigner, txSigner, rt.logger, observer)
		if err != nil {
			return nil, err
		}
		lock = lm
	}

	return relayService.NewService(recovery, lock, cc, j, nil, rt.logger), nil
}

func (rt *runtime) Close() {
	if rt.journal != nil {
		if err := rt.journal.Close(); err != nil {
			rt.logger.Sugar().Warnw("Failed to close relay journal", "error", err)
		}
	}
	if rt.eth != nil {
		rt.eth.Close()
	}
	_ = rt.logger.Sync()
}

// withRuntime builds the runtime for a command action and releases it afterwards
func withRuntime(action func(c *cli.Context, rt *runtime) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		rt, err := newRuntime(c)
		if err != nil {
			return err
		}
		defer rt.Close()
		return action(c, rt)
	}
}

// resolveArg resolves the n-th positional argument as an address or ENS name
func (rt *runtime) resolveArg(c *cli.Context, n int, name string) (common.Address, error) {
	input := c.Args().Get(n)
	if input == "" {
		return common.Address{}, fmt.Errorf("missing %s argument", name)
	}
	if common.IsHexAddress(input) {
		return common.HexToAddress(input), nil
	}
	cc, err := rt.contractCaller()
	if err != nil {
		return common.Address{}, err
	}
	addr, err := cc.ResolveAddress(c.Context, input)
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid %s %q: %w", name, input, err)
	}
	return addr, nil
}

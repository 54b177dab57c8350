package caller

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/bindings/BaseWallet"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/bindings/ERC20"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/bindings/GuardianManager"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/bindings/GuardianStorage"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/bindings/LockManager"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/config"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/contractCaller"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/token"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ChainBackend is the chain client surface the caller needs. *ethclient.Client implements it.
type ChainBackend interface {
	bind.ContractBackend
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type ContractCallerConfig struct {
	Contracts *config.ContractAddresses

	// LogScanChunkSize bounds the block range of one eth_getLogs request
	LogScanChunkSize uint64

	// LogScanRateLimit caps eth_getLogs requests per second. Zero means unlimited.
	LogScanRateLimit float64
}

type ContractCaller struct {
	ethclient ChainBackend
	logger    *zap.Logger
	contracts *config.ContractAddresses
	chunkSize uint64
	limiter   *rate.Limiter

	guardianManager *GuardianManager.GuardianManagerCaller
}

var _ contractCaller.IContractCaller = (*ContractCaller)(nil)

func NewContractCaller(
	ethclient ChainBackend,
	cfg *ContractCallerConfig,
	logger *zap.Logger,
) (*ContractCaller, error) {
	if cfg == nil || cfg.Contracts == nil {
		return nil, fmt.Errorf("contract addresses are required")
	}
	logger.Sugar().Infow("Using wallet contracts",
		zap.Any("contracts", cfg.Contracts),
	)

	guardianManager, err := GuardianManager.NewGuardianManagerCaller(common.HexToAddress(cfg.Contracts.GuardianManager), ethclient)
	if err != nil {
		return nil, fmt.Errorf("failed to create guardian manager contract instance: %w", err)
	}

	chunkSize := cfg.LogScanChunkSize
	if chunkSize == 0 {
		chunkSize = config.DefaultLogScanChunkSize
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.LogScanRateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.LogScanRateLimit), 1)
	}

	return &ContractCaller{
		ethclient: ethclient,
		logger:    logger,
		contracts: cfg.Contracts,
		chunkSize: chunkSize,
		limiter:   limiter,

		guardianManager: guardianManager,
	}, nil
}

func (cc *ContractCaller) GetOwner(ctx context.Context, wallet common.Address) (common.Address, error) {
	w, err := BaseWallet.NewBaseWalletCaller(wallet, cc.ethclient)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to create wallet contract instance: %w", err)
	}
	owner, err := w.Owner(&bind.CallOpts{Context: ctx})
	if err != nil {
		return common.Address{}, fmt.Errorf("unable to fetch owner for %s: %w", wallet.Hex(), err)
	}
	return owner, nil
}

func (cc *ContractCaller) GetGuardians(ctx context.Context, wallet common.Address) ([]common.Address, error) {
	opts := &bind.CallOpts{Context: ctx}

	storageAddress, err := cc.guardianManager.GuardianStorage(opts)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch guardian storage address: %w", err)
	}

	storage, err := GuardianStorage.NewGuardianStorageCaller(storageAddress, cc.ethclient)
	if err != nil {
		return nil, fmt.Errorf("failed to create guardian storage contract instance: %w", err)
	}
	guardians, err := storage.GetGuardians(opts, wallet)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch guardians for %s: %w", wallet.Hex(), err)
	}
	return guardians, nil
}

func (cc *ContractCaller) GetModules(ctx context.Context, wallet common.Address) ([]common.Address, error) {
	filterer, err := BaseWallet.NewBaseWalletFilterer(wallet, cc.ethclient)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet filterer: %w", err)
	}

	latest, err := cc.ethclient.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest block number: %w", err)
	}

	var modules []common.Address
	for start := cc.contracts.WalletsStartBlock; start <= latest; start += cc.chunkSize {
		end := start + cc.chunkSize - 1
		if end > latest {
			end = latest
		}
		if err := cc.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		iter, err := filterer.FilterAuthorisedModule(&bind.FilterOpts{Start: start, End: &end, Context: ctx}, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to filter AuthorisedModule logs in [%d, %d]: %w", start, end, err)
		}
		for iter.Next() {
			modules = applyAuthorisation(modules, iter.Event.Module, iter.Event.Value)
		}
		err = iter.Error()
		_ = iter.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read AuthorisedModule logs: %w", err)
		}

		cc.logger.Sugar().Debugw("Scanned AuthorisedModule logs",
			"wallet", wallet.Hex(),
			"fromBlock", start,
			"toBlock", end,
			"modules", len(modules),
		)
	}
	return modules, nil
}

// applyAuthorisation adds module to the list or, for a deauthorisation, removes every occurrence of it
func applyAuthorisation(modules []common.Address, module common.Address, authorised bool) []common.Address {
	if authorised {
		return append(modules, module)
	}
	kept := modules[:0]
	for _, m := range modules {
		if m != module {
			kept = append(kept, m)
		}
	}
	return kept
}

func (cc *ContractCaller) IsLocked(ctx context.Context, wallet common.Address) (bool, error) {
	lm, err := LockManager.NewLockManagerCaller(common.HexToAddress(cc.contracts.LockManager), cc.ethclient)
	if err != nil {
		return false, fmt.Errorf("failed to create lock manager contract instance: %w", err)
	}
	locked, err := lm.IsLocked(&bind.CallOpts{Context: ctx}, wallet)
	if err != nil {
		return false, fmt.Errorf("unable to fetch lock status for %s: %w", wallet.Hex(), err)
	}
	return locked, nil
}

func (cc *ContractCaller) GetBalance(ctx context.Context, wallet common.Address, tok *token.Token) (*big.Int, error) {
	if tok.IsEther() {
		balance, err := cc.ethclient.BalanceAt(ctx, wallet, nil)
		if err != nil {
			return nil, fmt.Errorf("unable to fetch ETH balance for %s: %w", wallet.Hex(), err)
		}
		return balance, nil
	}

	erc20, err := ERC20.NewERC20Caller(tok.Address, cc.ethclient)
	if err != nil {
		return nil, fmt.Errorf("failed to create ERC20 contract instance: %w", err)
	}
	balance, err := erc20.BalanceOf(&bind.CallOpts{Context: ctx}, wallet)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch %s balance for %s: %w", tok.Symbol, wallet.Hex(), err)
	}
	return balance, nil
}

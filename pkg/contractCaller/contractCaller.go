package contractCaller

import (
	"context"
	"math/big"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/token"
	"github.com/ethereum/go-ethereum/common"
	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
)

// IContractCaller reads wallet state and ENS records from the chain
type IContractCaller interface {
	GetOwner(ctx context.Context, wallet common.Address) (common.Address, error)

	GetGuardians(ctx context.Context, wallet common.Address) ([]common.Address, error)

	// GetModules replays the wallet's AuthorisedModule events and returns the modules that are
	// currently authorised, in the order they were first added.
	GetModules(ctx context.Context, wallet common.Address) ([]common.Address, error)

	IsLocked(ctx context.Context, wallet common.Address) (bool, error)

	GetBalance(ctx context.Context, wallet common.Address, tok *token.Token) (*big.Int, error)

	// ENS
	ResolveName(ctx context.Context, name string) (common.Address, error)
	LookupAddress(ctx context.Context, address common.Address) (string, error)
	ResolveAddress(ctx context.Context, input string) (common.Address, error)

	GetTransactionReceipt(ctx context.Context, txHash common.Hash) (*ethereumTypes.Receipt, error)
}

package contractCaller

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/token"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
)

// MockContractCallerStub is an in-memory IContractCaller for tests. Zero values are returned for
// anything not configured.
type MockContractCallerStub struct {
	mu        sync.Mutex
	Owners    map[common.Address]common.Address
	Guardians map[common.Address][]common.Address
	Modules   map[common.Address][]common.Address
	Locked    map[common.Address]bool
	Names     map[string]common.Address
	Receipts  map[common.Hash]*ethTypes.Receipt
}

var _ IContractCaller = (*MockContractCallerStub)(nil)

func NewMockContractCallerStub() *MockContractCallerStub {
	return &MockContractCallerStub{
		Owners:    make(map[common.Address]common.Address),
		Guardians: make(map[common.Address][]common.Address),
		Modules:   make(map[common.Address][]common.Address),
		Locked:    make(map[common.Address]bool),
		Names:     make(map[string]common.Address),
		Receipts:  make(map[common.Hash]*ethTypes.Receipt),
	}
}

// SetReceipt makes the receipt visible to GetTransactionReceipt
func (m *MockContractCallerStub) SetReceipt(receipt *ethTypes.Receipt) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Receipts[receipt.TxHash] = receipt
}

func (m *MockContractCallerStub) GetOwner(_ context.Context, wallet common.Address) (common.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Owners[wallet], nil
}

func (m *MockContractCallerStub) GetGuardians(_ context.Context, wallet common.Address) ([]common.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Guardians[wallet], nil
}

func (m *MockContractCallerStub) GetModules(_ context.Context, wallet common.Address) ([]common.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Modules[wallet], nil
}

func (m *MockContractCallerStub) IsLocked(_ context.Context, wallet common.Address) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Locked[wallet], nil
}

func (m *MockContractCallerStub) GetBalance(context.Context, common.Address, *token.Token) (*big.Int, error) {
	return big.NewInt(0), nil
}

func (m *MockContractCallerStub) ResolveName(_ context.Context, name string) (common.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	addr, ok := m.Names[name]
	if !ok {
		return common.Address{}, fmt.Errorf("unable to resolve ENS address %s", name)
	}
	return addr, nil
}

func (m *MockContractCallerStub) LookupAddress(_ context.Context, address common.Address) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for name, addr := range m.Names {
		if addr == address {
			return name, nil
		}
	}
	return "", nil
}

func (m *MockContractCallerStub) ResolveAddress(ctx context.Context, input string) (common.Address, error) {
	if common.IsHexAddress(input) {
		return common.HexToAddress(input), nil
	}
	return m.ResolveName(ctx, input)
}

func (m *MockContractCallerStub) GetTransactionReceipt(_ context.Context, txHash common.Hash) (*ethTypes.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	receipt, ok := m.Receipts[txHash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return receipt, nil
}

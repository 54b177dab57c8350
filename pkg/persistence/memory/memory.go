package memory

import (
	"fmt"
	"sync"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MemoryPersistence is an in-memory implementation of IRelayJournal.
//
// All data is stored in memory and will be lost when the process exits, which is fine for
// one-shot CLI invocations and tests.
// Thread-safe using sync.RWMutex for concurrent access.
// Deep copies data to prevent external mutation.
type MemoryPersistence struct {
	mu sync.RWMutex

	// relay id -> record
	relays map[uuid.UUID]*persistence.RelayRecord

	// Closed flag
	closed bool
}

// NewMemoryPersistence creates a new in-memory relay journal.
// Logs a warning since journaled relays do not survive a restart.
func NewMemoryPersistence(logger *zap.Logger) *MemoryPersistence {
	logger.Sugar().Warnw("Using in-memory relay journal - relay history will be lost on exit",
		"hint", "set --persistence=badger, leveldb or redis to keep it")

	return &MemoryPersistence{
		relays: make(map[uuid.UUID]*persistence.RelayRecord),
	}
}

// SaveRelay persists a relay record.
func (m *MemoryPersistence) SaveRelay(record *persistence.RelayRecord) error {
	if err := persistence.ValidateForSave(record); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return fmt.Errorf("persistence layer is closed")
	}

	m.relays[record.ID] = record.Copy()
	return nil
}

// LoadRelay retrieves a relay record by ID.
func (m *MemoryPersistence) LoadRelay(id uuid.UUID) (*persistence.RelayRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, fmt.Errorf("persistence layer is closed")
	}

	record, exists := m.relays[id]
	if !exists {
		return nil, nil
	}
	return record.Copy(), nil
}

// ListRelays returns all relay records ordered by creation time.
func (m *MemoryPersistence) ListRelays() ([]*persistence.RelayRecord, error) {
	return m.list(func(*persistence.RelayRecord) bool { return true })
}

// ListRelaysForWallet returns the wallet's relay records ordered by creation time.
func (m *MemoryPersistence) ListRelaysForWallet(wallet common.Address) ([]*persistence.RelayRecord, error) {
	return m.list(func(r *persistence.RelayRecord) bool { return r.Wallet == wallet })
}

func (m *MemoryPersistence) list(keep func(*persistence.RelayRecord) bool) ([]*persistence.RelayRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, fmt.Errorf("persistence layer is closed")
	}

	records := make([]*persistence.RelayRecord, 0, len(m.relays))
	for _, record := range m.relays {
		if keep(record) {
			records = append(records, record.Copy())
		}
	}
	persistence.SortRecords(records)
	return records, nil
}

// DeleteRelay removes a relay record.
func (m *MemoryPersistence) DeleteRelay(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return fmt.Errorf("persistence layer is closed")
	}

	delete(m.relays, id)
	return nil
}

// Close shuts down the persistence layer.
func (m *MemoryPersistence) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}

// HealthCheck verifies the persistence layer is operational.
func (m *MemoryPersistence) HealthCheck() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return fmt.Errorf("persistence layer is closed")
	}

	return nil
}

package badger

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence"
	badgerdb "github.com/dgraph-io/badger/v3"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Key prefixes for namespacing
const (
	keyPrefixRelay       = "relay:"
	keyPrefixWallet      = "wallet:"
	keySchemaVersion     = "metadata:schema_version"
	currentSchemaVersion = "v1"
)

// BadgerPersistence is a relay journal stored in Badger.
// Records live under relay:<id>; wallet:<address>:<id> keys index them per wallet.
type BadgerPersistence struct {
	db       *badgerdb.DB
	logger   *zap.Logger
	gcCancel context.CancelFunc
	gcWg     sync.WaitGroup
	mu       sync.RWMutex
	closed   bool
}

// NewBadgerPersistence creates a new Badger-backed relay journal.
// The database is opened at dataPath with SyncWrites enabled.
// A background goroutine is started for garbage collection.
func NewBadgerPersistence(dataPath string, logger *zap.Logger) (*BadgerPersistence, error) {
	// Convert to absolute path
	absPath, err := filepath.Abs(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	// Configure Badger for production use
	opts := badgerdb.DefaultOptions(absPath)
	opts.Logger = newJournalLogger(logger)
	opts.SyncWrites = true
	opts.CompactL0OnClose = true
	opts.NumVersionsToKeep = 1 // We don't need versioning within Badger

	// Open database
	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database at %s: %w", absPath, err)
	}

	bp := &BadgerPersistence{
		db:     db,
		logger: logger,
	}

	// Initialize schema version
	if err := bp.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	// Start background GC
	ctx, cancel := context.WithCancel(context.Background())
	bp.gcCancel = cancel
	bp.gcWg.Add(1)
	go bp.runGC(ctx)

	logger.Sugar().Infow("Badger relay journal initialized", "path", absPath)

	return bp, nil
}

// initSchema initializes or validates the schema version
func (b *BadgerPersistence) initSchema() error {
	return b.db.Update(func(txn *badgerdb.Txn) error {
		item, err := txn.Get([]byte(keySchemaVersion))
		if err == badgerdb.ErrKeyNotFound {
			// First time setup - set schema version
			return txn.Set([]byte(keySchemaVersion), []byte(currentSchemaVersion))
		}
		if err != nil {
			return fmt.Errorf("failed to read schema version: %w", err)
		}

		// Validate existing schema version
		var existingVersion string
		err = item.Value(func(val []byte) error {
			existingVersion = string(val)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to read schema version value: %w", err)
		}

		if existingVersion != currentSchemaVersion {
			return fmt.Errorf("unsupported schema version: %s (expected: %s)", existingVersion, currentSchemaVersion)
		}

		return nil
	})
}

// runGC runs periodic garbage collection in the background
func (b *BadgerPersistence) runGC(ctx context.Context) {
	defer b.gcWg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// Run value log GC with 0.5 discard ratio
			err := b.db.RunValueLogGC(0.5)
			if err != nil && err != badgerdb.ErrNoRewrite {
				b.logger.Sugar().Warnw("Badger GC error", "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

func relayKey(id uuid.UUID) []byte {
	return []byte(keyPrefixRelay + id.String())
}

func walletPrefix(wallet common.Address) string {
	return keyPrefixWallet + persistence.WalletKey(wallet) + ":"
}

func walletIndexKey(wallet common.Address, id uuid.UUID) []byte {
	return []byte(walletPrefix(wallet) + id.String())
}

// SaveRelay persists a relay record and its wallet index entry in one transaction
func (b *BadgerPersistence) SaveRelay(record *persistence.RelayRecord) error {
	if err := persistence.ValidateForSave(record); err != nil {
		return err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return fmt.Errorf("persistence layer is closed")
	}

	data, err := persistence.MarshalRelayRecord(record)
	if err != nil {
		return fmt.Errorf("failed to marshal RelayRecord: %w", err)
	}

	return b.db.Update(func(txn *badgerdb.Txn) error {
		if err := txn.Set(relayKey(record.ID), data); err != nil {
			return err
		}
		return txn.Set(walletIndexKey(record.Wallet, record.ID), nil)
	})
}

// LoadRelay retrieves a relay record
func (b *BadgerPersistence) LoadRelay(id uuid.UUID) (*persistence.RelayRecord, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil, fmt.Errorf("persistence layer is closed")
	}

	var record *persistence.RelayRecord
	err := b.db.View(func(txn *badgerdb.Txn) error {
		var err error
		record, err = getRelay(txn, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load RelayRecord: %w", err)
	}
	return record, nil
}

// getRelay returns nil, nil when the record does not exist
func getRelay(txn *badgerdb.Txn, id uuid.UUID) (*persistence.RelayRecord, error) {
	item, err := txn.Get(relayKey(id))
	if err == badgerdb.ErrKeyNotFound {
		return nil, nil // Not found is not an error
	}
	if err != nil {
		return nil, err
	}

	var data []byte
	if err := item.Value(func(val []byte) error {
		data = append([]byte{}, val...) // Copy value
		return nil
	}); err != nil {
		return nil, err
	}
	return persistence.UnmarshalRelayRecord(data)
}

// ListRelays returns all relay records ordered by creation time
func (b *BadgerPersistence) ListRelays() ([]*persistence.RelayRecord, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil, fmt.Errorf("persistence layer is closed")
	}

	records := []*persistence.RelayRecord{}
	err := b.db.View(func(txn *badgerdb.Txn) error {
		opts := badgerdb.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefixRelay)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				record, err := persistence.UnmarshalRelayRecord(val)
				if err != nil {
					b.logger.Sugar().Warnw("Failed to unmarshal RelayRecord, skipping",
						"key", string(item.Key()), "error", err)
					return nil
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list RelayRecords: %w", err)
	}

	persistence.SortRecords(records)
	return records, nil
}

// ListRelaysForWallet walks the wallet index and loads each referenced record
func (b *BadgerPersistence) ListRelaysForWallet(wallet common.Address) ([]*persistence.RelayRecord, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil, fmt.Errorf("persistence layer is closed")
	}

	prefix := walletPrefix(wallet)
	records := []*persistence.RelayRecord{}
	err := b.db.View(func(txn *badgerdb.Txn) error {
		opts := badgerdb.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		opts.PrefetchValues = false

		var ids []uuid.UUID
		it := txn.NewIterator(opts)
		for it.Rewind(); it.Valid(); it.Next() {
			id, err := uuid.Parse(strings.TrimPrefix(string(it.Item().Key()), prefix))
			if err != nil {
				b.logger.Sugar().Warnw("Malformed wallet index key, skipping",
					"key", string(it.Item().Key()), "error", err)
				continue
			}
			ids = append(ids, id)
		}
		it.Close()

		for _, id := range ids {
			record, err := getRelay(txn, id)
			if err != nil {
				return err
			}
			if record != nil {
				records = append(records, record)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list RelayRecords for wallet %s: %w", wallet.Hex(), err)
	}

	persistence.SortRecords(records)
	return records, nil
}

// DeleteRelay removes a relay record and its wallet index entry
func (b *BadgerPersistence) DeleteRelay(id uuid.UUID) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return fmt.Errorf("persistence layer is closed")
	}

	return b.db.Update(func(txn *badgerdb.Txn) error {
		record, err := getRelay(txn, id)
		if err != nil {
			return err
		}
		if record == nil {
			return nil
		}
		if err := txn.Delete(walletIndexKey(record.Wallet, id)); err != nil {
			return err
		}
		return txn.Delete(relayKey(id))
	})
}

// Close shuts down the persistence layer
func (b *BadgerPersistence) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil // Already closed, idempotent
	}
	b.closed = true
	b.mu.Unlock()

	// Stop GC goroutine
	if b.gcCancel != nil {
		b.gcCancel()
	}
	b.gcWg.Wait()

	// Close database
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("failed to close badger database: %w", err)
	}

	b.logger.Sugar().Info("Badger relay journal closed")
	return nil
}

// HealthCheck verifies the persistence layer is operational
func (b *BadgerPersistence) HealthCheck() error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return fmt.Errorf("persistence layer is closed")
	}

	// Try a simple read operation to verify database is accessible
	return b.db.View(func(txn *badgerdb.Txn) error {
		_, err := txn.Get([]byte(keySchemaVersion))
		if err == badgerdb.ErrKeyNotFound {
			return fmt.Errorf("schema version not found - database may be corrupted")
		}
		return err
	})
}

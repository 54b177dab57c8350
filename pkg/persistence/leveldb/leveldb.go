package leveldb

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
	"go.uber.org/zap"
)

// Key layout shared with the badger journal
const (
	keyPrefixRelay       = "relay:"
	keyPrefixWallet      = "wallet:"
	keySchemaVersion     = "metadata:schema_version"
	currentSchemaVersion = "v1"
)

// LevelDBPersistence is a relay journal stored in a local LevelDB database.
// Writes for a record and its wallet index entry are applied as a single batch.
type LevelDBPersistence struct {
	db     *leveldb.DB
	logger *zap.Logger
	mu     sync.RWMutex
	closed bool
}

// NewLevelDBPersistence opens (or creates) the database at dataPath.
func NewLevelDBPersistence(dataPath string, logger *zap.Logger) (*LevelDBPersistence, error) {
	absPath, err := filepath.Abs(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	db, err := leveldb.OpenFile(absPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open leveldb database at %s: %w", absPath, err)
	}

	lp := &LevelDBPersistence{
		db:     db,
		logger: logger,
	}

	if err := lp.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Sugar().Infow("LevelDB relay journal initialized", "path", absPath)
	return lp, nil
}

func (l *LevelDBPersistence) initSchema() error {
	existing, err := l.db.Get([]byte(keySchemaVersion), nil)
	if err == leveldb.ErrNotFound {
		return l.db.Put([]byte(keySchemaVersion), []byte(currentSchemaVersion), &opt.WriteOptions{Sync: true})
	}
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if string(existing) != currentSchemaVersion {
		return fmt.Errorf("unsupported schema version: %s (expected: %s)", existing, currentSchemaVersion)
	}
	return nil
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

// reader is satisfied by both *leveldb.DB and *leveldb.Snapshot
type reader interface {
	Get(key []byte, ro *opt.ReadOptions) ([]byte, error)
}

func getRelay(r reader, id uuid.UUID) (*persistence.RelayRecord, error) {
	data, err := r.Get(relayKey(id), nil)
	if err == leveldb.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return persistence.UnmarshalRelayRecord(data)
}

// SaveRelay persists a relay record and its wallet index entry
func (l *LevelDBPersistence) SaveRelay(record *persistence.RelayRecord) error {
	if err := persistence.ValidateForSave(record); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return fmt.Errorf("persistence layer is closed")
	}

	data, err := persistence.MarshalRelayRecord(record)
	if err != nil {
		return fmt.Errorf("failed to marshal RelayRecord: %w", err)
	}

	batch := new(leveldb.Batch)
	batch.Put(relayKey(record.ID), data)
	batch.Put(walletIndexKey(record.Wallet, record.ID), nil)

	if err := l.db.Write(batch, &opt.WriteOptions{Sync: true}); err != nil {
		return fmt.Errorf("failed to write batch: %w", err)
	}
	return nil
}

// LoadRelay retrieves a relay record
func (l *LevelDBPersistence) LoadRelay(id uuid.UUID) (*persistence.RelayRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return nil, fmt.Errorf("persistence layer is closed")
	}

	record, err := getRelay(l.db, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load RelayRecord: %w", err)
	}
	return record, nil
}

// ListRelays returns all relay records ordered by creation time
func (l *LevelDBPersistence) ListRelays() ([]*persistence.RelayRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return nil, fmt.Errorf("persistence layer is closed")
	}

	records := []*persistence.RelayRecord{}
	iter := l.db.NewIterator(util.BytesPrefix([]byte(keyPrefixRelay)), nil)
	for iter.Next() {
		record, err := persistence.UnmarshalRelayRecord(iter.Value())
		if err != nil {
			l.logger.Sugar().Warnw("Failed to unmarshal RelayRecord, skipping",
				"key", string(iter.Key()), "error", err)
			continue
		}
		records = append(records, record)
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("failed to list RelayRecords: %w", err)
	}

	persistence.SortRecords(records)
	return records, nil
}

// ListRelaysForWallet walks the wallet index on a snapshot so the index and records agree
func (l *LevelDBPersistence) ListRelaysForWallet(wallet common.Address) ([]*persistence.RelayRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return nil, fmt.Errorf("persistence layer is closed")
	}

	snap, err := l.db.GetSnapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to take snapshot: %w", err)
	}
	defer snap.Release()

	prefix := walletPrefix(wallet)
	var ids []uuid.UUID
	iter := snap.NewIterator(util.BytesPrefix([]byte(prefix)), nil)
	for iter.Next() {
		id, err := uuid.Parse(strings.TrimPrefix(string(iter.Key()), prefix))
		if err != nil {
			l.logger.Sugar().Warnw("Malformed wallet index key, skipping",
				"key", string(iter.Key()), "error", err)
			continue
		}
		ids = append(ids, id)
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("failed to scan wallet index: %w", err)
	}

	records := make([]*persistence.RelayRecord, 0, len(ids))
	for _, id := range ids {
		record, err := getRelay(snap, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load RelayRecord %s: %w", id, err)
		}
		if record != nil {
			records = append(records, record)
		}
	}

	persistence.SortRecords(records)
	return records, nil
}

// DeleteRelay removes a relay record and its wallet index entry
func (l *LevelDBPersistence) DeleteRelay(id uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return fmt.Errorf("persistence layer is closed")
	}

	record, err := getRelay(l.db, id)
	if err != nil {
		return fmt.Errorf("failed to load RelayRecord: %w", err)
	}
	if record == nil {
		return nil
	}

	batch := new(leveldb.Batch)
	batch.Delete(walletIndexKey(record.Wallet, id))
	batch.Delete(relayKey(id))
	if err := l.db.Write(batch, &opt.WriteOptions{Sync: true}); err != nil {
		return fmt.Errorf("failed to write batch: %w", err)
	}
	return nil
}

// Close shuts down the persistence layer
func (l *LevelDBPersistence) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true

	if err := l.db.Close(); err != nil {
		return fmt.Errorf("failed to close leveldb database: %w", err)
	}

	l.logger.Sugar().Info("LevelDB relay journal closed")
	return nil
}

// HealthCheck verifies the persistence layer is operational
func (l *LevelDBPersistence) HealthCheck() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return fmt.Errorf("persistence layer is closed")
	}

	_, err := l.db.Get([]byte(keySchemaVersion), nil)
	if err == leveldb.ErrNotFound {
		return fmt.Errorf("schema version not found - database may be corrupted")
	}
	return err
}

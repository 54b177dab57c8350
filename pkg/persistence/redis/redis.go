package redis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Key prefixes for namespacing in Redis
const (
	keyPrefixRelay       = "relayer:relay:"
	keySchemaVersion     = "relayer:metadata:schema_version"
	currentSchemaVersion = "v1"

	// Key sets for listing operations (Redis doesn't support prefix iteration natively)
	keySetRelays          = "relayer:relays:index"
	keyPrefixWalletRelays = "relayer:wallet:"
)

// RedisPersistence is a relay journal stored in Redis, shared by every relayer instance that
// points at the same database and key prefix.
type RedisPersistence struct {
	client    *redis.Client
	logger    *zap.Logger
	keyPrefix string // Custom prefix for all keys
	mu        sync.RWMutex
	closed    bool
}

// RedisConfig holds the configuration for connecting to Redis
type RedisConfig struct {
	// Address is the Redis server address (host:port)
	Address string
	// Password is the optional Redis password
	Password string
	// DB is the Redis database number (0-15)
	DB int
	// KeyPrefix is an optional custom prefix for all keys (for multi-tenant setups).
	// If set, this prefix is prepended to all keys, e.g., "myapp:" would result in
	// keys like "myapp:relayer:relay:<id>". If empty, keys use the default "relayer:" prefix.
	KeyPrefix string
}

// NewRedisPersistence creates a new Redis-backed relay journal.
func NewRedisPersistence(cfg *RedisConfig, logger *zap.Logger) (*RedisPersistence, error) {
	if cfg == nil {
		return nil, fmt.Errorf("redis config cannot be nil")
	}

	if cfg.Address == "" {
		return nil, fmt.Errorf("redis address cannot be empty")
	}

	// Create Redis client options
	opts := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	// Create Redis client
	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Address, err)
	}

	rp := &RedisPersistence{
		client:    client,
		logger:    logger,
		keyPrefix: cfg.KeyPrefix,
	}

	// Initialize schema version
	if err := rp.initSchema(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	if cfg.KeyPrefix != "" {
		logger.Sugar().Infow("Redis relay journal initialized", "address", cfg.Address, "db", cfg.DB, "key_prefix", cfg.KeyPrefix)
	} else {
		logger.Sugar().Infow("Redis relay journal initialized", "address", cfg.Address, "db", cfg.DB)
	}

	return rp, nil
}

// prefixKey adds the custom key prefix (if configured) to a key
func (r *RedisPersistence) prefixKey(key string) string {
	if r.keyPrefix == "" {
		return key
	}
	return r.keyPrefix + key
}

// initSchema initializes or validates the schema version
func (r *RedisPersistence) initSchema(ctx context.Context) error {
	schemaKey := r.prefixKey(keySchemaVersion)

	// Check if schema version exists
	existingVersion, err := r.client.Get(ctx, schemaKey).Result()
	if err == redis.Nil {
		// First time setup - set schema version
		return r.client.Set(ctx, schemaKey, currentSchemaVersion, 0).Err()
	}
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	// Validate existing schema version
	if existingVersion != currentSchemaVersion {
		return fmt.Errorf("unsupported schema version: %s (expected: %s)", existingVersion, currentSchemaVersion)
	}

	return nil
}

func (r *RedisPersistence) relayKey(id string) string {
	return r.prefixKey(keyPrefixRelay + id)
}

func (r *RedisPersistence) walletSetKey(wallet common.Address) string {
	return r.prefixKey(keyPrefixWalletRelays + persistence.WalletKey(wallet))
}

// SaveRelay persists a relay record and adds it to the global and wallet index sets
func (r *RedisPersistence) SaveRelay(record *persistence.RelayRecord) error {
	if err := persistence.ValidateForSave(record); err != nil {
		return err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return fmt.Errorf("persistence layer is closed")
	}

	ctx := context.Background()

	data, err := persistence.MarshalRelayRecord(record)
	if err != nil {
		return fmt.Errorf("failed to marshal RelayRecord: %w", err)
	}

	// Store in Redis using a transaction so the record and its indexes land together
	id := record.ID.String()
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.relayKey(id), data, 0)
	pipe.SAdd(ctx, r.prefixKey(keySetRelays), id)
	pipe.SAdd(ctx, r.walletSetKey(record.Wallet), id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save RelayRecord: %w", err)
	}
	return nil
}

// LoadRelay retrieves a relay record
func (r *RedisPersistence) LoadRelay(id uuid.UUID) (*persistence.RelayRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, fmt.Errorf("persistence layer is closed")
	}

	ctx := context.Background()

	data, err := r.client.Get(ctx, r.relayKey(id.String())).Bytes()
	if err == redis.Nil {
		return nil, nil // Not found is not an error
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load RelayRecord: %w", err)
	}

	record, err := persistence.UnmarshalRelayRecord(data)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal RelayRecord: %w", err)
	}
	return record, nil
}

// ListRelays returns all relay records ordered by creation time
func (r *RedisPersistence) ListRelays() ([]*persistence.RelayRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, fmt.Errorf("persistence layer is closed")
	}

	return r.listFromIndex(context.Background(), r.prefixKey(keySetRelays))
}

// ListRelaysForWallet returns the wallet's relay records ordered by creation time
func (r *RedisPersistence) ListRelaysForWallet(wallet common.Address) ([]*persistence.RelayRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, fmt.Errorf("persistence layer is closed")
	}

	return r.listFromIndex(context.Background(), r.walletSetKey(wallet))
}

func (r *RedisPersistence) listFromIndex(ctx context.Context, indexKey string) ([]*persistence.RelayRecord, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list relay ids: %w", err)
	}

	if len(ids) == 0 {
		return []*persistence.RelayRecord{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.relayKey(id)
	}

	// Fetch all values using MGET
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch RelayRecords: %w", err)
	}

	records := make([]*persistence.RelayRecord, 0, len(values))
	for i, val := range values {
		if val == nil {
			// Key was in index but doesn't exist - clean up index
			r.client.SRem(ctx, indexKey, ids[i])
			continue
		}

		data, ok := val.(string)
		if !ok {
			r.logger.Sugar().Warnw("Unexpected value type for RelayRecord", "key", keys[i])
			continue
		}

		record, err := persistence.UnmarshalRelayRecord([]byte(data))
		if err != nil {
			r.logger.Sugar().Warnw("Failed to unmarshal RelayRecord, skipping",
				"key", keys[i], "error", err)
			continue
		}
		records = append(records, record)
	}

	persistence.SortRecords(records)
	return records, nil
}

// DeleteRelay removes a relay record and its index entries
func (r *RedisPersistence) DeleteRelay(id uuid.UUID) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return fmt.Errorf("persistence layer is closed")
	}

	ctx := context.Background()
	key := r.relayKey(id.String())

	data, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load RelayRecord: %w", err)
	}
	record, err := persistence.UnmarshalRelayRecord(data)
	if err != nil {
		return fmt.Errorf("failed to unmarshal RelayRecord: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, r.prefixKey(keySetRelays), id.String())
	pipe.SRem(ctx, r.walletSetKey(record.Wallet), id.String())

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete RelayRecord: %w", err)
	}
	return nil
}

// Close shuts down the persistence layer
func (r *RedisPersistence) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil // Already closed, idempotent
	}
	r.closed = true
	r.mu.Unlock()

	// Close Redis client
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("failed to close Redis client: %w", err)
	}

	r.logger.Sugar().Info("Redis relay journal closed")
	return nil
}

// HealthCheck verifies the persistence layer is operational
func (r *RedisPersistence) HealthCheck() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return fmt.Errorf("persistence layer is closed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Ping Redis to check connectivity
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}

	// Verify schema version exists
	schemaKey := r.prefixKey(keySchemaVersion)
	_, err := r.client.Get(ctx, schemaKey).Result()
	if err == redis.Nil {
		return fmt.Errorf("schema version not found - database may not be properly initialized")
	}
	if err != nil {
		return fmt.Errorf("failed to verify schema version: %w", err)
	}

	return nil
}

package redis

import (
	"context"
	"os"
	"testing"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence/persistencetest"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// getTestRedisAddress returns the Redis address for testing.
// Uses REDIS_TEST_ADDRESS env var if set, otherwise defaults to localhost:6379.
func getTestRedisAddress() string {
	if addr := os.Getenv("REDIS_TEST_ADDRESS"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

// requireRedis skips the test if Redis is not available. Every call gets its own key prefix,
// so journals never see each other's records, and the keys are removed when the test ends.
func requireRedis(t *testing.T) *RedisPersistence {
	t.Helper()

	cfg := &RedisConfig{
		Address:   getTestRedisAddress(),
		DB:        15, // Use DB 15 for tests to avoid conflicts
		KeyPrefix: "test-" + uuid.NewString() + ":",
	}

	rp, err := NewRedisPersistence(cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Skipf("Redis not available at %s: %v", cfg.Address, err)
		return nil
	}

	t.Cleanup(func() { cleanupRedis(t, cfg) })
	return rp
}

// cleanupRedis deletes every key under the test's prefix
func cleanupRedis(t *testing.T, cfg *RedisConfig) {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: cfg.Address, DB: cfg.DB})
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	iter := client.Scan(ctx, 0, cfg.KeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}

func TestRedisPersistence(t *testing.T) {
	persistencetest.Run(t, func(t *testing.T) persistence.IRelayJournal {
		return requireRedis(t)
	})
}

func TestRedisPersistence_StaleIndexEntryIsDropped(t *testing.T) {
	rp := requireRedis(t)
	defer func() { _ = rp.Close() }()

	wallet := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	rec := persistencetest.NewRecord(wallet, 0)
	require.NoError(t, rp.SaveRelay(rec))

	// Remove the record behind the index's back
	ctx := context.Background()
	require.NoError(t, rp.client.Del(ctx, rp.relayKey(rec.ID.String())).Err())

	forWallet, err := rp.ListRelaysForWallet(wallet)
	require.NoError(t, err)
	assert.Empty(t, forWallet)

	members, err := rp.client.SMembers(ctx, rp.walletSetKey(wallet)).Result()
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestNewRedisPersistence_InvalidConfig(t *testing.T) {
	l := zaptest.NewLogger(t)

	_, err := NewRedisPersistence(nil, l)
	require.Error(t, err)

	_, err = NewRedisPersistence(&RedisConfig{}, l)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address cannot be empty")
}

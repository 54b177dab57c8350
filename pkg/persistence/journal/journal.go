// Package journal opens the relay journal backend selected in the configuration.
package journal

import (
	"fmt"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/config"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence/badger"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence/leveldb"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence/memory"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence/redis"
	"go.uber.org/zap"
)

func NewJournal(cfg *config.PersistenceConfig, logger *zap.Logger) (persistence.IRelayJournal, error) {
	var (
		j   persistence.IRelayJournal
		err error
	)
	switch cfg.Type {
	case config.PersistenceType_Memory, "":
		j = memory.NewMemoryPersistence(logger)
	case config.PersistenceType_Badger:
		j, err = asJournal(badger.NewBadgerPersistence(cfg.DataPath, logger))
	case config.PersistenceType_LevelDB:
		j, err = asJournal(leveldb.NewLevelDBPersistence(cfg.DataPath, logger))
	case config.PersistenceType_Redis:
		if cfg.Redis == nil {
			return nil, fmt.Errorf("redis persistence requires a redis config")
		}
		j, err = asJournal(redis.NewRedisPersistence(&redis.RedisConfig{
			Address:   cfg.Redis.Address,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Redis.KeyPrefix,
		}, logger))
	default:
		return nil, fmt.Errorf("unsupported persistence type: %s", cfg.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s relay journal: %w", cfg.Type, err)
	}
	return j, nil
}

// asJournal keeps a nil backend pointer from becoming a non-nil interface
func asJournal[T persistence.IRelayJournal](backend T, err error) (persistence.IRelayJournal, error) {
	if err != nil {
		return nil, err
	}
	return backend, nil
}

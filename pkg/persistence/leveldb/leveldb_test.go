package leveldb

import (
	"testing"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence/persistencetest"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestLevelDBPersistence(t *testing.T) {
	persistencetest.Run(t, func(t *testing.T) persistence.IRelayJournal {
		lp, err := NewLevelDBPersistence(t.TempDir(), zaptest.NewLogger(t))
		require.NoError(t, err)
		return lp
	})
}

func TestLevelDBPersistence_AcrossRestarts(t *testing.T) {
	tmpDir := t.TempDir()
	l := zaptest.NewLogger(t)

	lp1, err := NewLevelDBPersistence(tmpDir, l)
	require.NoError(t, err)

	wallet := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	rec := persistencetest.NewRecord(wallet, 0)
	require.NoError(t, lp1.SaveRelay(rec))
	require.NoError(t, lp1.Close())

	lp2, err := NewLevelDBPersistence(tmpDir, l)
	require.NoError(t, err)
	defer func() { _ = lp2.Close() }()

	forWallet, err := lp2.ListRelaysForWallet(wallet)
	require.NoError(t, err)
	require.Len(t, forWallet, 1)
	assert.Equal(t, rec.ID, forWallet[0].ID)
	assert.Equal(t, rec.Digest, forWallet[0].Digest)
}

func TestLevelDBPersistence_SchemaVersionMismatch(t *testing.T) {
	tmpDir := t.TempDir()
	l := zaptest.NewLogger(t)

	lp, err := NewLevelDBPersistence(tmpDir, l)
	require.NoError(t, err)
	require.NoError(t, lp.db.Put([]byte(keySchemaVersion), []byte("v0"), nil))
	require.NoError(t, lp.Close())

	_, err = NewLevelDBPersistence(tmpDir, l)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported schema version")
}

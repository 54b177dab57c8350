// Package persistencetest holds the behaviour every IRelayJournal backend must share.
package persistencetest

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns a fresh, empty journal. The suite closes it.
type Factory func(t *testing.T) persistence.IRelayJournal

var (
	module  = common.HexToAddress("0x0BC693480d447AB97AfF7aa215D1586f1868Cb01")
	walletA = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	walletB = common.HexToAddress("0x00000000000000000000000000000000000000bb")
)

// NewRecord returns a submitted lock record for wallet created at the given offset from a fixed time.
func NewRecord(wallet common.Address, offset time.Duration) *persistence.RelayRecord {
	rec := persistence.NewRelayRecord(persistence.Operation_Lock, module, wallet)
	rec.CreatedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC).Add(offset)
	rec.UpdatedAt = rec.CreatedAt
	rec.Nonce = "123456"
	rec.Digest = common.HexToHash("0xd3da70d61960e4a38eddd03bbe9816e4d2ca525445a74a3d83b3587ca5ab9077")
	rec.Signature = make([]byte, 65)
	rec.TxHash = common.HexToHash(fmt.Sprintf("0x%x", offset.Nanoseconds()+1))
	rec.State = persistence.RelayState_Submitted
	return rec
}

// Run exercises a journal backend.
func Run(t *testing.T, newJournal Factory) {
	t.Run("SaveAndLoad", func(t *testing.T) {
		j := newJournal(t)
		defer func() { _ = j.Close() }()

		rec := NewRecord(walletA, 0)
		rec.Args["newOwner"] = "0x0000000000000000000000000000000000000002"
		require.NoError(t, j.SaveRelay(rec))

		loaded, err := j.LoadRelay(rec.ID)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, rec.ID, loaded.ID)
		assert.Equal(t, rec.Wallet, loaded.Wallet)
		assert.Equal(t, rec.Args, loaded.Args)
		assert.Equal(t, rec.Digest, loaded.Digest)
		assert.Equal(t, rec.State, loaded.State)
		assert.True(t, rec.CreatedAt.Equal(loaded.CreatedAt))
	})

	t.Run("LoadNotFound", func(t *testing.T) {
		j := newJournal(t)
		defer func() { _ = j.Close() }()

		loaded, err := j.LoadRelay(uuid.New())
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("SaveRejectsInvalid", func(t *testing.T) {
		j := newJournal(t)
		defer func() { _ = j.Close() }()

		require.Error(t, j.SaveRelay(nil))
		require.Error(t, j.SaveRelay(&persistence.RelayRecord{}))
	})

	t.Run("UpdateOverwrites", func(t *testing.T) {
		j := newJournal(t)
		defer func() { _ = j.Close() }()

		rec := NewRecord(walletA, 0)
		require.NoError(t, j.SaveRelay(rec))

		rec.State = persistence.RelayState_Confirmed
		rec.UpdatedAt = rec.UpdatedAt.Add(time.Minute)
		require.NoError(t, j.SaveRelay(rec))

		loaded, err := j.LoadRelay(rec.ID)
		require.NoError(t, err)
		assert.Equal(t, persistence.RelayState_Confirmed, loaded.State)

		all, err := j.ListRelays()
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("ListOrderedAndByWallet", func(t *testing.T) {
		j := newJournal(t)
		defer func() { _ = j.Close() }()

		empty, err := j.ListRelays()
		require.NoError(t, err)
		assert.Empty(t, empty)

		third := NewRecord(walletA, 2*time.Second)
		first := NewRecord(walletA, 0)
		second := NewRecord(walletB, time.Second)
		for _, rec := range []*persistence.RelayRecord{third, first, second} {
			require.NoError(t, j.SaveRelay(rec))
		}

		all, err := j.ListRelays()
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, first.ID, all[0].ID)
		assert.Equal(t, second.ID, all[1].ID)
		assert.Equal(t, third.ID, all[2].ID)

		forA, err := j.ListRelaysForWallet(walletA)
		require.NoError(t, err)
		require.Len(t, forA, 2)
		assert.Equal(t, first.ID, forA[0].ID)
		assert.Equal(t, third.ID, forA[1].ID)

		none, err := j.ListRelaysForWallet(common.HexToAddress("0x01"))
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("Delete", func(t *testing.T) {
		j := newJournal(t)
		defer func() { _ = j.Close() }()

		rec := NewRecord(walletB, 0)
		require.NoError(t, j.SaveRelay(rec))
		require.NoError(t, j.DeleteRelay(rec.ID))

		loaded, err := j.LoadRelay(rec.ID)
		require.NoError(t, err)
		assert.Nil(t, loaded)

		forB, err := j.ListRelaysForWallet(walletB)
		require.NoError(t, err)
		assert.Empty(t, forB)

		// idempotent
		require.NoError(t, j.DeleteRelay(rec.ID))
	})

	t.Run("ConcurrentSaves", func(t *testing.T) {
		j := newJournal(t)
		defer func() { _ = j.Close() }()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				assert.NoError(t, j.SaveRelay(NewRecord(walletA, time.Duration(i)*time.Millisecond)))
			}(i)
		}
		wg.Wait()

		forA, err := j.ListRelaysForWallet(walletA)
		require.NoError(t, err)
		assert.Len(t, forA, 20)
	})

	t.Run("HealthCheckAndClose", func(t *testing.T) {
		j := newJournal(t)
		require.NoError(t, j.HealthCheck())
		require.NoError(t, j.Close())

		assert.Error(t, j.HealthCheck())
		assert.Error(t, j.SaveRelay(NewRecord(walletA, 0)))
		_, err := j.LoadRelay(uuid.New())
		assert.Error(t, err)
		_, err = j.ListRelays()
		assert.Error(t, err)
		// idempotent
		assert.NoError(t, j.Close())
	})
}

package memory

import (
	"testing"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence/persistencetest"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestMemoryPersistence(t *testing.T) {
	persistencetest.Run(t, func(t *testing.T) persistence.IRelayJournal {
		return NewMemoryPersistence(zaptest.NewLogger(t))
	})
}

func TestMemoryPersistence_DeepCopy(t *testing.T) {
	mp := NewMemoryPersistence(zaptest.NewLogger(t))
	defer func() { _ = mp.Close() }()

	rec := persistencetest.NewRecord(common.HexToAddress("0xaa"), 0)
	rec.Args["newOwner"] = "0x02"
	require.NoError(t, mp.SaveRelay(rec))

	// Mutating the caller's record must not change the stored copy
	rec.Args["newOwner"] = "0x03"
	rec.Signature[0] = 0xff

	loaded, err := mp.LoadRelay(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "0x02", loaded.Args["newOwner"])
	assert.Equal(t, byte(0), loaded.Signature[0])

	// Mutating a loaded record must not change the stored copy either
	loaded.State = persistence.RelayState_Reverted
	again, err := mp.LoadRelay(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, persistence.RelayState_Submitted, again.State)
}

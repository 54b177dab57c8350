package persistence

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// IRelayJournal records the relays submitted by the relay service so their status can be
// reported after the process that submitted them is gone.
// All implementations must be thread-safe; the HTTP server journals concurrently.
//
// The interface supports:
// - Relay record management (save, load, list, delete)
// - Per-wallet listing
// - Lifecycle management (close, health check)
type IRelayJournal interface {
	// SaveRelay persists a relay record keyed by its ID.
	// Overwrites an existing record with the same ID, so it is also used for state updates.
	// Returns error if the record is nil or has a zero ID, or on storage failure.
	SaveRelay(record *RelayRecord) error

	// LoadRelay retrieves a relay record by ID.
	// Returns nil if the record doesn't exist, error only on storage failure.
	LoadRelay(id uuid.UUID) (*RelayRecord, error)

	// ListRelays returns every journaled relay ordered by creation time (oldest first).
	// Returns empty slice if the journal is empty, error only on storage failure.
	ListRelays() ([]*RelayRecord, error)

	// ListRelaysForWallet returns the relays for a single wallet ordered by creation time.
	// Returns empty slice if the wallet has none, error only on storage failure.
	ListRelaysForWallet(wallet common.Address) ([]*RelayRecord, error)

	// DeleteRelay removes a relay record by ID.
	// Idempotent - returns nil if the record doesn't exist.
	DeleteRelay(id uuid.UUID) error

	// Lifecycle

	// Close releases resources (file handles, connections).
	// Must be called before process exit. Idempotent; every other method fails afterwards.
	Close() error

	// HealthCheck verifies the journal is operational.
	HealthCheck() error
}

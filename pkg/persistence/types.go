package persistence

import (
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
)

// RelayState is the journaled state of a relay. It tracks the relayer pipeline's states from
// submission onwards plus Failed for relays that never reached the chain.
type RelayState string

const (
	RelayState_Submitted RelayState = "Submitted"
	RelayState_Confirmed RelayState = "Confirmed"
	RelayState_Reverted  RelayState = "Reverted"
	RelayState_Failed    RelayState = "Failed"
)

// IsFinal reports whether the record will not change state again.
func (s RelayState) IsFinal() bool {
	return s == RelayState_Confirmed || s == RelayState_Reverted || s == RelayState_Failed
}

// Operation names the wallet action a relay performed.
type Operation string

const (
	Operation_RecoveryInitialize Operation = "recovery.initialize"
	Operation_RecoveryCancel     Operation = "recovery.cancel"
	Operation_RecoveryFinalize   Operation = "recovery.finalize"
	Operation_Lock               Operation = "lock"
	Operation_Unlock             Operation = "unlock"
)

// RelayRecord is a single journaled relay.
//
// Nonce, Digest and Signature are empty for operations that were sent without an owner signature
// (recovery finalization) or that failed before signing.
type RelayRecord struct {
	ID        uuid.UUID         `json:"id"`
	Operation Operation         `json:"operation"`
	Module    common.Address    `json:"module"`
	Wallet    common.Address    `json:"wallet"`
	Args      map[string]string `json:"args,omitempty"`
	Nonce     string            `json:"nonce,omitempty"`
	Digest    common.Hash       `json:"digest"`
	Signature hexutil.Bytes     `json:"signature,omitempty"`
	TxHash    common.Hash       `json:"txHash"`
	State     RelayState        `json:"state"`
	Error     string            `json:"error,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// NewRelayRecord returns a record with a fresh ID and both timestamps set to now.
func NewRelayRecord(op Operation, module, wallet common.Address) *RelayRecord {
	now := time.Now().UTC()
	return &RelayRecord{
		ID:        uuid.New(),
		Operation: op,
		Module:    module,
		Wallet:    wallet,
		Args:      map[string]string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Copy returns a deep copy of the record.
func (r *RelayRecord) Copy() *RelayRecord {
	if r == nil {
		return nil
	}
	cp := *r
	if r.Args != nil {
		cp.Args = make(map[string]string, len(r.Args))
		for k, v := range r.Args {
			cp.Args[k] = v
		}
	}
	if r.Signature != nil {
		cp.Signature = append(hexutil.Bytes(nil), r.Signature...)
	}
	return &cp
}

// WalletKey is the canonical form of a wallet address used in journal indexes.
func WalletKey(wallet common.Address) string {
	return strings.ToLower(wallet.Hex())
}

// SortRecords orders records by creation time, oldest first, breaking ties by ID.
func SortRecords(records []*RelayRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.Before(records[j].CreatedAt)
		}
		return records[i].ID.String() < records[j].ID.String()
	})
}

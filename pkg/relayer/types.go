package relayer

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Protocol defaults for the relayed-call economics.
const (
	DefaultGasLimit uint64 = 250000
)

// RelayedCall is the unit authorised by a single signature. Every numeric field is hashed and then
// submitted verbatim, so it must not be mutated between the two.
type RelayedCall struct {
	Module   common.Address
	Wallet   common.Address
	Value    *uint256.Int
	CallData []byte
	Nonce    *uint256.Int
	GasPrice *uint256.Int
	GasLimit *uint256.Int
}

// PackedMessage returns the signing preimage for the call.
func (c *RelayedCall) PackedMessage() []byte {
	return PackRelayMessage(c.Module, c.Wallet, c.Value, c.CallData, c.Nonce, c.GasPrice, c.GasLimit)
}

// SigningHash returns the Keccak-256 digest the wallet owner signs.
func (c *RelayedCall) SigningHash() common.Hash {
	return SigningHash(c.Module, c.Wallet, c.Value, c.CallData, c.Nonce, c.GasPrice, c.GasLimit)
}

// PipelineState is the progress of a single relay invocation.
type PipelineState int

const (
	StateIdle PipelineState = iota
	StateNonceFetched
	StateEncoded
	StateHashed
	StateSigned
	StateSubmitted
	StateConfirmed
	StateReverted
)

var pipelineStateNames = map[PipelineState]string{
	StateIdle:         "Idle",
	StateNonceFetched: "NonceFetched",
	StateEncoded:      "Encoded",
	StateHashed:       "Hashed",
	StateSigned:       "Signed",
	StateSubmitted:    "Submitted",
	StateConfirmed:    "Confirmed",
	StateReverted:     "Reverted",
}

func (s PipelineState) String() string {
	if name, ok := pipelineStateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// ParsePipelineState is the inverse of String.
func ParsePipelineState(s string) (PipelineState, bool) {
	for state, name := range pipelineStateNames {
		if name == s {
			return state, true
		}
	}
	return StateIdle, false
}

// IsTerminal reports whether the state is only reached by observing the chain after submission.
func (s PipelineState) IsTerminal() bool {
	return s == StateConfirmed || s == StateReverted
}

// Result is what a successful relay hands back to the caller.
type Result struct {
	Call      *RelayedCall
	Digest    common.Hash
	Signature []byte
	TxHash    common.Hash
	State     PipelineState
}

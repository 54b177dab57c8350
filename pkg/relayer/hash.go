package relayer

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

const (
	messagePrefix  byte = 0x19
	messageVersion byte = 0x00

	// PackedMessageOverhead is the size of every fixed-width field of the packed message.
	PackedMessageOverhead = 1 + 1 + common.AddressLength + common.AddressLength + 32 + 32 + 32 + 32
)

// PackRelayMessage lays out the signing preimage verified by the wallet modules:
//
//	0x19 | 0x00 | module | wallet | value | data | nonce | gasPrice | gasLimit
//
// Addresses are 20 bytes, integers are 32-byte big-endian words and data is copied as is.
// Nil integers pack as zero.
func PackRelayMessage(
	module common.Address,
	wallet common.Address,
	value *uint256.Int,
	data []byte,
	nonce *uint256.Int,
	gasPrice *uint256.Int,
	gasLimit *uint256.Int,
) []byte {
	buf := make([]byte, 0, PackedMessageOverhead+len(data))
	buf = append(buf, messagePrefix, messageVersion)
	buf = append(buf, module.Bytes()...)
	buf = append(buf, wallet.Bytes()...)
	buf = appendWord(buf, value)
	buf = append(buf, data...)
	buf = appendWord(buf, nonce)
	buf = appendWord(buf, gasPrice)
	buf = appendWord(buf, gasLimit)
	return buf
}

// SigningHash is the Keccak-256 digest of PackRelayMessage.
func SigningHash(
	module common.Address,
	wallet common.Address,
	value *uint256.Int,
	data []byte,
	nonce *uint256.Int,
	gasPrice *uint256.Int,
	gasLimit *uint256.Int,
) common.Hash {
	return crypto.Keccak256Hash(PackRelayMessage(module, wallet, value, data, nonce, gasPrice, gasLimit))
}

func appendWord(buf []byte, v *uint256.Int) []byte {
	if v == nil {
		var zero [32]byte
		return append(buf, zero[:]...)
	}
	word := v.Bytes32()
	return append(buf, word[:]...)
}

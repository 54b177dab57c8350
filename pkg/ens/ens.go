// Package ens implements the name hashing and reverse-record naming used to query the ENS registry.
package ens

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// ReverseRegistrarDomain is the parent of every reverse record
const ReverseRegistrarDomain = "addr.reverse"

// ensSuffixes are the top level domains treated as names rather than hex addresses
var ensSuffixes = []string{".eth", ".xyz"}

// NameHash computes the EIP-137 namehash of name. The empty name hashes to the zero node.
func NameHash(name string) common.Hash {
	var node common.Hash
	if name == "" {
		return node
	}

	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		labelHash := keccak256([]byte(labels[i]))
		copy(node[:], keccak256(node[:], labelHash))
	}
	return node
}

// ReverseName returns the reverse record name for addr, e.g. "<40 hex chars>.addr.reverse"
func ReverseName(addr common.Address) string {
	return hex.EncodeToString(addr.Bytes()) + "." + ReverseRegistrarDomain
}

// IsENSName reports whether input should be resolved through ENS instead of parsed as hex
func IsENSName(input string) bool {
	for _, suffix := range ensSuffixes {
		if strings.HasSuffix(input, suffix) {
			return true
		}
	}
	return false
}

func keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

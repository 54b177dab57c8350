package ens

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func Test_NameHash(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", "0x0000000000000000000000000000000000000000000000000000000000000000"},
		{"eth", "0x93cdeb708b7545dc668eb9280176169d1c33cfd8ed6f04690a0bcc88a93fc4ae"},
		{"foo.eth", "0xde9b09fd7c5f901e23a3f19fecc54828e9c848539801e86591bd9801b019f84f"},
		{"argent.xyz", "0xf0b914d803bfbcc81715a4b6f6abb05dd0e6b106f3574a8c36ef7dce598567a4"},
		{"addr.reverse", "0x91d1777781884d03a6757a803996e38de2a42967fb37eeaca72729271025a9e2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, common.HexToHash(tt.want), NameHash(tt.name))
		})
	}
}

func Test_ReverseName(t *testing.T) {
	addr := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	name := ReverseName(addr)

	assert.Equal(t, "f39fd6e51aad88f6f4ce6ab8827279cfffb92266.addr.reverse", name)
	assert.Equal(t,
		common.HexToHash("0x36f4458307cdb864c670ce989072842621dd6b7022b8abacc37f7fab25890b27"),
		NameHash(name),
	)
}

func Test_IsENSName(t *testing.T) {
	assert.True(t, IsENSName("vitalik.eth"))
	assert.True(t, IsENSName("alice.argent.xyz"))
	assert.False(t, IsENSName("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"))
	assert.False(t, IsENSName("example.com"))
	assert.False(t, IsENSName(""))
}

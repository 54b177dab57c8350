package modules

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func Test_Name(t *testing.T) {
	assert.Equal(t, "RecoveryManager", Name(common.HexToAddress("0xdfa1468d07fc86840a6eb53e0e65cebde81d1af9")))
	assert.Equal(t, "LockManager", Name(common.HexToAddress("0x0BC693480d447AB97AfF7aa215D1586f1868Cb01")))
	assert.Equal(t, "GuardianManager", Name(common.HexToAddress("0xFF5A7299ff6f0fbAad9b38906b77d08c0FBdc9A7")))
	assert.Equal(t, UnknownModule, Name(common.HexToAddress("0x01")))
}

func Test_ApprovedTransferHasTwoDeployments(t *testing.T) {
	count := 0
	for _, a := range Addresses() {
		if Name(a) == "ApprovedTransfer" {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func Test_Addresses(t *testing.T) {
	addrs := Addresses()
	assert.Len(t, addrs, 14)
	for i := 1; i < len(addrs); i++ {
		assert.Negative(t, addrs[i-1].Cmp(addrs[i]))
	}
	for _, a := range addrs {
		assert.True(t, IsKnown(a))
	}
	assert.False(t, IsKnown(common.Address{}))
}

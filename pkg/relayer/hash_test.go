package relayer

import (
	"testing"

	RecoveryManager "github.com/Layr-Labs/wallet-relayer-go/pkg/bindings/RecoveryManager"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fixtureWallet   = common.HexToAddress("0x0000000000000000000000000000000000000001")
	fixtureNewOwner = common.HexToAddress("0x0000000000000000000000000000000000000002")
	// 38 hex digits; HexToAddress left-pads it to 0x00..03.
	fixtureModule = common.HexToAddress("0x00000000000000000000000000000000000003")
)

const (
	fixtureCallData = "b0ba4da0" +
		"0000000000000000000000000000000000000000000000000000000000000001" +
		"0000000000000000000000000000000000000000000000000000000000000002"
	fixtureDigest = "0xaedfb3c64a24d6178d3cde12741ce0de156190b7e5f85a8067b2a74bd4b7d017"
)

func fixtureCall(t *testing.T) *RelayedCall {
	t.Helper()
	encoder, err := NewMessageEncoder(RecoveryManager.RecoveryManagerMetaData)
	require.NoError(t, err)
	data, err := encoder.Encode("executeRecovery", fixtureWallet, fixtureNewOwner)
	require.NoError(t, err)

	return &RelayedCall{
		Module:   fixtureModule,
		Wallet:   fixtureWallet,
		Value:    uint256.NewInt(0),
		CallData: data,
		Nonce:    uint256.NewInt(123456),
		GasPrice: uint256.NewInt(0),
		GasLimit: uint256.NewInt(250000),
	}
}

func Test_SigningHash_GoldenFixture(t *testing.T) {
	call := fixtureCall(t)

	assert.Equal(t, fixtureCallData, common.Bytes2Hex(call.CallData))
	assert.Equal(t, common.HexToAddress("0x0000000000000000000000000000000000000003"), fixtureModule)
	assert.Equal(t, fixtureDigest, call.SigningHash().Hex())
}

func Test_SigningHash_Deterministic(t *testing.T) {
	call := fixtureCall(t)
	first := call.SigningHash()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, call.SigningHash())
	}
}

func Test_PackRelayMessage_Layout(t *testing.T) {
	call := fixtureCall(t)
	packed := call.PackedMessage()

	require.Len(t, packed, PackedMessageOverhead+len(call.CallData))
	require.Len(t, packed, 238)

	assert.Equal(t, byte(0x19), packed[0])
	assert.Equal(t, byte(0x00), packed[1])
	assert.Equal(t, fixtureModule.Bytes(), packed[2:22])
	assert.Equal(t, fixtureWallet.Bytes(), packed[22:42])
	assert.Equal(t, make([]byte, 32), packed[42:74])
	assert.Equal(t, call.CallData, packed[74:74+len(call.CallData)])

	tail := packed[74+len(call.CallData):]
	require.Len(t, tail, 96)
	nonce := uint256.NewInt(123456).Bytes32()
	gasLimit := uint256.NewInt(250000).Bytes32()
	assert.Equal(t, nonce[:], tail[0:32])
	assert.Equal(t, make([]byte, 32), tail[32:64])
	assert.Equal(t, gasLimit[:], tail[64:96])
}

func Test_PackRelayMessage_LengthInvariant(t *testing.T) {
	for _, n := range []int{0, 1, 4, 31, 32, 33, 100, 1024} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i)
		}
		packed := PackRelayMessage(fixtureModule, fixtureWallet, uint256.NewInt(1), data,
			uint256.NewInt(2), uint256.NewInt(3), uint256.NewInt(4))
		assert.Len(t, packed, PackedMessageOverhead+n, "call data length %d", n)
		assert.Equal(t, data, packed[74:74+n])
	}
}

func Test_PackedMessageOverhead(t *testing.T) {
	assert.Equal(t, 170, PackedMessageOverhead)
}

func Test_PackRelayMessage_NilIntegersPackAsZero(t *testing.T) {
	withNil := PackRelayMessage(fixtureModule, fixtureWallet, nil, nil, nil, nil, nil)
	withZero := PackRelayMessage(fixtureModule, fixtureWallet, uint256.NewInt(0), nil,
		uint256.NewInt(0), uint256.NewInt(0), uint256.NewInt(0))
	assert.Equal(t, withZero, withNil)
}

func Test_SigningHash_FieldSensitivity(t *testing.T) {
	base := fixtureCall(t)
	baseline := base.SigningHash()

	mutations := map[string]func(c *RelayedCall){
		"module": func(c *RelayedCall) { c.Module = common.HexToAddress("0x04") },
		"wallet": func(c *RelayedCall) { c.Wallet = common.HexToAddress("0x05") },
		"value":  func(c *RelayedCall) { c.Value = uint256.NewInt(1) },
		"callData": func(c *RelayedCall) {
			c.CallData = append([]byte{}, c.CallData...)
			c.CallData[len(c.CallData)-1] ^= 0xff
		},
		"nonce":    func(c *RelayedCall) { c.Nonce = uint256.NewInt(123457) },
		"gasPrice": func(c *RelayedCall) { c.GasPrice = uint256.NewInt(1) },
		"gasLimit": func(c *RelayedCall) { c.GasLimit = uint256.NewInt(250001) },
		"swap nonce and gasPrice": func(c *RelayedCall) {
			c.Nonce, c.GasPrice = c.GasPrice, c.Nonce
		},
		"swap module and wallet": func(c *RelayedCall) {
			c.Module, c.Wallet = c.Wallet, c.Module
		},
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			c := *base
			mutate(&c)
			assert.NotEqual(t, baseline, c.SigningHash())
		})
	}
}

func Test_SigningHash_SwappedNonceAndGasPriceVector(t *testing.T) {
	c := fixtureCall(t)
	c.Nonce, c.GasPrice = uint256.NewInt(0), uint256.NewInt(123456)
	assert.Equal(t, "0x575d1e255c9e97e18ec083ce1d8c93d465120d5486ff5727b70f7e7f106511cb", c.SigningHash().Hex())
}

package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/config"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"maybe\n", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		p := NewPrinter(&out, strings.NewReader(tt.input), config.ChainId_EthereumMainnet)
		got, err := p.Confirm("Lock wallet?")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Contains(t, out.String(), "Lock wallet?")
	}
}

func Test_Relay(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, strings.NewReader(""), config.ChainId_EthereumMainnet)

	rec := persistence.NewRelayRecord(persistence.Operation_Lock,
		common.HexToAddress("0x0BC693480d447AB97AfF7aa215D1586f1868Cb01"),
		common.HexToAddress("0x0000000000000000000000000000000000000001"))
	rec.TxHash = common.HexToHash("0xabc")
	rec.State = persistence.RelayState_Failed
	rec.Error = "SigningError: sign: hsm offline"
	p.Relay(rec)

	s := out.String()
	assert.Contains(t, s, rec.ID.String())
	assert.Contains(t, s, "LockManager")
	assert.Contains(t, s, "https://etherscan.io/tx/"+rec.TxHash.Hex())
	assert.Contains(t, s, "Failed")
	assert.Contains(t, s, "hsm offline")
}

func Test_TxLinkWithoutExplorer(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, strings.NewReader(""), config.ChainId_EthereumAnvil)
	p.TxLink(common.HexToHash("0x01"))

	assert.Contains(t, out.String(), common.HexToHash("0x01").Hex())
	assert.NotContains(t, out.String(), "explorer")
}

func Test_ListsAndErrors(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, strings.NewReader(""), config.ChainId_EthereumMainnet)

	p.List("Guardians", nil)
	p.Modules([]common.Address{common.HexToAddress("0xdfa1468D07Fc86840A6EB53E0e65CEBDE81D1af9")})
	p.RelayTable(nil)
	p.Error(errors.New("boom"))

	s := out.String()
	assert.Contains(t, s, "Guardians")
	assert.Contains(t, s, "(none)")
	assert.Contains(t, s, "RecoveryManager")
	assert.Contains(t, s, "Relays (0)")
	assert.Contains(t, s, "boom")
}

package token

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FromSymbol(t *testing.T) {
	eth, err := FromSymbol("ETH")
	require.NoError(t, err)
	assert.True(t, eth.IsEther())
	assert.Equal(t, uint8(18), eth.Decimals)

	wbtc, err := FromSymbol("wbtc")
	require.NoError(t, err)
	assert.Equal(t, "WBTC", wbtc.Symbol)
	assert.Equal(t, uint8(8), wbtc.Decimals)
	assert.False(t, wbtc.IsEther())

	_, err = FromSymbol("DOGE")
	assert.EqualError(t, err, "unknown token DOGE")
}

func Test_FromSymbol_ReturnsCopy(t *testing.T) {
	dai, err := FromSymbol("DAI")
	require.NoError(t, err)
	dai.Decimals = 0

	again, err := FromSymbol("DAI")
	require.NoError(t, err)
	assert.Equal(t, uint8(18), again.Decimals)
}

func Test_FromAddress(t *testing.T) {
	dai, ok := FromAddress(common.HexToAddress("0x6b175474e89094c44da98b954eedeac495271d0f"))
	require.True(t, ok)
	assert.Equal(t, "DAI", dai.Symbol)

	_, ok = FromAddress(common.HexToAddress("0x01"))
	assert.False(t, ok)
}

func Test_ToDecimals(t *testing.T) {
	eth, _ := FromSymbol("ETH")
	oneAndHalf := new(big.Int).Mul(big.NewInt(15), new(big.Int).Exp(big.NewInt(10), big.NewInt(17), nil))
	f, _ := eth.ToDecimals(oneAndHalf).Float64()
	assert.Equal(t, 1.5, f)
	assert.Equal(t, "1.5 ETH", eth.FormatAmount(oneAndHalf))

	wbtc, _ := FromSymbol("WBTC")
	f, _ = wbtc.ToDecimals(big.NewInt(250_000_000)).Float64()
	assert.Equal(t, 2.5, f)

	f, _ = wbtc.ToDecimals(nil).Float64()
	assert.Equal(t, 0.0, f)
}

func Test_Symbols(t *testing.T) {
	assert.Equal(t, []string{"ANT", "DAI", "ETH", "SAI", "WBTC"}, Symbols())
}

package token

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Token is a known asset a wallet can hold. ETH uses the zero address.
type Token struct {
	Symbol   string
	Address  common.Address
	Decimals uint8
}

// IsEther reports whether the token is the native asset rather than an ERC20
func (t *Token) IsEther() bool {
	return t.Address == (common.Address{})
}

// ToDecimals scales a raw on-chain amount into whole units of the token
func (t *Token) ToDecimals(value *big.Int) *big.Float {
	if value == nil {
		return new(big.Float)
	}
	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(t.Decimals)), nil)
	return new(big.Float).Quo(new(big.Float).SetInt(value), new(big.Float).SetInt(unit))
}

// FormatAmount renders value with the token symbol, e.g. "1.5 DAI"
func (t *Token) FormatAmount(value *big.Int) string {
	return fmt.Sprintf("%s %s", t.ToDecimals(value).Text('f', -1), t.Symbol)
}

// tokens is read-only after init
var tokens = map[string]*Token{
	"ETH":  {Symbol: "ETH", Address: common.Address{}, Decimals: 18},
	"DAI":  {Symbol: "DAI", Address: common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F"), Decimals: 18},
	"SAI":  {Symbol: "SAI", Address: common.HexToAddress("0x89d24A6b4CcB1B6fAA2625fE562bDD9a23260359"), Decimals: 18},
	"WBTC": {Symbol: "WBTC", Address: common.HexToAddress("0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599"), Decimals: 8},
	"ANT":  {Symbol: "ANT", Address: common.HexToAddress("0x960b236A07cf122663c4303350609A66A7B288C0"), Decimals: 18},
}

// FromSymbol looks a token up by symbol, ignoring case
func FromSymbol(symbol string) (*Token, error) {
	t, ok := tokens[strings.ToUpper(symbol)]
	if !ok {
		return nil, fmt.Errorf("unknown token %s", symbol)
	}
	cp := *t
	return &cp, nil
}

// FromAddress looks a token up by contract address
func FromAddress(addr common.Address) (*Token, bool) {
	for _, t := range tokens {
		if t.Address == addr {
			cp := *t
			return &cp, true
		}
	}
	return nil, false
}

// Symbols returns the known symbols in sorted order
func Symbols() []string {
	symbols := make([]string, 0, len(tokens))
	for s := range tokens {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

// Package modules names the deployed wallet modules and hosts the relay-capable module clients.
package modules

import (
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

const UnknownModule = "Unknown module"

// registry is read-only after init
var registry = map[common.Address]string{
	common.HexToAddress("0xFF5A7299ff6f0fbAad9b38906b77d08c0FBdc9A7"): "GuardianManager",
	common.HexToAddress("0x0BC693480d447AB97AfF7aa215D1586f1868Cb01"): "LockManager",
	common.HexToAddress("0xdfa1468D07Fc86840A6EB53E0e65CEBDE81D1af9"): "RecoveryManager",
	common.HexToAddress("0xed0DA07AAB7257Df53Efc4DfC076745744138Ed9"): "TokenExchanger",
	common.HexToAddress("0x1848e646Bba45174f4044443719Db6E5E6Cf5D66"): "NftTransfer",
	common.HexToAddress("0x963F86DA34Cf2CE619d4B8e5cE96577943f95B6b"): "MakerManager",
	common.HexToAddress("0xA5d7d68D7975e89FEb240f42feD1D77bb71b1cAF"): "CompoundManager",
	common.HexToAddress("0x5388b0f8106BDE37DC6982b4Ba5771d2E8D9dc42"): "UniswapManager",
	common.HexToAddress("0x2B6D87F12B106E1D3fA7137494751566329d1045"): "TransferManager",
	common.HexToAddress("0xcd23f51912ea8Fff38815f628277731C25c7Fb02"): "ApprovedTransfer",
	common.HexToAddress("0x7557f4199aa99e5396330BaC3b7bDAa262CB1913"): "MakerV2Manager",
	common.HexToAddress("0x0045684552109f8551CC5c8aa7B1f52085adFf47"): "ApprovedTransfer",
	common.HexToAddress("0x4DD68a6C27359E5640Fa6dCAF13631398C5613f1"): "ModuleManager",
	common.HexToAddress("0xdf6767A7715381867738cF211290F61697ecd938"): "TokenTransfer",
}

// Name returns the module's name, or UnknownModule for addresses outside the registry
func Name(address common.Address) string {
	if name, ok := registry[address]; ok {
		return name
	}
	return UnknownModule
}

// IsKnown reports whether address is a registered module
func IsKnown(address common.Address) bool {
	_, ok := registry[address]
	return ok
}

// Addresses returns every registered module address in ascending byte order
func Addresses() []common.Address {
	addrs := make([]common.Address, 0, len(registry))
	for a := range registry {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool {
		return addrs[i].Cmp(addrs[j]) < 0
	})
	return addrs
}

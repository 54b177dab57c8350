package caller

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/bindings/BaseWallet"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/bindings/ENSRegistry"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/bindings/ERC20"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/bindings/GuardianManager"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/bindings/GuardianStorage"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/bindings/LockManager"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/bindings/PublicResolver"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/config"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/ens"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/token"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var (
	wallet          = common.HexToAddress("0x1000000000000000000000000000000000000001")
	owner           = common.HexToAddress("0x2000000000000000000000000000000000000002")
	guardianStorage = common.HexToAddress("0x3000000000000000000000000000000000000003")
	resolver        = common.HexToAddress("0x4000000000000000000000000000000000000004")
	guardianA       = common.HexToAddress("0x5000000000000000000000000000000000000005")
	guardianB       = common.HexToAddress("0x6000000000000000000000000000000000000006")
	moduleA         = common.HexToAddress("0x7000000000000000000000000000000000000007")
	moduleB         = common.HexToAddress("0x8000000000000000000000000000000000000008")
	moduleC         = common.HexToAddress("0x9000000000000000000000000000000000000009")
	minedTx         = common.HexToHash("0xfeed")
)

var testContracts = &config.ContractAddresses{
	RecoveryManager:   "0xdfa1468D07Fc86840A6EB53E0e65CEBDE81D1af9",
	LockManager:       "0x0BC693480d447AB97AfF7aa215D1586f1868Cb01",
	GuardianManager:   "0xFF5A7299ff6f0fbAad9b38906b77d08c0FBdc9A7",
	ENSRegistry:       "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e",
	WalletsStartBlock: 5,
}

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

type callArg struct {
	To    common.Address `json:"to"`
	Input hexutil.Bytes  `json:"input"`
	Data  hexutil.Bytes  `json:"data"`
}

type filterArg struct {
	FromBlock string `json:"fromBlock"`
	ToBlock   string `json:"toBlock"`
}

type contractFn func(args []interface{}) []interface{}

// fakeChain answers the JSON-RPC methods the caller uses from in-memory contract state
type fakeChain struct {
	t       *testing.T
	mu      sync.Mutex
	abis    map[common.Address]*abi.ABI
	methods map[common.Address]map[string]contractFn
	logs    []types.Log
	latest  uint64

	logRequests [][2]uint64
}

func newFakeChain(t *testing.T) *fakeChain {
	return &fakeChain{
		t:       t,
		abis:    make(map[common.Address]*abi.ABI),
		methods: make(map[common.Address]map[string]contractFn),
		latest:  40,
	}
}

func (f *fakeChain) deploy(addr common.Address, meta *bind.MetaData, methods map[string]contractFn) {
	parsed, err := meta.GetAbi()
	require.NoError(f.t, err)
	f.abis[addr] = parsed
	f.methods[addr] = methods
}

func (f *fakeChain) authorise(block uint64, module common.Address, value bool) {
	parsed, err := BaseWallet.BaseWalletMetaData.GetAbi()
	require.NoError(f.t, err)
	event := parsed.Events["AuthorisedModule"]
	data, err := event.Inputs.NonIndexed().Pack(value)
	require.NoError(f.t, err)

	f.logs = append(f.logs, types.Log{
		Address:     wallet,
		Topics:      []common.Hash{event.ID, common.BytesToHash(module.Bytes())},
		Data:        data,
		BlockNumber: block,
		TxHash:      common.BigToHash(new(big.Int).SetUint64(block)),
		BlockHash:   common.BigToHash(new(big.Int).SetUint64(block + 1000)),
		Index:       uint(len(f.logs)),
	})
}

func (f *fakeChain) call(arg callArg) (interface{}, string) {
	input := arg.Input
	if len(input) == 0 {
		input = arg.Data
	}
	parsed, ok := f.abis[arg.To]
	if !ok || len(input) < 4 {
		return "0x", ""
	}
	method, err := parsed.MethodById(input[:4])
	if err != nil {
		return nil, "execution reverted"
	}
	fn, ok := f.methods[arg.To][method.Name]
	if !ok {
		return nil, "execution reverted"
	}
	args, err := method.Inputs.Unpack(input[4:])
	if err != nil {
		return nil, err.Error()
	}
	out, err := method.Outputs.Pack(fn(args)...)
	if err != nil {
		return nil, err.Error()
	}
	return hexutil.Encode(out), ""
}

func (f *fakeChain) handle(method string, params []json.RawMessage) (interface{}, string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch method {
	case "eth_blockNumber":
		return hexutil.EncodeUint64(f.latest), ""
	case "eth_call":
		var arg callArg
		if err := json.Unmarshal(params[0], &arg); err != nil {
			return nil, err.Error()
		}
		return f.call(arg)
	case "eth_getCode":
		return "0x6000", ""
	case "eth_getBalance":
		return hexutil.EncodeBig(big.NewInt(42)), ""
	case "eth_getLogs":
		var arg filterArg
		if err := json.Unmarshal(params[0], &arg); err != nil {
			return nil, err.Error()
		}
		from, to := hexutil.MustDecodeUint64(arg.FromBlock), hexutil.MustDecodeUint64(arg.ToBlock)
		f.logRequests = append(f.logRequests, [2]uint64{from, to})
		matched := []types.Log{}
		for _, l := range f.logs {
			if l.BlockNumber >= from && l.BlockNumber <= to {
				matched = append(matched, l)
			}
		}
		return matched, ""
	case "eth_getTransactionReceipt":
		var hash common.Hash
		if err := json.Unmarshal(params[0], &hash); err != nil {
			return nil, err.Error()
		}
		if hash != minedTx {
			return nil, ""
		}
		return &types.Receipt{
			Type:              types.DynamicFeeTxType,
			Status:            types.ReceiptStatusSuccessful,
			CumulativeGasUsed: 21000,
			GasUsed:           21000,
			Logs:              []*types.Log{},
			TxHash:            hash,
			BlockNumber:       big.NewInt(39),
		}, ""
	}
	return nil, "method not found: " + method
}

func (f *fakeChain) serve() *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		resp := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
		result, errMsg := f.handle(req.Method, req.Params)
		if errMsg != "" {
			resp["error"] = map[string]interface{}{"code": -32000, "message": errMsg}
		} else {
			resp["result"] = result
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	f.t.Cleanup(srv.Close)
	return srv
}

func one(v interface{}) contractFn {
	return func([]interface{}) []interface{} { return []interface{}{v} }
}

func setupCaller(t *testing.T) (*ContractCaller, *fakeChain) {
	t.Helper()
	chain := newFakeChain(t)

	chain.deploy(wallet, BaseWallet.BaseWalletMetaData, map[string]contractFn{
		"owner": one(owner),
	})
	chain.deploy(common.HexToAddress(testContracts.GuardianManager), GuardianManager.GuardianManagerMetaData, map[string]contractFn{
		"guardianStorage": one(guardianStorage),
	})
	chain.deploy(guardianStorage, GuardianStorage.GuardianStorageMetaData, map[string]contractFn{
		"getGuardians": func(args []interface{}) []interface{} {
			if args[0].(common.Address) != wallet {
				return []interface{}{[]common.Address{}}
			}
			return []interface{}{[]common.Address{guardianA, guardianB}}
		},
	})
	chain.deploy(common.HexToAddress(testContracts.LockManager), LockManager.LockManagerMetaData, map[string]contractFn{
		"isLocked": one(true),
	})

	forward := ens.NameHash("alice.eth")
	reverse := ens.NameHash(ens.ReverseName(owner))
	chain.deploy(common.HexToAddress(testContracts.ENSRegistry), ENSRegistry.ENSRegistryMetaData, map[string]contractFn{
		"resolver": func(args []interface{}) []interface{} {
			node := common.Hash(args[0].([32]byte))
			if node == forward || node == reverse {
				return []interface{}{resolver}
			}
			return []interface{}{common.Address{}}
		},
	})
	chain.deploy(resolver, PublicResolver.PublicResolverMetaData, map[string]contractFn{
		"addr": one(owner),
		"name": one("alice.eth"),
	})

	dai, err := token.FromSymbol("DAI")
	require.NoError(t, err)
	chain.deploy(dai.Address, ERC20.ERC20MetaData, map[string]contractFn{
		"balanceOf": one(big.NewInt(1000)),
	})

	srv := chain.serve()
	client, err := ethclient.Dial(srv.URL)
	require.NoError(t, err)
	t.Cleanup(client.Close)

	cc, err := NewContractCaller(client, &ContractCallerConfig{
		Contracts:        testContracts,
		LogScanChunkSize: 10,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	return cc, chain
}

func Test_GetOwner(t *testing.T) {
	cc, _ := setupCaller(t)
	got, err := cc.GetOwner(context.Background(), wallet)
	require.NoError(t, err)
	assert.Equal(t, owner, got)
}

func Test_GetGuardians(t *testing.T) {
	cc, _ := setupCaller(t)
	guardians, err := cc.GetGuardians(context.Background(), wallet)
	require.NoError(t, err)
	assert.Equal(t, []common.Address{guardianA, guardianB}, guardians)
}

func Test_GetModules(t *testing.T) {
	cc, chain := setupCaller(t)
	chain.authorise(10, moduleA, true)
	chain.authorise(15, moduleB, true)
	chain.authorise(25, moduleA, false)
	chain.authorise(31, moduleC, true)
	// before the configured start block
	chain.authorise(2, moduleC, true)

	modules, err := cc.GetModules(context.Background(), wallet)
	require.NoError(t, err)
	assert.Equal(t, []common.Address{moduleB, moduleC}, modules)
	assert.Equal(t, [][2]uint64{{5, 14}, {15, 24}, {25, 34}, {35, 40}}, chain.logRequests)
}

func Test_ApplyAuthorisation(t *testing.T) {
	var modules []common.Address
	modules = applyAuthorisation(modules, moduleA, true)
	modules = applyAuthorisation(modules, moduleB, true)
	modules = applyAuthorisation(modules, moduleA, true)
	modules = applyAuthorisation(modules, moduleA, false)
	assert.Equal(t, []common.Address{moduleB}, modules)

	modules = applyAuthorisation(modules, moduleC, false)
	assert.Equal(t, []common.Address{moduleB}, modules)
}

func Test_IsLocked(t *testing.T) {
	cc, _ := setupCaller(t)
	locked, err := cc.IsLocked(context.Background(), wallet)
	require.NoError(t, err)
	assert.True(t, locked)
}

func Test_GetBalance(t *testing.T) {
	cc, _ := setupCaller(t)

	eth, _ := token.FromSymbol("ETH")
	balance, err := cc.GetBalance(context.Background(), wallet, eth)
	require.NoError(t, err)
	assert.Equal(t, int64(42), balance.Int64())

	dai, _ := token.FromSymbol("DAI")
	balance, err = cc.GetBalance(context.Background(), wallet, dai)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance.Int64())
}

func Test_ENS(t *testing.T) {
	cc, _ := setupCaller(t)
	ctx := context.Background()

	addr, err := cc.ResolveName(ctx, "alice.eth")
	require.NoError(t, err)
	assert.Equal(t, owner, addr)

	name, err := cc.LookupAddress(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, "alice.eth", name)

	_, err = cc.ResolveName(ctx, "bob.eth")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to resolve ENS address bob.eth")

	_, err = cc.LookupAddress(ctx, wallet)
	assert.Error(t, err)
}

func Test_ResolveAddress(t *testing.T) {
	cc, _ := setupCaller(t)
	ctx := context.Background()

	addr, err := cc.ResolveAddress(ctx, "alice.eth")
	require.NoError(t, err)
	assert.Equal(t, owner, addr)

	addr, err = cc.ResolveAddress(ctx, strings.ToLower(wallet.Hex()))
	require.NoError(t, err)
	assert.Equal(t, wallet, addr)

	_, err = cc.ResolveAddress(ctx, "not-an-address")
	assert.EqualError(t, err, "invalid address not-an-address")
}

func Test_GetTransactionReceipt(t *testing.T) {
	cc, _ := setupCaller(t)

	receipt, err := cc.GetTransactionReceipt(context.Background(), minedTx)
	require.NoError(t, err)
	assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)

	_, err = cc.GetTransactionReceipt(context.Background(), common.HexToHash("0x01"))
	assert.ErrorIs(t, err, ethereum.NotFound)
}

func Test_NewContractCaller_RequiresContracts(t *testing.T) {
	_, err := NewContractCaller(nil, &ContractCallerConfig{}, zaptest.NewLogger(t))
	assert.Error(t, err)
}

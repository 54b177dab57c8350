package node

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// newFakeNode serves JSON-RPC requests with handler, which returns a result or an error message.
func newFakeNode(t *testing.T, handler func(method string, params []json.RawMessage) (interface{}, string)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		resp := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
		result, errMsg := handler(req.Method, req.Params)
		if errMsg != "" {
			resp["error"] = map[string]interface{}{"code": -32000, "message": errMsg}
		} else {
			resp["result"] = result
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func Test_Client_Accounts(t *testing.T) {
	srv := newFakeNode(t, func(method string, _ []json.RawMessage) (interface{}, string) {
		assert.Equal(t, "eth_accounts", method)
		return []string{"0x1111111111111111111111111111111111111111"}, ""
	})

	c, err := Dial(context.Background(), srv.URL, zaptest.NewLogger(t))
	require.NoError(t, err)

	accounts, err := c.Accounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, common.HexToAddress("0x1111111111111111111111111111111111111111"), accounts[0])
}

func Test_Client_Sign(t *testing.T) {
	signature := make([]byte, 65)
	signature[64] = 0x1c

	srv := newFakeNode(t, func(method string, params []json.RawMessage) (interface{}, string) {
		assert.Equal(t, "eth_sign", method)
		require.Len(t, params, 2)

		var account common.Address
		require.NoError(t, json.Unmarshal(params[0], &account))
		assert.Equal(t, common.HexToAddress("0x01"), account)

		var data hexutil.Bytes
		require.NoError(t, json.Unmarshal(params[1], &data))
		assert.Equal(t, []byte{0xde, 0xad}, []byte(data))

		return hexutil.Encode(signature), ""
	})

	c, err := Dial(context.Background(), srv.URL, zaptest.NewLogger(t))
	require.NoError(t, err)

	got, err := c.Sign(context.Background(), common.HexToAddress("0x01"), []byte{0xde, 0xad})
	require.NoError(t, err)
	assert.Equal(t, signature, got)
}

func Test_Client_SendTransaction(t *testing.T) {
	want := common.HexToHash("0x1234")
	to := common.HexToAddress("0x03")

	srv := newFakeNode(t, func(method string, params []json.RawMessage) (interface{}, string) {
		assert.Equal(t, "eth_sendTransaction", method)
		var args SendTxArgs
		require.NoError(t, json.Unmarshal(params[0], &args))
		assert.Equal(t, common.HexToAddress("0x01"), args.From)
		assert.Equal(t, to, *args.To)
		assert.Equal(t, []byte{0xaa}, []byte(args.Data))
		assert.Equal(t, hexutil.Uint64(21000), *args.Gas)
		return want.Hex(), ""
	})

	c, err := Dial(context.Background(), srv.URL, zaptest.NewLogger(t))
	require.NoError(t, err)

	hash, err := c.SendTransaction(context.Background(), &SendTxArgs{
		From: common.HexToAddress("0x01"),
		To:   &to,
		Gas:  Uint64Ptr(21000),
		Data: []byte{0xaa},
	})
	require.NoError(t, err)
	assert.Equal(t, want, hash)
}

func Test_Client_RPCError(t *testing.T) {
	srv := newFakeNode(t, func(string, []json.RawMessage) (interface{}, string) {
		return nil, "authentication needed: password or unlock"
	})

	c, err := Dial(context.Background(), srv.URL, zaptest.NewLogger(t))
	require.NoError(t, err)

	_, err = c.Sign(context.Background(), common.HexToAddress("0x01"), []byte{0x01})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication needed")
}

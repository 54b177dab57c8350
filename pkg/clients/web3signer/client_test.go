package web3signer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(NewConfigWithTLS(srv.URL, "", "", ""), zaptest.NewLogger(t))
	require.NoError(t, err)
	return client
}

func rpcResult(w http.ResponseWriter, r *http.Request, result interface{}) {
	var req jsonRPCRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"jsonrpc": "2.0", "id": req.ID, "result": result})
}

func Test_Client_EthAccounts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/", r.URL.Path)
		rpcResult(w, r, []string{"0xabc"})
	})

	accounts, err := client.EthAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"0xabc"}, accounts)
}

func Test_Client_EthSign(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req jsonRPCRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "eth_sign", req.Method)
		assert.Equal(t, []interface{}{"0x01", "0xdead"}, req.Params)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"jsonrpc": "2.0", "id": req.ID, "result": "0xsig"})
	})

	sig, err := client.EthSign(context.Background(), "0x01", "0xdead")
	require.NoError(t, err)
	assert.Equal(t, "0xsig", sig)
}

func Test_Client_EthSignTransactionAddsFrom(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     uint64                   `json:"id"`
			Method string                   `json:"method"`
			Params []map[string]interface{} `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "eth_signTransaction", req.Method)
		require.Len(t, req.Params, 1)
		assert.Equal(t, "0xfrom", req.Params[0]["from"])
		assert.Equal(t, "0x2", req.Params[0]["type"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"jsonrpc": "2.0", "id": req.ID, "result": "0x02f8"})
	})

	tx := map[string]interface{}{"type": "0x2"}
	signed, err := client.EthSignTransaction(context.Background(), "0xfrom", tx)
	require.NoError(t, err)
	assert.Equal(t, "0x02f8", signed)
	_, mutated := tx["from"]
	assert.False(t, mutated)
}

func Test_Client_RPCError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req jsonRPCRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"error":   map[string]interface{}{"code": -32000, "message": "signer not found"},
		})
	})

	_, err := client.EthSign(context.Background(), "0x01", "0x02")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signer not found")
}

func Test_Client_HTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.EthAccounts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func Test_Client_SignRaw(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/eth1/sign/0xkey", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"data":"0x0102"}`, string(body))
		_, _ = w.Write([]byte("0xsignature\n"))
	})

	sig, err := client.SignRaw(context.Background(), "0xkey", []byte{0x01, 0x02})
	require.NoError(t, err)
	assert.Equal(t, "0xsignature", sig)
}

func Test_Client_ReloadKeysAndWaitForPublicKey(t *testing.T) {
	var listed atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case reloadPath:
			w.WriteHeader(http.StatusOK)
		case publicKeysPath:
			keys := []string{}
			if listed.Add(1) > 1 {
				keys = append(keys, "0xABCDEF")
			}
			_ = json.NewEncoder(w).Encode(keys)
		default:
			http.NotFound(w, r)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, client.ReloadKeysAndWaitForPublicKey(ctx, "abcdef"))
	assert.GreaterOrEqual(t, listed.Load(), int32(2))
}

func Test_Client_ReloadKeysAndWaitForPublicKey_Timeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == publicKeysPath {
			_ = json.NewEncoder(w).Encode([]string{})
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err := client.ReloadKeysAndWaitForPublicKey(ctx, "0x01")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

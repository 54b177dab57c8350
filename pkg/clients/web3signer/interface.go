package web3signer

import (
	"context"
	"net/http"
)

// IWeb3Signer is the subset of the Web3Signer API used by the relayer's signing backends.
type IWeb3Signer interface {
	// SetHttpClient replaces the underlying HTTP client, e.g. to inject a test transport.
	SetHttpClient(client *http.Client)

	// EthAccounts returns the addresses the signer holds keys for (eth_accounts).
	EthAccounts(ctx context.Context) ([]string, error)

	// EthSignTransaction returns the RLP of a signed transaction (eth_signTransaction).
	EthSignTransaction(ctx context.Context, from string, transaction map[string]interface{}) (string, error)

	// EthSign signs data with the personal-message prefix (eth_sign).
	EthSign(ctx context.Context, account string, data string) (string, error)

	// ListPublicKeys returns the secp256k1 public keys loaded into the signer.
	ListPublicKeys(ctx context.Context) ([]string, error)

	// SignRaw signs data without any prefix using the REST endpoint for identifier.
	SignRaw(ctx context.Context, identifier string, data []byte) (string, error)

	// ReloadKeys asks the signer to rescan its key store.
	ReloadKeys(ctx context.Context) error

	// ReloadKeysAndWaitForPublicKey reloads and blocks until publicKey is listed or ctx ends.
	ReloadKeysAndWaitForPublicKey(ctx context.Context, publicKey string) error
}

var _ IWeb3Signer = (*Client)(nil)

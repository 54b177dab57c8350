package web3signer

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/config"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "http://localhost:9000"
	DefaultTimeout = 30 * time.Second

	publicKeysPath = "/api/v1/eth1/publicKeys"
	signPathPrefix = "/api/v1/eth1/sign/"
	reloadPath     = "/reload"

	reloadPollInterval = 500 * time.Millisecond
)

// Config holds the connection settings for a Web3Signer instance. TLS material is PEM encoded.
type Config struct {
	BaseURL string
	Timeout time.Duration
	CACert  string
	Cert    string
	Key     string
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// NewConfigWithTLS builds a config for baseURL with optional CA and client certificate.
func NewConfigWithTLS(baseURL, caCert, cert, key string) *Config {
	cfg := DefaultConfig()
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.CACert = caCert
	cfg.Cert = cert
	cfg.Key = key
	return cfg
}

// Client is a Web3Signer JSON-RPC and REST client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	requestId  atomic.Uint64
}

func NewClient(cfg *Config, logger *zap.Logger) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.CACert != "" || cfg.Cert != "" || cfg.Key != "" {
		tlsConfig, err := buildTLSConfig(cfg)
		if err != nil {
			return nil, err
		}
		transport.TLSClientConfig = tlsConfig
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout, Transport: transport},
		logger:     logger,
	}, nil
}

// NewWeb3SignerClientFromRemoteSignerConfig builds a client from the relayer's signer settings.
// A nil config yields a client for the default local endpoint.
func NewWeb3SignerClientFromRemoteSignerConfig(cfg *config.RemoteSignerConfig, logger *zap.Logger) (*Client, error) {
	if cfg == nil {
		return NewClient(DefaultConfig(), logger)
	}
	return NewClient(NewConfigWithTLS(cfg.Url, cfg.CACert, cfg.Cert, cfg.Key), logger)
}

func buildTLSConfig(cfg *Config) (*tls.Config, error) {
	tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}

	if cfg.CACert != "" {
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM([]byte(cfg.CACert)) {
			return nil, errors.New("failed to parse web3signer CA certificate")
		}
		tlsConfig.RootCAs = pool
	}

	if cfg.Cert != "" || cfg.Key != "" {
		if cfg.Cert == "" || cfg.Key == "" {
			return nil, errors.New("both client certificate and key are required for mutual TLS")
		}
		pair, err := tls.X509KeyPair([]byte(cfg.Cert), []byte(cfg.Key))
		if err != nil {
			return nil, errors.Wrap(err, "failed to load web3signer client certificate")
		}
		tlsConfig.Certificates = []tls.Certificate{pair}
	}
	return tlsConfig, nil
}

func (c *Client) SetHttpClient(client *http.Client) {
	c.httpClient = client
}

type jsonRPCRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      uint64        `json:"id"`
}

type jsonRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *jsonRPCError) Error() string {
	return fmt.Sprintf("web3signer error %d: %s", e.Code, e.Message)
}

type jsonRPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *jsonRPCError   `json:"error"`
	ID      uint64          `json:"id"`
}

func (c *Client) call(ctx context.Context, method string, params []interface{}, result interface{}) error {
	if params == nil {
		params = []interface{}{}
	}
	body, err := json.Marshal(&jsonRPCRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      c.requestId.Add(1),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s request", method)
	}

	respBody, err := c.do(ctx, http.MethodPost, "/", bytes.NewReader(body), "application/json")
	if err != nil {
		return errors.Wrapf(err, "%s request failed", method)
	}

	var resp jsonRPCResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return errors.Wrapf(err, "failed to decode %s response", method)
	}
	if resp.Error != nil {
		return resp.Error
	}
	if err := json.Unmarshal(resp.Result, result); err != nil {
		return errors.Wrapf(err, "failed to decode %s result", method)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, path, strings.TrimSpace(string(respBody)))
	}
	return respBody, nil
}

func (c *Client) EthAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := c.call(ctx, "eth_accounts", nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *Client) EthSignTransaction(ctx context.Context, from string, transaction map[string]interface{}) (string, error) {
	tx := make(map[string]interface{}, len(transaction)+1)
	for k, v := range transaction {
		tx[k] = v
	}
	tx["from"] = from

	var signed string
	if err := c.call(ctx, "eth_signTransaction", []interface{}{tx}, &signed); err != nil {
		return "", err
	}
	c.logger.Sugar().Debugw("Web3Signer signed transaction", "from", from)
	return signed, nil
}

func (c *Client) EthSign(ctx context.Context, account string, data string) (string, error) {
	var signature string
	if err := c.call(ctx, "eth_sign", []interface{}{account, data}, &signature); err != nil {
		return "", err
	}
	return signature, nil
}

func (c *Client) ListPublicKeys(ctx context.Context) ([]string, error) {
	respBody, err := c.do(ctx, http.MethodGet, publicKeysPath, nil, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public keys")
	}
	var keys []string
	if err := json.Unmarshal(respBody, &keys); err != nil {
		return nil, errors.Wrap(err, "failed to decode public keys")
	}
	return keys, nil
}

func (c *Client) SignRaw(ctx context.Context, identifier string, data []byte) (string, error) {
	body, err := json.Marshal(map[string]string{"data": hexutil.Encode(data)})
	if err != nil {
		return "", err
	}
	respBody, err := c.do(ctx, http.MethodPost, signPathPrefix+identifier, bytes.NewReader(body), "application/json")
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign with %s", identifier)
	}
	return strings.TrimSpace(string(respBody)), nil
}

func (c *Client) ReloadKeys(ctx context.Context) error {
	if _, err := c.do(ctx, http.MethodPost, reloadPath, nil, ""); err != nil {
		return errors.Wrap(err, "failed to reload keys")
	}
	return nil
}

func (c *Client) ReloadKeysAndWaitForPublicKey(ctx context.Context, publicKey string) error {
	if err := c.ReloadKeys(ctx); err != nil {
		return err
	}

	want := strings.ToLower(strings.TrimPrefix(publicKey, "0x"))
	ticker := time.NewTicker(reloadPollInterval)
	defer ticker.Stop()

	for {
		keys, err := c.ListPublicKeys(ctx)
		if err != nil {
			c.logger.Sugar().Warnw("Failed to list public keys while waiting for reload", "error", err)
		}
		for _, k := range keys {
			if strings.ToLower(strings.TrimPrefix(k, "0x")) == want {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "public key %s not loaded", publicKey)
		case <-ticker.C:
		}
	}
}

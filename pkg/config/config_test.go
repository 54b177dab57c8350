package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_RelayerConfig_Validate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		cfg := NewDefaultRelayerConfig()
		require.NoError(t, cfg.Validate())
		assert.Equal(t, ChainName_EthereumMainnet, cfg.ChainName)
		require.NotNil(t, cfg.Contracts)
		assert.True(t, common.IsHexAddress(cfg.Contracts.RecoveryManager))
	})

	t.Run("overrides replace the address book entry", func(t *testing.T) {
		cfg := NewDefaultRelayerConfig()
		cfg.ChainID = ChainId_EthereumAnvil
		cfg.RecoveryManager = "0x0000000000000000000000000000000000000003"
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "0x0000000000000000000000000000000000000003", cfg.Contracts.RecoveryManager)

		// the shared address book is left untouched
		mainnet, err := GetContractAddressesForChainId(ChainId_EthereumMainnet)
		require.NoError(t, err)
		assert.NotEqual(t, cfg.Contracts.RecoveryManager, mainnet.RecoveryManager)
	})

	t.Run("errors are aggregated", func(t *testing.T) {
		cfg := NewDefaultRelayerConfig()
		cfg.RpcUrl = ""
		cfg.ChainID = 5
		cfg.Signer.Type = SignerType_PrivateKey
		cfg.Persistence.Type = PersistenceType_Badger

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rpcUrl")
		assert.Contains(t, err.Error(), "chainId")
		assert.Contains(t, err.Error(), "signer.privateKey")
		assert.Contains(t, err.Error(), "persistence.dataPath")
	})

	t.Run("unknown signer type", func(t *testing.T) {
		cfg := NewDefaultRelayerConfig()
		cfg.Signer.Type = "ledger"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "signer.type")
	})

	t.Run("web3signer needs a remote signer", func(t *testing.T) {
		cfg := NewDefaultRelayerConfig()
		cfg.Signer.Type = SignerType_Web3Signer
		require.Error(t, cfg.Validate())

		cfg.Signer.RemoteSigner = &RemoteSignerConfig{
			Url:         "http://localhost:9000",
			FromAddress: "0x00000000000000000000000000000000000000aa",
		}
		require.NoError(t, cfg.Validate())
	})

	t.Run("redis db range", func(t *testing.T) {
		cfg := NewDefaultRelayerConfig()
		cfg.Persistence = PersistenceConfig{
			Type:  PersistenceType_Redis,
			Redis: &RedisConfig{Address: "localhost:6379", DB: 16},
		}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "persistence.redis.db")
	})
}

func Test_RemoteSignerConfig_Validate(t *testing.T) {
	err := (&RemoteSignerConfig{}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fromAddress")
	assert.Contains(t, err.Error(), "publicKey")

	require.NoError(t, (&RemoteSignerConfig{FromAddress: "0x1", PublicKey: "0x2"}).Validate())
}

func Test_GetContractAddressesForChainId(t *testing.T) {
	_, err := GetContractAddressesForChainId(ChainId(5))
	require.Error(t, err)

	for _, id := range GetSupportedChainIDs() {
		addrs, err := GetContractAddressesForChainId(id)
		require.NoError(t, err)
		assert.True(t, common.IsHexAddress(addrs.ENSRegistry))
	}
}

func Test_GetExplorerTxURL(t *testing.T) {
	hash := common.HexToHash("0x01")
	assert.Equal(t, "https://etherscan.io/tx/"+hash.Hex(), GetExplorerTxURL(ChainId_EthereumMainnet, hash))
	assert.Empty(t, GetExplorerTxURL(ChainId_EthereumAnvil, hash))
}

func Test_LoadConfigFile(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := LoadConfigFile("")
		require.NoError(t, err)
		assert.Equal(t, DefaultRpcUrl, cfg.RpcUrl)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "relayer.toml")
		contents := `
rpc_url = "http://10.0.0.1:8545"
chain_id = 31337
recovery_manager = "0x0000000000000000000000000000000000000003"

[signer]
type = "web3signer"

[signer.remote_signer]
url = "http://localhost:9000"
from_address = "0x00000000000000000000000000000000000000aa"

[persistence]
type = "badger"
data_path = "/tmp/relayer"

[server]
listen_address = ":9090"

[log]
debug = true
`
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

		cfg, err := LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "http://10.0.0.1:8545", cfg.RpcUrl)
		assert.Equal(t, ChainId_EthereumAnvil, cfg.ChainID)
		assert.Equal(t, SignerType_Web3Signer, cfg.Signer.Type)
		require.NotNil(t, cfg.Signer.RemoteSigner)
		assert.Equal(t, "http://localhost:9000", cfg.Signer.RemoteSigner.Url)
		assert.Equal(t, PersistenceType_Badger, cfg.Persistence.Type)
		assert.Equal(t, ":9090", cfg.Server.ListenAddress)
		assert.True(t, cfg.Log.Debug)
		assert.Equal(t, uint64(DefaultLogScanChunkSize), cfg.LogScanChunkSize)

		require.NoError(t, cfg.Validate())
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "relayer.toml")
		require.NoError(t, os.WriteFile(path, []byte(`not_a_field = 1`), 0o600))
		_, err := LoadConfigFile(path)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
		require.Error(t, err)
	})
}

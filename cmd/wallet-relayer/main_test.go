package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// captureConfig runs the app with a probe command that records the loaded config
func captureConfig(t *testing.T, args ...string) (*config.RelayerConfig, error) {
	t.Helper()
	var got *config.RelayerConfig
	app := newApp()
	app.Writer = &bytes.Buffer{}
	app.Commands = append(app.Commands, &cli.Command{
		Name: "probe",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			got = cfg
			return err
		},
	})
	err := app.Run(append(append([]string{"wallet-relayer"}, args...), "probe"))
	return got, err
}

// commandPaths lists the argument path to every command and subcommand of the app
func commandPaths(prefix []string, commands []*cli.Command) [][]string {
	var paths [][]string
	for _, cmd := range commands {
		path := append(append([]string{}, prefix...), cmd.Name)
		paths = append(paths, path)
		paths = append(paths, commandPaths(path, cmd.Subcommands)...)
	}
	return paths
}

func Test_Help(t *testing.T) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out

	require.NoError(t, app.Run([]string{"wallet-relayer", "--help"}))
	assert.Contains(t, out.String(), "wallet-relayer")
	assert.Contains(t, out.String(), "--verbose")
	assert.Contains(t, out.String(), "recovery")

	for _, path := range commandPaths(nil, newApp().Commands) {
		t.Run(strings.Join(path, " "), func(t *testing.T) {
			var out bytes.Buffer
			app := newApp()
			app.Writer = &out

			args := append(append([]string{"wallet-relayer"}, path...), "--help")
			require.NoError(t, app.Run(args))
			assert.Contains(t, out.String(), path[len(path)-1])
		})
	}
}

func Test_Version(t *testing.T) {
	for _, flag := range []string{"--version", "-v"} {
		var out bytes.Buffer
		app := newApp()
		app.Writer = &out

		require.NoError(t, app.Run([]string{"wallet-relayer", flag}))
		assert.Contains(t, out.String(), "1.0.0")
	}
}

func Test_LoadConfig_Defaults(t *testing.T) {
	cfg, err := captureConfig(t)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultRpcUrl, cfg.RpcUrl)
	assert.Equal(t, config.SignerType_Node, cfg.Signer.Type)
	assert.Equal(t, config.PersistenceType_Memory, cfg.Persistence.Type)
	assert.Equal(t, "0xdfa1468D07Fc86840A6EB53E0e65CEBDE81D1af9", cfg.Contracts.RecoveryManager)
}

func Test_LoadConfig_FlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "relayer.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
rpc_url = "http://file:8545"
chain_id = 1

[signer]
type = "private-key"
private_key = "0x0123456789012345678901234567890123456789012345678901234567890123"

[persistence]
type = "badger"
data_path = "/tmp/from-file"
`), 0o600))

	cfg, err := captureConfig(t,
		"--config", path,
		"--rpc-url", "http://flag:8545",
		"--persistence", "leveldb",
		"--data-path", dir,
		"--lock-manager", "0x00000000000000000000000000000000000000aa",
		"--verbose",
	)
	require.NoError(t, err)

	assert.Equal(t, "http://flag:8545", cfg.RpcUrl)
	assert.Equal(t, config.SignerType_PrivateKey, cfg.Signer.Type)
	assert.Equal(t, config.PersistenceType_LevelDB, cfg.Persistence.Type)
	assert.Equal(t, dir, cfg.Persistence.DataPath)
	assert.Equal(t, "0x00000000000000000000000000000000000000aa", cfg.Contracts.LockManager)
	assert.True(t, cfg.Log.Debug)
}

func Test_LoadConfig_Web3SignerFlags(t *testing.T) {
	cfg, err := captureConfig(t,
		"--signer", "web3signer",
		"--web3signer-url", "http://localhost:9000",
		"--from-address", "0x7BAf9d6D4b347ae8f9a4826315d904DE9e4b8FD6",
	)
	require.NoError(t, err)
	require.NotNil(t, cfg.Signer.RemoteSigner)
	assert.Equal(t, "http://localhost:9000", cfg.Signer.RemoteSigner.Url)
}

func Test_LoadConfig_Invalid(t *testing.T) {
	_, err := captureConfig(t, "--signer", "ledger", "--persistence", "badger")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "signer.type")
	assert.Contains(t, err.Error(), "persistence.dataPath")
}

func Test_RelaysLs_EmptyJournal(t *testing.T) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out

	err := app.Run([]string{"wallet-relayer", "--persistence", "leveldb", "--data-path", t.TempDir(), "relays", "ls"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Relays (0)")
}

func Test_LockAbortsWithoutConfirmation(t *testing.T) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.Reader = strings.NewReader("n\n")

	err := app.Run([]string{"wallet-relayer", "lock", "0x0000000000000000000000000000000000000001"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Are you sure you want to lock")
	assert.Contains(t, out.String(), "Nothing was relayed")
}

func Test_ParseToken(t *testing.T) {
	tok, err := parseToken("")
	require.NoError(t, err)
	assert.Equal(t, "ETH", tok.Symbol)

	tok, err = parseToken("dai")
	require.NoError(t, err)
	assert.Equal(t, "DAI", tok.Symbol)

	tok, err = parseToken("0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599")
	require.NoError(t, err)
	assert.Equal(t, "WBTC", tok.Symbol)

	_, err = parseToken("0x00000000000000000000000000000000000000ff")
	assert.Error(t, err)

	_, err = parseToken("DOGE")
	assert.Error(t, err)
}

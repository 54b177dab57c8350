package config

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Environment variable names for relayer configuration
const (
	EnvRelayerConfigFile      = "RELAYER_CONFIG"
	EnvRelayerRPCURL          = "RELAYER_RPC_URL"
	EnvRelayerChainID         = "RELAYER_CHAIN_ID"
	EnvRelayerSigner          = "RELAYER_SIGNER"
	EnvRelayerPrivateKey      = "RELAYER_PRIVATE_KEY"
	EnvRelayerKMSKeyID        = "RELAYER_KMS_KEY_ID"
	EnvRelayerAWSRegion       = "RELAYER_AWS_REGION"
	EnvRelayerWeb3SignerURL   = "RELAYER_WEB3SIGNER_URL"
	EnvRelayerFromAddress     = "RELAYER_FROM_ADDRESS"
	EnvRelayerPersistence     = "RELAYER_PERSISTENCE"
	EnvRelayerDataPath        = "RELAYER_DATA_PATH"
	EnvRelayerRedisAddress    = "RELAYER_REDIS_ADDRESS"
	EnvRelayerListenAddress   = "RELAYER_LISTEN_ADDRESS"
	EnvRelayerAuthJWKSURL     = "RELAYER_AUTH_JWKS_URL"
	EnvRelayerVerbose         = "RELAYER_VERBOSE"
	EnvRelayerLogFile         = "RELAYER_LOG_FILE"
	EnvRelayerAssumeYes       = "RELAYER_ASSUME_YES"
	EnvRelayerRecoveryManager = "RELAYER_RECOVERY_MANAGER"
	EnvRelayerLockManager     = "RELAYER_LOCK_MANAGER"
)

type ChainId uint

const (
	ChainId_EthereumMainnet ChainId = 1
	ChainId_EthereumSepolia ChainId = 11155111
	ChainId_EthereumAnvil   ChainId = 31337
)

type ChainName string

const (
	ChainName_EthereumMainnet ChainName = "mainnet"
	ChainName_EthereumSepolia ChainName = "sepolia"
	ChainName_EthereumAnvil   ChainName = "devnet"
)

var ChainIdToName = map[ChainId]ChainName{
	ChainId_EthereumMainnet: ChainName_EthereumMainnet,
	ChainId_EthereumSepolia: ChainName_EthereumSepolia,
	ChainId_EthereumAnvil:   ChainName_EthereumAnvil,
}
var ChainNameToId = map[ChainName]ChainId{
	ChainName_EthereumMainnet: ChainId_EthereumMainnet,
	ChainName_EthereumSepolia: ChainId_EthereumSepolia,
	ChainName_EthereumAnvil:   ChainId_EthereumAnvil,
}

func IsEthereum(chainId ChainId) bool {
	_, ok := ChainIdToName[chainId]
	return ok
}

// ContractAddresses is the set of wallet infrastructure contracts the relayer talks to on a chain.
type ContractAddresses struct {
	RecoveryManager string
	LockManager     string
	GuardianManager string
	ModuleManager   string
	ENSRegistry     string

	// WalletsStartBlock is the first block scanned when rebuilding a wallet's module list.
	WalletsStartBlock uint64
}

// ENS registry shared by mainnet and sepolia.
const ensRegistryAddress = "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"

var (
	ethereumMainnetContracts = &ContractAddresses{
		RecoveryManager:   "0xdfa1468D07Fc86840A6EB53E0e65CEBDE81D1af9",
		LockManager:       "0x0BC693480d447AB97AfF7aa215D1586f1868Cb01",
		GuardianManager:   "0xFF5A7299ff6f0fbAad9b38906b77d08c0FBdc9A7",
		ModuleManager:     "0x4DD68a6C27359E5640Fa6dCAF13631398C5613f1",
		ENSRegistry:       ensRegistryAddress,
		WalletsStartBlock: 7_000_000,
	}

	ethereumSepoliaContracts = &ContractAddresses{
		ENSRegistry: ensRegistryAddress,
	}

	// contracts is read-only after init; callers get copies.
	contracts = map[ChainId]*ContractAddresses{
		ChainId_EthereumMainnet: ethereumMainnetContracts,
		ChainId_EthereumSepolia: ethereumSepoliaContracts,
		ChainId_EthereumAnvil:   ethereumMainnetContracts, // fork of ethereum mainnet
	}

	explorerURLs = map[ChainId]string{
		ChainId_EthereumMainnet: "https://etherscan.io",
		ChainId_EthereumSepolia: "https://sepolia.etherscan.io",
	}
)

// GetContractAddressesForChainId returns a copy of the known contract addresses for the chain.
func GetContractAddressesForChainId(chainId ChainId) (*ContractAddresses, error) {
	c, ok := contracts[chainId]
	if !ok {
		return nil, fmt.Errorf("unsupported chain ID: %d", chainId)
	}
	cp := *c
	return &cp, nil
}

// GetExplorerTxURL returns a block explorer link for a transaction, or an empty string
// when the chain has no public explorer.
func GetExplorerTxURL(chainId ChainId, txHash common.Hash) string {
	base, ok := explorerURLs[chainId]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s/tx/%s", base, txHash.Hex())
}

// GetSupportedChainIDs returns all supported chain IDs
func GetSupportedChainIDs() []ChainId {
	return []ChainId{
		ChainId_EthereumMainnet,
		ChainId_EthereumSepolia,
		ChainId_EthereumAnvil,
	}
}

// GetSupportedChainIDsString returns supported chain IDs as strings for CLI help
func GetSupportedChainIDsString() string {
	return fmt.Sprintf("%d (mainnet), %d (sepolia), %d (anvil)",
		ChainId_EthereumMainnet, ChainId_EthereumSepolia, ChainId_EthereumAnvil)
}

type SignerType string

const (
	SignerType_Node       SignerType = "node"
	SignerType_PrivateKey SignerType = "private-key"
	SignerType_AWSKMS     SignerType = "aws-kms"
	SignerType_Web3Signer SignerType = "web3signer"
)

var supportedSignerTypes = []string{
	string(SignerType_Node),
	string(SignerType_PrivateKey),
	string(SignerType_AWSKMS),
	string(SignerType_Web3Signer),
}

type PersistenceType string

const (
	PersistenceType_Memory  PersistenceType = "memory"
	PersistenceType_Badger  PersistenceType = "badger"
	PersistenceType_LevelDB PersistenceType = "leveldb"
	PersistenceType_Redis   PersistenceType = "redis"
)

var supportedPersistenceTypes = []string{
	string(PersistenceType_Memory),
	string(PersistenceType_Badger),
	string(PersistenceType_LevelDB),
	string(PersistenceType_Redis),
}

type RemoteSignerConfig struct {
	Url         string `json:"url" yaml:"url" toml:"url"`
	CACert      string `json:"caCert" yaml:"caCert" toml:"ca_cert"`
	Cert        string `json:"cert" yaml:"cert" toml:"cert"`
	Key         string `json:"key" yaml:"key" toml:"key"`
	FromAddress string `json:"fromAddress" yaml:"fromAddress" toml:"from_address"`
	PublicKey   string `json:"publicKey" yaml:"publicKey" toml:"public_key"`
}

func (rsc *RemoteSignerConfig) Validate() error {
	var allErrors field.ErrorList
	if rsc.FromAddress == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("fromAddress"), "fromAddress is required"))
	}
	if rsc.PublicKey == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("publicKey"), "publicKey is required"))
	}
	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

type SignerConfig struct {
	Type SignerType `json:"type" toml:"type"`

	PrivateKey string `json:"privateKey,omitempty" toml:"private_key"`

	KMSKeyId  string `json:"kmsKeyId,omitempty" toml:"kms_key_id"`
	AWSRegion string `json:"awsRegion,omitempty" toml:"aws_region"`

	RemoteSigner *RemoteSignerConfig `json:"remoteSigner,omitempty" toml:"remote_signer"`
}

type RedisConfig struct {
	Address   string `json:"address" toml:"address"`
	Password  string `json:"password,omitempty" toml:"password"`
	DB        int    `json:"db" toml:"db"`
	KeyPrefix string `json:"keyPrefix,omitempty" toml:"key_prefix"`
}

type PersistenceConfig struct {
	Type     PersistenceType `json:"type" toml:"type"`
	DataPath string          `json:"dataPath,omitempty" toml:"data_path"`
	Redis    *RedisConfig    `json:"redis,omitempty" toml:"redis"`
}

type AuthConfig struct {
	JWKSURL                string `json:"jwksUrl,omitempty" toml:"jwks_url"`
	JWKSFile               string `json:"jwksFile,omitempty" toml:"jwks_file"`
	Issuer                 string `json:"issuer,omitempty" toml:"issuer"`
	Audience               string `json:"audience,omitempty" toml:"audience"`
	RefreshIntervalSeconds int    `json:"refreshIntervalSeconds,omitempty" toml:"refresh_interval_seconds"`
}

type ServerConfig struct {
	ListenAddress string      `json:"listenAddress" toml:"listen_address"`
	Auth          *AuthConfig `json:"auth,omitempty" toml:"auth"`
}

type LogConfig struct {
	Debug         bool   `json:"debug" toml:"debug"`
	File          string `json:"file,omitempty" toml:"file"`
	MaxAgeHours   int    `json:"maxAgeHours,omitempty" toml:"max_age_hours"`
	RotationHours int    `json:"rotationHours,omitempty" toml:"rotation_hours"`
}

// RelayerConfig represents the complete configuration for the relayer CLI and server
type RelayerConfig struct {
	RpcUrl  string  `json:"rpcUrl" toml:"rpc_url"`
	ChainID ChainId `json:"chainId" toml:"chain_id"`

	// Optional overrides of the per-chain contract address book
	RecoveryManager string `json:"recoveryManager,omitempty" toml:"recovery_manager"`
	LockManager     string `json:"lockManager,omitempty" toml:"lock_manager"`

	// LogScanChunkSize bounds the block range of a single eth_getLogs request
	LogScanChunkSize uint64 `json:"logScanChunkSize,omitempty" toml:"log_scan_chunk_size"`

	Signer      SignerConfig      `json:"signer" toml:"signer"`
	Persistence PersistenceConfig `json:"persistence" toml:"persistence"`
	Server      ServerConfig      `json:"server" toml:"server"`
	Log         LogConfig         `json:"log" toml:"log"`

	// Populated by Validate
	ChainName ChainName          `json:"chainName,omitempty" toml:"-"`
	Contracts *ContractAddresses `json:"contracts,omitempty" toml:"-"`
}

const (
	DefaultRpcUrl           = "http://localhost:8545"
	DefaultListenAddress    = ":8080"
	DefaultLogScanChunkSize = 100_000
)

// NewDefaultRelayerConfig returns a config that talks to a local node and signs with its first account
func NewDefaultRelayerConfig() *RelayerConfig {
	return &RelayerConfig{
		RpcUrl:           DefaultRpcUrl,
		ChainID:          ChainId_EthereumMainnet,
		LogScanChunkSize: DefaultLogScanChunkSize,
		Signer: SignerConfig{
			Type: SignerType_Node,
		},
		Persistence: PersistenceConfig{
			Type: PersistenceType_Memory,
		},
		Server: ServerConfig{
			ListenAddress: DefaultListenAddress,
		},
	}
}

// Validate checks the whole configuration and resolves the contract address book for the chain
func (c *RelayerConfig) Validate() error {
	var allErrors field.ErrorList

	if c.RpcUrl == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("rpcUrl"), "rpc url is required"))
	}

	chainName, ok := ChainIdToName[c.ChainID]
	if !ok {
		allErrors = append(allErrors, field.Invalid(field.NewPath("chainId"), c.ChainID,
			fmt.Sprintf("supported chain ids: %s", GetSupportedChainIDsString())))
	}

	for name, addr := range map[string]string{
		"recoveryManager": c.RecoveryManager,
		"lockManager":     c.LockManager,
	} {
		if addr != "" && !common.IsHexAddress(addr) {
			allErrors = append(allErrors, field.Invalid(field.NewPath(name), addr, "must be a hex address"))
		}
	}

	allErrors = append(allErrors, c.Signer.validate(field.NewPath("signer"))...)
	allErrors = append(allErrors, c.Persistence.validate(field.NewPath("persistence"))...)

	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}

	c.ChainName = chainName
	addrs, err := GetContractAddressesForChainId(c.ChainID)
	if err != nil {
		return err
	}
	if c.RecoveryManager != "" {
		addrs.RecoveryManager = c.RecoveryManager
	}
	if c.LockManager != "" {
		addrs.LockManager = c.LockManager
	}
	c.Contracts = addrs

	if c.LogScanChunkSize == 0 {
		c.LogScanChunkSize = DefaultLogScanChunkSize
	}
	return nil
}

func (s *SignerConfig) validate(path *field.Path) field.ErrorList {
	var allErrors field.ErrorList

	switch s.Type {
	case SignerType_Node:
	case SignerType_PrivateKey:
		if s.PrivateKey == "" {
			allErrors = append(allErrors, field.Required(path.Child("privateKey"), "private key is required for the private-key signer"))
		} else if len(strings.TrimPrefix(s.PrivateKey, "0x")) != 64 {
			allErrors = append(allErrors, field.Invalid(path.Child("privateKey"), "<redacted>", "private key must be 32 bytes (64 hex chars)"))
		}
	case SignerType_AWSKMS:
		if s.KMSKeyId == "" {
			allErrors = append(allErrors, field.Required(path.Child("kmsKeyId"), "kms key id is required for the aws-kms signer"))
		}
	case SignerType_Web3Signer:
		if s.RemoteSigner == nil {
			allErrors = append(allErrors, field.Required(path.Child("remoteSigner"), "remote signer config is required for the web3signer signer"))
			break
		}
		if s.RemoteSigner.Url == "" {
			allErrors = append(allErrors, field.Required(path.Child("remoteSigner", "url"), "url is required"))
		}
		if s.RemoteSigner.FromAddress == "" {
			allErrors = append(allErrors, field.Required(path.Child("remoteSigner", "fromAddress"), "fromAddress is required"))
		} else if !common.IsHexAddress(s.RemoteSigner.FromAddress) {
			allErrors = append(allErrors, field.Invalid(path.Child("remoteSigner", "fromAddress"), s.RemoteSigner.FromAddress, "must be a hex address"))
		}
	default:
		allErrors = append(allErrors, field.NotSupported(path.Child("type"), s.Type, supportedSignerTypes))
	}
	return allErrors
}

func (p *PersistenceConfig) validate(path *field.Path) field.ErrorList {
	var allErrors field.ErrorList

	switch p.Type {
	case PersistenceType_Memory:
	case PersistenceType_Badger, PersistenceType_LevelDB:
		if p.DataPath == "" {
			allErrors = append(allErrors, field.Required(path.Child("dataPath"), fmt.Sprintf("data path is required for %s persistence", p.Type)))
		}
	case PersistenceType_Redis:
		if p.Redis == nil || p.Redis.Address == "" {
			allErrors = append(allErrors, field.Required(path.Child("redis", "address"), "redis address is required"))
		} else if p.Redis.DB < 0 || p.Redis.DB > 15 {
			allErrors = append(allErrors, field.Invalid(path.Child("redis", "db"), p.Redis.DB, "must be between 0 and 15"))
		}
	default:
		allErrors = append(allErrors, field.NotSupported(path.Child("type"), p.Type, supportedPersistenceTypes))
	}
	return allErrors
}

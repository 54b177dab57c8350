package server

import (
	"time"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/config"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/modules"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence"
	"github.com/ethereum/go-ethereum/common"
)

// RestResp wraps every response body
type RestResp struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Kind    string      `json:"kind,omitempty"`
}

type RecoveryInitializeReq struct {
	Wallet   string `json:"wallet"`
	NewOwner string `json:"newOwner"`
}

// WalletReq is the body of every single-wallet operation. Wallet may be an address or ENS name.
type WalletReq struct {
	Wallet string `json:"wallet"`
}

type RelayResp struct {
	ID          string            `json:"id"`
	Operation   string            `json:"operation"`
	Module      string            `json:"module"`
	ModuleName  string            `json:"moduleName"`
	Wallet      string            `json:"wallet"`
	Args        map[string]string `json:"args,omitempty"`
	Nonce       string            `json:"nonce,omitempty"`
	Digest      string            `json:"digest,omitempty"`
	Signature   string            `json:"signature,omitempty"`
	TxHash      string            `json:"txHash,omitempty"`
	State       string            `json:"state"`
	Error       string            `json:"error,omitempty"`
	ExplorerURL string            `json:"explorerUrl,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type ModuleResp struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

type WalletResp struct {
	Address   string       `json:"address"`
	Owner     string       `json:"owner"`
	Guardians []string     `json:"guardians"`
	Modules   []ModuleResp `json:"modules"`
	Locked    bool         `json:"locked"`
}

type HealthResp struct {
	Status  string `json:"status"`
	Journal string `json:"journal"`
}

func toRelayResp(rec *persistence.RelayRecord, chainID config.ChainId) *RelayResp {
	resp := &RelayResp{
		ID:         rec.ID.String(),
		Operation:  string(rec.Operation),
		Module:     rec.Module.Hex(),
		ModuleName: modules.Name(rec.Module),
		Wallet:     rec.Wallet.Hex(),
		Args:       rec.Args,
		Nonce:      rec.Nonce,
		State:      string(rec.State),
		Error:      rec.Error,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
	if rec.Digest != (common.Hash{}) {
		resp.Digest = rec.Digest.Hex()
	}
	if len(rec.Signature) > 0 {
		resp.Signature = rec.Signature.String()
	}
	if rec.TxHash != (common.Hash{}) {
		resp.TxHash = rec.TxHash.Hex()
		resp.ExplorerURL = config.GetExplorerTxURL(chainID, rec.TxHash)
	}
	return resp
}

func toRelayResps(records []*persistence.RelayRecord, chainID config.ChainId) []*RelayResp {
	resps := make([]*RelayResp, 0, len(records))
	for _, rec := range records {
		resps = append(resps, toRelayResp(rec, chainID))
	}
	return resps
}

// Package relayService runs wallet operations through the module relayers and journals every
// submission so its on-chain outcome can be looked up later.
package relayService

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/contractCaller"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/relayer"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const DefaultPollInterval = 4 * time.Second

var (
	// ErrRelayNotFound is returned when a relay id is not in the journal.
	ErrRelayNotFound = errors.New("relay not found")

	// ErrModuleNotConfigured is returned for operations whose module has no address on the chain.
	ErrModuleNotConfigured = errors.New("module is not configured for this chain")
)

// RecoveryRelayer is implemented by recoveryManager.RecoveryManager.
type RecoveryRelayer interface {
	Address() common.Address
	Initialize(ctx context.Context, wallet, newOwner common.Address) (*relayer.Result, error)
	Cancel(ctx context.Context, wallet common.Address) (*relayer.Result, error)
	Finalize(ctx context.Context, wallet common.Address) (common.Hash, error)
}

// LockRelayer is implemented by lockManager.LockManager.
type LockRelayer interface {
	Address() common.Address
	Lock(ctx context.Context, wallet common.Address) (*relayer.Result, error)
	Unlock(ctx context.Context, wallet common.Address) (*relayer.Result, error)
}

// ReceiptReader looks up mined transactions.
type ReceiptReader interface {
	GetTransactionReceipt(ctx context.Context, txHash common.Hash) (*ethereumTypes.Receipt, error)
}

var _ ReceiptReader = (contractCaller.IContractCaller)(nil)

type ServiceConfig struct {
	// PollInterval is the minimum time between receipt lookups in WaitForFinality
	PollInterval time.Duration
}

type Service struct {
	recovery RecoveryRelayer
	lock     LockRelayer
	receipts ReceiptReader
	journal  persistence.IRelayJournal
	config   *ServiceConfig
	logger   *zap.Logger
}

func NewService(
	recovery RecoveryRelayer,
	lock LockRelayer,
	receipts ReceiptReader,
	journal persistence.IRelayJournal,
	cfg *ServiceConfig,
	logger *zap.Logger,
) *Service {
	if cfg == nil {
		cfg = &ServiceConfig{}
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	return &Service{
		recovery: recovery,
		lock:     lock,
		receipts: receipts,
		journal:  journal,
		config:   cfg,
		logger:   logger,
	}
}

// InitializeRecovery relays executeRecovery(wallet, newOwner).
//
// Every operation journals its outcome. On failure the returned record is the journaled Failed
// record and the error is the relay error, so callers can report both.
func (s *Service) InitializeRecovery(ctx context.Context, wallet, newOwner common.Address) (*persistence.RelayRecord, error) {
	if s.recovery == nil {
		return nil, errNotConfigured("recovery manager")
	}
	rec := persistence.NewRelayRecord(persistence.Operation_RecoveryInitialize, s.recovery.Address(), wallet)
	rec.Args["newOwner"] = newOwner.Hex()

	result, err := s.recovery.Initialize(ctx, wallet, newOwner)
	return s.journalResult(rec, result, err)
}

// CancelRecovery relays cancelRecovery(wallet).
func (s *Service) CancelRecovery(ctx context.Context, wallet common.Address) (*persistence.RelayRecord, error) {
	if s.recovery == nil {
		return nil, errNotConfigured("recovery manager")
	}
	rec := persistence.NewRelayRecord(persistence.Operation_RecoveryCancel, s.recovery.Address(), wallet)

	result, err := s.recovery.Cancel(ctx, wallet)
	return s.journalResult(rec, result, err)
}

// FinalizeRecovery sends finalizeRecovery(wallet) directly. The record carries no nonce, digest or
// signature.
func (s *Service) FinalizeRecovery(ctx context.Context, wallet common.Address) (*persistence.RelayRecord, error) {
	if s.recovery == nil {
		return nil, errNotConfigured("recovery manager")
	}
	rec := persistence.NewRelayRecord(persistence.Operation_RecoveryFinalize, s.recovery.Address(), wallet)

	txHash, err := s.recovery.Finalize(ctx, wallet)
	if err != nil {
		return s.journalFailure(rec, err)
	}
	rec.TxHash = txHash
	rec.State = persistence.RelayState_Submitted
	return s.save(rec)
}

// Lock relays lock(wallet).
func (s *Service) Lock(ctx context.Context, wallet common.Address) (*persistence.RelayRecord, error) {
	if s.lock == nil {
		return nil, errNotConfigured("lock manager")
	}
	rec := persistence.NewRelayRecord(persistence.Operation_Lock, s.lock.Address(), wallet)

	result, err := s.lock.Lock(ctx, wallet)
	return s.journalResult(rec, result, err)
}

// Unlock relays unlock(wallet).
func (s *Service) Unlock(ctx context.Context, wallet common.Address) (*persistence.RelayRecord, error) {
	if s.lock == nil {
		return nil, errNotConfigured("lock manager")
	}
	rec := persistence.NewRelayRecord(persistence.Operation_Unlock, s.lock.Address(), wallet)

	result, err := s.lock.Unlock(ctx, wallet)
	return s.journalResult(rec, result, err)
}

func (s *Service) journalResult(rec *persistence.RelayRecord, result *relayer.Result, relayErr error) (*persistence.RelayRecord, error) {
	if result != nil {
		if result.Call != nil && result.Call.Nonce != nil {
			rec.Nonce = result.Call.Nonce.Dec()
		}
		rec.Digest = result.Digest
		rec.Signature = result.Signature
		rec.TxHash = result.TxHash
	}
	if relayErr != nil {
		return s.journalFailure(rec, relayErr)
	}
	rec.State = persistence.RelayState_Submitted
	return s.save(rec)
}

func (s *Service) journalFailure(rec *persistence.RelayRecord, relayErr error) (*persistence.RelayRecord, error) {
	rec.State = persistence.RelayState_Failed
	rec.Error = relayErr.Error()
	if err := s.journal.SaveRelay(rec); err != nil {
		s.logger.Sugar().Errorw("Failed to journal failed relay",
			"id", rec.ID.String(),
			"relayError", relayErr,
			"error", err,
		)
	}
	return rec, relayErr
}

func (s *Service) save(rec *persistence.RelayRecord) (*persistence.RelayRecord, error) {
	if err := s.journal.SaveRelay(rec); err != nil {
		// The transaction is already out; report the hash even though the journal missed it.
		s.logger.Sugar().Errorw("Failed to journal submitted relay",
			"id", rec.ID.String(),
			"txHash", rec.TxHash.Hex(),
			"error", err,
		)
		return rec, fmt.Errorf("relay %s submitted as %s but not journaled: %w", rec.ID, rec.TxHash.Hex(), err)
	}
	s.logger.Sugar().Infow("Relay journaled",
		"id", rec.ID.String(),
		"operation", rec.Operation,
		"wallet", rec.Wallet.Hex(),
		"txHash", rec.TxHash.Hex(),
	)
	return rec, nil
}

// Get returns a journaled relay without touching the chain.
func (s *Service) Get(id uuid.UUID) (*persistence.RelayRecord, error) {
	rec, err := s.journal.LoadRelay(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: %s", ErrRelayNotFound, id)
	}
	return rec, nil
}

// Status refreshes a submitted relay from its receipt. Records in a final state are returned as
// they are; a submitted record whose transaction is not mined yet stays Submitted.
func (s *Service) Status(ctx context.Context, id uuid.UUID) (*persistence.RelayRecord, error) {
	rec, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if rec.State != persistence.RelayState_Submitted {
		return rec, nil
	}

	receipt, err := s.receipts.GetTransactionReceipt(ctx, rec.TxHash)
	if errors.Is(err, ethereum.NotFound) {
		return rec, nil
	}
	if err != nil {
		return nil, relayer.ChainQueryError("transaction receipt", err)
	}

	if receipt.Status == ethereumTypes.ReceiptStatusSuccessful {
		rec.State = persistence.RelayState_Confirmed
	} else {
		rec.State = persistence.RelayState_Reverted
	}
	rec.UpdatedAt = time.Now().UTC()
	if err := s.journal.SaveRelay(rec); err != nil {
		return nil, fmt.Errorf("failed to update relay %s: %w", rec.ID, err)
	}

	s.logger.Sugar().Infow("Relay reached final state",
		"id", rec.ID.String(),
		"state", rec.State,
		"block", receipt.BlockNumber,
	)
	return rec, nil
}

// WaitForFinality polls Status until the relay reaches a final state or ctx is done.
func (s *Service) WaitForFinality(ctx context.Context, id uuid.UUID) (*persistence.RelayRecord, error) {
	limiter := rate.NewLimiter(rate.Every(s.config.PollInterval), 1)
	for {
		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}
		rec, err := s.Status(ctx, id)
		if err != nil {
			return nil, err
		}
		if rec.State.IsFinal() {
			return rec, nil
		}
		s.logger.Sugar().Debugw("Relay not final yet", "id", id.String(), "txHash", rec.TxHash.Hex())
	}
}

func (s *Service) ListRelays() ([]*persistence.RelayRecord, error) {
	return s.journal.ListRelays()
}

func (s *Service) ListRelaysForWallet(wallet common.Address) ([]*persistence.RelayRecord, error) {
	return s.journal.ListRelaysForWallet(wallet)
}

func errNotConfigured(module string) error {
	return fmt.Errorf("%w: %s", ErrModuleNotConfigured, module)
}

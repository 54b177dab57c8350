// Package server exposes the relay service over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/auth"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/config"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/contractCaller"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RelayService is implemented by relayService.Service.
type RelayService interface {
	InitializeRecovery(ctx context.Context, wallet, newOwner common.Address) (*persistence.RelayRecord, error)
	CancelRecovery(ctx context.Context, wallet common.Address) (*persistence.RelayRecord, error)
	FinalizeRecovery(ctx context.Context, wallet common.Address) (*persistence.RelayRecord, error)
	Lock(ctx context.Context, wallet common.Address) (*persistence.RelayRecord, error)
	Unlock(ctx context.Context, wallet common.Address) (*persistence.RelayRecord, error)
	Status(ctx context.Context, id uuid.UUID) (*persistence.RelayRecord, error)
	ListRelaysForWallet(wallet common.Address) ([]*persistence.RelayRecord, error)
}

type HealthChecker interface {
	HealthCheck() error
}

type ServerConfig struct {
	ListenAddress string
	ChainID       config.ChainId
}

/*
Server serves the relayer API under /api/v1.

	POST /recovery/initialize  {wallet, newOwner}   relay executeRecovery
	POST /recovery/cancel      {wallet}             relay cancelRecovery
	POST /recovery/finalize    {wallet}             send finalizeRecovery
	POST /lock                 {wallet}             relay lock
	POST /unlock               {wallet}             relay unlock
	GET  /relays/{id}                               journaled relay, refreshed from its receipt
	GET  /wallets/{wallet}/relays                   relays journaled for a wallet
	GET  /wallets/{wallet}                          owner, guardians, modules and lock state
	GET  /health

POST routes need an "Authorization: Bearer <jwt>" header accepted by the configured verifier.
Wallet values may be hex addresses or ENS names.
*/
type Server struct {
	config     *ServerConfig
	service    RelayService
	caller     contractCaller.IContractCaller
	verifier   auth.Verifier
	health     HealthChecker
	httpServer *http.Server
	logger     *zap.Logger
}

func NewServer(
	cfg *ServerConfig,
	service RelayService,
	caller contractCaller.IContractCaller,
	verifier auth.Verifier,
	health HealthChecker,
	logger *zap.Logger,
) *Server {
	s := &Server{
		config:   cfg,
		service:  service,
		caller:   caller,
		verifier: verifier,
		health:   health,
		logger:   logger,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           s.setupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
		// covers signing and submission of a relay
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

// Start starts the HTTP server
func (s *Server) Start() error {
	go func() {
		s.logger.Sugar().Infow("Starting HTTP server", "address", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != http.ErrServerClosed {
			s.logger.Sugar().Errorw("HTTP server error", "error", err)
		}
	}()
	return nil
}

// Stop drains in-flight requests until ctx is done
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Sugar().Info("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// GetHandler returns the HTTP handler (for testing)
func (s *Server) GetHandler() http.Handler {
	return s.httpServer.Handler
}

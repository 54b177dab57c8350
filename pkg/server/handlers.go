package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/modules"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/relayService"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/relayer"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"
)

// max accepted request body
const maxBodyBytes = 1 << 16

func writeJSON(w http.ResponseWriter, status int, body RestResp) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, RestResp{Success: true, Data: data})
}

func (s *Server) writeError(w http.ResponseWriter, err error, data interface{}) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		s.logger.Sugar().Warnw("Request failed", "status", status, "error", err)
	}
	writeJSON(w, status, RestResp{Error: err.Error(), Kind: string(relayer.KindOf(err)), Data: data})
}

// statusForError maps relay error kinds onto HTTP statuses
func statusForError(err error) int {
	switch {
	case errors.Is(err, relayService.ErrRelayNotFound):
		return http.StatusNotFound
	case errors.Is(err, relayService.ErrModuleNotConfigured):
		return http.StatusNotImplemented
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	}

	switch relayer.KindOf(err) {
	case relayer.KindEncoding:
		return http.StatusBadRequest
	case relayer.KindAccountUnavailable:
		return http.StatusServiceUnavailable
	case relayer.KindChainQuery, relayer.KindSigning, relayer.KindSubmission:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

var errBadRequest = errors.New("bad request")

func badRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return badRequest("failed to parse request: %v", err)
	}
	return nil
}

// resolveWallet accepts a hex address or an ENS name
func (s *Server) resolveWallet(r *http.Request, input, field string) (common.Address, error) {
	if input == "" {
		return common.Address{}, badRequest("%s is required", field)
	}
	addr, err := s.caller.ResolveAddress(r.Context(), input)
	if err != nil {
		return common.Address{}, badRequest("cannot resolve %s %q: %v", field, input, err)
	}
	return addr, nil
}

type walletOperation func(r *http.Request, wallet common.Address) (*persistence.RelayRecord, error)

func (s *Server) handleWalletOperation(op walletOperation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req WalletReq
		if err := decodeBody(w, r, &req); err != nil {
			s.writeError(w, err, nil)
			return
		}
		wallet, err := s.resolveWallet(r, req.Wallet, "wallet")
		if err != nil {
			s.writeError(w, err, nil)
			return
		}
		rec, err := op(r, wallet)
		s.respondRelay(w, r, rec, err)
	}
}

// respondRelay writes the journaled record, including the failed record alongside a relay error
func (s *Server) respondRelay(w http.ResponseWriter, r *http.Request, rec *persistence.RelayRecord, err error) {
	if claims := claimsFromContext(r.Context()); claims != nil && rec != nil {
		s.logger.Sugar().Infow("Relay requested",
			"id", rec.ID.String(),
			"operation", rec.Operation,
			"subject", claims.Subject,
		)
	}
	if err != nil {
		var data interface{}
		if rec != nil {
			data = toRelayResp(rec, s.config.ChainID)
		}
		s.writeError(w, err, data)
		return
	}
	writeData(w, toRelayResp(rec, s.config.ChainID))
}

func (s *Server) handleRecoveryInitialize(w http.ResponseWriter, r *http.Request) {
	var req RecoveryInitializeReq
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, err, nil)
		return
	}
	wallet, err := s.resolveWallet(r, req.Wallet, "wallet")
	if err != nil {
		s.writeError(w, err, nil)
		return
	}
	newOwner, err := s.resolveWallet(r, req.NewOwner, "newOwner")
	if err != nil {
		s.writeError(w, err, nil)
		return
	}
	if newOwner == (common.Address{}) {
		s.writeError(w, badRequest("newOwner cannot be the zero address"), nil)
		return
	}

	rec, err := s.service.InitializeRecovery(r.Context(), wallet, newOwner)
	s.respondRelay(w, r, rec, err)
}

func (s *Server) handleRecoveryCancel(w http.ResponseWriter, r *http.Request) {
	s.handleWalletOperation(func(r *http.Request, wallet common.Address) (*persistence.RelayRecord, error) {
		return s.service.CancelRecovery(r.Context(), wallet)
	})(w, r)
}

func (s *Server) handleRecoveryFinalize(w http.ResponseWriter, r *http.Request) {
	s.handleWalletOperation(func(r *http.Request, wallet common.Address) (*persistence.RelayRecord, error) {
		return s.service.FinalizeRecovery(r.Context(), wallet)
	})(w, r)
}

func (s *Server) handleLock(w http.ResponseWriter, r *http.Request) {
	s.handleWalletOperation(func(r *http.Request, wallet common.Address) (*persistence.RelayRecord, error) {
		return s.service.Lock(r.Context(), wallet)
	})(w, r)
}

func (s *Server) handleUnlock(w http.ResponseWriter, r *http.Request) {
	s.handleWalletOperation(func(r *http.Request, wallet common.Address) (*persistence.RelayRecord, error) {
		return s.service.Unlock(r.Context(), wallet)
	})(w, r)
}

func (s *Server) handleGetRelay(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, badRequest("invalid relay id: %v", err), nil)
		return
	}

	rec, err := s.service.Status(r.Context(), id)
	if err != nil {
		s.writeError(w, err, nil)
		return
	}
	writeData(w, toRelayResp(rec, s.config.ChainID))
}

func (s *Server) handleGetWalletRelays(w http.ResponseWriter, r *http.Request) {
	wallet, err := s.resolveWallet(r, mux.Vars(r)["wallet"], "wallet")
	if err != nil {
		s.writeError(w, err, nil)
		return
	}

	records, err := s.service.ListRelaysForWallet(wallet)
	if err != nil {
		s.writeError(w, err, nil)
		return
	}
	writeData(w, toRelayResps(records, s.config.ChainID))
}

func (s *Server) handleGetWallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := s.resolveWallet(r, mux.Vars(r)["wallet"], "wallet")
	if err != nil {
		s.writeError(w, err, nil)
		return
	}

	var (
		owner     common.Address
		guardians []common.Address
		modList   []common.Address
		locked    bool
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		owner, err = s.caller.GetOwner(ctx, wallet)
		return err
	})
	g.Go(func() (err error) {
		guardians, err = s.caller.GetGuardians(ctx, wallet)
		return err
	})
	g.Go(func() (err error) {
		modList, err = s.caller.GetModules(ctx, wallet)
		return err
	})
	g.Go(func() (err error) {
		locked, err = s.caller.IsLocked(ctx, wallet)
		return err
	})
	if err := g.Wait(); err != nil {
		s.writeError(w, relayer.ChainQueryError("wallet state", err), nil)
		return
	}

	resp := &WalletResp{
		Address:   wallet.Hex(),
		Owner:     owner.Hex(),
		Guardians: make([]string, 0, len(guardians)),
		Modules:   make([]ModuleResp, 0, len(modList)),
		Locked:    locked,
	}
	for _, guardian := range guardians {
		resp.Guardians = append(resp.Guardians, guardian.Hex())
	}
	for _, module := range modList {
		resp.Modules = append(resp.Modules, ModuleResp{Address: module.Hex(), Name: modules.Name(module)})
	}
	writeData(w, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	resp := &HealthResp{Status: "ok", Journal: "ok"}
	if err := s.health.HealthCheck(); err != nil {
		resp.Status = "degraded"
		resp.Journal = err.Error()
		writeJSON(w, http.StatusServiceUnavailable, RestResp{Data: resp, Error: "relay journal unavailable"})
		return
	}
	writeData(w, resp)
}

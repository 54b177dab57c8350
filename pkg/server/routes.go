package server

import (
	"context"
	"net/http"
	"time"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/auth"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type contextKey string

const claimsContextKey contextKey = "claims"

func (s *Server) setupRouter() http.Handler {
	r := mux.NewRouter()

	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)

	apiRouter := r.PathPrefix("/api/v1").Subrouter()

	apiRouter.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	apiRouter.HandleFunc("/relays/{id}", s.handleGetRelay).Methods(http.MethodGet)
	apiRouter.HandleFunc("/wallets/{wallet}/relays", s.handleGetWalletRelays).Methods(http.MethodGet)
	apiRouter.HandleFunc("/wallets/{wallet}", s.handleGetWallet).Methods(http.MethodGet)

	// Mutating routes
	relayRouter := apiRouter.NewRoute().Subrouter()
	relayRouter.Use(s.authMiddleware)
	relayRouter.HandleFunc("/recovery/initialize", s.handleRecoveryInitialize).Methods(http.MethodPost)
	relayRouter.HandleFunc("/recovery/cancel", s.handleRecoveryCancel).Methods(http.MethodPost)
	relayRouter.HandleFunc("/recovery/finalize", s.handleRecoveryFinalize).Methods(http.MethodPost)
	relayRouter.HandleFunc("/lock", s.handleLock).Methods(http.MethodPost)
	relayRouter.HandleFunc("/unlock", s.handleUnlock).Methods(http.MethodPost)

	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info("Request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.logger.Error("API panic recovered", zap.Any("panic", err), zap.String("path", r.URL.Path))
				writeJSON(w, http.StatusInternalServerError, RestResp{Error: "internal server error"})
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.BearerToken(r)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, RestResp{Error: err.Error()})
			return
		}

		claims, err := s.verifier.Verify(r.Context(), token)
		if err != nil {
			s.logger.Sugar().Warnw("Rejected bearer token", "path", r.URL.Path, "error", err)
			writeJSON(w, http.StatusUnauthorized, RestResp{Error: "invalid bearer token"})
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// claimsFromContext returns the verified token claims of an authenticated request
func claimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*auth.Claims)
	return claims
}

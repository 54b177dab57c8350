// Package auth verifies the bearer tokens that guard the relayer's mutating HTTP routes.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/config"
	"github.com/lestrrat-go/httprc/v3"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jws"
	"github.com/lestrrat-go/jwx/v3/jwt"
	"go.uber.org/zap"
)

const (
	DefaultRefreshInterval = 15 * time.Minute

	// allowed clock drift between the token issuer and the relayer
	acceptableSkew = 30 * time.Second
)

var ErrMissingBearerToken = errors.New("missing bearer token")

// Claims is the subset of a verified token the relayer logs and records.
type Claims struct {
	Subject   string
	Issuer    string
	Audience  []string
	ExpiresAt time.Time
}

type Verifier interface {
	Verify(ctx context.Context, tokenString string) (*Claims, error)
}

// JWTVerifier checks token signatures against a JWK set and validates the standard time claims,
// plus issuer and audience when configured.
type JWTVerifier struct {
	keySet   jwk.Set
	issuer   string
	audience string
	logger   *zap.Logger
}

var _ Verifier = (*JWTVerifier)(nil)

// NewVerifier builds a verifier from the auth config: a JWKS URL is fetched and kept fresh in the
// background, a JWKS file is read once.
func NewVerifier(ctx context.Context, cfg *config.AuthConfig, logger *zap.Logger) (*JWTVerifier, error) {
	if cfg == nil {
		return nil, fmt.Errorf("auth config is required")
	}

	var (
		keySet jwk.Set
		err    error
	)
	switch {
	case cfg.JWKSURL != "":
		refresh := DefaultRefreshInterval
		if cfg.RefreshIntervalSeconds > 0 {
			refresh = time.Duration(cfg.RefreshIntervalSeconds) * time.Second
		}
		logger.Sugar().Debugw("Creating JWK cache", "jwk_url", cfg.JWKSURL, "refresh_interval", refresh)
		keySet, err = NewJWKCache(ctx, cfg.JWKSURL, refresh)
	case cfg.JWKSFile != "":
		keySet, err = ReadJWKSFile(cfg.JWKSFile)
	default:
		return nil, fmt.Errorf("auth requires either a JWKS url or a JWKS file")
	}
	if err != nil {
		return nil, err
	}

	logger.Sugar().Infow("Token verifier initialized",
		"keys", keySet.Len(),
		"issuer", cfg.Issuer,
		"audience", cfg.Audience,
	)
	return NewStaticVerifier(keySet, cfg.Issuer, cfg.Audience, logger), nil
}

// NewStaticVerifier verifies against a fixed key set. Empty issuer or audience are not checked.
func NewStaticVerifier(keySet jwk.Set, issuer, audience string, logger *zap.Logger) *JWTVerifier {
	return &JWTVerifier{
		keySet:   keySet,
		issuer:   issuer,
		audience: audience,
		logger:   logger,
	}
}

func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (*Claims, error) {
	filteredKeySet, err := getFilteredKeySetForToken(tokenString, v.keySet, v.logger)
	if err != nil {
		return nil, err
	}

	opts := []jwt.ParseOption{
		jwt.WithKeySet(filteredKeySet),
		jwt.WithValidate(true),
		jwt.WithAcceptableSkew(acceptableSkew),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	token, err := jwt.Parse([]byte(tokenString), opts...)
	if err != nil {
		return nil, fmt.Errorf("token parsing/verification failed: %w", err)
	}

	claims := &Claims{}
	claims.Subject, _ = token.Subject()
	claims.Issuer, _ = token.Issuer()
	claims.Audience, _ = token.Audience()
	claims.ExpiresAt, _ = token.Expiration()
	return claims, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrMissingBearerToken
	}
	return strings.TrimSpace(token), nil
}

func NewJWKCache(ctx context.Context, jwkUrl string, refreshInterval time.Duration) (jwk.Set, error) {
	cache, err := jwk.NewCache(ctx, httprc.NewClient())
	if err != nil {
		return nil, fmt.Errorf("failed to create jwk cache: %w", err)
	}

	// register a constant refresh interval for this URL.
	err = cache.Register(ctx, jwkUrl, jwk.WithConstantInterval(refreshInterval))
	if err != nil {
		return nil, fmt.Errorf("failed to register jwk location: %w", err)
	}

	// fetch once on application startup
	_, err = cache.Refresh(ctx, jwkUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch on startup: %w", err)
	}

	// create the cached key set
	return cache.CachedSet(jwkUrl)
}

func ReadJWKSFile(path string) (jwk.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read JWKS file %s: %w", path, err)
	}
	set, err := jwk.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWKS file %s: %w", path, err)
	}
	return set, nil
}

// getFilteredKeySetForToken parses the token header and keeps only the keys whose algorithm
// matches the token's, so sets that reuse a key ID across algorithms still verify.
func getFilteredKeySetForToken(tokenString string, keySet jwk.Set, logger *zap.Logger) (jwk.Set, error) {
	msg, err := jws.Parse([]byte(tokenString))
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWS message: %w", err)
	}

	if len(msg.Signatures()) == 0 {
		return nil, fmt.Errorf("token has no signatures")
	}
	header := msg.Signatures()[0].ProtectedHeaders()

	tokenAlg, ok := header.Algorithm()
	if !ok {
		return nil, fmt.Errorf("token does not specify an algorithm")
	}
	keyID, ok := header.KeyID()
	if !ok || keyID == "" {
		return nil, fmt.Errorf("token does not specify a key ID")
	}
	logger.Debug("Token requirements", zap.String("kid", keyID), zap.String("algorithm", tokenAlg.String()))

	filteredKeySet := jwk.NewSet()
	for i := 0; i < keySet.Len(); i++ {
		key, ok := keySet.Key(i)
		if !ok {
			continue
		}
		if keyAlg, ok := key.Algorithm(); ok && keyAlg == tokenAlg {
			_ = filteredKeySet.AddKey(key)
		}
	}

	if filteredKeySet.Len() == 0 {
		return nil, fmt.Errorf("no keys found in JWKS matching algorithm %s", tokenAlg)
	}
	return filteredKeySet, nil
}

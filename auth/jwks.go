package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// JWKSVerifier validates asymmetric tokens against the provider's JWKS.
// Keys are cached and refreshed by keyfunc based on HTTP cache headers.
type JWKSVerifier struct {
	jwks   keyfunc.Keyfunc
	issuer string
	log    *zap.Logger
	cancel context.CancelFunc
}

func NewJWKSVerifier(jwksURL, issuer string, log *zap.Logger) (*JWKSVerifier, error) {
	if jwksURL == "" {
		return nil, errors.New("auth: JWKS URL cannot be empty")
	}

	ctx, cancel := context.WithCancel(context.Background())
	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("auth: failed to create JWKS client: %w", err)
	}

	log.Info("JWT verifier initialized", zap.String("jwks_url", jwksURL))

	return &JWKSVerifier{jwks: jwks, issuer: issuer, log: log, cancel: cancel}, nil
}

func (v *JWKSVerifier) VerifyToken(tokenString string) (string, error) {
	opts := []jwt.ParserOption{
		// RS256 and ES256 only, to prevent algorithm confusion
		jwt.WithValidMethods([]string{"RS256", "ES256"}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, v.jwks.Keyfunc, opts...)
	if err != nil || !token.Valid {
		v.log.Debug("token rejected", zap.Error(err))
		return "", ErrUnauthorized
	}

	if claims.Subject == "" {
		return "", ErrUnauthorized
	}

	return claims.Subject, nil
}

// Close stops the background JWKS refresh.
func (v *JWKSVerifier) Close() error {
	v.cancel()
	return nil
}

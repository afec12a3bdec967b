package auth

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/planovo/planovo-api/internal/config"
	"github.com/planovo/planovo-api/internal/platform/logger"
)

// clockSkew is the leeway applied to exp, nbf and iat.
const clockSkew = 2 * time.Minute

// clerkVerifier validates RS256 session tokens against the instance's
// public key.
type clerkVerifier struct {
	publicKey         *rsa.PublicKey
	authorizedParties []string
	timeFunc          func() time.Time // Injectable for testing
}

type clerkClaims struct {
	SessionID       string `json:"sid"`
	AuthorizedParty string `json:"azp"`
	jwt.RegisteredClaims
}

var _ SessionVerifier = (*clerkVerifier)(nil)

// NewClerkVerifier parses the PEM public key from cfg. An empty
// AuthorizedParties list accepts any azp.
func NewClerkVerifier(cfg config.AuthConfig) (SessionVerifier, error) {
	return newClerkVerifier(cfg, time.Now)
}

func newClerkVerifier(cfg config.AuthConfig, timeFunc func() time.Time) (*clerkVerifier, error) {
	if cfg.ClerkJWTPublicKey == "" {
		return nil, errors.New("clerk jwt public key is empty")
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.ClerkJWTPublicKey))
	if err != nil {
		return nil, fmt.Errorf("failed to parse clerk jwt public key: %w", err)
	}

	return &clerkVerifier{
		publicKey:         key,
		authorizedParties: cfg.AuthorizedParties,
		timeFunc:          timeFunc,
	}, nil
}

// VerifyToken implements SessionVerifier.
func (v *clerkVerifier) VerifyToken(ctx context.Context, tokenString string) (*Claims, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		return nil, ErrMissingToken
	}

	now := v.timeFunc()
	token, err := jwt.ParseWithClaims(
		tokenString,
		&clerkClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return v.publicKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Name}),
		jwt.WithLeeway(clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug("session token expired", "error", err)
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			log.Debug("session token not yet valid", "error", err)
			return nil, ErrTokenNotYetValid
		default:
			log.Debug("session token validation failed",
				"error", err,
				"error_type", fmt.Sprintf("%T", err))
			return nil, ErrInvalidToken
		}
	}

	claims, ok := token.Claims.(*clerkClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	if len(v.authorizedParties) > 0 && !slices.Contains(v.authorizedParties, claims.AuthorizedParty) {
		log.Warn("session token rejected: unauthorized party",
			"azp", claims.AuthorizedParty)
		return nil, ErrUnauthorizedParty
	}

	result := &Claims{
		Subject:         claims.Subject,
		SessionID:       claims.SessionID,
		AuthorizedParty: claims.AuthorizedParty,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}
	return result, nil
}

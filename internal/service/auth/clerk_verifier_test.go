package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/planovo/planovo-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func sign(t *testing.T, key *rsa.PrivateKey, claims clerkClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims() clerkClaims {
	return clerkClaims{
		SessionID:       "sess_123",
		AuthorizedParty: "https://planovo.vercel.app",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_2abc",
			IssuedAt:  jwt.NewNumericDate(fixedNow.Add(-time.Minute)),
			NotBefore: jwt.NewNumericDate(fixedNow.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(fixedNow.Add(time.Minute)),
		},
	}
}

func TestVerifyToken(t *testing.T) {
	t.Parallel()

	key, pubPEM := newKeyPair(t)
	otherKey, _ := newKeyPair(t)
	v, err := newClerkVerifier(config.AuthConfig{
		ClerkJWTPublicKey: pubPEM,
		AuthorizedParties: []string{"https://planovo.vercel.app", "http://localhost:3000"},
	}, func() time.Time { return fixedNow })
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("valid token", func(t *testing.T) {
		claims, err := v.VerifyToken(ctx, sign(t, key, validClaims()))
		require.NoError(t, err)
		assert.Equal(t, "user_2abc", claims.Subject)
		assert.Equal(t, "sess_123", claims.SessionID)
		assert.Equal(t, fixedNow.Add(time.Minute).Unix(), claims.ExpiresAt.Unix())
	})

	t.Run("expired within leeway is accepted", func(t *testing.T) {
		c := validClaims()
		c.ExpiresAt = jwt.NewNumericDate(fixedNow.Add(-time.Minute))
		_, err := v.VerifyToken(ctx, sign(t, key, c))
		assert.NoError(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		c := validClaims()
		c.ExpiresAt = jwt.NewNumericDate(fixedNow.Add(-10 * time.Minute))
		_, err := v.VerifyToken(ctx, sign(t, key, c))
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("not yet valid", func(t *testing.T) {
		c := validClaims()
		c.NotBefore = jwt.NewNumericDate(fixedNow.Add(10 * time.Minute))
		_, err := v.VerifyToken(ctx, sign(t, key, c))
		assert.ErrorIs(t, err, ErrTokenNotYetValid)
	})

	t.Run("wrong key", func(t *testing.T) {
		_, err := v.VerifyToken(ctx, sign(t, otherKey, validClaims()))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("HMAC token", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims()).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = v.VerifyToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unauthorized party", func(t *testing.T) {
		c := validClaims()
		c.AuthorizedParty = "https://evil.example"
		_, err := v.VerifyToken(ctx, sign(t, key, c))
		assert.ErrorIs(t, err, ErrUnauthorizedParty)
	})

	t.Run("missing subject", func(t *testing.T) {
		c := validClaims()
		c.Subject = ""
		_, err := v.VerifyToken(ctx, sign(t, key, c))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := v.VerifyToken(ctx, "")
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := v.VerifyToken(ctx, "not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewClerkVerifier(t *testing.T) {
	t.Parallel()

	_, err := NewClerkVerifier(config.AuthConfig{})
	assert.Error(t, err)

	_, err = NewClerkVerifier(config.AuthConfig{ClerkJWTPublicKey: "not a pem"})
	assert.Error(t, err)

	_, pubPEM := newKeyPair(t)
	v, err := NewClerkVerifier(config.AuthConfig{ClerkJWTPublicKey: pubPEM})
	require.NoError(t, err)
	assert.NotNil(t, v)
}

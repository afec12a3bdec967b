// Package auth verifies Clerk session tokens.
package auth

import (
	"context"
	"time"
)

// SessionVerifier validates a session token presented by the frontend.
type SessionVerifier interface {
	// VerifyToken checks signature, time claims and authorized party, and
	// returns the claims of a valid token.
	VerifyToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims are the parts of a Clerk session token the API uses.
type Claims struct {
	// Subject is the Clerk user ID (user_...).
	Subject string `json:"sub"`

	// SessionID is the Clerk session (sess_...).
	SessionID string `json:"sid,omitempty"`

	// AuthorizedParty is the origin that requested the token.
	AuthorizedParty string `json:"azp,omitempty"`

	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
}

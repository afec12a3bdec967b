package auth

import "context"

// MockSessionVerifier is a SessionVerifier for tests in other packages.
type MockSessionVerifier struct {
	VerifyTokenFunc func(ctx context.Context, tokenString string) (*Claims, error)

	// Claims and Err are returned when VerifyTokenFunc is nil.
	Claims *Claims
	Err    error
}

// VerifyToken implements SessionVerifier.
func (m *MockSessionVerifier) VerifyToken(ctx context.Context, tokenString string) (*Claims, error) {
	if m.VerifyTokenFunc != nil {
		return m.VerifyTokenFunc(ctx, tokenString)
	}
	return m.Claims, m.Err
}

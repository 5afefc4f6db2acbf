package auth

import (
	"context"
	"time"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest, asOf time.Time) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, req RefreshTokenRequest) error
	// Verify echoes the authenticated caller.
	Verify(ctx context.Context) (UserSnapshot, error)
}

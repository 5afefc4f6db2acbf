package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/timerod/timerod-backend-go/internal/domain/auth"
	"github.com/timerod/timerod-backend-go/internal/domain/user"
	"github.com/timerod/timerod-backend-go/internal/pkg/database"
	"github.com/timerod/timerod-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	tx database.Transactor
	user.UserRepository
	jwt.Service
	auth.RefreshTokenRepository
}

func NewAuthService(tx database.Transactor, userRepository user.UserRepository, jwtService jwt.Service, refreshTokenRepository auth.RefreshTokenRepository) auth.AuthService {
	return &AuthServiceImpl{
		tx:                     tx,
		UserRepository:         userRepository,
		Service:                jwtService,
		RefreshTokenRepository: refreshTokenRepository,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionTrackReq auth.SessionTrackingRequest, asOf time.Time) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	legacy, err := checkPassword(userData.PasswordHash, loginReq.Password)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if !userData.Active {
		return auth.TokenResponse{}, auth.ErrUserInactive
	}

	principal := auth.Principal{
		UserID:     userData.ID,
		Email:      userData.Email,
		FullName:   userData.FullName,
		CompanyID:  userData.CompanyID,
		EmployeeID: userData.EmployeeID,
		Role:       userData.Role,
	}

	var tokenResponse auth.TokenResponse
	err = a.tx.WithinTx(ctx, func(txCtx context.Context) error {
		if legacy {
			hash, err := bcrypt.GenerateFromPassword([]byte(loginReq.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			if err := a.UpdatePassword(txCtx, userData.ID, string(hash)); err != nil {
				return err
			}
			slog.Info("Upgraded legacy password hash", "user_id", userData.ID)
		}

		if err := a.TouchLastAccess(txCtx, userData.ID, asOf); err != nil {
			return err
		}

		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.GenerateAccessToken(principal)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionTrackReq); err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	tokenResponse.User = auth.SnapshotOf(principal)
	return tokenResponse, nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	userID, err := a.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}

	revoked, err := a.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}
	if revoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	// Reload so role or company changes since login take effect.
	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AccessTokenResponse{}, auth.ErrInvalidToken
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if !userData.Active {
		return auth.AccessTokenResponse{}, auth.ErrUserInactive
	}

	var resp auth.AccessTokenResponse
	resp.AccessToken, resp.AccessTokenExpiresIn, err = a.GenerateAccessToken(auth.Principal{
		UserID:     userData.ID,
		Email:      userData.Email,
		FullName:   userData.FullName,
		CompanyID:  userData.CompanyID,
		EmployeeID: userData.EmployeeID,
		Role:       userData.Role,
	})
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	return resp, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, req auth.RefreshTokenRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return a.RevokeRefreshToken(ctx, req.RefreshToken)
}

// Verify implements auth.AuthService.
func (a *AuthServiceImpl) Verify(ctx context.Context) (auth.UserSnapshot, error) {
	p, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		return auth.UserSnapshot{}, auth.ErrUnauthenticated
	}
	return auth.SnapshotOf(p), nil
}

// checkPassword reports whether the stored hash is a legacy plain-text value
// that matched and needs upgrading.
func checkPassword(stored, password string) (legacy bool, err error) {
	if stored == "" {
		return false, auth.ErrInvalidCredentials
	}
	if _, costErr := bcrypt.Cost([]byte(stored)); costErr == nil {
		if bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) != nil {
			return false, auth.ErrInvalidCredentials
		}
		return false, nil
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return false, auth.ErrInvalidCredentials
	}
	return true, nil
}

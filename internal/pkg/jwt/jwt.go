package jwt

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/timerod/timerod-backend-go/internal/domain/auth"
	"github.com/timerod/timerod-backend-go/internal/domain/user"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type Service interface {
	GenerateAccessToken(p auth.Principal) (token string, expiresAt int64, err error)
	GenerateRefreshToken(userID int64) (token string, expiresAt int64, err error)
	// ParseRefreshToken verifies signature, expiry and type, returning the user id.
	ParseRefreshToken(token string) (userID int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
}

type JWTService struct {
	accessTokenExpiration  time.Duration
	refreshTokenExpiration time.Duration
	tokenAuth              *jwtauth.JWTAuth
	now                    func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string) (Service, error) {
	access, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil {
		return nil, fmt.Errorf("access token expiration: %w", err)
	}
	refresh, err := time.ParseDuration(refreshTokenExpirationTime)
	if err != nil {
		return nil, fmt.Errorf("refresh token expiration: %w", err)
	}
	return &JWTService{
		accessTokenExpiration:  access,
		refreshTokenExpiration: refresh,
		tokenAuth:              jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                    time.Now,
	}, nil
}

func (j *JWTService) GenerateAccessToken(p auth.Principal) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.accessTokenExpiration).Unix()

	claims := map[string]interface{}{
		"jti":         uuid.NewString(),
		"user_id":     p.UserID,
		"email":       p.Email,
		"full_name":   p.FullName,
		"company_id":  p.CompanyID,
		"employee_id": nil,
		"role":        string(p.Role),
		"type":        TokenTypeAccess,
		"exp":         expiresAt,
	}
	if p.EmployeeID != nil {
		claims["employee_id"] = *p.EmployeeID
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(userID int64) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.refreshTokenExpiration).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"jti":     uuid.NewString(),
		"user_id": userID,
		"exp":     expiresAt,
		"type":    TokenTypeRefresh,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) ParseRefreshToken(tokenString string) (int64, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}
	if tokenType, _ := token.Get("type"); tokenType != TokenTypeRefresh {
		return 0, auth.ErrInvalidToken
	}
	v, _ := token.Get("user_id")
	userID, ok := toInt64(v)
	if !ok {
		return 0, auth.ErrInvalidToken
	}
	return userID, nil
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}

// PrincipalFromContext decodes the access token placed in ctx by
// jwtauth.Verifier. Refresh tokens are rejected.
func PrincipalFromContext(ctx context.Context) (auth.Principal, error) {
	token, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.Principal{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}
	if token == nil {
		return auth.Principal{}, auth.ErrUnauthenticated
	}
	return PrincipalFromClaims(claims)
}

func PrincipalFromClaims(claims map[string]interface{}) (auth.Principal, error) {
	if tokenType, _ := claims["type"].(string); tokenType != TokenTypeAccess {
		return auth.Principal{}, auth.ErrInvalidToken
	}

	userID, ok := toInt64(claims["user_id"])
	if !ok {
		return auth.Principal{}, auth.ErrInvalidToken
	}
	companyID, _ := toInt64(claims["company_id"])
	roleStr, _ := claims["role"].(string)
	role, err := user.ParseRole(roleStr)
	if err != nil {
		return auth.Principal{}, auth.ErrInvalidToken
	}

	p := auth.Principal{
		UserID:    userID,
		CompanyID: companyID,
		Role:      role,
	}
	p.Email, _ = claims["email"].(string)
	p.FullName, _ = claims["full_name"].(string)
	if employeeID, ok := toInt64(claims["employee_id"]); ok {
		p.EmployeeID = &employeeID
	}
	return p, nil
}

// Numeric claims come back from JSON as float64.
func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	}
	return 0, false
}

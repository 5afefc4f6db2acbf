package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timerod/timerod-backend-go/internal/domain/auth"
	"github.com/timerod/timerod-backend-go/internal/domain/user"
	"github.com/timerod/timerod-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepository struct {
	user.UserRepository
	users map[int64]user.User
}

func (f *fakeUserRepository) GetByID(_ context.Context, id int64) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepository) UpdatePassword(_ context.Context, id int64, hash string) error {
	u := f.users[id]
	u.PasswordHash = hash
	f.users[id] = u
	return nil
}

func (f *fakeUserRepository) TouchLastAccess(_ context.Context, id int64, at time.Time) error {
	u := f.users[id]
	u.LastAccessAt = &at
	f.users[id] = u
	return nil
}

type fakeTokenRepository struct {
	stored  map[string]int64
	revoked map[string]bool
}

func (f *fakeTokenRepository) CreateRefreshToken(_ context.Context, userID int64, token string, _ int64, _ auth.SessionTrackingRequest) error {
	f.stored[token] = userID
	return nil
}

func (f *fakeTokenRepository) IsRefreshTokenRevoked(_ context.Context, token string) (bool, error) {
	if _, ok := f.stored[token]; !ok {
		return true, nil
	}
	return f.revoked[token], nil
}

func (f *fakeTokenRepository) RevokeRefreshToken(_ context.Context, token string) error {
	f.revoked[token] = true
	return nil
}

func (f *fakeTokenRepository) DeleteStale(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newService(t *testing.T) (auth.AuthService, *fakeUserRepository, *fakeTokenRepository) {
	t.Helper()
	jwtService, err := jwt.NewJWTService(testSecret, "1h", "24h")
	require.NoError(t, err)

	employeeID := int64(50)
	users := &fakeUserRepository{users: map[int64]user.User{
		1: {ID: 1, CompanyID: 10, Email: "ana@acme.mx", PasswordHash: hashed(t, "password123"), FullName: "Ana López", Role: user.RoleEmployee, Active: true, EmployeeID: &employeeID},
		2: {ID: 2, CompanyID: 10, Email: "legacy@acme.mx", PasswordHash: "viejaclave", FullName: "Legacy", Role: user.RoleHR, Active: true},
		3: {ID: 3, CompanyID: 10, Email: "baja@acme.mx", PasswordHash: hashed(t, "password123"), FullName: "Baja", Role: user.RoleHR, Active: false},
	}}
	tokens := &fakeTokenRepository{stored: map[string]int64{}, revoked: map[string]bool{}}
	return NewAuthService(passthroughTx{}, users, jwtService, tokens), users, tokens
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, users, tokens := newService(t)
	asOf := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "ANA@Acme.mx", Password: "password123"}, auth.SessionTrackingRequest{}, asOf)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, int64(1), resp.User.ID)
	assert.Equal(t, user.RoleEmployee, resp.User.Role)
	require.NotNil(t, resp.User.EmployeeID)
	assert.Equal(t, int64(50), *resp.User.EmployeeID)
	assert.Contains(t, tokens.stored, resp.RefreshToken)

	require.NotNil(t, users.users[1].LastAccessAt)
	assert.True(t, users.users[1].LastAccessAt.Equal(asOf))
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	tests := []struct {
		name string
		req  auth.LoginRequest
		want error
	}{
		{"unknown email", auth.LoginRequest{Email: "nadie@acme.mx", Password: "password123"}, auth.ErrInvalidCredentials},
		{"wrong password", auth.LoginRequest{Email: "ana@acme.mx", Password: "otra"}, auth.ErrInvalidCredentials},
		{"wrong legacy password", auth.LoginRequest{Email: "legacy@acme.mx", Password: "otra"}, auth.ErrInvalidCredentials},
		{"inactive user", auth.LoginRequest{Email: "baja@acme.mx", Password: "password123"}, auth.ErrUserInactive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.req, auth.SessionTrackingRequest{}, time.Now())
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "no-es-correo"}, auth.SessionTrackingRequest{}, time.Now())
	assert.Error(t, err)
}

func TestLoginUpgradesLegacyPassword(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newService(t)

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "legacy@acme.mx", Password: "viejaclave"}, auth.SessionTrackingRequest{}, time.Now())
	require.NoError(t, err)

	stored := users.users[2].PasswordHash
	assert.NotEqual(t, "viejaclave", stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("viejaclave")))

	// the plain-text value no longer works as a hash
	_, err = svc.Login(ctx, auth.LoginRequest{Email: "legacy@acme.mx", Password: stored}, auth.SessionTrackingRequest{}, time.Now())
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshAndLogout(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newService(t)

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "ana@acme.mx", Password: "password123"}, auth.SessionTrackingRequest{}, time.Now())
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: resp.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: resp.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	require.NoError(t, svc.Logout(ctx, auth.RefreshTokenRequest{RefreshToken: resp.RefreshToken}))
	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)

	second, err := svc.Login(ctx, auth.LoginRequest{Email: "ana@acme.mx", Password: "password123"}, auth.SessionTrackingRequest{}, time.Now())
	require.NoError(t, err)
	u := users.users[1]
	u.Active = false
	users.users[1] = u
	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: second.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrUserInactive)
}

func TestVerify(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Verify(context.Background())
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)

	ctx := auth.WithPrincipal(context.Background(), auth.Principal{UserID: 4, Email: "rh@acme.mx", CompanyID: 10, Role: user.RoleHR})
	snap, err := svc.Verify(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), snap.ID)
	assert.Equal(t, user.RoleHR, snap.Role)
}

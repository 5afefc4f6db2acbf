package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timerod/timerod-backend-go/internal/domain/auth"
	"github.com/timerod/timerod-backend-go/internal/domain/user"
	"github.com/timerod/timerod-backend-go/internal/pkg/jwt"
)

func protected(t *testing.T, svc jwt.Service, perm user.Permission) http.Handler {
	t.Helper()
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, found := auth.PrincipalFromContext(r.Context())
		require.True(t, found)
		w.Header().Set("X-User", p.Email)
		w.WriteHeader(http.StatusOK)
	})
	return jwtauth.Verifier(svc.JWTAuth())(AuthRequired(RequirePermission(perm)(ok)))
}

func TestAuthRequired(t *testing.T) {
	svc, err := jwt.NewJWTService("test-secret", "1h", "24h")
	require.NoError(t, err)
	h := protected(t, svc, user.PermissionReportsView)

	access, _, err := svc.GenerateAccessToken(auth.Principal{UserID: 1, Email: "rh@acme.mx", CompanyID: 1, Role: user.RoleHR})
	require.NoError(t, err)
	refresh, _, err := svc.GenerateRefreshToken(1)
	require.NoError(t, err)
	employeeToken, _, err := svc.GenerateAccessToken(auth.Principal{UserID: 2, CompanyID: 1, Role: user.RoleEmployee})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"garbage token", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"refresh token", "Bearer " + refresh, http.StatusUnauthorized},
		{"lacks permission", "Bearer " + employeeToken, http.StatusForbidden},
		{"allowed", "Bearer " + access, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/asistencias/reporte", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	h := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/empresas", nil)
	h.ServeHTTP(rec, req.WithContext(auth.WithPrincipal(req.Context(), auth.Principal{Role: user.RoleHR})))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req.WithContext(auth.WithPrincipal(req.Context(), auth.Principal{Role: user.RoleAdmin})))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

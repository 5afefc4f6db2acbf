package middleware

import (
	"net/http"

	"github.com/timerod/timerod-backend-go/internal/domain/auth"
	"github.com/timerod/timerod-backend-go/internal/handler/http/response"
	"github.com/timerod/timerod-backend-go/internal/pkg/jwt"
)

// AuthRequired must run after jwtauth.Verifier. It rejects missing, invalid
// and refresh tokens, then stores the caller as an auth.Principal.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := jwt.PrincipalFromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
	})
}

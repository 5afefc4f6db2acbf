package auth

import (
	"context"

	"github.com/timerod/timerod-backend-go/internal/domain/user"
)

// Principal is the authenticated caller, decoded from the access token.
type Principal struct {
	UserID     int64
	Email      string
	FullName   string
	CompanyID  int64
	EmployeeID *int64
	Role       user.Role
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the caller. Background work and tests run
// without one and are treated as unscoped.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

func (p Principal) Can(perm user.Permission) bool {
	return user.HasPermission(p.Role, perm)
}

// CompanyScope returns the company the caller is restricted to, or nil when
// the caller may see every company.
func CompanyScope(ctx context.Context) *int64 {
	p, ok := PrincipalFromContext(ctx)
	if !ok || p.Role == user.RoleAdmin {
		return nil
	}
	id := p.CompanyID
	return &id
}

// InScope reports whether companyID is visible to the caller.
func InScope(ctx context.Context, companyID int64) bool {
	scope := CompanyScope(ctx)
	return scope == nil || *scope == companyID
}

package user

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleAdmin      Role = "admin"      // System-wide access
	RoleHR         Role = "hr"         // Human resources for one company
	RoleSupervisor Role = "supervisor" // Oversees areas
	RoleEmployee   Role = "employee"   // Clocks own attendance
	RoleCanteen    Role = "canteen"    // Canteen staff, read-only presence
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleSupervisor, RoleEmployee, RoleCanteen:
		return true
	}
	return false
}

func ParseRole(s string) (Role, error) {
	if r := Role(s); r.Valid() {
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

type User struct {
	ID           int64
	CompanyID    int64
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	Active       bool
	LastAccessAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    *time.Time

	// Join
	CompanyName string
	EmployeeID  *int64
}

// IsAdmin checks if user has system-wide access
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

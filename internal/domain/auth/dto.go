package auth

import (
	"strings"

	"github.com/timerod/timerod-backend-go/internal/domain/user"
	"github.com/timerod/timerod-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = strings.TrimSpace(r.Email)
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (r *RefreshTokenRequest) Validate() error {
	if validator.IsEmpty(r.RefreshToken) {
		return validator.New("refreshToken", "refreshToken is required")
	}
	return nil
}

// SessionTrackingRequest is stored next to each refresh token.
type SessionTrackingRequest struct {
	UserAgent *string
	IPAddress *string
}

type TokenResponse struct {
	AccessToken           string       `json:"accessToken"`
	AccessTokenExpiresIn  int64        `json:"accessTokenExpiresIn"`
	RefreshToken          string       `json:"refreshToken"`
	RefreshTokenExpiresIn int64        `json:"refreshTokenExpiresIn"`
	User                  UserSnapshot `json:"user"`
}

type AccessTokenResponse struct {
	AccessToken          string `json:"accessToken"`
	AccessTokenExpiresIn int64  `json:"accessTokenExpiresIn"`
}

// UserSnapshot is the caller identity returned by login and verify.
type UserSnapshot struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	Role       user.Role `json:"role"`
	CompanyID  int64     `json:"companyId"`
	EmployeeID *int64    `json:"employeeId,omitempty"`
}

func SnapshotOf(p Principal) UserSnapshot {
	return UserSnapshot{
		ID:         p.UserID,
		Email:      p.Email,
		FullName:   p.FullName,
		Role:       p.Role,
		CompanyID:  p.CompanyID,
		EmployeeID: p.EmployeeID,
	}
}

package user

import (
	"strings"
	"time"

	"github.com/timerod/timerod-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	CompanyID int64  `json:"companyId"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FullName  string `json:"fullName"`
	Role      Role   `json:"role"`
}

func (r *CreateUserRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	errs := validateCommon(r.CompanyID, r.Email, r.FullName, r.Role)

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: ErrInvalidPasswordLength.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateUserRequest overwrites a user; Password is re-hashed only when set.
type UpdateUserRequest struct {
	ID        int64   `json:"-"`
	CompanyID int64   `json:"companyId"`
	Email     string  `json:"email"`
	Password  *string `json:"password,omitempty"`
	FullName  string  `json:"fullName"`
	Role      Role    `json:"role"`
	Active    *bool   `json:"active,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	errs := validateCommon(r.CompanyID, r.Email, r.FullName, r.Role)

	if r.Password != nil && *r.Password != "" && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: ErrInvalidPasswordLength.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateCommon(companyID int64, email, fullName string, role Role) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if companyID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "companyId", Message: "companyId is required"})
	}
	if validator.IsEmpty(email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if validator.TooLong(email, 255) || !validator.IsValidEmail(email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: ErrInvalidEmailFormat.Error()})
	}
	if validator.IsEmpty(fullName) {
		errs = append(errs, validator.ValidationError{Field: "fullName", Message: "fullName is required"})
	} else if validator.TooLong(fullName, 200) {
		errs = append(errs, validator.ValidationError{Field: "fullName", Message: "fullName must not exceed 200 characters"})
	}
	if !role.Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of admin, hr, supervisor, employee, canteen"})
	}
	return errs
}

type UserResponse struct {
	ID           int64      `json:"id"`
	CompanyID    int64      `json:"companyId"`
	CompanyName  string     `json:"companyName,omitempty"`
	Email        string     `json:"email"`
	FullName     string     `json:"fullName"`
	Role         Role       `json:"role"`
	Active       bool       `json:"active"`
	EmployeeID   *int64     `json:"employeeId,omitempty"`
	LastAccessAt *time.Time `json:"lastAccessAt"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		CompanyID:    u.CompanyID,
		CompanyName:  u.CompanyName,
		Email:        u.Email,
		FullName:     u.FullName,
		Role:         u.Role,
		Active:       u.Active,
		EmployeeID:   u.EmployeeID,
		LastAccessAt: u.LastAccessAt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

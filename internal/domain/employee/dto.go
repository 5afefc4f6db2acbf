package employee

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/timerod/timerod-backend-go/internal/pkg/validator"
)

type EmployeeRequest struct {
	ID             int64           `json:"-"`
	CompanyID      int64           `json:"companyId"`
	AreaID         int64           `json:"areaId"`
	UserID         *int64          `json:"userId"`
	EmployeeNumber string          `json:"employeeNumber"`
	FirstName      string          `json:"firstName"`
	LastNames      string          `json:"lastNames"`
	HireDate       string          `json:"hireDate"`
	DailySalary    decimal.Decimal `json:"dailySalary"`
	ShiftID        *int64          `json:"shiftId"`
	BiometricID    *string         `json:"biometricId"`
	Position       *string         `json:"position"`
	ScheduleID     *int64          `json:"scheduleId"`
	Active         *bool           `json:"active,omitempty"`

	hireDate time.Time
}

// ParsedHireDate is valid after Validate succeeds.
func (r *EmployeeRequest) ParsedHireDate() time.Time {
	return r.hireDate
}

func (r *EmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CompanyID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "companyId", Message: "companyId is required"})
	}
	if r.AreaID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "areaId", Message: "areaId is required"})
	}
	if validator.IsEmpty(r.EmployeeNumber) {
		errs = append(errs, validator.ValidationError{Field: "employeeNumber", Message: ErrEmployeeNumberRequired.Error()})
	} else if validator.TooLong(r.EmployeeNumber, 50) {
		errs = append(errs, validator.ValidationError{Field: "employeeNumber", Message: "employeeNumber must not exceed 50 characters"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "firstName", Message: "firstName is required"})
	} else if validator.TooLong(r.FirstName, 100) {
		errs = append(errs, validator.ValidationError{Field: "firstName", Message: "firstName must not exceed 100 characters"})
	}
	if validator.IsEmpty(r.LastNames) {
		errs = append(errs, validator.ValidationError{Field: "lastNames", Message: "lastNames is required"})
	} else if validator.TooLong(r.LastNames, 150) {
		errs = append(errs, validator.ValidationError{Field: "lastNames", Message: "lastNames must not exceed 150 characters"})
	}

	if d, ok := validator.IsValidDate(r.HireDate); ok {
		r.hireDate = d
	} else {
		errs = append(errs, validator.ValidationError{Field: "hireDate", Message: "hireDate must be formatted YYYY-MM-DD"})
	}

	if r.DailySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "dailySalary", Message: ErrNegativeDailySalary.Error()})
	}
	if r.BiometricID != nil && validator.TooLong(*r.BiometricID, 50) {
		errs = append(errs, validator.ValidationError{Field: "biometricId", Message: "biometricId must not exceed 50 characters"})
	}
	if r.Position != nil && validator.TooLong(*r.Position, 100) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position must not exceed 100 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             int64           `json:"id"`
	CompanyID      int64           `json:"companyId"`
	CompanyName    string          `json:"companyName,omitempty"`
	AreaID         int64           `json:"areaId"`
	AreaName       string          `json:"areaName,omitempty"`
	UserID         *int64          `json:"userId"`
	UserEmail      *string         `json:"userEmail,omitempty"`
	EmployeeNumber string          `json:"employeeNumber"`
	FirstName      string          `json:"firstName"`
	LastNames      string          `json:"lastNames"`
	FullName       string          `json:"fullName"`
	HireDate       string          `json:"hireDate"`
	DailySalary    decimal.Decimal `json:"dailySalary"`
	ShiftID        *int64          `json:"shiftId"`
	BiometricID    *string         `json:"biometricId"`
	Position       *string         `json:"position"`
	ScheduleID     *int64          `json:"scheduleId"`
	Active         bool            `json:"active"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      *time.Time      `json:"updatedAt"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		CompanyID:      e.CompanyID,
		CompanyName:    e.CompanyName,
		AreaID:         e.AreaID,
		AreaName:       e.AreaName,
		UserID:         e.UserID,
		UserEmail:      e.UserEmail,
		EmployeeNumber: e.EmployeeNumber,
		FirstName:      e.FirstName,
		LastNames:      e.LastNames,
		FullName:       e.FullName(),
		HireDate:       e.HireDate.Format("2006-01-02"),
		DailySalary:    e.DailySalary,
		ShiftID:        e.ShiftID,
		BiometricID:    e.BiometricID,
		Position:       e.Position,
		ScheduleID:     e.ScheduleID,
		Active:         e.Active,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

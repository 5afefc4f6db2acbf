package area

import (
	"time"

	"github.com/timerod/timerod-backend-go/internal/pkg/validator"
)

type AreaRequest struct {
	ID           int64   `json:"-"`
	CompanyID    int64   `json:"companyId"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	SupervisorID *int64  `json:"supervisorId"`
	ScheduleID   *int64  `json:"scheduleId"`
	Active       *bool   `json:"active,omitempty"`
}

func (r *AreaRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CompanyID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "companyId", Message: "companyId is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	} else if validator.TooLong(r.Name, 150) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 150 characters"})
	}
	if r.Description != nil && validator.TooLong(*r.Description, 500) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description must not exceed 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AreaResponse struct {
	ID             int64      `json:"id"`
	CompanyID      int64      `json:"companyId"`
	CompanyName    string     `json:"companyName,omitempty"`
	Name           string     `json:"name"`
	Description    *string    `json:"description"`
	SupervisorID   *int64     `json:"supervisorId"`
	SupervisorName *string    `json:"supervisorName,omitempty"`
	ScheduleID     *int64     `json:"scheduleId"`
	ScheduleName   *string    `json:"scheduleName,omitempty"`
	Active         bool       `json:"active"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt"`
}

func ToResponse(a Area) AreaResponse {
	return AreaResponse{
		ID:             a.ID,
		CompanyID:      a.CompanyID,
		CompanyName:    a.CompanyName,
		Name:           a.Name,
		Description:    a.Description,
		SupervisorID:   a.SupervisorID,
		SupervisorName: a.SupervisorName,
		ScheduleID:     a.ScheduleID,
		ScheduleName:   a.ScheduleName,
		Active:         a.Active,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

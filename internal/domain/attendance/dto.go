package attendance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/timerod/timerod-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// ClockRequest is the body of both clock-in and clock-out.
type ClockRequest struct {
	EmployeeID int64   `json:"employeeId"`
	Notes      *string `json:"notes"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if r.Notes != nil && validator.TooLong(*r.Notes, 500) {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAttendanceRequest struct {
	ID          int64      `json:"-"`
	BodyID      *int64     `json:"id"`
	EntryTime   *time.Time `json:"entryTime"`
	ExitTime    *time.Time `json:"exitTime"`
	Kind        Kind       `json:"kind"`
	Notes       *string    `json:"notes"`
	Approved    bool       `json:"approved"`
	LateArrival bool       `json:"lateArrival"`
	LateMinutes *int32     `json:"lateMinutes"`
	Version     *int32     `json:"version"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BodyID != nil && *r.BodyID != r.ID {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id in body does not match id in path",
		})
	}

	if r.Kind != 0 && !r.Kind.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: ErrInvalidKind.Error(),
		})
	}

	if r.ExitTime != nil && r.EntryTime == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "exitTime",
			Message: "exitTime requires entryTime",
		})
	} else if r.ExitTime != nil && r.ExitTime.Before(*r.EntryTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "exitTime",
			Message: "exitTime must not be before entryTime",
		})
	}

	if r.LateMinutes != nil && *r.LateMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "lateMinutes",
			Message: "lateMinutes must not be negative",
		})
	}

	if r.Notes != nil && validator.TooLong(*r.Notes, 500) {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AttendanceFilter narrows a query. Nil fields are not applied.
type AttendanceFilter struct {
	EmployeeID *int64
	CompanyID  *int64
	DateFrom   *time.Time
	DateTo     *time.Time
}

func (f *AttendanceFilter) Validate() error {
	if f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo) {
		return validator.New("fechaInicio", "fechaInicio must not be after fechaFin")
	}
	return nil
}

type AttendanceResponse struct {
	ID               int64            `json:"id"`
	EmployeeID       int64            `json:"employeeId"`
	EmployeeFullName string           `json:"employeeFullName,omitempty"`
	EmployeeNumber   string           `json:"employeeNumber,omitempty"`
	CompanyID        int64            `json:"companyId,omitempty"`
	CompanyName      string           `json:"companyName,omitempty"`
	AreaID           int64            `json:"areaId,omitempty"`
	AreaName         string           `json:"areaName,omitempty"`
	Date             string           `json:"date"`
	EntryTime        *time.Time       `json:"entryTime"`
	ExitTime         *time.Time       `json:"exitTime"`
	Kind             Kind             `json:"kind"`
	Notes            *string          `json:"notes"`
	Approved         bool             `json:"approved"`
	WorkedHours      *decimal.Decimal `json:"workedHours"`
	LateArrival      bool             `json:"lateArrival"`
	LateMinutes      *int32           `json:"lateMinutes"`
	Version          int32            `json:"version"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        *time.Time       `json:"updatedAt"`
}

// ToResponse projects a record, including joined employee data when present.
func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:          a.ID,
		EmployeeID:  a.EmployeeID,
		Date:        a.Date.Format("2006-01-02"),
		EntryTime:   a.EntryTime,
		ExitTime:    a.ExitTime,
		Kind:        a.Kind,
		Notes:       a.Notes,
		Approved:    a.Approved,
		LateArrival: a.LateArrival,
		LateMinutes: a.LateMinutes,
		Version:     a.Version,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.WorkedHours.Valid {
		hours := a.WorkedHours.Decimal
		resp.WorkedHours = &hours
	}
	if e := a.Employee; e != nil {
		resp.EmployeeFullName = e.FullName
		resp.EmployeeNumber = e.EmployeeNumber
		resp.CompanyID = e.CompanyID
		resp.CompanyName = e.CompanyName
		resp.AreaID = e.AreaID
		resp.AreaName = e.AreaName
	}
	return resp
}

package report

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/timerod/timerod-backend-go/internal/domain/attendance"
	"github.com/timerod/timerod-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE REPORT
// ========================================

// DefaultWindowDays is how many calendar days back a report reaches when no
// start date is given.
const DefaultWindowDays = 30

type AttendanceReportRequest struct {
	DateFrom  *time.Time
	DateTo    *time.Time
	CompanyID *int64
}

func (r *AttendanceReportRequest) Validate() error {
	if r.DateFrom != nil && r.DateTo != nil && r.DateFrom.After(*r.DateTo) {
		return validator.New("fechaInicio", ErrInvalidDateRange.Error())
	}
	return nil
}

type AttendanceReport struct {
	DateFrom           string          `json:"dateFrom"`
	DateTo             string          `json:"dateTo"`
	CompanyID          *int64          `json:"companyId,omitempty"`
	GeneratedAt        time.Time       `json:"generatedAt"`
	TotalRecords       int             `json:"totalRecords"`
	TotalWorkedHours   decimal.Decimal `json:"totalWorkedHours"`
	AverageHoursPerDay decimal.Decimal `json:"averageHoursPerDay"`
	LateArrivals       int             `json:"lateArrivals"`
	Records            []ReportRecord  `json:"records"`
}

type ReportRecord struct {
	ID          int64            `json:"id"`
	Date        string           `json:"date"`
	EntryTime   *time.Time       `json:"entryTime"`
	ExitTime    *time.Time       `json:"exitTime"`
	WorkedHours *decimal.Decimal `json:"workedHours"`
	LateArrival bool             `json:"lateArrival"`
	LateMinutes *int32           `json:"lateMinutes"`
	Kind        attendance.Kind  `json:"kind"`
	Employee    ReportEmployee   `json:"employee"`
}

type ReportEmployee struct {
	ID             int64  `json:"id"`
	EmployeeNumber string `json:"employeeNumber"`
	FullName       string `json:"fullName"`
	AreaName       string `json:"areaName"`
	CompanyName    string `json:"companyName"`
}

package report

import (
	"context"
	"time"

	"github.com/timerod/timerod-backend-go/internal/domain/attendance"
)

// ReportRepository reads the rows a report aggregates.
type ReportRepository interface {
	// ListAttendance returns records with date in [from, to], newest first.
	ListAttendance(ctx context.Context, from, to time.Time, companyID *int64) ([]attendance.Attendance, error)
}

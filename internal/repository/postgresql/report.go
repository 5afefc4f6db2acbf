package postgresql

import (
	"context"
	"time"

	"github.com/timerod/timerod-backend-go/internal/domain/attendance"
	"github.com/timerod/timerod-backend-go/internal/domain/report"
	"github.com/timerod/timerod-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// ListAttendance implements report.ReportRepository.
func (r *reportRepository) ListAttendance(ctx context.Context, from, to time.Time, companyID *int64) ([]attendance.Attendance, error) {
	filter := attendance.AttendanceFilter{
		CompanyID: companyID,
		DateFrom:  &from,
		DateTo:    &to,
	}
	return listAttendance(ctx, GetQuerier(ctx, r.db), filter, "a.date DESC, e.last_names, e.first_name, a.id")
}

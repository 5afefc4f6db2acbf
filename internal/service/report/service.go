package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/timerod/timerod-backend-go/internal/domain/auth"
	"github.com/timerod/timerod-backend-go/internal/domain/report"
	"github.com/timerod/timerod-backend-go/internal/pkg/export"
	"github.com/timerod/timerod-backend-go/internal/pkg/validator"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
	loc        *time.Location
}

func NewReportService(reportRepo report.ReportRepository, loc *time.Location) report.ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportServiceImpl{
		reportRepo: reportRepo,
		loc:        loc,
	}
}

// AttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) AttendanceReport(ctx context.Context, req report.AttendanceReportRequest, asOf time.Time) (report.AttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.AttendanceReport{}, err
	}

	dateTo := validator.TruncateDay(asOf, s.loc)
	if req.DateTo != nil {
		dateTo = validator.TruncateDay(*req.DateTo, s.loc)
	}
	dateFrom := validator.TruncateDay(asOf, s.loc).AddDate(0, 0, -report.DefaultWindowDays)
	if req.DateFrom != nil {
		dateFrom = validator.TruncateDay(*req.DateFrom, s.loc)
	}
	if dateFrom.After(dateTo) {
		return report.AttendanceReport{}, validator.New("fechaInicio", report.ErrInvalidDateRange.Error())
	}

	companyID := req.CompanyID
	if scope := auth.CompanyScope(ctx); scope != nil {
		companyID = scope
	}

	records, err := s.reportRepo.ListAttendance(ctx, dateFrom, dateTo, companyID)
	if err != nil {
		return report.AttendanceReport{}, fmt.Errorf("failed to load attendance for report: %w", err)
	}

	summary := report.Summarize(records)
	rows := make([]report.ReportRecord, 0, len(records))
	for _, r := range records {
		rows = append(rows, report.ToRecord(r))
	}

	return report.AttendanceReport{
		DateFrom:           dateFrom.Format("2006-01-02"),
		DateTo:             dateTo.Format("2006-01-02"),
		CompanyID:          companyID,
		GeneratedAt:        asOf,
		TotalRecords:       summary.TotalRecords,
		TotalWorkedHours:   summary.TotalWorkedHours,
		AverageHoursPerDay: summary.AverageHoursPerDay,
		LateArrivals:       summary.LateArrivals,
		Records:            rows,
	}, nil
}

// ExportAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendanceReport(ctx context.Context, req report.AttendanceReportRequest, asOf time.Time, w io.Writer) (report.AttendanceReport, error) {
	rep, err := s.AttendanceReport(ctx, req, asOf)
	if err != nil {
		return report.AttendanceReport{}, err
	}

	if err := export.WriteAttendanceReport(w, rep, s.loc); err != nil {
		slog.Error("Failed to render attendance workbook", "date_from", rep.DateFrom, "date_to", rep.DateTo, "error", err)
		return report.AttendanceReport{}, fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}
	return rep, nil
}

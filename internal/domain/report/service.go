package report

import (
	"context"
	"io"
	"time"
)

// ReportService defines the interface for report generation
type ReportService interface {
	// AttendanceReport summarizes attendance over a date range. Missing
	// bounds default relative to asOf.
	AttendanceReport(ctx context.Context, req AttendanceReportRequest, asOf time.Time) (AttendanceReport, error)

	// ExportAttendanceReport writes the same report as an XLSX workbook and
	// returns the report it rendered.
	ExportAttendanceReport(ctx context.Context, req AttendanceReportRequest, asOf time.Time, w io.Writer) (AttendanceReport, error)
}

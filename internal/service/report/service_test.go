package report

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timerod/timerod-backend-go/internal/domain/attendance"
	"github.com/timerod/timerod-backend-go/internal/domain/auth"
	"github.com/timerod/timerod-backend-go/internal/domain/report"
	"github.com/timerod/timerod-backend-go/internal/domain/user"
	"github.com/timerod/timerod-backend-go/internal/pkg/export"
	"github.com/timerod/timerod-backend-go/internal/pkg/validator"
	"github.com/xuri/excelize/v2"
)

type listCall struct {
	from, to  time.Time
	companyID *int64
}

type fakeReportRepository struct {
	records []attendance.Attendance
	calls   []listCall
}

func (f *fakeReportRepository) ListAttendance(_ context.Context, from, to time.Time, companyID *int64) ([]attendance.Attendance, error) {
	f.calls = append(f.calls, listCall{from: from, to: to, companyID: companyID})
	return f.records, nil
}

func hours(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

var asOf = time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)

func sampleRecords() []attendance.Attendance {
	late := int32(15)
	return []attendance.Attendance{
		{
			ID: 1, EmployeeID: 7, Date: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), Kind: attendance.KindNormal,
			WorkedHours: hours("8"), LateArrival: true, LateMinutes: &late,
			Employee: &attendance.EmployeeSummary{ID: 7, EmployeeNumber: "E-7", FullName: "Ana López", CompanyName: "Acme", AreaName: "Producción"},
		},
		{
			ID: 2, EmployeeID: 7, Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Kind: attendance.KindNormal,
			WorkedHours: hours("10"),
			Employee:    &attendance.EmployeeSummary{ID: 7, EmployeeNumber: "E-7", FullName: "Ana López", CompanyName: "Acme", AreaName: "Producción"},
		},
		{ID: 3, EmployeeID: 8, Date: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), Kind: attendance.KindAbsence},
	}
}

func TestAttendanceReport_DefaultsAndTotals(t *testing.T) {
	repo := &fakeReportRepository{records: sampleRecords()}
	svc := NewReportService(repo, time.UTC)

	rep, err := svc.AttendanceReport(context.Background(), report.AttendanceReportRequest{}, asOf)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-01", rep.DateFrom)
	assert.Equal(t, "2025-03-31", rep.DateTo)
	assert.Equal(t, asOf, rep.GeneratedAt)
	assert.Equal(t, 3, rep.TotalRecords)
	assert.True(t, decimal.NewFromInt(18).Equal(rep.TotalWorkedHours))
	assert.True(t, decimal.NewFromInt(6).Equal(rep.AverageHoursPerDay))
	assert.Equal(t, 1, rep.LateArrivals)
	require.Len(t, rep.Records, 3)
	assert.Equal(t, "Ana López", rep.Records[0].Employee.FullName)
	assert.Nil(t, rep.Records[2].WorkedHours)

	require.Len(t, repo.calls, 1)
	assert.Nil(t, repo.calls[0].companyID)
}

func TestAttendanceReport_DefaultStartAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	repo := &fakeReportRepository{}
	svc := NewReportService(repo, loc)

	// 30 days of 24h from here lands before midnight on Feb 28 because of the
	// March clock change.
	now := time.Date(2025, 3, 31, 0, 30, 0, 0, loc)
	rep, err := svc.AttendanceReport(context.Background(), report.AttendanceReportRequest{}, now)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-01", rep.DateFrom)
	assert.Equal(t, "2025-03-31", rep.DateTo)
}

func TestAttendanceReport_CompanyScope(t *testing.T) {
	repo := &fakeReportRepository{}
	svc := NewReportService(repo, time.UTC)

	other := int64(99)
	ctx := auth.WithPrincipal(context.Background(), auth.Principal{UserID: 1, CompanyID: 4, Role: user.RoleSupervisor})
	rep, err := svc.AttendanceReport(ctx, report.AttendanceReportRequest{CompanyID: &other}, asOf)
	require.NoError(t, err)

	require.NotNil(t, rep.CompanyID)
	assert.Equal(t, int64(4), *rep.CompanyID)
	assert.Equal(t, int64(4), *repo.calls[0].companyID)
	assert.Equal(t, 0, rep.TotalRecords)
	assert.True(t, decimal.Zero.Equal(rep.AverageHoursPerDay))

	adminCtx := auth.WithPrincipal(context.Background(), auth.Principal{UserID: 2, CompanyID: 4, Role: user.RoleAdmin})
	rep, err = svc.AttendanceReport(adminCtx, report.AttendanceReportRequest{CompanyID: &other}, asOf)
	require.NoError(t, err)
	assert.Equal(t, other, *rep.CompanyID)
}

func TestAttendanceReport_InvalidRange(t *testing.T) {
	svc := NewReportService(&fakeReportRepository{}, time.UTC)

	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)
	_, err := svc.AttendanceReport(context.Background(), report.AttendanceReportRequest{DateFrom: &from, DateTo: &to}, asOf)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "fechaInicio", verrs[0].Field)

	// only a start after the default end
	future := asOf.AddDate(0, 0, 5)
	_, err = svc.AttendanceReport(context.Background(), report.AttendanceReportRequest{DateFrom: &future}, asOf)
	assert.True(t, errors.As(err, &verrs))
}

func TestExportAttendanceReport(t *testing.T) {
	svc := NewReportService(&fakeReportRepository{records: sampleRecords()}, time.UTC)

	var buf bytes.Buffer
	rep, err := svc.ExportAttendanceReport(context.Background(), report.AttendanceReportRequest{}, asOf, &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.TotalRecords)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.RecordsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

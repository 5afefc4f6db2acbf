package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timerod/timerod-backend-go/internal/domain/attendance"
	"github.com/timerod/timerod-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

func TestWriteAttendanceReport(t *testing.T) {
	entry := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	exit := entry.Add(9*time.Hour + 30*time.Minute)
	worked := decimal.RequireFromString("9.5")
	late := int32(12)

	rep := report.AttendanceReport{
		DateFrom:           "2024-03-01",
		DateTo:             "2024-03-31",
		GeneratedAt:        time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC),
		TotalRecords:       1,
		TotalWorkedHours:   worked,
		AverageHoursPerDay: worked,
		LateArrivals:       1,
		Records: []report.ReportRecord{{
			ID:          1,
			Date:        "2024-03-15",
			EntryTime:   &entry,
			ExitTime:    &exit,
			WorkedHours: &worked,
			LateArrival: true,
			LateMinutes: &late,
			Kind:        attendance.KindNormal,
			Employee:    report.ReportEmployee{ID: 1, EmployeeNumber: "E-001", FullName: "Ana López", AreaName: "Ops", CompanyName: "Acme"},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAttendanceReport(&buf, rep, time.UTC))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, RecordsSheet}, f.GetSheetList())

	total, err := f.GetCellValue(SummarySheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "1", total)

	name, err := f.GetCellValue(RecordsSheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "Ana López", name)

	hours, err := f.GetCellValue(RecordsSheet, "H2")
	require.NoError(t, err)
	assert.Equal(t, "9.5", hours)

	entryCell, err := f.GetCellValue(RecordsSheet, "F2")
	require.NoError(t, err)
	assert.Equal(t, "08:00:00", entryCell)

	lateCell, err := f.GetCellValue(RecordsSheet, "J2")
	require.NoError(t, err)
	assert.Equal(t, "Sí", lateCell)
}

func TestWriteAttendanceReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	rep := report.AttendanceReport{DateFrom: "2024-03-01", DateTo: "2024-03-31"}
	require.NoError(t, WriteAttendanceReport(&buf, rep, time.UTC))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(RecordsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "reporte_asistencia_2024-03-01_2024-03-31.xlsx", AttendanceFilename(rep))
}

package export

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/timerod/timerod-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	SummarySheet = "Resumen"
	RecordsSheet = "Registros"
)

var recordHeaders = []string{
	"Fecha", "No. empleado", "Empleado", "Área", "Empresa",
	"Entrada", "Salida", "Horas trabajadas", "Tipo", "Retardo", "Minutos de retardo",
}

// AttendanceFilename names the workbook after its date range.
func AttendanceFilename(rep report.AttendanceReport) string {
	return fmt.Sprintf("reporte_asistencia_%s_%s.xlsx", rep.DateFrom, rep.DateTo)
}

// WriteAttendanceReport renders rep as a two-sheet workbook. Timestamps are
// shown in loc.
func WriteAttendanceReport(w io.Writer, rep report.AttendanceReport, loc *time.Location) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	if err := writeSummary(f, rep, headerStyle); err != nil {
		return err
	}
	if err := writeRecords(f, rep, headerStyle, loc); err != nil {
		return err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, rep report.AttendanceReport, headerStyle int) error {
	index, err := f.NewSheet(SummarySheet)
	if err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}
	f.SetActiveSheet(index)

	rows := [][]interface{}{
		{"Reporte de asistencia", ""},
		{"Desde", rep.DateFrom},
		{"Hasta", rep.DateTo},
		{"Total de registros", rep.TotalRecords},
		{"Horas trabajadas", hoursValue(rep.TotalWorkedHours)},
		{"Promedio de horas por día", hoursValue(rep.AverageHoursPerDay)},
		{"Retardos", rep.LateArrivals},
		{"Generado", rep.GeneratedAt.Format(time.RFC3339)},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}
	if err := f.MergeCell(SummarySheet, "A1", "B1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "B1", headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(SummarySheet, "A", "B", 28)
}

func writeRecords(f *excelize.File, rep report.AttendanceReport, headerStyle int, loc *time.Location) error {
	if _, err := f.NewSheet(RecordsSheet); err != nil {
		return fmt.Errorf("create records sheet: %w", err)
	}

	if err := f.SetSheetRow(RecordsSheet, "A1", &recordHeaders); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(recordHeaders), 1)
	if err := f.SetCellStyle(RecordsSheet, "A1", last, headerStyle); err != nil {
		return err
	}

	for i, rec := range rep.Records {
		row := []interface{}{
			rec.Date,
			rec.Employee.EmployeeNumber,
			rec.Employee.FullName,
			rec.Employee.AreaName,
			rec.Employee.CompanyName,
			clockValue(rec.EntryTime, loc),
			clockValue(rec.ExitTime, loc),
			nil,
			rec.Kind.String(),
			yesNo(rec.LateArrival),
			nil,
		}
		if rec.WorkedHours != nil {
			row[7] = hoursValue(*rec.WorkedHours)
		}
		if rec.LateMinutes != nil {
			row[10] = *rec.LateMinutes
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(RecordsSheet, cell, &row); err != nil {
			return fmt.Errorf("write record row: %w", err)
		}
	}

	if err := f.SetColWidth(RecordsSheet, "A", "B", 14); err != nil {
		return err
	}
	if err := f.SetColWidth(RecordsSheet, "C", "E", 28); err != nil {
		return err
	}
	return f.SetPanes(RecordsSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func hoursValue(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

func clockValue(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return t.In(loc).Format("15:04:05")
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

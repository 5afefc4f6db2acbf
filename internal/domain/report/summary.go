package report

import (
	"github.com/shopspring/decimal"
	"github.com/timerod/timerod-backend-go/internal/domain/attendance"
)

const averageScale = 6

// Summary holds the aggregates of a report. Records without worked hours
// count as zero.
type Summary struct {
	TotalRecords       int
	TotalWorkedHours   decimal.Decimal
	AverageHoursPerDay decimal.Decimal
	LateArrivals       int
}

func Summarize(records []attendance.Attendance) Summary {
	s := Summary{TotalWorkedHours: decimal.Zero, AverageHoursPerDay: decimal.Zero}
	for _, r := range records {
		s.TotalRecords++
		if r.WorkedHours.Valid {
			s.TotalWorkedHours = s.TotalWorkedHours.Add(r.WorkedHours.Decimal)
		}
		if r.LateArrival {
			s.LateArrivals++
		}
	}
	if s.TotalRecords > 0 {
		s.AverageHoursPerDay = s.TotalWorkedHours.
			Div(decimal.NewFromInt(int64(s.TotalRecords))).
			Round(averageScale)
	}
	return s
}

// ToRecord projects an attendance row into the report shape.
func ToRecord(a attendance.Attendance) ReportRecord {
	rec := ReportRecord{
		ID:          a.ID,
		Date:        a.Date.Format("2006-01-02"),
		EntryTime:   a.EntryTime,
		ExitTime:    a.ExitTime,
		LateArrival: a.LateArrival,
		LateMinutes: a.LateMinutes,
		Kind:        a.Kind,
		Employee:    ReportEmployee{ID: a.EmployeeID},
	}
	if a.WorkedHours.Valid {
		hours := a.WorkedHours.Decimal
		rec.WorkedHours = &hours
	}
	if e := a.Employee; e != nil {
		rec.Employee.EmployeeNumber = e.EmployeeNumber
		rec.Employee.FullName = e.FullName
		rec.Employee.AreaName = e.AreaName
		rec.Employee.CompanyName = e.CompanyName
	}
	return rec
}

package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Attendance struct {
	ID          int64
	EmployeeID  int64
	Date        time.Time
	EntryTime   *time.Time
	ExitTime    *time.Time
	Kind        Kind
	Notes       *string
	Approved    bool
	WorkedHours decimal.NullDecimal
	LateArrival bool
	LateMinutes *int32
	Version     int32
	CreatedAt   time.Time
	UpdatedAt   *time.Time

	// Join
	Employee *EmployeeSummary
}

// EmployeeSummary is the read-only display data joined onto a record.
type EmployeeSummary struct {
	ID             int64
	EmployeeNumber string
	FullName       string
	CompanyID      int64
	CompanyName    string
	AreaID         int64
	AreaName       string
}

const workedHoursScale = 6

// WorkedHours converts the span between entry and exit into fractional hours.
func WorkedHours(entry, exit time.Time) decimal.Decimal {
	nanos := decimal.NewFromInt(exit.Sub(entry).Nanoseconds())
	return nanos.Div(decimal.NewFromInt(int64(time.Hour))).Round(workedHoursScale)
}

// RecomputeWorkedHours derives WorkedHours from the timestamps, clearing it
// unless both are present.
func (a *Attendance) RecomputeWorkedHours() {
	if a.EntryTime == nil || a.ExitTime == nil {
		a.WorkedHours = decimal.NullDecimal{}
		return
	}
	a.WorkedHours = decimal.NewNullDecimal(WorkedHours(*a.EntryTime, *a.ExitTime))
}

// MergeNotes appends next to prev with a " | " separator.
func MergeNotes(prev, next *string) *string {
	switch {
	case isBlank(next):
		return prev
	case isBlank(prev):
		return next
	}
	merged := *prev + " | " + *next
	return &merged
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}

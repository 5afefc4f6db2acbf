package attendance

import (
	"context"
	"time"

	"github.com/timerod/timerod-backend-go/internal/domain/employee"
	"github.com/timerod/timerod-backend-go/internal/domain/schedule"
)

// AttendanceRepository defines data access methods for attendance records.
// Conditional writes report false instead of an error when their guard did
// not hold, so callers can re-read and decide.
type AttendanceRepository interface {
	// GetByEmployeeAndDate returns nil, nil when the employee has no record for date.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*Attendance, error)

	// InsertEntry creates the day's record; false if one already exists.
	InsertEntry(ctx context.Context, record Attendance) (Attendance, bool, error)

	// SetEntry stores entry time and notes on a record whose entry is still unset.
	SetEntry(ctx context.Context, record Attendance) (Attendance, bool, error)

	// SetExit stores exit time, notes and worked hours if exit is unset and the
	// version still matches.
	SetExit(ctx context.Context, record Attendance) (Attendance, bool, error)

	// GetByID returns the record joined with employee data.
	GetByID(ctx context.Context, id int64) (Attendance, error)

	// List returns matching records ordered by date desc, entry time desc.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)

	// Update overwrites the editable fields if record.Version matches the stored version.
	Update(ctx context.Context, record Attendance) (Attendance, bool, error)

	Delete(ctx context.Context, id int64) error
}

// EmployeeLookup resolves clock-in eligibility and display data.
type EmployeeLookup interface {
	GetActiveEmployee(ctx context.Context, id int64) (employee.ActiveEmployee, error)
}

// ScheduleLookup resolves the schedule used for late-arrival detection.
type ScheduleLookup interface {
	GetByID(ctx context.Context, id int64) (schedule.Schedule, error)
}

package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations.
// Mutations take the as-of instant explicitly; "today" is derived from it.
type AttendanceService interface {
	ClockIn(ctx context.Context, req ClockRequest, asOf time.Time) (AttendanceResponse, error)
	ClockOut(ctx context.Context, req ClockRequest, asOf time.Time) (AttendanceResponse, error)

	// List retrieves records across employees, scoped to the caller's company.
	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)

	ListByEmployee(ctx context.Context, employeeID int64, filter AttendanceFilter) ([]AttendanceResponse, error)

	Get(ctx context.Context, id int64) (AttendanceResponse, error)

	// Update overwrites a record and recomputes worked hours.
	Update(ctx context.Context, req UpdateAttendanceRequest) error

	// Delete removes the record permanently.
	Delete(ctx context.Context, id int64) error
}

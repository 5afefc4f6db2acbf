package area

import "time"

type Area struct {
	ID           int64
	CompanyID    int64
	Name         string
	Description  *string
	SupervisorID *int64
	ScheduleID   *int64
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time

	// Join
	CompanyName    string
	SupervisorName *string
	ScheduleName   *string
}

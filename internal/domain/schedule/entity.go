package schedule

import "time"

// Schedule is a named working window. EntryTime and ExitTime are wall-clock
// values formatted HH:MM:SS.
type Schedule struct {
	ID               int64
	Name             string
	EntryTime        string
	ExitTime         string
	ToleranceMinutes int32
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// EntryOffset returns the entry time as an offset from midnight.
func (s Schedule) EntryOffset() (time.Duration, error) {
	return parseClock("entryTime", s.EntryTime)
}

// Tolerance is the grace period after EntryTime.
func (s Schedule) Tolerance() time.Duration {
	return time.Duration(s.ToleranceMinutes) * time.Minute
}

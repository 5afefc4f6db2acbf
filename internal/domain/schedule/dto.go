package schedule

import (
	"fmt"
	"time"

	"github.com/timerod/timerod-backend-go/internal/pkg/validator"
)

const maxTolerance = 120

type ScheduleRequest struct {
	ID               int64  `json:"-"`
	Name             string `json:"name"`
	EntryTime        string `json:"entryTime"`
	ExitTime         string `json:"exitTime"`
	ToleranceMinutes int32  `json:"toleranceMinutes"`
	Active           *bool  `json:"active,omitempty"`
}

// Validate checks the request and normalizes both times to HH:MM:SS.
func (r *ScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	} else if validator.TooLong(r.Name, 100) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 100 characters"})
	}

	for field, value := range map[string]*string{"entryTime": &r.EntryTime, "exitTime": &r.ExitTime} {
		d, err := parseClock(field, *value)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: field, Message: err.Error()})
			continue
		}
		*value = formatClock(d)
	}

	if r.ToleranceMinutes < 0 || r.ToleranceMinutes > maxTolerance {
		errs = append(errs, validator.ValidationError{
			Field:   "toleranceMinutes",
			Message: fmt.Sprintf("toleranceMinutes must be between 0 and %d", maxTolerance),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleResponse struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	EntryTime        string     `json:"entryTime"`
	ExitTime         string     `json:"exitTime"`
	ToleranceMinutes int32      `json:"toleranceMinutes"`
	Active           bool       `json:"active"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        *time.Time `json:"updatedAt"`
}

func ToResponse(s Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:               s.ID,
		Name:             s.Name,
		EntryTime:        s.EntryTime,
		ExitTime:         s.ExitTime,
		ToleranceMinutes: s.ToleranceMinutes,
		Active:           s.Active,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func parseClock(field, value string) (time.Duration, error) {
	d, ok := validator.ParseClock(value)
	if !ok {
		return 0, fmt.Errorf("%s: %w", field, ErrInvalidClockTime)
	}
	return d, nil
}

func formatClock(d time.Duration) string {
	return time.Time{}.Add(d).Format("15:04:05")
}

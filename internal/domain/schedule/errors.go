package schedule

import "errors"

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrInvalidClockTime = errors.New("time must be formatted HH:MM or HH:MM:SS")
)

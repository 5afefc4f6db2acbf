package attendance

import "errors"

// Attendance domain errors
var (
	// Clock in / clock out
	ErrEmployeeNotActive      = errors.New("employee not found or inactive")
	ErrEntryAlreadyRegistered = errors.New("entry already registered today")
	ErrNoEntryToday           = errors.New("no entry record for today")
	ErrEntryNotRecorded       = errors.New("entry time not recorded")
	ErrExitAlreadyRegistered  = errors.New("exit already registered today")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrVersionConflict    = errors.New("attendance record was modified by another request")
	ErrInvalidKind        = errors.New("invalid attendance kind")
	ErrForbidden          = errors.New("not allowed to register attendance for this employee")
)

// ConflictError reports a clock-in or clock-out that was already done today.
// Record is the stored state the client should reconcile with.
type ConflictError struct {
	Err    error
	Record AttendanceResponse
}

func (e *ConflictError) Error() string { return e.Err.Error() }

func (e *ConflictError) Unwrap() error { return e.Err }

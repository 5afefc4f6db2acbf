package area

import "errors"

var (
	ErrAreaNotFound        = errors.New("area not found")
	ErrCompanyNotActive    = errors.New("company not found or inactive")
	ErrSupervisorNotActive = errors.New("supervisor not found or inactive")
	ErrScheduleNotActive   = errors.New("schedule not found or inactive")
	ErrAreaHasEmployees    = errors.New("cannot delete an area with active employees")
)

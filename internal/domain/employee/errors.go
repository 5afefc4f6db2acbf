package employee

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrEmployeeNumberExists   = errors.New("employee number already exists in this company")
	ErrCompanyNotActive       = errors.New("company not found or inactive")
	ErrAreaNotInCompany       = errors.New("area not found or does not belong to the company")
	ErrUserNotInCompany       = errors.New("user not found or does not belong to the company")
	ErrScheduleNotActive      = errors.New("schedule not found or inactive")
	ErrNegativeDailySalary    = errors.New("dailySalary must not be negative")
	ErrEmployeeNumberRequired = errors.New("employeeNumber is required")
)

package company

import "errors"

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrRFCExists       = errors.New("a company with this RFC already exists")
	ErrCompanyHasUsers = errors.New("cannot delete a company with active users")
	ErrCompanyHasAreas = errors.New("cannot delete a company with active areas")
	ErrInvalidSettings = errors.New("configuration must be a JSON object")
)

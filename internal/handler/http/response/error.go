package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/timerod/timerod-backend-go/internal/domain/area"
	"github.com/timerod/timerod-backend-go/internal/domain/attendance"
	"github.com/timerod/timerod-backend-go/internal/domain/auth"
	"github.com/timerod/timerod-backend-go/internal/domain/company"
	"github.com/timerod/timerod-backend-go/internal/domain/employee"
	"github.com/timerod/timerod-backend-go/internal/domain/report"
	"github.com/timerod/timerod-backend-go/internal/domain/schedule"
	"github.com/timerod/timerod-backend-go/internal/domain/user"
	"github.com/timerod/timerod-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.Message(), validationErrs.ToMap())
		return
	}

	var conflictErr *attendance.ConflictError
	if errors.As(err, &conflictErr) {
		BadRequestWithData(w, conflictErr.Error(), conflictErr.Record)
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrUserInactive),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrRefreshTokenRevoked),
		errors.Is(err, auth.ErrUnauthenticated):
		Unauthorized(w, err.Error())

	case errors.Is(err, attendance.ErrForbidden),
		errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// Not found
	case errors.Is(err, attendance.ErrAttendanceNotFound),
		errors.Is(err, company.ErrCompanyNotFound),
		errors.Is(err, area.ErrAreaNotFound),
		errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, schedule.ErrScheduleNotFound),
		errors.Is(err, user.ErrUserNotFound):
		NotFound(w, err.Error())

	// Concurrent modification and duplicate keys
	case errors.Is(err, attendance.ErrVersionConflict),
		errors.Is(err, company.ErrRFCExists),
		errors.Is(err, employee.ErrEmployeeNumberExists),
		errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, err.Error())

	// Business rules
	case errors.Is(err, attendance.ErrEmployeeNotActive),
		errors.Is(err, attendance.ErrNoEntryToday),
		errors.Is(err, attendance.ErrEntryNotRecorded),
		errors.Is(err, attendance.ErrInvalidKind),
		errors.Is(err, company.ErrCompanyHasUsers),
		errors.Is(err, company.ErrCompanyHasAreas),
		errors.Is(err, company.ErrInvalidSettings),
		errors.Is(err, area.ErrAreaHasEmployees),
		errors.Is(err, area.ErrCompanyNotActive),
		errors.Is(err, area.ErrSupervisorNotActive),
		errors.Is(err, area.ErrScheduleNotActive),
		errors.Is(err, employee.ErrCompanyNotActive),
		errors.Is(err, employee.ErrAreaNotInCompany),
		errors.Is(err, employee.ErrUserNotInCompany),
		errors.Is(err, employee.ErrScheduleNotActive),
		errors.Is(err, employee.ErrNegativeDailySalary),
		errors.Is(err, employee.ErrEmployeeNumberRequired),
		errors.Is(err, schedule.ErrInvalidClockTime),
		errors.Is(err, user.ErrCompanyNotActive),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrInvalidEmailFormat),
		errors.Is(err, user.ErrInvalidPasswordLength),
		errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)

	case errors.Is(err, report.ErrReportGenerationFailed):
		slog.Error("Report generation failed", "error", err)
		InternalServerError(w, report.ErrReportGenerationFailed.Error(), err)

	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred", err)
	}
}

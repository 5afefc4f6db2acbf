package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timerod/timerod-backend-go/internal/domain/attendance"
	"github.com/timerod/timerod-backend-go/internal/domain/auth"
	"github.com/timerod/timerod-backend-go/internal/domain/company"
	"github.com/timerod/timerod-backend-go/internal/domain/employee"
	"github.com/timerod/timerod-backend-go/internal/domain/user"
	"github.com/timerod/timerod-backend-go/internal/pkg/validator"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandleErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", validator.New("employeeId", "employeeId is required"), http.StatusBadRequest},
		{"not found", attendance.ErrAttendanceNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("loading: %w", employee.ErrEmployeeNotFound), http.StatusNotFound},
		{"version conflict", attendance.ErrVersionConflict, http.StatusConflict},
		{"duplicate rfc", company.ErrRFCExists, http.StatusConflict},
		{"duplicate email", user.ErrUserEmailExists, http.StatusConflict},
		{"inactive employee", attendance.ErrEmployeeNotActive, http.StatusBadRequest},
		{"no entry", attendance.ErrNoEntryToday, http.StatusBadRequest},
		{"company has areas", company.ErrCompanyHasAreas, http.StatusBadRequest},
		{"bad credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"inactive user", auth.ErrUserInactive, http.StatusUnauthorized},
		{"forbidden clock", attendance.ErrForbidden, http.StatusForbidden},
		{"admin required", user.ErrAdminPrivilegeRequired, http.StatusForbidden},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.status, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, false, body["success"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestHandleErrorValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "rfc", Message: "rfc is invalid"},
	})

	body := decode(t, rec)
	details, ok := body["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "name is required", details["name"])
	assert.Equal(t, "rfc is invalid", details["rfc"])
}

func TestHandleErrorConflictCarriesRecord(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, &attendance.ConflictError{
		Err:    attendance.ErrEntryAlreadyRegistered,
		Record: attendance.AttendanceResponse{ID: 77, EmployeeID: 5},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, attendance.ErrEntryAlreadyRegistered.Error(), body["error"])
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 77, data["id"])
}

func TestEncodingFailureBecomesInternalError(t *testing.T) {
	rec := httptest.NewRecorder()
	Created(rec, "Entrada registrada", attendance.AttendanceResponse{ID: 3, Kind: attendance.Kind(42)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.NotContains(t, body, "data")
}

func TestInternalErrorDetail(t *testing.T) {
	cause := errors.New("pq: relation does not exist")

	ExposeInternalErrors = false
	rec := httptest.NewRecorder()
	HandleError(rec, cause)
	assert.NotContains(t, decode(t, rec), "detalle")

	ExposeInternalErrors = true
	t.Cleanup(func() { ExposeInternalErrors = false })
	rec = httptest.NewRecorder()
	HandleError(rec, cause)
	assert.Equal(t, cause.Error(), decode(t, rec)["detalle"])
}

package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/timerod/timerod-backend-go/internal/domain/attendance"
	"github.com/timerod/timerod-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	loc               *time.Location
	now               func() time.Time
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, loc *time.Location) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		loc:               loc,
		now:               time.Now,
	}
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockRequest
	if !decodeJSON(w, r, &req, "ClockIn") {
		return
	}

	result, err := h.attendanceService.ClockIn(r.Context(), req, h.now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Entrada registrada", result)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockRequest
	if !decodeJSON(w, r, &req, "ClockOut") {
		return
	}

	result, err := h.attendanceService.ClockOut(r.Context(), req, h.now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salida registrada", result)
}

func (h *attendanceHandlerImpl) filterFromQuery(r *http.Request) (attendance.AttendanceFilter, error) {
	var filter attendance.AttendanceFilter
	var err error
	if filter.EmployeeID, err = queryID(r, "empleadoId"); err != nil {
		return filter, err
	}
	if filter.DateFrom, err = queryDay(r, "fechaInicio", h.loc); err != nil {
		return filter, err
	}
	if filter.DateTo, err = queryDay(r, "fechaFin", h.loc); err != nil {
		return filter, err
	}
	return filter, nil
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, err := h.filterFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// ListByEmployee implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "empleadoId")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	filter, err := h.filterFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.attendanceService.ListByEmployee(r.Context(), employeeID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// Update implements AttendanceHandler.
func (h *attendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.UpdateAttendanceRequest
	if !decodeJSON(w, r, &req, "Update attendance") {
		return
	}
	req.ID = id

	if err := h.attendanceService.Update(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance updated", "attendance_id", id)
	response.NoContent(w)
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.attendanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance deleted", "attendance_id", id)
	response.NoContent(w)
}

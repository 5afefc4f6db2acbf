package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/timerod/timerod-backend-go/internal/domain/report"
	"github.com/timerod/timerod-backend-go/internal/handler/http/response"
	"github.com/timerod/timerod-backend-go/internal/pkg/export"
)

type ReportHandler interface {
	// GetAttendanceReport handles GET /asistencias/reporte
	GetAttendanceReport(w http.ResponseWriter, r *http.Request)

	// ExportAttendanceReport handles GET /asistencias/reporte/excel
	ExportAttendanceReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	loc           *time.Location
	now           func() time.Time
}

func NewReportHandler(reportService report.ReportService, loc *time.Location) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		loc:           loc,
		now:           time.Now,
	}
}

func (h *reportHandlerImpl) requestFromQuery(r *http.Request) (report.AttendanceReportRequest, error) {
	var req report.AttendanceReportRequest
	var err error
	if req.DateFrom, err = queryDay(r, "fechaInicio", h.loc); err != nil {
		return req, err
	}
	if req.DateTo, err = queryDay(r, "fechaFin", h.loc); err != nil {
		return req, err
	}
	if req.CompanyID, err = queryID(r, "empresaId"); err != nil {
		return req, err
	}
	return req, nil
}

// GetAttendanceReport implements ReportHandler.
func (h *reportHandlerImpl) GetAttendanceReport(w http.ResponseWriter, r *http.Request) {
	req, err := h.requestFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.AttendanceReport(r.Context(), req, h.now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportAttendanceReport implements ReportHandler.
func (h *reportHandlerImpl) ExportAttendanceReport(w http.ResponseWriter, r *http.Request) {
	req, err := h.requestFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Buffered so a failure can still be reported as JSON.
	var buf bytes.Buffer
	rep, err := h.reportService.ExportAttendanceReport(r.Context(), req, h.now(), &buf)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.AttendanceFilename(rep)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write attendance workbook", "error", err)
	}
}

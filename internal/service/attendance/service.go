package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/timerod/timerod-backend-go/internal/domain/attendance"
	"github.com/timerod/timerod-backend-go/internal/domain/auth"
	"github.com/timerod/timerod-backend-go/internal/domain/employee"
	"github.com/timerod/timerod-backend-go/internal/domain/user"
	"github.com/timerod/timerod-backend-go/internal/pkg/validator"
)

// maxClockAttempts bounds the re-read loop after a lost conditional write.
const maxClockAttempts = 3

type Options struct {
	// Location defines the calendar day a clock event belongs to.
	Location      *time.Location
	LateDetection bool
}

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employees     attendance.EmployeeLookup
	schedules     attendance.ScheduleLookup
	loc           *time.Location
	lateDetection bool
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	employees attendance.EmployeeLookup,
	schedules attendance.ScheduleLookup,
	opts Options,
) attendance.AttendanceService {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		employees:            employees,
		schedules:            schedules,
		loc:                  loc,
		lateDetection:        opts.LateDetection,
	}
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockRequest, asOf time.Time) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.clockableEmployee(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	today := validator.TruncateDay(asOf, s.loc)
	entry := asOf
	late, lateMinutes := s.detectLate(ctx, emp, asOf)

	for attempt := 0; attempt < maxClockAttempts; attempt++ {
		existing, err := s.GetByEmployeeAndDate(ctx, emp.ID, today)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}

		if existing != nil {
			if existing.EntryTime != nil {
				return attendance.AttendanceResponse{}, conflict(attendance.ErrEntryAlreadyRegistered, *existing, emp)
			}

			record := *existing
			record.EntryTime = &entry
			record.Notes = req.Notes
			if s.lateDetection {
				record.LateArrival = late
				record.LateMinutes = &lateMinutes
			}

			updated, ok, err := s.SetEntry(ctx, record)
			if err != nil {
				return attendance.AttendanceResponse{}, err
			}
			if ok {
				return respond(updated, emp), nil
			}
			continue
		}

		created, ok, err := s.InsertEntry(ctx, attendance.Attendance{
			EmployeeID:  emp.ID,
			Date:        today,
			EntryTime:   &entry,
			Kind:        attendance.KindNormal,
			Notes:       req.Notes,
			Approved:    true,
			LateArrival: late,
			LateMinutes: &lateMinutes,
		})
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		if ok {
			slog.Info("Clock in registered", "employee_id", emp.ID, "attendance_id", created.ID, "late", late)
			return respond(created, emp), nil
		}
	}

	return attendance.AttendanceResponse{}, fmt.Errorf("clock in for employee %d did not settle after %d attempts", emp.ID, maxClockAttempts)
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockRequest, asOf time.Time) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.clockableEmployee(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	today := validator.TruncateDay(asOf, s.loc)
	exit := asOf

	for attempt := 0; attempt < maxClockAttempts; attempt++ {
		existing, err := s.GetByEmployeeAndDate(ctx, emp.ID, today)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}

		switch {
		case existing == nil:
			return attendance.AttendanceResponse{}, attendance.ErrNoEntryToday
		case existing.EntryTime == nil:
			return attendance.AttendanceResponse{}, attendance.ErrEntryNotRecorded
		case existing.ExitTime != nil:
			return attendance.AttendanceResponse{}, conflict(attendance.ErrExitAlreadyRegistered, *existing, emp)
		case exit.Before(*existing.EntryTime):
			return attendance.AttendanceResponse{}, validator.New("exitTime", "exitTime must not be before entryTime")
		}

		record := *existing
		record.ExitTime = &exit
		record.Notes = attendance.MergeNotes(existing.Notes, req.Notes)
		record.RecomputeWorkedHours()

		updated, ok, err := s.SetExit(ctx, record)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		if ok {
			slog.Info("Clock out registered", "employee_id", emp.ID, "attendance_id", updated.ID, "worked_hours", updated.WorkedHours.Decimal.String())
			return respond(updated, emp), nil
		}
	}

	return attendance.AttendanceResponse{}, fmt.Errorf("clock out for employee %d did not settle after %d attempts", emp.ID, maxClockAttempts)
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	if scope := auth.CompanyScope(ctx); scope != nil {
		filter.CompanyID = scope
	}

	if own, restricted := ownEmployeeOnly(ctx); restricted {
		if own == nil {
			return []attendance.AttendanceResponse{}, nil
		}
		if filter.EmployeeID != nil && *filter.EmployeeID != *own {
			return nil, attendance.ErrForbidden
		}
		filter.EmployeeID = own
	}

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.ToResponse(r))
	}
	return responses, nil
}

// ListByEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID int64, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	filter.EmployeeID = &employeeID
	return s.List(ctx, filter)
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id int64) (attendance.AttendanceResponse, error) {
	record, err := s.visibleRecord(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(record), nil
}

// Update implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	record, err := s.visibleRecord(ctx, req.ID)
	if err != nil {
		return err
	}

	// Whole-record overwrite. An omitted kind falls back to normal.
	record.EntryTime = req.EntryTime
	record.ExitTime = req.ExitTime
	record.Kind = req.Kind
	if record.Kind == 0 {
		record.Kind = attendance.KindNormal
	}
	record.Notes = req.Notes
	record.Approved = req.Approved
	record.LateArrival = req.LateArrival
	record.LateMinutes = req.LateMinutes
	record.RecomputeWorkedHours()
	if req.Version != nil {
		record.Version = *req.Version
	}

	if _, ok, err := s.AttendanceRepository.Update(ctx, record); err != nil {
		return err
	} else if !ok {
		return attendance.ErrVersionConflict
	}
	return nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.visibleRecord(ctx, id); err != nil {
		return err
	}
	return s.AttendanceRepository.Delete(ctx, id)
}

// clockableEmployee loads the employee and checks the caller may clock them.
func (s *AttendanceServiceImpl) clockableEmployee(ctx context.Context, employeeID int64) (employee.ActiveEmployee, error) {
	if p, ok := auth.PrincipalFromContext(ctx); ok && p.Role == user.RoleEmployee {
		if p.EmployeeID == nil || *p.EmployeeID != employeeID {
			return employee.ActiveEmployee{}, attendance.ErrForbidden
		}
	}

	emp, err := s.employees.GetActiveEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ActiveEmployee{}, attendance.ErrEmployeeNotActive
		}
		return employee.ActiveEmployee{}, err
	}
	if !emp.Active || !auth.InScope(ctx, emp.CompanyID) {
		return employee.ActiveEmployee{}, attendance.ErrEmployeeNotActive
	}
	return emp, nil
}

// visibleRecord loads a record, hiding those outside the caller's reach.
func (s *AttendanceServiceImpl) visibleRecord(ctx context.Context, id int64) (attendance.Attendance, error) {
	record, err := s.GetByID(ctx, id)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if record.Employee != nil && !auth.InScope(ctx, record.Employee.CompanyID) {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	if own, restricted := ownEmployeeOnly(ctx); restricted && (own == nil || *own != record.EmployeeID) {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return record, nil
}

// detectLate compares the local entry against the employee's schedule.
// Any lookup failure counts as on time.
func (s *AttendanceServiceImpl) detectLate(ctx context.Context, emp employee.ActiveEmployee, entry time.Time) (bool, int32) {
	if !s.lateDetection {
		return false, 0
	}
	scheduleID := emp.EffectiveScheduleID()
	if scheduleID == nil {
		return false, 0
	}

	sch, err := s.schedules.GetByID(ctx, *scheduleID)
	if err != nil {
		slog.Warn("Failed to load schedule for late detection", "employee_id", emp.ID, "schedule_id", *scheduleID, "error", err)
		return false, 0
	}
	if !sch.Active {
		return false, 0
	}
	offset, err := sch.EntryOffset()
	if err != nil {
		slog.Warn("Schedule has an invalid entry time", "schedule_id", sch.ID, "error", err)
		return false, 0
	}

	scheduled := validator.TruncateDay(entry, s.loc).Add(offset)
	diff := entry.In(s.loc).Sub(scheduled)
	if diff <= 0 {
		return false, 0
	}
	return diff > sch.Tolerance(), int32(diff / time.Minute)
}

// ownEmployeeOnly reports whether the caller may only see their own records.
func ownEmployeeOnly(ctx context.Context) (*int64, bool) {
	p, ok := auth.PrincipalFromContext(ctx)
	if !ok || p.Can(user.PermissionAttendanceViewAll) {
		return nil, false
	}
	return p.EmployeeID, true
}

func summaryOf(emp employee.ActiveEmployee) *attendance.EmployeeSummary {
	return &attendance.EmployeeSummary{
		ID:             emp.ID,
		EmployeeNumber: emp.EmployeeNumber,
		FullName:       emp.FullName,
		CompanyID:      emp.CompanyID,
		CompanyName:    emp.CompanyName,
		AreaID:         emp.AreaID,
		AreaName:       emp.AreaName,
	}
}

func respond(record attendance.Attendance, emp employee.ActiveEmployee) attendance.AttendanceResponse {
	record.Employee = summaryOf(emp)
	return attendance.ToResponse(record)
}

func conflict(err error, record attendance.Attendance, emp employee.ActiveEmployee) error {
	return &attendance.ConflictError{Err: err, Record: respond(record, emp)}
}

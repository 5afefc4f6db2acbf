package employee

import (
	"context"
	"errors"
	"log/slog"

	"github.com/timerod/timerod-backend-go/internal/domain/area"
	"github.com/timerod/timerod-backend-go/internal/domain/auth"
	"github.com/timerod/timerod-backend-go/internal/domain/company"
	"github.com/timerod/timerod-backend-go/internal/domain/employee"
	"github.com/timerod/timerod-backend-go/internal/domain/schedule"
	"github.com/timerod/timerod-backend-go/internal/domain/user"
)

type CompanyLookup interface {
	GetByID(ctx context.Context, id int64) (company.Company, error)
}

type AreaLookup interface {
	GetByID(ctx context.Context, id int64) (area.Area, error)
}

type UserLookup interface {
	GetByID(ctx context.Context, id int64) (user.User, error)
}

type ScheduleLookup interface {
	GetByID(ctx context.Context, id int64) (schedule.Schedule, error)
}

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	companies CompanyLookup
	areas     AreaLookup
	users     UserLookup
	schedules ScheduleLookup
}

func NewEmployeeService(
	employeeRepository employee.EmployeeRepository,
	companies CompanyLookup,
	areas AreaLookup,
	users UserLookup,
	schedules ScheduleLookup,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
		companies:          companies,
		areas:              areas,
		users:              users,
		schedules:          schedules,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return s.list(ctx, employee.EmployeeFilter{CompanyID: auth.CompanyScope(ctx)})
}

// ListByCompany implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListByCompany(ctx context.Context, companyID int64) ([]employee.EmployeeResponse, error) {
	if !auth.InScope(ctx, companyID) {
		return []employee.EmployeeResponse{}, nil
	}
	return s.list(ctx, employee.EmployeeFilter{CompanyID: &companyID})
}

// ListByArea implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListByArea(ctx context.Context, areaID int64) ([]employee.EmployeeResponse, error) {
	return s.list(ctx, employee.EmployeeFilter{CompanyID: auth.CompanyScope(ctx), AreaID: &areaID})
}

func (s *EmployeeServiceImpl) list(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.ListActive(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	e, err := s.visibleEmployee(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

// GetByNumber implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByNumber(ctx context.Context, number string) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.GetByNumber(ctx, auth.CompanyScope(ctx), number)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.EmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := s.checkReferences(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.ExistsByNumber(ctx, req.CompanyID, req.EmployeeNumber, 0)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNumberExists
	}

	newEmployee := employee.Employee{Active: req.Active == nil || *req.Active}
	apply(&newEmployee, req)

	created, err := s.EmployeeRepository.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Employee created", "employee_id", created.ID, "company_id", created.CompanyID, "employee_number", created.EmployeeNumber)
	return employee.ToResponse(created), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.EmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	existing, err := s.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if !auth.InScope(ctx, existing.CompanyID) {
		return employee.ErrEmployeeNotFound
	}
	if err := s.checkReferences(ctx, req); err != nil {
		return err
	}

	exists, err := s.ExistsByNumber(ctx, req.CompanyID, req.EmployeeNumber, req.ID)
	if err != nil {
		return err
	}
	if exists {
		return employee.ErrEmployeeNumberExists
	}

	apply(&existing, req)
	if req.Active != nil {
		existing.Active = *req.Active
	}
	return s.EmployeeRepository.Update(ctx, existing)
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.visibleEmployee(ctx, id); err != nil {
		return err
	}
	return s.SoftDelete(ctx, id)
}

func (s *EmployeeServiceImpl) visibleEmployee(ctx context.Context, id int64) (employee.Employee, error) {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	if !e.Active || !auth.InScope(ctx, e.CompanyID) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (s *EmployeeServiceImpl) checkReferences(ctx context.Context, req employee.EmployeeRequest) error {
	if !auth.InScope(ctx, req.CompanyID) {
		return employee.ErrCompanyNotActive
	}
	comp, err := s.companies.GetByID(ctx, req.CompanyID)
	if err != nil && !errors.Is(err, company.ErrCompanyNotFound) {
		return err
	}
	if err != nil || !comp.Active {
		return employee.ErrCompanyNotActive
	}

	a, err := s.areas.GetByID(ctx, req.AreaID)
	if err != nil && !errors.Is(err, area.ErrAreaNotFound) {
		return err
	}
	if err != nil || !a.Active || a.CompanyID != req.CompanyID {
		return employee.ErrAreaNotInCompany
	}

	if req.UserID != nil {
		u, err := s.users.GetByID(ctx, *req.UserID)
		if err != nil && !errors.Is(err, user.ErrUserNotFound) {
			return err
		}
		if err != nil || !u.Active || u.CompanyID != req.CompanyID {
			return employee.ErrUserNotInCompany
		}
	}

	if req.ScheduleID != nil {
		sch, err := s.schedules.GetByID(ctx, *req.ScheduleID)
		if err != nil && !errors.Is(err, schedule.ErrScheduleNotFound) {
			return err
		}
		if err != nil || !sch.Active {
			return employee.ErrScheduleNotActive
		}
	}
	return nil
}

func apply(e *employee.Employee, req employee.EmployeeRequest) {
	e.CompanyID = req.CompanyID
	e.AreaID = req.AreaID
	e.UserID = req.UserID
	e.EmployeeNumber = req.EmployeeNumber
	e.FirstName = req.FirstName
	e.LastNames = req.LastNames
	e.HireDate = req.ParsedHireDate()
	e.DailySalary = req.DailySalary
	e.ShiftID = req.ShiftID
	e.BiometricID = req.BiometricID
	e.Position = req.Position
	e.ScheduleID = req.ScheduleID
}

package area

import (
	"context"
	"errors"

	"github.com/timerod/timerod-backend-go/internal/domain/area"
	"github.com/timerod/timerod-backend-go/internal/domain/auth"
	"github.com/timerod/timerod-backend-go/internal/domain/company"
	"github.com/timerod/timerod-backend-go/internal/domain/schedule"
	"github.com/timerod/timerod-backend-go/internal/domain/user"
)

type CompanyLookup interface {
	GetByID(ctx context.Context, id int64) (company.Company, error)
}

type UserLookup interface {
	GetByID(ctx context.Context, id int64) (user.User, error)
}

type ScheduleLookup interface {
	GetByID(ctx context.Context, id int64) (schedule.Schedule, error)
}

type AreaServiceImpl struct {
	area.AreaRepository
	companies CompanyLookup
	users     UserLookup
	schedules ScheduleLookup
}

func NewAreaService(areaRepository area.AreaRepository, companies CompanyLookup, users UserLookup, schedules ScheduleLookup) area.AreaService {
	return &AreaServiceImpl{
		AreaRepository: areaRepository,
		companies:      companies,
		users:          users,
		schedules:      schedules,
	}
}

// List implements area.AreaService.
func (s *AreaServiceImpl) List(ctx context.Context) ([]area.AreaResponse, error) {
	return s.list(ctx, auth.CompanyScope(ctx))
}

// ListByCompany implements area.AreaService.
func (s *AreaServiceImpl) ListByCompany(ctx context.Context, companyID int64) ([]area.AreaResponse, error) {
	if !auth.InScope(ctx, companyID) {
		return []area.AreaResponse{}, nil
	}
	return s.list(ctx, &companyID)
}

func (s *AreaServiceImpl) list(ctx context.Context, companyID *int64) ([]area.AreaResponse, error) {
	areas, err := s.ListActive(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]area.AreaResponse, 0, len(areas))
	for _, a := range areas {
		responses = append(responses, area.ToResponse(a))
	}
	return responses, nil
}

// Get implements area.AreaService.
func (s *AreaServiceImpl) Get(ctx context.Context, id int64) (area.AreaResponse, error) {
	a, err := s.visibleArea(ctx, id)
	if err != nil {
		return area.AreaResponse{}, err
	}
	return area.ToResponse(a), nil
}

// Create implements area.AreaService.
func (s *AreaServiceImpl) Create(ctx context.Context, req area.AreaRequest) (area.AreaResponse, error) {
	if err := req.Validate(); err != nil {
		return area.AreaResponse{}, err
	}
	if err := s.checkReferences(ctx, req, area.Area{}); err != nil {
		return area.AreaResponse{}, err
	}

	created, err := s.AreaRepository.Create(ctx, area.Area{
		CompanyID:    req.CompanyID,
		Name:         req.Name,
		Description:  req.Description,
		SupervisorID: req.SupervisorID,
		ScheduleID:   req.ScheduleID,
		Active:       req.Active == nil || *req.Active,
	})
	if err != nil {
		return area.AreaResponse{}, err
	}
	return area.ToResponse(created), nil
}

// Update implements area.AreaService.
func (s *AreaServiceImpl) Update(ctx context.Context, req area.AreaRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	existing, err := s.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if !auth.InScope(ctx, existing.CompanyID) {
		return area.ErrAreaNotFound
	}
	if err := s.checkReferences(ctx, req, existing); err != nil {
		return err
	}

	existing.CompanyID = req.CompanyID
	existing.Name = req.Name
	existing.Description = req.Description
	existing.SupervisorID = req.SupervisorID
	existing.ScheduleID = req.ScheduleID
	if req.Active != nil {
		existing.Active = *req.Active
	}
	return s.AreaRepository.Update(ctx, existing)
}

// Delete implements area.AreaService.
func (s *AreaServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.visibleArea(ctx, id); err != nil {
		return err
	}

	employees, err := s.CountActiveEmployees(ctx, id)
	if err != nil {
		return err
	}
	if employees > 0 {
		return area.ErrAreaHasEmployees
	}
	return s.SoftDelete(ctx, id)
}

func (s *AreaServiceImpl) visibleArea(ctx context.Context, id int64) (area.Area, error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return area.Area{}, err
	}
	if !a.Active || !auth.InScope(ctx, a.CompanyID) {
		return area.Area{}, area.ErrAreaNotFound
	}
	return a, nil
}

// checkReferences validates the values that differ from current.
func (s *AreaServiceImpl) checkReferences(ctx context.Context, req area.AreaRequest, current area.Area) error {
	if req.CompanyID != current.CompanyID {
		if !auth.InScope(ctx, req.CompanyID) {
			return area.ErrCompanyNotActive
		}
		comp, err := s.companies.GetByID(ctx, req.CompanyID)
		if err != nil {
			if errors.Is(err, company.ErrCompanyNotFound) {
				return area.ErrCompanyNotActive
			}
			return err
		}
		if !comp.Active {
			return area.ErrCompanyNotActive
		}
	}

	if req.SupervisorID != nil && !sameID(req.SupervisorID, current.SupervisorID) {
		u, err := s.users.GetByID(ctx, *req.SupervisorID)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return area.ErrSupervisorNotActive
			}
			return err
		}
		if !u.Active {
			return area.ErrSupervisorNotActive
		}
	}

	if req.ScheduleID != nil && !sameID(req.ScheduleID, current.ScheduleID) {
		sch, err := s.schedules.GetByID(ctx, *req.ScheduleID)
		if err != nil {
			if errors.Is(err, schedule.ErrScheduleNotFound) {
				return area.ErrScheduleNotActive
			}
			return err
		}
		if !sch.Active {
			return area.ErrScheduleNotActive
		}
	}
	return nil
}

func sameID(a, b *int64) bool {
	return a != nil && b != nil && *a == *b
}

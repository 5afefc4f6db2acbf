package schedule

import (
	"context"

	"github.com/timerod/timerod-backend-go/internal/domain/schedule"
)

type ScheduleServiceImpl struct {
	schedule.ScheduleRepository
}

func NewScheduleService(scheduleRepository schedule.ScheduleRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{ScheduleRepository: scheduleRepository}
}

// List implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) List(ctx context.Context) ([]schedule.ScheduleResponse, error) {
	schedules, err := s.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, sch := range schedules {
		responses = append(responses, schedule.ToResponse(sch))
	}
	return responses, nil
}

// Get implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Get(ctx context.Context, id int64) (schedule.ScheduleResponse, error) {
	sch, err := s.GetByID(ctx, id)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	if !sch.Active {
		return schedule.ScheduleResponse{}, schedule.ErrScheduleNotFound
	}
	return schedule.ToResponse(sch), nil
}

// Create implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Create(ctx context.Context, req schedule.ScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	created, err := s.ScheduleRepository.Create(ctx, schedule.Schedule{
		Name:             req.Name,
		EntryTime:        req.EntryTime,
		ExitTime:         req.ExitTime,
		ToleranceMinutes: req.ToleranceMinutes,
		Active:           req.Active == nil || *req.Active,
	})
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	return schedule.ToResponse(created), nil
}

// Update implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Update(ctx context.Context, req schedule.ScheduleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	existing, err := s.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	existing.Name = req.Name
	existing.EntryTime = req.EntryTime
	existing.ExitTime = req.ExitTime
	existing.ToleranceMinutes = req.ToleranceMinutes
	if req.Active != nil {
		existing.Active = *req.Active
	}
	return s.ScheduleRepository.Update(ctx, existing)
}

// Delete implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.SoftDelete(ctx, id)
}

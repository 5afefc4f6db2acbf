package schedule

import "context"

type ScheduleService interface {
	List(ctx context.Context) ([]ScheduleResponse, error)
	Get(ctx context.Context, id int64) (ScheduleResponse, error)
	Create(ctx context.Context, req ScheduleRequest) (ScheduleResponse, error)
	Update(ctx context.Context, req ScheduleRequest) error
	Delete(ctx context.Context, id int64) error
}

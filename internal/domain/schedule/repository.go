package schedule

import "context"

type ScheduleRepository interface {
	ListActive(ctx context.Context) ([]Schedule, error)
	GetByID(ctx context.Context, id int64) (Schedule, error)
	Create(ctx context.Context, s Schedule) (Schedule, error)
	Update(ctx context.Context, s Schedule) error
	SoftDelete(ctx context.Context, id int64) error
}

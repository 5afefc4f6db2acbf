package area

import "context"

type AreaRepository interface {
	// ListActive returns active areas, optionally restricted to one company.
	ListActive(ctx context.Context, companyID *int64) ([]Area, error)
	GetByID(ctx context.Context, id int64) (Area, error)
	Create(ctx context.Context, a Area) (Area, error)
	Update(ctx context.Context, a Area) error
	SoftDelete(ctx context.Context, id int64) error
	CountActiveEmployees(ctx context.Context, id int64) (int64, error)
}

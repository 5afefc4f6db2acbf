package area

import "context"

type AreaService interface {
	List(ctx context.Context) ([]AreaResponse, error)
	ListByCompany(ctx context.Context, companyID int64) ([]AreaResponse, error)
	Get(ctx context.Context, id int64) (AreaResponse, error)
	Create(ctx context.Context, req AreaRequest) (AreaResponse, error)
	Update(ctx context.Context, req AreaRequest) error
	Delete(ctx context.Context, id int64) error
}

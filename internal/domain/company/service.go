package company

import "context"

type CompanyService interface {
	List(ctx context.Context) ([]CompanyResponse, error)
	Get(ctx context.Context, id int64) (CompanyResponse, error)
	Create(ctx context.Context, req CompanyRequest) (CompanyResponse, error)
	Update(ctx context.Context, req CompanyRequest) error
	Delete(ctx context.Context, id int64) error
}

package company

import "context"

type CompanyRepository interface {
	ListActive(ctx context.Context) ([]Company, error)
	GetByID(ctx context.Context, id int64) (Company, error)
	ExistsByRFC(ctx context.Context, rfc string, excludeID int64) (bool, error)
	Create(ctx context.Context, c Company) (Company, error)
	Update(ctx context.Context, c Company) error
	SoftDelete(ctx context.Context, id int64) error

	// Dependents block soft delete.
	CountActiveUsers(ctx context.Context, id int64) (int64, error)
	CountActiveAreas(ctx context.Context, id int64) (int64, error)
}

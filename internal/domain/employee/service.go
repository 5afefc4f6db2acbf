package employee

import "context"

type EmployeeService interface {
	List(ctx context.Context) ([]EmployeeResponse, error)
	ListByCompany(ctx context.Context, companyID int64) ([]EmployeeResponse, error)
	ListByArea(ctx context.Context, areaID int64) ([]EmployeeResponse, error)
	Get(ctx context.Context, id int64) (EmployeeResponse, error)
	GetByNumber(ctx context.Context, number string) (EmployeeResponse, error)
	Create(ctx context.Context, req EmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, req EmployeeRequest) error
	Delete(ctx context.Context, id int64) error
}

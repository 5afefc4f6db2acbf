package employee

import "context"

// EmployeeFilter narrows ListActive. Nil fields are not applied.
type EmployeeFilter struct {
	CompanyID *int64
	AreaID    *int64
}

type EmployeeRepository interface {
	ListActive(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	// GetByNumber looks an employee number up, within one company when companyID is set.
	GetByNumber(ctx context.Context, companyID *int64, number string) (Employee, error)
	GetActiveEmployee(ctx context.Context, id int64) (ActiveEmployee, error)
	ExistsByNumber(ctx context.Context, companyID int64, number string, excludeID int64) (bool, error)
	Create(ctx context.Context, e Employee) (Employee, error)
	Update(ctx context.Context, e Employee) error
	SoftDelete(ctx context.Context, id int64) error
}

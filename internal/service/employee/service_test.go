package employee

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timerod/timerod-backend-go/internal/domain/area"
	"github.com/timerod/timerod-backend-go/internal/domain/auth"
	"github.com/timerod/timerod-backend-go/internal/domain/company"
	"github.com/timerod/timerod-backend-go/internal/domain/employee"
	"github.com/timerod/timerod-backend-go/internal/domain/schedule"
	"github.com/timerod/timerod-backend-go/internal/domain/user"
	"github.com/timerod/timerod-backend-go/internal/pkg/validator"
)

type fakeEmployeeRepository struct {
	employees map[int64]employee.Employee
	nextID    int64
}

func (f *fakeEmployeeRepository) ListActive(_ context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	var out []employee.Employee
	for id := int64(1); id <= f.nextID; id++ {
		e, ok := f.employees[id]
		if !ok || !e.Active {
			continue
		}
		if filter.CompanyID != nil && e.CompanyID != *filter.CompanyID {
			continue
		}
		if filter.AreaID != nil && e.AreaID != *filter.AreaID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepository) GetByID(_ context.Context, id int64) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepository) GetByNumber(_ context.Context, companyID *int64, number string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.Active && e.EmployeeNumber == number && (companyID == nil || e.CompanyID == *companyID) {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepository) GetActiveEmployee(_ context.Context, id int64) (employee.ActiveEmployee, error) {
	e, ok := f.employees[id]
	if !ok || !e.Active {
		return employee.ActiveEmployee{}, employee.ErrEmployeeNotFound
	}
	return employee.ActiveEmployee{ID: e.ID, Active: true, CompanyID: e.CompanyID, AreaID: e.AreaID, FullName: e.FullName()}, nil
}

func (f *fakeEmployeeRepository) ExistsByNumber(_ context.Context, companyID int64, number string, excludeID int64) (bool, error) {
	for _, e := range f.employees {
		if e.CompanyID == companyID && e.EmployeeNumber == number && e.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployeeRepository) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	f.nextID++
	e.ID = f.nextID
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepository) Update(_ context.Context, e employee.Employee) error {
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepository) SoftDelete(_ context.Context, id int64) error {
	e := f.employees[id]
	e.Active = false
	f.employees[id] = e
	return nil
}

type companies map[int64]company.Company

func (c companies) GetByID(_ context.Context, id int64) (company.Company, error) {
	if v, ok := c[id]; ok {
		return v, nil
	}
	return company.Company{}, company.ErrCompanyNotFound
}

type areas map[int64]area.Area

func (a areas) GetByID(_ context.Context, id int64) (area.Area, error) {
	if v, ok := a[id]; ok {
		return v, nil
	}
	return area.Area{}, area.ErrAreaNotFound
}

type users map[int64]user.User

func (u users) GetByID(_ context.Context, id int64) (user.User, error) {
	if v, ok := u[id]; ok {
		return v, nil
	}
	return user.User{}, user.ErrUserNotFound
}

type schedules map[int64]schedule.Schedule

func (s schedules) GetByID(_ context.Context, id int64) (schedule.Schedule, error) {
	if v, ok := s[id]; ok {
		return v, nil
	}
	return schedule.Schedule{}, schedule.ErrScheduleNotFound
}

func newService() employee.EmployeeService {
	return NewEmployeeService(
		&fakeEmployeeRepository{employees: map[int64]employee.Employee{}},
		companies{1: {ID: 1, Active: true}, 2: {ID: 2, Active: true}},
		areas{10: {ID: 10, CompanyID: 1, Active: true}, 20: {ID: 20, CompanyID: 2, Active: true}},
		users{100: {ID: 100, CompanyID: 1, Active: true}, 200: {ID: 200, CompanyID: 2, Active: true}},
		schedules{5: {ID: 5, Active: true}},
	)
}

func int64Ptr(v int64) *int64 { return &v }

func validRequest() employee.EmployeeRequest {
	return employee.EmployeeRequest{
		CompanyID:      1,
		AreaID:         10,
		EmployeeNumber: "E-001",
		FirstName:      "Ana",
		LastNames:      "López Ruiz",
		HireDate:       "2024-01-15",
		DailySalary:    decimal.RequireFromString("450.50"),
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, "Ana López Ruiz", created.FullName)
	assert.Equal(t, "2024-01-15", created.HireDate)
	assert.True(t, created.Active)

	_, err = svc.Create(ctx, validRequest())
	assert.ErrorIs(t, err, employee.ErrEmployeeNumberExists)

	// the same number is free in another company
	other := validRequest()
	other.CompanyID, other.AreaID = 2, 20
	_, err = svc.Create(ctx, other)
	require.NoError(t, err)
}

func TestEmployeeService_CreateChecksReferences(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	tests := []struct {
		name   string
		mutate func(r *employee.EmployeeRequest)
		want   error
	}{
		{"unknown company", func(r *employee.EmployeeRequest) { r.CompanyID = 9 }, employee.ErrCompanyNotActive},
		{"area from another company", func(r *employee.EmployeeRequest) { r.AreaID = 20 }, employee.ErrAreaNotInCompany},
		{"user from another company", func(r *employee.EmployeeRequest) { r.UserID = int64Ptr(200) }, employee.ErrUserNotInCompany},
		{"unknown schedule", func(r *employee.EmployeeRequest) { r.ScheduleID = int64Ptr(6) }, employee.ErrScheduleNotActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := svc.Create(ctx, req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("negative salary", func(t *testing.T) {
		req := validRequest()
		req.DailySalary = decimal.NewFromInt(-1)
		_, err := svc.Create(ctx, req)
		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs.ToMap(), "dailySalary")
	})
}

func TestEmployeeService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	second := validRequest()
	second.EmployeeNumber = "E-002"
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	req := validRequest()
	req.ID = created.ID
	position := "Operador"
	req.Position = &position
	require.NoError(t, svc.Update(ctx, req))

	req.EmployeeNumber = "E-002"
	assert.ErrorIs(t, svc.Update(ctx, req), employee.ErrEmployeeNumberExists)

	got, err := svc.GetByNumber(ctx, "E-001")
	require.NoError(t, err)
	assert.Equal(t, "Operador", *got.Position)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_Scope(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	hrCtx := auth.WithPrincipal(ctx, auth.Principal{UserID: 1, CompanyID: 2, Role: user.RoleHR})
	list, err := svc.List(hrCtx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.GetByNumber(hrCtx, "E-001")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.Create(hrCtx, validRequest())
	assert.ErrorIs(t, err, employee.ErrCompanyNotActive)

	byArea, err := svc.ListByArea(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, byArea, 1)
}

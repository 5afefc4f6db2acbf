package company

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timerod/timerod-backend-go/internal/domain/auth"
	"github.com/timerod/timerod-backend-go/internal/domain/company"
	"github.com/timerod/timerod-backend-go/internal/domain/user"
	"github.com/timerod/timerod-backend-go/internal/pkg/validator"
)

type fakeCompanyRepository struct {
	companies map[int64]company.Company
	users     map[int64]int64
	areas     map[int64]int64
	nextID    int64
}

func newFakeCompanyRepository() *fakeCompanyRepository {
	return &fakeCompanyRepository{
		companies: map[int64]company.Company{},
		users:     map[int64]int64{},
		areas:     map[int64]int64{},
	}
}

func (f *fakeCompanyRepository) ListActive(context.Context) ([]company.Company, error) {
	var out []company.Company
	for id := int64(1); id <= f.nextID; id++ {
		if c, ok := f.companies[id]; ok && c.Active {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCompanyRepository) GetByID(_ context.Context, id int64) (company.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return c, nil
}

func (f *fakeCompanyRepository) ExistsByRFC(_ context.Context, rfc string, excludeID int64) (bool, error) {
	for _, c := range f.companies {
		if strings.EqualFold(c.RFC, rfc) && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCompanyRepository) Create(_ context.Context, c company.Company) (company.Company, error) {
	f.nextID++
	c.ID = f.nextID
	c.CreatedAt = time.Now()
	f.companies[c.ID] = c
	return c, nil
}

func (f *fakeCompanyRepository) Update(_ context.Context, c company.Company) error {
	if _, ok := f.companies[c.ID]; !ok {
		return company.ErrCompanyNotFound
	}
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepository) SoftDelete(_ context.Context, id int64) error {
	c := f.companies[id]
	c.Active = false
	f.companies[id] = c
	return nil
}

func (f *fakeCompanyRepository) CountActiveUsers(_ context.Context, id int64) (int64, error) {
	return f.users[id], nil
}

func (f *fakeCompanyRepository) CountActiveAreas(_ context.Context, id int64) (int64, error) {
	return f.areas[id], nil
}

func TestCompanyService_Create(t *testing.T) {
	ctx := context.Background()
	svc := NewCompanyService(newFakeCompanyRepository())

	created, err := svc.Create(ctx, company.CompanyRequest{
		Name: "Acme", RFC: "acm010101aaa", Configuration: json.RawMessage(`{"tolerancia_default":10}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "ACM010101AAA", created.RFC)
	assert.True(t, created.Active)
	assert.JSONEq(t, `{"tolerancia_default":10}`, string(created.Configuration))

	_, err = svc.Create(ctx, company.CompanyRequest{Name: "Acme 2", RFC: "ACM010101AAA"})
	assert.ErrorIs(t, err, company.ErrRFCExists)

	_, err = svc.Create(ctx, company.CompanyRequest{Name: "Bad", RFC: "XYZ010101AAA", Configuration: json.RawMessage(`[1,2]`)})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "configuration", verrs[0].Field)
}

func TestCompanyService_UpdateKeepsOwnRFC(t *testing.T) {
	ctx := context.Background()
	svc := NewCompanyService(newFakeCompanyRepository())

	created, err := svc.Create(ctx, company.CompanyRequest{Name: "Acme", RFC: "ACM010101AAA"})
	require.NoError(t, err)
	other, err := svc.Create(ctx, company.CompanyRequest{Name: "Globex", RFC: "GLO010101AAA"})
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, company.CompanyRequest{ID: created.ID, Name: "Acme SA", RFC: "ACM010101AAA"}))

	err = svc.Update(ctx, company.CompanyRequest{ID: other.ID, Name: "Globex", RFC: "ACM010101AAA"})
	assert.ErrorIs(t, err, company.ErrRFCExists)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme SA", got.Name)
}

func TestCompanyService_DeleteBlockedByDependents(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCompanyRepository()
	svc := NewCompanyService(repo)

	created, err := svc.Create(ctx, company.CompanyRequest{Name: "Acme", RFC: "ACM010101AAA"})
	require.NoError(t, err)

	repo.users[created.ID] = 1
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), company.ErrCompanyHasUsers)

	repo.users[created.ID] = 0
	repo.areas[created.ID] = 2
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), company.ErrCompanyHasAreas)

	repo.areas[created.ID] = 0
	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCompanyService_ScopedToCallerCompany(t *testing.T) {
	ctx := context.Background()
	svc := NewCompanyService(newFakeCompanyRepository())

	acme, err := svc.Create(ctx, company.CompanyRequest{Name: "Acme", RFC: "ACM010101AAA"})
	require.NoError(t, err)
	globex, err := svc.Create(ctx, company.CompanyRequest{Name: "Globex", RFC: "GLO010101AAA"})
	require.NoError(t, err)

	hrCtx := auth.WithPrincipal(ctx, auth.Principal{UserID: 1, CompanyID: acme.ID, Role: user.RoleHR})
	list, err := svc.List(hrCtx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, acme.ID, list[0].ID)

	_, err = svc.Get(hrCtx, globex.ID)
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
}

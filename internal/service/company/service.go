package company

import (
	"context"
	"log/slog"

	"github.com/timerod/timerod-backend-go/internal/domain/auth"
	"github.com/timerod/timerod-backend-go/internal/domain/company"
)

type CompanyServiceImpl struct {
	company.CompanyRepository
}

func NewCompanyService(companyRepository company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{CompanyRepository: companyRepository}
}

// List implements company.CompanyService.
func (c *CompanyServiceImpl) List(ctx context.Context) ([]company.CompanyResponse, error) {
	companies, err := c.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, comp := range companies {
		if !auth.InScope(ctx, comp.ID) {
			continue
		}
		responses = append(responses, company.ToResponse(comp))
	}
	return responses, nil
}

// Get implements company.CompanyService.
func (c *CompanyServiceImpl) Get(ctx context.Context, id int64) (company.CompanyResponse, error) {
	comp, err := c.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	if !comp.Active || !auth.InScope(ctx, comp.ID) {
		return company.CompanyResponse{}, company.ErrCompanyNotFound
	}
	return company.ToResponse(comp), nil
}

// Create implements company.CompanyService.
func (c *CompanyServiceImpl) Create(ctx context.Context, req company.CompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	exists, err := c.ExistsByRFC(ctx, req.RFC, 0)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	if exists {
		return company.CompanyResponse{}, company.ErrRFCExists
	}

	newCompany := company.Company{
		Name:          req.Name,
		RFC:           req.RFC,
		Address:       req.Address,
		Configuration: req.Configuration,
		Active:        req.Active == nil || *req.Active,
	}

	created, err := c.CompanyRepository.Create(ctx, newCompany)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	slog.Info("Company created", "company_id", created.ID, "rfc", created.RFC)
	return company.ToResponse(created), nil
}

// Update implements company.CompanyService.
func (c *CompanyServiceImpl) Update(ctx context.Context, req company.CompanyRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	existing, err := c.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if !auth.InScope(ctx, existing.ID) {
		return company.ErrCompanyNotFound
	}

	exists, err := c.ExistsByRFC(ctx, req.RFC, req.ID)
	if err != nil {
		return err
	}
	if exists {
		return company.ErrRFCExists
	}

	existing.Name = req.Name
	existing.RFC = req.RFC
	existing.Address = req.Address
	existing.Configuration = req.Configuration
	if req.Active != nil {
		existing.Active = *req.Active
	}

	return c.CompanyRepository.Update(ctx, existing)
}

// Delete implements company.CompanyService.
func (c *CompanyServiceImpl) Delete(ctx context.Context, id int64) error {
	comp, err := c.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !comp.Active || !auth.InScope(ctx, comp.ID) {
		return company.ErrCompanyNotFound
	}

	users, err := c.CountActiveUsers(ctx, id)
	if err != nil {
		return err
	}
	if users > 0 {
		return company.ErrCompanyHasUsers
	}

	areas, err := c.CountActiveAreas(ctx, id)
	if err != nil {
		return err
	}
	if areas > 0 {
		return company.ErrCompanyHasAreas
	}

	return c.SoftDelete(ctx, id)
}

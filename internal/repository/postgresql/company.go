package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/timerod/timerod-backend-go/internal/domain/company"
	"github.com/timerod/timerod-backend-go/internal/pkg/database"
)

const companyColumns = `id, name, rfc, address, settings_json, active, created_at, updated_at`

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

func scanCompany(row pgx.Row) (company.Company, error) {
	var c company.Company
	var settings []byte
	if err := row.Scan(&c.ID, &c.Name, &c.RFC, &c.Address, &settings, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return company.Company{}, err
	}
	c.Configuration = settings
	return c, nil
}

// ListActive implements company.CompanyRepository.
func (c *companyRepositoryImpl) ListActive(ctx context.Context) ([]company.Company, error) {
	q := GetQuerier(ctx, c.db)

	rows, err := q.Query(ctx, `SELECT `+companyColumns+` FROM companies WHERE active = TRUE ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := make([]company.Company, 0)
	for rows.Next() {
		comp, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, comp)
	}
	return companies, rows.Err()
}

// GetByID implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByID(ctx context.Context, id int64) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	comp, err := scanCompany(q.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company by id: %w", err)
	}
	return comp, nil
}

// ExistsByRFC implements company.CompanyRepository.
func (c *companyRepositoryImpl) ExistsByRFC(ctx context.Context, rfc string, excludeID int64) (bool, error) {
	q := GetQuerier(ctx, c.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM companies WHERE UPPER(rfc) = UPPER($1) AND id <> $2)`, rfc, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check company rfc: %w", err)
	}
	return exists, nil
}

// Create implements company.CompanyRepository.
func (c *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO companies (name, rfc, address, settings_json, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := q.QueryRow(ctx, query,
		newCompany.Name,
		newCompany.RFC,
		newCompany.Address,
		[]byte(newCompany.Configuration),
		newCompany.Active,
	).Scan(&newCompany.ID, &newCompany.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "companies_rfc_key") {
			return company.Company{}, company.ErrRFCExists
		}
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}
	return newCompany, nil
}

// Update implements company.CompanyRepository.
func (c *companyRepositoryImpl) Update(ctx context.Context, comp company.Company) error {
	q := GetQuerier(ctx, c.db)

	query := `
		UPDATE companies
		SET name = $2, rfc = $3, address = $4, settings_json = $5, active = $6, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, comp.ID, comp.Name, comp.RFC, comp.Address, []byte(comp.Configuration), comp.Active)
	if err != nil {
		if isUniqueViolation(err, "companies_rfc_key") {
			return company.ErrRFCExists
		}
		return fmt.Errorf("failed to update company with id %d: %w", comp.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}

// SoftDelete implements company.CompanyRepository.
func (c *companyRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `UPDATE companies SET active = FALSE, updated_at = NOW() WHERE id = $1 AND active = TRUE`, id)
	if err != nil {
		return fmt.Errorf("failed to delete company with id %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}

// CountActiveUsers implements company.CompanyRepository.
func (c *companyRepositoryImpl) CountActiveUsers(ctx context.Context, id int64) (int64, error) {
	return c.count(ctx, `SELECT COUNT(*) FROM users WHERE company_id = $1 AND active = TRUE`, id)
}

// CountActiveAreas implements company.CompanyRepository.
func (c *companyRepositoryImpl) CountActiveAreas(ctx context.Context, id int64) (int64, error) {
	return c.count(ctx, `SELECT COUNT(*) FROM areas WHERE company_id = $1 AND active = TRUE`, id)
}

func (c *companyRepositoryImpl) count(ctx context.Context, query string, id int64) (int64, error) {
	q := GetQuerier(ctx, c.db)

	var n int64
	if err := q.QueryRow(ctx, query, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count company dependents: %w", err)
	}
	return n, nil
}

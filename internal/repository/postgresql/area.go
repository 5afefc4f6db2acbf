package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/timerod/timerod-backend-go/internal/domain/area"
	"github.com/timerod/timerod-backend-go/internal/pkg/database"
)

const areaSelect = `
	SELECT ar.id, ar.company_id, ar.name, ar.description, ar.supervisor_id, ar.schedule_id,
		   ar.active, ar.created_at, ar.updated_at,
		   c.name, u.full_name, s.name
	FROM areas ar
	JOIN companies c ON c.id = ar.company_id
	LEFT JOIN users u ON u.id = ar.supervisor_id
	LEFT JOIN schedules s ON s.id = ar.schedule_id`

type areaRepository struct {
	db *database.DB
}

func NewAreaRepository(db *database.DB) area.AreaRepository {
	return &areaRepository{db: db}
}

func scanArea(row pgx.Row) (area.Area, error) {
	var a area.Area
	err := row.Scan(
		&a.ID, &a.CompanyID, &a.Name, &a.Description, &a.SupervisorID, &a.ScheduleID,
		&a.Active, &a.CreatedAt, &a.UpdatedAt,
		&a.CompanyName, &a.SupervisorName, &a.ScheduleName,
	)
	return a, err
}

// ListActive implements area.AreaRepository.
func (r *areaRepository) ListActive(ctx context.Context, companyID *int64) ([]area.Area, error) {
	q := GetQuerier(ctx, r.db)

	query := areaSelect + ` WHERE ar.active = TRUE`
	var args []any
	if companyID != nil {
		query += ` AND ar.company_id = $1`
		args = append(args, *companyID)
	}
	query += ` ORDER BY c.name, ar.name, ar.id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}
	defer rows.Close()

	areas := make([]area.Area, 0)
	for rows.Next() {
		a, err := scanArea(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan area: %w", err)
		}
		areas = append(areas, a)
	}
	return areas, rows.Err()
}

// GetByID implements area.AreaRepository.
func (r *areaRepository) GetByID(ctx context.Context, id int64) (area.Area, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanArea(q.QueryRow(ctx, areaSelect+` WHERE ar.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return area.Area{}, area.ErrAreaNotFound
		}
		return area.Area{}, fmt.Errorf("failed to get area by id: %w", err)
	}
	return a, nil
}

// Create implements area.AreaRepository.
func (r *areaRepository) Create(ctx context.Context, a area.Area) (area.Area, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO areas (company_id, name, description, supervisor_id, schedule_id, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := q.QueryRow(ctx, query, a.CompanyID, a.Name, a.Description, a.SupervisorID, a.ScheduleID, a.Active).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return area.Area{}, fmt.Errorf("failed to create area: %w", err)
	}
	return a, nil
}

// Update implements area.AreaRepository.
func (r *areaRepository) Update(ctx context.Context, a area.Area) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE areas
		SET company_id = $2, name = $3, description = $4, supervisor_id = $5, schedule_id = $6,
			active = $7, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, a.ID, a.CompanyID, a.Name, a.Description, a.SupervisorID, a.ScheduleID, a.Active)
	if err != nil {
		return fmt.Errorf("failed to update area with id %d: %w", a.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return area.ErrAreaNotFound
	}
	return nil
}

// SoftDelete implements area.AreaRepository.
func (r *areaRepository) SoftDelete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE areas SET active = FALSE, updated_at = NOW() WHERE id = $1 AND active = TRUE`, id)
	if err != nil {
		return fmt.Errorf("failed to delete area with id %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return area.ErrAreaNotFound
	}
	return nil
}

// CountActiveEmployees implements area.AreaRepository.
func (r *areaRepository) CountActiveEmployees(ctx context.Context, id int64) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var n int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE area_id = $1 AND active = TRUE`, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count area employees: %w", err)
	}
	return n, nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/timerod/timerod-backend-go/internal/domain/schedule"
	"github.com/timerod/timerod-backend-go/internal/pkg/database"
)

const scheduleColumns = `id, name, entry_time::text, exit_time::text, tolerance_minutes, active, created_at, updated_at`

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

func scanSchedule(row pgx.Row) (schedule.Schedule, error) {
	var s schedule.Schedule
	err := row.Scan(&s.ID, &s.Name, &s.EntryTime, &s.ExitTime, &s.ToleranceMinutes, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// ListActive implements schedule.ScheduleRepository.
func (r *scheduleRepository) ListActive(ctx context.Context) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+scheduleColumns+` FROM schedules WHERE active = TRUE ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	schedules := make([]schedule.Schedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

// GetByID implements schedule.ScheduleRepository.
func (r *scheduleRepository) GetByID(ctx context.Context, id int64) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanSchedule(q.QueryRow(ctx, `SELECT `+scheduleColumns+` FROM schedules WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Schedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.Schedule{}, fmt.Errorf("failed to get schedule by id: %w", err)
	}
	return s, nil
}

// Create implements schedule.ScheduleRepository.
func (r *scheduleRepository) Create(ctx context.Context, s schedule.Schedule) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedules (name, entry_time, exit_time, tolerance_minutes, active)
		VALUES ($1, $2::time, $3::time, $4, $5)
		RETURNING id, created_at
	`
	if err := q.QueryRow(ctx, query, s.Name, s.EntryTime, s.ExitTime, s.ToleranceMinutes, s.Active).Scan(&s.ID, &s.CreatedAt); err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}
	return s, nil
}

// Update implements schedule.ScheduleRepository.
func (r *scheduleRepository) Update(ctx context.Context, s schedule.Schedule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE schedules
		SET name = $2, entry_time = $3::time, exit_time = $4::time, tolerance_minutes = $5, active = $6, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, s.ID, s.Name, s.EntryTime, s.ExitTime, s.ToleranceMinutes, s.Active)
	if err != nil {
		return fmt.Errorf("failed to update schedule with id %d: %w", s.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}

// SoftDelete implements schedule.ScheduleRepository.
func (r *scheduleRepository) SoftDelete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE schedules SET active = FALSE, updated_at = NOW() WHERE id = $1 AND active = TRUE`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule with id %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/timerod/timerod-backend-go/internal/domain/attendance"
	"github.com/timerod/timerod-backend-go/internal/pkg/database"
)

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.entry_time, a.exit_time, a.kind, a.notes, a.approved,
	a.worked_hours, a.late_arrival, a.late_minutes, a.version, a.created_at, a.updated_at`

const attendanceJoinedSelect = `
	SELECT` + attendanceColumns + `,
		   e.employee_number, e.first_name, e.last_names, e.company_id, c.name, e.area_id, ar.name
	FROM attendances a
	JOIN employees e ON e.id = a.employee_id
	JOIN companies c ON c.id = e.company_id
	JOIN areas ar ON ar.id = e.area_id`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// scanAttendance reads attendanceColumns, plus the employee join when joined is set.
func scanAttendance(row pgx.Row, joined bool) (attendance.Attendance, error) {
	var att attendance.Attendance
	var kind int16
	dest := []any{
		&att.ID, &att.EmployeeID, &att.Date, &att.EntryTime, &att.ExitTime, &kind, &att.Notes, &att.Approved,
		&att.WorkedHours, &att.LateArrival, &att.LateMinutes, &att.Version, &att.CreatedAt, &att.UpdatedAt,
	}

	var emp attendance.EmployeeSummary
	var firstName, lastNames string
	if joined {
		dest = append(dest, &emp.EmployeeNumber, &firstName, &lastNames, &emp.CompanyID, &emp.CompanyName, &emp.AreaID, &emp.AreaName)
	}

	if err := row.Scan(dest...); err != nil {
		return attendance.Attendance{}, err
	}

	att.Kind = attendance.Kind(kind)
	if joined {
		emp.ID = att.EmployeeID
		emp.FullName = firstName + " " + lastNames
		att.Employee = &emp
	}
	return att, nil
}

func dateParam(d time.Time) string {
	return d.Format("2006-01-02")
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date = $2::date`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, dateParam(date)), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}
	return &att, nil
}

// InsertEntry implements attendance.AttendanceRepository.
func (r *attendanceRepository) InsertEntry(ctx context.Context, record attendance.Attendance) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, entry_time, kind, notes, approved, late_arrival, late_minutes
		) VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (employee_id, date) DO NOTHING
		RETURNING id, version, created_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		dateParam(record.Date),
		record.EntryTime,
		int16(record.Kind),
		record.Notes,
		record.Approved,
		record.LateArrival,
		record.LateMinutes,
	).Scan(&record.ID, &record.Version, &record.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, false, nil
		}
		return attendance.Attendance{}, false, fmt.Errorf("failed to create attendance: %w", err)
	}
	return record, true, nil
}

// SetEntry implements attendance.AttendanceRepository.
func (r *attendanceRepository) SetEntry(ctx context.Context, record attendance.Attendance) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET entry_time = $2, notes = $3, late_arrival = $4, late_minutes = $5,
			version = version + 1, updated_at = NOW()
		WHERE id = $1 AND entry_time IS NULL
		RETURNING version, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID, record.EntryTime, record.Notes, record.LateArrival, record.LateMinutes,
	).Scan(&record.Version, &record.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, false, nil
		}
		return attendance.Attendance{}, false, fmt.Errorf("failed to set attendance entry: %w", err)
	}
	return record, true, nil
}

// SetExit implements attendance.AttendanceRepository.
func (r *attendanceRepository) SetExit(ctx context.Context, record attendance.Attendance) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET exit_time = $2, notes = $3, worked_hours = $4,
			version = version + 1, updated_at = NOW()
		WHERE id = $1 AND exit_time IS NULL AND entry_time IS NOT NULL AND version = $5
		RETURNING version, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID, record.ExitTime, record.Notes, record.WorkedHours, record.Version,
	).Scan(&record.Version, &record.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, false, nil
		}
		return attendance.Attendance{}, false, fmt.Errorf("failed to set attendance exit: %w", err)
	}
	return record, true, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id int64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	att, err := scanAttendance(q.QueryRow(ctx, attendanceJoinedSelect+` WHERE a.id = $1`, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}
	return att, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	return listAttendance(ctx, GetQuerier(ctx, r.db), filter, "a.date DESC, a.entry_time DESC NULLS LAST, a.id DESC")
}

func listAttendance(ctx context.Context, q database.Querier, filter attendance.AttendanceFilter, orderBy string) ([]attendance.Attendance, error) {
	var whereClauses []string
	var args []any
	argIdx := 1

	if filter.EmployeeID != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.CompanyID != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("e.company_id = $%d", argIdx))
		args = append(args, *filter.CompanyID)
		argIdx++
	}
	if filter.DateFrom != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("a.date >= $%d::date", argIdx))
		args = append(args, dateParam(*filter.DateFrom))
		argIdx++
	}
	if filter.DateTo != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("a.date <= $%d::date", argIdx))
		args = append(args, dateParam(*filter.DateTo))
		argIdx++
	}

	query := attendanceJoinedSelect
	if len(whereClauses) > 0 {
		query += " WHERE " + strings.Join(whereClauses, " AND ")
	}
	query += " ORDER BY " + orderBy

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		att, err := scanAttendance(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}
	return records, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, record attendance.Attendance) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET entry_time = $2, exit_time = $3, kind = $4, notes = $5, approved = $6,
			worked_hours = $7, late_arrival = $8, late_minutes = $9,
			version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $10
		RETURNING version, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EntryTime,
		record.ExitTime,
		int16(record.Kind),
		record.Notes,
		record.Approved,
		record.WorkedHours,
		record.LateArrival,
		record.LateMinutes,
		record.Version,
	).Scan(&record.Version, &record.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, false, nil
		}
		return attendance.Attendance{}, false, fmt.Errorf("failed to update attendance: %w", err)
	}
	return record, true, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

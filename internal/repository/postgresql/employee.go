package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/timerod/timerod-backend-go/internal/domain/employee"
	"github.com/timerod/timerod-backend-go/internal/pkg/database"
)

const employeeSelect = `
	SELECT e.id, e.company_id, e.area_id, e.user_id, e.employee_number, e.first_name, e.last_names,
		   e.hire_date, e.daily_salary, e.shift_id, e.biometric_id, e.position, e.schedule_id,
		   e.active, e.created_at, e.updated_at,
		   c.name, ar.name, u.email
	FROM employees e
	JOIN companies c ON c.id = e.company_id
	JOIN areas ar ON ar.id = e.area_id
	LEFT JOIN users u ON u.id = e.user_id`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.CompanyID, &emp.AreaID, &emp.UserID, &emp.EmployeeNumber, &emp.FirstName, &emp.LastNames,
		&emp.HireDate, &emp.DailySalary, &emp.ShiftID, &emp.BiometricID, &emp.Position, &emp.ScheduleID,
		&emp.Active, &emp.CreatedAt, &emp.UpdatedAt,
		&emp.CompanyName, &emp.AreaName, &emp.UserEmail,
	)
	return emp, err
}

// ListActive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListActive(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	whereClauses := []string{"e.active = TRUE"}
	var args []any
	argIdx := 1

	if filter.CompanyID != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("e.company_id = $%d", argIdx))
		args = append(args, *filter.CompanyID)
		argIdx++
	}
	if filter.AreaID != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("e.area_id = $%d", argIdx))
		args = append(args, *filter.AreaID)
		argIdx++
	}

	query := employeeSelect + " WHERE " + strings.Join(whereClauses, " AND ") +
		" ORDER BY e.last_names, e.first_name, e.id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	emp, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}
	return emp, nil
}

// GetByNumber implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByNumber(ctx context.Context, companyID *int64, number string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := employeeSelect + ` WHERE e.employee_number = $1 AND e.active = TRUE`
	args := []any{number}
	if companyID != nil {
		query += ` AND e.company_id = $2`
		args = append(args, *companyID)
	}
	query += ` ORDER BY e.id LIMIT 1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by number: %w", err)
	}
	return emp, nil
}

// GetActiveEmployee implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetActiveEmployee(ctx context.Context, id int64) (employee.ActiveEmployee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.active, e.company_id, c.name, e.area_id, ar.name,
			   e.first_name, e.last_names, e.employee_number, e.schedule_id, ar.schedule_id
		FROM employees e
		JOIN companies c ON c.id = e.company_id
		JOIN areas ar ON ar.id = e.area_id
		WHERE e.id = $1 AND e.active = TRUE
	`

	var ae employee.ActiveEmployee
	var firstName, lastNames string
	err := q.QueryRow(ctx, query, id).Scan(
		&ae.ID, &ae.Active, &ae.CompanyID, &ae.CompanyName, &ae.AreaID, &ae.AreaName,
		&firstName, &lastNames, &ae.EmployeeNumber, &ae.ScheduleID, &ae.AreaScheduleID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ActiveEmployee{}, employee.ErrEmployeeNotFound
		}
		return employee.ActiveEmployee{}, fmt.Errorf("failed to get active employee: %w", err)
	}
	ae.FullName = employee.FullName(firstName, lastNames)
	return ae, nil
}

// ExistsByNumber implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByNumber(ctx context.Context, companyID int64, number string, excludeID int64) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE company_id = $1 AND employee_number = $2 AND id <> $3)`,
		companyID, number, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee number: %w", err)
	}
	return exists, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			company_id, area_id, user_id, employee_number, first_name, last_names, hire_date,
			daily_salary, shift_id, biometric_id, position, schedule_id, active
		) VALUES ($1, $2, $3, $4, $5, $6, $7::date, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at
	`
	err := q.QueryRow(ctx, query,
		newEmployee.CompanyID,
		newEmployee.AreaID,
		newEmployee.UserID,
		newEmployee.EmployeeNumber,
		newEmployee.FirstName,
		newEmployee.LastNames,
		dateParam(newEmployee.HireDate),
		newEmployee.DailySalary,
		newEmployee.ShiftID,
		newEmployee.BiometricID,
		newEmployee.Position,
		newEmployee.ScheduleID,
		newEmployee.Active,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "employees_company_number_key") {
			return employee.Employee{}, employee.ErrEmployeeNumberExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return newEmployee, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET company_id = $2, area_id = $3, user_id = $4, employee_number = $5, first_name = $6,
			last_names = $7, hire_date = $8::date, daily_salary = $9, shift_id = $10, biometric_id = $11,
			position = $12, schedule_id = $13, active = $14, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		emp.ID,
		emp.CompanyID,
		emp.AreaID,
		emp.UserID,
		emp.EmployeeNumber,
		emp.FirstName,
		emp.LastNames,
		dateParam(emp.HireDate),
		emp.DailySalary,
		emp.ShiftID,
		emp.BiometricID,
		emp.Position,
		emp.ScheduleID,
		emp.Active,
	)
	if err != nil {
		if isUniqueViolation(err, "employees_company_number_key") {
			return employee.ErrEmployeeNumberExists
		}
		return fmt.Errorf("failed to update employee with id %d: %w", emp.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// SoftDelete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET active = FALSE, updated_at = NOW() WHERE id = $1 AND active = TRUE`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee with id %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/employee"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.user_id, e.code, e.position, e.department, e.hire_date, e.salary,
	e.commission_rate, e.specializations, e.availability, e.performance, e.documents,
	e.is_active, e.termination_date, e.termination_reason, e.created_at, e.updated_at,
	u.first_name, u.last_name, u.email, u.phone
`

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID,
		&emp.UserID,
		&emp.Code,
		&emp.Position,
		&emp.Department,
		&emp.HireDate,
		&emp.Salary,
		&emp.CommissionRate,
		&emp.Specializations,
		&emp.Availability,
		&emp.Performance,
		&emp.Documents,
		&emp.IsActive,
		&emp.TerminationDate,
		&emp.TerminationReason,
		&emp.CreatedAt,
		&emp.UpdatedAt,
		&emp.FirstName,
		&emp.LastName,
		&emp.Email,
		&emp.Phone,
	)
	if err != nil {
		return nil, err
	}
	if emp.Specializations == nil {
		emp.Specializations = []string{}
	}
	if emp.Documents == nil {
		emp.Documents = []employee.Document{}
	}
	return &emp, nil
}

// Create implements employee.Repository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp *employee.Employee) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			user_id, code, position, department, hire_date, salary,
			commission_rate, specializations, availability, performance, documents, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, TRUE)
		RETURNING id, created_at, updated_at
	`

	created := *emp
	err := q.QueryRow(ctx, query,
		emp.UserID,
		emp.Code,
		emp.Position,
		emp.Department,
		emp.HireDate,
		emp.Salary,
		emp.CommissionRate,
		emp.Specializations,
		emp.Availability,
		emp.Performance,
		emp.Documents,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}

	created.IsActive = true
	return &created, nil
}

// GetByID implements employee.Repository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE e.id = $1
	`

	return scanEmployee(q.QueryRow(ctx, query, id))
}

// GetByUserID implements employee.Repository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE e.user_id = $1
	`

	return scanEmployee(q.QueryRow(ctx, query, userID))
}

// GetByCode implements employee.Repository.
func (r *employeeRepositoryImpl) GetByCode(ctx context.Context, code string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE e.code = $1
	`

	return scanEmployee(q.QueryRow(ctx, query, code))
}

// List implements employee.Repository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.Position != "" {
		where += fmt.Sprintf(" AND e.position = $%d", argPos)
		args = append(args, filter.Position)
		argPos++
	}
	if filter.Department != "" {
		where += fmt.Sprintf(" AND e.department = $%d", argPos)
		args = append(args, filter.Department)
		argPos++
	}
	if filter.IsActive != nil {
		where += fmt.Sprintf(" AND e.is_active = $%d", argPos)
		args = append(args, *filter.IsActive)
		argPos++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(" AND (u.first_name ILIKE $%d OR u.last_name ILIKE $%d OR u.email ILIKE $%d OR e.code ILIKE $%d)", argPos, argPos, argPos, argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	countQuery := `SELECT COUNT(*) FROM employees e JOIN users u ON u.id = e.user_id` + where

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN users u ON u.id = e.user_id` + where +
		fmt.Sprintf(` ORDER BY e.created_at DESC LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, *emp)
	}

	return employees, total, rows.Err()
}

// Update implements employee.Repository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET position = $1, department = $2, salary = $3, commission_rate = $4,
			specializations = $5, availability = $6, performance = $7, updated_at = NOW()
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		emp.Position,
		emp.Department,
		emp.Salary,
		emp.CommissionRate,
		emp.Specializations,
		emp.Availability,
		emp.Performance,
		emp.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Deactivate implements employee.Repository.
func (r *employeeRepositoryImpl) Deactivate(ctx context.Context, id string, at time.Time, reason string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET is_active = FALSE, termination_date = $1, termination_reason = $2, updated_at = NOW()
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, at, reason, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateAvailability implements employee.Repository.
func (r *employeeRepositoryImpl) UpdateAvailability(ctx context.Context, id string, availability employee.Availability) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET availability = $1, updated_at = NOW() WHERE id = $2`, availability, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Search implements employee.Repository.
func (r *employeeRepositoryImpl) Search(ctx context.Context, query string, limit int) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	sql := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE e.is_active = TRUE
		  AND (u.first_name ILIKE $1 OR u.last_name ILIKE $1 OR u.email ILIKE $1
			   OR e.code ILIKE $1 OR e.position ILIKE $1)
		ORDER BY u.first_name
		LIMIT $2
	`

	rows, err := q.Query(ctx, sql, "%"+query+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *emp)
	}

	return employees, rows.Err()
}

// ListByService returns active employees whose specializations cover the
// service. Falls back to all active staff when nobody is specialized.
func (r *employeeRepositoryImpl) ListByService(ctx context.Context, serviceID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	sql := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE e.is_active = TRUE
		  AND e.specializations @> ARRAY[(SELECT name FROM services WHERE id = $1)]
		ORDER BY u.first_name
	`

	rows, err := q.Query(ctx, sql, serviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *emp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(employees) > 0 {
		return employees, nil
	}

	active := true
	all, _, err := r.List(ctx, employee.ListFilter{Page: 1, Limit: 100, IsActive: &active})
	return all, err
}

// Stats implements employee.Repository.
func (r *employeeRepositoryImpl) Stats(ctx context.Context) (*employee.StatsResponse, error) {
	q := GetQuerier(ctx, r.db)

	stats := &employee.StatsResponse{
		ByPosition:   make(map[string]int64),
		ByDepartment: make(map[string]int64),
	}

	err := q.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active) FROM employees
	`).Scan(&stats.Total, &stats.Active)
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, `SELECT position, COUNT(*) FROM employees WHERE is_active GROUP BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var position string
		var count int64
		if err := rows.Scan(&position, &count); err != nil {
			return nil, err
		}
		stats.ByPosition[position] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	deptRows, err := q.Query(ctx, `SELECT department, COUNT(*) FROM employees WHERE is_active GROUP BY department`)
	if err != nil {
		return nil, err
	}
	defer deptRows.Close()
	for deptRows.Next() {
		var department string
		var count int64
		if err := deptRows.Scan(&department, &count); err != nil {
			return nil, err
		}
		stats.ByDepartment[department] = count
	}

	return stats, deptRows.Err()
}

// AddDocument implements employee.Repository.
func (r *employeeRepositoryImpl) AddDocument(ctx context.Context, employeeID string, doc employee.Document) error {
	q := GetQuerier(ctx, r.db)

	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	query := `
		UPDATE employees
		SET documents = COALESCE(documents, '[]'::jsonb) || $1::jsonb, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, payload, employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// NextCode generates the next sequential staff code, e.g. EMP0007.
func (r *employeeRepositoryImpl) NextCode(ctx context.Context) (string, error) {
	q := GetQuerier(ctx, r.db)

	var maxSeq int64
	err := q.QueryRow(ctx, `
		SELECT COALESCE(MAX(SUBSTRING(code FROM 4)::bigint), 0)
		FROM employees
		WHERE code ~ '^EMP[0-9]+$'
	`).Scan(&maxSeq)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("EMP%04d", maxSeq+1), nil
}

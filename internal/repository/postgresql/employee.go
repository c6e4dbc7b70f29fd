package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nominalabs/nomina-backend-go/internal/domain/employee"
	"github.com/nominalabs/nomina-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, company_id, name, code, base_salary, transport_allowance,
	solidarity_fund, rest_day_policy, pattern_days, is_active,
	created_at, updated_at
`

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.Name, &e.Code, &e.BaseSalary,
		&e.TransportAllowance, &e.SolidarityFund, &e.RestDayPolicy,
		&e.PatternDays, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, company_id, name, code, base_salary, transport_allowance,
			solidarity_fund, rest_day_policy, pattern_days, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := q.Exec(ctx, query,
		e.ID, e.CompanyID, e.Name, e.Code, e.BaseSalary, e.TransportAllowance,
		e.SolidarityFund, e.RestDayPolicy, e.PatternDays, e.IsActive,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.ErrEmployeeCodeExists
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, companyID string, id string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE company_id = $1 AND id = $2`

	e, err := scanEmployee(q.QueryRow(ctx, query, companyID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

func (r *employeeRepository) GetByCode(ctx context.Context, companyID string, code string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE company_id = $1 AND code = $2`

	e, err := scanEmployee(q.QueryRow(ctx, query, companyID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by code: %w", err)
	}
	return e, nil
}

func (r *employeeRepository) ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE company_id = $1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY code`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []*employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			name = $3, base_salary = $4, transport_allowance = $5,
			solidarity_fund = $6, rest_day_policy = $7, pattern_days = $8,
			is_active = $9, updated_at = NOW()
		WHERE company_id = $1 AND id = $2
	`

	tag, err := q.Exec(ctx, query,
		e.CompanyID, e.ID, e.Name, e.BaseSalary, e.TransportAllowance,
		e.SolidarityFund, e.RestDayPolicy, e.PatternDays, e.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, companyID string, id string) error {
	q := GetQuerier(ctx, r.db)

	// Soft delete keeps historical breakdowns resolvable.
	tag, err := q.Exec(ctx,
		`UPDATE employees SET is_active = FALSE, updated_at = NOW() WHERE company_id = $1 AND id = $2`,
		companyID, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/nominalabs/nomina-backend-go/internal/domain/payroll"
	"github.com/nominalabs/nomina-backend-go/internal/pkg/database"
)

// ========== RUNS ==========

type runRepository struct {
	db *database.DB
}

func NewRunRepository(db *database.DB) payroll.RunRepository {
	return &runRepository{db: db}
}

func (r *runRepository) Create(ctx context.Context, run *payroll.PayrollRun) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_runs (
			id, company_id, period_start, period_end, period_type,
			total_earned, total_deductions, total_net, employee_count
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := q.Exec(ctx, query,
		run.ID, run.CompanyID, run.PeriodStart, run.PeriodEnd, run.PeriodType,
		run.TotalEarned, run.TotalDeductions, run.TotalNet, run.EmployeeCount,
	)
	if err != nil {
		return fmt.Errorf("failed to create payroll run: %w", err)
	}
	return nil
}

func (r *runRepository) GetByID(ctx context.Context, companyID string, id string) (*payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	var run payroll.PayrollRun
	err := q.QueryRow(ctx,
		`SELECT id, company_id, period_start, period_end, period_type,
				total_earned, total_deductions, total_net, employee_count, created_at
		 FROM payroll_runs WHERE company_id = $1 AND id = $2`,
		companyID, id,
	).Scan(
		&run.ID, &run.CompanyID, &run.PeriodStart, &run.PeriodEnd, &run.PeriodType,
		&run.TotalEarned, &run.TotalDeductions, &run.TotalNet, &run.EmployeeCount, &run.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to get payroll run: %w", err)
	}
	return &run, nil
}

func (r *runRepository) ListByCompany(ctx context.Context, companyID string) ([]*payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, company_id, period_start, period_end, period_type,
				total_earned, total_deductions, total_net, employee_count, created_at
		 FROM payroll_runs WHERE company_id = $1 ORDER BY period_start DESC, created_at DESC`,
		companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []*payroll.PayrollRun
	for rows.Next() {
		var run payroll.PayrollRun
		err := rows.Scan(
			&run.ID, &run.CompanyID, &run.PeriodStart, &run.PeriodEnd, &run.PeriodType,
			&run.TotalEarned, &run.TotalDeductions, &run.TotalNet, &run.EmployeeCount, &run.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll run: %w", err)
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// ========== BREAKDOWNS ==========

type breakdownRepository struct {
	db *database.DB
}

func NewBreakdownRepository(db *database.DB) payroll.BreakdownRepository {
	return &breakdownRepository{db: db}
}

const breakdownColumns = `
	id, run_id, company_id, employee_id, period_start, period_end, period_type,
	prorated_salary, prorated_allowance,
	day_overtime_hours, day_overtime_value,
	night_overtime_hours, night_overtime_value,
	day_holiday_overtime_hours, day_holiday_overtime_value,
	night_holiday_overtime_hours, night_holiday_overtime_value,
	night_surcharge_hours, night_surcharge_value,
	holiday_surcharge_hours, holiday_surcharge_value,
	sunday_surcharge_hours, sunday_surcharge_value,
	extra_rest_days, extra_rest_day_value,
	total_earned, health_deduction, pension_deduction, solidarity_deduction,
	total_deductions, net_pay, warnings, status, correction_note,
	created_at, updated_at
`

func scanBreakdown(row pgx.Row) (*payroll.WageBreakdown, error) {
	var b payroll.WageBreakdown
	err := row.Scan(
		&b.ID, &b.RunID, &b.CompanyID, &b.EmployeeID, &b.PeriodStart, &b.PeriodEnd, &b.PeriodType,
		&b.ProratedSalary, &b.ProratedAllowance,
		&b.DayOvertimeHours, &b.DayOvertimeValue,
		&b.NightOvertimeHours, &b.NightOvertimeValue,
		&b.DayHolidayOTHours, &b.DayHolidayOTValue,
		&b.NightHolidayOTHours, &b.NightHolidayOTValue,
		&b.NightSurchargeHours, &b.NightSurchargeValue,
		&b.HolidaySurchargeHours, &b.HolidaySurchargeValue,
		&b.SundaySurchargeHours, &b.SundaySurchargeValue,
		&b.ExtraRestDays, &b.ExtraRestDayValue,
		&b.TotalEarned, &b.HealthDeduction, &b.PensionDeduction, &b.SolidarityDeduction,
		&b.TotalDeductions, &b.NetPay, &b.Warnings, &b.Status, &b.CorrectionNote,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *breakdownRepository) Create(ctx context.Context, b *payroll.WageBreakdown) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO wage_breakdowns (
			id, run_id, company_id, employee_id, period_start, period_end, period_type,
			prorated_salary, prorated_allowance,
			day_overtime_hours, day_overtime_value,
			night_overtime_hours, night_overtime_value,
			day_holiday_overtime_hours, day_holiday_overtime_value,
			night_holiday_overtime_hours, night_holiday_overtime_value,
			night_surcharge_hours, night_surcharge_value,
			holiday_surcharge_hours, holiday_surcharge_value,
			sunday_surcharge_hours, sunday_surcharge_value,
			extra_rest_days, extra_rest_day_value,
			total_earned, health_deduction, pension_deduction, solidarity_deduction,
			total_deductions, net_pay, warnings, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33
		)
	`

	warnings := b.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	_, err := q.Exec(ctx, query,
		b.ID, b.RunID, b.CompanyID, b.EmployeeID, b.PeriodStart, b.PeriodEnd, b.PeriodType,
		b.ProratedSalary, b.ProratedAllowance,
		b.DayOvertimeHours, b.DayOvertimeValue,
		b.NightOvertimeHours, b.NightOvertimeValue,
		b.DayHolidayOTHours, b.DayHolidayOTValue,
		b.NightHolidayOTHours, b.NightHolidayOTValue,
		b.NightSurchargeHours, b.NightSurchargeValue,
		b.HolidaySurchargeHours, b.HolidaySurchargeValue,
		b.SundaySurchargeHours, b.SundaySurchargeValue,
		b.ExtraRestDays, b.ExtraRestDayValue,
		b.TotalEarned, b.HealthDeduction, b.PensionDeduction, b.SolidarityDeduction,
		b.TotalDeductions, b.NetPay, warnings, b.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create wage breakdown: %w", err)
	}
	return nil
}

func (r *breakdownRepository) GetByID(ctx context.Context, companyID string, id string) (*payroll.WageBreakdown, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + breakdownColumns + ` FROM wage_breakdowns WHERE company_id = $1 AND id = $2`

	b, err := scanBreakdown(q.QueryRow(ctx, query, companyID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrBreakdownNotFound
		}
		return nil, fmt.Errorf("failed to get wage breakdown: %w", err)
	}
	return b, nil
}

func (r *breakdownRepository) List(ctx context.Context, companyID string, filter payroll.BreakdownFilter) ([]*payroll.WageBreakdown, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + breakdownColumns + ` FROM wage_breakdowns WHERE company_id = $1`
	args := []interface{}{companyID}

	var clauses []string
	if filter.RunID != "" {
		args = append(args, filter.RunID)
		clauses = append(clauses, fmt.Sprintf("run_id = $%d", len(args)))
	}
	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		clauses = append(clauses, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " AND " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY period_start DESC, employee_id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list wage breakdowns: %w", err)
	}
	defer rows.Close()

	var breakdowns []*payroll.WageBreakdown
	for rows.Next() {
		b, err := scanBreakdown(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wage breakdown: %w", err)
		}
		breakdowns = append(breakdowns, b)
	}
	return breakdowns, rows.Err()
}

func (r *breakdownRepository) UpdateStatus(ctx context.Context, companyID string, id string, status string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE wage_breakdowns SET status = $3, updated_at = NOW() WHERE company_id = $1 AND id = $2`,
		companyID, id, status)
	if err != nil {
		return fmt.Errorf("failed to update wage breakdown status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrBreakdownNotFound
	}
	return nil
}

func (r *breakdownRepository) ApplyCorrection(ctx context.Context, b *payroll.WageBreakdown) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE wage_breakdowns SET
			total_earned = $3, total_deductions = $4, net_pay = $5,
			status = $6, correction_note = $7, updated_at = NOW()
		WHERE company_id = $1 AND id = $2
	`

	tag, err := q.Exec(ctx, query,
		b.CompanyID, b.ID, b.TotalEarned, b.TotalDeductions, b.NetPay,
		b.Status, b.CorrectionNote)
	if err != nil {
		return fmt.Errorf("failed to apply wage breakdown correction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrBreakdownNotFound
	}
	return nil
}

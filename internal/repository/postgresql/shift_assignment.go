package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nominalabs/nomina-backend-go/internal/domain/schedule"
	"github.com/nominalabs/nomina-backend-go/internal/pkg/database"
)

type shiftAssignmentRepository struct {
	db *database.DB
}

func NewShiftAssignmentRepository(db *database.DB) schedule.AssignmentRepository {
	return &shiftAssignmentRepository{db: db}
}

func (r *shiftAssignmentRepository) Create(ctx context.Context, a *schedule.ShiftAssignment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (id, company_id, employee_id, work_date, schedule_id)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := q.Exec(ctx, query, a.ID, a.CompanyID, a.EmployeeID, a.WorkDate, a.ScheduleID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return schedule.ErrShiftAlreadyAssigned
		}
		return fmt.Errorf("failed to create shift assignment: %w", err)
	}
	return nil
}

func (r *shiftAssignmentRepository) GetByID(ctx context.Context, companyID string, id string) (*schedule.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	var a schedule.ShiftAssignment
	err := q.QueryRow(ctx,
		`SELECT id, company_id, employee_id, work_date, schedule_id, created_at
		 FROM shift_assignments WHERE company_id = $1 AND id = $2`,
		companyID, id,
	).Scan(&a.ID, &a.CompanyID, &a.EmployeeID, &a.WorkDate, &a.ScheduleID, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get shift assignment: %w", err)
	}
	return &a, nil
}

func (r *shiftAssignmentRepository) ListByEmployeeAndRange(ctx context.Context, companyID string, employeeID string, from, to time.Time) ([]*schedule.ShiftAssignment, error) {
	query := `
		SELECT id, company_id, employee_id, work_date, schedule_id, created_at
		FROM shift_assignments
		WHERE company_id = $1 AND employee_id = $2 AND work_date BETWEEN $3 AND $4
		ORDER BY work_date
	`
	return r.list(ctx, query, companyID, employeeID, from, to)
}

func (r *shiftAssignmentRepository) ListByCompanyAndRange(ctx context.Context, companyID string, from, to time.Time) ([]*schedule.ShiftAssignment, error) {
	query := `
		SELECT id, company_id, employee_id, work_date, schedule_id, created_at
		FROM shift_assignments
		WHERE company_id = $1 AND work_date BETWEEN $2 AND $3
		ORDER BY employee_id, work_date
	`
	return r.list(ctx, query, companyID, from, to)
}

func (r *shiftAssignmentRepository) list(ctx context.Context, query string, args ...interface{}) ([]*schedule.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*schedule.ShiftAssignment
	for rows.Next() {
		var a schedule.ShiftAssignment
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.EmployeeID, &a.WorkDate, &a.ScheduleID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		assignments = append(assignments, &a)
	}
	return assignments, rows.Err()
}

func (r *shiftAssignmentRepository) ExistsForScheduleBefore(ctx context.Context, scheduleID string, before time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM shift_assignments WHERE schedule_id = $1 AND work_date < $2)`,
		scheduleID, before,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check schedule usage: %w", err)
	}
	return exists, nil
}

func (r *shiftAssignmentRepository) Delete(ctx context.Context, companyID string, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM shift_assignments WHERE company_id = $1 AND id = $2`,
		companyID, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrAssignmentNotFound
	}
	return nil
}

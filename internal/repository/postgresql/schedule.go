package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nominalabs/nomina-backend-go/internal/domain/schedule"
	"github.com/nominalabs/nomina-backend-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.Repository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, d *schedule.ScheduleDefinition) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		_, err := q.Exec(txCtx,
			`INSERT INTO schedule_definitions (id, company_id, name) VALUES ($1, $2, $3)`,
			d.ID, d.CompanyID, d.Name)
		if err != nil {
			return fmt.Errorf("failed to create schedule: %w", err)
		}
		return r.insertSegments(txCtx, d)
	})
}

func (r *scheduleRepository) insertSegments(ctx context.Context, d *schedule.ScheduleDefinition) error {
	q := GetQuerier(ctx, r.db)
	for i, seg := range d.Segments {
		_, err := q.Exec(ctx,
			`INSERT INTO schedule_segments (schedule_id, position, start_time, end_time) VALUES ($1, $2, $3, $4)`,
			d.ID, i, seg.Start, seg.End)
		if err != nil {
			return fmt.Errorf("failed to create schedule segment: %w", err)
		}
	}
	return nil
}

func (r *scheduleRepository) GetByID(ctx context.Context, companyID string, id string) (*schedule.ScheduleDefinition, error) {
	q := GetQuerier(ctx, r.db)

	var d schedule.ScheduleDefinition
	err := q.QueryRow(ctx,
		`SELECT id, company_id, name, created_at, updated_at FROM schedule_definitions WHERE company_id = $1 AND id = $2`,
		companyID, id,
	).Scan(&d.ID, &d.CompanyID, &d.Name, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	if err := r.loadSegments(ctx, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *scheduleRepository) loadSegments(ctx context.Context, d *schedule.ScheduleDefinition) error {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT start_time, end_time FROM schedule_segments WHERE schedule_id = $1 ORDER BY position`,
		d.ID)
	if err != nil {
		return fmt.Errorf("failed to load schedule segments: %w", err)
	}
	defer rows.Close()

	d.Segments = nil
	for rows.Next() {
		var seg schedule.TimeSegment
		if err := rows.Scan(&seg.Start, &seg.End); err != nil {
			return fmt.Errorf("failed to scan schedule segment: %w", err)
		}
		d.Segments = append(d.Segments, seg)
	}
	return rows.Err()
}

func (r *scheduleRepository) ListByCompany(ctx context.Context, companyID string) ([]*schedule.ScheduleDefinition, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, company_id, name, created_at, updated_at FROM schedule_definitions WHERE company_id = $1 ORDER BY name`,
		companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	var definitions []*schedule.ScheduleDefinition
	for rows.Next() {
		var d schedule.ScheduleDefinition
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		definitions = append(definitions, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, d := range definitions {
		if err := r.loadSegments(ctx, d); err != nil {
			return nil, err
		}
	}
	return definitions, nil
}

func (r *scheduleRepository) Update(ctx context.Context, d *schedule.ScheduleDefinition) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		tag, err := q.Exec(txCtx,
			`UPDATE schedule_definitions SET name = $3, updated_at = NOW() WHERE company_id = $1 AND id = $2`,
			d.CompanyID, d.ID, d.Name)
		if err != nil {
			return fmt.Errorf("failed to update schedule: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return schedule.ErrScheduleNotFound
		}

		if _, err := q.Exec(txCtx,
			`DELETE FROM schedule_segments WHERE schedule_id = $1`, d.ID); err != nil {
			return fmt.Errorf("failed to replace schedule segments: %w", err)
		}
		return r.insertSegments(txCtx, d)
	})
}

func (r *scheduleRepository) Delete(ctx context.Context, companyID string, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM schedule_definitions WHERE company_id = $1 AND id = $2`,
		companyID, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nominalabs/nomina-backend-go/internal/domain/holiday"
	"github.com/nominalabs/nomina-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.Repository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) Create(ctx context.Context, h *holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, company_id, holiday_date, description)
		VALUES ($1, $2, $3, $4)
	`

	_, err := q.Exec(ctx, query, h.ID, h.CompanyID, h.HolidayDate, h.Description)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.ErrHolidayExists
		}
		return fmt.Errorf("failed to create holiday: %w", err)
	}
	return nil
}

func (r *holidayRepository) GetByID(ctx context.Context, companyID string, id string) (*holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	var h holiday.Holiday
	err := q.QueryRow(ctx,
		`SELECT id, company_id, holiday_date, description, created_at
		 FROM holidays WHERE company_id = $1 AND id = $2`,
		companyID, id,
	).Scan(&h.ID, &h.CompanyID, &h.HolidayDate, &h.Description, &h.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, holiday.ErrHolidayNotFound
		}
		return nil, fmt.Errorf("failed to get holiday: %w", err)
	}
	return &h, nil
}

func (r *holidayRepository) ListByRange(ctx context.Context, companyID string, from, to time.Time) ([]*holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, company_id, holiday_date, description, created_at
		 FROM holidays
		 WHERE company_id = $1 AND holiday_date BETWEEN $2 AND $3
		 ORDER BY holiday_date`,
		companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []*holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.CompanyID, &h.HolidayDate, &h.Description, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, &h)
	}
	return holidays, rows.Err()
}

func (r *holidayRepository) Delete(ctx context.Context, companyID string, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM holidays WHERE company_id = $1 AND id = $2`,
		companyID, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

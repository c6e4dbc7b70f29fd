package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/nominalabs/nomina-backend-go/internal/domain/payroll"
	"github.com/nominalabs/nomina-backend-go/internal/pkg/database"
)

type formulasRepository struct {
	db *database.DB
}

func NewFormulasRepository(db *database.DB) payroll.FormulasRepository {
	return &formulasRepository{db: db}
}

// The surcharge_formulas columns store whole percents (35.00) while the
// domain carries fractions (0.35). This repository is the single
// conversion point between the two scales.

var hundred = decimal.NewFromInt(100)

func pctToDB(fraction decimal.Decimal) decimal.Decimal {
	return fraction.Mul(hundred)
}

func pctFromDB(whole decimal.Decimal) decimal.Decimal {
	return whole.Div(hundred)
}

func (r *formulasRepository) GetByCompany(ctx context.Context, companyID string) (*payroll.SurchargeFormulas, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT company_id, hourly_divisor, daily_divisor, weekly_hour_threshold,
			   night_surcharge_pct, day_holiday_surcharge_pct, night_holiday_surcharge_pct,
			   day_sunday_surcharge_pct, night_sunday_surcharge_pct,
			   day_overtime_pct, night_overtime_pct,
			   day_sunday_holiday_overtime_pct, night_sunday_holiday_overtime_pct,
			   updated_at
		FROM surcharge_formulas
		WHERE company_id = $1
	`

	var f payroll.SurchargeFormulas
	err := q.QueryRow(ctx, query, companyID).Scan(
		&f.CompanyID, &f.HourlyDivisor, &f.DailyDivisor, &f.WeeklyHourThreshold,
		&f.NightSurchargePct, &f.DayHolidaySurchargePct, &f.NightHolidaySurchargePct,
		&f.DaySundaySurchargePct, &f.NightSundaySurchargePct,
		&f.DayOvertimePct, &f.NightOvertimePct,
		&f.DaySundayHolidayOTPct, &f.NightSundayHolidayOTPct,
		&f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrFormulasNotFound
		}
		return nil, fmt.Errorf("failed to get surcharge formulas: %w", err)
	}

	f.NightSurchargePct = pctFromDB(f.NightSurchargePct)
	f.DayHolidaySurchargePct = pctFromDB(f.DayHolidaySurchargePct)
	f.NightHolidaySurchargePct = pctFromDB(f.NightHolidaySurchargePct)
	f.DaySundaySurchargePct = pctFromDB(f.DaySundaySurchargePct)
	f.NightSundaySurchargePct = pctFromDB(f.NightSundaySurchargePct)
	f.DayOvertimePct = pctFromDB(f.DayOvertimePct)
	f.NightOvertimePct = pctFromDB(f.NightOvertimePct)
	f.DaySundayHolidayOTPct = pctFromDB(f.DaySundayHolidayOTPct)
	f.NightSundayHolidayOTPct = pctFromDB(f.NightSundayHolidayOTPct)

	return &f, nil
}

func (r *formulasRepository) Upsert(ctx context.Context, f *payroll.SurchargeFormulas) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO surcharge_formulas (
			company_id, hourly_divisor, daily_divisor, weekly_hour_threshold,
			night_surcharge_pct, day_holiday_surcharge_pct, night_holiday_surcharge_pct,
			day_sunday_surcharge_pct, night_sunday_surcharge_pct,
			day_overtime_pct, night_overtime_pct,
			day_sunday_holiday_overtime_pct, night_sunday_holiday_overtime_pct
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (company_id) DO UPDATE SET
			hourly_divisor = EXCLUDED.hourly_divisor,
			daily_divisor = EXCLUDED.daily_divisor,
			weekly_hour_threshold = EXCLUDED.weekly_hour_threshold,
			night_surcharge_pct = EXCLUDED.night_surcharge_pct,
			day_holiday_surcharge_pct = EXCLUDED.day_holiday_surcharge_pct,
			night_holiday_surcharge_pct = EXCLUDED.night_holiday_surcharge_pct,
			day_sunday_surcharge_pct = EXCLUDED.day_sunday_surcharge_pct,
			night_sunday_surcharge_pct = EXCLUDED.night_sunday_surcharge_pct,
			day_overtime_pct = EXCLUDED.day_overtime_pct,
			night_overtime_pct = EXCLUDED.night_overtime_pct,
			day_sunday_holiday_overtime_pct = EXCLUDED.day_sunday_holiday_overtime_pct,
			night_sunday_holiday_overtime_pct = EXCLUDED.night_sunday_holiday_overtime_pct,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		f.CompanyID, f.HourlyDivisor, f.DailyDivisor, f.WeeklyHourThreshold,
		pctToDB(f.NightSurchargePct), pctToDB(f.DayHolidaySurchargePct), pctToDB(f.NightHolidaySurchargePct),
		pctToDB(f.DaySundaySurchargePct), pctToDB(f.NightSundaySurchargePct),
		pctToDB(f.DayOvertimePct), pctToDB(f.NightOvertimePct),
		pctToDB(f.DaySundayHolidayOTPct), pctToDB(f.NightSundayHolidayOTPct),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert surcharge formulas: %w", err)
	}
	return nil
}

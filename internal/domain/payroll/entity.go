package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// ========== PERIODS & STATUS ==========

const (
	PeriodFullMonth = "full_month"
	PeriodHalfMonth = "half_month"
)

const (
	StatusDraft     = "draft"
	StatusDelivered = "delivered"
	StatusCorrected = "corrected"
)

// ========== SURCHARGE FORMULAS ==========

// SurchargeFormulas is the configuration every wage computation reads.
// All percentage coefficients are fractions (0.35 means +35%). The
// database column scale is whole percents; the repository converts, so
// nothing above it ever mixes the two scales.
type SurchargeFormulas struct {
	CompanyID           string
	HourlyDivisor       decimal.Decimal
	DailyDivisor        decimal.Decimal
	WeeklyHourThreshold decimal.Decimal

	NightSurchargePct        decimal.Decimal
	DayHolidaySurchargePct   decimal.Decimal
	NightHolidaySurchargePct decimal.Decimal
	DaySundaySurchargePct    decimal.Decimal
	NightSundaySurchargePct  decimal.Decimal

	DayOvertimePct          decimal.Decimal
	NightOvertimePct        decimal.Decimal
	DaySundayHolidayOTPct   decimal.Decimal
	NightSundayHolidayOTPct decimal.Decimal

	UpdatedAt time.Time
}

// DefaultFormulas returns the statutory Colombian coefficients: a 240h
// monthly hour divisor, 30-day month, 48h weekly threshold, and the
// usual surcharge/overtime percentages.
func DefaultFormulas(companyID string) *SurchargeFormulas {
	return &SurchargeFormulas{
		CompanyID:           companyID,
		HourlyDivisor:       decimal.NewFromInt(240),
		DailyDivisor:        decimal.NewFromInt(30),
		WeeklyHourThreshold: decimal.NewFromInt(48),

		NightSurchargePct:        decimal.RequireFromString("0.35"),
		DayHolidaySurchargePct:   decimal.RequireFromString("0.75"),
		NightHolidaySurchargePct: decimal.RequireFromString("1.10"),
		DaySundaySurchargePct:    decimal.RequireFromString("0.75"),
		NightSundaySurchargePct:  decimal.RequireFromString("1.10"),

		DayOvertimePct:          decimal.RequireFromString("0.25"),
		NightOvertimePct:        decimal.RequireFromString("0.75"),
		DaySundayHolidayOTPct:   decimal.RequireFromString("1.00"),
		NightSundayHolidayOTPct: decimal.RequireFromString("1.50"),
	}
}

// Validate enforces the configuration invariants. Divisors and the
// weekly threshold must be strictly positive; coefficients may be zero
// but never negative.
func (f *SurchargeFormulas) Validate() error {
	if f.HourlyDivisor.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidDivisor
	}
	if f.DailyDivisor.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidDivisor
	}
	if f.WeeklyHourThreshold.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidThreshold
	}
	pcts := []decimal.Decimal{
		f.NightSurchargePct,
		f.DayHolidaySurchargePct,
		f.NightHolidaySurchargePct,
		f.DaySundaySurchargePct,
		f.NightSundaySurchargePct,
		f.DayOvertimePct,
		f.NightOvertimePct,
		f.DaySundayHolidayOTPct,
		f.NightSundayHolidayOTPct,
	}
	for _, pct := range pcts {
		if pct.IsNegative() {
			return ErrNegativeCoefficient
		}
	}
	return nil
}

// ========== WAGE BREAKDOWN ==========

// WageBreakdown is one employee's computed wages for one pay period.
// It is persisted as an immutable record of the run; edits after
// delivery go through the correction operation, never a recompute.
type WageBreakdown struct {
	ID         string
	RunID      string
	CompanyID  string
	EmployeeID string

	PeriodStart time.Time
	PeriodEnd   time.Time
	PeriodType  string

	ProratedSalary    decimal.Decimal
	ProratedAllowance decimal.Decimal

	DayOvertimeHours    decimal.Decimal
	DayOvertimeValue    decimal.Decimal
	NightOvertimeHours  decimal.Decimal
	NightOvertimeValue  decimal.Decimal
	DayHolidayOTHours   decimal.Decimal
	DayHolidayOTValue   decimal.Decimal
	NightHolidayOTHours decimal.Decimal
	NightHolidayOTValue decimal.Decimal

	NightSurchargeHours   decimal.Decimal
	NightSurchargeValue   decimal.Decimal
	HolidaySurchargeHours decimal.Decimal
	HolidaySurchargeValue decimal.Decimal
	SundaySurchargeHours  decimal.Decimal
	SundaySurchargeValue  decimal.Decimal

	ExtraRestDays     int
	ExtraRestDayValue decimal.Decimal

	TotalEarned decimal.Decimal

	HealthDeduction     decimal.Decimal
	PensionDeduction    decimal.Decimal
	SolidarityDeduction decimal.Decimal
	TotalDeductions     decimal.Decimal

	NetPay decimal.Decimal

	Warnings       []string
	Status         string
	CorrectionNote *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ========== PAYROLL RUN ==========

// PayrollRun is the period-level aggregate over all breakdowns the run
// produced.
type PayrollRun struct {
	ID        string
	CompanyID string

	PeriodStart time.Time
	PeriodEnd   time.Time
	PeriodType  string

	TotalEarned     decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNet        decimal.Decimal
	EmployeeCount   int

	CreatedAt time.Time
}

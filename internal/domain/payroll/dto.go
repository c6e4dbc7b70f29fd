package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nominalabs/nomina-backend-go/internal/pkg/validator"
)

// ========== REQUESTS ==========

type RunPayrollRequest struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	PeriodType  string `json:"period_type"`
}

func (r *RunPayrollRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.PeriodStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "period start must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.PeriodEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "period end must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "period end cannot precede period start"})
	}

	if !validator.IsInSlice(r.PeriodType, []string{PeriodFullMonth, PeriodHalfMonth}) {
		errs = append(errs, validator.ValidationError{Field: "period_type", Message: "period type must be full_month or half_month"})
	}

	return errs
}

// UpdateFormulasRequest carries fractional coefficients, matching the
// domain scale. Only supplied fields change.
type UpdateFormulasRequest struct {
	HourlyDivisor       *decimal.Decimal `json:"hourly_divisor"`
	DailyDivisor        *decimal.Decimal `json:"daily_divisor"`
	WeeklyHourThreshold *decimal.Decimal `json:"weekly_hour_threshold"`

	NightSurchargePct        *decimal.Decimal `json:"night_surcharge_pct"`
	DayHolidaySurchargePct   *decimal.Decimal `json:"day_holiday_surcharge_pct"`
	NightHolidaySurchargePct *decimal.Decimal `json:"night_holiday_surcharge_pct"`
	DaySundaySurchargePct    *decimal.Decimal `json:"day_sunday_surcharge_pct"`
	NightSundaySurchargePct  *decimal.Decimal `json:"night_sunday_surcharge_pct"`

	DayOvertimePct          *decimal.Decimal `json:"day_overtime_pct"`
	NightOvertimePct        *decimal.Decimal `json:"night_overtime_pct"`
	DaySundayHolidayOTPct   *decimal.Decimal `json:"day_sunday_holiday_overtime_pct"`
	NightSundayHolidayOTPct *decimal.Decimal `json:"night_sunday_holiday_overtime_pct"`
}

// Apply overlays the supplied fields onto f.
func (r *UpdateFormulasRequest) Apply(f *SurchargeFormulas) {
	setIf := func(dst *decimal.Decimal, src *decimal.Decimal) {
		if src != nil {
			*dst = *src
		}
	}
	setIf(&f.HourlyDivisor, r.HourlyDivisor)
	setIf(&f.DailyDivisor, r.DailyDivisor)
	setIf(&f.WeeklyHourThreshold, r.WeeklyHourThreshold)
	setIf(&f.NightSurchargePct, r.NightSurchargePct)
	setIf(&f.DayHolidaySurchargePct, r.DayHolidaySurchargePct)
	setIf(&f.NightHolidaySurchargePct, r.NightHolidaySurchargePct)
	setIf(&f.DaySundaySurchargePct, r.DaySundaySurchargePct)
	setIf(&f.NightSundaySurchargePct, r.NightSundaySurchargePct)
	setIf(&f.DayOvertimePct, r.DayOvertimePct)
	setIf(&f.NightOvertimePct, r.NightOvertimePct)
	setIf(&f.DaySundayHolidayOTPct, r.DaySundayHolidayOTPct)
	setIf(&f.NightSundayHolidayOTPct, r.NightSundayHolidayOTPct)
}

type CorrectBreakdownRequest struct {
	Note            string           `json:"note"`
	TotalEarned     *decimal.Decimal `json:"total_earned"`
	TotalDeductions *decimal.Decimal `json:"total_deductions"`
}

func (r *CorrectBreakdownRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Note) {
		errs = append(errs, validator.ValidationError{Field: "note", Message: "a correction note is required"})
	}
	if r.TotalEarned == nil && r.TotalDeductions == nil {
		errs = append(errs, validator.ValidationError{Field: "total_earned", Message: "a correction must change at least one total"})
	}
	if r.TotalEarned != nil && r.TotalEarned.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "total_earned", Message: "total earned cannot be negative"})
	}
	if r.TotalDeductions != nil && r.TotalDeductions.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "total_deductions", Message: "total deductions cannot be negative"})
	}

	return errs
}

type BreakdownFilter struct {
	RunID      string
	EmployeeID string
	Status     string
}

// ========== RESPONSES ==========

type FormulasResponse struct {
	HourlyDivisor       decimal.Decimal `json:"hourly_divisor"`
	DailyDivisor        decimal.Decimal `json:"daily_divisor"`
	WeeklyHourThreshold decimal.Decimal `json:"weekly_hour_threshold"`

	NightSurchargePct        decimal.Decimal `json:"night_surcharge_pct"`
	DayHolidaySurchargePct   decimal.Decimal `json:"day_holiday_surcharge_pct"`
	NightHolidaySurchargePct decimal.Decimal `json:"night_holiday_surcharge_pct"`
	DaySundaySurchargePct    decimal.Decimal `json:"day_sunday_surcharge_pct"`
	NightSundaySurchargePct  decimal.Decimal `json:"night_sunday_surcharge_pct"`

	DayOvertimePct          decimal.Decimal `json:"day_overtime_pct"`
	NightOvertimePct        decimal.Decimal `json:"night_overtime_pct"`
	DaySundayHolidayOTPct   decimal.Decimal `json:"day_sunday_holiday_overtime_pct"`
	NightSundayHolidayOTPct decimal.Decimal `json:"night_sunday_holiday_overtime_pct"`

	UpdatedAt time.Time `json:"updated_at"`
}

func ToFormulasResponse(f *SurchargeFormulas) *FormulasResponse {
	return &FormulasResponse{
		HourlyDivisor:            f.HourlyDivisor,
		DailyDivisor:             f.DailyDivisor,
		WeeklyHourThreshold:      f.WeeklyHourThreshold,
		NightSurchargePct:        f.NightSurchargePct,
		DayHolidaySurchargePct:   f.DayHolidaySurchargePct,
		NightHolidaySurchargePct: f.NightHolidaySurchargePct,
		DaySundaySurchargePct:    f.DaySundaySurchargePct,
		NightSundaySurchargePct:  f.NightSundaySurchargePct,
		DayOvertimePct:           f.DayOvertimePct,
		NightOvertimePct:         f.NightOvertimePct,
		DaySundayHolidayOTPct:    f.DaySundayHolidayOTPct,
		NightSundayHolidayOTPct:  f.NightSundayHolidayOTPct,
		UpdatedAt:                f.UpdatedAt,
	}
}

type HourValuePair struct {
	Hours decimal.Decimal `json:"hours"`
	Value decimal.Decimal `json:"value"`
}

type BreakdownResponse struct {
	ID         string `json:"id"`
	RunID      string `json:"run_id"`
	EmployeeID string `json:"employee_id"`

	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	PeriodType  string `json:"period_type"`

	ProratedSalary    decimal.Decimal `json:"prorated_salary"`
	ProratedAllowance decimal.Decimal `json:"prorated_allowance"`

	DayOvertime      HourValuePair `json:"day_overtime"`
	NightOvertime    HourValuePair `json:"night_overtime"`
	DayHolidayOT     HourValuePair `json:"day_sunday_holiday_overtime"`
	NightHolidayOT   HourValuePair `json:"night_sunday_holiday_overtime"`
	NightSurcharge   HourValuePair `json:"night_surcharge"`
	HolidaySurcharge HourValuePair `json:"holiday_surcharge"`
	SundaySurcharge  HourValuePair `json:"sunday_surcharge"`

	ExtraRestDays     int             `json:"extra_rest_days"`
	ExtraRestDayValue decimal.Decimal `json:"extra_rest_day_value"`

	TotalEarned decimal.Decimal `json:"total_earned"`

	HealthDeduction     decimal.Decimal `json:"health_deduction"`
	PensionDeduction    decimal.Decimal `json:"pension_deduction"`
	SolidarityDeduction decimal.Decimal `json:"solidarity_deduction"`
	TotalDeductions     decimal.Decimal `json:"total_deductions"`

	NetPay decimal.Decimal `json:"net_pay"`

	Warnings       []string `json:"warnings"`
	Status         string   `json:"status"`
	CorrectionNote *string  `json:"correction_note,omitempty"`
}

func ToBreakdownResponse(b *WageBreakdown) *BreakdownResponse {
	warnings := b.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return &BreakdownResponse{
		ID:                  b.ID,
		RunID:               b.RunID,
		EmployeeID:          b.EmployeeID,
		PeriodStart:         b.PeriodStart.Format("2006-01-02"),
		PeriodEnd:           b.PeriodEnd.Format("2006-01-02"),
		PeriodType:          b.PeriodType,
		ProratedSalary:      b.ProratedSalary,
		ProratedAllowance:   b.ProratedAllowance,
		DayOvertime:         HourValuePair{Hours: b.DayOvertimeHours, Value: b.DayOvertimeValue},
		NightOvertime:       HourValuePair{Hours: b.NightOvertimeHours, Value: b.NightOvertimeValue},
		DayHolidayOT:        HourValuePair{Hours: b.DayHolidayOTHours, Value: b.DayHolidayOTValue},
		NightHolidayOT:      HourValuePair{Hours: b.NightHolidayOTHours, Value: b.NightHolidayOTValue},
		NightSurcharge:      HourValuePair{Hours: b.NightSurchargeHours, Value: b.NightSurchargeValue},
		HolidaySurcharge:    HourValuePair{Hours: b.HolidaySurchargeHours, Value: b.HolidaySurchargeValue},
		SundaySurcharge:     HourValuePair{Hours: b.SundaySurchargeHours, Value: b.SundaySurchargeValue},
		ExtraRestDays:       b.ExtraRestDays,
		ExtraRestDayValue:   b.ExtraRestDayValue,
		TotalEarned:         b.TotalEarned,
		HealthDeduction:     b.HealthDeduction,
		PensionDeduction:    b.PensionDeduction,
		SolidarityDeduction: b.SolidarityDeduction,
		TotalDeductions:     b.TotalDeductions,
		NetPay:              b.NetPay,
		Warnings:            warnings,
		Status:              b.Status,
		CorrectionNote:      b.CorrectionNote,
	}
}

type RunResponse struct {
	ID              string          `json:"id"`
	PeriodStart     string          `json:"period_start"`
	PeriodEnd       string          `json:"period_end"`
	PeriodType      string          `json:"period_type"`
	TotalEarned     decimal.Decimal `json:"total_earned"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNet        decimal.Decimal `json:"total_net"`
	EmployeeCount   int             `json:"employee_count"`
	CreatedAt       time.Time       `json:"created_at"`
}

func ToRunResponse(r *PayrollRun) *RunResponse {
	return &RunResponse{
		ID:              r.ID,
		PeriodStart:     r.PeriodStart.Format("2006-01-02"),
		PeriodEnd:       r.PeriodEnd.Format("2006-01-02"),
		PeriodType:      r.PeriodType,
		TotalEarned:     r.TotalEarned,
		TotalDeductions: r.TotalDeductions,
		TotalNet:        r.TotalNet,
		EmployeeCount:   r.EmployeeCount,
		CreatedAt:       r.CreatedAt,
	}
}

package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nominalabs/nomina-backend-go/internal/domain/employee"
	"github.com/nominalabs/nomina-backend-go/internal/domain/payroll"
	"github.com/nominalabs/nomina-backend-go/internal/domain/schedule"
)

// EmployeeInput is one employee and their shift assignments inside the
// pay period.
type EmployeeInput struct {
	Employee *employee.Employee
	Shifts   []*schedule.ShiftAssignment
}

// PeriodInput carries everything a run reads. All collaborator data is
// materialized up front; the engine itself performs no I/O and treats
// the input as immutable for the duration of the run.
type PeriodInput struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	PeriodType  string
	Formulas    *payroll.SurchargeFormulas
	Schedules   map[string]*schedule.ScheduleDefinition
	Holidays    map[string]bool
	Employees   []EmployeeInput
}

// PeriodResult is one breakdown per employee plus period totals.
type PeriodResult struct {
	Breakdowns      []*payroll.WageBreakdown
	TotalEarned     decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNet        decimal.Decimal
	EmployeeCount   int
}

// Engine is the pure wage computation. Runs on identical inputs yield
// identical output.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Run computes one pay period. Configuration problems fail the whole
// run before any result exists; per-shift problems degrade to zero
// hours with a warning on the affected employee's breakdown.
func (e *Engine) Run(input PeriodInput) (*PeriodResult, error) {
	if input.Formulas == nil {
		return nil, payroll.ErrFormulasNotFound
	}
	if err := input.Formulas.Validate(); err != nil {
		return nil, err
	}
	if input.PeriodEnd.Before(input.PeriodStart) {
		return nil, payroll.ErrInvalidPeriod
	}

	result := &PeriodResult{
		TotalEarned:     decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNet:        decimal.Zero,
	}

	for _, in := range input.Employees {
		breakdown := e.runEmployee(in, input)
		breakdown.PeriodStart = input.PeriodStart
		breakdown.PeriodEnd = input.PeriodEnd

		result.Breakdowns = append(result.Breakdowns, breakdown)
		result.TotalEarned = result.TotalEarned.Add(breakdown.TotalEarned)
		result.TotalDeductions = result.TotalDeductions.Add(breakdown.TotalDeductions)
		result.TotalNet = result.TotalNet.Add(breakdown.NetPay)
	}
	result.EmployeeCount = len(result.Breakdowns)

	return result, nil
}

func (e *Engine) runEmployee(in EmployeeInput, input PeriodInput) *payroll.WageBreakdown {
	var warnings []string

	restWeekday, derived := resolveRestDay(in.Employee)
	if !derived {
		warnings = append(warnings,
			"weekly pattern leaves no free day, defaulting rest day to Sunday")
	}

	weeks, weekWarnings := buildWeeks(in.Shifts, input.Schedules, restWeekday)
	warnings = append(warnings, weekWarnings...)

	extraRestDays := 0
	for _, w := range weeks {
		if w.extraRestDay {
			extraRestDays++
		}
	}

	buckets := classifyWeeks(weeks, input.Holidays, restWeekday, input.Formulas.WeeklyHourThreshold)

	breakdown := computeWage(in.Employee, buckets, extraRestDays, input.Formulas, input.PeriodType)
	breakdown.Warnings = warnings
	return breakdown
}

package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nominalabs/nomina-backend-go/internal/domain/payroll"
	"github.com/nominalabs/nomina-backend-go/internal/domain/schedule"
)

func periodInput(employees ...EmployeeInput) PeriodInput {
	return PeriodInput{
		PeriodStart: testMonday,
		PeriodEnd:   testMonday.AddDate(0, 0, 13),
		PeriodType:  payroll.PeriodFullMonth,
		Formulas:    payroll.DefaultFormulas("co-1"),
		Schedules:   dayShiftCatalog(),
		Holidays:    map[string]bool{},
		Employees:   employees,
	}
}

func TestEngineRunRequiresFormulas(t *testing.T) {
	input := periodInput()
	input.Formulas = nil

	_, err := NewEngine().Run(input)

	assert.ErrorIs(t, err, payroll.ErrFormulasNotFound)
}

func TestEngineRunRejectsInvalidDivisor(t *testing.T) {
	input := periodInput(EmployeeInput{Employee: testEmployee()})
	input.Formulas.HourlyDivisor = decimal.Zero

	_, err := NewEngine().Run(input)

	assert.ErrorIs(t, err, payroll.ErrInvalidDivisor)
}

func TestEngineRunRejectsInvertedPeriod(t *testing.T) {
	input := periodInput()
	input.PeriodEnd = input.PeriodStart.AddDate(0, 0, -1)

	_, err := NewEngine().Run(input)

	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestEngineRunIsIdempotent(t *testing.T) {
	emp := testEmployee()
	shifts := assignmentsOn("night-8h",
		testMonday,
		testMonday.AddDate(0, 0, 1),
		testMonday.AddDate(0, 0, 2),
	)
	input := periodInput(EmployeeInput{Employee: emp, Shifts: shifts})

	first, err := NewEngine().Run(input)
	require.NoError(t, err)
	second, err := NewEngine().Run(input)
	require.NoError(t, err)

	require.Len(t, first.Breakdowns, 1)
	require.Len(t, second.Breakdowns, 1)
	assert.Equal(t, first.Breakdowns[0].NetPay.String(), second.Breakdowns[0].NetPay.String())
	assert.Equal(t, first.TotalNet.String(), second.TotalNet.String())
	assert.Equal(t, first.TotalEarned.String(), second.TotalEarned.String())
}

func TestEngineRunMissingScheduleWarnsAndContinues(t *testing.T) {
	emp := testEmployee()
	shifts := assignmentsOn("day-8h", testMonday)
	shifts = append(shifts, assignmentsOn("ghost", testMonday.AddDate(0, 0, 1))...)
	input := periodInput(EmployeeInput{Employee: emp, Shifts: shifts})

	result, err := NewEngine().Run(input)

	require.NoError(t, err)
	require.Len(t, result.Breakdowns, 1)
	b := result.Breakdowns[0]
	require.Len(t, b.Warnings, 1)
	assert.Contains(t, b.Warnings[0], "unknown schedule")
	// The broken shift contributed zero hours, so base pay stands alone.
	assertMoney(t, "2600000", b.TotalEarned, "total earned")
}

func TestEngineRunSundayShiftInFreshWeekEarnsSurcharge(t *testing.T) {
	// Week one holds 48h across six shifts ending on Sunday, week two a
	// lone Sunday shift after the running total reset. Both Sundays stay
	// at or under their week's threshold, so they earn the day sunday
	// surcharge with zero ordinary overtime. Rest day is pattern-derived
	// to Wednesday, which stays free in both weeks.
	emp := testEmployee()
	emp.RestDayPolicy = "pattern_derived"
	emp.PatternDays = []int{0, 1, 2, 4, 5, 6}

	var shifts []*schedule.ShiftAssignment
	for _, off := range []int{0, 1, 3, 4, 5, 6} { // Mon through Sun, skipping Wed
		shifts = append(shifts, assignmentsOn("day-8h", testMonday.AddDate(0, 0, off))...)
	}
	// Sunday of the second week.
	shifts = append(shifts, assignmentsOn("day-8h", testMonday.AddDate(0, 0, 13))...)

	result, err := NewEngine().Run(periodInput(EmployeeInput{Employee: emp, Shifts: shifts}))

	require.NoError(t, err)
	b := result.Breakdowns[0]
	assertHours(t, "0", b.DayOvertimeHours, "ordinary overtime")
	// Both Sundays stayed under their week's threshold.
	assertHours(t, "16", b.SundaySurchargeHours, "sunday surcharge hours")
}

func TestEngineRunMandatoryRestShiftIsHighestTier(t *testing.T) {
	emp := testEmployee() // fixed Sunday rest
	shifts := assignmentsOn("day-8h", testMonday.AddDate(0, 0, 6))

	result, err := NewEngine().Run(periodInput(EmployeeInput{Employee: emp, Shifts: shifts}))

	require.NoError(t, err)
	b := result.Breakdowns[0]
	assertHours(t, "8", b.DayHolidayOTHours, "rest day overtime hours")
	assertHours(t, "0", b.SundaySurchargeHours, "sunday surcharge hours")
	// 8 x 10,000 x 2.00
	assertMoney(t, "160000", b.DayHolidayOTValue, "rest day overtime value")
}

func TestEngineRunSeventhDayAddsRestCompensation(t *testing.T) {
	emp := testEmployee()
	var dates []time.Time
	for i := 0; i < 7; i++ {
		dates = append(dates, testMonday.AddDate(0, 0, i))
	}

	result, err := NewEngine().Run(periodInput(EmployeeInput{Employee: emp, Shifts: assignmentsOn("day-8h", dates...)}))

	require.NoError(t, err)
	b := result.Breakdowns[0]
	assert.Equal(t, 1, b.ExtraRestDays)
	// dailyRate = 2,400,000 / 30
	assertMoney(t, "80000", b.ExtraRestDayValue, "rest compensation")
}

func TestEngineRunSixShiftsWithRestHonoredCostNothing(t *testing.T) {
	emp := testEmployee()
	var dates []time.Time
	for i := 0; i < 6; i++ {
		dates = append(dates, testMonday.AddDate(0, 0, i))
	}

	result, err := NewEngine().Run(periodInput(EmployeeInput{Employee: emp, Shifts: assignmentsOn("day-8h", dates...)}))

	require.NoError(t, err)
	b := result.Breakdowns[0]
	assert.Equal(t, 0, b.ExtraRestDays)
	assertMoney(t, "0", b.ExtraRestDayValue, "rest compensation")
}

func TestEngineRunFullPatternWarnsAndDefaultsSunday(t *testing.T) {
	emp := testEmployee()
	emp.RestDayPolicy = "pattern_derived"
	emp.PatternDays = []int{0, 1, 2, 3, 4, 5, 6}

	result, err := NewEngine().Run(periodInput(EmployeeInput{Employee: emp}))

	require.NoError(t, err)
	require.Len(t, result.Breakdowns, 1)
	require.NotEmpty(t, result.Breakdowns[0].Warnings)
	assert.Contains(t, result.Breakdowns[0].Warnings[0], "no free day")
}

func TestEngineRunPeriodTotalsSumBreakdowns(t *testing.T) {
	empA := testEmployee()
	empB := testEmployee()
	empB.ID = "emp-2"
	empB.BaseSalary = decimal.NewFromInt(1800000)

	result, err := NewEngine().Run(periodInput(
		EmployeeInput{Employee: empA, Shifts: assignmentsOn("day-8h", testMonday)},
		EmployeeInput{Employee: empB, Shifts: assignmentsOn("night-8h", testMonday)},
	))

	require.NoError(t, err)
	require.Equal(t, 2, result.EmployeeCount)

	earned := decimal.Zero
	deductions := decimal.Zero
	net := decimal.Zero
	for _, b := range result.Breakdowns {
		earned = earned.Add(b.TotalEarned)
		deductions = deductions.Add(b.TotalDeductions)
		net = net.Add(b.NetPay)
	}
	assert.True(t, result.TotalEarned.Equal(earned))
	assert.True(t, result.TotalDeductions.Equal(deductions))
	assert.True(t, result.TotalNet.Equal(net))
}

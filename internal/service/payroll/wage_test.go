package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nominalabs/nomina-backend-go/internal/domain/employee"
	"github.com/nominalabs/nomina-backend-go/internal/domain/payroll"
)

func testEmployee() *employee.Employee {
	return &employee.Employee{
		ID:                 "emp-1",
		CompanyID:          "co-1",
		Name:               "Marta Ruiz",
		Code:               "2024-0001",
		BaseSalary:         decimal.NewFromInt(2400000),
		TransportAllowance: decimal.NewFromInt(200000),
		SolidarityFund:     decimal.NewFromInt(50000),
		RestDayPolicy:      employee.RestPolicyFixedSunday,
	}
}

func assertMoney(t *testing.T, want string, got decimal.Decimal, label string) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "%s: want %s, got %s", label, want, got)
}

func TestComputeWageBaseOnly(t *testing.T) {
	// Full month, no extra hours: salary plus allowance in, statutory
	// deductions out.
	out := computeWage(testEmployee(), hourBuckets{}, 0, payroll.DefaultFormulas("co-1"), payroll.PeriodFullMonth)

	assertMoney(t, "2400000", out.ProratedSalary, "prorated salary")
	assertMoney(t, "200000", out.ProratedAllowance, "prorated allowance")
	assertMoney(t, "2600000", out.TotalEarned, "total earned")

	// Deduction basis excludes the transport allowance.
	assertMoney(t, "96000", out.HealthDeduction, "health")
	assertMoney(t, "96000", out.PensionDeduction, "pension")
	assertMoney(t, "50000", out.SolidarityDeduction, "solidarity")
	assertMoney(t, "242000", out.TotalDeductions, "total deductions")
	assertMoney(t, "2358000", out.NetPay, "net pay")
}

func TestComputeWageHalfMonthProrates(t *testing.T) {
	out := computeWage(testEmployee(), hourBuckets{}, 0, payroll.DefaultFormulas("co-1"), payroll.PeriodHalfMonth)

	assertMoney(t, "1200000", out.ProratedSalary, "prorated salary")
	assertMoney(t, "100000", out.ProratedAllowance, "prorated allowance")
	assertMoney(t, "25000", out.SolidarityDeduction, "prorated solidarity")
}

func TestComputeWageSurchargeAndOvertimeValues(t *testing.T) {
	// hourlyRate = 2,400,000 / 240 = 10,000.
	buckets := hourBuckets{
		nightSurcharge: decimal.NewFromInt(4), // 4 x 10,000 x 1.35 = 54,000
		dayOvertime:    decimal.NewFromInt(2), // 2 x 10,000 x 1.25 = 25,000
	}

	out := computeWage(testEmployee(), buckets, 0, payroll.DefaultFormulas("co-1"), payroll.PeriodFullMonth)

	assertMoney(t, "54000", out.NightSurchargeValue, "night surcharge value")
	assertMoney(t, "25000", out.DayOvertimeValue, "day overtime value")
	assertMoney(t, "2679000", out.TotalEarned, "total earned")
}

func TestComputeWageExtraRestDayAtDailyRate(t *testing.T) {
	// dailyRate = 2,400,000 / 30 = 80,000.
	out := computeWage(testEmployee(), hourBuckets{}, 1, payroll.DefaultFormulas("co-1"), payroll.PeriodFullMonth)

	assert.Equal(t, 1, out.ExtraRestDays)
	assertMoney(t, "80000", out.ExtraRestDayValue, "rest day compensation")
	assertMoney(t, "2680000", out.TotalEarned, "total earned")
}

func TestComputeWageMixedHolidayGroupValues(t *testing.T) {
	// Day and night holiday surcharge hours are valued at their own
	// coefficients, then reported as one holiday group.
	buckets := hourBuckets{
		dayHolidaySurch:   decimal.NewFromInt(6), // 6 x 10,000 x 1.75 = 105,000
		nightHolidaySurch: decimal.NewFromInt(2), // 2 x 10,000 x 2.10 = 42,000
	}

	out := computeWage(testEmployee(), buckets, 0, payroll.DefaultFormulas("co-1"), payroll.PeriodFullMonth)

	assertHours(t, "8", out.HolidaySurchargeHours, "holiday surcharge hours")
	assertMoney(t, "147000", out.HolidaySurchargeValue, "holiday surcharge value")
}

func TestComputeWageNetIsExact(t *testing.T) {
	// Awkward salary forcing repeating decimals in the hourly rate: the
	// invariant earned - deductions = net must still hold bit-exactly.
	emp := testEmployee()
	emp.BaseSalary = decimal.NewFromInt(1234567)

	buckets := hourBuckets{
		nightSurcharge: decimal.RequireFromString("3.5"),
		dayOvertime:    decimal.RequireFromString("1.25"),
		nightHolidayOT: decimal.RequireFromString("2.75"),
	}

	out := computeWage(emp, buckets, 1, payroll.DefaultFormulas("co-1"), payroll.PeriodHalfMonth)

	want := out.TotalEarned.Sub(out.TotalDeductions)
	assert.True(t, out.NetPay.Equal(want), "net %s vs earned-deductions %s", out.NetPay, want)

	earnedParts := out.ProratedSalary.
		Add(out.ProratedAllowance).
		Add(out.DayOvertimeValue).
		Add(out.NightOvertimeValue).
		Add(out.DayHolidayOTValue).
		Add(out.NightHolidayOTValue).
		Add(out.NightSurchargeValue).
		Add(out.HolidaySurchargeValue).
		Add(out.SundaySurchargeValue).
		Add(out.ExtraRestDayValue)
	assert.True(t, out.TotalEarned.Equal(earnedParts), "earned components must sum to total")

	dedParts := out.HealthDeduction.Add(out.PensionDeduction).Add(out.SolidarityDeduction)
	assert.True(t, out.TotalDeductions.Equal(dedParts), "deduction components must sum to total")
}
